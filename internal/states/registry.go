// Package states implements the per-jurisdiction calculators and the
// registry that dispatches to them. Each jurisdiction follows the federal
// orchestrator's shape in miniature: start from federal AGI, apply
// jurisdiction additions and subtractions, a deduction/exemption scheme, a
// flat rate or bracket table, credits, local tax where applicable, and the
// payments settlement.
package states

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
)

// JurisdictionConfig describes a supported jurisdiction.
type JurisdictionConfig struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	HasIncomeTax bool   `json:"has_income_tax"`
	HasLocalTax  bool   `json:"has_local_tax"`
}

// JurisdictionCalculator computes a StateResult from a StateTaxInput. A
// calculator is a pure function over its input; implementations hold only
// immutable rules values.
type JurisdictionCalculator interface {
	Config() JurisdictionConfig
	Calculate(input *domain.StateTaxInput) (*domain.StateResult, error)
}

// Registry is the immutable jurisdiction dispatch table, built once at
// startup. Lookup failure is reported with a boolean, never an error, so
// callers can present an explicit "unsupported" state.
type Registry struct {
	calculators map[string]JurisdictionCalculator
}

// noTaxCodes are the jurisdictions with no individual income tax. New
// Hampshire is included: its interest-and-dividends tax ended in 2025.
var noTaxCodes = map[string]string{
	"AK": "Alaska",
	"FL": "Florida",
	"NH": "New Hampshire",
	"NV": "Nevada",
	"SD": "South Dakota",
	"TN": "Tennessee",
	"TX": "Texas",
	"WA": "Washington",
	"WY": "Wyoming",
}

// NewRegistry builds the full dispatch table.
func NewRegistry() *Registry {
	r := &Registry{calculators: make(map[string]JurisdictionCalculator)}
	for code, name := range noTaxCodes {
		r.register(NewNoIncomeTax(code, name))
	}
	r.register(NewPennsylvania())
	r.register(NewIllinois())
	r.register(NewCalifornia())
	r.register(NewNewYork())
	r.register(NewMaryland())
	r.register(NewVirginia())
	r.register(NewOhio())
	r.register(NewArizona())
	r.register(NewColorado())
	r.register(NewGeorgia())
	return r
}

func (r *Registry) register(calc JurisdictionCalculator) {
	r.calculators[calc.Config().Code] = calc
}

// Lookup returns the calculator for a jurisdiction code, case-insensitive.
func (r *Registry) Lookup(code string) (JurisdictionCalculator, bool) {
	calc, ok := r.calculators[strings.ToUpper(strings.TrimSpace(code))]
	return calc, ok
}

// Compute dispatches a state computation. The boolean reports whether the
// jurisdiction is supported; when false, the result and error are nil.
func (r *Registry) Compute(code string, input *domain.StateTaxInput) (*domain.StateResult, bool, error) {
	calc, ok := r.Lookup(code)
	if !ok {
		return nil, false, nil
	}
	result, err := calc.Calculate(input)
	return result, true, err
}

// Configs lists the supported jurisdictions sorted by code.
func (r *Registry) Configs() []JurisdictionConfig {
	out := make([]JurisdictionConfig, 0, len(r.calculators))
	for _, calc := range r.calculators {
		out = append(out, calc.Config())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// settle fills the liability, payments, and refund fields from the tax and
// credit amounts already on the result. Non-refundable credits offset
// liability at most to zero; refundable credits count as payments.
func settle(result *domain.StateResult, input *domain.StateTaxInput) {
	result.TotalLiability = money.Max0(result.StateTax-result.NonRefundableCredits) + result.LocalTax
	result.TotalPayments = input.Payments() + result.RefundableCredits
	result.RefundOrOwe = result.TotalPayments - result.TotalLiability
}

// filerCount is 2 on a joint return, otherwise 1; several states scale
// exemptions by it.
func filerCount(status domain.FilingStatus) int {
	if status == domain.MarriedJointly {
		return 2
	}
	return 1
}

func stateRate(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
