package states

import (
	"github.com/piechiang/usa-tax-calculator/internal/domain"
)

// noIncomeTax is the shared calculator for jurisdictions without an
// individual income tax. It is a distinct reusable variant, not a special
// case in the dispatch logic: zero tax, zero deduction, zero credits, and
// any payments echoed straight back as the refund.
type noIncomeTax struct {
	config JurisdictionConfig
}

// NewNoIncomeTax returns the no-income-tax calculator for a jurisdiction.
func NewNoIncomeTax(code, name string) JurisdictionCalculator {
	return &noIncomeTax{config: JurisdictionConfig{Code: code, Name: name}}
}

func (n *noIncomeTax) Config() JurisdictionConfig { return n.config }

func (n *noIncomeTax) Calculate(input *domain.StateTaxInput) (*domain.StateResult, error) {
	result := &domain.StateResult{
		Jurisdiction: n.config.Code,
		TaxYear:      taxYearOf(input),
		Notes:        []string{n.config.Name + " has no individual income tax"},
	}
	settle(result, input)
	return result, nil
}

func taxYearOf(input *domain.StateTaxInput) int {
	if input.Federal != nil {
		return input.Federal.TaxYear
	}
	return 0
}
