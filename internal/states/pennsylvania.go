package states

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
)

// pennsylvania applies the flat 3.07% rate. PA exempts retirement income
// (Social Security, pensions, and retirement-account distributions) and
// has no standard deduction or personal exemptions.
type pennsylvania struct {
	rate decimal.Decimal
}

// NewPennsylvania returns the Pennsylvania calculator.
func NewPennsylvania() JurisdictionCalculator {
	return &pennsylvania{rate: decimal.NewFromFloat(0.0307)}
}

func (p *pennsylvania) Config() JurisdictionConfig {
	return JurisdictionConfig{Code: "PA", Name: "Pennsylvania", HasIncomeTax: true}
}

func (p *pennsylvania) Calculate(input *domain.StateTaxInput) (*domain.StateResult, error) {
	federal, err := federalOf(input)
	if err != nil {
		return nil, err
	}

	agi := money.Max0(federal.AGI - input.Specific.RetirementIncome())
	result := &domain.StateResult{
		Jurisdiction:  "PA",
		TaxYear:       federal.TaxYear,
		AGI:           agi,
		TaxableIncome: agi,
		StateTax:      money.MulRate(agi, p.rate),
	}
	if input.Specific.RetirementIncome() > 0 {
		result.Notes = append(result.Notes, "retirement income is exempt from Pennsylvania tax")
	}
	settle(result, input)
	return result, nil
}

func federalOf(input *domain.StateTaxInput) (*domain.FederalResult, error) {
	if input == nil || input.Federal == nil {
		return nil, errors.New("state input requires a federal result")
	}
	return input.Federal, nil
}
