package states

import (
	"github.com/piechiang/usa-tax-calculator/internal/calculation"
	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
	"github.com/piechiang/usa-tax-calculator/internal/rules"
)

// ohio taxes nothing below the first bracket edge and uses AGI-tiered
// personal exemptions. Social Security is subtracted from AGI.
type ohio struct {
	brackets       []rules.Bracket
	exemptionTiers []ohioExemptionTier
}

type ohioExemptionTier struct {
	agiCeiling money.Cents
	amount     money.Cents
}

// NewOhio returns the Ohio calculator.
func NewOhio() JurisdictionCalculator {
	return &ohio{
		brackets: stateBrackets([]int64{26050, 100000}, []float64{0, 0.0275, 0.035}),
		exemptionTiers: []ohioExemptionTier{
			{agiCeiling: money.FromDollarInt(40000), amount: money.FromDollarInt(2400)},
			{agiCeiling: money.FromDollarInt(80000), amount: money.FromDollarInt(2150)},
			{agiCeiling: money.NoCeiling, amount: money.FromDollarInt(1900)},
		},
	}
}

func (oh *ohio) Config() JurisdictionConfig {
	return JurisdictionConfig{Code: "OH", Name: "Ohio", HasIncomeTax: true}
}

func (oh *ohio) Calculate(input *domain.StateTaxInput) (*domain.StateResult, error) {
	federal, err := federalOf(input)
	if err != nil {
		return nil, err
	}

	agi := money.Max0(federal.AGI - input.Specific.SocialSecurityBenefits)

	var perExemption money.Cents
	for _, tier := range oh.exemptionTiers {
		if agi <= tier.agiCeiling {
			perExemption = tier.amount
			break
		}
	}
	exemptions := perExemption * money.Cents(filerCount(input.FilingStatus)+input.Dependents)

	taxable := money.Max0(agi - exemptions)
	result := &domain.StateResult{
		Jurisdiction:  "OH",
		TaxYear:       federal.TaxYear,
		AGI:           agi,
		TaxableIncome: taxable,
		StateTax:      calculation.TaxFromBrackets(taxable, oh.brackets),
	}
	settle(result, input)
	return result, nil
}
