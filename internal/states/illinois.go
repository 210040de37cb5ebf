package states

import (
	"github.com/shopspring/decimal"

	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
)

// illinois applies the flat 4.95% rate on federal AGI less the retirement
// subtraction and personal exemptions. The exemption is disallowed above
// the statutory AGI ceiling.
type illinois struct {
	rate             decimal.Decimal
	exemption        money.Cents
	exemptionCeiling map[domain.FilingStatus]money.Cents
}

// NewIllinois returns the Illinois calculator.
func NewIllinois() JurisdictionCalculator {
	return &illinois{
		rate:      decimal.NewFromFloat(0.0495),
		exemption: money.FromDollarInt(2850),
		exemptionCeiling: map[domain.FilingStatus]money.Cents{
			domain.Single:                    money.FromDollarInt(250000),
			domain.MarriedJointly:            money.FromDollarInt(500000),
			domain.MarriedSeparately:         money.FromDollarInt(250000),
			domain.HeadOfHousehold:           money.FromDollarInt(250000),
			domain.QualifyingSurvivingSpouse: money.FromDollarInt(500000),
		},
	}
}

func (il *illinois) Config() JurisdictionConfig {
	return JurisdictionConfig{Code: "IL", Name: "Illinois", HasIncomeTax: true}
}

func (il *illinois) Calculate(input *domain.StateTaxInput) (*domain.StateResult, error) {
	federal, err := federalOf(input)
	if err != nil {
		return nil, err
	}

	agi := money.Max0(federal.AGI - input.Specific.RetirementIncome())

	var exemptions money.Cents
	if federal.AGI <= il.exemptionCeiling[input.FilingStatus] {
		exemptions = il.exemption * money.Cents(filerCount(input.FilingStatus)+input.Dependents)
	}

	taxable := money.Max0(agi - exemptions)
	result := &domain.StateResult{
		Jurisdiction:  "IL",
		TaxYear:       federal.TaxYear,
		AGI:           agi,
		TaxableIncome: taxable,
		StateTax:      money.MulRate(taxable, il.rate),
	}
	settle(result, input)
	return result, nil
}
