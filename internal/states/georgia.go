package states

import (
	"github.com/shopspring/decimal"

	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
)

// georgia applies the flat 5.39% rate with a state standard deduction and
// $4,000 dependent exemptions. Social Security is subtracted from AGI.
type georgia struct {
	rate               decimal.Decimal
	standardDeduction  map[domain.FilingStatus]money.Cents
	dependentExemption money.Cents
}

// NewGeorgia returns the Georgia calculator.
func NewGeorgia() JurisdictionCalculator {
	return &georgia{
		rate: decimal.NewFromFloat(0.0539),
		standardDeduction: map[domain.FilingStatus]money.Cents{
			domain.Single:                    money.FromDollarInt(12000),
			domain.MarriedJointly:            money.FromDollarInt(24000),
			domain.MarriedSeparately:         money.FromDollarInt(12000),
			domain.HeadOfHousehold:           money.FromDollarInt(12000),
			domain.QualifyingSurvivingSpouse: money.FromDollarInt(24000),
		},
		dependentExemption: money.FromDollarInt(4000),
	}
}

func (ga *georgia) Config() JurisdictionConfig {
	return JurisdictionConfig{Code: "GA", Name: "Georgia", HasIncomeTax: true}
}

func (ga *georgia) Calculate(input *domain.StateTaxInput) (*domain.StateResult, error) {
	federal, err := federalOf(input)
	if err != nil {
		return nil, err
	}

	agi := money.Max0(federal.AGI - input.Specific.SocialSecurityBenefits)
	taxable := money.Max0(agi - ga.standardDeduction[input.FilingStatus] -
		ga.dependentExemption*money.Cents(input.Dependents))

	result := &domain.StateResult{
		Jurisdiction:  "GA",
		TaxYear:       federal.TaxYear,
		AGI:           agi,
		TaxableIncome: taxable,
		StateTax:      money.MulRate(taxable, ga.rate),
	}
	settle(result, input)
	return result, nil
}
