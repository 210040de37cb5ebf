package states

import (
	"github.com/piechiang/usa-tax-calculator/internal/calculation"
	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
	"github.com/piechiang/usa-tax-calculator/internal/rules"
)

// virginia uses one bracket table for all filing statuses, a flat standard
// deduction, $930 exemptions, and a $12,000 age deduction per filer aged
// 65 or over (payload ages). Social Security is subtracted from AGI.
type virginia struct {
	brackets          []rules.Bracket
	standardDeduction map[domain.FilingStatus]money.Cents
	exemption         money.Cents
	ageDeduction      money.Cents
	ageThreshold      int
}

// NewVirginia returns the Virginia calculator.
func NewVirginia() JurisdictionCalculator {
	return &virginia{
		brackets: stateBrackets([]int64{3000, 5000, 17000}, []float64{0.02, 0.03, 0.05, 0.0575}),
		standardDeduction: map[domain.FilingStatus]money.Cents{
			domain.Single:                    money.FromDollarInt(8500),
			domain.MarriedJointly:            money.FromDollarInt(17000),
			domain.MarriedSeparately:         money.FromDollarInt(8500),
			domain.HeadOfHousehold:           money.FromDollarInt(8500),
			domain.QualifyingSurvivingSpouse: money.FromDollarInt(17000),
		},
		exemption:    money.FromDollarInt(930),
		ageDeduction: money.FromDollarInt(12000),
		ageThreshold: 65,
	}
}

func (va *virginia) Config() JurisdictionConfig {
	return JurisdictionConfig{Code: "VA", Name: "Virginia", HasIncomeTax: true}
}

func (va *virginia) Calculate(input *domain.StateTaxInput) (*domain.StateResult, error) {
	federal, err := federalOf(input)
	if err != nil {
		return nil, err
	}

	agi := money.Max0(federal.AGI - input.Specific.SocialSecurityBenefits)

	var ageDeduction money.Cents
	if input.Specific.Age >= va.ageThreshold {
		ageDeduction += va.ageDeduction
	}
	if input.FilingStatus == domain.MarriedJointly && input.Specific.SpouseAge >= va.ageThreshold {
		ageDeduction += va.ageDeduction
	}

	exemptions := va.exemption * money.Cents(filerCount(input.FilingStatus)+input.Dependents)
	taxable := money.Max0(agi - va.standardDeduction[input.FilingStatus] - exemptions - ageDeduction)

	result := &domain.StateResult{
		Jurisdiction:  "VA",
		TaxYear:       federal.TaxYear,
		AGI:           agi,
		TaxableIncome: taxable,
		StateTax:      calculation.TaxFromBrackets(taxable, va.brackets),
	}
	settle(result, input)
	return result, nil
}
