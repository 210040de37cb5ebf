package states

import (
	"github.com/piechiang/usa-tax-calculator/internal/calculation"
	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
	"github.com/piechiang/usa-tax-calculator/internal/rules"
)

// newYork applies the progressive table on federal AGI less the state
// standard deduction and $1,000 dependent exemptions. Social Security and
// up to $20,000 of pension income are subtracted. New York City resident
// tax is not modeled.
type newYork struct {
	brackets            map[domain.FilingStatus][]rules.Bracket
	standardDeduction   map[domain.FilingStatus]money.Cents
	dependentExemption  money.Cents
	pensionExclusionCap money.Cents
}

var nyRates = []float64{0.04, 0.045, 0.0525, 0.055, 0.06, 0.0685, 0.0965, 0.103, 0.109}

var nySingleBrackets = stateBrackets(
	[]int64{8500, 11700, 13900, 80650, 215400, 1077550, 5000000, 25000000}, nyRates)

var nyJointBrackets = stateBrackets(
	[]int64{17150, 23600, 27900, 161550, 323200, 2155350, 5000000, 25000000}, nyRates)

// NewNewYork returns the New York calculator.
func NewNewYork() JurisdictionCalculator {
	return &newYork{
		brackets: map[domain.FilingStatus][]rules.Bracket{
			domain.Single:                    nySingleBrackets,
			domain.MarriedJointly:            nyJointBrackets,
			domain.MarriedSeparately:         nySingleBrackets,
			domain.HeadOfHousehold:           nySingleBrackets,
			domain.QualifyingSurvivingSpouse: nyJointBrackets,
		},
		standardDeduction: map[domain.FilingStatus]money.Cents{
			domain.Single:                    money.FromDollarInt(8000),
			domain.MarriedJointly:            money.FromDollarInt(16050),
			domain.MarriedSeparately:         money.FromDollarInt(8000),
			domain.HeadOfHousehold:           money.FromDollarInt(11200),
			domain.QualifyingSurvivingSpouse: money.FromDollarInt(16050),
		},
		dependentExemption:  money.FromDollarInt(1000),
		pensionExclusionCap: money.FromDollarInt(20000),
	}
}

func (ny *newYork) Config() JurisdictionConfig {
	return JurisdictionConfig{Code: "NY", Name: "New York", HasIncomeTax: true}
}

func (ny *newYork) Calculate(input *domain.StateTaxInput) (*domain.StateResult, error) {
	federal, err := federalOf(input)
	if err != nil {
		return nil, err
	}

	pensionExclusion := money.Min(
		input.Specific.PensionIncome+input.Specific.RetirementDistributions,
		ny.pensionExclusionCap,
	)
	agi := money.Max0(federal.AGI - input.Specific.SocialSecurityBenefits - pensionExclusion)

	taxable := money.Max0(agi - ny.standardDeduction[input.FilingStatus] -
		ny.dependentExemption*money.Cents(input.Dependents))

	result := &domain.StateResult{
		Jurisdiction:  "NY",
		TaxYear:       federal.TaxYear,
		AGI:           agi,
		TaxableIncome: taxable,
		StateTax:      calculation.TaxFromBrackets(taxable, ny.brackets[input.FilingStatus]),
	}
	settle(result, input)
	return result, nil
}
