package states

import (
	"github.com/piechiang/usa-tax-calculator/internal/calculation"
	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
	"github.com/piechiang/usa-tax-calculator/internal/rules"
)

// california applies the progressive bracket table on federal AGI less the
// Social Security subtraction (CA does not tax SS benefits) and the state
// standard deduction. Personal and dependent exemptions are credits
// against tax, not deductions. The 1% mental-health surtax above $1M is
// not modeled.
type california struct {
	brackets          map[domain.FilingStatus][]rules.Bracket
	standardDeduction map[domain.FilingStatus]money.Cents
	personalCredit    money.Cents
	dependentCredit   money.Cents
}

var caSingleBrackets = stateBrackets(
	[]int64{10756, 25499, 40245, 55866, 70606, 360659, 432787, 721314},
	[]float64{0.01, 0.02, 0.04, 0.06, 0.08, 0.093, 0.103, 0.113, 0.123},
)

var caJointBrackets = stateBrackets(
	[]int64{21512, 50998, 80490, 111732, 141212, 721318, 865574, 1442628},
	[]float64{0.01, 0.02, 0.04, 0.06, 0.08, 0.093, 0.103, 0.113, 0.123},
)

// NewCalifornia returns the California calculator.
func NewCalifornia() JurisdictionCalculator {
	return &california{
		brackets: map[domain.FilingStatus][]rules.Bracket{
			domain.Single:                    caSingleBrackets,
			domain.MarriedJointly:            caJointBrackets,
			domain.MarriedSeparately:         caSingleBrackets,
			domain.HeadOfHousehold:           caJointBrackets,
			domain.QualifyingSurvivingSpouse: caJointBrackets,
		},
		standardDeduction: map[domain.FilingStatus]money.Cents{
			domain.Single:                    money.FromDollarInt(5540),
			domain.MarriedJointly:            money.FromDollarInt(11080),
			domain.MarriedSeparately:         money.FromDollarInt(5540),
			domain.HeadOfHousehold:           money.FromDollarInt(11080),
			domain.QualifyingSurvivingSpouse: money.FromDollarInt(11080),
		},
		personalCredit:  money.FromDollarInt(149),
		dependentCredit: money.FromDollarInt(475),
	}
}

func (ca *california) Config() JurisdictionConfig {
	return JurisdictionConfig{Code: "CA", Name: "California", HasIncomeTax: true}
}

func (ca *california) Calculate(input *domain.StateTaxInput) (*domain.StateResult, error) {
	federal, err := federalOf(input)
	if err != nil {
		return nil, err
	}

	agi := money.Max0(federal.AGI - input.Specific.SocialSecurityBenefits)
	taxable := money.Max0(agi - ca.standardDeduction[input.FilingStatus])
	tax := calculation.TaxFromBrackets(taxable, ca.brackets[input.FilingStatus])

	credits := ca.personalCredit*money.Cents(filerCount(input.FilingStatus)) +
		ca.dependentCredit*money.Cents(input.Dependents)

	result := &domain.StateResult{
		Jurisdiction:         "CA",
		TaxYear:              federal.TaxYear,
		AGI:                  agi,
		TaxableIncome:        taxable,
		StateTax:             tax,
		NonRefundableCredits: credits,
	}
	settle(result, input)
	return result, nil
}

// stateBrackets builds a contiguous table from whole-dollar upper edges.
func stateBrackets(edges []int64, taxRates []float64) []rules.Bracket {
	out := make([]rules.Bracket, len(taxRates))
	min := money.Cents(0)
	for i, r := range taxRates {
		max := money.NoCeiling
		if i < len(edges) {
			max = money.FromDollarInt(edges[i])
		}
		out[i] = rules.Bracket{Min: min, Max: max, Rate: stateRate(r)}
		min = max
	}
	return out
}
