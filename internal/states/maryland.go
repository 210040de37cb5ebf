package states

import (
	"github.com/shopspring/decimal"

	"github.com/piechiang/usa-tax-calculator/internal/calculation"
	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
	"github.com/piechiang/usa-tax-calculator/internal/rules"
)

// maryland applies the progressive state table plus a county local income
// tax on the same taxable base. The standard deduction is 15% of AGI
// clamped to a statutory band, and $3,200 exemptions step down at higher
// AGI. The payload's LocalRate overrides the default county rate.
type maryland struct {
	brackets         map[domain.FilingStatus][]rules.Bracket
	deductionRate    decimal.Decimal
	deductionFloor   map[domain.FilingStatus]money.Cents
	deductionCeiling map[domain.FilingStatus]money.Cents
	exemption        money.Cents
	reducedExemption money.Cents
	exemptionStep    map[domain.FilingStatus]money.Cents
	defaultLocalRate decimal.Decimal
}

var mdLowRates = []float64{0.02, 0.03, 0.04}

var mdSingleBrackets = stateBrackets(
	[]int64{1000, 2000, 3000, 100000, 125000, 150000, 250000},
	append(mdLowRates, 0.0475, 0.05, 0.0525, 0.055, 0.0575),
)

var mdJointBrackets = stateBrackets(
	[]int64{1000, 2000, 3000, 150000, 175000, 225000, 300000},
	append(mdLowRates, 0.0475, 0.05, 0.0525, 0.055, 0.0575),
)

// NewMaryland returns the Maryland calculator.
func NewMaryland() JurisdictionCalculator {
	return &maryland{
		brackets: map[domain.FilingStatus][]rules.Bracket{
			domain.Single:                    mdSingleBrackets,
			domain.MarriedJointly:            mdJointBrackets,
			domain.MarriedSeparately:         mdSingleBrackets,
			domain.HeadOfHousehold:           mdJointBrackets,
			domain.QualifyingSurvivingSpouse: mdJointBrackets,
		},
		deductionRate: decimal.NewFromFloat(0.15),
		deductionFloor: map[domain.FilingStatus]money.Cents{
			domain.Single:                    money.FromDollarInt(1800),
			domain.MarriedJointly:            money.FromDollarInt(3650),
			domain.MarriedSeparately:         money.FromDollarInt(1800),
			domain.HeadOfHousehold:           money.FromDollarInt(3650),
			domain.QualifyingSurvivingSpouse: money.FromDollarInt(3650),
		},
		deductionCeiling: map[domain.FilingStatus]money.Cents{
			domain.Single:                    money.FromDollarInt(2700),
			domain.MarriedJointly:            money.FromDollarInt(5450),
			domain.MarriedSeparately:         money.FromDollarInt(2700),
			domain.HeadOfHousehold:           money.FromDollarInt(5450),
			domain.QualifyingSurvivingSpouse: money.FromDollarInt(5450),
		},
		exemption:        money.FromDollarInt(3200),
		reducedExemption: money.FromDollarInt(800),
		exemptionStep: map[domain.FilingStatus]money.Cents{
			domain.Single:                    money.FromDollarInt(100000),
			domain.MarriedJointly:            money.FromDollarInt(150000),
			domain.MarriedSeparately:         money.FromDollarInt(100000),
			domain.HeadOfHousehold:           money.FromDollarInt(150000),
			domain.QualifyingSurvivingSpouse: money.FromDollarInt(150000),
		},
		defaultLocalRate: decimal.NewFromFloat(0.032),
	}
}

func (md *maryland) Config() JurisdictionConfig {
	return JurisdictionConfig{Code: "MD", Name: "Maryland", HasIncomeTax: true, HasLocalTax: true}
}

func (md *maryland) Calculate(input *domain.StateTaxInput) (*domain.StateResult, error) {
	federal, err := federalOf(input)
	if err != nil {
		return nil, err
	}
	status := input.FilingStatus
	agi := federal.AGI

	deduction := money.MulRate(agi, md.deductionRate)
	deduction = money.Max(deduction, md.deductionFloor[status])
	deduction = money.Min(deduction, md.deductionCeiling[status])

	perExemption := md.exemption
	if agi > md.exemptionStep[status] {
		perExemption = md.reducedExemption
	}
	exemptions := perExemption * money.Cents(filerCount(status)+input.Dependents)

	taxable := money.Max0(agi - deduction - exemptions)

	localRate := input.Specific.LocalRate
	if localRate.IsZero() {
		localRate = md.defaultLocalRate
	}

	result := &domain.StateResult{
		Jurisdiction:  "MD",
		TaxYear:       federal.TaxYear,
		AGI:           agi,
		TaxableIncome: taxable,
		StateTax:      calculation.TaxFromBrackets(taxable, md.brackets[status]),
		LocalTax:      money.MulRate(taxable, localRate),
	}
	settle(result, input)
	return result, nil
}
