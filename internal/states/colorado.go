package states

import (
	"github.com/shopspring/decimal"

	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
)

// colorado applies the flat 4.40% rate directly to federal taxable income,
// with a pension/annuity subtraction capped by age.
type colorado struct {
	rate                decimal.Decimal
	pensionCap          money.Cents
	pensionCapUnder65   money.Cents
	pensionAgeThreshold int
}

// NewColorado returns the Colorado calculator.
func NewColorado() JurisdictionCalculator {
	return &colorado{
		rate:                decimal.NewFromFloat(0.044),
		pensionCap:          money.FromDollarInt(24000),
		pensionCapUnder65:   money.FromDollarInt(20000),
		pensionAgeThreshold: 65,
	}
}

func (co *colorado) Config() JurisdictionConfig {
	return JurisdictionConfig{Code: "CO", Name: "Colorado", HasIncomeTax: true}
}

func (co *colorado) Calculate(input *domain.StateTaxInput) (*domain.StateResult, error) {
	federal, err := federalOf(input)
	if err != nil {
		return nil, err
	}

	cap := co.pensionCapUnder65
	if input.Specific.Age >= co.pensionAgeThreshold {
		cap = co.pensionCap
	}
	pensionSubtraction := money.Min(input.Specific.RetirementIncome(), cap)

	taxable := money.Max0(federal.TaxableIncome - pensionSubtraction)
	result := &domain.StateResult{
		Jurisdiction:  "CO",
		TaxYear:       federal.TaxYear,
		AGI:           federal.AGI,
		TaxableIncome: taxable,
		StateTax:      money.MulRate(taxable, co.rate),
	}
	settle(result, input)
	return result, nil
}
