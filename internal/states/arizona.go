package states

import (
	"github.com/shopspring/decimal"

	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
)

// arizona applies the flat 2.5% rate. The state standard deduction mirrors
// the federal amounts, and each dependent earns a non-refundable credit.
type arizona struct {
	rate              decimal.Decimal
	standardDeduction map[domain.FilingStatus]money.Cents
	dependentCredit   money.Cents
}

// NewArizona returns the Arizona calculator.
func NewArizona() JurisdictionCalculator {
	return &arizona{
		rate: decimal.NewFromFloat(0.025),
		standardDeduction: map[domain.FilingStatus]money.Cents{
			domain.Single:                    money.FromDollarInt(15000),
			domain.MarriedJointly:            money.FromDollarInt(30000),
			domain.MarriedSeparately:         money.FromDollarInt(15000),
			domain.HeadOfHousehold:           money.FromDollarInt(22500),
			domain.QualifyingSurvivingSpouse: money.FromDollarInt(30000),
		},
		dependentCredit: money.FromDollarInt(100),
	}
}

func (az *arizona) Config() JurisdictionConfig {
	return JurisdictionConfig{Code: "AZ", Name: "Arizona", HasIncomeTax: true}
}

func (az *arizona) Calculate(input *domain.StateTaxInput) (*domain.StateResult, error) {
	federal, err := federalOf(input)
	if err != nil {
		return nil, err
	}

	agi := money.Max0(federal.AGI - input.Specific.SocialSecurityBenefits)
	taxable := money.Max0(agi - az.standardDeduction[input.FilingStatus])

	result := &domain.StateResult{
		Jurisdiction:         "AZ",
		TaxYear:              federal.TaxYear,
		AGI:                  agi,
		TaxableIncome:        taxable,
		StateTax:             money.MulRate(taxable, az.rate),
		NonRefundableCredits: az.dependentCredit * money.Cents(input.Dependents),
	}
	settle(result, input)
	return result, nil
}
