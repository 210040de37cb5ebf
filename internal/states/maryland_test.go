package states

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
)

func TestMaryland(t *testing.T) {
	calc := NewMaryland()

	t.Run("single filer with default county rate", func(t *testing.T) {
		result, err := calc.Calculate(&domain.StateTaxInput{
			Federal:      federalFixture(100000),
			FilingStatus: domain.Single,
		})
		require.NoError(t, err)
		// Deduction clamps to the 2,700 ceiling; one 3,200 exemption.
		assert.Equal(t, money.FromDollarInt(94100), result.TaxableIncome)
		assert.Equal(t, money.Cents(441725), result.StateTax)
		// Default county rate 3.2%.
		assert.Equal(t, money.Cents(301120), result.LocalTax)
		assert.Equal(t, money.Cents(441725+301120), result.TotalLiability)
	})

	t.Run("payload local rate overrides the default", func(t *testing.T) {
		result, err := calc.Calculate(&domain.StateTaxInput{
			Federal:      federalFixture(100000),
			FilingStatus: domain.Single,
			Specific:     domain.StateSpecific{LocalRate: decimal.NewFromFloat(0.0225)},
		})
		require.NoError(t, err)
		assert.Equal(t, money.Cents(211725), result.LocalTax) // 2.25% of 94,100
	})

	t.Run("deduction floor applies at low income", func(t *testing.T) {
		result, err := calc.Calculate(&domain.StateTaxInput{
			Federal:      federalFixture(10000),
			FilingStatus: domain.Single,
		})
		require.NoError(t, err)
		// 15% of 10,000 is 1,500, below the 1,800 floor.
		assert.Equal(t, money.FromDollarInt(10000-1800-3200), result.TaxableIncome)
	})

	t.Run("exemption steps down above the threshold", func(t *testing.T) {
		result, err := calc.Calculate(&domain.StateTaxInput{
			Federal:      federalFixture(120000),
			FilingStatus: domain.Single,
			Dependents:   1,
		})
		require.NoError(t, err)
		// Two exemptions at the reduced 800.
		assert.Equal(t, money.FromDollarInt(120000-2700-1600), result.TaxableIncome)
	})

	t.Run("joint return scales deduction and exemptions", func(t *testing.T) {
		result, err := calc.Calculate(&domain.StateTaxInput{
			Federal: &domain.FederalResult{
				TaxYear:      2025,
				FilingStatus: domain.MarriedJointly,
				AGI:          money.FromDollarInt(100000),
			},
			FilingStatus: domain.MarriedJointly,
		})
		require.NoError(t, err)
		// Ceiling 5,450 and two 3,200 exemptions.
		assert.Equal(t, money.FromDollarInt(100000-5450-6400), result.TaxableIncome)
	})
}
