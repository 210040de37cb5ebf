package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
	"github.com/piechiang/usa-tax-calculator/internal/rules"
)

func TestSelfEmploymentTax(t *testing.T) {
	seRules := rules.Federal2025().SelfEmployment

	t.Run("negative profit produces all zeros", func(t *testing.T) {
		result := SelfEmploymentTax(seRules, domain.Single, money.FromDollarInt(-5000), 0, 0)
		assert.Equal(t, domain.SelfEmploymentTax{}, result)
	})

	t.Run("hundred thousand profit no wages", func(t *testing.T) {
		result := SelfEmploymentTax(seRules, domain.Single, money.FromDollarInt(100000), 0, 0)
		assert.Equal(t, money.Cents(9235000), result.NetEarnings)   // 92.35%
		assert.Equal(t, money.Cents(1145140), result.OASDI)         // 12.4%
		assert.Equal(t, money.Cents(267815), result.Medicare)       // 2.9%
		assert.Equal(t, money.Cents(0), result.AdditionalMedicare)  // under $200k
		assert.Equal(t, money.Cents(706477), result.HalfDeduction)  // floor of half
		assert.Equal(t, money.Cents(1412955), result.Total())
	})

	t.Run("wage base coordinates with W-2 social security wages", func(t *testing.T) {
		result := SelfEmploymentTax(seRules, domain.Single,
			money.FromDollarInt(100000), money.FromDollarInt(150000), money.FromDollarInt(150000))
		// Only 176,100 - 150,000 = 26,100 of earnings exposed to OASDI.
		assert.Equal(t, money.Cents(323640), result.OASDI)
		// Medicare stays uncapped on all net earnings.
		assert.Equal(t, money.Cents(267815), result.Medicare)
	})

	t.Run("w2 wages above the base leave no OASDI room", func(t *testing.T) {
		result := SelfEmploymentTax(seRules, domain.Single,
			money.FromDollarInt(50000), money.FromDollarInt(200000), money.FromDollarInt(200000))
		assert.Equal(t, money.Cents(0), result.OASDI)
		assert.Greater(t, result.Medicare, money.Cents(0))
	})

	t.Run("additional medicare over the threshold", func(t *testing.T) {
		result := SelfEmploymentTax(seRules, domain.Single,
			money.FromDollarInt(100000), money.FromDollarInt(150000), money.FromDollarInt(150000))
		// (150,000 + 92,350) - 200,000 = 42,350 at 0.9%
		assert.Equal(t, money.Cents(38115), result.AdditionalMedicare)
		// The half-deduction excludes Additional Medicare.
		assert.Equal(t, money.Half(result.OASDI+result.Medicare), result.HalfDeduction)
	})

	t.Run("joint threshold is higher", func(t *testing.T) {
		result := SelfEmploymentTax(seRules, domain.MarriedJointly,
			money.FromDollarInt(100000), money.FromDollarInt(150000), money.FromDollarInt(150000))
		assert.Equal(t, money.Cents(0), result.AdditionalMedicare)
	})
}
