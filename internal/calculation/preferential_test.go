package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
	"github.com/piechiang/usa-tax-calculator/internal/rules"
)

func TestSplitTax(t *testing.T) {
	r := rules.Federal2025()
	ord := r.OrdinaryBrackets[domain.Single]
	cg := r.CapitalGainsBrackets[domain.Single]

	t.Run("preferential stacks on top of ordinary", func(t *testing.T) {
		ordinaryTax, preferentialTax := SplitTax(
			money.FromDollarInt(30000), money.FromDollarInt(40000), ord, cg)
		assert.Equal(t, TaxFromBrackets(money.FromDollarInt(30000), ord), ordinaryTax)
		// The gain occupies 30,000..70,000: 18,350 rides the 0% band up to
		// its 48,350 edge, the remaining 21,650 is taxed at 15%.
		assert.Equal(t, money.Cents(324750), preferentialTax)
	})

	t.Run("gain entirely inside the zero band", func(t *testing.T) {
		_, preferentialTax := SplitTax(
			money.FromDollarInt(10000), money.FromDollarInt(20000), ord, cg)
		assert.Equal(t, money.Cents(0), preferentialTax)
	})

	t.Run("high ordinary income pushes the gain to twenty percent", func(t *testing.T) {
		_, preferentialTax := SplitTax(
			money.FromDollarInt(600000), money.FromDollarInt(10000), ord, cg)
		assert.Equal(t, money.Cents(200000), preferentialTax)
	})

	t.Run("zero preferential yields zero preferential tax", func(t *testing.T) {
		ordinaryTax, preferentialTax := SplitTax(money.FromDollarInt(50000), 0, ord, cg)
		assert.Equal(t, TaxFromBrackets(money.FromDollarInt(50000), ord), ordinaryTax)
		assert.Equal(t, money.Cents(0), preferentialTax)
	})

	t.Run("stacking never undercuts independent taxation", func(t *testing.T) {
		for _, ordinary := range []money.Cents{0, money.FromDollarInt(30000), money.FromDollarInt(200000)} {
			_, stacked := SplitTax(ordinary, money.FromDollarInt(50000), ord, cg)
			independent := TaxFromBrackets(money.FromDollarInt(50000), cg)
			assert.GreaterOrEqual(t, stacked, independent)
		}
	})
}
