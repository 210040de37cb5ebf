package calculation

import (
	"github.com/piechiang/usa-tax-calculator/internal/money"
	"github.com/piechiang/usa-tax-calculator/internal/rules"
)

// SplitTax taxes ordinary income through the ordinary bracket table and
// preferential income (qualified dividends plus net long-term gain)
// through the 0/15/20% table, stacking the preferential slice on top of
// ordinary income per the Qualified Dividends and Capital Gain Tax
// Worksheet. Each preferential dollar is rated by where it lands after
// ordinary income has filled the capital-gains brackets from below.
func SplitTax(ordinary, preferential money.Cents, ordinaryBrackets, capitalGainsBrackets []rules.Bracket) (ordinaryTax, preferentialTax money.Cents) {
	ordinaryTax = TaxFromBrackets(ordinary, ordinaryBrackets)
	if preferential > 0 {
		preferentialTax = StackedTax(ordinary, preferential, capitalGainsBrackets)
	}
	return ordinaryTax, preferentialTax
}
