// Package calculation implements the federal computation pipeline and the
// sub-calculators it sequences: the marginal bracket walk, phase-in and
// phase-out formulas, Schedule SE, the preferential-rate worksheet, and the
// credit calculators. Everything here is a pure function of its inputs.
package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/piechiang/usa-tax-calculator/internal/money"
	"github.com/piechiang/usa-tax-calculator/internal/rules"
)

// TaxFromBrackets walks the bracket table in ascending order, taxing the
// portion of income falling in each bracket at that bracket's rate. The
// products accumulate exactly in decimal and are rounded half-up once, so
// tax is continuous across bracket boundaries.
func TaxFromBrackets(income money.Cents, brackets []rules.Bracket) money.Cents {
	return roundCents(taxExact(income, brackets))
}

// StackedTax taxes the [base, base+amount) slice of income against the
// bracket table, as if `base` dollars were already stacked underneath. The
// preferential worksheet uses this with ordinary income as the base; with a
// zero base it degenerates to TaxFromBrackets.
func StackedTax(base, amount money.Cents, brackets []rules.Bracket) money.Cents {
	top := base + amount
	total := decimal.Zero
	for _, b := range brackets {
		if top <= b.Min {
			break
		}
		lo := money.Max(base, b.Min)
		hi := money.Min(top, b.Max)
		if hi > lo {
			total = total.Add(decimal.NewFromInt(int64(hi - lo)).Mul(b.Rate))
		}
	}
	return roundCents(total)
}

func taxExact(income money.Cents, brackets []rules.Bracket) decimal.Decimal {
	total := decimal.Zero
	for _, b := range brackets {
		if income <= b.Min {
			break
		}
		span := money.Min(income, b.Max) - b.Min
		if span > 0 {
			total = total.Add(decimal.NewFromInt(int64(span)).Mul(b.Rate))
		}
	}
	return total
}

func roundCents(d decimal.Decimal) money.Cents {
	return money.Cents(d.Round(0).IntPart())
}

// LinearPhaseOut returns the full amount at or below start, zero at or
// above end, and a linear interpolation between, rounded half-up. Start
// and end must satisfy start < end.
func LinearPhaseOut(full, income, start, end money.Cents) money.Cents {
	if income <= start {
		return full
	}
	if income >= end || end <= start {
		return 0
	}
	remaining := decimal.NewFromInt(int64(end - income)).
		Div(decimal.NewFromInt(int64(end - start)))
	return money.Max0(roundCents(decimal.NewFromInt(int64(full)).Mul(remaining)))
}

// SteppedReduction is the stepped phase-out variant: `step` is charged per
// `per` of excess income or any fraction thereof (the CTC's $50 per $1,000
// rule). Zero or negative excess costs nothing.
func SteppedReduction(excess, per, step money.Cents) money.Cents {
	if excess <= 0 || per <= 0 {
		return 0
	}
	units := (int64(excess) + int64(per) - 1) / int64(per)
	return money.Cents(units) * step
}
