// Package money provides the integer-cents arithmetic used throughout the
// engine. Every monetary quantity is a Cents value; decimals appear only at
// the edges (rates, YAML-facing dollar amounts) and in the single rounding
// point, MulRate. Keeping amounts in int64 cents makes repeated
// add/subtract chains exact and reproducible.
package money

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is a monetary amount in whole US cents.
type Cents int64

// NoCeiling marks an open-ended bracket upper bound.
const NoCeiling = Cents(math.MaxInt64)

var hundred = decimal.NewFromInt(100)

// FromDollars converts a dollar amount to cents, rounding half-up to the
// nearest cent.
func FromDollars(d decimal.Decimal) Cents {
	return Cents(d.Mul(hundred).Round(0).IntPart())
}

// FromDollarInt converts a whole-dollar amount to cents. Statutory
// thresholds are whole dollars, so this is the usual constructor for rules
// tables.
func FromDollarInt(dollars int64) Cents {
	return Cents(dollars * 100)
}

// Dollars returns the amount as a decimal dollar value.
func (c Cents) Dollars() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// Add sums any number of amounts.
func Add(amounts ...Cents) Cents {
	var total Cents
	for _, a := range amounts {
		total += a
	}
	return total
}

// Sub returns a minus b.
func Sub(a, b Cents) Cents {
	return a - b
}

// Max0 clamps a negative amount to zero. Nearly every statutory quantity is
// floored at zero, so this shows up throughout the pipeline.
func Max0(c Cents) Cents {
	if c < 0 {
		return 0
	}
	return c
}

// Min returns the smaller of two amounts.
func Min(a, b Cents) Cents {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two amounts.
func Max(a, b Cents) Cents {
	if a > b {
		return a
	}
	return b
}

// MulRate multiplies an amount by a rate and rounds half-up to the nearest
// cent. This is the only place a rate product is rounded; callers that need
// exact accumulation across several products (the bracket walk) work in
// decimal and round once themselves.
func MulRate(c Cents, rate decimal.Decimal) Cents {
	return Cents(decimal.NewFromInt(int64(c)).Mul(rate).Round(0).IntPart())
}

// Half returns half the amount, with the odd cent dropped. The SE-tax
// half-deduction floors this way by statute.
func Half(c Cents) Cents {
	if c < 0 {
		return -((-c) / 2)
	}
	return c / 2
}

// FromAny coerces an untyped value (as produced by a YAML or JSON decoder)
// to cents, treating the value as dollars. Anything unrecognized coerces to
// zero: a missing or malformed optional field behaves as "no income", never
// as a crash.
func FromAny(v any) Cents {
	switch t := v.(type) {
	case nil:
		return 0
	case int:
		return FromDollarInt(int64(t))
	case int64:
		return FromDollarInt(t)
	case float64:
		return FromDollars(decimal.NewFromFloat(t))
	case string:
		s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(t), "$"))
		s = strings.ReplaceAll(s, ",", "")
		d, err := decimal.NewFromString(s)
		if err != nil {
			return 0
		}
		return FromDollars(d)
	case decimal.Decimal:
		return FromDollars(t)
	default:
		return 0
	}
}

// String renders the amount as a fixed two-decimal dollar string, e.g.
// "$3961.50".
func (c Cents) String() string {
	sign := ""
	v := c
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, int64(v)/100, int64(v)%100)
}
