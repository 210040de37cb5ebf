package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDollarsRoundTrip(t *testing.T) {
	for _, cents := range []Cents{0, 1, 99, 100, 123456, -250, 396150} {
		assert.Equal(t, cents, FromDollars(cents.Dollars()), "round trip for %d cents", cents)
	}
}

func TestFromDollarsRounding(t *testing.T) {
	tests := []struct {
		name     string
		dollars  string
		expected Cents
	}{
		{"exact cents", "50.25", 5025},
		{"half rounds up", "10.005", 1001},
		{"below half rounds down", "10.004", 1000},
		{"whole dollars", "50000", 5000000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.dollars)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, FromDollars(d))
		})
	}
}

func TestMulRate(t *testing.T) {
	tests := []struct {
		name     string
		amount   Cents
		rate     float64
		expected Cents
	}{
		{"ten percent", 1192500, 0.10, 119250},
		{"flat PA rate", 3000000, 0.0307, 92100},
		{"half cent rounds up", 25, 0.10, 3}, // 2.5 cents
		{"zero rate", 500000, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MulRate(tt.amount, decimal.NewFromFloat(tt.rate)))
		})
	}
}

func TestMulRateNoDrift(t *testing.T) {
	// Repeated add/multiply cycles stay exact in integer cents.
	rate := decimal.NewFromFloat(0.10)
	total := Cents(0)
	for i := 0; i < 10000; i++ {
		total = Add(total, MulRate(1000, rate))
	}
	assert.Equal(t, Cents(1000000), total)
}

func TestMax0(t *testing.T) {
	assert.Equal(t, Cents(0), Max0(-1))
	assert.Equal(t, Cents(0), Max0(0))
	assert.Equal(t, Cents(42), Max0(42))
}

func TestHalfFloors(t *testing.T) {
	assert.Equal(t, Cents(706477), Half(1412955))
	assert.Equal(t, Cents(50), Half(100))
	assert.Equal(t, Cents(0), Half(1))
}

func TestFromAnyCoercion(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected Cents
	}{
		{"nil is zero", nil, 0},
		{"int dollars", 50000, 5000000},
		{"float dollars", 123.45, 12345},
		{"numeric string", "921.00", 92100},
		{"dollar-prefixed string", "$30000", 3000000},
		{"comma-grouped currency string", "$1,234.56", 123456},
		{"garbage string is zero", "not a number", 0},
		{"unsupported type is zero", []int{1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromAny(tt.value))
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "$3961.50", Cents(396150).String())
	assert.Equal(t, "-$0.05", Cents(-5).String())
	assert.Equal(t, "$0.00", Cents(0).String())
}
