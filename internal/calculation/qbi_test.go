package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
	"github.com/piechiang/usa-tax-calculator/internal/rules"
)

func TestQBIDeduction(t *testing.T) {
	r := rules.Federal2025().QBI
	d := money.FromDollarInt

	t.Run("simple method below the threshold", func(t *testing.T) {
		got := QBIDeduction(r, domain.Single, domain.Business{}, d(50000), d(80000), 0)
		assert.Equal(t, d(10000), got)
	})

	t.Run("taxable income caps the simple method", func(t *testing.T) {
		got := QBIDeduction(r, domain.Single, domain.Business{}, d(50000), d(8000), 0)
		// 20% of QBI is 10,000, but 20% of taxable income is 1,600.
		assert.Equal(t, d(1600), got)
	})

	t.Run("net capital gain shrinks the income cap", func(t *testing.T) {
		got := QBIDeduction(r, domain.Single, domain.Business{}, d(50000), d(52000), d(10000))
		// Cap is 20% of (52,000 - 10,000) = 8,400.
		assert.Equal(t, d(8400), got)
	})

	t.Run("zero or negative QBI yields nothing", func(t *testing.T) {
		assert.Equal(t, money.Cents(0), QBIDeduction(r, domain.Single, domain.Business{}, 0, d(80000), 0))
		assert.Equal(t, money.Cents(0), QBIDeduction(r, domain.Single, domain.Business{}, d(-5000), d(80000), 0))
	})

	t.Run("wage limit binds fully above the band", func(t *testing.T) {
		business := domain.Business{W2WagesPaid: d(30000)}
		got := QBIDeduction(r, domain.Single, business, d(100000), d(260000), 0)
		// Tentative 20,000 against max(50% of wages = 15,000; 25%+2.5% = 7,500).
		assert.Equal(t, d(15000), got)
	})

	t.Run("UBIA alternative can win the limitation", func(t *testing.T) {
		business := domain.Business{W2WagesPaid: d(10000), UBIA: d(800000)}
		got := QBIDeduction(r, domain.Single, business, d(100000), d(260000), 0)
		// max(5,000; 2,500 + 20,000) = 22,500 does not bind below 20,000.
		assert.Equal(t, d(20000), got)
	})

	t.Run("SSTB above the band gets nothing", func(t *testing.T) {
		business := domain.Business{W2WagesPaid: d(100000), IsSSTB: true}
		got := QBIDeduction(r, domain.Single, business, d(100000), d(260000), 0)
		assert.Equal(t, money.Cents(0), got)
	})

	t.Run("limitation blends halfway through the band", func(t *testing.T) {
		// Single threshold 197,300, band 50,000: taxable 222,300 is the
		// midpoint. Tentative 20,000, wage limit 10,000, so half the
		// 10,000 shortfall applies.
		business := domain.Business{W2WagesPaid: d(20000)}
		got := QBIDeduction(r, domain.Single, business, d(100000), d(222300), 0)
		assert.Equal(t, d(15000), got)
	})

	t.Run("SSTB midway through the band keeps half its inputs", func(t *testing.T) {
		business := domain.Business{W2WagesPaid: d(100000), IsSSTB: true}
		got := QBIDeduction(r, domain.Single, business, d(100000), d(222300), 0)
		// Applicable percentage 50%: QBI 50,000, wages 50,000. Tentative
		// 10,000 is under the 25,000 wage limit, so no further reduction.
		assert.Equal(t, d(10000), got)
	})

	t.Run("joint threshold is higher", func(t *testing.T) {
		got := QBIDeduction(r, domain.MarriedJointly, domain.Business{}, d(100000), d(390000), 0)
		assert.Equal(t, d(20000), got)
	})
}
