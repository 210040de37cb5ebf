package calculation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
	"github.com/piechiang/usa-tax-calculator/internal/rules"
)

func childBorn(year int) domain.Child {
	return domain.Child{
		BirthDate:          time.Date(year, 6, 15, 0, 0, 0, 0, time.UTC),
		MonthsWithTaxpayer: 12,
	}
}

func TestQualifiesForCTC(t *testing.T) {
	r := rules.Federal2025().ChildTaxCredit

	tests := []struct {
		name  string
		child domain.Child
		want  bool
	}{
		{"ten year old resident all year", childBorn(2015), true},
		{"sixteen at year end qualifies", childBorn(2009), true},
		{"seventeen at year end does not", childBorn(2008), false},
		{"under six months residency", domain.Child{BirthDate: time.Date(2018, 3, 1, 0, 0, 0, 0, time.UTC), MonthsWithTaxpayer: 5}, false},
		{"provided own support", domain.Child{BirthDate: time.Date(2012, 3, 1, 0, 0, 0, 0, time.UTC), MonthsWithTaxpayer: 12, ProvidedOwnSupport: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QualifiesForCTC(r, tt.child, 2025))
		})
	}
}

func TestChildTaxCredit(t *testing.T) {
	r := rules.Federal2025().ChildTaxCredit
	twoKids := []domain.Child{childBorn(2015), childBorn(2018)}

	t.Run("full credit at the joint threshold", func(t *testing.T) {
		result := ChildTaxCredit(r, twoKids, 2025, domain.MarriedJointly, money.FromDollarInt(400000))
		assert.Equal(t, 2, result.QualifyingChildren)
		assert.Equal(t, money.FromDollarInt(4000), result.Credit)
	})

	t.Run("one dollar over the threshold costs a full step", func(t *testing.T) {
		result := ChildTaxCredit(r, twoKids, 2025, domain.MarriedJointly, money.FromDollarInt(400001))
		assert.Equal(t, money.FromDollarInt(3950), result.Credit)
	})

	t.Run("phase-out can exhaust the credit", func(t *testing.T) {
		result := ChildTaxCredit(r, []domain.Child{childBorn(2015)}, 2025, domain.Single, money.FromDollarInt(300000))
		assert.Equal(t, money.Cents(0), result.Credit)
	})

	t.Run("no qualifying children no credit", func(t *testing.T) {
		result := ChildTaxCredit(r, []domain.Child{childBorn(2005)}, 2025, domain.Single, money.FromDollarInt(50000))
		assert.Equal(t, 0, result.QualifyingChildren)
		assert.Equal(t, money.Cents(0), result.Credit)
	})
}

func TestSplitChildCredit(t *testing.T) {
	r := rules.Federal2025().ChildTaxCredit

	t.Run("liability absorbs then ACTC picks up the rest", func(t *testing.T) {
		result := ChildCreditResult{QualifyingChildren: 2, Credit: money.FromDollarInt(4000)}
		nonRef, ref := SplitChildCredit(r, result, money.FromDollarInt(1000), money.FromDollarInt(30000))
		assert.Equal(t, money.FromDollarInt(1000), nonRef)
		// min(leftover 3,000; 1,700 x 2 = 3,400; 15% x 27,500 = 4,125)
		assert.Equal(t, money.FromDollarInt(3000), ref)
	})

	t.Run("earned income limits the refundable portion", func(t *testing.T) {
		result := ChildCreditResult{QualifyingChildren: 2, Credit: money.FromDollarInt(4000)}
		nonRef, ref := SplitChildCredit(r, result, 0, money.FromDollarInt(5000))
		assert.Equal(t, money.Cents(0), nonRef)
		// 15% of (5,000 - 2,500)
		assert.Equal(t, money.FromDollarInt(375), ref)
	})

	t.Run("per-child cap limits the refundable portion", func(t *testing.T) {
		result := ChildCreditResult{QualifyingChildren: 1, Credit: money.FromDollarInt(2000)}
		nonRef, ref := SplitChildCredit(r, result, 0, money.FromDollarInt(50000))
		assert.Equal(t, money.Cents(0), nonRef)
		assert.Equal(t, money.FromDollarInt(1700), ref)
	})

	t.Run("fully absorbed by liability", func(t *testing.T) {
		result := ChildCreditResult{QualifyingChildren: 1, Credit: money.FromDollarInt(2000)}
		nonRef, ref := SplitChildCredit(r, result, money.FromDollarInt(10000), money.FromDollarInt(50000))
		assert.Equal(t, money.FromDollarInt(2000), nonRef)
		assert.Equal(t, money.Cents(0), ref)
	})
}
