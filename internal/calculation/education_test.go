package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
	"github.com/piechiang/usa-tax-calculator/internal/rules"
)

func TestComputeEducationCredits(t *testing.T) {
	r := rules.Federal2025().Education
	d := money.FromDollarInt

	t.Run("AOTC wins for a full-expense student", func(t *testing.T) {
		got := ComputeEducationCredits(r, domain.Single, d(50000),
			[]domain.Student{{Name: "A", QualifiedExpenses: d(4000)}})
		// 2,000 + 25% of 2,000 = 2,500, split 60/40.
		assert.Equal(t, d(1500), got.AOTC)
		assert.Equal(t, d(1000), got.AOTCRefundable)
		assert.Equal(t, money.Cents(0), got.LLC)
	})

	t.Run("LLC wins for a lifetime-learning-only student", func(t *testing.T) {
		got := ComputeEducationCredits(r, domain.Single, d(50000),
			[]domain.Student{{Name: "A", QualifiedExpenses: d(10000), LifetimeLearningOnly: true}})
		assert.Equal(t, money.Cents(0), got.AOTC)
		assert.Equal(t, money.Cents(0), got.AOTCRefundable)
		assert.Equal(t, d(2000), got.LLC)
	})

	t.Run("mixed students pool expenses for the LLC comparison", func(t *testing.T) {
		students := []domain.Student{
			{Name: "grad", QualifiedExpenses: d(8000), LifetimeLearningOnly: true},
			{Name: "undergrad", QualifiedExpenses: d(1000)},
		}
		got := ComputeEducationCredits(r, domain.Single, d(50000), students)
		// AOTC 1,000 vs LLC 20% of 9,000 = 1,800: the LLC wins.
		assert.Equal(t, d(1800), got.LLC)
		assert.Equal(t, money.Cents(0), got.AOTC)
	})

	t.Run("AOTC is per student, LLC aggregate is capped", func(t *testing.T) {
		students := []domain.Student{
			{Name: "A", QualifiedExpenses: d(4000)},
			{Name: "B", QualifiedExpenses: d(4000)},
			{Name: "C", QualifiedExpenses: d(4000)},
		}
		got := ComputeEducationCredits(r, domain.MarriedJointly, d(100000), students)
		// Three students at 2,500 each beats 20% of the 10,000 LLC cap.
		assert.Equal(t, d(4500), got.AOTC)
		assert.Equal(t, d(3000), got.AOTCRefundable)
	})

	t.Run("MAGI phase-out halves the credit at band midpoint", func(t *testing.T) {
		got := ComputeEducationCredits(r, domain.Single, d(85000),
			[]domain.Student{{Name: "A", QualifiedExpenses: d(4000)}})
		// 2,500 halved to 1,250, split 60/40.
		assert.Equal(t, d(750), got.AOTC)
		assert.Equal(t, d(500), got.AOTCRefundable)
	})

	t.Run("MAGI past the band yields nothing", func(t *testing.T) {
		got := ComputeEducationCredits(r, domain.Single, d(95000),
			[]domain.Student{{Name: "A", QualifiedExpenses: d(4000)}})
		assert.Equal(t, EducationCredits{}, got)
	})

	t.Run("married filing separately is ineligible", func(t *testing.T) {
		got := ComputeEducationCredits(r, domain.MarriedSeparately, d(40000),
			[]domain.Student{{Name: "A", QualifiedExpenses: d(4000)}})
		assert.Equal(t, EducationCredits{}, got)
	})

	t.Run("no students no credit", func(t *testing.T) {
		assert.Equal(t, EducationCredits{}, ComputeEducationCredits(r, domain.Single, d(40000), nil))
	})
}
