package calculation

import (
	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
	"github.com/piechiang/usa-tax-calculator/internal/rules"
)

// EducationCredits is the result of the mutually exclusive AOTC/LLC
// choice. At most one of the two credits is non-zero.
type EducationCredits struct {
	AOTC           money.Cents // non-refundable portion
	AOTCRefundable money.Cents
	LLC            money.Cents
}

// ComputeEducationCredits evaluates both education credits and keeps the
// larger, preferring the AOTC on a tie. The AOTC is figured per student
// (100% of the first expense tier plus 25% of the second), the LLC on 20%
// of aggregate expenses up to the cap; both share the same linear MAGI
// phase-out. Students marked lifetime-learning-only contribute to the LLC
// base but not the AOTC. Married-filing-separately taxpayers are
// ineligible for both.
func ComputeEducationCredits(r rules.EducationRules, status domain.FilingStatus, magi money.Cents, students []domain.Student) EducationCredits {
	if status == domain.MarriedSeparately || len(students) == 0 {
		return EducationCredits{}
	}

	start, end := r.PhaseOutStart, r.PhaseOutEnd
	if status.IsJoint() {
		start, end = r.PhaseOutStartJoint, r.PhaseOutEndJoint
	}

	var aotcTotal, expenseTotal money.Cents
	for _, s := range students {
		expenseTotal += s.QualifiedExpenses
		if s.LifetimeLearningOnly {
			continue
		}
		first := money.Min(s.QualifiedExpenses, r.AOTCFirstTier)
		second := money.Min(money.Max0(s.QualifiedExpenses-r.AOTCFirstTier), r.AOTCSecondTier)
		aotcTotal += first + money.MulRate(second, r.AOTCSecondRate)
	}

	aotc := LinearPhaseOut(aotcTotal, magi, start, end)
	llc := LinearPhaseOut(money.MulRate(money.Min(expenseTotal, r.LLCExpenseCap), r.LLCRate), magi, start, end)

	if aotc >= llc {
		if aotc == 0 {
			return EducationCredits{}
		}
		refundable := money.MulRate(aotc, r.AOTCRefundableRate)
		return EducationCredits{AOTC: aotc - refundable, AOTCRefundable: refundable}
	}
	return EducationCredits{LLC: llc}
}
