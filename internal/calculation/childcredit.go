package calculation

import (
	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
	"github.com/piechiang/usa-tax-calculator/internal/rules"
)

// ChildCreditResult is the child tax credit before the refundable split.
type ChildCreditResult struct {
	QualifyingChildren int
	Base               money.Cents
	Credit             money.Cents
}

// QualifiesForCTC applies the child tax credit eligibility tests: under 17
// at year end, lived with the taxpayer at least the statutory months, and
// did not provide their own support.
func QualifiesForCTC(r rules.CTCRules, child domain.Child, taxYear int) bool {
	if child.AgeAtYearEnd(taxYear) > r.MaxChildAge {
		return false
	}
	if child.MonthsWithTaxpayer < r.MinMonthsResident {
		return false
	}
	return !child.ProvidedOwnSupport
}

// ChildTaxCredit computes the combined CTC before the
// non-refundable/refundable split. The phase-out is stepped, not linear:
// AGI exactly at the threshold keeps the full base credit, and the first
// dollar over costs a whole step.
func ChildTaxCredit(r rules.CTCRules, children []domain.Child, taxYear int, status domain.FilingStatus, agi money.Cents) ChildCreditResult {
	count := 0
	for _, child := range children {
		if QualifiesForCTC(r, child, taxYear) {
			count++
		}
	}

	base := money.Cents(count) * r.PerChild
	excess := money.Max0(agi - r.PhaseOutThreshold[status])
	reduction := SteppedReduction(excess, r.PhaseOutPer, r.PhaseOutStep)

	return ChildCreditResult{
		QualifyingChildren: count,
		Base:               base,
		Credit:             money.Max0(base - reduction),
	}
}

// SplitChildCredit divides the credit into the non-refundable portion
// (capped at remaining liability) and the ACTC, which is limited by the
// per-child refundable cap and by 15% of earned income over the floor.
func SplitChildCredit(r rules.CTCRules, result ChildCreditResult, remainingTax, earnedIncome money.Cents) (nonRefundable, refundable money.Cents) {
	nonRefundable = money.Min(result.Credit, money.Max0(remainingTax))
	leftover := result.Credit - nonRefundable
	if leftover <= 0 {
		return nonRefundable, 0
	}

	capByChildren := r.RefundableCap * money.Cents(result.QualifyingChildren)
	capByEarnings := money.MulRate(money.Max0(earnedIncome-r.EarnedIncomeFloor), r.RefundableRate)
	refundable = money.Min(leftover, money.Min(capByChildren, capByEarnings))
	return nonRefundable, refundable
}
