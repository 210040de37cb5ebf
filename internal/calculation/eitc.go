package calculation

import (
	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
	"github.com/piechiang/usa-tax-calculator/internal/rules"
)

// EarnedIncomeCredit computes the EITC. The credit is evaluated on
// min(AGI, earned income) across three linear regions: phase-in at the
// row's rate, a flat plateau at the maximum, and phase-out from the
// filing-status start. Investment income over the ceiling disqualifies the
// taxpayer entirely, and a childless claimant (and spouse, on a joint
// return) must be inside the statutory age window.
func EarnedIncomeCredit(r rules.EITCRules, status domain.FilingStatus, agi, earnedIncome, investmentIncome money.Cents, primaryAge, spouseAge, childCount int) money.Cents {
	if investmentIncome > r.InvestmentIncomeLimit {
		return 0
	}
	if earnedIncome <= 0 {
		return 0
	}

	if childCount == 0 {
		if primaryAge < r.ChildlessMinAge || primaryAge > r.ChildlessMaxAge {
			return 0
		}
		if status == domain.MarriedJointly && (spouseAge < r.ChildlessMinAge || spouseAge > r.ChildlessMaxAge) {
			return 0
		}
	}
	if childCount > 3 {
		childCount = 3
	}
	row := r.Rows[childCount]

	income := money.Min(agi, earnedIncome)
	phaseIn := money.MulRate(income, row.PhaseInRate)

	start := row.PhaseOutStart
	if status.IsJoint() {
		start = row.PhaseOutStartJoint
	}
	phaseOut := row.MaxCredit - money.MulRate(money.Max0(income-start), row.PhaseOutRate)

	credit := money.Min(phaseIn, money.Min(row.MaxCredit, phaseOut))
	return money.Max0(credit)
}
