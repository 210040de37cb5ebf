package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
	"github.com/piechiang/usa-tax-calculator/internal/rules"
)

// QBIDeduction computes the §199A deduction. The deduction depends on
// taxable income, which in turn includes the deduction; the pipeline
// resolves that circularity by passing taxable income computed with the
// regular deduction only ("taxable income before QBI") as the limiting
// base, exactly the two-pass structure of the worksheet.
//
// Below the threshold the simple method applies: 20% of QBI, capped at 20%
// of taxable income net of capital gain. Above the threshold the wage/UBIA
// limitation applies in full, with specified-service businesses excluded
// outright; inside the phase-in band the limitation blends in linearly and
// an SSTB's inputs shrink pro rata.
func QBIDeduction(r rules.QBIRules, status domain.FilingStatus, business domain.Business, qbi, taxableBeforeQBI, netCapitalGain money.Cents) money.Cents {
	if qbi <= 0 {
		return 0
	}

	incomeCap := money.MulRate(money.Max0(taxableBeforeQBI-netCapitalGain), r.Rate)
	excess := taxableBeforeQBI - r.Threshold[status]

	if excess <= 0 {
		return money.Min(money.MulRate(qbi, r.Rate), incomeCap)
	}

	band := r.PhaseInRange[status]
	if excess >= band {
		if business.IsSSTB {
			return 0
		}
		limited := money.Min(money.MulRate(qbi, r.Rate), wageUBIALimit(r, business.W2WagesPaid, business.UBIA))
		return money.Min(limited, incomeCap)
	}

	// Inside the band: fraction of the limitation that applies.
	fraction := decimal.NewFromInt(int64(excess)).Div(decimal.NewFromInt(int64(band)))

	wages, ubia := business.W2WagesPaid, business.UBIA
	if business.IsSSTB {
		// An SSTB counts only the applicable percentage of its income,
		// wages, and basis inside the band.
		applicable := decimal.NewFromInt(1).Sub(fraction)
		qbi = money.MulRate(qbi, applicable)
		wages = money.MulRate(wages, applicable)
		ubia = money.MulRate(ubia, applicable)
	}

	tentative := money.MulRate(qbi, r.Rate)
	limit := wageUBIALimit(r, wages, ubia)
	if tentative > limit {
		reduction := money.MulRate(tentative-limit, fraction)
		tentative -= reduction
	}
	return money.Min(money.Max0(tentative), incomeCap)
}

func wageUBIALimit(r rules.QBIRules, wages, ubia money.Cents) money.Cents {
	wagesOnly := money.MulRate(wages, r.WageLimitRate)
	wagesPlusUBIA := money.MulRate(wages, r.WageUBIARate) + money.MulRate(ubia, r.UBIARate)
	return money.Max(wagesOnly, wagesPlusUBIA)
}
