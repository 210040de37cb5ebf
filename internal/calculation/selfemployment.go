package calculation

import (
	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
	"github.com/piechiang/usa-tax-calculator/internal/rules"
)

// SelfEmploymentTax computes the Schedule SE result from net
// self-employment profit and the taxpayer's W-2 wage amounts. OASDI
// coordinates with employer-withheld Social Security: only the wage base
// remaining after W-2 Social Security wages is exposed to the 12.4% rate.
// A zero or negative profit produces an all-zero result: no tax, and no
// half-deduction.
//
// This runs first in the pipeline: the half-deduction feeds AGI, while the
// tax itself is computed from gross profit before AGI exists.
func SelfEmploymentTax(r rules.SelfEmploymentRules, status domain.FilingStatus, netProfit, w2SSWages, w2MedicareWages money.Cents) domain.SelfEmploymentTax {
	if netProfit <= 0 {
		return domain.SelfEmploymentTax{}
	}

	netEarnings := money.MulRate(netProfit, r.NetEarningsRate)

	oasdiBase := money.Min(netEarnings, money.Max0(r.WageBase-w2SSWages))
	oasdi := money.MulRate(oasdiBase, r.OASDIRate)

	medicare := money.MulRate(netEarnings, r.MedicareRate)

	// Additional Medicare Tax (Form 8959) counts W-2 Medicare wages plus
	// net earnings against the filing-status threshold.
	additionalBase := money.Max0(w2MedicareWages + netEarnings - r.AdditionalMedicareThreshold[status])
	additional := money.MulRate(additionalBase, r.AdditionalMedicareRate)

	return domain.SelfEmploymentTax{
		NetEarnings:        netEarnings,
		OASDI:              oasdi,
		Medicare:           medicare,
		AdditionalMedicare: additional,
		// The above-the-line deduction is half of OASDI plus Medicare,
		// floored to the cent; Additional Medicare is excluded by statute.
		HalfDeduction: money.Half(oasdi + medicare),
	}
}
