package domain

import (
	"github.com/piechiang/usa-tax-calculator/internal/money"
)

// SelfEmploymentTax is the Schedule SE breakdown. Total excludes the
// Additional Medicare Tax, which the pipeline reports separately.
type SelfEmploymentTax struct {
	NetEarnings        money.Cents `json:"net_earnings"`
	OASDI              money.Cents `json:"oasdi"`
	Medicare           money.Cents `json:"medicare"`
	AdditionalMedicare money.Cents `json:"additional_medicare"`
	HalfDeduction      money.Cents `json:"half_deduction"`
}

// Total is the SE tax carried into total tax: OASDI plus Medicare.
func (s SelfEmploymentTax) Total() money.Cents {
	return s.OASDI + s.Medicare
}

// AMTResult is the alternative-minimum-tax slot. The engine ships without
// an AMT computation; Implemented stays false and Amount zero so callers
// can distinguish "no AMT engine" from a computed zero.
type AMTResult struct {
	Implemented bool        `json:"implemented"`
	Amount      money.Cents `json:"amount"`
}

// AdditionalTaxes are the taxes added after non-refundable credits.
type AdditionalTaxes struct {
	SelfEmployment     money.Cents `json:"self_employment"`
	NIIT               money.Cents `json:"niit"`
	AdditionalMedicare money.Cents `json:"additional_medicare"`
	AMT                AMTResult   `json:"amt"`
}

// Total sums the additional taxes. The AMT stub contributes nothing while
// unimplemented.
func (a AdditionalTaxes) Total() money.Cents {
	total := money.Add(a.SelfEmployment, a.NIIT, a.AdditionalMedicare)
	if a.AMT.Implemented {
		total += a.AMT.Amount
	}
	return total
}

// CreditBreakdown itemizes the federal credits. AOTC is split into its
// non-refundable and 40% refundable portions.
type CreditBreakdown struct {
	CTC             money.Cents `json:"ctc"`
	ACTC            money.Cents `json:"actc"`
	EITC            money.Cents `json:"eitc"`
	AOTC            money.Cents `json:"aotc"`
	AOTCRefundable  money.Cents `json:"aotc_refundable"`
	LLC             money.Cents `json:"llc"`
	OtherNonRefund  money.Cents `json:"other_non_refundable"`
	OtherRefundable money.Cents `json:"other_refundable"`
}

// NonRefundable sums the portions that can only offset liability.
func (c CreditBreakdown) NonRefundable() money.Cents {
	return money.Add(c.CTC, c.AOTC, c.LLC, c.OtherNonRefund)
}

// Refundable sums the portions payable beyond liability.
func (c CreditBreakdown) Refundable() money.Cents {
	return money.Add(c.ACTC, c.EITC, c.AOTCRefundable, c.OtherRefundable)
}

// FederalResult is the outcome of one federal computation. It is produced
// once per call, is immutable by convention, and has no lifecycle beyond
// the call that created it. RefundOrOwe is positive for a refund, negative
// for a balance due.
type FederalResult struct {
	TaxYear      int          `json:"tax_year"`
	FilingStatus FilingStatus `json:"filing_status"`

	TotalIncome money.Cents `json:"total_income"`
	AGI         money.Cents `json:"agi"`

	StandardDeduction money.Cents `json:"standard_deduction"`
	ItemizedDeduction money.Cents `json:"itemized_deduction"`
	DeductionUsed     money.Cents `json:"deduction_used"`
	Itemizing         bool        `json:"itemizing"`
	QBIDeduction      money.Cents `json:"qbi_deduction"`

	TaxableIncome    money.Cents `json:"taxable_income"`
	OrdinaryTax      money.Cents `json:"ordinary_tax"`
	PreferentialTax  money.Cents `json:"preferential_tax"`
	TaxBeforeCredits money.Cents `json:"tax_before_credits"`

	SelfEmployment  SelfEmploymentTax `json:"self_employment"`
	AdditionalTaxes AdditionalTaxes   `json:"additional_taxes"`
	Credits         CreditBreakdown   `json:"credits"`

	TotalTax      money.Cents `json:"total_tax"`
	TotalPayments money.Cents `json:"total_payments"`
	RefundOrOwe   money.Cents `json:"refund_or_owe"`

	// Errors is non-empty only when a pipeline stage failed; totals are
	// then zeroed rather than partially populated.
	Errors []string `json:"errors,omitempty"`
	Notes  []string `json:"notes,omitempty"`
}
