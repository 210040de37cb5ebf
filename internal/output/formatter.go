// Package output renders computed returns for the CLI: a console report
// and a JSON export.
package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
)

// ReturnDocument bundles everything one computation produced. RunID is
// assigned at export time; State is nil when no state was requested.
type ReturnDocument struct {
	RunID   string                `json:"run_id"`
	TaxYear int                   `json:"tax_year"`
	Federal *domain.FederalResult `json:"federal"`
	State   *domain.StateResult   `json:"state,omitempty"`
}

// Formatter renders a ReturnDocument. Implementations are pure: no side
// effects beyond deterministic formatting.
type Formatter interface {
	Format(doc *ReturnDocument) ([]byte, error)
	// Name returns a short identifier for logging and flag values.
	Name() string
}

// ConsoleFormatter renders a tabular plain-text report.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(doc *ReturnDocument) ([]byte, error) {
	if doc == nil || doc.Federal == nil {
		return nil, fmt.Errorf("nothing to format")
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	federal := doc.Federal

	fmt.Fprintf(w, "Federal return (%d, %s)\n", federal.TaxYear, federal.FilingStatus)
	fmt.Fprintf(w, "  Total income\t%s\n", federal.TotalIncome)
	fmt.Fprintf(w, "  AGI\t%s\n", federal.AGI)
	deduction := "standard"
	if federal.Itemizing {
		deduction = "itemized"
	}
	fmt.Fprintf(w, "  Deduction (%s)\t%s\n", deduction, federal.DeductionUsed)
	if federal.QBIDeduction > 0 {
		fmt.Fprintf(w, "  QBI deduction\t%s\n", federal.QBIDeduction)
	}
	fmt.Fprintf(w, "  Taxable income\t%s\n", federal.TaxableIncome)
	fmt.Fprintf(w, "  Tax before credits\t%s\n", federal.TaxBeforeCredits)
	if se := federal.SelfEmployment.Total(); se > 0 {
		fmt.Fprintf(w, "  Self-employment tax\t%s\n", se)
	}
	if federal.AdditionalTaxes.NIIT > 0 {
		fmt.Fprintf(w, "  NIIT\t%s\n", federal.AdditionalTaxes.NIIT)
	}
	if federal.AdditionalTaxes.AdditionalMedicare > 0 {
		fmt.Fprintf(w, "  Additional Medicare\t%s\n", federal.AdditionalTaxes.AdditionalMedicare)
	}
	if nr := federal.Credits.NonRefundable(); nr > 0 {
		fmt.Fprintf(w, "  Non-refundable credits\t%s\n", nr)
	}
	if r := federal.Credits.Refundable(); r > 0 {
		fmt.Fprintf(w, "  Refundable credits\t%s\n", r)
	}
	fmt.Fprintf(w, "  Total tax\t%s\n", federal.TotalTax)
	fmt.Fprintf(w, "  Total payments\t%s\n", federal.TotalPayments)
	writeSettlement(w, federal.RefundOrOwe)

	if doc.State != nil {
		state := doc.State
		fmt.Fprintf(w, "\n%s return\n", state.Jurisdiction)
		fmt.Fprintf(w, "  State AGI\t%s\n", state.AGI)
		fmt.Fprintf(w, "  State taxable income\t%s\n", state.TaxableIncome)
		fmt.Fprintf(w, "  State tax\t%s\n", state.StateTax)
		if state.LocalTax > 0 {
			fmt.Fprintf(w, "  Local tax\t%s\n", state.LocalTax)
		}
		fmt.Fprintf(w, "  Total liability\t%s\n", state.TotalLiability)
		writeSettlement(w, state.RefundOrOwe)
		for _, note := range state.Notes {
			fmt.Fprintf(w, "  Note: %s\n", note)
		}
	}
	for _, note := range federal.Notes {
		fmt.Fprintf(w, "\nNote: %s\n", note)
	}

	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeSettlement labels the displayed amount by its sign, so the number
// shown is always the absolute value of refund-or-owe.
func writeSettlement(w *tabwriter.Writer, refundOrOwe money.Cents) {
	if refundOrOwe >= 0 {
		fmt.Fprintf(w, "  Refund\t%s\n", refundOrOwe)
		return
	}
	fmt.Fprintf(w, "  Amount owed\t%s\n", -refundOrOwe)
}
