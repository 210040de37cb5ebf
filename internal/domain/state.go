package domain

import (
	"github.com/piechiang/usa-tax-calculator/internal/money"
	"github.com/shopspring/decimal"
)

// StateSpecific is the open jurisdiction-defined payload. Each state
// calculator reads only the fields it defines; zero values mean "not
// supplied".
type StateSpecific struct {
	Age       int `yaml:"age,omitempty" json:"age,omitempty"`
	SpouseAge int `yaml:"spouse_age,omitempty" json:"spouse_age,omitempty"`

	PropertyTaxPaid money.Cents `yaml:"property_tax_paid,omitempty" json:"property_tax_paid,omitempty"`
	RentPaid        money.Cents `yaml:"rent_paid,omitempty" json:"rent_paid,omitempty"`

	SocialSecurityBenefits  money.Cents `yaml:"social_security_benefits,omitempty" json:"social_security_benefits,omitempty"`
	PensionIncome           money.Cents `yaml:"pension_income,omitempty" json:"pension_income,omitempty"`
	RetirementDistributions money.Cents `yaml:"retirement_distributions,omitempty" json:"retirement_distributions,omitempty"`

	// LocalRate overrides the jurisdiction's default local-tax rate where
	// one applies (e.g. Maryland county rates).
	LocalRate decimal.Decimal `yaml:"local_rate,omitempty" json:"local_rate,omitempty"`
}

// RetirementIncome sums the payload's retirement components.
func (s StateSpecific) RetirementIncome() money.Cents {
	return money.Add(s.SocialSecurityBenefits, s.PensionIncome, s.RetirementDistributions)
}

// StateTaxInput wraps a federal result with the jurisdiction-facing fields
// a state calculator consumes.
type StateTaxInput struct {
	Federal      *FederalResult `json:"federal"`
	FilingStatus FilingStatus   `json:"filing_status"`
	Dependents   int            `json:"dependents"`
	Jurisdiction string         `json:"jurisdiction"`

	Withholding       money.Cents   `json:"withholding"`
	EstimatedPayments money.Cents   `json:"estimated_payments"`
	Specific          StateSpecific `json:"specific"`
}

// Payments returns the total state payments remitted.
func (s *StateTaxInput) Payments() money.Cents {
	return s.Withholding + s.EstimatedPayments
}

// StateResult is the standardized outcome of a jurisdiction computation.
// RefundOrOwe follows the federal sign convention: positive is a refund.
type StateResult struct {
	Jurisdiction string `json:"jurisdiction"`
	TaxYear      int    `json:"tax_year"`

	AGI           money.Cents `json:"agi"`
	TaxableIncome money.Cents `json:"taxable_income"`

	StateTax money.Cents `json:"state_tax"`
	LocalTax money.Cents `json:"local_tax"`

	NonRefundableCredits money.Cents `json:"non_refundable_credits"`
	RefundableCredits    money.Cents `json:"refundable_credits"`

	TotalLiability money.Cents `json:"total_liability"`
	TotalPayments  money.Cents `json:"total_payments"`
	RefundOrOwe    money.Cents `json:"refund_or_owe"`

	Notes []string `json:"notes,omitempty"`
}
