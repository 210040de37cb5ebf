package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/piechiang/usa-tax-calculator/internal/money"
)

// FilingStatus identifies the taxpayer's federal filing status. Every rules
// table (brackets, deductions, thresholds) is keyed by it.
type FilingStatus string

const (
	Single                    FilingStatus = "single"
	MarriedJointly            FilingStatus = "married_jointly"
	MarriedSeparately         FilingStatus = "married_separately"
	HeadOfHousehold           FilingStatus = "head_of_household"
	QualifyingSurvivingSpouse FilingStatus = "qualifying_surviving_spouse"
)

// ParseFilingStatus maps an input string to a FilingStatus, ignoring case
// and surrounding whitespace.
func ParseFilingStatus(s string) (FilingStatus, error) {
	switch normalized := FilingStatus(strings.ToLower(strings.TrimSpace(s))); normalized {
	case Single, MarriedJointly, MarriedSeparately, HeadOfHousehold, QualifyingSurvivingSpouse:
		return normalized, nil
	}
	return "", fmt.Errorf("unrecognized filing status %q", s)
}

// IsJoint reports whether the status uses the joint-return parameter column
// (married filing jointly and qualifying surviving spouse share it).
func (fs FilingStatus) IsJoint() bool {
	return fs == MarriedJointly || fs == QualifyingSurvivingSpouse
}

// Income is the taxpayer's income breakdown. All amounts are cents.
// QualifiedDividends is the qualified subset of OrdinaryDividends, not an
// additional amount.
type Income struct {
	Wages                 money.Cents `yaml:"wages" json:"wages"`
	W2SocialSecurityWages money.Cents `yaml:"w2_social_security_wages" json:"w2_social_security_wages"`
	W2MedicareWages       money.Cents `yaml:"w2_medicare_wages" json:"w2_medicare_wages"`
	Interest              money.Cents `yaml:"interest" json:"interest"`
	OrdinaryDividends     money.Cents `yaml:"ordinary_dividends" json:"ordinary_dividends"`
	QualifiedDividends    money.Cents `yaml:"qualified_dividends" json:"qualified_dividends"`
	ShortTermCapitalGain  money.Cents `yaml:"short_term_capital_gain" json:"short_term_capital_gain"`
	LongTermCapitalGain   money.Cents `yaml:"long_term_capital_gain" json:"long_term_capital_gain"`
	ScheduleCNetProfit    money.Cents `yaml:"schedule_c_net_profit" json:"schedule_c_net_profit"`
	K1OrdinaryIncome      money.Cents `yaml:"k1_ordinary_income" json:"k1_ordinary_income"`
	RentalRoyalty         money.Cents `yaml:"rental_royalty" json:"rental_royalty"`
	Other                 money.Cents `yaml:"other" json:"other"`
}

// Adjustments are above-the-line reductions to total income. The SE-tax
// half-deduction is computed by the engine and is not included here.
type Adjustments struct {
	StudentLoanInterest money.Cents `yaml:"student_loan_interest" json:"student_loan_interest"`
	IRAContributions    money.Cents `yaml:"ira_contributions" json:"ira_contributions"`
	HSAContributions    money.Cents `yaml:"hsa_contributions" json:"hsa_contributions"`
	Other               money.Cents `yaml:"other" json:"other"`
}

// Total sums the adjustment components.
func (a Adjustments) Total() money.Cents {
	return money.Add(a.StudentLoanInterest, a.IRAContributions, a.HSAContributions, a.Other)
}

// Itemized holds the itemized-deduction components before any statutory
// caps; the deduction stage applies the SALT cap and the medical AGI floor.
type Itemized struct {
	StateLocalTaxes  money.Cents `yaml:"state_local_taxes" json:"state_local_taxes"`
	MortgageInterest money.Cents `yaml:"mortgage_interest" json:"mortgage_interest"`
	Charitable       money.Cents `yaml:"charitable" json:"charitable"`
	Medical          money.Cents `yaml:"medical" json:"medical"`
	Other            money.Cents `yaml:"other" json:"other"`
}

// Child describes a potentially qualifying child for the child tax credit.
type Child struct {
	Name               string    `yaml:"name" json:"name"`
	BirthDate          time.Time `yaml:"birth_date" json:"birth_date"`
	MonthsWithTaxpayer int       `yaml:"months_with_taxpayer" json:"months_with_taxpayer"`
	IsStudent          bool      `yaml:"is_student,omitempty" json:"is_student,omitempty"`
	IsDisabled         bool      `yaml:"is_disabled,omitempty" json:"is_disabled,omitempty"`
	ProvidedOwnSupport bool      `yaml:"provided_own_support,omitempty" json:"provided_own_support,omitempty"`
}

// AgeAtYearEnd returns the child's age on December 31 of the tax year.
func (c Child) AgeAtYearEnd(taxYear int) int {
	return ageAt(c.BirthDate, time.Date(taxYear, 12, 31, 0, 0, 0, 0, time.UTC))
}

// Student describes one student's qualifying education expenses for the
// AOTC/LLC computation.
type Student struct {
	Name              string      `yaml:"name" json:"name"`
	QualifiedExpenses money.Cents `yaml:"qualified_expenses" json:"qualified_expenses"`
	// LifetimeLearningOnly marks a student outside the AOTC's reach
	// (graduate study, or the four-year limit already used); their
	// expenses still count toward the LLC.
	LifetimeLearningOnly bool `yaml:"lifetime_learning_only,omitempty" json:"lifetime_learning_only,omitempty"`
}

// Business carries the qualified-business-income inputs. When
// QualifiedIncome is zero the engine derives it from Schedule C and K-1
// income net of the SE half-deduction.
type Business struct {
	QualifiedIncome money.Cents `yaml:"qualified_income" json:"qualified_income"`
	W2WagesPaid     money.Cents `yaml:"w2_wages_paid" json:"w2_wages_paid"`
	UBIA            money.Cents `yaml:"ubia" json:"ubia"`
	IsSSTB          bool        `yaml:"is_sstb,omitempty" json:"is_sstb,omitempty"`
}

// Payments are amounts already remitted toward the federal liability.
type Payments struct {
	Withholding       money.Cents `yaml:"withholding" json:"withholding"`
	EstimatedPayments money.Cents `yaml:"estimated_payments" json:"estimated_payments"`
}

// TaxpayerInput is the complete structured description of one return. It is
// a value: built by the caller (or the YAML parser), passed through the
// pipeline, and discarded. Cross-field business validation (dependents vs.
// qualifying children, SSN formats) is an upstream concern; the engine only
// clamps malformed numbers to zero.
type TaxpayerInput struct {
	FilingStatus     FilingStatus `yaml:"filing_status" json:"filing_status"`
	PrimaryBirthDate time.Time    `yaml:"primary_birth_date" json:"primary_birth_date"`
	SpouseBirthDate  time.Time    `yaml:"spouse_birth_date,omitempty" json:"spouse_birth_date,omitempty"`
	PrimaryBlind     bool         `yaml:"primary_blind,omitempty" json:"primary_blind,omitempty"`
	SpouseBlind      bool         `yaml:"spouse_blind,omitempty" json:"spouse_blind,omitempty"`

	Income      Income      `yaml:"income" json:"income"`
	Adjustments Adjustments `yaml:"adjustments" json:"adjustments"`
	Itemized    Itemized    `yaml:"itemized" json:"itemized"`
	// ForceItemize skips the standard-vs-itemized comparison and itemizes
	// even when the standard deduction is larger.
	ForceItemize bool `yaml:"force_itemize,omitempty" json:"force_itemize,omitempty"`

	Dependents int       `yaml:"dependents" json:"dependents"`
	Children   []Child   `yaml:"children,omitempty" json:"children,omitempty"`
	Students   []Student `yaml:"students,omitempty" json:"students,omitempty"`
	Business   Business  `yaml:"business" json:"business"`
	Payments   Payments  `yaml:"payments" json:"payments"`
}

// PrimaryAge returns the primary taxpayer's age at year end, or 0 when no
// birth date was supplied.
func (t *TaxpayerInput) PrimaryAge(taxYear int) int {
	return ageAt(t.PrimaryBirthDate, time.Date(taxYear, 12, 31, 0, 0, 0, 0, time.UTC))
}

// SpouseAge returns the spouse's age at year end, or 0 when no birth date
// was supplied.
func (t *TaxpayerInput) SpouseAge(taxYear int) int {
	return ageAt(t.SpouseBirthDate, time.Date(taxYear, 12, 31, 0, 0, 0, 0, time.UTC))
}

func ageAt(birth, at time.Time) int {
	if birth.IsZero() {
		return 0
	}
	age := at.Year() - birth.Year()
	if at.YearDay() < birth.YearDay() {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
