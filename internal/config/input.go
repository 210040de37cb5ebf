// Package config parses taxpayer return files. Monetary fields in the
// YAML are dollars in any reasonable form (integer, float, or string)
// and coerce permissively to cents: a missing or malformed amount is
// treated as zero income or zero deduction, never a parse failure. The
// structural fields (filing status, dates, counts) are validated strictly.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
)

// StateSection is the optional state block of a return file.
type StateSection struct {
	Code              string
	Withholding       money.Cents
	EstimatedPayments money.Cents
	Specific          domain.StateSpecific
}

// Return is a parsed return file: the federal input, the tax year, and
// the optional state section (nil when absent).
type Return struct {
	TaxYear  int
	Taxpayer *domain.TaxpayerInput
	State    *StateSection
}

// InputParser handles parsing of taxpayer return files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

type fileIncome struct {
	Wages                 any `yaml:"wages"`
	W2SocialSecurityWages any `yaml:"w2_social_security_wages"`
	W2MedicareWages       any `yaml:"w2_medicare_wages"`
	Interest              any `yaml:"interest"`
	OrdinaryDividends     any `yaml:"ordinary_dividends"`
	QualifiedDividends    any `yaml:"qualified_dividends"`
	ShortTermCapitalGain  any `yaml:"short_term_capital_gain"`
	LongTermCapitalGain   any `yaml:"long_term_capital_gain"`
	ScheduleCNetProfit    any `yaml:"schedule_c_net_profit"`
	K1OrdinaryIncome      any `yaml:"k1_ordinary_income"`
	RentalRoyalty         any `yaml:"rental_royalty"`
	Other                 any `yaml:"other"`
}

type fileAdjustments struct {
	StudentLoanInterest any `yaml:"student_loan_interest"`
	IRAContributions    any `yaml:"ira_contributions"`
	HSAContributions    any `yaml:"hsa_contributions"`
	Other               any `yaml:"other"`
}

type fileItemized struct {
	StateLocalTaxes  any `yaml:"state_local_taxes"`
	MortgageInterest any `yaml:"mortgage_interest"`
	Charitable       any `yaml:"charitable"`
	Medical          any `yaml:"medical"`
	Other            any `yaml:"other"`
}

type fileChild struct {
	Name               string    `yaml:"name"`
	BirthDate          time.Time `yaml:"birth_date"`
	MonthsWithTaxpayer int       `yaml:"months_with_taxpayer"`
	IsStudent          bool      `yaml:"is_student"`
	IsDisabled         bool      `yaml:"is_disabled"`
	ProvidedOwnSupport bool      `yaml:"provided_own_support"`
}

type fileStudent struct {
	Name                 string `yaml:"name"`
	QualifiedExpenses    any    `yaml:"qualified_expenses"`
	LifetimeLearningOnly bool   `yaml:"lifetime_learning_only"`
}

type fileBusiness struct {
	QualifiedIncome any  `yaml:"qualified_income"`
	W2WagesPaid     any  `yaml:"w2_wages_paid"`
	UBIA            any  `yaml:"ubia"`
	IsSSTB          bool `yaml:"is_sstb"`
}

type filePayments struct {
	Withholding       any `yaml:"withholding"`
	EstimatedPayments any `yaml:"estimated_payments"`
}

type fileStateSpecific struct {
	Age                     int             `yaml:"age"`
	SpouseAge               int             `yaml:"spouse_age"`
	PropertyTaxPaid         any             `yaml:"property_tax_paid"`
	RentPaid                any             `yaml:"rent_paid"`
	SocialSecurityBenefits  any             `yaml:"social_security_benefits"`
	PensionIncome           any             `yaml:"pension_income"`
	RetirementDistributions any             `yaml:"retirement_distributions"`
	LocalRate               decimal.Decimal `yaml:"local_rate"`
}

type fileState struct {
	Code              string            `yaml:"code"`
	Withholding       any               `yaml:"withholding"`
	EstimatedPayments any               `yaml:"estimated_payments"`
	Specific          fileStateSpecific `yaml:"specific"`
}

type fileReturn struct {
	TaxYear          int             `yaml:"tax_year"`
	FilingStatus     string          `yaml:"filing_status"`
	PrimaryBirthDate time.Time       `yaml:"primary_birth_date"`
	SpouseBirthDate  time.Time       `yaml:"spouse_birth_date"`
	PrimaryBlind     bool            `yaml:"primary_blind"`
	SpouseBlind      bool            `yaml:"spouse_blind"`
	Income           fileIncome      `yaml:"income"`
	Adjustments      fileAdjustments `yaml:"adjustments"`
	Itemized         fileItemized    `yaml:"itemized"`
	ForceItemize     bool            `yaml:"force_itemize"`
	Dependents       int             `yaml:"dependents"`
	Children         []fileChild     `yaml:"children"`
	Students         []fileStudent   `yaml:"students"`
	Business         fileBusiness    `yaml:"business"`
	Payments         filePayments    `yaml:"payments"`
	State            *fileState      `yaml:"state"`
}

// LoadReturn loads and validates a taxpayer return from a YAML file.
func (ip *InputParser) LoadReturn(filename string) (*Return, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "read return file %s", filename)
	}
	return ip.ParseReturn(data)
}

// ParseReturn parses a YAML return document.
func (ip *InputParser) ParseReturn(data []byte) (*Return, error) {
	var file fileReturn
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "parse return YAML")
	}

	status, err := domain.ParseFilingStatus(file.FilingStatus)
	if err != nil {
		return nil, err
	}
	if file.TaxYear == 0 {
		file.TaxYear = 2025
	}

	taxpayer := &domain.TaxpayerInput{
		FilingStatus:     status,
		PrimaryBirthDate: file.PrimaryBirthDate,
		SpouseBirthDate:  file.SpouseBirthDate,
		PrimaryBlind:     file.PrimaryBlind,
		SpouseBlind:      file.SpouseBlind,
		Income: domain.Income{
			Wages:                 money.FromAny(file.Income.Wages),
			W2SocialSecurityWages: money.FromAny(file.Income.W2SocialSecurityWages),
			W2MedicareWages:       money.FromAny(file.Income.W2MedicareWages),
			Interest:              money.FromAny(file.Income.Interest),
			OrdinaryDividends:     money.FromAny(file.Income.OrdinaryDividends),
			QualifiedDividends:    money.FromAny(file.Income.QualifiedDividends),
			ShortTermCapitalGain:  money.FromAny(file.Income.ShortTermCapitalGain),
			LongTermCapitalGain:   money.FromAny(file.Income.LongTermCapitalGain),
			ScheduleCNetProfit:    money.FromAny(file.Income.ScheduleCNetProfit),
			K1OrdinaryIncome:      money.FromAny(file.Income.K1OrdinaryIncome),
			RentalRoyalty:         money.FromAny(file.Income.RentalRoyalty),
			Other:                 money.FromAny(file.Income.Other),
		},
		Adjustments: domain.Adjustments{
			StudentLoanInterest: money.FromAny(file.Adjustments.StudentLoanInterest),
			IRAContributions:    money.FromAny(file.Adjustments.IRAContributions),
			HSAContributions:    money.FromAny(file.Adjustments.HSAContributions),
			Other:               money.FromAny(file.Adjustments.Other),
		},
		Itemized: domain.Itemized{
			StateLocalTaxes:  money.FromAny(file.Itemized.StateLocalTaxes),
			MortgageInterest: money.FromAny(file.Itemized.MortgageInterest),
			Charitable:       money.FromAny(file.Itemized.Charitable),
			Medical:          money.FromAny(file.Itemized.Medical),
			Other:            money.FromAny(file.Itemized.Other),
		},
		ForceItemize: file.ForceItemize,
		Dependents:   file.Dependents,
		Business: domain.Business{
			QualifiedIncome: money.FromAny(file.Business.QualifiedIncome),
			W2WagesPaid:     money.FromAny(file.Business.W2WagesPaid),
			UBIA:            money.FromAny(file.Business.UBIA),
			IsSSTB:          file.Business.IsSSTB,
		},
		Payments: domain.Payments{
			Withholding:       money.FromAny(file.Payments.Withholding),
			EstimatedPayments: money.FromAny(file.Payments.EstimatedPayments),
		},
	}

	for _, child := range file.Children {
		taxpayer.Children = append(taxpayer.Children, domain.Child{
			Name:               child.Name,
			BirthDate:          child.BirthDate,
			MonthsWithTaxpayer: child.MonthsWithTaxpayer,
			IsStudent:          child.IsStudent,
			IsDisabled:         child.IsDisabled,
			ProvidedOwnSupport: child.ProvidedOwnSupport,
		})
	}
	for _, student := range file.Students {
		taxpayer.Students = append(taxpayer.Students, domain.Student{
			Name:                 student.Name,
			QualifiedExpenses:    money.FromAny(student.QualifiedExpenses),
			LifetimeLearningOnly: student.LifetimeLearningOnly,
		})
	}

	result := &Return{TaxYear: file.TaxYear, Taxpayer: taxpayer}
	if file.State != nil {
		result.State = &StateSection{
			Code:              file.State.Code,
			Withholding:       money.FromAny(file.State.Withholding),
			EstimatedPayments: money.FromAny(file.State.EstimatedPayments),
			Specific: domain.StateSpecific{
				Age:                     file.State.Specific.Age,
				SpouseAge:               file.State.Specific.SpouseAge,
				PropertyTaxPaid:         money.FromAny(file.State.Specific.PropertyTaxPaid),
				RentPaid:                money.FromAny(file.State.Specific.RentPaid),
				SocialSecurityBenefits:  money.FromAny(file.State.Specific.SocialSecurityBenefits),
				PensionIncome:           money.FromAny(file.State.Specific.PensionIncome),
				RetirementDistributions: money.FromAny(file.State.Specific.RetirementDistributions),
				LocalRate:               file.State.Specific.LocalRate,
			},
		}
	}

	if err := ip.ValidateReturn(result); err != nil {
		return nil, errors.Wrap(err, "return validation failed")
	}
	return result, nil
}

// ValidateReturn checks the structural fields of a parsed return.
func (ip *InputParser) ValidateReturn(r *Return) error {
	taxpayer := r.Taxpayer
	if taxpayer.Dependents < 0 {
		return errors.New("dependents cannot be negative")
	}
	if len(taxpayer.Children) > taxpayer.Dependents {
		return errors.Errorf("%d children listed but only %d dependents declared",
			len(taxpayer.Children), taxpayer.Dependents)
	}
	for i, child := range taxpayer.Children {
		if child.MonthsWithTaxpayer < 0 || child.MonthsWithTaxpayer > 12 {
			return errors.Errorf("child %d: months_with_taxpayer must be 0-12, got %d", i, child.MonthsWithTaxpayer)
		}
		if child.BirthDate.IsZero() {
			return errors.Errorf("child %d: birth date is required", i)
		}
	}
	for i, student := range taxpayer.Students {
		if student.QualifiedExpenses < 0 {
			return errors.Errorf("student %d: qualified expenses cannot be negative", i)
		}
	}
	if taxpayer.Payments.Withholding < 0 || taxpayer.Payments.EstimatedPayments < 0 {
		return errors.New("payments cannot be negative")
	}
	if r.State != nil && r.State.Code == "" {
		return errors.New("state section requires a jurisdiction code")
	}
	return nil
}
