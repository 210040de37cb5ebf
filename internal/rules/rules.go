// Package rules holds the per-year statutory parameters the engine
// consumes: bracket tables, deduction amounts, and credit formulas. A
// FederalRules value is immutable configuration: built once, passed into
// the pipeline, and never mutated, so concurrent computations over the
// same year can share it safely.
package rules

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
)

// Bracket is one marginal-rate range. Ranges are half-open [Min, Max): a
// boundary amount belongs to the higher bracket, matching "over $X"
// statutory language. The last bracket's Max is money.NoCeiling.
type Bracket struct {
	Min  money.Cents     `yaml:"min"`
	Max  money.Cents     `yaml:"max"`
	Rate decimal.Decimal `yaml:"rate"`
}

// SelfEmploymentRules parameterizes Schedule SE.
type SelfEmploymentRules struct {
	NetEarningsRate             decimal.Decimal
	OASDIRate                   decimal.Decimal
	MedicareRate                decimal.Decimal
	AdditionalMedicareRate      decimal.Decimal
	WageBase                    money.Cents
	AdditionalMedicareThreshold map[domain.FilingStatus]money.Cents
}

// NIITRules parameterizes the net investment income tax.
type NIITRules struct {
	Rate      decimal.Decimal
	Threshold map[domain.FilingStatus]money.Cents
}

// CTCRules parameterizes the child tax credit and its refundable portion.
// The phase-out is stepped: PhaseOutStep is subtracted per PhaseOutPer (or
// fraction thereof) of AGI above the threshold.
type CTCRules struct {
	PerChild          money.Cents
	RefundableCap     money.Cents
	MaxChildAge       int
	MinMonthsResident int
	PhaseOutThreshold map[domain.FilingStatus]money.Cents
	PhaseOutPer       money.Cents
	PhaseOutStep      money.Cents
	EarnedIncomeFloor money.Cents
	RefundableRate    decimal.Decimal
}

// EITCRow holds the earned-income-credit parameters for one
// qualifying-child count (the index in EITCRules.Rows, capped at 3).
type EITCRow struct {
	PhaseInRate        decimal.Decimal
	MaxCredit          money.Cents
	PhaseOutRate       decimal.Decimal
	PhaseOutStart      money.Cents // single, HOH, surviving spouse
	PhaseOutStartJoint money.Cents
}

// EITCRules parameterizes the earned income credit.
type EITCRules struct {
	InvestmentIncomeLimit money.Cents
	ChildlessMinAge       int
	ChildlessMaxAge       int
	Rows                  [4]EITCRow
}

// EducationRules parameterizes the AOTC and LLC, which share a MAGI
// phase-out band.
type EducationRules struct {
	AOTCFirstTier      money.Cents // expenses credited at 100%
	AOTCSecondTier     money.Cents // further expenses credited at AOTCSecondRate
	AOTCSecondRate     decimal.Decimal
	AOTCRefundableRate decimal.Decimal
	LLCRate            decimal.Decimal
	LLCExpenseCap      money.Cents
	PhaseOutStart      money.Cents // non-joint
	PhaseOutEnd        money.Cents
	PhaseOutStartJoint money.Cents
	PhaseOutEndJoint   money.Cents
}

// QBIRules parameterizes the qualified business income deduction.
type QBIRules struct {
	Rate          decimal.Decimal
	WageLimitRate decimal.Decimal // 50% of W-2 wages
	WageUBIARate  decimal.Decimal // 25% of wages component
	UBIARate      decimal.Decimal // 2.5% of UBIA component
	Threshold     map[domain.FilingStatus]money.Cents
	PhaseInRange  map[domain.FilingStatus]money.Cents
}

// FederalRules is the complete federal parameter set for one tax year.
type FederalRules struct {
	Year int

	OrdinaryBrackets     map[domain.FilingStatus][]Bracket
	CapitalGainsBrackets map[domain.FilingStatus][]Bracket

	StandardDeduction map[domain.FilingStatus]money.Cents
	// AdditionalStdDeduction applies once per age-65 or blindness
	// condition of the taxpayer or spouse.
	AdditionalStdDeduction map[domain.FilingStatus]money.Cents

	SALTCap          money.Cents
	MedicalAGIFloor  decimal.Decimal
	CapitalLossLimit map[domain.FilingStatus]money.Cents

	SelfEmployment SelfEmploymentRules
	NIIT           NIITRules
	ChildTaxCredit CTCRules
	EITC           EITCRules
	Education      EducationRules
	QBI            QBIRules
}

// ForYear returns the federal rules for a supported tax year.
func ForYear(year int) (*FederalRules, error) {
	switch year {
	case 2025:
		return Federal2025(), nil
	}
	return nil, errors.Errorf("no federal rules for tax year %d", year)
}

// Validate checks every bracket table for contiguity, non-overlap, and
// non-decreasing rates.
func (r *FederalRules) Validate() error {
	for status, brackets := range r.OrdinaryBrackets {
		if err := validateBrackets(brackets); err != nil {
			return errors.Wrapf(err, "ordinary brackets for %s", status)
		}
	}
	for status, brackets := range r.CapitalGainsBrackets {
		if err := validateBrackets(brackets); err != nil {
			return errors.Wrapf(err, "capital gains brackets for %s", status)
		}
	}
	return nil
}

func validateBrackets(brackets []Bracket) error {
	if len(brackets) == 0 {
		return errors.New("empty bracket table")
	}
	if brackets[0].Min != 0 {
		return errors.Errorf("first bracket starts at %s, want $0.00", brackets[0].Min)
	}
	prevRate := decimal.NewFromInt(-1)
	for i, b := range brackets {
		if b.Max != money.NoCeiling && b.Max <= b.Min {
			return errors.Errorf("bracket %d has max %s <= min %s", i, b.Max, b.Min)
		}
		if i > 0 && b.Min != brackets[i-1].Max {
			return errors.Errorf("bracket %d min %s not contiguous with prior max %s", i, b.Min, brackets[i-1].Max)
		}
		if b.Rate.LessThan(prevRate) {
			return errors.Errorf("bracket %d rate %s decreases", i, b.Rate)
		}
		prevRate = b.Rate
	}
	if brackets[len(brackets)-1].Max != money.NoCeiling {
		return errors.New("last bracket must be open-ended")
	}
	return nil
}
