package calculation

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
	"github.com/piechiang/usa-tax-calculator/internal/rules"
)

// FederalCalculator runs the federal pipeline for one tax year's rules.
// It is stateless between calls; two computations with independent inputs
// never interact.
type FederalCalculator struct {
	Rules  *rules.FederalRules
	Logger Logger
}

// NewFederalCalculator creates a calculator over an immutable rules set.
func NewFederalCalculator(r *rules.FederalRules) *FederalCalculator {
	return &FederalCalculator{Rules: r, Logger: NopLogger{}}
}

// SetLogger sets the pipeline logger. A nil logger restores the no-op.
func (fc *FederalCalculator) SetLogger(l Logger) {
	if l == nil {
		fc.Logger = NopLogger{}
		return
	}
	fc.Logger = l
}

// computation carries the intermediates threaded between stages.
type computation struct {
	input  *domain.TaxpayerInput
	result *domain.FederalResult

	earnedIncome     money.Cents
	netCapitalGain   money.Cents // after the capital-loss limit
	preferential     money.Cents // qualified dividends + net LTCG, pre-cap
	investmentIncome money.Cents
	taxableBeforeQBI money.Cents
	childCredit      ChildCreditResult
}

// stage is one named step of the pipeline. Stages are pure functions of
// the computation state built by earlier stages.
type stage struct {
	name string
	run  func(*FederalCalculator, *computation) error
}

// federalStages is the canonical ordering. SE tax runs first because its
// half-deduction feeds AGI while the tax itself is figured from gross
// profit; QBI runs after the deduction choice because its limiting base is
// deduction-only taxable income.
var federalStages = []stage{
	{"self_employment", (*FederalCalculator).stageSelfEmployment},
	{"total_income", (*FederalCalculator).stageTotalIncome},
	{"agi", (*FederalCalculator).stageAGI},
	{"deduction", (*FederalCalculator).stageDeduction},
	{"qbi", (*FederalCalculator).stageQBI},
	{"taxable_income", (*FederalCalculator).stageTaxableIncome},
	{"tax_before_credits", (*FederalCalculator).stageTaxBeforeCredits},
	{"additional_taxes", (*FederalCalculator).stageAdditionalTaxes},
	{"credits", (*FederalCalculator).stageCredits},
	{"totals", (*FederalCalculator).stageTotals},
	{"settlement", (*FederalCalculator).stageSettlement},
}

// Compute runs the pipeline and returns the federal result. A stage
// failure yields a result with zeroed totals and a populated Errors list
// alongside the error itself; a failed computation never produces a
// silently wrong number and never panics.
func (fc *FederalCalculator) Compute(input *domain.TaxpayerInput) (*domain.FederalResult, error) {
	if fc.Rules == nil {
		return nil, errors.New("federal calculator has no rules")
	}
	if input == nil {
		return nil, errors.New("nil taxpayer input")
	}
	if _, err := domain.ParseFilingStatus(string(input.FilingStatus)); err != nil {
		return nil, err
	}

	c := &computation{
		input: input,
		result: &domain.FederalResult{
			TaxYear:      fc.Rules.Year,
			FilingStatus: input.FilingStatus,
		},
	}

	for _, s := range federalStages {
		if err := s.run(fc, c); err != nil {
			wrapped := errors.Wrapf(err, "stage %s", s.name)
			fc.Logger.Errorf("federal pipeline: %v", wrapped)
			failed := &domain.FederalResult{
				TaxYear:      fc.Rules.Year,
				FilingStatus: input.FilingStatus,
				Errors:       []string{wrapped.Error()},
			}
			return failed, wrapped
		}
		fc.Logger.Debugf("stage %s done", s.name)
	}
	return c.result, nil
}

func (fc *FederalCalculator) stageSelfEmployment(c *computation) error {
	income := c.input.Income

	// Absent explicit W-2 wage boxes, wages stand in for both.
	w2SS := income.W2SocialSecurityWages
	if w2SS == 0 {
		w2SS = income.Wages
	}
	w2Medicare := income.W2MedicareWages
	if w2Medicare == 0 {
		w2Medicare = income.Wages
	}

	se := SelfEmploymentTax(fc.Rules.SelfEmployment, c.input.FilingStatus, income.ScheduleCNetProfit, w2SS, w2Medicare)
	c.result.SelfEmployment = se
	c.earnedIncome = income.Wages + money.Max0(se.NetEarnings-se.HalfDeduction)
	return nil
}

func (fc *FederalCalculator) stageTotalIncome(c *computation) error {
	income := c.input.Income

	netCapital := income.ShortTermCapitalGain + income.LongTermCapitalGain
	if netCapital < 0 {
		// Net capital losses offset ordinary income only up to the
		// statutory limit; the remainder would carry over.
		netCapital = money.Max(netCapital, -fc.Rules.CapitalLossLimit[c.input.FilingStatus])
	}
	c.netCapitalGain = netCapital

	// Qualified dividends are a subset of ordinary dividends; clamp a
	// malformed input rather than double-counting.
	qualified := money.Min(income.QualifiedDividends, income.OrdinaryDividends)
	// Short-term losses absorb long-term gain first; a net long-term loss
	// gets no preferential treatment.
	netLongTerm := income.LongTermCapitalGain + money.Min(income.ShortTermCapitalGain, 0)
	c.preferential = qualified + money.Max0(netLongTerm)

	c.investmentIncome = money.Add(income.Interest, income.OrdinaryDividends,
		money.Max0(netCapital), money.Max0(income.RentalRoyalty))

	c.result.TotalIncome = money.Add(
		income.Wages, income.Interest, income.OrdinaryDividends, netCapital,
		income.ScheduleCNetProfit, income.K1OrdinaryIncome, income.RentalRoyalty, income.Other,
	)
	return nil
}

func (fc *FederalCalculator) stageAGI(c *computation) error {
	c.result.AGI = money.Max0(c.result.TotalIncome - c.input.Adjustments.Total() - c.result.SelfEmployment.HalfDeduction)
	return nil
}

func (fc *FederalCalculator) stageDeduction(c *computation) error {
	status := c.input.FilingStatus
	input := c.input
	taxYear := fc.Rules.Year

	standard, ok := fc.Rules.StandardDeduction[status]
	if !ok {
		return errors.Errorf("no standard deduction for %s", status)
	}
	conditions := 0
	if input.PrimaryAge(taxYear) >= 65 {
		conditions++
	}
	if input.PrimaryBlind {
		conditions++
	}
	if status == domain.MarriedJointly {
		if input.SpouseAge(taxYear) >= 65 {
			conditions++
		}
		if input.SpouseBlind {
			conditions++
		}
	}
	standard += fc.Rules.AdditionalStdDeduction[status] * money.Cents(conditions)

	itemized := money.Add(
		money.Min(input.Itemized.StateLocalTaxes, fc.Rules.SALTCap),
		input.Itemized.MortgageInterest,
		input.Itemized.Charitable,
		money.Max0(input.Itemized.Medical-money.MulRate(c.result.AGI, fc.Rules.MedicalAGIFloor)),
		input.Itemized.Other,
	)

	c.result.StandardDeduction = standard
	c.result.ItemizedDeduction = itemized
	if input.ForceItemize || itemized > standard {
		c.result.DeductionUsed = itemized
		c.result.Itemizing = true
	} else {
		c.result.DeductionUsed = standard
	}
	return nil
}

func (fc *FederalCalculator) stageQBI(c *computation) error {
	c.taxableBeforeQBI = money.Max0(c.result.AGI - c.result.DeductionUsed)

	qbi := c.input.Business.QualifiedIncome
	if qbi == 0 {
		qbi = money.Max0(c.input.Income.ScheduleCNetProfit + c.input.Income.K1OrdinaryIncome - c.result.SelfEmployment.HalfDeduction)
	}
	c.result.QBIDeduction = QBIDeduction(fc.Rules.QBI, c.input.FilingStatus, c.input.Business, qbi, c.taxableBeforeQBI, c.preferential)
	return nil
}

func (fc *FederalCalculator) stageTaxableIncome(c *computation) error {
	c.result.TaxableIncome = money.Max0(c.result.AGI - c.result.DeductionUsed - c.result.QBIDeduction)
	return nil
}

func (fc *FederalCalculator) stageTaxBeforeCredits(c *computation) error {
	status := c.input.FilingStatus
	ordinaryBrackets, ok := fc.Rules.OrdinaryBrackets[status]
	if !ok {
		return errors.Errorf("no ordinary brackets for %s", status)
	}
	capitalBrackets, ok := fc.Rules.CapitalGainsBrackets[status]
	if !ok {
		return errors.Errorf("no capital gains brackets for %s", status)
	}

	preferential := money.Min(c.preferential, c.result.TaxableIncome)
	ordinary := c.result.TaxableIncome - preferential

	ordinaryTax, preferentialTax := SplitTax(ordinary, preferential, ordinaryBrackets, capitalBrackets)
	c.result.OrdinaryTax = ordinaryTax
	c.result.PreferentialTax = preferentialTax
	c.result.TaxBeforeCredits = ordinaryTax + preferentialTax
	return nil
}

func (fc *FederalCalculator) stageAdditionalTaxes(c *computation) error {
	status := c.input.FilingStatus
	se := c.result.SelfEmployment

	niitBase := money.Min(c.investmentIncome, money.Max0(c.result.AGI-fc.Rules.NIIT.Threshold[status]))
	niit := money.MulRate(niitBase, fc.Rules.NIIT.Rate)

	// Additional Medicare applies to wage earners even without SE income,
	// so it is refigured here over W-2 Medicare wages plus net earnings.
	w2Medicare := c.input.Income.W2MedicareWages
	if w2Medicare == 0 {
		w2Medicare = c.input.Income.Wages
	}
	seRules := fc.Rules.SelfEmployment
	additionalMedicareBase := money.Max0(w2Medicare + se.NetEarnings - seRules.AdditionalMedicareThreshold[status])
	additionalMedicare := money.MulRate(additionalMedicareBase, seRules.AdditionalMedicareRate)

	c.result.AdditionalTaxes = domain.AdditionalTaxes{
		SelfEmployment:     se.Total(),
		NIIT:               niit,
		AdditionalMedicare: additionalMedicare,
		AMT:                domain.AMTResult{Implemented: false},
	}
	c.result.Notes = append(c.result.Notes, "AMT is not implemented; the AMT slot reports unsupported, not a computed zero")
	return nil
}

func (fc *FederalCalculator) stageCredits(c *computation) error {
	input := c.input
	result := c.result
	remaining := result.TaxBeforeCredits

	// Education credits apply before the child credit, matching the 1040
	// ordering that figures the CTC against tax net of Schedule 3 credits.
	education := ComputeEducationCredits(fc.Rules.Education, input.FilingStatus, result.AGI, input.Students)
	aotc := money.Min(education.AOTC, remaining)
	remaining -= aotc
	llc := money.Min(education.LLC, remaining)
	remaining -= llc

	c.childCredit = ChildTaxCredit(fc.Rules.ChildTaxCredit, input.Children, fc.Rules.Year, input.FilingStatus, result.AGI)
	ctc, actc := SplitChildCredit(fc.Rules.ChildTaxCredit, c.childCredit, remaining, c.earnedIncome)

	eitc := EarnedIncomeCredit(fc.Rules.EITC, input.FilingStatus, result.AGI, c.earnedIncome,
		c.investmentIncome, input.PrimaryAge(fc.Rules.Year), input.SpouseAge(fc.Rules.Year),
		eitcQualifyingChildren(input.Children, fc.Rules.Year))

	result.Credits = domain.CreditBreakdown{
		CTC:            ctc,
		ACTC:           actc,
		EITC:           eitc,
		AOTC:           aotc,
		AOTCRefundable: education.AOTCRefundable,
		LLC:            llc,
	}
	return nil
}

// eitcQualifyingChildren counts children under the EITC's broader age
// test: under 19, under 24 while a student, or any age when disabled.
func eitcQualifyingChildren(children []domain.Child, taxYear int) int {
	count := 0
	for _, child := range children {
		if child.MonthsWithTaxpayer < 6 {
			continue
		}
		age := child.AgeAtYearEnd(taxYear)
		switch {
		case child.IsDisabled:
			count++
		case age <= 18:
			count++
		case age <= 23 && child.IsStudent:
			count++
		}
	}
	return count
}

func (fc *FederalCalculator) stageTotals(c *computation) error {
	result := c.result
	result.TotalTax = money.Max0(result.TaxBeforeCredits-result.Credits.NonRefundable()) + result.AdditionalTaxes.Total()
	return nil
}

func (fc *FederalCalculator) stageSettlement(c *computation) error {
	result := c.result
	result.TotalPayments = money.Add(c.input.Payments.Withholding, c.input.Payments.EstimatedPayments, result.Credits.Refundable())
	result.RefundOrOwe = result.TotalPayments - result.TotalTax
	if result.RefundOrOwe < 0 {
		result.Notes = append(result.Notes, fmt.Sprintf("balance due %s", -result.RefundOrOwe))
	}
	return nil
}
