package rules

import (
	"github.com/shopspring/decimal"

	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
)

// 2025 amounts follow Rev. Proc. 2024-40 and the 2025 Schedule SE / Form
// 8812 / Form 8867 instructions.

func rate(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// marginal builds a contiguous bracket table from whole-dollar upper
// edges; the final rate is open-ended.
func marginal(edges []int64, rates []float64) []Bracket {
	out := make([]Bracket, len(rates))
	min := money.Cents(0)
	for i, r := range rates {
		max := money.NoCeiling
		if i < len(edges) {
			max = money.FromDollarInt(edges[i])
		}
		out[i] = Bracket{Min: min, Max: max, Rate: rate(r)}
		min = max
	}
	return out
}

func byStatus(single, joint, separate, hoh, qss int64) map[domain.FilingStatus]money.Cents {
	return map[domain.FilingStatus]money.Cents{
		domain.Single:                    money.FromDollarInt(single),
		domain.MarriedJointly:            money.FromDollarInt(joint),
		domain.MarriedSeparately:         money.FromDollarInt(separate),
		domain.HeadOfHousehold:           money.FromDollarInt(hoh),
		domain.QualifyingSurvivingSpouse: money.FromDollarInt(qss),
	}
}

var ordinaryRates = []float64{0.10, 0.12, 0.22, 0.24, 0.32, 0.35, 0.37}
var capitalGainsRates = []float64{0, 0.15, 0.20}

// Federal2025 returns the federal parameter set for tax year 2025.
func Federal2025() *FederalRules {
	jointOrdinary := marginal([]int64{23850, 96950, 206700, 394600, 501050, 751600}, ordinaryRates)
	jointCapGains := marginal([]int64{96700, 600050}, capitalGainsRates)

	return &FederalRules{
		Year: 2025,

		OrdinaryBrackets: map[domain.FilingStatus][]Bracket{
			domain.Single:                    marginal([]int64{11925, 48475, 103350, 197300, 250525, 626350}, ordinaryRates),
			domain.MarriedJointly:            jointOrdinary,
			domain.MarriedSeparately:         marginal([]int64{11925, 48475, 103350, 197300, 250525, 375800}, ordinaryRates),
			domain.HeadOfHousehold:           marginal([]int64{17000, 64850, 103350, 197300, 250500, 626350}, ordinaryRates),
			domain.QualifyingSurvivingSpouse: jointOrdinary,
		},
		CapitalGainsBrackets: map[domain.FilingStatus][]Bracket{
			domain.Single:                    marginal([]int64{48350, 533400}, capitalGainsRates),
			domain.MarriedJointly:            jointCapGains,
			domain.MarriedSeparately:         marginal([]int64{48350, 300000}, capitalGainsRates),
			domain.HeadOfHousehold:           marginal([]int64{64750, 566700}, capitalGainsRates),
			domain.QualifyingSurvivingSpouse: jointCapGains,
		},

		StandardDeduction:      byStatus(15000, 30000, 15000, 22500, 30000),
		AdditionalStdDeduction: byStatus(2000, 1600, 1600, 2000, 1600),

		SALTCap:          money.FromDollarInt(10000),
		MedicalAGIFloor:  rate(0.075),
		CapitalLossLimit: byStatus(3000, 3000, 1500, 3000, 3000),

		SelfEmployment: SelfEmploymentRules{
			NetEarningsRate:             rate(0.9235),
			OASDIRate:                   rate(0.124),
			MedicareRate:                rate(0.029),
			AdditionalMedicareRate:      rate(0.009),
			WageBase:                    money.FromDollarInt(176100),
			AdditionalMedicareThreshold: byStatus(200000, 250000, 125000, 200000, 200000),
		},

		NIIT: NIITRules{
			Rate:      rate(0.038),
			Threshold: byStatus(200000, 250000, 125000, 200000, 250000),
		},

		ChildTaxCredit: CTCRules{
			PerChild:          money.FromDollarInt(2000),
			RefundableCap:     money.FromDollarInt(1700),
			MaxChildAge:       16,
			MinMonthsResident: 6,
			PhaseOutThreshold: byStatus(200000, 400000, 200000, 200000, 200000),
			PhaseOutPer:       money.FromDollarInt(1000),
			PhaseOutStep:      money.FromDollarInt(50),
			EarnedIncomeFloor: money.FromDollarInt(2500),
			RefundableRate:    rate(0.15),
		},

		EITC: EITCRules{
			InvestmentIncomeLimit: money.FromDollarInt(11950),
			ChildlessMinAge:       25,
			ChildlessMaxAge:       64,
			Rows: [4]EITCRow{
				{PhaseInRate: rate(0.0765), MaxCredit: money.FromDollarInt(649), PhaseOutRate: rate(0.0765), PhaseOutStart: money.FromDollarInt(10620), PhaseOutStartJoint: money.FromDollarInt(17730)},
				{PhaseInRate: rate(0.34), MaxCredit: money.FromDollarInt(4328), PhaseOutRate: rate(0.1598), PhaseOutStart: money.FromDollarInt(23350), PhaseOutStartJoint: money.FromDollarInt(30470)},
				{PhaseInRate: rate(0.40), MaxCredit: money.FromDollarInt(7152), PhaseOutRate: rate(0.2106), PhaseOutStart: money.FromDollarInt(23350), PhaseOutStartJoint: money.FromDollarInt(30470)},
				{PhaseInRate: rate(0.45), MaxCredit: money.FromDollarInt(8046), PhaseOutRate: rate(0.2106), PhaseOutStart: money.FromDollarInt(23350), PhaseOutStartJoint: money.FromDollarInt(30470)},
			},
		},

		Education: EducationRules{
			AOTCFirstTier:      money.FromDollarInt(2000),
			AOTCSecondTier:     money.FromDollarInt(2000),
			AOTCSecondRate:     rate(0.25),
			AOTCRefundableRate: rate(0.40),
			LLCRate:            rate(0.20),
			LLCExpenseCap:      money.FromDollarInt(10000),
			PhaseOutStart:      money.FromDollarInt(80000),
			PhaseOutEnd:        money.FromDollarInt(90000),
			PhaseOutStartJoint: money.FromDollarInt(160000),
			PhaseOutEndJoint:   money.FromDollarInt(180000),
		},

		QBI: QBIRules{
			Rate:          rate(0.20),
			WageLimitRate: rate(0.50),
			WageUBIARate:  rate(0.25),
			UBIARate:      rate(0.025),
			Threshold:     byStatus(197300, 394600, 197300, 197300, 394600),
			PhaseInRange:  byStatus(50000, 100000, 50000, 50000, 100000),
		},
	}
}
