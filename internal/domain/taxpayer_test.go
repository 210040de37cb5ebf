package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piechiang/usa-tax-calculator/internal/money"
)

func TestParseFilingStatus(t *testing.T) {
	tests := []struct {
		in   string
		want FilingStatus
	}{
		{"single", Single},
		{"SINGLE", Single},
		{" married_jointly ", MarriedJointly},
		{"married_separately", MarriedSeparately},
		{"head_of_household", HeadOfHousehold},
		{"qualifying_surviving_spouse", QualifyingSurvivingSpouse},
	}
	for _, tt := range tests {
		got, err := ParseFilingStatus(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFilingStatus("widowed")
	assert.Error(t, err)
	_, err = ParseFilingStatus("")
	assert.Error(t, err)
}

func TestIsJoint(t *testing.T) {
	assert.True(t, MarriedJointly.IsJoint())
	assert.True(t, QualifyingSurvivingSpouse.IsJoint())
	assert.False(t, Single.IsJoint())
	assert.False(t, MarriedSeparately.IsJoint())
	assert.False(t, HeadOfHousehold.IsJoint())
}

func TestAges(t *testing.T) {
	t.Run("birthday already passed by year end", func(t *testing.T) {
		input := TaxpayerInput{PrimaryBirthDate: time.Date(1960, 6, 1, 0, 0, 0, 0, time.UTC)}
		assert.Equal(t, 65, input.PrimaryAge(2025))
	})

	t.Run("zero birth date reads as age zero", func(t *testing.T) {
		var input TaxpayerInput
		assert.Equal(t, 0, input.PrimaryAge(2025))
		assert.Equal(t, 0, input.SpouseAge(2025))
	})

	t.Run("child age at year end", func(t *testing.T) {
		child := Child{BirthDate: time.Date(2009, 12, 31, 0, 0, 0, 0, time.UTC)}
		assert.Equal(t, 16, child.AgeAtYearEnd(2025))
	})
}

func TestAdjustmentsTotal(t *testing.T) {
	adj := Adjustments{
		StudentLoanInterest: money.FromDollarInt(2500),
		IRAContributions:    money.FromDollarInt(6000),
		HSAContributions:    money.FromDollarInt(3000),
		Other:               money.FromDollarInt(500),
	}
	assert.Equal(t, money.FromDollarInt(12000), adj.Total())
}

func TestStateSpecificRetirementIncome(t *testing.T) {
	specific := StateSpecific{
		SocialSecurityBenefits:  money.FromDollarInt(18000),
		PensionIncome:           money.FromDollarInt(12000),
		RetirementDistributions: money.FromDollarInt(5000),
	}
	assert.Equal(t, money.FromDollarInt(35000), specific.RetirementIncome())
}

func TestCreditBreakdownSplit(t *testing.T) {
	credits := CreditBreakdown{
		CTC:            money.FromDollarInt(2000),
		ACTC:           money.FromDollarInt(1700),
		EITC:           money.FromDollarInt(4328),
		AOTC:           money.FromDollarInt(1500),
		AOTCRefundable: money.FromDollarInt(1000),
		LLC:            money.FromDollarInt(0),
	}
	assert.Equal(t, money.FromDollarInt(3500), credits.NonRefundable())
	assert.Equal(t, money.FromDollarInt(7028), credits.Refundable())
}

func TestAdditionalTaxesTotal(t *testing.T) {
	taxes := AdditionalTaxes{
		SelfEmployment:     money.FromDollarInt(1000),
		NIIT:               money.FromDollarInt(200),
		AdditionalMedicare: money.FromDollarInt(50),
		AMT:                AMTResult{Implemented: false, Amount: money.FromDollarInt(9999)},
	}
	// An unimplemented AMT slot contributes nothing even with a stray amount.
	assert.Equal(t, money.FromDollarInt(1250), taxes.Total())

	taxes.AMT = AMTResult{Implemented: true, Amount: money.FromDollarInt(300)}
	assert.Equal(t, money.FromDollarInt(1550), taxes.Total())
}
