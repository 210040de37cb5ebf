package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
	"github.com/piechiang/usa-tax-calculator/internal/rules"
)

func TestEarnedIncomeCredit(t *testing.T) {
	r := rules.Federal2025().EITC

	d := money.FromDollarInt

	tests := []struct {
		name       string
		status     domain.FilingStatus
		agi        money.Cents
		earned     money.Cents
		investment money.Cents
		age        int
		spouseAge  int
		children   int
		want       money.Cents
	}{
		{
			name:   "phase-in region one child",
			status: domain.Single, agi: d(10000), earned: d(10000),
			age: 35, children: 1,
			want: d(3400), // 34% of 10,000
		},
		{
			name:   "plateau one child",
			status: domain.Single, agi: d(20000), earned: d(20000),
			age: 35, children: 1,
			want: d(4328),
		},
		{
			name:   "phase-out region one child",
			status: domain.Single, agi: d(30000), earned: d(30000),
			age: 35, children: 1,
			// 4,328 less 15.98% of the 6,650 over 23,350
			want: money.Cents(326533),
		},
		{
			name:   "joint phase-out starts later",
			status: domain.MarriedJointly, agi: d(30000), earned: d(30000),
			age: 35, spouseAge: 33, children: 1,
			want: d(4328),
		},
		{
			name:   "three-plus children share the top row",
			status: domain.Single, agi: d(18000), earned: d(18000),
			age: 35, children: 5,
			want: d(8046),
		},
		{
			name:   "investment income over the ceiling disqualifies",
			status: domain.Single, agi: d(15000), earned: d(15000),
			investment: d(12000), age: 35, children: 1,
			want: 0,
		},
		{
			name:   "no earned income no credit",
			status: domain.Single, agi: d(15000), earned: 0,
			age: 35, children: 1,
			want: 0,
		},
		{
			name:   "childless inside the age window",
			status: domain.Single, agi: d(8000), earned: d(8000),
			age: 30,
			want: d(612), // 7.65% of 8,000
		},
		{
			name:   "childless under twenty-five",
			status: domain.Single, agi: d(8000), earned: d(8000),
			age: 24,
			want: 0,
		},
		{
			name:   "childless over sixty-four",
			status: domain.Single, agi: d(8000), earned: d(8000),
			age: 65,
			want: 0,
		},
		{
			name:   "joint childless needs both spouses in the window",
			status: domain.MarriedJointly, agi: d(8000), earned: d(8000),
			age: 30, spouseAge: 22,
			want: 0,
		},
		{
			name:   "credit evaluated on the lesser of AGI and earned income",
			status: domain.Single, agi: d(9000), earned: d(20000),
			age: 35, children: 1,
			want: d(3060), // 34% of 9,000
		},
		{
			name:   "high income phases out completely",
			status: domain.Single, agi: d(60000), earned: d(60000),
			age: 35, children: 1,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EarnedIncomeCredit(r, tt.status, tt.agi, tt.earned, tt.investment,
				tt.age, tt.spouseAge, tt.children)
			assert.Equal(t, tt.want, got)
		})
	}
}
