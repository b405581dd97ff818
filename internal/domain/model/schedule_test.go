package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asantefin/asante/internal/domain/model"
	"github.com/asantefin/asante/internal/domain/valueobject"
	"github.com/asantefin/asante/pkg/money"
)

var testNow = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func flatTerms() model.LoanTerms {
	return model.LoanTerms{
		Principal:         decimal.NewFromInt(100_000),
		AnnualRatePercent: decimal.NewFromInt(12),
		TermLength:        12,
		Installments:      12,
		Frequency:         valueobject.FrequencyMonthly,
		Method:            valueobject.InterestMethodFlat,
	}
}

func reducingTerms() model.LoanTerms {
	return model.LoanTerms{
		Principal:         decimal.NewFromInt(100_000),
		AnnualRatePercent: decimal.NewFromInt(12),
		TermLength:        12,
		Installments:      12,
		Frequency:         valueobject.FrequencyMonthly,
		Method:            valueobject.InterestMethodReducingBalance,
	}
}

func TestGenerateSchedule_FlatEndToEnd(t *testing.T) {
	schedule, err := model.GenerateSchedule(flatTerms(), nil, testNow)
	require.NoError(t, err)
	require.Len(t, schedule, 12)

	// Total interest = 100,000 * 12 * 12 / 100 = 144,000, split evenly.
	expectedInterest := decimal.NewFromInt(12_000)
	for _, inst := range schedule {
		assert.True(t, inst.Interest.Equal(expectedInterest),
			"installment %d interest = %s, want 12000", inst.Sequence, inst.Interest)
	}

	// Level payment of (100,000 + 144,000) / 12 at display precision.
	assert.Equal(t, "20333.33", money.Display(schedule[0].TotalDue()))
	assert.Equal(t, "8333.33", money.Display(schedule[0].Principal))

	// First due date defaults to one period after now.
	assert.Equal(t, time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC), schedule[0].DueDate)
	assert.Equal(t, time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC), schedule[11].DueDate)
}

func TestGenerateSchedule_PrincipalSumInvariant(t *testing.T) {
	cases := []struct {
		name  string
		terms model.LoanTerms
	}{
		{"flat 12x", flatTerms()},
		{"reducing 12x", reducingTerms()},
		{"flat odd split", model.LoanTerms{
			Principal:         decimal.NewFromInt(10_000),
			AnnualRatePercent: decimal.NewFromInt(10),
			TermLength:        7,
			Installments:      7,
			Frequency:         valueobject.FrequencyWeekly,
			Method:            valueobject.InterestMethodFlat,
		}},
		{"reducing 36x", model.LoanTerms{
			Principal:         decimal.NewFromInt(250_000),
			AnnualRatePercent: decimal.NewFromFloat(18.5),
			TermLength:        36,
			Installments:      36,
			Frequency:         valueobject.FrequencyMonthly,
			Method:            valueobject.InterestMethodReducingBalance,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			schedule, err := model.GenerateSchedule(tc.terms, nil, testNow)
			require.NoError(t, err)

			sum := decimal.Zero
			for _, inst := range schedule {
				sum = sum.Add(inst.Principal)
			}
			assert.True(t, sum.Equal(tc.terms.Principal),
				"principal sum = %s, want %s", sum, tc.terms.Principal)

			last := schedule[len(schedule)-1]
			assert.True(t, last.OutstandingAfter.IsZero(),
				"outstanding after final installment = %s", last.OutstandingAfter)
		})
	}
}

func TestGenerateSchedule_ReducingBalanceMonotonic(t *testing.T) {
	schedule, err := model.GenerateSchedule(reducingTerms(), nil, testNow)
	require.NoError(t, err)

	for i := 1; i < len(schedule); i++ {
		assert.True(t, schedule[i].Interest.LessThan(schedule[i-1].Interest),
			"interest should strictly decrease at installment %d", schedule[i].Sequence)
		assert.True(t, schedule[i].Principal.GreaterThan(schedule[i-1].Principal),
			"principal should strictly increase at installment %d", schedule[i].Sequence)
	}
}

func TestGenerateSchedule_ReducingBalanceZeroRate(t *testing.T) {
	terms := reducingTerms()
	terms.AnnualRatePercent = decimal.Zero

	schedule, err := model.GenerateSchedule(terms, nil, testNow)
	require.NoError(t, err)

	for _, inst := range schedule {
		assert.True(t, inst.Interest.IsZero())
	}
	sum := decimal.Zero
	for _, inst := range schedule {
		sum = sum.Add(inst.Principal)
	}
	assert.True(t, sum.Equal(terms.Principal))
}

func TestGenerateSchedule_ExplicitFirstRepaymentDate(t *testing.T) {
	terms := flatTerms()
	terms.FirstRepaymentDate = time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	schedule, err := model.GenerateSchedule(terms, nil, testNow)
	require.NoError(t, err)

	assert.Equal(t, terms.FirstRepaymentDate, schedule[0].DueDate)
	assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), schedule[1].DueDate)
}

func TestGenerateSchedule_WeeklyDueDates(t *testing.T) {
	terms := flatTerms()
	terms.Frequency = valueobject.FrequencyWeekly
	terms.Installments = 4
	terms.TermLength = 4

	schedule, err := model.GenerateSchedule(terms, nil, testNow)
	require.NoError(t, err)
	require.Len(t, schedule, 4)

	assert.Equal(t, testNow.AddDate(0, 0, 7), schedule[0].DueDate)
	assert.Equal(t, testNow.AddDate(0, 0, 28), schedule[3].DueDate)
}

func TestGenerateSchedule_OneOffChargeOnFirstInstallment(t *testing.T) {
	charges := []model.ChargeSpec{
		{Name: "processing fee", Amount: decimal.NewFromInt(1_500)},
	}

	schedule, err := model.GenerateSchedule(flatTerms(), charges, testNow)
	require.NoError(t, err)

	assert.True(t, schedule[0].Fee.Equal(decimal.NewFromInt(1_500)))
	for _, inst := range schedule[1:] {
		assert.True(t, inst.Fee.IsZero())
	}
}

func TestGenerateSchedule_OneOffChargeWithDueDate(t *testing.T) {
	charges := []model.ChargeSpec{
		{
			Name:    "insurance",
			Amount:  decimal.NewFromInt(600),
			DueDate: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	schedule, err := model.GenerateSchedule(flatTerms(), charges, testNow)
	require.NoError(t, err)

	// First installment due on/after 2025-09-01 is sequence 3 (2025-09-15).
	assert.True(t, schedule[2].Fee.Equal(decimal.NewFromInt(600)))
	assert.True(t, schedule[0].Fee.IsZero())
}

func TestGenerateSchedule_RecurringChargeSplitsEvenly(t *testing.T) {
	charges := []model.ChargeSpec{
		{Name: "service fee", Amount: decimal.NewFromInt(1_000), Recurring: true},
	}

	schedule, err := model.GenerateSchedule(flatTerms(), charges, testNow)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, inst := range schedule {
		sum = sum.Add(inst.Fee)
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(1_000)), "fee sum = %s", sum)
	assert.True(t, schedule[0].Fee.Equal(schedule[1].Fee))
}

func TestGenerateSchedule_InvalidTerms(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.LoanTerms)
	}{
		{"zero principal", func(tm *model.LoanTerms) { tm.Principal = decimal.Zero }},
		{"negative principal", func(tm *model.LoanTerms) { tm.Principal = decimal.NewFromInt(-1) }},
		{"negative rate", func(tm *model.LoanTerms) { tm.AnnualRatePercent = decimal.NewFromInt(-5) }},
		{"zero installments", func(tm *model.LoanTerms) { tm.Installments = 0 }},
		{"zero term", func(tm *model.LoanTerms) { tm.TermLength = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			terms := flatTerms()
			tc.mutate(&terms)

			_, err := model.GenerateSchedule(terms, nil, testNow)
			assert.True(t, errors.Is(err, valueobject.ErrInvalidTerms), "err = %v", err)
		})
	}
}

func TestGenerateSchedule_TotalAmountInvariant(t *testing.T) {
	charges := []model.ChargeSpec{
		{Name: "processing fee", Amount: decimal.NewFromInt(2_000)},
		{Name: "service fee", Amount: decimal.NewFromInt(1_200), Recurring: true},
	}
	terms := flatTerms()

	schedule, err := model.GenerateSchedule(terms, charges, testNow)
	require.NoError(t, err)

	totalInterest := terms.Principal.
		Mul(terms.AnnualRatePercent).
		Mul(decimal.NewFromInt(int64(terms.TermLength))).
		Div(decimal.NewFromInt(100))
	expected := terms.Principal.Add(totalInterest).Add(decimal.NewFromInt(3_200))

	sum := decimal.Zero
	for _, inst := range schedule {
		sum = sum.Add(inst.TotalDue())
	}
	assert.True(t, sum.Equal(expected), "total due sum = %s, want %s", sum, expected)
}
