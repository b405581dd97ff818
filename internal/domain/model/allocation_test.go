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
)

// outstandingState builds a minimal single-installment schedule with the
// given unpaid components.
func outstandingState(principal, interest, fee int64) []model.ScheduleInstallment {
	return []model.ScheduleInstallment{
		{
			Sequence:  1,
			DueDate:   time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC),
			Principal: decimal.NewFromInt(principal),
			Interest:  decimal.NewFromInt(interest),
			Fee:       decimal.NewFromInt(fee),
			Status:    valueobject.InstallmentStatusUnpaid,
		},
	}
}

func TestAllocateRepayment_WaterfallExample(t *testing.T) {
	// Outstanding: interest 5,000, fee 500, principal 50,000.
	schedule := outstandingState(50_000, 5_000, 500)
	outstanding := decimal.NewFromInt(55_500)

	result, next, err := model.AllocateRepayment(
		schedule, outstanding, decimal.NewFromInt(6_000), valueobject.StrategyDefault,
	)
	require.NoError(t, err)

	assert.True(t, result.InterestApplied.Equal(decimal.NewFromInt(5_000)), "interest = %s", result.InterestApplied)
	assert.True(t, result.FeeApplied.Equal(decimal.NewFromInt(500)), "fee = %s", result.FeeApplied)
	assert.True(t, result.PrincipalApplied.Equal(decimal.NewFromInt(500)), "principal = %s", result.PrincipalApplied)
	assert.True(t, result.PenaltyApplied.IsZero())
	assert.Equal(t, valueobject.LoanStatusActive, result.ResultingStatus)

	assert.True(t, next[0].InterestPaid.Equal(decimal.NewFromInt(5_000)))
	assert.True(t, next[0].FeePaid.Equal(decimal.NewFromInt(500)))
	assert.True(t, next[0].PrincipalPaid.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, valueobject.InstallmentStatusPartiallyPaid, next[0].Status)
}

func TestAllocateRepayment_Conservation(t *testing.T) {
	amounts := []int64{1, 137, 6_000, 55_500, 100_000}
	for _, amt := range amounts {
		schedule := outstandingState(50_000, 5_000, 500)
		amount := decimal.NewFromInt(amt)

		result, _, err := model.AllocateRepayment(
			schedule, decimal.NewFromInt(55_500), amount, valueobject.StrategyDefault,
		)
		require.NoError(t, err)

		applied := result.PrincipalApplied.
			Add(result.InterestApplied).
			Add(result.FeeApplied).
			Add(result.PenaltyApplied)
		assert.True(t, applied.Equal(amount), "applied sum = %s, want %s", applied, amount)
	}
}

func TestAllocateRepayment_StrategyOrderHonored(t *testing.T) {
	schedule := outstandingState(50_000, 5_000, 500)
	strategy, err := valueobject.NewAllocationStrategy("principal_interest_fees_penalties")
	require.NoError(t, err)

	result, _, err := model.AllocateRepayment(
		schedule, decimal.NewFromInt(55_500), decimal.NewFromInt(6_000), strategy,
	)
	require.NoError(t, err)

	// Principal first: the full payment goes to principal.
	assert.True(t, result.PrincipalApplied.Equal(decimal.NewFromInt(6_000)))
	assert.True(t, result.InterestApplied.IsZero())
	assert.True(t, result.FeeApplied.IsZero())
}

func TestAllocateRepayment_OverpaymentForcedIntoPrincipal(t *testing.T) {
	schedule := outstandingState(1_000, 100, 0)
	outstanding := decimal.NewFromInt(1_100)
	amount := decimal.NewFromInt(2_000)

	result, _, err := model.AllocateRepayment(schedule, outstanding, amount, valueobject.StrategyDefault)
	require.NoError(t, err)

	// 100 interest + 1,000 principal on schedule, 900 leftover forced into principal.
	assert.True(t, result.InterestApplied.Equal(decimal.NewFromInt(100)))
	assert.True(t, result.PrincipalApplied.Equal(decimal.NewFromInt(1_900)))
	assert.Equal(t, valueobject.LoanStatusOverpaid, result.ResultingStatus)
	assert.True(t, result.OverpaidAmount.Equal(amount.Sub(outstanding)),
		"overpaid = %s, want %s", result.OverpaidAmount, amount.Sub(outstanding))
}

func TestAllocateRepayment_ExactPayoffCloses(t *testing.T) {
	schedule := outstandingState(1_000, 100, 0)

	result, next, err := model.AllocateRepayment(
		schedule, decimal.NewFromInt(1_100), decimal.NewFromInt(1_100), valueobject.StrategyDefault,
	)
	require.NoError(t, err)

	assert.Equal(t, valueobject.LoanStatusClosed, result.ResultingStatus)
	assert.True(t, result.ResultingOutstanding.IsZero())
	assert.True(t, result.OverpaidAmount.IsZero())
	// 100 to interest, 1,000 to principal; the installment is fully settled.
	assert.Equal(t, valueobject.InstallmentStatusPaid, next[0].Status)
}

func TestAllocateRepayment_SettlesInstallmentsInSequence(t *testing.T) {
	schedule := []model.ScheduleInstallment{
		{Sequence: 1, Principal: decimal.NewFromInt(500), Interest: decimal.NewFromInt(50), Status: valueobject.InstallmentStatusUnpaid},
		{Sequence: 2, Principal: decimal.NewFromInt(500), Interest: decimal.NewFromInt(50), Status: valueobject.InstallmentStatusUnpaid},
	}

	// Enough to cover all interest and the first installment's principal only.
	result, next, err := model.AllocateRepayment(
		schedule, decimal.NewFromInt(1_100), decimal.NewFromInt(600), valueobject.StrategyDefault,
	)
	require.NoError(t, err)

	assert.True(t, result.InterestApplied.Equal(decimal.NewFromInt(100)))
	assert.True(t, result.PrincipalApplied.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, valueobject.InstallmentStatusPaid, next[0].Status)
	assert.Equal(t, valueobject.InstallmentStatusPartiallyPaid, next[1].Status)
}

func TestAllocateRepayment_DoesNotMutateInput(t *testing.T) {
	schedule := outstandingState(50_000, 5_000, 500)

	_, _, err := model.AllocateRepayment(
		schedule, decimal.NewFromInt(55_500), decimal.NewFromInt(6_000), valueobject.StrategyDefault,
	)
	require.NoError(t, err)

	assert.True(t, schedule[0].InterestPaid.IsZero())
	assert.True(t, schedule[0].PrincipalPaid.IsZero())
	assert.Equal(t, valueobject.InstallmentStatusUnpaid, schedule[0].Status)
}

func TestAllocateRepayment_RejectsNonPositiveAmount(t *testing.T) {
	schedule := outstandingState(1_000, 0, 0)

	_, _, err := model.AllocateRepayment(schedule, decimal.NewFromInt(1_000), decimal.Zero, valueobject.StrategyDefault)
	assert.True(t, errors.Is(err, model.ErrInvalidPayment))

	_, _, err = model.AllocateRepayment(schedule, decimal.NewFromInt(1_000), decimal.NewFromInt(-5), valueobject.StrategyDefault)
	assert.True(t, errors.Is(err, model.ErrInvalidPayment))
}
