package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asantefin/asante/internal/domain/model"
	"github.com/asantefin/asante/internal/domain/valueobject"
	"github.com/asantefin/asante/pkg/money"
	"github.com/asantefin/asante/pkg/testutil"
)

func newTestLoan(t *testing.T) model.Loan {
	t.Helper()
	loan, err := model.NewLoan(
		testutil.TestTenantID, testutil.TestClientID, "app-1", "prod-1",
		flatTerms(), money.KES, nil, valueobject.StrategyDefault, testNow,
	)
	require.NoError(t, err)
	return loan
}

func TestNewLoan_Valid(t *testing.T) {
	loan := newTestLoan(t)

	assert.NotEmpty(t, loan.ID())
	assert.Equal(t, testutil.TestTenantID, loan.TenantID())
	assert.Equal(t, valueobject.LoanStatusActive, loan.Status())
	// Headline outstanding is the total payable: 100,000 principal plus
	// 144,000 flat interest.
	assert.True(t, loan.Outstanding().Equal(decimal.NewFromInt(244_000)))
	assert.Len(t, loan.Schedule(), 12)
	assert.Equal(t, 1, loan.Version())

	require.Len(t, loan.DomainEvents(), 1)
	assert.Equal(t, "asante.loan.disbursed", loan.DomainEvents()[0].EventType())
}

func TestNewLoan_InvalidTermsPropagates(t *testing.T) {
	terms := flatTerms()
	terms.Principal = decimal.Zero

	_, err := model.NewLoan(
		testutil.TestTenantID, testutil.TestClientID, "app-1", "prod-1",
		terms, money.KES, nil, valueobject.StrategyDefault, testNow,
	)
	assert.ErrorIs(t, err, valueobject.ErrInvalidTerms)
}

func TestNewLoan_MissingTenant(t *testing.T) {
	_, err := model.NewLoan(
		"", testutil.TestClientID, "app-1", "prod-1",
		flatTerms(), money.KES, nil, valueobject.StrategyDefault, testNow,
	)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tenant ID is required")
}

func TestLoan_ApplyPayment_Partial(t *testing.T) {
	loan := newTestLoan(t)

	payment := model.Payment{
		Amount: decimal.NewFromInt(20_000),
		Date:   testNow.AddDate(0, 1, 0),
		Method: "mobile_money",
	}
	next, result, err := loan.ApplyPayment(payment, payment.Date)
	require.NoError(t, err)

	assert.Equal(t, valueobject.LoanStatusActive, next.Status())
	assert.True(t, next.Outstanding().Equal(decimal.NewFromInt(224_000)))
	assert.Len(t, next.Payments(), 1)

	// Default strategy: interest is consumed before principal.
	assert.True(t, result.InterestApplied.GreaterThan(decimal.Zero))
	assert.True(t, result.PenaltyApplied.IsZero())

	// The input aggregate is untouched.
	assert.True(t, loan.Outstanding().Equal(decimal.NewFromInt(244_000)))
	assert.Len(t, loan.Payments(), 0)
}

func TestLoan_ApplyPayment_OverpaymentFlipsStatus(t *testing.T) {
	loan := newTestLoan(t)

	payment := model.Payment{Amount: decimal.NewFromInt(300_000), Date: testNow, Method: "bank"}
	next, result, err := loan.ApplyPayment(payment, testNow)
	require.NoError(t, err)

	assert.Equal(t, valueobject.LoanStatusOverpaid, next.Status())
	assert.True(t, next.OverpaidAmount().Equal(decimal.NewFromInt(56_000)))
	assert.True(t, result.OverpaidAmount.Equal(decimal.NewFromInt(56_000)))

	types := eventTypes(next)
	assert.Contains(t, types, "asante.loan.repayment_received")
	assert.Contains(t, types, "asante.loan.overpaid")
}

func TestLoan_ApplyPayment_ExactOutstandingCloses(t *testing.T) {
	loan := newTestLoan(t)

	payment := model.Payment{Amount: decimal.NewFromInt(244_000), Date: testNow, Method: "bank"}
	next, _, err := loan.ApplyPayment(payment, testNow)
	require.NoError(t, err)

	assert.Equal(t, valueobject.LoanStatusClosed, next.Status())
	assert.True(t, next.Outstanding().IsZero())
	assert.Contains(t, eventTypes(next), "asante.loan.closed")
}

func TestLoan_ApplyPayment_FullScheduleServicingCloses(t *testing.T) {
	loan := newTestLoan(t)
	schedule := loan.Schedule()

	// Pay every installment's exact amount due on its due date. The loan must
	// stay ACTIVE the whole way through and close on the final payment, never
	// dipping into OVERPAID.
	for i, inst := range schedule {
		next, _, err := loan.ApplyPayment(model.Payment{
			Amount: inst.TotalDue(),
			Date:   inst.DueDate,
			Method: "mobile_money",
		}, inst.DueDate)
		require.NoError(t, err, "payment %d", i+1)

		if i < len(schedule)-1 {
			require.Equal(t, valueobject.LoanStatusActive, next.Status(),
				"status after payment %d", i+1)
			assert.True(t, next.Outstanding().GreaterThan(decimal.Zero))
		}
		loan = next
	}

	assert.Equal(t, valueobject.LoanStatusClosed, loan.Status())
	assert.True(t, loan.Outstanding().IsZero(), "outstanding = %s", loan.Outstanding())
	assert.True(t, loan.OverpaidAmount().IsZero())
	for _, inst := range loan.Schedule() {
		assert.Equal(t, valueobject.InstallmentStatusPaid, inst.Status,
			"installment %d", inst.Sequence)
	}
}

func TestLoan_ApplyPayment_ClosedLoanRejected(t *testing.T) {
	loan := newTestLoan(t)
	closed, _, err := loan.ApplyPayment(model.Payment{Amount: decimal.NewFromInt(244_000), Date: testNow}, testNow)
	require.NoError(t, err)

	_, _, err = closed.ApplyPayment(model.Payment{Amount: decimal.NewFromInt(10), Date: testNow}, testNow)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
}

func TestLoan_SettleEarly(t *testing.T) {
	loan := newTestLoan(t)
	fee := decimal.NewFromInt(2_500)

	next, result, err := loan.SettleEarly(fee, "bank", "settle-001", testNow.AddDate(0, 3, 0))
	require.NoError(t, err)

	assert.Equal(t, valueobject.LoanStatusClosed, next.Status())
	assert.True(t, next.Outstanding().IsZero())
	assert.True(t, result.ResultingOutstanding.IsZero())

	types := eventTypes(next)
	assert.Contains(t, types, "asante.loan.settled_early")
	assert.Contains(t, types, "asante.loan.closed")

	// Single payment for the full payoff amount is recorded.
	require.Len(t, next.Payments(), 1)
	assert.True(t, next.Payments()[0].Amount.Equal(decimal.NewFromInt(246_500)))
}

func TestLoan_SettleEarly_ZeroFee(t *testing.T) {
	loan := newTestLoan(t)

	next, _, err := loan.SettleEarly(decimal.Zero, "bank", "settle-002", testNow)
	require.NoError(t, err)

	assert.Equal(t, valueobject.LoanStatusClosed, next.Status())
	require.Len(t, next.Payments(), 1)
	assert.True(t, next.Payments()[0].Amount.Equal(decimal.NewFromInt(244_000)))
}

func TestLoan_WriteOff(t *testing.T) {
	loan := newTestLoan(t)

	next, err := loan.WriteOff("client deceased", testNow)
	require.NoError(t, err)

	assert.Equal(t, valueobject.LoanStatusWrittenOff, next.Status())
	assert.True(t, next.Outstanding().IsZero())
	assert.Len(t, next.Payments(), 0)
	assert.Contains(t, eventTypes(next), "asante.loan.written_off")
}

func TestLoan_WriteOff_ClosedLoanRejected(t *testing.T) {
	loan := newTestLoan(t)
	closed, _, err := loan.ApplyPayment(model.Payment{Amount: decimal.NewFromInt(244_000), Date: testNow}, testNow)
	require.NoError(t, err)

	_, err = closed.WriteOff("too late", testNow)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
}

func TestLoan_ClearEvents(t *testing.T) {
	loan := newTestLoan(t)
	cleared := loan.ClearEvents()

	assert.Empty(t, cleared.DomainEvents())
	assert.Len(t, loan.DomainEvents(), 1)
}

func eventTypes(l model.Loan) []string {
	var types []string
	for _, e := range l.DomainEvents() {
		types = append(types, e.EventType())
	}
	return types
}
