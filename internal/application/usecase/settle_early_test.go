package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asantefin/asante/internal/application/dto"
	"github.com/asantefin/asante/internal/application/usecase"
	"github.com/asantefin/asante/internal/domain/model"
	"github.com/asantefin/asante/pkg/testutil"
)

func settleRequest(loanID string) dto.SettleEarlyRequest {
	return dto.SettleEarlyRequest{
		TenantID:  testutil.TestTenantID,
		LoanID:    loanID,
		Method:    "bank_transfer",
		Reference: "SETTLE-001",
	}
}

func TestSettleEarly_Execute(t *testing.T) {
	t.Run("closes the loan with a settlement fee", func(t *testing.T) {
		loan := activeLoan(t)
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, tenantID, id string) (model.Loan, error) {
				return loan, nil
			},
		}
		fees := &mockFeeSchedule{
			earlySettlementFeeFunc: func(ctx context.Context, tenantID, productID string, outstanding decimal.Decimal) (decimal.Decimal, error) {
				return decimal.NewFromInt(2_500), nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewSettleEarlyUseCase(loanRepo, fees, publisher)
		resp, err := uc.Execute(context.Background(), settleRequest(loan.ID()))

		require.NoError(t, err)
		assert.Equal(t, "CLOSED", resp.LoanStatus)
		assert.True(t, resp.Outstanding.IsZero())
		assert.True(t, resp.AmountPaid.Equal(decimal.NewFromInt(246_500)), "payoff is outstanding plus fee, got %s", resp.AmountPaid)
		assert.True(t, resp.OverpaidAmount.IsZero())

		require.Len(t, loanRepo.savedLoans, 1)
		types := publishedTypes(publisher)
		assert.Contains(t, types, "asante.loan.settled_early")
		assert.Contains(t, types, "asante.loan.closed")
	})

	t.Run("closes the loan with a zero fee", func(t *testing.T) {
		loan := activeLoan(t)
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, tenantID, id string) (model.Loan, error) {
				return loan, nil
			},
		}

		uc := usecase.NewSettleEarlyUseCase(loanRepo, &mockFeeSchedule{}, &mockEventPublisher{})
		resp, err := uc.Execute(context.Background(), settleRequest(loan.ID()))

		require.NoError(t, err)
		assert.Equal(t, "CLOSED", resp.LoanStatus)
		assert.True(t, resp.AmountPaid.Equal(decimal.NewFromInt(244_000)))
	})

	t.Run("fails when the fee lookup fails", func(t *testing.T) {
		loan := activeLoan(t)
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, tenantID, id string) (model.Loan, error) {
				return loan, nil
			},
		}
		fees := &mockFeeSchedule{
			earlySettlementFeeFunc: func(ctx context.Context, tenantID, productID string, outstanding decimal.Decimal) (decimal.Decimal, error) {
				return decimal.Zero, assert.AnError
			},
		}

		uc := usecase.NewSettleEarlyUseCase(loanRepo, fees, &mockEventPublisher{})
		_, err := uc.Execute(context.Background(), settleRequest(loan.ID()))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "look up settlement fee")
	})

	t.Run("rejects settling a closed loan", func(t *testing.T) {
		loan := activeLoan(t)
		loan, _, err := loan.ApplyPayment(model.Payment{
			Amount: decimal.NewFromInt(244_000),
			Date:   testutil.TestDate(),
			Method: "cash",
		}, testutil.TestDate())
		require.NoError(t, err)
		loan = loan.ClearEvents()

		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, tenantID, id string) (model.Loan, error) {
				return loan, nil
			},
		}

		uc := usecase.NewSettleEarlyUseCase(loanRepo, &mockFeeSchedule{}, &mockEventPublisher{})
		_, err = uc.Execute(context.Background(), settleRequest(loan.ID()))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "settle early")
	})
}
