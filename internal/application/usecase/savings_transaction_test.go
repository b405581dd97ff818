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

func savingsRequest(accountID string, amount int64) dto.SavingsTransactionRequest {
	return dto.SavingsTransactionRequest{
		TenantID:  testutil.TestTenantID,
		AccountID: accountID,
		Amount:    decimal.NewFromInt(amount),
		Reference: "TXN-001",
	}
}

// fundedAccount returns an active account holding the given balance.
func fundedAccount(t *testing.T, balance int64) model.SavingsAccount {
	t.Helper()
	acc := activeSavingsAccount(t)
	acc, err := acc.Deposit(decimal.NewFromInt(balance), "opening balance", testutil.TestDate())
	require.NoError(t, err)
	return acc.ClearEvents()
}

func TestDepositSavings_Execute(t *testing.T) {
	t.Run("credits the account", func(t *testing.T) {
		acc := activeSavingsAccount(t)
		savingsRepo := &mockSavingsAccountRepository{
			findByIDFunc: func(ctx context.Context, tenantID, id string) (model.SavingsAccount, error) {
				return acc, nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewDepositSavingsUseCase(savingsRepo, publisher)
		resp, err := uc.Execute(context.Background(), savingsRequest(acc.ID(), 5_000))

		require.NoError(t, err)
		assert.True(t, resp.Balance.Equal(decimal.NewFromInt(5_000)))
		require.Len(t, savingsRepo.savedAccounts, 1)
		assert.Contains(t, publishedTypes(publisher), "asante.savings.deposited")
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		acc := activeSavingsAccount(t)
		savingsRepo := &mockSavingsAccountRepository{
			findByIDFunc: func(ctx context.Context, tenantID, id string) (model.SavingsAccount, error) {
				return acc, nil
			},
		}

		uc := usecase.NewDepositSavingsUseCase(savingsRepo, &mockEventPublisher{})
		_, err := uc.Execute(context.Background(), savingsRequest(acc.ID(), 0))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "deposit")
	})

	t.Run("fails when the account is missing", func(t *testing.T) {
		uc := usecase.NewDepositSavingsUseCase(&mockSavingsAccountRepository{}, &mockEventPublisher{})
		_, err := uc.Execute(context.Background(), savingsRequest("missing", 5_000))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "find savings account")
	})
}

func TestWithdrawSavings_Execute(t *testing.T) {
	t.Run("debits the account", func(t *testing.T) {
		acc := fundedAccount(t, 10_000)
		savingsRepo := &mockSavingsAccountRepository{
			findByIDFunc: func(ctx context.Context, tenantID, id string) (model.SavingsAccount, error) {
				return acc, nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewWithdrawSavingsUseCase(savingsRepo, publisher)
		resp, err := uc.Execute(context.Background(), savingsRequest(acc.ID(), 4_000))

		require.NoError(t, err)
		assert.True(t, resp.Balance.Equal(decimal.NewFromInt(6_000)))
		assert.Contains(t, publishedTypes(publisher), "asante.savings.withdrawn")
	})

	t.Run("rejects a withdrawal beyond the balance", func(t *testing.T) {
		acc := fundedAccount(t, 10_000)
		savingsRepo := &mockSavingsAccountRepository{
			findByIDFunc: func(ctx context.Context, tenantID, id string) (model.SavingsAccount, error) {
				return acc, nil
			},
		}

		uc := usecase.NewWithdrawSavingsUseCase(savingsRepo, &mockEventPublisher{})
		_, err := uc.Execute(context.Background(), savingsRequest(acc.ID(), 10_001))

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInsufficientBalance)
	})

	t.Run("rejects a withdrawal from a frozen account", func(t *testing.T) {
		acc := fundedAccount(t, 10_000)
		acc, err := acc.Freeze(testutil.TestDate())
		require.NoError(t, err)
		acc = acc.ClearEvents()

		savingsRepo := &mockSavingsAccountRepository{
			findByIDFunc: func(ctx context.Context, tenantID, id string) (model.SavingsAccount, error) {
				return acc, nil
			},
		}

		uc := usecase.NewWithdrawSavingsUseCase(savingsRepo, &mockEventPublisher{})
		_, err = uc.Execute(context.Background(), savingsRequest(acc.ID(), 1_000))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "withdraw")
	})
}
