package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asantefin/asante/internal/application/dto"
	"github.com/asantefin/asante/internal/application/usecase"
	"github.com/asantefin/asante/internal/domain/model"
	"github.com/asantefin/asante/pkg/money"
	"github.com/asantefin/asante/pkg/testutil"
)

func accrueRequest(accountID string) dto.AccrueSavingsInterestRequest {
	return dto.AccrueSavingsInterestRequest{
		TenantID:          testutil.TestTenantID,
		AccountID:         accountID,
		AnnualRatePercent: decimal.NewFromInt(5),
	}
}

func TestAccrueSavingsInterest_Execute(t *testing.T) {
	t.Run("credits interest for the elapsed days", func(t *testing.T) {
		acc := fundedAccount(t, 10_000)
		savingsRepo := &mockSavingsAccountRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.SavingsAccount, error) {
				return acc, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewAccrueSavingsInterestUseCase(savingsRepo, publisher)

		resp, err := uc.Execute(context.Background(), accrueRequest(acc.ID()))
		require.NoError(t, err)

		// The fixture's last accrual date is fixed in the past, so some
		// interest must have been credited on top of the opening balance.
		assert.True(t, resp.Balance.GreaterThan(decimal.NewFromInt(10_000)),
			"balance = %s", resp.Balance)

		require.Len(t, savingsRepo.savedAccounts, 1)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "asante.savings.interest_accrued", publisher.publishedEvents[0].EventType())
	})

	t.Run("same-day accrual saves and publishes nothing", func(t *testing.T) {
		acc, err := model.NewSavingsAccount(testutil.TestTenantID, testutil.TestClientID, money.KES, time.Now().UTC())
		require.NoError(t, err)
		acc = acc.ClearEvents()

		savingsRepo := &mockSavingsAccountRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.SavingsAccount, error) {
				return acc, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewAccrueSavingsInterestUseCase(savingsRepo, publisher)

		resp, err := uc.Execute(context.Background(), accrueRequest(acc.ID()))
		require.NoError(t, err)
		assert.True(t, resp.Balance.IsZero())
		assert.Empty(t, savingsRepo.savedAccounts)
		assert.Empty(t, publisher.publishedEvents)
	})

	t.Run("negative rate is rejected", func(t *testing.T) {
		acc := fundedAccount(t, 10_000)
		savingsRepo := &mockSavingsAccountRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.SavingsAccount, error) {
				return acc, nil
			},
		}
		uc := usecase.NewAccrueSavingsInterestUseCase(savingsRepo, &mockEventPublisher{})

		req := accrueRequest(acc.ID())
		req.AnnualRatePercent = decimal.NewFromInt(-5)
		_, err := uc.Execute(context.Background(), req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "accrue interest")
	})

	t.Run("missing account", func(t *testing.T) {
		uc := usecase.NewAccrueSavingsInterestUseCase(&mockSavingsAccountRepository{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), accrueRequest("missing"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "find savings account")
	})
}
