package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/asantefin/asante/internal/application/dto"
	"github.com/asantefin/asante/internal/domain/model"
	"github.com/asantefin/asante/internal/domain/port"
	"github.com/asantefin/asante/pkg/money"
)

// OpenSavingsAccountUseCase opens a savings account for an active client.
type OpenSavingsAccountUseCase struct {
	clientRepo  port.ClientRepository
	savingsRepo port.SavingsAccountRepository
	publisher   port.EventPublisher
}

// NewOpenSavingsAccountUseCase wires dependencies.
func NewOpenSavingsAccountUseCase(
	clientRepo port.ClientRepository,
	savingsRepo port.SavingsAccountRepository,
	publisher port.EventPublisher,
) *OpenSavingsAccountUseCase {
	return &OpenSavingsAccountUseCase{
		clientRepo:  clientRepo,
		savingsRepo: savingsRepo,
		publisher:   publisher,
	}
}

// Execute opens the account.
func (uc *OpenSavingsAccountUseCase) Execute(
	ctx context.Context,
	req dto.OpenSavingsAccountRequest,
) (dto.SavingsAccountResponse, error) {
	now := time.Now().UTC()

	// 1. The client must exist and be able to transact.
	client, err := uc.clientRepo.FindByID(ctx, req.TenantID, req.ClientID)
	if err != nil {
		return dto.SavingsAccountResponse{}, fmt.Errorf("find client: %w", err)
	}
	if !client.CanTransact() {
		return dto.SavingsAccountResponse{}, fmt.Errorf("client %s is not active", req.ClientID)
	}

	// 2. Parse the currency.
	currency, err := money.NewCurrency(req.Currency)
	if err != nil {
		return dto.SavingsAccountResponse{}, fmt.Errorf("parse currency: %w", err)
	}

	// 3. Create the aggregate.
	acc, err := model.NewSavingsAccount(req.TenantID, req.ClientID, currency, now)
	if err != nil {
		return dto.SavingsAccountResponse{}, fmt.Errorf("open savings account: %w", err)
	}

	// 4. Persist.
	if err := uc.savingsRepo.Save(ctx, acc); err != nil {
		return dto.SavingsAccountResponse{}, fmt.Errorf("save savings account: %w", err)
	}

	// 5. Publish events.
	if err := uc.publisher.Publish(ctx, acc.DomainEvents()...); err != nil {
		return dto.SavingsAccountResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return savingsResponse(acc), nil
}

func savingsResponse(acc model.SavingsAccount) dto.SavingsAccountResponse {
	return dto.SavingsAccountResponse{
		ID:       acc.ID(),
		TenantID: acc.TenantID(),
		ClientID: acc.ClientID(),
		Currency: acc.Currency().Code(),
		Balance:  acc.Balance(),
		Status:   acc.Status().String(),
	}
}
