package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/asantefin/asante/internal/application/dto"
	"github.com/asantefin/asante/internal/domain/port"
)

// DepositSavingsUseCase credits a savings account.
type DepositSavingsUseCase struct {
	savingsRepo port.SavingsAccountRepository
	publisher   port.EventPublisher
}

// NewDepositSavingsUseCase wires dependencies.
func NewDepositSavingsUseCase(
	savingsRepo port.SavingsAccountRepository,
	publisher port.EventPublisher,
) *DepositSavingsUseCase {
	return &DepositSavingsUseCase{
		savingsRepo: savingsRepo,
		publisher:   publisher,
	}
}

// Execute deposits into the account.
func (uc *DepositSavingsUseCase) Execute(
	ctx context.Context,
	req dto.SavingsTransactionRequest,
) (dto.SavingsAccountResponse, error) {
	now := time.Now().UTC()

	acc, err := uc.savingsRepo.FindByID(ctx, req.TenantID, req.AccountID)
	if err != nil {
		return dto.SavingsAccountResponse{}, fmt.Errorf("find savings account: %w", err)
	}

	acc, err = acc.Deposit(req.Amount, req.Reference, now)
	if err != nil {
		return dto.SavingsAccountResponse{}, fmt.Errorf("deposit: %w", err)
	}

	if err := uc.savingsRepo.Save(ctx, acc); err != nil {
		return dto.SavingsAccountResponse{}, fmt.Errorf("save savings account: %w", err)
	}

	if err := uc.publisher.Publish(ctx, acc.DomainEvents()...); err != nil {
		return dto.SavingsAccountResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return savingsResponse(acc), nil
}

// WithdrawSavingsUseCase debits a savings account.
type WithdrawSavingsUseCase struct {
	savingsRepo port.SavingsAccountRepository
	publisher   port.EventPublisher
}

// NewWithdrawSavingsUseCase wires dependencies.
func NewWithdrawSavingsUseCase(
	savingsRepo port.SavingsAccountRepository,
	publisher port.EventPublisher,
) *WithdrawSavingsUseCase {
	return &WithdrawSavingsUseCase{
		savingsRepo: savingsRepo,
		publisher:   publisher,
	}
}

// Execute withdraws from the account.
func (uc *WithdrawSavingsUseCase) Execute(
	ctx context.Context,
	req dto.SavingsTransactionRequest,
) (dto.SavingsAccountResponse, error) {
	now := time.Now().UTC()

	acc, err := uc.savingsRepo.FindByID(ctx, req.TenantID, req.AccountID)
	if err != nil {
		return dto.SavingsAccountResponse{}, fmt.Errorf("find savings account: %w", err)
	}

	acc, err = acc.Withdraw(req.Amount, req.Reference, now)
	if err != nil {
		return dto.SavingsAccountResponse{}, fmt.Errorf("withdraw: %w", err)
	}

	if err := uc.savingsRepo.Save(ctx, acc); err != nil {
		return dto.SavingsAccountResponse{}, fmt.Errorf("save savings account: %w", err)
	}

	if err := uc.publisher.Publish(ctx, acc.DomainEvents()...); err != nil {
		return dto.SavingsAccountResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return savingsResponse(acc), nil
}
