package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/asantefin/asante/internal/application/dto"
	"github.com/asantefin/asante/internal/domain/port"
)

// AccrueSavingsInterestUseCase credits daily interest to a savings account.
// It is invoked by the nightly batch for every active account.
type AccrueSavingsInterestUseCase struct {
	savingsRepo port.SavingsAccountRepository
	publisher   port.EventPublisher
}

// NewAccrueSavingsInterestUseCase wires dependencies.
func NewAccrueSavingsInterestUseCase(
	savingsRepo port.SavingsAccountRepository,
	publisher port.EventPublisher,
) *AccrueSavingsInterestUseCase {
	return &AccrueSavingsInterestUseCase{
		savingsRepo: savingsRepo,
		publisher:   publisher,
	}
}

// Execute accrues interest on the account up to now.
func (uc *AccrueSavingsInterestUseCase) Execute(
	ctx context.Context,
	req dto.AccrueSavingsInterestRequest,
) (dto.SavingsAccountResponse, error) {
	now := time.Now().UTC()

	acc, err := uc.savingsRepo.FindByID(ctx, req.TenantID, req.AccountID)
	if err != nil {
		return dto.SavingsAccountResponse{}, fmt.Errorf("find savings account: %w", err)
	}

	accrued, err := acc.AccrueInterest(req.AnnualRatePercent, now)
	if err != nil {
		return dto.SavingsAccountResponse{}, fmt.Errorf("accrue interest: %w", err)
	}

	// Same-day accrual is a no-op; skip the write and event round trip.
	if accrued.Balance().Equal(acc.Balance()) && len(accrued.DomainEvents()) == len(acc.DomainEvents()) {
		return savingsResponse(acc), nil
	}

	if err := uc.savingsRepo.Save(ctx, accrued); err != nil {
		return dto.SavingsAccountResponse{}, fmt.Errorf("save savings account: %w", err)
	}

	if err := uc.publisher.Publish(ctx, accrued.DomainEvents()...); err != nil {
		return dto.SavingsAccountResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return savingsResponse(accrued), nil
}
