package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/asantefin/asante/internal/application/dto"
	"github.com/asantefin/asante/internal/domain/port"
)

// SettleEarlyUseCase pays a loan off ahead of schedule. The settlement fee is
// looked up from the product fee schedule, never computed here.
type SettleEarlyUseCase struct {
	loanRepo    port.LoanRepository
	feeSchedule port.FeeSchedule
	publisher   port.EventPublisher
}

// NewSettleEarlyUseCase wires dependencies.
func NewSettleEarlyUseCase(
	loanRepo port.LoanRepository,
	feeSchedule port.FeeSchedule,
	publisher port.EventPublisher,
) *SettleEarlyUseCase {
	return &SettleEarlyUseCase{
		loanRepo:    loanRepo,
		feeSchedule: feeSchedule,
		publisher:   publisher,
	}
}

// Execute settles the loan.
func (uc *SettleEarlyUseCase) Execute(
	ctx context.Context,
	req dto.SettleEarlyRequest,
) (dto.RepaymentResponse, error) {
	now := time.Now().UTC()

	// 1. Retrieve the loan.
	loan, err := uc.loanRepo.FindByID(ctx, req.TenantID, req.LoanID)
	if err != nil {
		return dto.RepaymentResponse{}, fmt.Errorf("find loan: %w", err)
	}

	// 2. Look up the early-settlement fee.
	fee, err := uc.feeSchedule.EarlySettlementFee(ctx, req.TenantID, loan.ProductID(), loan.Outstanding())
	if err != nil {
		return dto.RepaymentResponse{}, fmt.Errorf("look up settlement fee: %w", err)
	}

	// 3. Settle.
	loan, result, err := loan.SettleEarly(fee, req.Method, req.Reference, now)
	if err != nil {
		return dto.RepaymentResponse{}, fmt.Errorf("settle early: %w", err)
	}

	// 4. Persist.
	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.RepaymentResponse{}, fmt.Errorf("save loan: %w", err)
	}

	// 5. Publish events.
	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.RepaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	payments := loan.Payments()
	return dto.RepaymentResponse{
		LoanID:           loan.ID(),
		AmountPaid:       payments[len(payments)-1].Amount,
		PrincipalApplied: result.PrincipalApplied,
		InterestApplied:  result.InterestApplied,
		FeeApplied:       result.FeeApplied,
		PenaltyApplied:   result.PenaltyApplied,
		Outstanding:      loan.Outstanding(),
		LoanStatus:       loan.Status().String(),
		OverpaidAmount:   result.OverpaidAmount,
	}, nil
}
