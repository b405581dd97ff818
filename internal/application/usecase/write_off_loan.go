package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/asantefin/asante/internal/application/dto"
	"github.com/asantefin/asante/internal/domain/port"
)

// WriteOffLoanUseCase cancels a loan's remaining balance. The request must
// carry a confirmation token repeating the loan ID; the balance cancellation
// is unconditional once confirmed and bypasses the allocator entirely.
type WriteOffLoanUseCase struct {
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
}

// NewWriteOffLoanUseCase wires dependencies.
func NewWriteOffLoanUseCase(
	loanRepo port.LoanRepository,
	publisher port.EventPublisher,
) *WriteOffLoanUseCase {
	return &WriteOffLoanUseCase{
		loanRepo:  loanRepo,
		publisher: publisher,
	}
}

// Execute writes the loan off.
func (uc *WriteOffLoanUseCase) Execute(
	ctx context.Context,
	req dto.WriteOffLoanRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	// 1. Verify the confirmation token.
	if req.ConfirmationToken != req.LoanID {
		return dto.LoanResponse{}, fmt.Errorf("confirmation token does not match loan %s", req.LoanID)
	}

	// 2. Retrieve the loan.
	loan, err := uc.loanRepo.FindByID(ctx, req.TenantID, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}

	// 3. Cancel the balance.
	loan, err = loan.WriteOff(req.Reason, now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("write off loan: %w", err)
	}

	// 4. Persist.
	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	// 5. Publish events.
	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return loanResponse(loan, false, 0, 0), nil
}
