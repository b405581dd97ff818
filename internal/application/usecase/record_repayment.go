package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/asantefin/asante/internal/application/dto"
	"github.com/asantefin/asante/internal/domain/event"
	"github.com/asantefin/asante/internal/domain/model"
	"github.com/asantefin/asante/internal/domain/port"
)

// RecordRepaymentUseCase applies a payment to a loan through the allocation
// waterfall. When the payment overpays the loan, the excess is transferred to
// the client's savings account in the same currency, if one exists; otherwise
// the loan stays in OVERPAID status for manual reconciliation.
type RecordRepaymentUseCase struct {
	loanRepo    port.LoanRepository
	savingsRepo port.SavingsAccountRepository
	publisher   port.EventPublisher
}

// NewRecordRepaymentUseCase wires dependencies.
func NewRecordRepaymentUseCase(
	loanRepo port.LoanRepository,
	savingsRepo port.SavingsAccountRepository,
	publisher port.EventPublisher,
) *RecordRepaymentUseCase {
	return &RecordRepaymentUseCase{
		loanRepo:    loanRepo,
		savingsRepo: savingsRepo,
		publisher:   publisher,
	}
}

// Execute records the repayment.
func (uc *RecordRepaymentUseCase) Execute(
	ctx context.Context,
	req dto.RecordRepaymentRequest,
) (dto.RepaymentResponse, error) {
	now := time.Now().UTC()

	// 1. Retrieve the loan.
	loan, err := uc.loanRepo.FindByID(ctx, req.TenantID, req.LoanID)
	if err != nil {
		return dto.RepaymentResponse{}, fmt.Errorf("find loan: %w", err)
	}

	// 2. Run the payment through the allocator.
	payment := model.Payment{
		Amount:    req.Amount,
		Date:      now,
		Method:    req.Method,
		Reference: req.Reference,
	}
	loan, result, err := loan.ApplyPayment(payment, now)
	if err != nil {
		return dto.RepaymentResponse{}, fmt.Errorf("apply payment: %w", err)
	}

	// 3. Persist the loan.
	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.RepaymentResponse{}, fmt.Errorf("save loan: %w", err)
	}

	// 4. Reconcile an overpayment into savings when possible.
	transferred := decimal.Zero
	var savingsEvents []event.DomainEvent
	if result.OverpaidAmount.IsPositive() {
		transferred, savingsEvents, err = uc.transferOverpayment(ctx, loan, result.OverpaidAmount, now)
		if err != nil {
			return dto.RepaymentResponse{}, err
		}
	}

	// 5. Publish events.
	evts := append(loan.DomainEvents(), savingsEvents...)
	if err := uc.publisher.Publish(ctx, evts...); err != nil {
		return dto.RepaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.RepaymentResponse{
		LoanID:               loan.ID(),
		AmountPaid:           req.Amount,
		PrincipalApplied:     result.PrincipalApplied,
		InterestApplied:      result.InterestApplied,
		FeeApplied:           result.FeeApplied,
		PenaltyApplied:       result.PenaltyApplied,
		Outstanding:          loan.Outstanding(),
		LoanStatus:           loan.Status().String(),
		OverpaidAmount:       result.OverpaidAmount,
		TransferredToSavings: transferred,
	}, nil
}

// transferOverpayment deposits the excess into the client's savings account
// in the loan's currency. A missing account is not an error.
func (uc *RecordRepaymentUseCase) transferOverpayment(
	ctx context.Context,
	loan model.Loan,
	amount decimal.Decimal,
	now time.Time,
) (decimal.Decimal, []event.DomainEvent, error) {
	accounts, err := uc.savingsRepo.FindByClientID(ctx, loan.TenantID(), loan.ClientID())
	if err != nil {
		return decimal.Zero, nil, fmt.Errorf("find savings accounts: %w", err)
	}

	for _, acc := range accounts {
		if acc.Currency().Code() != loan.Currency().Code() {
			continue
		}
		credited, err := acc.Deposit(amount, fmt.Sprintf("loan %s overpayment", loan.ID()), now)
		if err != nil {
			continue
		}
		if err := uc.savingsRepo.Save(ctx, credited); err != nil {
			return decimal.Zero, nil, fmt.Errorf("save savings account: %w", err)
		}
		return amount, credited.DomainEvents(), nil
	}

	return decimal.Zero, nil, nil
}
