package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/asantefin/asante/internal/application/dto"
	"github.com/asantefin/asante/internal/domain/model"
	"github.com/asantefin/asante/internal/domain/port"
)

// DisburseLoanUseCase converts an approved application into an active loan
// with a generated repayment schedule. Pricing, allocation strategy, and
// disbursement fees come from the product configuration.
type DisburseLoanUseCase struct {
	appRepo     port.LoanApplicationRepository
	loanRepo    port.LoanRepository
	productRepo port.ProductConfigRepository
	publisher   port.EventPublisher
}

// NewDisburseLoanUseCase wires dependencies.
func NewDisburseLoanUseCase(
	appRepo port.LoanApplicationRepository,
	loanRepo port.LoanRepository,
	productRepo port.ProductConfigRepository,
	publisher port.EventPublisher,
) *DisburseLoanUseCase {
	return &DisburseLoanUseCase{
		appRepo:     appRepo,
		loanRepo:    loanRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// Execute disburses the loan.
func (uc *DisburseLoanUseCase) Execute(
	ctx context.Context,
	req dto.DisburseLoanRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	// 1. Retrieve the approved application.
	app, err := uc.appRepo.FindByID(ctx, req.TenantID, req.ApplicationID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find application: %w", err)
	}

	// 2. Look up the product configuration.
	product, err := uc.productRepo.FindByID(ctx, req.TenantID, app.ProductID())
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find product: %w", err)
	}

	// 3. Create the loan from the application terms.
	terms := app.Terms(product.AnnualRatePercent, req.FirstRepaymentDate)
	loan, err := model.NewLoan(
		app.TenantID(), app.ClientID(), app.ID(), app.ProductID(),
		terms, app.Currency(), product.DisbursementFees, product.Strategy, now,
	)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("create loan: %w", err)
	}

	// 4. Mark the application disbursed.
	app, err = app.MarkDisbursed(now)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("mark disbursed: %w", err)
	}

	// 5. Persist both aggregates.
	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}
	if err := uc.appRepo.Save(ctx, app); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save application: %w", err)
	}

	// 6. Publish events from both.
	evts := append(loan.DomainEvents(), app.DomainEvents()...)
	if err := uc.publisher.Publish(ctx, evts...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return loanResponse(loan, false, 0, 100), nil
}
