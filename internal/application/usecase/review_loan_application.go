package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/asantefin/asante/internal/application/dto"
	"github.com/asantefin/asante/internal/domain/port"
	"github.com/asantefin/asante/internal/domain/service"
)

// ReviewLoanApplicationUseCase runs underwriting for a submitted application
// and records the approve/reject decision.
type ReviewLoanApplicationUseCase struct {
	appRepo      port.LoanApplicationRepository
	clientRepo   port.ClientRepository
	creditBureau port.CreditBureauClient
	underwriting *service.UnderwritingEngine
	publisher    port.EventPublisher
}

// NewReviewLoanApplicationUseCase wires dependencies.
func NewReviewLoanApplicationUseCase(
	appRepo port.LoanApplicationRepository,
	clientRepo port.ClientRepository,
	creditBureau port.CreditBureauClient,
	underwriting *service.UnderwritingEngine,
	publisher port.EventPublisher,
) *ReviewLoanApplicationUseCase {
	return &ReviewLoanApplicationUseCase{
		appRepo:      appRepo,
		clientRepo:   clientRepo,
		creditBureau: creditBureau,
		underwriting: underwriting,
		publisher:    publisher,
	}
}

// Execute reviews the application and records the underwriting outcome.
func (uc *ReviewLoanApplicationUseCase) Execute(
	ctx context.Context,
	req dto.ReviewApplicationRequest,
) (dto.LoanApplicationResponse, error) {
	now := time.Now().UTC()

	// 1. Retrieve the application and move it into review.
	app, err := uc.appRepo.FindByID(ctx, req.TenantID, req.ApplicationID)
	if err != nil {
		return dto.LoanApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}
	app, err = app.StartReview(now)
	if err != nil {
		return dto.LoanApplicationResponse{}, fmt.Errorf("start review: %w", err)
	}

	// 2. Fetch the applicant's credit score.
	client, err := uc.clientRepo.FindByID(ctx, req.TenantID, app.ClientID())
	if err != nil {
		return dto.LoanApplicationResponse{}, fmt.Errorf("find client: %w", err)
	}
	score, err := uc.creditBureau.GetCreditScore(ctx, client.NationalID())
	if err != nil {
		return dto.LoanApplicationResponse{}, fmt.Errorf("get credit score: %w", err)
	}

	// 3. Apply the underwriting rules.
	result := uc.underwriting.Evaluate(score, app.RequestedAmount(), app.Installments())
	if result.Approved {
		app, err = app.Approve(req.OfficerID, result.Reason, result.CreditScore, now)
	} else {
		app, err = app.Reject(req.OfficerID, result.Reason, now)
	}
	if err != nil {
		return dto.LoanApplicationResponse{}, fmt.Errorf("record decision: %w", err)
	}

	// 4. Persist.
	if err := uc.appRepo.Save(ctx, app); err != nil {
		return dto.LoanApplicationResponse{}, fmt.Errorf("save application: %w", err)
	}

	// 5. Publish events.
	if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
		return dto.LoanApplicationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return applicationResponse(app), nil
}
