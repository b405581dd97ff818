package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/asantefin/asante/internal/application/dto"
	"github.com/asantefin/asante/internal/domain/model"
	"github.com/asantefin/asante/internal/domain/port"
	"github.com/asantefin/asante/internal/domain/valueobject"
	"github.com/asantefin/asante/pkg/money"
)

// SubmitLoanApplicationUseCase accepts a new loan application from an active
// client, checking it against the product limits.
type SubmitLoanApplicationUseCase struct {
	clientRepo  port.ClientRepository
	appRepo     port.LoanApplicationRepository
	productRepo port.ProductConfigRepository
	publisher   port.EventPublisher
}

// NewSubmitLoanApplicationUseCase wires dependencies.
func NewSubmitLoanApplicationUseCase(
	clientRepo port.ClientRepository,
	appRepo port.LoanApplicationRepository,
	productRepo port.ProductConfigRepository,
	publisher port.EventPublisher,
) *SubmitLoanApplicationUseCase {
	return &SubmitLoanApplicationUseCase{
		clientRepo:  clientRepo,
		appRepo:     appRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// Execute submits the application.
func (uc *SubmitLoanApplicationUseCase) Execute(
	ctx context.Context,
	req dto.SubmitApplicationRequest,
) (dto.LoanApplicationResponse, error) {
	now := time.Now().UTC()

	// 1. The client must exist and be able to transact.
	client, err := uc.clientRepo.FindByID(ctx, req.TenantID, req.ClientID)
	if err != nil {
		return dto.LoanApplicationResponse{}, fmt.Errorf("find client: %w", err)
	}
	if !client.CanTransact() {
		return dto.LoanApplicationResponse{}, fmt.Errorf("client %s is not active", req.ClientID)
	}

	// 2. The requested amount must fall inside the product limits.
	product, err := uc.productRepo.FindByID(ctx, req.TenantID, req.ProductID)
	if err != nil {
		return dto.LoanApplicationResponse{}, fmt.Errorf("find product: %w", err)
	}
	if !product.AllowsPrincipal(req.RequestedAmount) {
		return dto.LoanApplicationResponse{}, fmt.Errorf("requested amount %s outside product limits", req.RequestedAmount)
	}

	// 3. Parse boundary inputs into value objects.
	currency, err := money.NewCurrency(req.Currency)
	if err != nil {
		return dto.LoanApplicationResponse{}, fmt.Errorf("parse currency: %w", err)
	}
	frequency, err := valueobject.NewRepaymentFrequency(req.Frequency)
	if err != nil {
		return dto.LoanApplicationResponse{}, fmt.Errorf("parse frequency: %w", err)
	}
	method, err := valueobject.NewInterestMethod(req.Method)
	if err != nil {
		return dto.LoanApplicationResponse{}, fmt.Errorf("parse interest method: %w", err)
	}

	// 4. Create the aggregate.
	app, err := model.NewLoanApplication(
		req.TenantID, req.ClientID, req.ProductID,
		req.RequestedAmount, currency,
		req.TermLength, req.Installments,
		frequency, method,
		req.Purpose, now,
	)
	if err != nil {
		return dto.LoanApplicationResponse{}, fmt.Errorf("submit application: %w", err)
	}

	// 5. Persist.
	if err := uc.appRepo.Save(ctx, app); err != nil {
		return dto.LoanApplicationResponse{}, fmt.Errorf("save application: %w", err)
	}

	// 6. Publish events.
	if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
		return dto.LoanApplicationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return applicationResponse(app), nil
}

func applicationResponse(app model.LoanApplication) dto.LoanApplicationResponse {
	return dto.LoanApplicationResponse{
		ID:              app.ID(),
		TenantID:        app.TenantID(),
		ClientID:        app.ClientID(),
		ProductID:       app.ProductID(),
		RequestedAmount: app.RequestedAmount(),
		Currency:        app.Currency().Code(),
		TermLength:      app.TermLength(),
		Installments:    app.Installments(),
		Status:          app.Status().String(),
		CreditScore:     app.CreditScore(),
		DecisionReason:  app.DecisionReason(),
	}
}
