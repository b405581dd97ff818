package port

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/asantefin/asante/internal/domain/event"
	"github.com/asantefin/asante/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ClientRepository persists and retrieves clients.
type ClientRepository interface {
	Save(ctx context.Context, c model.Client) error
	FindByID(ctx context.Context, tenantID, id string) (model.Client, error)
	FindByNationalID(ctx context.Context, tenantID, nationalID string) (model.Client, error)
}

// LoanApplicationRepository persists and retrieves loan applications.
type LoanApplicationRepository interface {
	Save(ctx context.Context, app model.LoanApplication) error
	FindByID(ctx context.Context, tenantID, id string) (model.LoanApplication, error)
	FindByClientID(ctx context.Context, tenantID, clientID string) ([]model.LoanApplication, error)
}

// LoanRepository persists and retrieves loans. Save must serialize writes to
// a loan via its version column so concurrent payments cannot interleave.
type LoanRepository interface {
	Save(ctx context.Context, loan model.Loan) error
	FindByID(ctx context.Context, tenantID, id string) (model.Loan, error)
	FindByApplicationID(ctx context.Context, tenantID, applicationID string) (model.Loan, error)
	FindByClientID(ctx context.Context, tenantID, clientID string) ([]model.Loan, error)
}

// SavingsAccountRepository persists and retrieves savings accounts.
type SavingsAccountRepository interface {
	Save(ctx context.Context, acc model.SavingsAccount) error
	FindByID(ctx context.Context, tenantID, id string) (model.SavingsAccount, error)
	FindByClientID(ctx context.Context, tenantID, clientID string) ([]model.SavingsAccount, error)
}

// ProductConfigRepository looks up per-product servicing configuration.
type ProductConfigRepository interface {
	FindByID(ctx context.Context, tenantID, productID string) (model.ProductConfig, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// CreditBureauClient fetches credit scores from an external bureau.
type CreditBureauClient interface {
	GetCreditScore(ctx context.Context, nationalID string) (int, error)
}

// FeeSchedule looks up fee amounts configured outside the servicing core.
type FeeSchedule interface {
	EarlySettlementFee(ctx context.Context, tenantID, productID string, outstanding decimal.Decimal) (decimal.Decimal, error)
}
