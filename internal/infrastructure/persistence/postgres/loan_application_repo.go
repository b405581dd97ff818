package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/asantefin/asante/internal/domain/model"
	"github.com/asantefin/asante/internal/domain/valueobject"
	"github.com/asantefin/asante/pkg/money"
)

// LoanApplicationRepo implements port.LoanApplicationRepository.
type LoanApplicationRepo struct {
	pool *pgxpool.Pool
}

// NewLoanApplicationRepo creates a new repository backed by PostgreSQL.
func NewLoanApplicationRepo(pool *pgxpool.Pool) *LoanApplicationRepo {
	return &LoanApplicationRepo{pool: pool}
}

// Save persists a loan application (upsert by ID with optimistic locking).
func (r *LoanApplicationRepo) Save(ctx context.Context, app model.LoanApplication) error {
	query := `
		INSERT INTO loan_applications (
			id, tenant_id, client_id, product_id, requested_amount, currency,
			term_length, installments, frequency, interest_method, purpose,
			status, credit_score, decision_reason, decided_by,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		ON CONFLICT (id) DO UPDATE SET
			status          = EXCLUDED.status,
			credit_score    = EXCLUDED.credit_score,
			decision_reason = EXCLUDED.decision_reason,
			decided_by      = EXCLUDED.decided_by,
			version         = loan_applications.version + 1,
			updated_at      = EXCLUDED.updated_at
		WHERE loan_applications.version = $16
	`
	tag, err := r.pool.Exec(ctx, query,
		app.ID(), app.TenantID(), app.ClientID(), app.ProductID(),
		app.RequestedAmount(), app.Currency().Code(),
		app.TermLength(), app.Installments(),
		app.Frequency().String(), app.Method().String(), app.Purpose(),
		app.Status().String(), app.CreditScore(), app.DecisionReason(), app.DecidedBy(),
		app.Version(), app.CreatedAt(), app.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save loan application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on loan application")
	}
	return nil
}

// FindByID retrieves a single loan application.
func (r *LoanApplicationRepo) FindByID(ctx context.Context, tenantID, id string) (model.LoanApplication, error) {
	query := applicationSelect + ` WHERE tenant_id = $1 AND id = $2`
	return scanApplication(r.pool.QueryRow(ctx, query, tenantID, id))
}

// FindByClientID retrieves all applications for a given client.
func (r *LoanApplicationRepo) FindByClientID(ctx context.Context, tenantID, clientID string) ([]model.LoanApplication, error) {
	query := applicationSelect + ` WHERE tenant_id = $1 AND client_id = $2 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, tenantID, clientID)
	if err != nil {
		return nil, fmt.Errorf("query loan applications: %w", err)
	}
	defer rows.Close()

	var result []model.LoanApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, app)
	}
	return result, rows.Err()
}

const applicationSelect = `
	SELECT id, tenant_id, client_id, product_id, requested_amount, currency,
	       term_length, installments, frequency, interest_method, purpose,
	       status, credit_score, decision_reason, decided_by,
	       version, created_at, updated_at
	FROM loan_applications`

func scanApplication(s scannable) (model.LoanApplication, error) {
	var (
		id, tenantID, clientID, productID string
		requestedAmount                   decimal.Decimal
		currencyCode                      string
		termLength, installments          int
		frequencyStr, methodStr, purpose  string
		statusStr                         string
		creditScore                       int
		decisionReason, decidedBy         string
		version                           int
		createdAt, updatedAt              time.Time
	)

	err := s.Scan(
		&id, &tenantID, &clientID, &productID, &requestedAmount, &currencyCode,
		&termLength, &installments, &frequencyStr, &methodStr, &purpose,
		&statusStr, &creditScore, &decisionReason, &decidedBy,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.LoanApplication{}, fmt.Errorf("scan loan application: %w", err)
	}

	currency, err := money.NewCurrency(currencyCode)
	if err != nil {
		return model.LoanApplication{}, fmt.Errorf("parse currency: %w", err)
	}
	frequency, err := valueobject.NewRepaymentFrequency(frequencyStr)
	if err != nil {
		return model.LoanApplication{}, fmt.Errorf("parse frequency: %w", err)
	}
	method, err := valueobject.NewInterestMethod(methodStr)
	if err != nil {
		return model.LoanApplication{}, fmt.Errorf("parse interest method: %w", err)
	}
	status, err := valueobject.NewLoanApplicationStatus(statusStr)
	if err != nil {
		return model.LoanApplication{}, fmt.Errorf("parse status: %w", err)
	}

	return model.ReconstructLoanApplication(
		id, tenantID, clientID, productID,
		requestedAmount, currency,
		termLength, installments,
		frequency, method, purpose,
		status, creditScore, decisionReason, decidedBy,
		version, createdAt, updatedAt,
	), nil
}
