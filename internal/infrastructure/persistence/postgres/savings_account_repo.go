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

// SavingsAccountRepo implements port.SavingsAccountRepository.
type SavingsAccountRepo struct {
	pool *pgxpool.Pool
}

// NewSavingsAccountRepo creates a new PostgreSQL-backed savings repository.
func NewSavingsAccountRepo(pool *pgxpool.Pool) *SavingsAccountRepo {
	return &SavingsAccountRepo{pool: pool}
}

// Save persists a savings account (upsert by ID with optimistic locking).
func (r *SavingsAccountRepo) Save(ctx context.Context, acc model.SavingsAccount) error {
	query := `
		INSERT INTO savings_accounts (
			id, tenant_id, client_id, currency, balance, status,
			last_accrual_date, version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (id) DO UPDATE SET
			balance           = EXCLUDED.balance,
			status            = EXCLUDED.status,
			last_accrual_date = EXCLUDED.last_accrual_date,
			version           = savings_accounts.version + 1,
			updated_at        = EXCLUDED.updated_at
		WHERE savings_accounts.version = $8
	`
	tag, err := r.pool.Exec(ctx, query,
		acc.ID(), acc.TenantID(), acc.ClientID(), acc.Currency().Code(),
		acc.Balance(), acc.Status().String(), acc.LastAccrualDate(),
		acc.Version(), acc.CreatedAt(), acc.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save savings account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on savings account")
	}
	return nil
}

// FindByID retrieves a single savings account.
func (r *SavingsAccountRepo) FindByID(ctx context.Context, tenantID, id string) (model.SavingsAccount, error) {
	query := savingsSelect + ` WHERE tenant_id = $1 AND id = $2`
	return scanSavingsAccount(r.pool.QueryRow(ctx, query, tenantID, id))
}

// FindByClientID retrieves all savings accounts for a client.
func (r *SavingsAccountRepo) FindByClientID(ctx context.Context, tenantID, clientID string) ([]model.SavingsAccount, error) {
	query := savingsSelect + ` WHERE tenant_id = $1 AND client_id = $2 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, tenantID, clientID)
	if err != nil {
		return nil, fmt.Errorf("query savings accounts: %w", err)
	}
	defer rows.Close()

	var result []model.SavingsAccount
	for rows.Next() {
		acc, err := scanSavingsAccount(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, acc)
	}
	return result, rows.Err()
}

const savingsSelect = `
	SELECT id, tenant_id, client_id, currency, balance, status,
	       last_accrual_date, version, created_at, updated_at
	FROM savings_accounts`

func scanSavingsAccount(s scannable) (model.SavingsAccount, error) {
	var (
		id, tenantID, clientID string
		currencyCode           string
		balance                decimal.Decimal
		statusStr              string
		lastAccrualDate        time.Time
		version                int
		createdAt, updatedAt   time.Time
	)

	err := s.Scan(
		&id, &tenantID, &clientID, &currencyCode, &balance, &statusStr,
		&lastAccrualDate, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.SavingsAccount{}, fmt.Errorf("scan savings account: %w", err)
	}

	currency, err := money.NewCurrency(currencyCode)
	if err != nil {
		return model.SavingsAccount{}, fmt.Errorf("parse currency: %w", err)
	}
	status, err := valueobject.NewSavingsAccountStatus(statusStr)
	if err != nil {
		return model.SavingsAccount{}, fmt.Errorf("parse savings status: %w", err)
	}

	return model.ReconstructSavingsAccount(
		id, tenantID, clientID, currency, balance, status,
		lastAccrualDate, version, createdAt, updatedAt,
	), nil
}
