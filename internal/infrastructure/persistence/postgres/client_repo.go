package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asantefin/asante/internal/domain/model"
	"github.com/asantefin/asante/internal/domain/valueobject"
)

// ClientRepo implements port.ClientRepository.
type ClientRepo struct {
	pool *pgxpool.Pool
}

// NewClientRepo creates a new PostgreSQL-backed client repository.
func NewClientRepo(pool *pgxpool.Pool) *ClientRepo {
	return &ClientRepo{pool: pool}
}

// Save persists a client (upsert by ID with optimistic locking).
func (r *ClientRepo) Save(ctx context.Context, c model.Client) error {
	query := `
		INSERT INTO clients (
			id, tenant_id, full_name, phone_number, national_id, branch_id,
			status, version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (id) DO UPDATE SET
			full_name    = EXCLUDED.full_name,
			phone_number = EXCLUDED.phone_number,
			status       = EXCLUDED.status,
			version      = clients.version + 1,
			updated_at   = EXCLUDED.updated_at
		WHERE clients.version = $8
	`
	tag, err := r.pool.Exec(ctx, query,
		c.ID(), c.TenantID(), c.FullName(), c.PhoneNumber(), c.NationalID(), c.BranchID(),
		c.Status().String(), c.Version(), c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on client")
	}
	return nil
}

// FindByID retrieves a single client.
func (r *ClientRepo) FindByID(ctx context.Context, tenantID, id string) (model.Client, error) {
	query := `
		SELECT id, tenant_id, full_name, phone_number, national_id, branch_id,
		       status, version, created_at, updated_at
		FROM clients
		WHERE tenant_id = $1 AND id = $2
	`
	return scanClient(r.pool.QueryRow(ctx, query, tenantID, id))
}

// FindByNationalID retrieves a client by national ID, used for duplicate
// checks at registration.
func (r *ClientRepo) FindByNationalID(ctx context.Context, tenantID, nationalID string) (model.Client, error) {
	query := `
		SELECT id, tenant_id, full_name, phone_number, national_id, branch_id,
		       status, version, created_at, updated_at
		FROM clients
		WHERE tenant_id = $1 AND national_id = $2
	`
	return scanClient(r.pool.QueryRow(ctx, query, tenantID, nationalID))
}

func scanClient(s scannable) (model.Client, error) {
	var (
		id, tenantID, fullName, phoneNumber, nationalID, branchID string
		statusStr                                                 string
		version                                                   int
		createdAt, updatedAt                                      time.Time
	)

	err := s.Scan(
		&id, &tenantID, &fullName, &phoneNumber, &nationalID, &branchID,
		&statusStr, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Client{}, fmt.Errorf("scan client: %w", err)
	}

	status, err := valueobject.NewClientStatus(statusStr)
	if err != nil {
		return model.Client{}, fmt.Errorf("parse client status: %w", err)
	}

	return model.ReconstructClient(
		id, tenantID, fullName, phoneNumber, nationalID, branchID,
		status, version, createdAt, updatedAt,
	), nil
}
