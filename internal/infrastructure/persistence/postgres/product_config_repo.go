package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asantefin/asante/internal/domain/model"
	"github.com/asantefin/asante/internal/domain/valueobject"
)

// ProductConfigRepo implements port.ProductConfigRepository. Products are
// maintained by the catalogue team through migrations and back-office
// tooling, so the repository is read-only.
type ProductConfigRepo struct {
	pool *pgxpool.Pool
}

// NewProductConfigRepo creates a new PostgreSQL-backed product repository.
func NewProductConfigRepo(pool *pgxpool.Pool) *ProductConfigRepo {
	return &ProductConfigRepo{pool: pool}
}

// FindByID retrieves a product configuration with its disbursement fees.
func (r *ProductConfigRepo) FindByID(ctx context.Context, tenantID, productID string) (model.ProductConfig, error) {
	query := `
		SELECT product_id, tenant_id, name, annual_rate_percent,
		       interest_method, allocation_strategy,
		       min_principal, max_principal, early_settlement_fee_percent
		FROM product_configs
		WHERE tenant_id = $1 AND product_id = $2
	`

	var (
		p                      model.ProductConfig
		methodStr, strategyStr string
	)
	err := r.pool.QueryRow(ctx, query, tenantID, productID).Scan(
		&p.ProductID, &p.TenantID, &p.Name, &p.AnnualRatePercent,
		&methodStr, &strategyStr,
		&p.MinPrincipal, &p.MaxPrincipal, &p.EarlySettlementFeePercent,
	)
	if err != nil {
		return model.ProductConfig{}, fmt.Errorf("scan product config: %w", err)
	}

	if p.Method, err = valueobject.NewInterestMethod(methodStr); err != nil {
		return model.ProductConfig{}, fmt.Errorf("parse interest method: %w", err)
	}
	if p.Strategy, err = valueobject.NewAllocationStrategy(strategyStr); err != nil {
		return model.ProductConfig{}, fmt.Errorf("parse allocation strategy: %w", err)
	}

	if p.DisbursementFees, err = r.loadFees(ctx, tenantID, productID); err != nil {
		return model.ProductConfig{}, err
	}
	return p, nil
}

func (r *ProductConfigRepo) loadFees(ctx context.Context, tenantID, productID string) ([]model.ChargeSpec, error) {
	query := `
		SELECT name, amount, recurring
		FROM product_fees
		WHERE tenant_id = $1 AND product_id = $2
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query, tenantID, productID)
	if err != nil {
		return nil, fmt.Errorf("query product fees: %w", err)
	}
	defer rows.Close()

	var fees []model.ChargeSpec
	for rows.Next() {
		var f model.ChargeSpec
		if err := rows.Scan(&f.Name, &f.Amount, &f.Recurring); err != nil {
			return nil, fmt.Errorf("scan product fee: %w", err)
		}
		fees = append(fees, f)
	}
	return fees, rows.Err()
}
