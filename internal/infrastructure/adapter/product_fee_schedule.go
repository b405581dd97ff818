package adapter

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/asantefin/asante/internal/domain/port"
)

// ProductFeeSchedule implements port.FeeSchedule by deriving the early
// settlement fee from the product configuration.
type ProductFeeSchedule struct {
	products port.ProductConfigRepository
}

// NewProductFeeSchedule creates the fee schedule adapter.
func NewProductFeeSchedule(products port.ProductConfigRepository) *ProductFeeSchedule {
	return &ProductFeeSchedule{products: products}
}

// EarlySettlementFee looks up the product and applies its settlement fee rate
// to the outstanding balance.
func (f *ProductFeeSchedule) EarlySettlementFee(ctx context.Context, tenantID, productID string, outstanding decimal.Decimal) (decimal.Decimal, error) {
	product, err := f.products.FindByID(ctx, tenantID, productID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("find product %s: %w", productID, err)
	}
	return product.EarlySettlementFee(outstanding), nil
}
