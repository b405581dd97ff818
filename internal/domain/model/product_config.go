package model

import (
	"github.com/shopspring/decimal"

	"github.com/asantefin/asante/internal/domain/valueobject"
)

// ProductConfig is per-product servicing configuration supplied by the
// product catalogue: the allocation strategy, the default pricing, and the
// charges attached at disbursement. The servicing core never looks these up
// itself.
type ProductConfig struct {
	ProductID         string
	TenantID          string
	Name              string
	AnnualRatePercent decimal.Decimal
	Method            valueobject.InterestMethod
	Strategy          valueobject.AllocationStrategy
	DisbursementFees  []ChargeSpec
	MinPrincipal      decimal.Decimal
	MaxPrincipal      decimal.Decimal

	// EarlySettlementFeePercent is charged on the outstanding balance when a
	// loan is settled ahead of schedule. Zero means settling is free.
	EarlySettlementFeePercent decimal.Decimal
}

// EarlySettlementFee computes the settlement fee for the given outstanding
// balance.
func (p ProductConfig) EarlySettlementFee(outstanding decimal.Decimal) decimal.Decimal {
	if !p.EarlySettlementFeePercent.IsPositive() || !outstanding.IsPositive() {
		return decimal.Zero
	}
	return outstanding.Mul(p.EarlySettlementFeePercent).Div(decimal.NewFromInt(100))
}

// AllowsPrincipal reports whether the amount falls inside the product limits.
// A zero max means no upper bound.
func (p ProductConfig) AllowsPrincipal(amount decimal.Decimal) bool {
	if amount.LessThan(p.MinPrincipal) {
		return false
	}
	if p.MaxPrincipal.IsPositive() && amount.GreaterThan(p.MaxPrincipal) {
		return false
	}
	return true
}
