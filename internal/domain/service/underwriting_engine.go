package service

import (
	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// UnderwritingEngine – domain service for rule-based credit decisioning
// ---------------------------------------------------------------------------

// UnderwritingResult holds the outcome of the underwriting evaluation.
type UnderwritingResult struct {
	Reason      string
	CreditScore int
	MaxAmount   decimal.Decimal
	Approved    bool
}

// UnderwritingEngine encapsulates the tiered credit rules applied to a loan
// application before approval.
type UnderwritingEngine struct{}

// NewUnderwritingEngine returns a new engine instance.
func NewUnderwritingEngine() *UnderwritingEngine {
	return &UnderwritingEngine{}
}

// Evaluate performs a rule-based underwriting decision.
//
// Tiers:
//
//	score >= 700  -> approved up to 1,000,000
//	score >= 600  -> approved up to 500,000
//	score >= 450  -> approved up to 100,000
//	score <  450  -> rejected
func (e *UnderwritingEngine) Evaluate(
	creditScore int,
	requestedAmount decimal.Decimal,
	installments int,
) UnderwritingResult {
	var (
		approved  bool
		reason    string
		maxAmount decimal.Decimal
	)

	switch {
	case creditScore >= 700:
		approved = true
		reason = "excellent credit tier"
		maxAmount = decimal.NewFromInt(1_000_000)
	case creditScore >= 600:
		approved = true
		reason = "good credit tier"
		maxAmount = decimal.NewFromInt(500_000)
	case creditScore >= 450:
		approved = true
		reason = "fair credit tier"
		maxAmount = decimal.NewFromInt(100_000)
	default:
		approved = false
		reason = "credit score below minimum threshold"
		maxAmount = decimal.Zero
	}

	// If approved but requested amount exceeds the tier limit, reject.
	if approved && requestedAmount.GreaterThan(maxAmount) {
		approved = false
		reason = "requested amount exceeds maximum for credit tier"
	}

	// Installment sanity check.
	if approved && installments > 120 {
		approved = false
		reason = "installment count exceeds maximum of 120"
	}

	return UnderwritingResult{
		Approved:    approved,
		Reason:      reason,
		CreditScore: creditScore,
		MaxAmount:   maxAmount,
	}
}
