package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a single repayment record. Payments are immutable once recorded;
// corrections require a reversing entry.
type Payment struct {
	Amount    decimal.Decimal
	Date      time.Time
	Method    string
	Reference string
}

// copyPayments returns a defensive copy of a payment history.
func copyPayments(payments []Payment) []Payment {
	if payments == nil {
		return nil
	}
	out := make([]Payment, len(payments))
	copy(out, payments)
	return out
}
