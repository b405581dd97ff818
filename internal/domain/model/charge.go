package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeSpec describes a fee attached to a loan at schedule-generation time.
//
// A one-off charge is attached to installment 1 unless a due date is given,
// in which case it lands on the first installment due on or after that date
// (or the last installment if the date is beyond the schedule). A recurring
// charge is split evenly across all installments, mirroring the way flat
// interest is split.
type ChargeSpec struct {
	Name      string
	Amount    decimal.Decimal
	Recurring bool
	DueDate   time.Time
}
