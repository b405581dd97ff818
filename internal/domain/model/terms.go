package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/asantefin/asante/internal/domain/valueobject"
)

// LoanTerms holds the parameters a schedule is generated from. Terms are
// immutable once a schedule exists; changing them requires regenerating the
// schedule.
//
// TermLength and Installments are independent: the term expresses the nominal
// duration in frequency units, the installment count expresses how many
// payments are collected over it.
type LoanTerms struct {
	Principal          decimal.Decimal
	AnnualRatePercent  decimal.Decimal
	TermLength         int
	Installments       int
	Frequency          valueobject.RepaymentFrequency
	Method             valueobject.InterestMethod
	FirstRepaymentDate time.Time
}

// Validate checks the terms against the generation preconditions. All
// violations wrap ErrInvalidTerms so callers can match the error kind.
func (t LoanTerms) Validate() error {
	if t.Principal.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: principal must be positive, got %s", valueobject.ErrInvalidTerms, t.Principal)
	}
	if t.AnnualRatePercent.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: interest rate must not be negative, got %s", valueobject.ErrInvalidTerms, t.AnnualRatePercent)
	}
	if t.Installments <= 0 {
		return fmt.Errorf("%w: installment count must be positive, got %d", valueobject.ErrInvalidTerms, t.Installments)
	}
	if t.TermLength <= 0 {
		return fmt.Errorf("%w: term length must be positive, got %d", valueobject.ErrInvalidTerms, t.TermLength)
	}
	if t.Frequency.IsZero() {
		return fmt.Errorf("%w: repayment frequency is required", valueobject.ErrInvalidTerms)
	}
	if t.Method.IsZero() {
		return fmt.Errorf("%w: interest method is required", valueobject.ErrInvalidTerms)
	}
	return nil
}

// firstDueDate resolves the date of installment 1. When no first repayment
// date is supplied it defaults to one frequency period after now.
func (t LoanTerms) firstDueDate(now time.Time) time.Time {
	if !t.FirstRepaymentDate.IsZero() {
		return t.FirstRepaymentDate
	}
	return t.Frequency.AddPeriods(now, 1)
}
