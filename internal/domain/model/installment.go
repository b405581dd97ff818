package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/asantefin/asante/internal/domain/valueobject"
)

// ScheduleInstallment is one period of a repayment schedule. Installments are
// created in bulk at generation time and mutated only by payment application;
// they are never deleted.
//
// Monetary components carry full precision. Rounding to two decimals happens
// at display time only.
type ScheduleInstallment struct {
	Sequence         int
	DueDate          time.Time
	Principal        decimal.Decimal
	Interest         decimal.Decimal
	Fee              decimal.Decimal
	OutstandingAfter decimal.Decimal
	PrincipalPaid    decimal.Decimal
	InterestPaid     decimal.Decimal
	FeePaid          decimal.Decimal
	Status           valueobject.InstallmentStatus
}

// TotalDue returns principal + interest + fee for the period.
func (si ScheduleInstallment) TotalDue() decimal.Decimal {
	return si.Principal.Add(si.Interest).Add(si.Fee)
}

// TotalPaid returns the amount applied to this installment so far.
func (si ScheduleInstallment) TotalPaid() decimal.Decimal {
	return si.PrincipalPaid.Add(si.InterestPaid).Add(si.FeePaid)
}

// RemainingPrincipal returns the unpaid part of the principal component.
func (si ScheduleInstallment) RemainingPrincipal() decimal.Decimal {
	return si.Principal.Sub(si.PrincipalPaid)
}

// RemainingInterest returns the unpaid part of the interest component.
func (si ScheduleInstallment) RemainingInterest() decimal.Decimal {
	return si.Interest.Sub(si.InterestPaid)
}

// RemainingFee returns the unpaid part of the fee component.
func (si ScheduleInstallment) RemainingFee() decimal.Decimal {
	return si.Fee.Sub(si.FeePaid)
}

// Remaining returns the total unpaid amount of the installment.
func (si ScheduleInstallment) Remaining() decimal.Decimal {
	return si.TotalDue().Sub(si.TotalPaid())
}

// IsSettled reports whether the installment is fully paid within epsilon.
func (si ScheduleInstallment) IsSettled() bool {
	return si.Remaining().LessThanOrEqual(balanceEpsilon)
}

// copySchedule returns a defensive copy so callers can mutate freely.
func copySchedule(schedule []ScheduleInstallment) []ScheduleInstallment {
	if schedule == nil {
		return nil
	}
	out := make([]ScheduleInstallment, len(schedule))
	copy(out, schedule)
	return out
}
