package model

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/asantefin/asante/internal/domain/valueobject"
)

// balanceEpsilon is the tolerance below which a balance counts as settled.
var balanceEpsilon = decimal.NewFromFloat(0.0001)

// ErrInvalidPayment is returned when a payment amount is not positive.
var ErrInvalidPayment = errors.New("payment amount must be positive")

// AllocationResult is the outcome of applying one payment. The four applied
// components always sum exactly to the payment amount; any part of the
// payment exceeding everything outstanding is forced into PrincipalApplied.
type AllocationResult struct {
	PrincipalApplied     decimal.Decimal
	InterestApplied      decimal.Decimal
	FeeApplied           decimal.Decimal
	PenaltyApplied       decimal.Decimal
	ResultingOutstanding decimal.Decimal
	ResultingStatus      valueobject.LoanStatus
	OverpaidAmount       decimal.Decimal
}

// AllocateRepayment splits a payment across the outstanding components in the
// strategy's order and returns the updated schedule alongside the result. The
// input schedule is never mutated.
//
// Each component's cap is the sum of the unpaid installments' remaining
// amounts for that component. Penalties are carried as a component but are
// never accrued anywhere, so their cap is always zero. A payment that exceeds
// the total outstanding is not an error: the leftover is absorbed into the
// principal component and surfaces as an overpaid status.
//
// previousOutstanding is the loan's remaining total payable (unpaid
// principal, interest, and fees). The resulting outstanding is
// previousOutstanding minus the full payment amount, so it hits zero exactly
// when the schedule is fully settled. Status derivation: below -epsilon is
// OVERPAID, within epsilon of zero is CLOSED, otherwise the loan stays
// ACTIVE.
func AllocateRepayment(
	schedule []ScheduleInstallment,
	previousOutstanding decimal.Decimal,
	amount decimal.Decimal,
	strategy valueobject.AllocationStrategy,
) (AllocationResult, []ScheduleInstallment, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return AllocationResult{}, nil, ErrInvalidPayment
	}

	next := copySchedule(schedule)
	applied := map[valueobject.PaymentComponent]decimal.Decimal{
		valueobject.ComponentPenalty:   decimal.Zero,
		valueobject.ComponentFee:       decimal.Zero,
		valueobject.ComponentInterest:  decimal.Zero,
		valueobject.ComponentPrincipal: decimal.Zero,
	}

	remaining := amount
	for _, component := range strategy.Order() {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		take := payComponent(next, component, remaining)
		applied[component] = applied[component].Add(take)
		remaining = remaining.Sub(take)
	}

	// Overpayment policy: the leftover is forced into principal.
	if remaining.GreaterThan(decimal.Zero) {
		applied[valueobject.ComponentPrincipal] = applied[valueobject.ComponentPrincipal].Add(remaining)
	}

	for i := range next {
		next[i].Status = installmentStatus(next[i])
	}

	outstanding := previousOutstanding.Sub(amount)
	status := valueobject.LoanStatusActive
	overpaid := decimal.Zero
	switch {
	case outstanding.LessThan(balanceEpsilon.Neg()):
		status = valueobject.LoanStatusOverpaid
		overpaid = outstanding.Abs()
	case outstanding.LessThanOrEqual(balanceEpsilon):
		status = valueobject.LoanStatusClosed
	}

	return AllocationResult{
		PrincipalApplied:     applied[valueobject.ComponentPrincipal],
		InterestApplied:      applied[valueobject.ComponentInterest],
		FeeApplied:           applied[valueobject.ComponentFee],
		PenaltyApplied:       applied[valueobject.ComponentPenalty],
		ResultingOutstanding: outstanding,
		ResultingStatus:      status,
		OverpaidAmount:       overpaid,
	}, next, nil
}

// payComponent walks the schedule in sequence order and pays down one
// component up to the available amount, returning how much was taken.
func payComponent(schedule []ScheduleInstallment, component valueobject.PaymentComponent, available decimal.Decimal) decimal.Decimal {
	taken := decimal.Zero
	for i := range schedule {
		if available.LessThanOrEqual(decimal.Zero) {
			break
		}

		var due decimal.Decimal
		switch component {
		case valueobject.ComponentPrincipal:
			due = schedule[i].RemainingPrincipal()
		case valueobject.ComponentInterest:
			due = schedule[i].RemainingInterest()
		case valueobject.ComponentFee:
			due = schedule[i].RemainingFee()
		default:
			// Penalty accrual is not computed anywhere, so there is never
			// anything to take.
			return taken
		}
		if due.LessThanOrEqual(decimal.Zero) {
			continue
		}

		take := decimal.Min(available, due)
		switch component {
		case valueobject.ComponentPrincipal:
			schedule[i].PrincipalPaid = schedule[i].PrincipalPaid.Add(take)
		case valueobject.ComponentInterest:
			schedule[i].InterestPaid = schedule[i].InterestPaid.Add(take)
		case valueobject.ComponentFee:
			schedule[i].FeePaid = schedule[i].FeePaid.Add(take)
		}

		taken = taken.Add(take)
		available = available.Sub(take)
	}
	return taken
}

func installmentStatus(si ScheduleInstallment) valueobject.InstallmentStatus {
	switch {
	case si.IsSettled():
		return valueobject.InstallmentStatusPaid
	case si.TotalPaid().GreaterThan(decimal.Zero):
		return valueobject.InstallmentStatusPartiallyPaid
	default:
		return valueobject.InstallmentStatusUnpaid
	}
}
