package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asantefin/asante/internal/domain/event"
	"github.com/asantefin/asante/internal/domain/valueobject"
	"github.com/asantefin/asante/pkg/money"
)

// ---------------------------------------------------------------------------
// Loan aggregate root (Loan Servicing)
// ---------------------------------------------------------------------------

// Loan is an immutable aggregate. Mutations return a new copy; the caller's
// persistence layer decides whether and when to apply it.
type Loan struct {
	id             string
	tenantID       string
	clientID       string
	applicationID  string
	productID      string
	terms          LoanTerms
	currency       money.Currency
	strategy       valueobject.AllocationStrategy
	status         valueobject.LoanStatus
	schedule       []ScheduleInstallment
	payments       []Payment
	outstanding    decimal.Decimal
	overpaidAmount decimal.Decimal
	disbursedAt    time.Time
	version        int
	createdAt      time.Time
	updatedAt      time.Time
	domainEvents   []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewLoan disburses an approved application: it generates the repayment
// schedule from the terms and opens the loan in ACTIVE status. The headline
// outstanding balance is the total amount payable over the schedule, the sum
// of every installment's principal, interest, and fee. Payments reduce it by
// their full amount, so it reaches zero exactly when the schedule is paid off.
func NewLoan(
	tenantID, clientID, applicationID, productID string,
	terms LoanTerms,
	currency money.Currency,
	charges []ChargeSpec,
	strategy valueobject.AllocationStrategy,
	now time.Time,
) (Loan, error) {
	if tenantID == "" {
		return Loan{}, errors.New("tenant ID is required")
	}
	if clientID == "" {
		return Loan{}, errors.New("client ID is required")
	}
	if currency.Code() == "" {
		return Loan{}, errors.New("currency is required")
	}
	if strategy.IsZero() {
		strategy = valueobject.StrategyDefault
	}

	schedule, err := GenerateSchedule(terms, charges, now)
	if err != nil {
		return Loan{}, err
	}

	totalPayable := decimal.Zero
	for _, inst := range schedule {
		totalPayable = totalPayable.Add(inst.TotalDue())
	}

	id := uuid.New().String()
	loan := Loan{
		id:             id,
		tenantID:       tenantID,
		clientID:       clientID,
		applicationID:  applicationID,
		productID:      productID,
		terms:          terms,
		currency:       currency,
		strategy:       strategy,
		status:         valueobject.LoanStatusActive,
		schedule:       schedule,
		outstanding:    totalPayable,
		overpaidAmount: decimal.Zero,
		disbursedAt:    now,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}

	loan.domainEvents = append(loan.domainEvents, event.NewLoanDisbursed(
		id, tenantID, applicationID, clientID,
		terms.Principal, currency.Code(),
		terms.Installments, schedule[0].DueDate,
	))

	return loan, nil
}

// ReconstructLoan rebuilds a Loan aggregate from persistence.
func ReconstructLoan(
	id, tenantID, clientID, applicationID, productID string,
	terms LoanTerms,
	currency money.Currency,
	strategy valueobject.AllocationStrategy,
	status valueobject.LoanStatus,
	schedule []ScheduleInstallment,
	payments []Payment,
	outstanding, overpaidAmount decimal.Decimal,
	disbursedAt time.Time,
	version int,
	createdAt, updatedAt time.Time,
) Loan {
	return Loan{
		id:             id,
		tenantID:       tenantID,
		clientID:       clientID,
		applicationID:  applicationID,
		productID:      productID,
		terms:          terms,
		currency:       currency,
		strategy:       strategy,
		status:         status,
		schedule:       schedule,
		payments:       payments,
		outstanding:    outstanding,
		overpaidAmount: overpaidAmount,
		disbursedAt:    disbursedAt,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// ApplyPayment runs the payment through the allocation waterfall, records it,
// and derives the resulting status. Overpayment is never rejected: anything
// beyond the total outstanding is absorbed into principal and the loan flips
// to OVERPAID for later reconciliation.
func (l Loan) ApplyPayment(p Payment, now time.Time) (Loan, AllocationResult, error) {
	if !l.status.IsOpen() {
		return l, AllocationResult{}, valueobject.ErrInvalidStatusTransition
	}

	result, schedule, err := AllocateRepayment(l.schedule, l.outstanding, p.Amount, l.strategy)
	if err != nil {
		return l, AllocationResult{}, err
	}

	next := l
	next.schedule = schedule
	next.payments = append(copyPayments(l.payments), p)
	next.outstanding = result.ResultingOutstanding
	next.overpaidAmount = result.OverpaidAmount
	next.status = result.ResultingStatus
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewRepaymentReceived(
		l.id, l.tenantID,
		p.Amount, l.currency.Code(),
		result.PrincipalApplied, result.InterestApplied, result.FeeApplied, result.PenaltyApplied,
		result.ResultingOutstanding,
		p.Method, p.Reference,
	))

	switch {
	case result.ResultingStatus.Equal(valueobject.LoanStatusOverpaid):
		next.domainEvents = append(next.domainEvents, event.NewLoanOverpaid(
			l.id, l.tenantID, result.OverpaidAmount, l.currency.Code(),
		))
	case result.ResultingStatus.Equal(valueobject.LoanStatusClosed):
		next.domainEvents = append(next.domainEvents, event.NewLoanClosed(l.id, l.tenantID))
	}

	return next, result, nil
}

// SettleEarly pays the loan off ahead of schedule. The payoff amount is the
// current outstanding plus the settlement fee looked up by the caller. The
// fee is charged onto the earliest unpaid installment first, so the single
// allocator pass lands the loan exactly at zero.
func (l Loan) SettleEarly(settlementFee decimal.Decimal, method, reference string, now time.Time) (Loan, AllocationResult, error) {
	if !l.status.IsOpen() {
		return l, AllocationResult{}, valueobject.ErrInvalidStatusTransition
	}
	if settlementFee.LessThan(decimal.Zero) {
		return l, AllocationResult{}, errors.New("settlement fee must not be negative")
	}

	charged := l
	charged.schedule = copySchedule(l.schedule)
	charged.outstanding = l.outstanding
	if settlementFee.GreaterThan(decimal.Zero) {
		idx := earliestUnsettled(charged.schedule)
		charged.schedule[idx].Fee = charged.schedule[idx].Fee.Add(settlementFee)
		charged.outstanding = charged.outstanding.Add(settlementFee)
	}

	payoff := charged.outstanding
	next, result, err := charged.ApplyPayment(Payment{
		Amount:    payoff,
		Date:      now,
		Method:    method,
		Reference: reference,
	}, now)
	if err != nil {
		return l, AllocationResult{}, err
	}

	next.domainEvents = append(next.domainEvents, event.NewLoanSettledEarly(
		l.id, l.tenantID, payoff, settlementFee, l.currency.Code(),
	))

	return next, result, nil
}

// WriteOff cancels the remaining balance unconditionally, bypassing the
// allocator. It is a balance cancellation, not a payment.
func (l Loan) WriteOff(reason string, now time.Time) (Loan, error) {
	if !l.status.IsOpen() {
		return l, valueobject.ErrInvalidStatusTransition
	}

	next := l
	next.outstanding = decimal.Zero
	next.overpaidAmount = decimal.Zero
	next.status = valueobject.LoanStatusWrittenOff
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanWrittenOff(
		l.id, l.tenantID, l.outstanding, l.currency.Code(), reason,
	))
	return next, nil
}

// earliestUnsettled returns the index of the first installment that still has
// an unpaid amount, or the last index when everything is settled.
func earliestUnsettled(schedule []ScheduleInstallment) int {
	for i := range schedule {
		if !schedule[i].IsSettled() {
			return i
		}
	}
	return len(schedule) - 1
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Loan) ID() string                                { return l.id }
func (l Loan) TenantID() string                          { return l.tenantID }
func (l Loan) ClientID() string                          { return l.clientID }
func (l Loan) ApplicationID() string                     { return l.applicationID }
func (l Loan) ProductID() string                         { return l.productID }
func (l Loan) Terms() LoanTerms                          { return l.terms }
func (l Loan) Currency() money.Currency                  { return l.currency }
func (l Loan) Strategy() valueobject.AllocationStrategy  { return l.strategy }
func (l Loan) Status() valueobject.LoanStatus            { return l.status }
func (l Loan) Outstanding() decimal.Decimal              { return l.outstanding }
func (l Loan) OverpaidAmount() decimal.Decimal           { return l.overpaidAmount }
func (l Loan) DisbursedAt() time.Time                    { return l.disbursedAt }
func (l Loan) Version() int                              { return l.version }
func (l Loan) CreatedAt() time.Time                      { return l.createdAt }
func (l Loan) UpdatedAt() time.Time                      { return l.updatedAt }
func (l Loan) DomainEvents() []event.DomainEvent         { return l.domainEvents }

// Schedule returns a defensive copy of the installment schedule.
func (l Loan) Schedule() []ScheduleInstallment {
	return copySchedule(l.schedule)
}

// Payments returns a defensive copy of the payment history.
func (l Loan) Payments() []Payment {
	return copyPayments(l.payments)
}

// ClearEvents returns a copy with an empty event list.
func (l Loan) ClearEvents() Loan {
	next := l
	next.domainEvents = nil
	return next
}

func copyEvents(evts []event.DomainEvent) []event.DomainEvent {
	if evts == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(evts))
	copy(out, evts)
	return out
}
