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
// SavingsAccount aggregate root (Savings)
// ---------------------------------------------------------------------------

// ErrInsufficientBalance is returned when a withdrawal exceeds the balance.
var ErrInsufficientBalance = errors.New("insufficient savings balance")

// SavingsAccount is an immutable aggregate holding a client's savings
// balance. Loan overpayments are reconciled by depositing the excess here.
type SavingsAccount struct {
	id           string
	tenantID     string
	clientID     string
	currency        money.Currency
	balance         decimal.Decimal
	status          valueobject.SavingsAccountStatus
	lastAccrualDate time.Time
	version         int
	createdAt       time.Time
	updatedAt       time.Time
	domainEvents    []event.DomainEvent
}

// NewSavingsAccount opens an account with a zero balance.
func NewSavingsAccount(tenantID, clientID string, currency money.Currency, now time.Time) (SavingsAccount, error) {
	if tenantID == "" {
		return SavingsAccount{}, errors.New("tenant ID is required")
	}
	if clientID == "" {
		return SavingsAccount{}, errors.New("client ID is required")
	}
	if currency.Code() == "" {
		return SavingsAccount{}, errors.New("currency is required")
	}

	id := uuid.New().String()
	acc := SavingsAccount{
		id:              id,
		tenantID:        tenantID,
		clientID:        clientID,
		currency:        currency,
		balance:         decimal.Zero,
		status:          valueobject.SavingsAccountStatusActive,
		lastAccrualDate: now,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}

	acc.domainEvents = append(acc.domainEvents, event.NewSavingsAccountOpened(
		id, tenantID, clientID, currency.Code(),
	))

	return acc, nil
}

// ReconstructSavingsAccount rebuilds an aggregate from persistence.
func ReconstructSavingsAccount(
	id, tenantID, clientID string,
	currency money.Currency,
	balance decimal.Decimal,
	status valueobject.SavingsAccountStatus,
	lastAccrualDate time.Time,
	version int,
	createdAt, updatedAt time.Time,
) SavingsAccount {
	return SavingsAccount{
		id:              id,
		tenantID:        tenantID,
		clientID:        clientID,
		currency:        currency,
		balance:         balance,
		status:          status,
		lastAccrualDate: lastAccrualDate,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// Deposit credits the account.
func (s SavingsAccount) Deposit(amount decimal.Decimal, reference string, now time.Time) (SavingsAccount, error) {
	if !s.status.Equal(valueobject.SavingsAccountStatusActive) {
		return s, valueobject.ErrInvalidStatusTransition
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return s, errors.New("deposit amount must be positive")
	}

	next := s
	next.balance = s.balance.Add(amount)
	next.updatedAt = now
	next.domainEvents = copyEvents(s.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewSavingsDeposited(
		s.id, s.tenantID, amount, s.currency.Code(), next.balance, reference,
	))
	return next, nil
}

// Withdraw debits the account. The balance can never go negative.
func (s SavingsAccount) Withdraw(amount decimal.Decimal, reference string, now time.Time) (SavingsAccount, error) {
	if !s.status.Equal(valueobject.SavingsAccountStatusActive) {
		return s, valueobject.ErrInvalidStatusTransition
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return s, errors.New("withdrawal amount must be positive")
	}
	if amount.GreaterThan(s.balance) {
		return s, ErrInsufficientBalance
	}

	next := s
	next.balance = s.balance.Sub(amount)
	next.updatedAt = now
	next.domainEvents = copyEvents(s.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewSavingsWithdrawn(
		s.id, s.tenantID, amount, s.currency.Code(), next.balance, reference,
	))
	return next, nil
}

// AccrueInterest credits simple daily interest for the days elapsed since
// the last accrual. The daily rate is annualRatePercent/100/365; interest is
// rounded to 4 decimal places. Accruing on the same day is a no-op.
func (s SavingsAccount) AccrueInterest(annualRatePercent decimal.Decimal, asOf time.Time) (SavingsAccount, error) {
	if !s.status.Equal(valueobject.SavingsAccountStatusActive) {
		return s, valueobject.ErrInvalidStatusTransition
	}
	if annualRatePercent.LessThan(decimal.Zero) {
		return s, errors.New("annual rate must not be negative")
	}
	if asOf.Before(s.lastAccrualDate) {
		return s, errors.New("accrual date precedes last accrual")
	}

	days := accrualDaysBetween(s.lastAccrualDate, asOf)
	if days == 0 {
		return s, nil
	}

	dailyRate := annualRatePercent.Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(365))
	interest := s.balance.Mul(dailyRate).Mul(decimal.NewFromInt(int64(days))).Round(4)

	next := s
	next.balance = s.balance.Add(interest)
	next.lastAccrualDate = asOf
	next.updatedAt = asOf
	next.domainEvents = copyEvents(s.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewSavingsInterestAccrued(
		s.id, s.tenantID, interest, s.currency.Code(), next.balance, asOf,
	))
	return next, nil
}

// accrualDaysBetween counts whole calendar days from a to b in UTC.
func accrualDaysBetween(a, b time.Time) int {
	aDay := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bDay := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bDay.Sub(aDay).Hours() / 24)
}

// Freeze transitions ACTIVE -> FROZEN.
func (s SavingsAccount) Freeze(now time.Time) (SavingsAccount, error) {
	if !s.status.Equal(valueobject.SavingsAccountStatusActive) {
		return s, valueobject.ErrInvalidStatusTransition
	}
	next := s
	next.status = valueobject.SavingsAccountStatusFrozen
	next.updatedAt = now
	next.domainEvents = copyEvents(s.domainEvents)
	return next, nil
}

// Unfreeze transitions FROZEN -> ACTIVE.
func (s SavingsAccount) Unfreeze(now time.Time) (SavingsAccount, error) {
	if !s.status.Equal(valueobject.SavingsAccountStatusFrozen) {
		return s, valueobject.ErrInvalidStatusTransition
	}
	next := s
	next.status = valueobject.SavingsAccountStatusActive
	next.updatedAt = now
	next.domainEvents = copyEvents(s.domainEvents)
	return next, nil
}

// Close transitions to CLOSED. The balance must be zero.
func (s SavingsAccount) Close(now time.Time) (SavingsAccount, error) {
	if s.status.Equal(valueobject.SavingsAccountStatusClosed) {
		return s, valueobject.ErrInvalidStatusTransition
	}
	if !s.balance.IsZero() {
		return s, errors.New("cannot close an account with a non-zero balance")
	}
	next := s
	next.status = valueobject.SavingsAccountStatusClosed
	next.updatedAt = now
	next.domainEvents = copyEvents(s.domainEvents)
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (s SavingsAccount) ID() string                               { return s.id }
func (s SavingsAccount) TenantID() string                         { return s.tenantID }
func (s SavingsAccount) ClientID() string                         { return s.clientID }
func (s SavingsAccount) Currency() money.Currency                 { return s.currency }
func (s SavingsAccount) Balance() decimal.Decimal                 { return s.balance }
func (s SavingsAccount) Status() valueobject.SavingsAccountStatus { return s.status }
func (s SavingsAccount) LastAccrualDate() time.Time               { return s.lastAccrualDate }
func (s SavingsAccount) Version() int                             { return s.version }
func (s SavingsAccount) CreatedAt() time.Time                     { return s.createdAt }
func (s SavingsAccount) UpdatedAt() time.Time                     { return s.updatedAt }
func (s SavingsAccount) DomainEvents() []event.DomainEvent        { return s.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (s SavingsAccount) ClearEvents() SavingsAccount {
	next := s
	next.domainEvents = nil
	return next
}
