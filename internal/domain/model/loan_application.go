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
// LoanApplication aggregate root (Origination)
// ---------------------------------------------------------------------------

// LoanApplication is an immutable aggregate tracking an application through
// the underwriting workflow: SUBMITTED -> UNDER_REVIEW -> APPROVED/REJECTED
// -> DISBURSED.
type LoanApplication struct {
	id              string
	tenantID        string
	clientID        string
	productID       string
	requestedAmount decimal.Decimal
	currency        money.Currency
	termLength      int
	installments    int
	frequency       valueobject.RepaymentFrequency
	method          valueobject.InterestMethod
	purpose         string
	status          valueobject.LoanApplicationStatus
	creditScore     int
	decisionReason  string
	decidedBy       string
	version         int
	createdAt       time.Time
	updatedAt       time.Time
	domainEvents    []event.DomainEvent
}

// NewLoanApplication creates an application in SUBMITTED status.
func NewLoanApplication(
	tenantID, clientID, productID string,
	requestedAmount decimal.Decimal,
	currency money.Currency,
	termLength, installments int,
	frequency valueobject.RepaymentFrequency,
	method valueobject.InterestMethod,
	purpose string,
	now time.Time,
) (LoanApplication, error) {
	if tenantID == "" {
		return LoanApplication{}, errors.New("tenant ID is required")
	}
	if clientID == "" {
		return LoanApplication{}, errors.New("client ID is required")
	}
	if productID == "" {
		return LoanApplication{}, errors.New("product ID is required")
	}
	if requestedAmount.LessThanOrEqual(decimal.Zero) {
		return LoanApplication{}, errors.New("requested amount must be positive")
	}
	if currency.Code() == "" {
		return LoanApplication{}, errors.New("currency is required")
	}
	if termLength <= 0 || installments <= 0 {
		return LoanApplication{}, errors.New("term length and installment count must be positive")
	}
	if frequency.IsZero() || method.IsZero() {
		return LoanApplication{}, errors.New("repayment frequency and interest method are required")
	}

	id := uuid.New().String()
	app := LoanApplication{
		id:              id,
		tenantID:        tenantID,
		clientID:        clientID,
		productID:       productID,
		requestedAmount: requestedAmount,
		currency:        currency,
		termLength:      termLength,
		installments:    installments,
		frequency:       frequency,
		method:          method,
		purpose:         purpose,
		status:          valueobject.LoanApplicationStatusSubmitted,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}

	app.domainEvents = append(app.domainEvents, event.NewLoanApplicationSubmitted(
		id, tenantID, clientID, productID,
		requestedAmount, currency.Code(),
		termLength, installments,
	))

	return app, nil
}

// ReconstructLoanApplication rebuilds an aggregate from persistence.
func ReconstructLoanApplication(
	id, tenantID, clientID, productID string,
	requestedAmount decimal.Decimal,
	currency money.Currency,
	termLength, installments int,
	frequency valueobject.RepaymentFrequency,
	method valueobject.InterestMethod,
	purpose string,
	status valueobject.LoanApplicationStatus,
	creditScore int,
	decisionReason, decidedBy string,
	version int,
	createdAt, updatedAt time.Time,
) LoanApplication {
	return LoanApplication{
		id:              id,
		tenantID:        tenantID,
		clientID:        clientID,
		productID:       productID,
		requestedAmount: requestedAmount,
		currency:        currency,
		termLength:      termLength,
		installments:    installments,
		frequency:       frequency,
		method:          method,
		purpose:         purpose,
		status:          status,
		creditScore:     creditScore,
		decisionReason:  decisionReason,
		decidedBy:       decidedBy,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// StartReview transitions SUBMITTED -> UNDER_REVIEW.
func (a LoanApplication) StartReview(now time.Time) (LoanApplication, error) {
	if !a.status.Equal(valueobject.LoanApplicationStatusSubmitted) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.LoanApplicationStatusUnderReview
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	return next, nil
}

// Approve transitions UNDER_REVIEW -> APPROVED, recording the underwriting
// decision.
func (a LoanApplication) Approve(decidedBy, reason string, creditScore int, now time.Time) (LoanApplication, error) {
	if !a.status.Equal(valueobject.LoanApplicationStatusUnderReview) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.LoanApplicationStatusApproved
	next.creditScore = creditScore
	next.decisionReason = reason
	next.decidedBy = decidedBy
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanApplicationApproved(
		a.id, a.tenantID, a.clientID, decidedBy, reason, creditScore,
	))
	return next, nil
}

// Reject transitions UNDER_REVIEW -> REJECTED.
func (a LoanApplication) Reject(decidedBy, reason string, now time.Time) (LoanApplication, error) {
	if !a.status.Equal(valueobject.LoanApplicationStatusUnderReview) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.LoanApplicationStatusRejected
	next.decisionReason = reason
	next.decidedBy = decidedBy
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanApplicationRejected(
		a.id, a.tenantID, a.clientID, decidedBy, reason,
	))
	return next, nil
}

// MarkDisbursed transitions APPROVED -> DISBURSED once a loan has been
// created from the application.
func (a LoanApplication) MarkDisbursed(now time.Time) (LoanApplication, error) {
	if !a.status.Equal(valueobject.LoanApplicationStatusApproved) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.LoanApplicationStatusDisbursed
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	return next, nil
}

// Terms assembles the LoanTerms a schedule is generated from at disbursement.
func (a LoanApplication) Terms(annualRatePercent decimal.Decimal, firstRepaymentDate time.Time) LoanTerms {
	return LoanTerms{
		Principal:          a.requestedAmount,
		AnnualRatePercent:  annualRatePercent,
		TermLength:         a.termLength,
		Installments:       a.installments,
		Frequency:          a.frequency,
		Method:             a.method,
		FirstRepaymentDate: firstRepaymentDate,
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (a LoanApplication) ID() string                                  { return a.id }
func (a LoanApplication) TenantID() string                            { return a.tenantID }
func (a LoanApplication) ClientID() string                            { return a.clientID }
func (a LoanApplication) ProductID() string                           { return a.productID }
func (a LoanApplication) RequestedAmount() decimal.Decimal            { return a.requestedAmount }
func (a LoanApplication) Currency() money.Currency                    { return a.currency }
func (a LoanApplication) TermLength() int                             { return a.termLength }
func (a LoanApplication) Installments() int                           { return a.installments }
func (a LoanApplication) Frequency() valueobject.RepaymentFrequency   { return a.frequency }
func (a LoanApplication) Method() valueobject.InterestMethod          { return a.method }
func (a LoanApplication) Purpose() string                             { return a.purpose }
func (a LoanApplication) Status() valueobject.LoanApplicationStatus   { return a.status }
func (a LoanApplication) CreditScore() int                            { return a.creditScore }
func (a LoanApplication) DecisionReason() string                      { return a.decisionReason }
func (a LoanApplication) DecidedBy() string                           { return a.decidedBy }
func (a LoanApplication) Version() int                                { return a.version }
func (a LoanApplication) CreatedAt() time.Time                        { return a.createdAt }
func (a LoanApplication) UpdatedAt() time.Time                        { return a.updatedAt }
func (a LoanApplication) DomainEvents() []event.DomainEvent           { return a.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (a LoanApplication) ClearEvents() LoanApplication {
	next := a
	next.domainEvents = nil
	return next
}
