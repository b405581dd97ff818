package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/asantefin/asante/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Client Events
// ---------------------------------------------------------------------------

// ClientRegistered is raised when a new client enters onboarding.
type ClientRegistered struct {
	events.BaseEvent
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	BranchID    string `json:"branch_id"`
}

func NewClientRegistered(clientID, tenantID, fullName, phoneNumber, branchID string) ClientRegistered {
	return ClientRegistered{
		BaseEvent:   events.NewBaseEvent("asante.client.registered", clientID, "Client", tenantID),
		FullName:    fullName,
		PhoneNumber: phoneNumber,
		BranchID:    branchID,
	}
}

// ClientActivated is raised when KYC checks complete and the client becomes
// eligible for products.
type ClientActivated struct {
	events.BaseEvent
	OfficerID string `json:"officer_id"`
}

func NewClientActivated(clientID, tenantID, officerID string) ClientActivated {
	return ClientActivated{
		BaseEvent: events.NewBaseEvent("asante.client.activated", clientID, "Client", tenantID),
		OfficerID: officerID,
	}
}

// ---------------------------------------------------------------------------
// Loan Application Events
// ---------------------------------------------------------------------------

// LoanApplicationSubmitted is raised when a new application enters the system.
type LoanApplicationSubmitted struct {
	events.BaseEvent
	ClientID        string          `json:"client_id"`
	ProductID       string          `json:"product_id"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	Currency        string          `json:"currency"`
	TermLength      int             `json:"term_length"`
	Installments    int             `json:"installments"`
}

func NewLoanApplicationSubmitted(
	applicationID, tenantID, clientID, productID string,
	amount decimal.Decimal, currency string,
	termLength, installments int,
) LoanApplicationSubmitted {
	return LoanApplicationSubmitted{
		BaseEvent:       events.NewBaseEvent("asante.loan_application.submitted", applicationID, "LoanApplication", tenantID),
		ClientID:        clientID,
		ProductID:       productID,
		RequestedAmount: amount,
		Currency:        currency,
		TermLength:      termLength,
		Installments:    installments,
	}
}

// LoanApplicationApproved is raised when underwriting approves an application.
type LoanApplicationApproved struct {
	events.BaseEvent
	ClientID    string `json:"client_id"`
	ApprovedBy  string `json:"approved_by"`
	Reason      string `json:"reason"`
	CreditScore int    `json:"credit_score"`
}

func NewLoanApplicationApproved(applicationID, tenantID, clientID, approvedBy, reason string, creditScore int) LoanApplicationApproved {
	return LoanApplicationApproved{
		BaseEvent:   events.NewBaseEvent("asante.loan_application.approved", applicationID, "LoanApplication", tenantID),
		ClientID:    clientID,
		ApprovedBy:  approvedBy,
		Reason:      reason,
		CreditScore: creditScore,
	}
}

// LoanApplicationRejected is raised when underwriting rejects an application.
type LoanApplicationRejected struct {
	events.BaseEvent
	ClientID   string `json:"client_id"`
	RejectedBy string `json:"rejected_by"`
	Reason     string `json:"reason"`
}

func NewLoanApplicationRejected(applicationID, tenantID, clientID, rejectedBy, reason string) LoanApplicationRejected {
	return LoanApplicationRejected{
		BaseEvent:  events.NewBaseEvent("asante.loan_application.rejected", applicationID, "LoanApplication", tenantID),
		ClientID:   clientID,
		RejectedBy: rejectedBy,
		Reason:     reason,
	}
}

// ---------------------------------------------------------------------------
// Loan Events
// ---------------------------------------------------------------------------

// LoanDisbursed is raised when an approved application is converted into an
// active loan with a generated schedule.
type LoanDisbursed struct {
	events.BaseEvent
	ApplicationID string          `json:"application_id"`
	ClientID      string          `json:"client_id"`
	Principal     decimal.Decimal `json:"principal"`
	Currency      string          `json:"currency"`
	Installments  int             `json:"installments"`
	FirstDueDate  time.Time       `json:"first_due_date"`
}

func NewLoanDisbursed(
	loanID, tenantID, applicationID, clientID string,
	principal decimal.Decimal, currency string,
	installments int, firstDueDate time.Time,
) LoanDisbursed {
	return LoanDisbursed{
		BaseEvent:     events.NewBaseEvent("asante.loan.disbursed", loanID, "Loan", tenantID),
		ApplicationID: applicationID,
		ClientID:      clientID,
		Principal:     principal,
		Currency:      currency,
		Installments:  installments,
		FirstDueDate:  firstDueDate,
	}
}

// RepaymentReceived is raised for every payment applied to a loan, carrying
// the component breakdown the allocator produced.
type RepaymentReceived struct {
	events.BaseEvent
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	PrincipalApplied decimal.Decimal `json:"principal_applied"`
	InterestApplied  decimal.Decimal `json:"interest_applied"`
	FeeApplied       decimal.Decimal `json:"fee_applied"`
	PenaltyApplied   decimal.Decimal `json:"penalty_applied"`
	NewOutstanding   decimal.Decimal `json:"new_outstanding"`
	Method           string          `json:"method"`
	Reference        string          `json:"reference"`
}

func NewRepaymentReceived(
	loanID, tenantID string,
	amount decimal.Decimal, currency string,
	principalApplied, interestApplied, feeApplied, penaltyApplied, newOutstanding decimal.Decimal,
	method, reference string,
) RepaymentReceived {
	return RepaymentReceived{
		BaseEvent:        events.NewBaseEvent("asante.loan.repayment_received", loanID, "Loan", tenantID),
		Amount:           amount,
		Currency:         currency,
		PrincipalApplied: principalApplied,
		InterestApplied:  interestApplied,
		FeeApplied:       feeApplied,
		PenaltyApplied:   penaltyApplied,
		NewOutstanding:   newOutstanding,
		Method:           method,
		Reference:        reference,
	}
}

// LoanClosed is raised when the outstanding balance reaches zero.
type LoanClosed struct {
	events.BaseEvent
}

func NewLoanClosed(loanID, tenantID string) LoanClosed {
	return LoanClosed{
		BaseEvent: events.NewBaseEvent("asante.loan.closed", loanID, "Loan", tenantID),
	}
}

// LoanOverpaid is raised when a payment pushes the outstanding balance below
// zero. The overpaid amount is reconcilable downstream, typically by transfer
// to the client's savings account.
type LoanOverpaid struct {
	events.BaseEvent
	OverpaidAmount decimal.Decimal `json:"overpaid_amount"`
	Currency       string          `json:"currency"`
}

func NewLoanOverpaid(loanID, tenantID string, overpaidAmount decimal.Decimal, currency string) LoanOverpaid {
	return LoanOverpaid{
		BaseEvent:      events.NewBaseEvent("asante.loan.overpaid", loanID, "Loan", tenantID),
		OverpaidAmount: overpaidAmount,
		Currency:       currency,
	}
}

// LoanSettledEarly is raised when a loan is paid off ahead of schedule.
type LoanSettledEarly struct {
	events.BaseEvent
	PayoffAmount  decimal.Decimal `json:"payoff_amount"`
	SettlementFee decimal.Decimal `json:"settlement_fee"`
	Currency      string          `json:"currency"`
}

func NewLoanSettledEarly(loanID, tenantID string, payoffAmount, settlementFee decimal.Decimal, currency string) LoanSettledEarly {
	return LoanSettledEarly{
		BaseEvent:     events.NewBaseEvent("asante.loan.settled_early", loanID, "Loan", tenantID),
		PayoffAmount:  payoffAmount,
		SettlementFee: settlementFee,
		Currency:      currency,
	}
}

// LoanWrittenOff is raised when a loan's balance is cancelled.
type LoanWrittenOff struct {
	events.BaseEvent
	CancelledBalance decimal.Decimal `json:"cancelled_balance"`
	Currency         string          `json:"currency"`
	Reason           string          `json:"reason"`
}

func NewLoanWrittenOff(loanID, tenantID string, cancelledBalance decimal.Decimal, currency, reason string) LoanWrittenOff {
	return LoanWrittenOff{
		BaseEvent:        events.NewBaseEvent("asante.loan.written_off", loanID, "Loan", tenantID),
		CancelledBalance: cancelledBalance,
		Currency:         currency,
		Reason:           reason,
	}
}

// ---------------------------------------------------------------------------
// Savings Events
// ---------------------------------------------------------------------------

// SavingsAccountOpened is raised when a savings account is created.
type SavingsAccountOpened struct {
	events.BaseEvent
	ClientID string `json:"client_id"`
	Currency string `json:"currency"`
}

func NewSavingsAccountOpened(accountID, tenantID, clientID, currency string) SavingsAccountOpened {
	return SavingsAccountOpened{
		BaseEvent: events.NewBaseEvent("asante.savings.opened", accountID, "SavingsAccount", tenantID),
		ClientID:  clientID,
		Currency:  currency,
	}
}

// SavingsDeposited is raised for every credit to a savings account.
type SavingsDeposited struct {
	events.BaseEvent
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	NewBalance decimal.Decimal `json:"new_balance"`
	Reference  string          `json:"reference"`
}

func NewSavingsDeposited(accountID, tenantID string, amount decimal.Decimal, currency string, newBalance decimal.Decimal, reference string) SavingsDeposited {
	return SavingsDeposited{
		BaseEvent:  events.NewBaseEvent("asante.savings.deposited", accountID, "SavingsAccount", tenantID),
		Amount:     amount,
		Currency:   currency,
		NewBalance: newBalance,
		Reference:  reference,
	}
}

// SavingsWithdrawn is raised for every debit from a savings account.
type SavingsWithdrawn struct {
	events.BaseEvent
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	NewBalance decimal.Decimal `json:"new_balance"`
	Reference  string          `json:"reference"`
}

func NewSavingsWithdrawn(accountID, tenantID string, amount decimal.Decimal, currency string, newBalance decimal.Decimal, reference string) SavingsWithdrawn {
	return SavingsWithdrawn{
		BaseEvent:  events.NewBaseEvent("asante.savings.withdrawn", accountID, "SavingsAccount", tenantID),
		Amount:     amount,
		Currency:   currency,
		NewBalance: newBalance,
		Reference:  reference,
	}
}

// SavingsInterestAccrued is raised when daily interest is credited.
type SavingsInterestAccrued struct {
	events.BaseEvent
	Interest   decimal.Decimal `json:"interest"`
	Currency   string          `json:"currency"`
	NewBalance decimal.Decimal `json:"new_balance"`
	AccruedAt  time.Time       `json:"accrued_at"`
}

func NewSavingsInterestAccrued(accountID, tenantID string, interest decimal.Decimal, currency string, newBalance decimal.Decimal, accruedAt time.Time) SavingsInterestAccrued {
	return SavingsInterestAccrued{
		BaseEvent:  events.NewBaseEvent("asante.savings.interest_accrued", accountID, "SavingsAccount", tenantID),
		Interest:   interest,
		Currency:   currency,
		NewBalance: newBalance,
		AccruedAt:  accruedAt,
	}
}
