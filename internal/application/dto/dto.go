package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// RegisterClientRequest carries the data needed to register a client.
type RegisterClientRequest struct {
	TenantID    string `json:"tenant_id"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	NationalID  string `json:"national_id"`
	BranchID    string `json:"branch_id"`
}

// ActivateClientRequest marks a client's KYC checks as complete.
type ActivateClientRequest struct {
	TenantID  string `json:"tenant_id"`
	ClientID  string `json:"client_id"`
	OfficerID string `json:"officer_id"`
}

// SubmitApplicationRequest carries the data needed to submit a loan application.
type SubmitApplicationRequest struct {
	TenantID        string          `json:"tenant_id"`
	ClientID        string          `json:"client_id"`
	ProductID       string          `json:"product_id"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	Currency        string          `json:"currency"`
	TermLength      int             `json:"term_length"`
	Installments    int             `json:"installments"`
	Frequency       string          `json:"frequency"`
	Method          string          `json:"method"`
	Purpose         string          `json:"purpose"`
}

// ReviewApplicationRequest triggers underwriting for a submitted application.
type ReviewApplicationRequest struct {
	TenantID      string `json:"tenant_id"`
	ApplicationID string `json:"application_id"`
	OfficerID     string `json:"officer_id"`
}

// DisburseLoanRequest converts an approved application into an active loan.
type DisburseLoanRequest struct {
	TenantID           string    `json:"tenant_id"`
	ApplicationID      string    `json:"application_id"`
	FirstRepaymentDate time.Time `json:"first_repayment_date,omitempty"`
}

// PreviewScheduleRequest asks for a schedule without creating a loan.
type PreviewScheduleRequest struct {
	TenantID           string          `json:"tenant_id"`
	Principal          decimal.Decimal `json:"principal"`
	AnnualRatePercent  decimal.Decimal `json:"annual_rate_percent"`
	TermLength         int             `json:"term_length"`
	Installments       int             `json:"installments"`
	Frequency          string          `json:"frequency"`
	Method             string          `json:"method"`
	FirstRepaymentDate time.Time       `json:"first_repayment_date,omitempty"`
	OneOffFee          decimal.Decimal `json:"one_off_fee,omitempty"`
	RecurringFee       decimal.Decimal `json:"recurring_fee,omitempty"`
}

// RecordRepaymentRequest carries the data for a loan repayment.
type RecordRepaymentRequest struct {
	TenantID  string          `json:"tenant_id"`
	LoanID    string          `json:"loan_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Reference string          `json:"reference"`
}

// SettleEarlyRequest pays a loan off ahead of schedule.
type SettleEarlyRequest struct {
	TenantID  string `json:"tenant_id"`
	LoanID    string `json:"loan_id"`
	Method    string `json:"method"`
	Reference string `json:"reference"`
}

// WriteOffLoanRequest cancels a loan's remaining balance. ConfirmationToken
// must repeat the loan ID so a stray call cannot write a balance off.
type WriteOffLoanRequest struct {
	TenantID          string `json:"tenant_id"`
	LoanID            string `json:"loan_id"`
	Reason            string `json:"reason"`
	ConfirmationToken string `json:"confirmation_token"`
}

// GetLoanRequest identifies a loan to retrieve.
type GetLoanRequest struct {
	TenantID string `json:"tenant_id"`
	LoanID   string `json:"loan_id"`
}

// OpenSavingsAccountRequest opens a savings account for a client.
type OpenSavingsAccountRequest struct {
	TenantID string `json:"tenant_id"`
	ClientID string `json:"client_id"`
	Currency string `json:"currency"`
}

// SavingsTransactionRequest credits or debits a savings account.
type SavingsTransactionRequest struct {
	TenantID  string          `json:"tenant_id"`
	AccountID string          `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference"`
}

// AccrueSavingsInterestRequest credits daily interest to a savings account.
type AccrueSavingsInterestRequest struct {
	TenantID          string          `json:"tenant_id"`
	AccountID         string          `json:"account_id"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// ClientResponse is the external representation of a client.
type ClientResponse struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	NationalID  string    `json:"national_id"`
	BranchID    string    `json:"branch_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoanApplicationResponse is the external representation of an application.
type LoanApplicationResponse struct {
	ID              string          `json:"id"`
	TenantID        string          `json:"tenant_id"`
	ClientID        string          `json:"client_id"`
	ProductID       string          `json:"product_id"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	Currency        string          `json:"currency"`
	TermLength      int             `json:"term_length"`
	Installments    int             `json:"installments"`
	Status          string          `json:"status"`
	CreditScore     int             `json:"credit_score,omitempty"`
	DecisionReason  string          `json:"decision_reason,omitempty"`
}

// InstallmentView is one schedule row in API responses. Amounts are formatted
// to two decimals at this boundary only.
type InstallmentView struct {
	Sequence         int       `json:"sequence"`
	DueDate          time.Time `json:"due_date"`
	Principal        string    `json:"principal"`
	Interest         string    `json:"interest"`
	Fee              string    `json:"fee"`
	TotalDue         string    `json:"total_due"`
	OutstandingAfter string    `json:"outstanding_after"`
	Status           string    `json:"status"`
}

// ScheduleResponse is a generated or previewed schedule.
type ScheduleResponse struct {
	Installments  []InstallmentView `json:"installments"`
	TotalPayable  string            `json:"total_payable"`
	TotalInterest string            `json:"total_interest"`
	TotalFees     string            `json:"total_fees"`
}

// LoanResponse is the external representation of a loan.
type LoanResponse struct {
	ID             string            `json:"id"`
	TenantID       string            `json:"tenant_id"`
	ClientID       string            `json:"client_id"`
	ProductID      string            `json:"product_id"`
	Principal      decimal.Decimal   `json:"principal"`
	Currency       string            `json:"currency"`
	Status         string            `json:"status"`
	Outstanding    decimal.Decimal   `json:"outstanding"`
	OverpaidAmount decimal.Decimal   `json:"overpaid_amount"`
	InArrears      bool              `json:"in_arrears"`
	DaysInArrears  int               `json:"days_in_arrears"`
	TimelyPercent  int               `json:"timely_repayment_percent"`
	Schedule       []InstallmentView `json:"schedule"`
}

// RepaymentResponse reports how a payment was allocated.
type RepaymentResponse struct {
	LoanID               string          `json:"loan_id"`
	AmountPaid           decimal.Decimal `json:"amount_paid"`
	PrincipalApplied     decimal.Decimal `json:"principal_applied"`
	InterestApplied      decimal.Decimal `json:"interest_applied"`
	FeeApplied           decimal.Decimal `json:"fee_applied"`
	PenaltyApplied       decimal.Decimal `json:"penalty_applied"`
	Outstanding          decimal.Decimal `json:"outstanding"`
	LoanStatus           string          `json:"loan_status"`
	OverpaidAmount       decimal.Decimal `json:"overpaid_amount"`
	TransferredToSavings decimal.Decimal `json:"transferred_to_savings"`
}

// SavingsAccountResponse is the external representation of a savings account.
type SavingsAccountResponse struct {
	ID       string          `json:"id"`
	TenantID string          `json:"tenant_id"`
	ClientID string          `json:"client_id"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Status   string          `json:"status"`
}
