package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// LoanApplicationStatus – immutable value object
// ---------------------------------------------------------------------------

// LoanApplicationStatus represents the lifecycle stage of a loan application.
type LoanApplicationStatus struct {
	value string
}

const (
	loanAppStatusSubmitted   = "SUBMITTED"
	loanAppStatusUnderReview = "UNDER_REVIEW"
	loanAppStatusApproved    = "APPROVED"
	loanAppStatusRejected    = "REJECTED"
	loanAppStatusDisbursed   = "DISBURSED"
)

var (
	LoanApplicationStatusSubmitted   = LoanApplicationStatus{value: loanAppStatusSubmitted}
	LoanApplicationStatusUnderReview = LoanApplicationStatus{value: loanAppStatusUnderReview}
	LoanApplicationStatusApproved    = LoanApplicationStatus{value: loanAppStatusApproved}
	LoanApplicationStatusRejected    = LoanApplicationStatus{value: loanAppStatusRejected}
	LoanApplicationStatusDisbursed   = LoanApplicationStatus{value: loanAppStatusDisbursed}
)

var validLoanApplicationStatuses = map[string]LoanApplicationStatus{
	loanAppStatusSubmitted:   LoanApplicationStatusSubmitted,
	loanAppStatusUnderReview: LoanApplicationStatusUnderReview,
	loanAppStatusApproved:    LoanApplicationStatusApproved,
	loanAppStatusRejected:    LoanApplicationStatusRejected,
	loanAppStatusDisbursed:   LoanApplicationStatusDisbursed,
}

// NewLoanApplicationStatus creates a LoanApplicationStatus from a raw string.
func NewLoanApplicationStatus(s string) (LoanApplicationStatus, error) {
	v, ok := validLoanApplicationStatuses[s]
	if !ok {
		return LoanApplicationStatus{}, fmt.Errorf("invalid loan application status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s LoanApplicationStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s LoanApplicationStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s LoanApplicationStatus) Equal(other LoanApplicationStatus) bool {
	return s.value == other.value
}

// ---------------------------------------------------------------------------
// LoanStatus – immutable value object
// ---------------------------------------------------------------------------

// LoanStatus represents the lifecycle stage of an active loan. Arrears is not
// a status: it is derived on demand from the schedule (see service.ArrearsCheck).
type LoanStatus struct {
	value string
}

const (
	loanStatusActive     = "ACTIVE"
	loanStatusOverpaid   = "OVERPAID"
	loanStatusClosed     = "CLOSED"
	loanStatusWrittenOff = "WRITTEN_OFF"
)

var (
	LoanStatusActive     = LoanStatus{value: loanStatusActive}
	LoanStatusOverpaid   = LoanStatus{value: loanStatusOverpaid}
	LoanStatusClosed     = LoanStatus{value: loanStatusClosed}
	LoanStatusWrittenOff = LoanStatus{value: loanStatusWrittenOff}
)

var validLoanStatuses = map[string]LoanStatus{
	loanStatusActive:     LoanStatusActive,
	loanStatusOverpaid:   LoanStatusOverpaid,
	loanStatusClosed:     LoanStatusClosed,
	loanStatusWrittenOff: LoanStatusWrittenOff,
}

// NewLoanStatus creates a LoanStatus from a raw string.
func NewLoanStatus(s string) (LoanStatus, error) {
	v, ok := validLoanStatuses[s]
	if !ok {
		return LoanStatus{}, fmt.Errorf("invalid loan status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s LoanStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s LoanStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s LoanStatus) Equal(other LoanStatus) bool { return s.value == other.value }

// IsOpen reports whether the loan can still receive payments.
func (s LoanStatus) IsOpen() bool {
	return s.value == loanStatusActive || s.value == loanStatusOverpaid
}

// ---------------------------------------------------------------------------
// InstallmentStatus – immutable value object
// ---------------------------------------------------------------------------

// InstallmentStatus tracks how much of a schedule installment has been paid.
type InstallmentStatus struct {
	value string
}

const (
	installmentStatusUnpaid        = "UNPAID"
	installmentStatusPartiallyPaid = "PARTIALLY_PAID"
	installmentStatusPaid          = "PAID"
)

var (
	InstallmentStatusUnpaid        = InstallmentStatus{value: installmentStatusUnpaid}
	InstallmentStatusPartiallyPaid = InstallmentStatus{value: installmentStatusPartiallyPaid}
	InstallmentStatusPaid          = InstallmentStatus{value: installmentStatusPaid}
)

var validInstallmentStatuses = map[string]InstallmentStatus{
	installmentStatusUnpaid:        InstallmentStatusUnpaid,
	installmentStatusPartiallyPaid: InstallmentStatusPartiallyPaid,
	installmentStatusPaid:          InstallmentStatusPaid,
}

// NewInstallmentStatus creates an InstallmentStatus from a raw string.
func NewInstallmentStatus(s string) (InstallmentStatus, error) {
	v, ok := validInstallmentStatuses[s]
	if !ok {
		return InstallmentStatus{}, fmt.Errorf("invalid installment status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s InstallmentStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s InstallmentStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s InstallmentStatus) Equal(other InstallmentStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	// ErrInvalidStatusTransition is returned when an aggregate is asked to move
	// to a state its current status does not allow.
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrInvalidTerms marks malformed loan terms detected at schedule
	// generation time. Callers must fix the input and retry.
	ErrInvalidTerms = errors.New("invalid loan terms")

	// ErrUnknownAllocationStrategy marks an unrecognised strategy code. The
	// allocator falls back to StrategyDefault rather than failing hard.
	ErrUnknownAllocationStrategy = errors.New("unknown allocation strategy")
)
