package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// ClientStatus – immutable value object
// ---------------------------------------------------------------------------

// ClientStatus represents the onboarding/lifecycle stage of a client.
type ClientStatus struct {
	value string
}

const (
	clientStatusPendingKYC = "PENDING_KYC"
	clientStatusActive     = "ACTIVE"
	clientStatusSuspended  = "SUSPENDED"
	clientStatusExited     = "EXITED"
)

var (
	ClientStatusPendingKYC = ClientStatus{value: clientStatusPendingKYC}
	ClientStatusActive     = ClientStatus{value: clientStatusActive}
	ClientStatusSuspended  = ClientStatus{value: clientStatusSuspended}
	ClientStatusExited     = ClientStatus{value: clientStatusExited}
)

var validClientStatuses = map[string]ClientStatus{
	clientStatusPendingKYC: ClientStatusPendingKYC,
	clientStatusActive:     ClientStatusActive,
	clientStatusSuspended:  ClientStatusSuspended,
	clientStatusExited:     ClientStatusExited,
}

// NewClientStatus creates a ClientStatus from a raw string.
func NewClientStatus(s string) (ClientStatus, error) {
	v, ok := validClientStatuses[s]
	if !ok {
		return ClientStatus{}, fmt.Errorf("invalid client status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s ClientStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s ClientStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s ClientStatus) Equal(other ClientStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// SavingsAccountStatus – immutable value object
// ---------------------------------------------------------------------------

// SavingsAccountStatus represents the lifecycle stage of a savings account.
type SavingsAccountStatus struct {
	value string
}

const (
	savingsStatusActive = "ACTIVE"
	savingsStatusFrozen = "FROZEN"
	savingsStatusClosed = "CLOSED"
)

var (
	SavingsAccountStatusActive = SavingsAccountStatus{value: savingsStatusActive}
	SavingsAccountStatusFrozen = SavingsAccountStatus{value: savingsStatusFrozen}
	SavingsAccountStatusClosed = SavingsAccountStatus{value: savingsStatusClosed}
)

var validSavingsAccountStatuses = map[string]SavingsAccountStatus{
	savingsStatusActive: SavingsAccountStatusActive,
	savingsStatusFrozen: SavingsAccountStatusFrozen,
	savingsStatusClosed: SavingsAccountStatusClosed,
}

// NewSavingsAccountStatus creates a SavingsAccountStatus from a raw string.
func NewSavingsAccountStatus(s string) (SavingsAccountStatus, error) {
	v, ok := validSavingsAccountStatuses[s]
	if !ok {
		return SavingsAccountStatus{}, fmt.Errorf("invalid savings account status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s SavingsAccountStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s SavingsAccountStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s SavingsAccountStatus) Equal(other SavingsAccountStatus) bool { return s.value == other.value }
