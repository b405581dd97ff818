package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/asantefin/asante/internal/domain/event"
	"github.com/asantefin/asante/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Client aggregate root (Onboarding)
// ---------------------------------------------------------------------------

// Client is an immutable aggregate. New clients start in PENDING_KYC and
// become eligible for loan and savings products only once activated.
type Client struct {
	id           string
	tenantID     string
	fullName     string
	phoneNumber  string
	nationalID   string
	branchID     string
	status       valueobject.ClientStatus
	version      int
	createdAt    time.Time
	updatedAt    time.Time
	domainEvents []event.DomainEvent
}

// NewClient registers a client in PENDING_KYC status.
func NewClient(tenantID, fullName, phoneNumber, nationalID, branchID string, now time.Time) (Client, error) {
	if tenantID == "" {
		return Client{}, errors.New("tenant ID is required")
	}
	if fullName == "" {
		return Client{}, errors.New("full name is required")
	}
	if phoneNumber == "" {
		return Client{}, errors.New("phone number is required")
	}
	if nationalID == "" {
		return Client{}, errors.New("national ID is required")
	}

	id := uuid.New().String()
	c := Client{
		id:          id,
		tenantID:    tenantID,
		fullName:    fullName,
		phoneNumber: phoneNumber,
		nationalID:  nationalID,
		branchID:    branchID,
		status:      valueobject.ClientStatusPendingKYC,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}

	c.domainEvents = append(c.domainEvents, event.NewClientRegistered(
		id, tenantID, fullName, phoneNumber, branchID,
	))

	return c, nil
}

// ReconstructClient rebuilds a Client aggregate from persistence.
func ReconstructClient(
	id, tenantID, fullName, phoneNumber, nationalID, branchID string,
	status valueobject.ClientStatus,
	version int,
	createdAt, updatedAt time.Time,
) Client {
	return Client{
		id:          id,
		tenantID:    tenantID,
		fullName:    fullName,
		phoneNumber: phoneNumber,
		nationalID:  nationalID,
		branchID:    branchID,
		status:      status,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// Activate transitions PENDING_KYC -> ACTIVE once KYC checks pass.
func (c Client) Activate(officerID string, now time.Time) (Client, error) {
	if !c.status.Equal(valueobject.ClientStatusPendingKYC) {
		return c, valueobject.ErrInvalidStatusTransition
	}
	next := c
	next.status = valueobject.ClientStatusActive
	next.updatedAt = now
	next.domainEvents = copyEvents(c.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewClientActivated(c.id, c.tenantID, officerID))
	return next, nil
}

// Suspend transitions ACTIVE -> SUSPENDED.
func (c Client) Suspend(now time.Time) (Client, error) {
	if !c.status.Equal(valueobject.ClientStatusActive) {
		return c, valueobject.ErrInvalidStatusTransition
	}
	next := c
	next.status = valueobject.ClientStatusSuspended
	next.updatedAt = now
	next.domainEvents = copyEvents(c.domainEvents)
	return next, nil
}

// Reinstate transitions SUSPENDED -> ACTIVE.
func (c Client) Reinstate(now time.Time) (Client, error) {
	if !c.status.Equal(valueobject.ClientStatusSuspended) {
		return c, valueobject.ErrInvalidStatusTransition
	}
	next := c
	next.status = valueobject.ClientStatusActive
	next.updatedAt = now
	next.domainEvents = copyEvents(c.domainEvents)
	return next, nil
}

// Exit transitions ACTIVE or SUSPENDED -> EXITED.
func (c Client) Exit(now time.Time) (Client, error) {
	if !c.status.Equal(valueobject.ClientStatusActive) && !c.status.Equal(valueobject.ClientStatusSuspended) {
		return c, valueobject.ErrInvalidStatusTransition
	}
	next := c
	next.status = valueobject.ClientStatusExited
	next.updatedAt = now
	next.domainEvents = copyEvents(c.domainEvents)
	return next, nil
}

// CanTransact reports whether the client may open products or move money.
func (c Client) CanTransact() bool {
	return c.status.Equal(valueobject.ClientStatusActive)
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (c Client) ID() string                        { return c.id }
func (c Client) TenantID() string                  { return c.tenantID }
func (c Client) FullName() string                  { return c.fullName }
func (c Client) PhoneNumber() string               { return c.phoneNumber }
func (c Client) NationalID() string                { return c.nationalID }
func (c Client) BranchID() string                  { return c.branchID }
func (c Client) Status() valueobject.ClientStatus  { return c.status }
func (c Client) Version() int                      { return c.version }
func (c Client) CreatedAt() time.Time              { return c.createdAt }
func (c Client) UpdatedAt() time.Time              { return c.updatedAt }
func (c Client) DomainEvents() []event.DomainEvent { return c.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (c Client) ClearEvents() Client {
	next := c
	next.domainEvents = nil
	return next
}
