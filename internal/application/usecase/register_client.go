package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/asantefin/asante/internal/application/dto"
	"github.com/asantefin/asante/internal/domain/model"
	"github.com/asantefin/asante/internal/domain/port"
)

// RegisterClientUseCase onboards a new client in PENDING_KYC status.
type RegisterClientUseCase struct {
	clientRepo port.ClientRepository
	publisher  port.EventPublisher
}

// NewRegisterClientUseCase wires dependencies.
func NewRegisterClientUseCase(
	clientRepo port.ClientRepository,
	publisher port.EventPublisher,
) *RegisterClientUseCase {
	return &RegisterClientUseCase{
		clientRepo: clientRepo,
		publisher:  publisher,
	}
}

// Execute registers the client.
func (uc *RegisterClientUseCase) Execute(
	ctx context.Context,
	req dto.RegisterClientRequest,
) (dto.ClientResponse, error) {
	now := time.Now().UTC()

	// 1. Reject duplicate national IDs within the tenant.
	if existing, err := uc.clientRepo.FindByNationalID(ctx, req.TenantID, req.NationalID); err == nil && existing.ID() != "" {
		return dto.ClientResponse{}, fmt.Errorf("client with national ID %s already registered", req.NationalID)
	}

	// 2. Create the aggregate.
	client, err := model.NewClient(req.TenantID, req.FullName, req.PhoneNumber, req.NationalID, req.BranchID, now)
	if err != nil {
		return dto.ClientResponse{}, fmt.Errorf("register client: %w", err)
	}

	// 3. Persist.
	if err := uc.clientRepo.Save(ctx, client); err != nil {
		return dto.ClientResponse{}, fmt.Errorf("save client: %w", err)
	}

	// 4. Publish events.
	if err := uc.publisher.Publish(ctx, client.DomainEvents()...); err != nil {
		return dto.ClientResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return clientResponse(client), nil
}

func clientResponse(c model.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:          c.ID(),
		TenantID:    c.TenantID(),
		FullName:    c.FullName(),
		PhoneNumber: c.PhoneNumber(),
		NationalID:  c.NationalID(),
		BranchID:    c.BranchID(),
		Status:      c.Status().String(),
		CreatedAt:   c.CreatedAt(),
	}
}
