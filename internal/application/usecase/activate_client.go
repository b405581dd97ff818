package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/asantefin/asante/internal/application/dto"
	"github.com/asantefin/asante/internal/domain/port"
)

// ActivateClientUseCase marks a client's KYC checks as complete.
type ActivateClientUseCase struct {
	clientRepo port.ClientRepository
	publisher  port.EventPublisher
}

// NewActivateClientUseCase wires dependencies.
func NewActivateClientUseCase(
	clientRepo port.ClientRepository,
	publisher port.EventPublisher,
) *ActivateClientUseCase {
	return &ActivateClientUseCase{
		clientRepo: clientRepo,
		publisher:  publisher,
	}
}

// Execute activates the client.
func (uc *ActivateClientUseCase) Execute(
	ctx context.Context,
	req dto.ActivateClientRequest,
) (dto.ClientResponse, error) {
	now := time.Now().UTC()

	// 1. Retrieve the client.
	client, err := uc.clientRepo.FindByID(ctx, req.TenantID, req.ClientID)
	if err != nil {
		return dto.ClientResponse{}, fmt.Errorf("find client: %w", err)
	}

	// 2. Transition PENDING_KYC -> ACTIVE.
	client, err = client.Activate(req.OfficerID, now)
	if err != nil {
		return dto.ClientResponse{}, fmt.Errorf("activate client: %w", err)
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
