package tenant

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/prizedraw/internal/repositories/tenant Repository

import (
	"context"
)

// Repository defines the persistence gateway for tenant draw state
type Repository interface {
	// GetState loads everything stored for a tenant. Missing keys load as empty values.
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// SaveState writes the requested fields of a tenant's state as one transaction
	SaveState(ctx context.Context, input *SaveStateInput) error
}
