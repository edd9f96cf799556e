package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/prizedraw/internal/common/uuid Generator

// Generator hands out identifiers for win records and prizes
type Generator interface {
	NewID() string
}

// DefaultGenerator implements Generator with random (v4) UUIDs
type DefaultGenerator struct{}

func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewID returns a new UUID string
func (d *DefaultGenerator) NewID() string {
	return uuid.NewString()
}
