package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/agendabot/internal/common/uuid Generator

// Generator produces unique identifiers for documents and reminder handles
type Generator interface {
	NewID() string
}

// DefaultGenerator implements Generator with random v4 UUIDs
type DefaultGenerator struct{}

func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewID returns a new UUID string
func (d *DefaultGenerator) NewID() string {
	return uuid.New().String()
}
