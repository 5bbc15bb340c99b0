package kv

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/agendabot/internal/repositories/kv Repository

// Repository is device-local key-value persistence
type Repository interface {
	// Get returns ErrNotFound when key is absent
	Get(ctx context.Context, key string) (string, error)

	Set(ctx context.Context, key, value string) error
}
