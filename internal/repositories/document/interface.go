package document

import (
	"context"

	"github.com/KirkDiggler/agendabot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/agendabot/internal/repositories/document Repository

// Repository defines the interface for the hosted document store
type Repository interface {
	// List returns the documents of a collection matching every filter
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Get retrieves a single document
	Get(ctx context.Context, input *GetInput) (*models.Document, error)

	// Create stores a new document
	Create(ctx context.Context, input *CreateInput) (*models.Document, error)

	// Update merges fields into an existing document
	Update(ctx context.Context, input *UpdateInput) (*models.Document, error)

	// Delete removes a document
	Delete(ctx context.Context, input *DeleteInput) error
}
