package document

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/KirkDiggler/agendabot/internal/models"
)

type metaSetter interface {
	SetMeta(id string, createdAt, updatedAt time.Time)
}

// Decode unmarshals a document into an entity and copies the store metadata
// onto it when the entity embeds models.Meta
func Decode[T any](doc *models.Document) (*T, error) {
	if doc == nil {
		return nil, ErrNotFound
	}

	var entity T
	if err := json.Unmarshal(doc.Data, &entity); err != nil {
		return nil, fmt.Errorf("failed to decode %s %s: %w", doc.Collection, doc.ID, err)
	}

	if setter, ok := any(&entity).(metaSetter); ok {
		setter.SetMeta(doc.ID, doc.CreatedAt, doc.UpdatedAt)
	}

	return &entity, nil
}

// DecodeAll decodes every document, failing on the first bad one
func DecodeAll[T any](docs []*models.Document) ([]*T, error) {
	entities := make([]*T, 0, len(docs))
	for _, doc := range docs {
		entity, err := Decode[T](doc)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
