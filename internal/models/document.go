package models

import (
	"encoding/json"
	"time"
)

// Document is a stored record in a named collection
type Document struct {
	// ID is the unique identifier for the document within its collection
	ID string `json:"id"`

	// Collection is the name of the collection the document belongs to
	Collection string `json:"collection"`

	// CreatedAt is when the document was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the document was last written
	UpdatedAt time.Time `json:"updatedAt"`

	// Data holds the document fields as a JSON object
	Data json.RawMessage `json:"data"`
}

// Meta carries the store-assigned identity of a decoded document.
// Entities embed it so the store metadata survives decoding.
type Meta struct {
	ID        string    `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// SetMeta copies store metadata onto the entity
func (m *Meta) SetMeta(id string, createdAt, updatedAt time.Time) {
	m.ID = id
	m.CreatedAt = createdAt
	m.UpdatedAt = updatedAt
}

// ChangeOperation tags a change-feed event
type ChangeOperation string

const (
	// ChangeOperationCreate indicates a document was created
	ChangeOperationCreate ChangeOperation = "create"

	// ChangeOperationUpdate indicates a document was updated
	ChangeOperationUpdate ChangeOperation = "update"

	// ChangeOperationDelete indicates a document was deleted
	ChangeOperationDelete ChangeOperation = "delete"
)

// ChangeEvent is a single entry on a collection change-feed
type ChangeEvent struct {
	// Operation is the kind of mutation that happened
	Operation ChangeOperation `json:"operation"`

	// Collection is the collection that was mutated
	Collection string `json:"collection"`

	// DocumentID is the ID of the affected document
	DocumentID string `json:"documentId"`

	// Document is the affected document; for deletes it is the last known state
	Document *Document `json:"document,omitempty"`

	// Timestamp is when the mutation was committed
	Timestamp time.Time `json:"timestamp"`
}
