package document

import "github.com/KirkDiggler/agendabot/internal/models"

// FilterOp is a comparison applied to a document field
type FilterOp string

const (
	OpEqual       FilterOp = "equal"
	OpIsNull      FilterOp = "isNull"
	OpIsNotNull   FilterOp = "isNotNull"
	OpGreaterThan FilterOp = "greaterThan"
	OpLessThan    FilterOp = "lessThan"
	OpContains    FilterOp = "contains"
	OpOr          FilterOp = "or"
	OpAnd         FilterOp = "and"
)

// Filter is a single list predicate
type Filter struct {
	Op    FilterOp
	Field string
	Value any

	// Any holds the operands of an OpOr or OpAnd filter
	Any []Filter
}

func Equal(field string, value any) Filter {
	return Filter{Op: OpEqual, Field: field, Value: value}
}

// IsNull matches documents whose field is null or missing
func IsNull(field string) Filter {
	return Filter{Op: OpIsNull, Field: field}
}

func IsNotNull(field string) Filter {
	return Filter{Op: OpIsNotNull, Field: field}
}

func GreaterThan(field string, value any) Filter {
	return Filter{Op: OpGreaterThan, Field: field, Value: value}
}

func LessThan(field string, value any) Filter {
	return Filter{Op: OpLessThan, Field: field, Value: value}
}

// Contains matches documents whose array field holds value
func Contains(field string, value any) Filter {
	return Filter{Op: OpContains, Field: field, Value: value}
}

// Or matches documents satisfying at least one of filters
func Or(filters ...Filter) Filter {
	return Filter{Op: OpOr, Any: filters}
}

// And groups filters that must all match, for use inside Or
func And(filters ...Filter) Filter {
	return Filter{Op: OpAnd, Any: filters}
}

// Order sorts list results by a field
type Order struct {
	Field      string
	Descending bool
}

func Asc(field string) Order {
	return Order{Field: field}
}

func Desc(field string) Order {
	return Order{Field: field, Descending: true}
}

// ListInput contains parameters for listing a collection
type ListInput struct {
	Collection string
	Filters    []Filter

	// Orders defaults to creation order
	Orders []Order

	// Limit caps the returned documents; zero means no limit
	Limit int
}

// ListOutput contains the result of listing a collection
type ListOutput struct {
	Documents []*models.Document

	// Total is the number of matches before Limit was applied
	Total int
}

// GetInput contains parameters for retrieving a document
type GetInput struct {
	Collection string
	ID         string
}

// CreateInput contains parameters for creating a document
type CreateInput struct {
	Collection string

	// ID is generated when empty
	ID string

	// Fields is any value that encodes to a JSON object, typically an entity
	Fields any
}

// UpdateInput contains parameters for updating a document
type UpdateInput struct {
	Collection string
	ID         string

	// Fields are merged over the stored fields
	Fields map[string]any
}

// DeleteInput contains parameters for deleting a document
type DeleteInput struct {
	Collection string
	ID         string
}
