package document

// StoreError is a document store condition
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

const (
	// ErrNotFound is returned when a document does not exist
	ErrNotFound StoreError = "document not found"

	// ErrAlreadyExists is returned when creating a document with a taken ID
	ErrAlreadyExists StoreError = "document already exists"

	// ErrInvalidFields is returned when document fields do not encode to a JSON object
	ErrInvalidFields StoreError = "document fields must be a JSON object"
)
