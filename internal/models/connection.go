package models

// ConnectionStatus represents the state of a networking request
type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusDeclined ConnectionStatus = "declined"
)

// Connection is a networking link between two attendees
type Connection struct {
	Meta

	// RequesterID is the user who sent the request
	RequesterID string `json:"requesterId"`

	// RecipientID is the user who received the request
	RecipientID string `json:"recipientId"`

	// Status is the current state of the request
	Status ConnectionStatus `json:"status"`

	// Message is an optional note attached to the request
	Message string `json:"message,omitempty"`
}

// OtherParty returns the user on the other side of the connection
func (c *Connection) OtherParty(userID string) string {
	if c.RequesterID == userID {
		return c.RecipientID
	}
	return c.RequesterID
}
