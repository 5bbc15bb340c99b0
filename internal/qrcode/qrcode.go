// Package qrcode encodes and parses the session check-in payload carried by
// the venue QR codes, and renders it as a PNG.
package qrcode

import (
	"encoding/json"
	"fmt"
	"time"

	goqrcode "github.com/skip2/go-qrcode"
)

const (
	// PayloadType marks a session check-in payload
	PayloadType = "session_checkin"

	// DefaultEventID is used when no event is configured
	DefaultEventID = "event-1"

	// DefaultSize is the rendered PNG edge in pixels
	DefaultSize = 256
)

// QRError is a check-in payload condition
type QRError string

func (e QRError) Error() string {
	return string(e)
}

// ErrInvalidPayload is returned for input that is not a session check-in payload
const ErrInvalidPayload QRError = "invalid check-in QR payload"

// Payload is the JSON content of a check-in QR code
type Payload struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
	EventID   string `json:"eventId,omitempty"`

	// Timestamp is milliseconds since the Unix epoch at generation time
	Timestamp int64 `json:"timestamp,omitempty"`
}

// NewPayload builds a payload for sessionID, defaulting the event ID
func NewPayload(sessionID, eventID string, generatedAt time.Time) *Payload {
	if eventID == "" {
		eventID = DefaultEventID
	}
	return &Payload{
		Type:      PayloadType,
		SessionID: sessionID,
		EventID:   eventID,
		Timestamp: generatedAt.UnixMilli(),
	}
}

// Encode returns the JSON text embedded in the QR code
func Encode(p *Payload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}
	return string(data), nil
}

// Parse decodes scanned text, requiring the check-in type and a session ID
func Parse(text string) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if p.Type != PayloadType {
		return nil, fmt.Errorf("%w: unexpected type %q", ErrInvalidPayload, p.Type)
	}
	if p.SessionID == "" {
		return nil, fmt.Errorf("%w: missing session ID", ErrInvalidPayload)
	}
	return &p, nil
}

// PNG renders the encoded payload; size <= 0 uses DefaultSize
func PNG(p *Payload, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}

	content, err := Encode(p)
	if err != nil {
		return nil, err
	}

	png, err := goqrcode.Encode(content, goqrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}
	return png, nil
}
