package models

import (
	"time"
)

// CheckInMethod records how an attendee checked in
type CheckInMethod string

const (
	CheckInMethodQR       CheckInMethod = "qr"
	CheckInMethodNFC      CheckInMethod = "nfc"
	CheckInMethodGeofence CheckInMethod = "geofence"
	CheckInMethodManual   CheckInMethod = "manual"
)

// Location is a latitude/longitude pair
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CheckIn represents an attendee's presence at a session
type CheckIn struct {
	Meta

	// UserID is the attendee
	UserID string `json:"userId"`

	// SessionID is the attended session
	SessionID string `json:"sessionId"`

	// CheckInTime is when the attendee arrived
	CheckInTime time.Time `json:"checkInTime"`

	// CheckOutTime is when the attendee left; nil while the check-in is open
	CheckOutTime *time.Time `json:"checkOutTime"`

	// Method is how the attendee checked in
	Method CheckInMethod `json:"method"`

	// Location is the optional device location at check-in
	Location *Location `json:"location,omitempty"`
}

// IsOpen reports whether the attendee has not checked out yet
func (c *CheckIn) IsOpen() bool {
	return c.CheckOutTime == nil
}
