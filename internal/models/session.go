package models

import (
	"time"
)

// SessionType classifies a conference session
type SessionType string

const (
	SessionTypeKeynote    SessionType = "keynote"
	SessionTypePanel      SessionType = "panel"
	SessionTypeWorkshop   SessionType = "workshop"
	SessionTypeNetworking SessionType = "networking"
	SessionTypeBreakout   SessionType = "breakout"
	SessionTypeExhibition SessionType = "exhibition"
)

// SessionStatus represents the lifecycle state of a session
type SessionStatus string

const (
	// SessionStatusScheduled indicates the session has not started
	SessionStatusScheduled SessionStatus = "scheduled"

	// SessionStatusLive indicates the session is in progress
	SessionStatusLive SessionStatus = "live"

	// SessionStatusCompleted indicates the session has ended
	SessionStatusCompleted SessionStatus = "completed"

	// SessionStatusCancelled indicates the session will not take place
	SessionStatusCancelled SessionStatus = "cancelled"
)

// Session represents a scheduled talk, workshop or other agenda item
type Session struct {
	Meta

	// EventID is the conference this session belongs to
	EventID string `json:"eventId"`

	// Title is the display title of the session
	Title string `json:"title"`

	// Description is the optional long-form abstract
	Description string `json:"description,omitempty"`

	// Type classifies the session
	Type SessionType `json:"type"`

	// Track is the optional agenda track
	Track string `json:"track,omitempty"`

	// StartTime is when the session begins
	StartTime time.Time `json:"startTime"`

	// EndTime is when the session ends
	EndTime time.Time `json:"endTime"`

	// Room is where the session takes place
	Room string `json:"room"`

	// Floor is the venue floor of the room
	Floor string `json:"floor,omitempty"`

	// SpeakerIDs lists the speakers presenting
	SpeakerIDs []string `json:"speakerIds,omitempty"`

	// Capacity is the room capacity, zero when unknown
	Capacity int `json:"capacity,omitempty"`

	// CurrentAttendees is the live attendee count
	CurrentAttendees int `json:"currentAttendees"`

	// Tags are free-form topic labels
	Tags []string `json:"tags,omitempty"`

	// IsFeatured marks highlighted sessions
	IsFeatured bool `json:"isFeatured"`

	// Status is the lifecycle state of the session
	Status SessionStatus `json:"status"`
}
