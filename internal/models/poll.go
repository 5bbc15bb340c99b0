package models

import (
	"time"
)

// PollStatus represents whether a poll accepts votes
type PollStatus string

const (
	// PollStatusDraft indicates the poll is not yet open
	PollStatusDraft PollStatus = "draft"

	// PollStatusActive indicates the poll is accepting votes
	PollStatusActive PollStatus = "active"

	// PollStatusClosed indicates voting has ended
	PollStatusClosed PollStatus = "closed"
)

// PollOption is one selectable answer of a poll
type PollOption struct {
	// ID identifies the option within its poll
	ID string `json:"id"`

	// Text is the option label
	Text string `json:"text"`

	// Votes is the derived tally for the option
	Votes int `json:"votes"`
}

// Poll is a live question asked during a session
type Poll struct {
	Meta

	// SessionID is the session the poll runs in
	SessionID string `json:"sessionId"`

	// Question is the prompt shown to attendees
	Question string `json:"question"`

	// Options are the fixed answer choices
	Options []PollOption `json:"options"`

	// Status controls whether votes are accepted
	Status PollStatus `json:"status"`

	// AllowMultiple permits selecting more than one option
	AllowMultiple bool `json:"allowMultiple"`

	// ShowResults exposes tallies to voters
	ShowResults bool `json:"showResults"`

	// TotalVotes is the derived number of vote records
	TotalVotes int `json:"totalVotes"`

	// CreatedBy is the user who created the poll
	CreatedBy string `json:"createdBy"`

	// EndTime is an optional scheduled close time
	EndTime *time.Time `json:"endTime,omitempty"`
}

// PollVote is one user's submission on a poll
type PollVote struct {
	Meta

	// PollID is the poll voted on
	PollID string `json:"pollId"`

	// UserID is the voter
	UserID string `json:"userId"`

	// OptionIDs are the selected options
	OptionIDs []string `json:"optionIds"`
}
