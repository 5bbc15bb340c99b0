package models

import (
	"time"
)

// QuestionStatus represents the moderation state of a question
type QuestionStatus string

const (
	QuestionStatusPending  QuestionStatus = "pending"
	QuestionStatusApproved QuestionStatus = "approved"
	QuestionStatusAnswered QuestionStatus = "answered"
	QuestionStatusHidden   QuestionStatus = "hidden"
)

// Question is an audience question submitted to a session Q&A
type Question struct {
	Meta

	// SessionID is the session the question is addressed to
	SessionID string `json:"sessionId"`

	// UserID is the author
	UserID string `json:"userId"`

	// Content is the question text
	Content string `json:"content"`

	// Upvotes mirrors len(UpvotedBy)
	Upvotes int `json:"upvotes"`

	// UpvotedBy lists the users who upvoted
	UpvotedBy []string `json:"upvotedBy"`

	// IsAnswered indicates an answer was recorded
	IsAnswered bool `json:"isAnswered"`

	// Answer is the recorded answer text
	Answer string `json:"answer,omitempty"`

	// AnsweredBy is the speaker or moderator who answered
	AnsweredBy string `json:"answeredBy,omitempty"`

	// AnsweredAt is when the answer was recorded
	AnsweredAt *time.Time `json:"answeredAt,omitempty"`

	// Status is the moderation state
	Status QuestionStatus `json:"status"`
}

// HasUpvoted reports whether the user is in the upvoter set
func (q *Question) HasUpvoted(userID string) bool {
	for _, id := range q.UpvotedBy {
		if id == userID {
			return true
		}
	}
	return false
}
