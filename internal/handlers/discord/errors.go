package discord

import (
	"errors"

	"github.com/KirkDiggler/agendabot/internal/qrcode"
	"github.com/KirkDiggler/agendabot/internal/services/bookmark"
	"github.com/KirkDiggler/agendabot/internal/services/checkin"
	"github.com/KirkDiggler/agendabot/internal/services/connection"
	"github.com/KirkDiggler/agendabot/internal/services/poll"
	"github.com/KirkDiggler/agendabot/internal/services/question"
	"github.com/KirkDiggler/agendabot/internal/services/session"
)

var (
	// ErrUnknownSubcommand is returned for a subcommand a handler does not define
	ErrUnknownSubcommand = errors.New("unknown subcommand")

	// ErrNotModerator is returned when a moderation subcommand is used without permission
	ErrNotModerator = errors.New("moderator permission required")
)

const genericFailure = "Something went wrong, please try again in a moment."

var userMessages = []struct {
	err     error
	message string
}{
	{session.ErrSessionNotFound, "That session does not exist."},
	{bookmark.ErrBackendUnavailable, "Bookmarks are unavailable right now, nothing was changed."},
	{poll.ErrPollNotFound, "That poll does not exist."},
	{poll.ErrAlreadyVoted, "You already voted on this poll."},
	{poll.ErrPollClosed, "This poll is not accepting votes."},
	{poll.ErrInvalidOption, "That option is not part of this poll."},
	{question.ErrQuestionNotFound, "That question does not exist."},
	{question.ErrEmptyQuestion, "Your question is empty."},
	{question.ErrAlreadyUpvoted, "You already upvoted this question."},
	{checkin.ErrNotCheckedIn, "You are not checked in to that session."},
	{checkin.ErrAlreadyCheckedOut, "You already checked out."},
	{qrcode.ErrInvalidPayload, "That is not a session check-in code."},
	{poll.ErrInvalidPoll, "A poll needs a question and at least two options."},
	{question.ErrEmptyAnswer, "The answer is empty."},
	{connection.ErrSelfConnection, "You cannot connect with yourself."},
	{connection.ErrAlreadyConnected, "You are already connected or have a pending request."},
	{connection.ErrConnectionNotFound, "That request does not exist."},
	{connection.ErrNotRecipient, "Only the person you asked can answer that request."},
	{connection.ErrNotPending, "That request was already answered."},
	{ErrNotModerator, "Only moderators can do that."},
	{ErrUnknownSubcommand, "Unknown subcommand."},
}

// userMessage turns a command error into text safe to show the user
func userMessage(err error) string {
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return genericFailure
}
