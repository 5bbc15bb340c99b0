// Package aggregate holds the derived-value arithmetic shared by the poll,
// question and check-in services. Everything here is pure.
package aggregate

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/KirkDiggler/agendabot/internal/models"
)

// ActiveLabel is reported for a check-in that has not been checked out
const ActiveLabel = "Active"

// Percentage returns round(votes / total * 100), or 0 when total is 0
func Percentage(votes, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(votes) / float64(total) * 100))
}

// Tally recomputes per-option counts from the full vote set. The returned
// options replace the stored ones; total is the number of vote records.
// Unknown option IDs are ignored and an option repeated within one vote
// counts once.
func Tally(options []models.PollOption, votes []*models.PollVote) ([]models.PollOption, int) {
	counts := make(map[string]int, len(options))
	for _, vote := range votes {
		seen := make(map[string]bool, len(vote.OptionIDs))
		for _, optionID := range vote.OptionIDs {
			if seen[optionID] {
				continue
			}
			seen[optionID] = true
			counts[optionID]++
		}
	}

	tallied := make([]models.PollOption, len(options))
	for i, option := range options {
		option.Votes = counts[option.ID]
		tallied[i] = option
	}

	return tallied, len(votes)
}

// SetUpvote is the only mutation path for a question's upvotes. It adds or
// removes userID from the upvoter set and derives the counter from the set.
// It reports whether anything changed.
func SetUpvote(q *models.Question, userID string, upvoted bool) bool {
	idx := slices.Index(q.UpvotedBy, userID)

	switch {
	case upvoted && idx < 0:
		q.UpvotedBy = append(q.UpvotedBy, userID)
	case !upvoted && idx >= 0:
		q.UpvotedBy = slices.Delete(q.UpvotedBy, idx, idx+1)
	default:
		q.Upvotes = len(q.UpvotedBy)
		return false
	}

	q.Upvotes = len(q.UpvotedBy)
	return true
}

// ToggleUpvote removes the user's upvote if present, otherwise adds it.
// It returns the resulting membership.
func ToggleUpvote(q *models.Question, userID string) bool {
	upvoted := !q.HasUpvoted(userID)
	SetUpvote(q, userID, upvoted)
	return upvoted
}

// Duration returns whole minutes between check-in and check-out.
// ok is false for an open check-in.
func Duration(c *models.CheckIn) (minutes int, ok bool) {
	if c.CheckOutTime == nil {
		return 0, false
	}

	d := c.CheckOutTime.Sub(c.CheckInTime)
	if d < 0 {
		return 0, true
	}
	return int(d / time.Minute), true
}

// FormatDuration renders a check-in duration as "47m", "1h 5m" or "Active"
func FormatDuration(c *models.CheckIn) string {
	minutes, ok := Duration(c)
	if !ok {
		return ActiveLabel
	}

	hours := minutes / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}

// DistinctCompletedSessions counts the sessions with at least one
// checked-out check-in
func DistinctCompletedSessions(checkIns []*models.CheckIn) int {
	sessions := make(map[string]struct{})
	for _, c := range checkIns {
		if c.CheckOutTime != nil {
			sessions[c.SessionID] = struct{}{}
		}
	}
	return len(sessions)
}

// DistinctUsers counts the users among checkIns
func DistinctUsers(checkIns []*models.CheckIn) int {
	users := make(map[string]struct{})
	for _, c := range checkIns {
		users[c.UserID] = struct{}{}
	}
	return len(users)
}
