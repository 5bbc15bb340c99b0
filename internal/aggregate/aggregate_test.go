package aggregate

import (
	"testing"
	"time"

	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		votes int
		total int
		want  int
	}{
		{name: "three of four", votes: 3, total: 4, want: 75},
		{name: "one of four", votes: 1, total: 4, want: 25},
		{name: "rounds half up", votes: 1, total: 8, want: 13},
		{name: "one third", votes: 1, total: 3, want: 33},
		{name: "zero total", votes: 0, total: 0, want: 0},
		{name: "all", votes: 5, total: 5, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(tt.votes, tt.total))
		})
	}
}

func pollOptions() []models.PollOption {
	return []models.PollOption{
		{ID: "option-1", Text: "A", Votes: 99},
		{ID: "option-2", Text: "B"},
		{ID: "option-3", Text: "C"},
	}
}

func TestTally(t *testing.T) {
	votes := []*models.PollVote{
		{UserID: "u1", OptionIDs: []string{"option-1"}},
		{UserID: "u2", OptionIDs: []string{"option-1"}},
		{UserID: "u3", OptionIDs: []string{"option-1"}},
		{UserID: "u4", OptionIDs: []string{"option-2"}},
	}

	options, total := Tally(pollOptions(), votes)

	assert.Equal(t, 4, total)
	assert.Equal(t, 3, options[0].Votes)
	assert.Equal(t, 1, options[1].Votes)
	assert.Equal(t, 0, options[2].Votes)
	assert.Equal(t, 75, Percentage(options[0].Votes, total))
	assert.Equal(t, 25, Percentage(options[1].Votes, total))
}

func TestTallyIsIdempotentAndOrderIndependent(t *testing.T) {
	votes := []*models.PollVote{
		{UserID: "u1", OptionIDs: []string{"option-1", "option-3"}},
		{UserID: "u2", OptionIDs: []string{"option-3"}},
		{UserID: "u3", OptionIDs: []string{"option-2", "option-2", "unknown"}},
	}
	reversed := []*models.PollVote{votes[2], votes[1], votes[0]}

	first, firstTotal := Tally(pollOptions(), votes)
	again, againTotal := Tally(first, votes)
	backwards, backwardsTotal := Tally(pollOptions(), reversed)

	assert.Equal(t, first, again)
	assert.Equal(t, firstTotal, againTotal)
	assert.Equal(t, first, backwards)
	assert.Equal(t, firstTotal, backwardsTotal)

	assert.Equal(t, 3, firstTotal)
	assert.Equal(t, []int{1, 1, 2}, []int{first[0].Votes, first[1].Votes, first[2].Votes})
}

func TestTallyDoesNotMutateInput(t *testing.T) {
	options := pollOptions()
	Tally(options, nil)
	assert.Equal(t, 99, options[0].Votes)
}

func TestUpvoteInvariantHoldsAcrossToggles(t *testing.T) {
	q := &models.Question{}
	users := []string{"u1", "u2", "u1", "u3", "u2", "u2", "u1"}

	for _, user := range users {
		ToggleUpvote(q, user)
		assert.Equal(t, len(q.UpvotedBy), q.Upvotes)
	}

	assert.ElementsMatch(t, []string{"u3", "u2", "u1"}, q.UpvotedBy)
}

func TestSetUpvote(t *testing.T) {
	q := &models.Question{UpvotedBy: []string{"u1"}, Upvotes: 1}

	assert.False(t, SetUpvote(q, "u1", true))
	assert.Equal(t, 1, q.Upvotes)

	assert.True(t, SetUpvote(q, "u1", false))
	assert.Equal(t, 0, q.Upvotes)
	assert.Empty(t, q.UpvotedBy)

	// Removing again never drives the counter negative
	assert.False(t, SetUpvote(q, "u1", false))
	assert.Equal(t, 0, q.Upvotes)
}

func TestSetUpvoteRepairsDriftedCounter(t *testing.T) {
	q := &models.Question{UpvotedBy: []string{"u1", "u2"}, Upvotes: 7}

	SetUpvote(q, "u3", true)
	assert.Equal(t, 3, q.Upvotes)
}

func TestDuration(t *testing.T) {
	in := time.Date(2025, 4, 19, 10, 0, 0, 0, time.UTC)
	out := time.Date(2025, 4, 19, 10, 47, 30, 0, time.UTC)
	long := in.Add(65 * time.Minute)
	before := in.Add(-time.Minute)

	tests := []struct {
		name    string
		checkIn *models.CheckIn
		minutes int
		ok      bool
		label   string
	}{
		{name: "completed", checkIn: &models.CheckIn{CheckInTime: in, CheckOutTime: &out}, minutes: 47, ok: true, label: "47m"},
		{name: "over an hour", checkIn: &models.CheckIn{CheckInTime: in, CheckOutTime: &long}, minutes: 65, ok: true, label: "1h 5m"},
		{name: "open", checkIn: &models.CheckIn{CheckInTime: in}, label: "Active"},
		{name: "clock skew floors at zero", checkIn: &models.CheckIn{CheckInTime: in, CheckOutTime: &before}, minutes: 0, ok: true, label: "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minutes, ok := Duration(tt.checkIn)
			assert.Equal(t, tt.minutes, minutes)
			assert.Equal(t, tt.ok, ok)
			assert.GreaterOrEqual(t, minutes, 0)
			assert.Equal(t, tt.label, FormatDuration(tt.checkIn))
		})
	}
}

func TestDistinctCompletedSessions(t *testing.T) {
	now := time.Date(2025, 4, 19, 10, 0, 0, 0, time.UTC)
	out := now.Add(time.Hour)

	checkIns := []*models.CheckIn{
		{UserID: "u1", SessionID: "s1", CheckInTime: now, CheckOutTime: &out},
		{UserID: "u1", SessionID: "s1", CheckInTime: now, CheckOutTime: &out},
		{UserID: "u1", SessionID: "s2", CheckInTime: now, CheckOutTime: &out},
		{UserID: "u1", SessionID: "s3", CheckInTime: now},
	}

	assert.Equal(t, 2, DistinctCompletedSessions(checkIns))
	assert.Equal(t, 1, DistinctUsers(checkIns))
	assert.Equal(t, 0, DistinctCompletedSessions(nil))
}
