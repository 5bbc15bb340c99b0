package discord

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/scheduler"
	"github.com/KirkDiggler/agendabot/internal/services/bookmark"
	"github.com/KirkDiggler/agendabot/internal/services/poll"
	"github.com/KirkDiggler/agendabot/internal/services/reminder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 4, 19, 10, 0, 0, 0, time.UTC)

func TestBar(t *testing.T) {
	testCases := []struct {
		percentage int
		expected   string
	}{
		{0, "░░░░░░░░░░"},
		{25, "██░░░░░░░░"},
		{50, "█████░░░░░"},
		{100, "██████████"},
		{140, "██████████"},
		{-5, "░░░░░░░░░░"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprint(tc.percentage), func(t *testing.T) {
			assert.Equal(t, tc.expected, bar(tc.percentage))
		})
	}
}

func TestRenderSessions(t *testing.T) {
	sessions := []*models.Session{
		{Meta: models.Meta{ID: "s1"}, Title: "Keynote", StartTime: start, EndTime: start.Add(time.Hour), Room: "Hall A"},
		{Meta: models.Meta{ID: "s2"}, Title: "Workshop", StartTime: start.Add(2 * time.Hour), EndTime: start.Add(3 * time.Hour)},
	}

	embed := renderSessions("Schedule", sessions, func(id string) bool { return id == "s2" })

	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "Keynote", embed.Fields[0].Name)
	assert.Equal(t, "`s1` · Sat 10:00 – 11:00 · Hall A", embed.Fields[0].Value)
	assert.Equal(t, "★ Workshop", embed.Fields[1].Name)
	assert.Nil(t, embed.Footer)
}

func TestRenderSessionsOverflow(t *testing.T) {
	sessions := make([]*models.Session, maxEmbedFields+3)
	for i := range sessions {
		sessions[i] = &models.Session{Meta: models.Meta{ID: fmt.Sprintf("s%d", i)}, Title: "Talk", StartTime: start, EndTime: start}
	}

	embed := renderSessions("Schedule", sessions, nil)

	assert.Len(t, embed.Fields, maxEmbedFields)
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "and 3 more", embed.Footer.Text)
}

func TestRenderSessionsEmpty(t *testing.T) {
	embed := renderSessions("Your agenda", nil, nil)
	assert.Equal(t, "No sessions found.", embed.Description)
	assert.Empty(t, embed.Fields)
}

func TestRenderToggle(t *testing.T) {
	s := &models.Session{Meta: models.Meta{ID: "s1"}, Title: "Keynote"}

	added := renderToggle(s, &bookmark.ToggleBookmarkOutput{
		Bookmarked: true,
		Reminders: &reminder.ScheduleSessionRemindersOutput{
			Scheduled: []reminder.ScheduledReminder{{LeadMinutes: 5}},
			Skipped:   []int{30, 15},
		},
	})
	assert.Equal(t, colorSuccess, added.Color)
	require.Len(t, added.Fields, 2)
	assert.Equal(t, "5 min", added.Fields[0].Value)
	assert.Equal(t, "30 min, 15 min", added.Fields[1].Value)

	removed := renderToggle(s, &bookmark.ToggleBookmarkOutput{CancelledReminders: 3})
	assert.Equal(t, "Removed from your agenda. 3 pending reminder(s) cancelled.", removed.Description)
	assert.Empty(t, removed.Fields)
}

func pollResults(show bool, status models.PollStatus) *poll.ResultsOutput {
	return &poll.ResultsOutput{
		Poll: &models.Poll{
			Meta:        models.Meta{ID: "poll-1"},
			Question:    "Favourite track?",
			Status:      status,
			ShowResults: show,
		},
		TotalVotes: 4,
		Results: []poll.OptionResult{
			{Option: models.PollOption{ID: "option-1", Text: "Cloud", Votes: 3}, Percentage: 75},
			{Option: models.PollOption{ID: "option-2", Text: "Data", Votes: 1}, Percentage: 25},
		},
	}
}

func TestRenderPoll(t *testing.T) {
	embed := renderPoll(pollResults(true, models.PollStatusActive))

	assert.Equal(t, "Favourite track?", embed.Title)
	assert.Equal(t, "Poll poll-1 · active · 4 vote(s)", embed.Footer.Text)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "███████░░░ 75% (3) · `option-1`", embed.Fields[0].Value)
	assert.Empty(t, embed.Description)
}

func TestRenderPollHiddenUntilClosed(t *testing.T) {
	hidden := renderPoll(pollResults(false, models.PollStatusActive))
	assert.Equal(t, "Results are hidden until the poll closes.", hidden.Description)
	assert.Equal(t, "`option-1`", hidden.Fields[0].Value)

	closed := renderPoll(pollResults(false, models.PollStatusClosed))
	assert.Contains(t, closed.Fields[0].Value, "75%")
}

func TestRenderPolls(t *testing.T) {
	embed := renderPolls("s1", []*poll.ResultsOutput{pollResults(true, models.PollStatusActive)})

	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "Favourite track? (active, 4 votes)", embed.Fields[0].Name)
	assert.Equal(t, "███████░░░ Cloud 75%\n██░░░░░░░░ Data 25%", embed.Fields[0].Value)

	assert.Equal(t, "No polls yet.", renderPolls("s1", nil).Description)
}

func TestRenderQuestions(t *testing.T) {
	answeredAt := start
	embed := renderQuestions("s1", []*models.Question{
		{Meta: models.Meta{ID: "q1"}, Content: "How do you test this?", Upvotes: 4},
		{Meta: models.Meta{ID: "q2"}, Content: "Slides?", Upvotes: 1, IsAnswered: true, Answer: "Yes, tonight", AnsweredAt: &answeredAt},
	})

	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "▲ 4 · `q1`", embed.Fields[0].Value)
	assert.Equal(t, "▲ 1 · `q2`\n**A:** Yes, tonight", embed.Fields[1].Value)
}

func TestRenderCheckIns(t *testing.T) {
	out := start.Add(47 * time.Minute)
	embed := renderCheckIns([]*models.CheckIn{
		{SessionID: "s1", CheckInTime: start, CheckOutTime: &out},
		{SessionID: "s2", CheckInTime: start.Add(time.Hour)},
	}, map[string]string{"s1": "Keynote"}, 1)

	assert.Equal(t, "1 session(s) attended", embed.Description)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "Keynote", embed.Fields[0].Name)
	assert.Equal(t, "Sat 10:00 · 47m", embed.Fields[0].Value)
	assert.Equal(t, "s2", embed.Fields[1].Name)
	assert.Equal(t, "Sat 11:00 · Active", embed.Fields[1].Value)
}

func TestRenderReminder(t *testing.T) {
	embed := renderReminder(&scheduler.Payload{
		SessionID: "s1",
		Title:     "Session Starting in 15 Minutes",
		Body:      "Keynote",
	})

	assert.Equal(t, "Session Starting in 15 Minutes", embed.Title)
	assert.Equal(t, "Keynote", embed.Description)
	assert.Equal(t, "Session s1", embed.Footer.Text)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	long := strings.Repeat("é", 20)
	got := truncate(long, 10)
	assert.Equal(t, 10, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestParseOptionIDs(t *testing.T) {
	assert.Equal(t, []string{"option-2"}, parseOptionIDs("2"))
	assert.Equal(t, []string{"option-1", "option-3"}, parseOptionIDs("option-1, 3"))
	assert.Equal(t, []string{"yes"}, parseOptionIDs(" yes ,, "))
	assert.Nil(t, parseOptionIDs(""))
}
