package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/agendabot/internal/aggregate"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/scheduler"
	"github.com/KirkDiggler/agendabot/internal/services/bookmark"
	"github.com/KirkDiggler/agendabot/internal/services/poll"
	"github.com/KirkDiggler/agendabot/internal/services/reminder"
	"github.com/bwmarrin/discordgo"
)

const (
	// maxEmbedFields is the Discord limit per embed
	maxEmbedFields = 25
	barWidth       = 10
	timeLayout     = "Mon 15:04"
)

// renderSessions lists sessions one field each, marking bookmarked ones
func renderSessions(title string, sessions []*models.Session, bookmarked func(sessionID string) bool) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: colorInfo,
	}
	if len(sessions) == 0 {
		embed.Description = "No sessions found."
		return embed
	}

	for i, s := range sessions {
		if i == maxEmbedFields {
			embed.Footer = &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("and %d more", len(sessions)-maxEmbedFields),
			}
			break
		}

		name := s.Title
		if bookmarked != nil && bookmarked(s.ID) {
			name = "★ " + name
		}
		value := fmt.Sprintf("`%s` · %s – %s", s.ID, s.StartTime.Format(timeLayout), s.EndTime.Format("15:04"))
		if s.Room != "" {
			value += " · " + s.Room
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  name,
			Value: value,
		})
	}
	return embed
}

// renderToggle describes the outcome of a bookmark toggle
func renderToggle(s *models.Session, out *bookmark.ToggleBookmarkOutput) *discordgo.MessageEmbed {
	if !out.Bookmarked {
		desc := "Removed from your agenda."
		if out.CancelledReminders > 0 {
			desc += fmt.Sprintf(" %d pending reminder(s) cancelled.", out.CancelledReminders)
		}
		return &discordgo.MessageEmbed{
			Title:       s.Title,
			Description: desc,
			Color:       colorInfo,
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:       s.Title,
		Description: "Added to your agenda.",
		Color:       colorSuccess,
	}
	if out.Reminders != nil {
		if len(out.Reminders.Scheduled) > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   "Reminders",
				Value:  joinMinutes(scheduledLeads(out.Reminders)),
				Inline: true,
			})
		}
		if len(out.Reminders.Skipped) > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   "Too late for",
				Value:  joinMinutes(out.Reminders.Skipped),
				Inline: true,
			})
		}
	}
	return embed
}

func scheduledLeads(out *reminder.ScheduleSessionRemindersOutput) []int {
	leads := make([]int, len(out.Scheduled))
	for i, r := range out.Scheduled {
		leads[i] = r.LeadMinutes
	}
	return leads
}

func joinMinutes(leads []int) string {
	parts := make([]string, len(leads))
	for i, lead := range leads {
		parts[i] = fmt.Sprintf("%d min", lead)
	}
	return strings.Join(parts, ", ")
}

// renderPoll draws a poll with a bar per option. Tallies are shown only when
// the poll exposes results or is closed.
func renderPoll(results *poll.ResultsOutput) *discordgo.MessageEmbed {
	p := results.Poll
	embed := &discordgo.MessageEmbed{
		Title: p.Question,
		Color: colorInfo,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Poll %s · %s · %d vote(s)", p.ID, p.Status, results.TotalVotes),
		},
	}

	showTallies := p.ShowResults || p.Status == models.PollStatusClosed
	if !showTallies {
		embed.Description = "Results are hidden until the poll closes."
	}

	for _, r := range results.Results {
		value := "`" + r.Option.ID + "`"
		if showTallies {
			value = fmt.Sprintf("%s %d%% (%d) · `%s`", bar(r.Percentage), r.Percentage, r.Option.Votes, r.Option.ID)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  r.Option.Text,
			Value: value,
		})
	}
	return embed
}

// bar renders a percentage as a fixed-width block bar
func bar(percentage int) string {
	filled := percentage * barWidth / 100
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// renderPolls summarizes a session's polls for a live board
func renderPolls(sessionID string, boards []*poll.ResultsOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Live polls",
		Color: colorInfo,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Session " + sessionID,
		},
	}
	if len(boards) == 0 {
		embed.Description = "No polls yet."
		return embed
	}

	for i, b := range boards {
		if i == maxEmbedFields {
			break
		}
		var lines []string
		for _, r := range b.Results {
			if b.Poll.ShowResults || b.Poll.Status == models.PollStatusClosed {
				lines = append(lines, fmt.Sprintf("%s %s %d%%", bar(r.Percentage), r.Option.Text, r.Percentage))
			} else {
				lines = append(lines, fmt.Sprintf("`%s` %s", r.Option.ID, r.Option.Text))
			}
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s (%s, %d votes)", b.Poll.Question, b.Poll.Status, b.TotalVotes),
			Value: strings.Join(lines, "\n"),
		})
	}
	return embed
}

// renderQuestions lists questions with their upvote counts
func renderQuestions(sessionID string, questions []*models.Question) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Questions",
		Color: colorInfo,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Session " + sessionID,
		},
	}
	if len(questions) == 0 {
		embed.Description = "No questions yet. Ask one with /qa ask."
		return embed
	}

	for i, q := range questions {
		if i == maxEmbedFields {
			break
		}
		value := fmt.Sprintf("▲ %d · `%s`", q.Upvotes, q.ID)
		if q.IsAnswered && q.Answer != "" {
			value += "\n**A:** " + q.Answer
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  truncate(q.Content, 256),
			Value: value,
		})
	}
	return embed
}

// renderCheckIns lists a user's check-ins with their duration
func renderCheckIns(checkIns []*models.CheckIn, titles map[string]string, totalSessions int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "Attendance",
		Description: fmt.Sprintf("%d session(s) attended", totalSessions),
		Color:       colorInfo,
	}

	for i, c := range checkIns {
		if i == maxEmbedFields {
			break
		}
		name := titles[c.SessionID]
		if name == "" {
			name = c.SessionID
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  name,
			Value: fmt.Sprintf("%s · %s", c.CheckInTime.Format(timeLayout), aggregate.FormatDuration(c)),
		})
	}
	return embed
}

// renderReminder is the DM sent when a session reminder fires
func renderReminder(payload *scheduler.Payload) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       payload.Title,
		Description: payload.Body,
		Color:       colorInfo,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Session " + payload.SessionID,
		},
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
