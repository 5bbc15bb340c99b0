// Package metrics holds the Prometheus collectors shared by the services.
//
// All collectors are prefixed with "agendabot_". A nil *Metrics is valid and
// records nothing, so services can run without a registry in tests.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the bot
type Metrics struct {
	BookmarkToggles           *prometheus.CounterVec
	RemindersScheduled        prometheus.Counter
	RemindersSkipped          prometheus.Counter
	RemindersCancelled        prometheus.Counter
	RemindersDelivered        *prometheus.CounterVec
	RealtimeReloads           *prometheus.CounterVec
	RealtimeSubscribeFailures *prometheus.CounterVec
	VotesSubmitted            prometheus.Counter
	CheckIns                  *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
//
// Metrics:
//   - agendabot_bookmark_toggles_total{result} - bookmarks added or removed
//   - agendabot_reminders_scheduled_total - reminder timers registered
//   - agendabot_reminders_skipped_total - lead-times skipped because the fire time had passed
//   - agendabot_reminders_cancelled_total - reminder timers cancelled
//   - agendabot_reminders_delivered_total{status} - fired reminders by delivery outcome
//   - agendabot_realtime_reloads_total{collection} - list reloads triggered by change events
//   - agendabot_realtime_subscribe_failures_total{collection} - change-feed subscriptions that failed
//   - agendabot_votes_submitted_total - accepted poll votes
//   - agendabot_checkins_total{method} - check-ins opened
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		BookmarkToggles: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agendabot_bookmark_toggles_total",
				Help: "Total number of bookmark toggles",
			},
			[]string{"result"}, // "added" or "removed"
		),
		RemindersScheduled: factory.NewCounter(prometheus.CounterOpts{
			Name: "agendabot_reminders_scheduled_total",
			Help: "Total number of session reminders scheduled",
		}),
		RemindersSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "agendabot_reminders_skipped_total",
			Help: "Total number of reminder lead-times skipped as already past",
		}),
		RemindersCancelled: factory.NewCounter(prometheus.CounterOpts{
			Name: "agendabot_reminders_cancelled_total",
			Help: "Total number of scheduled reminders cancelled",
		}),
		RemindersDelivered: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agendabot_reminders_delivered_total",
				Help: "Total number of fired reminders by delivery status",
			},
			[]string{"status"}, // "ok" or "error"
		),
		RealtimeReloads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agendabot_realtime_reloads_total",
				Help: "Total number of list reloads triggered by change events",
			},
			[]string{"collection"},
		),
		RealtimeSubscribeFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agendabot_realtime_subscribe_failures_total",
				Help: "Total number of failed change-feed subscriptions",
			},
			[]string{"collection"},
		),
		VotesSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "agendabot_votes_submitted_total",
			Help: "Total number of accepted poll votes",
		}),
		CheckIns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agendabot_checkins_total",
				Help: "Total number of session check-ins",
			},
			[]string{"method"},
		),
	}
}

func (m *Metrics) BookmarkToggled(result string) {
	if m == nil {
		return
	}
	m.BookmarkToggles.WithLabelValues(result).Inc()
}

func (m *Metrics) ReminderScheduled() {
	if m == nil {
		return
	}
	m.RemindersScheduled.Inc()
}

func (m *Metrics) ReminderSkipped() {
	if m == nil {
		return
	}
	m.RemindersSkipped.Inc()
}

func (m *Metrics) ReminderCancelled() {
	if m == nil {
		return
	}
	m.RemindersCancelled.Inc()
}

func (m *Metrics) ReminderDelivered(status string) {
	if m == nil {
		return
	}
	m.RemindersDelivered.WithLabelValues(status).Inc()
}

func (m *Metrics) RealtimeReloaded(collection string) {
	if m == nil {
		return
	}
	m.RealtimeReloads.WithLabelValues(collection).Inc()
}

func (m *Metrics) RealtimeSubscribeFailed(collection string) {
	if m == nil {
		return
	}
	m.RealtimeSubscribeFailures.WithLabelValues(collection).Inc()
}

func (m *Metrics) VoteSubmitted() {
	if m == nil {
		return
	}
	m.VotesSubmitted.Inc()
}

func (m *Metrics) CheckedIn(method string) {
	if m == nil {
		return
	}
	m.CheckIns.WithLabelValues(method).Inc()
}
