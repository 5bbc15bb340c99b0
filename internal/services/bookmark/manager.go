package bookmark

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/KirkDiggler/agendabot/internal/logging"
	"github.com/KirkDiggler/agendabot/internal/metrics"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/repositories/document"
	"github.com/KirkDiggler/agendabot/internal/scheduler"
	"github.com/KirkDiggler/agendabot/internal/services/notification"
	"github.com/KirkDiggler/agendabot/internal/services/reminder"
	"github.com/KirkDiggler/agendabot/internal/services/session"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// manager implements the Manager interface for a single user
type manager struct {
	userID       string
	documentRepo document.Repository
	sessions     session.Service
	settings     notification.SettingsLoader
	reminders    reminder.Service
	logger       *zap.Logger
	metrics      *metrics.Metrics

	// writeMu orders store writes against the mirror
	writeMu sync.Mutex

	mu        sync.RWMutex
	bookmarks map[string]struct{}
	handles   map[string][]scheduler.Handle
}

// New creates a bookmark manager for cfg.UserID with an empty mirror
func New(cfg *Config) (*manager, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.UserID == "" {
		return nil, ErrEmptyUserID
	}
	if cfg.DocumentRepo == nil {
		return nil, ErrNilDocumentRepo
	}
	if cfg.Sessions == nil {
		return nil, ErrNilSessionService
	}

	return &manager{
		userID:       cfg.UserID,
		documentRepo: cfg.DocumentRepo,
		sessions:     cfg.Sessions,
		settings:     cfg.Settings,
		reminders:    cfg.Reminders,
		logger:       logging.OrNop(cfg.Logger).With(zap.String("user_id", cfg.UserID)),
		metrics:      cfg.Metrics,
		bookmarks:    make(map[string]struct{}),
		handles:      make(map[string][]scheduler.Handle),
	}, nil
}

// Load replaces the mirror with the stored bookmark set
func (m *manager) Load(ctx context.Context) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	stored, err := m.listStored(ctx)
	if err != nil {
		return err
	}

	set := make(map[string]struct{}, len(stored))
	for _, b := range stored {
		set[b.SessionID] = struct{}{}
	}

	m.mu.Lock()
	m.bookmarks = set
	m.mu.Unlock()

	m.logger.Debug("bookmarks loaded", zap.Int("count", len(set)))
	return nil
}

// ToggleBookmark flips membership for the session. The mirror changes only
// after the store accepted the write.
func (m *manager) ToggleBookmark(ctx context.Context, input *ToggleBookmarkInput) (*ToggleBookmarkOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	existing, err := m.findStored(ctx, input.SessionID)
	if err != nil {
		m.metrics.BookmarkToggled(toggleFailed)
		return nil, err
	}

	if existing != nil {
		return m.remove(ctx, existing)
	}
	return m.add(ctx, input)
}

func (m *manager) add(ctx context.Context, input *ToggleBookmarkInput) (*ToggleBookmarkOutput, error) {
	_, err := m.documentRepo.Create(ctx, &document.CreateInput{
		Collection: document.CollectionBookmarks,
		Fields: &models.Bookmark{
			UserID:       m.userID,
			SessionID:    input.SessionID,
			ReminderTime: models.DefaultBookmarkReminderMinutes,
		},
	})
	if err != nil {
		m.metrics.BookmarkToggled(toggleFailed)
		m.logger.Error("failed to create bookmark",
			zap.String("session_id", input.SessionID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	m.mu.Lock()
	m.bookmarks[input.SessionID] = struct{}{}
	m.mu.Unlock()
	m.metrics.BookmarkToggled(toggleAdded)

	return &ToggleBookmarkOutput{
		Bookmarked: true,
		Reminders:  m.scheduleReminders(ctx, input),
	}, nil
}

func (m *manager) remove(ctx context.Context, existing *models.Bookmark) (*ToggleBookmarkOutput, error) {
	err := m.documentRepo.Delete(ctx, &document.DeleteInput{
		Collection: document.CollectionBookmarks,
		ID:         existing.ID,
	})
	if err != nil && !errors.Is(err, document.ErrNotFound) {
		m.metrics.BookmarkToggled(toggleFailed)
		m.logger.Error("failed to delete bookmark",
			zap.String("session_id", existing.SessionID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	m.mu.Lock()
	delete(m.bookmarks, existing.SessionID)
	handles := m.handles[existing.SessionID]
	delete(m.handles, existing.SessionID)
	m.mu.Unlock()
	m.metrics.BookmarkToggled(toggleRemoved)

	return &ToggleBookmarkOutput{
		Bookmarked:         false,
		CancelledReminders: m.cancelReminders(ctx, handles),
	}, nil
}

// scheduleReminders is best effort; a failure never undoes the bookmark
func (m *manager) scheduleReminders(ctx context.Context, input *ToggleBookmarkInput) *reminder.ScheduleSessionRemindersOutput {
	if m.reminders == nil {
		return nil
	}

	title, start := input.SessionTitle, input.StartTime
	if title == "" || start.IsZero() {
		s, err := m.sessions.GetSession(ctx, &session.GetSessionInput{SessionID: input.SessionID})
		if err != nil {
			m.logger.Warn("no session details, skipping reminders",
				zap.String("session_id", input.SessionID),
				zap.Error(err))
			return nil
		}
		if title == "" {
			title = s.Title
		}
		if start.IsZero() {
			start = s.StartTime
		}
	}

	settings := models.DefaultNotificationSettings()
	if m.settings != nil {
		loaded, err := m.settings.LoadSettings(ctx, &notification.LoadSettingsInput{UserID: m.userID})
		if err != nil {
			m.logger.Warn("failed to load notification settings, using defaults", zap.Error(err))
		} else {
			settings = loaded
		}
	}
	if !settings.SessionReminders {
		return nil
	}

	out, err := m.reminders.ScheduleSessionReminders(ctx, &reminder.ScheduleSessionRemindersInput{
		UserID:       m.userID,
		SessionID:    input.SessionID,
		SessionTitle: title,
		StartTime:    start,
		LeadTimes:    settings.ReminderTimes,
	})
	if err != nil {
		m.logger.Error("failed to schedule reminders",
			zap.String("session_id", input.SessionID),
			zap.Error(err))
	}
	if out == nil {
		return nil
	}

	if len(out.Scheduled) > 0 {
		m.mu.Lock()
		m.handles[input.SessionID] = append(m.handles[input.SessionID], out.Handles()...)
		m.mu.Unlock()
	}

	return out
}

func (m *manager) cancelReminders(ctx context.Context, handles []scheduler.Handle) int {
	if len(handles) == 0 || m.reminders == nil {
		return 0
	}

	if err := m.reminders.CancelReminders(ctx, &reminder.CancelRemindersInput{Handles: handles}); err != nil {
		m.logger.Warn("failed to cancel reminders",
			zap.Int("count", len(handles)),
			zap.Error(err))
	}
	return len(handles)
}

func (m *manager) IsBookmarked(sessionID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.bookmarks[sessionID]
	return ok
}

func (m *manager) BookmarkedSessionIDs() []string {
	m.mu.RLock()
	ids := make([]string, 0, len(m.bookmarks))
	for id := range m.bookmarks {
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

func (m *manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.bookmarks)
}

// BookmarkedSessionsData resolves the stored bookmarks newest first
func (m *manager) BookmarkedSessionsData(ctx context.Context) ([]*models.Session, error) {
	stored, err := m.listStored(ctx)
	if err != nil {
		return nil, err
	}

	resolved := make([]*models.Session, len(stored))

	var g errgroup.Group
	g.SetLimit(lookupConcurrency)
	for i, b := range stored {
		g.Go(func() error {
			s, err := m.sessions.GetSession(ctx, &session.GetSessionInput{SessionID: b.SessionID})
			if err != nil {
				m.logger.Debug("dropping unresolved bookmark",
					zap.String("session_id", b.SessionID),
					zap.Error(err))
				return nil
			}
			resolved[i] = s
			return nil
		})
	}
	_ = g.Wait()

	sessions := make([]*models.Session, 0, len(resolved))
	for _, s := range resolved {
		if s != nil {
			sessions = append(sessions, s)
		}
	}

	return sessions, nil
}

// ClearAllBookmarks deletes every stored bookmark and cancels the reminders
// this manager scheduled for them
func (m *manager) ClearAllBookmarks(ctx context.Context) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	stored, err := m.listStored(ctx)
	if err != nil {
		return err
	}

	for _, b := range stored {
		err := m.documentRepo.Delete(ctx, &document.DeleteInput{
			Collection: document.CollectionBookmarks,
			ID:         b.ID,
		})
		if err != nil && !errors.Is(err, document.ErrNotFound) {
			m.logger.Error("failed to delete bookmark",
				zap.String("session_id", b.SessionID),
				zap.Error(err))
			return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
		}

		m.mu.Lock()
		delete(m.bookmarks, b.SessionID)
		m.mu.Unlock()
	}

	m.mu.Lock()
	m.bookmarks = make(map[string]struct{})
	var handles []scheduler.Handle
	for _, hs := range m.handles {
		handles = append(handles, hs...)
	}
	m.handles = make(map[string][]scheduler.Handle)
	m.mu.Unlock()

	m.cancelReminders(ctx, handles)
	return nil
}

func (m *manager) UpdateBookmark(ctx context.Context, input *UpdateBookmarkInput) (*models.Bookmark, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	existing, err := m.findStored(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrBookmarkNotFound
	}

	fields := map[string]any{}
	if input.Notes != nil {
		fields["notes"] = *input.Notes
	}
	if input.ReminderTime != nil {
		fields["reminderTime"] = *input.ReminderTime
	}
	if len(fields) == 0 {
		return existing, nil
	}

	doc, err := m.documentRepo.Update(ctx, &document.UpdateInput{
		Collection: document.CollectionBookmarks,
		ID:         existing.ID,
		Fields:     fields,
	})
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return nil, ErrBookmarkNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	return document.Decode[models.Bookmark](doc)
}

func (m *manager) listStored(ctx context.Context) ([]*models.Bookmark, error) {
	return m.query(ctx, []document.Filter{document.Equal("userId", m.userID)}, 0)
}

func (m *manager) findStored(ctx context.Context, sessionID string) (*models.Bookmark, error) {
	found, err := m.query(ctx, []document.Filter{
		document.Equal("userId", m.userID),
		document.Equal("sessionId", sessionID),
	}, 1)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

func (m *manager) query(ctx context.Context, filters []document.Filter, limit int) ([]*models.Bookmark, error) {
	out, err := m.documentRepo.List(ctx, &document.ListInput{
		Collection: document.CollectionBookmarks,
		Filters:    filters,
		Orders:     []document.Order{document.Desc(document.FieldCreatedAt)},
		Limit:      limit,
	})
	if err != nil {
		m.logger.Error("failed to list bookmarks", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	return document.DecodeAll[models.Bookmark](out.Documents)
}
