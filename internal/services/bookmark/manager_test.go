package bookmark

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/repositories/document"
	docmocks "github.com/KirkDiggler/agendabot/internal/repositories/document/mocks"
	"github.com/KirkDiggler/agendabot/internal/scheduler"
	"github.com/KirkDiggler/agendabot/internal/services/notification"
	"github.com/KirkDiggler/agendabot/internal/services/reminder"
	remindermocks "github.com/KirkDiggler/agendabot/internal/services/reminder/mocks"
	"github.com/KirkDiggler/agendabot/internal/services/session"
	sessionmocks "github.com/KirkDiggler/agendabot/internal/services/session/mocks"
	"github.com/KirkDiggler/agendabot/internal/testfixtures"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

type ManagerTestSuite struct {
	suite.Suite
	store         *testfixtures.Store
	clock         *testfixtures.Clock
	scheduler     *scheduler.TimerScheduler
	sessions      session.Service
	notifications notification.Service
	manager       *manager
	ctx           context.Context
	testNow       time.Time
}

func (s *ManagerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.testNow = testfixtures.ReferenceTime
	s.clock = testfixtures.NewClock(s.testNow)
	s.store = testfixtures.NewStore(s.T())

	sched, err := scheduler.New(&scheduler.Config{
		Deliverer: scheduler.DelivererFunc(func(context.Context, *scheduler.Payload) error { return nil }),
		Clock:     s.clock,
	})
	s.Require().NoError(err)
	s.scheduler = sched

	reminders, err := reminder.New(&reminder.Config{Scheduler: sched, Clock: s.clock})
	s.Require().NoError(err)

	sessions, err := session.New(&session.Config{DocumentRepo: s.store, Clock: s.clock})
	s.Require().NoError(err)
	s.sessions = sessions

	notifications, err := notification.New(&notification.Config{
		DocumentRepo: s.store,
		KVRepo:       testfixtures.NewKV(s.T(), s.store.Redis),
	})
	s.Require().NoError(err)
	s.notifications = notifications

	m, err := New(&Config{
		UserID:       "user-1",
		DocumentRepo: s.store,
		Sessions:     sessions,
		Settings:     notifications,
		Reminders:    reminders,
		Logger:       zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)
	s.manager = m
}

func (s *ManagerTestSuite) TearDownTest() {
	s.scheduler.Stop()
}

func TestManagerTestSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}

func (s *ManagerTestSuite) createSession(title string, startsIn time.Duration) *models.Session {
	start := s.testNow.Add(startsIn)
	created, err := s.sessions.CreateSession(s.ctx, &session.CreateSessionInput{Session: &models.Session{
		EventID:   "event-1",
		Title:     title,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}})
	s.Require().NoError(err)
	return created
}

func (s *ManagerTestSuite) leads(out *reminder.ScheduleSessionRemindersOutput) []int {
	leads := make([]int, len(out.Scheduled))
	for i, r := range out.Scheduled {
		leads[i] = r.LeadMinutes
	}
	return leads
}

func (s *ManagerTestSuite) TestToggleSchedulesAllLeadsForDistantSession() {
	sess := s.createSession("AI in Education", 40*time.Minute)

	out, err := s.manager.ToggleBookmark(s.ctx, &ToggleBookmarkInput{
		SessionID:    sess.ID,
		SessionTitle: sess.Title,
		StartTime:    sess.StartTime,
	})
	s.Require().NoError(err)

	s.True(out.Bookmarked)
	s.Require().NotNil(out.Reminders)
	s.Equal([]int{30, 15, 5}, s.leads(out.Reminders))
	s.Empty(out.Reminders.Skipped)
	s.Equal(s.testNow.Add(10*time.Minute), out.Reminders.Scheduled[0].FireAt)
	s.Len(s.scheduler.Pending(), 3)
	s.True(s.manager.IsBookmarked(sess.ID))
}

func (s *ManagerTestSuite) TestToggleSkipsLeadsAlreadyPast() {
	sess := s.createSession("Starting Soon", 10*time.Minute)

	out, err := s.manager.ToggleBookmark(s.ctx, &ToggleBookmarkInput{SessionID: sess.ID})
	s.Require().NoError(err)

	s.True(out.Bookmarked)
	s.Require().NotNil(out.Reminders)
	s.Equal([]int{5}, s.leads(out.Reminders))
	s.ElementsMatch([]int{30, 15}, out.Reminders.Skipped)
}

func (s *ManagerTestSuite) TestToggleRespectsDisabledReminders() {
	settings := models.DefaultNotificationSettings()
	settings.SessionReminders = false
	s.Require().NoError(s.notifications.SaveSettings(s.ctx, &notification.SaveSettingsInput{UserID: "user-1", Settings: settings}))

	sess := s.createSession("Quiet", time.Hour)
	out, err := s.manager.ToggleBookmark(s.ctx, &ToggleBookmarkInput{SessionID: sess.ID})
	s.Require().NoError(err)

	s.True(out.Bookmarked)
	s.Nil(out.Reminders)
	s.Empty(s.scheduler.Pending())
}

func (s *ManagerTestSuite) TestToggleUsesConfiguredLeadTimes() {
	settings := models.DefaultNotificationSettings()
	settings.ReminderTimes = []int{20}
	s.Require().NoError(s.notifications.SaveSettings(s.ctx, &notification.SaveSettingsInput{UserID: "user-1", Settings: settings}))

	sess := s.createSession("Custom", time.Hour)
	out, err := s.manager.ToggleBookmark(s.ctx, &ToggleBookmarkInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal([]int{20}, s.leads(out.Reminders))
}

func (s *ManagerTestSuite) TestToggleWithNoLeadTimesSchedulesNothing() {
	settings := models.DefaultNotificationSettings()
	settings.ReminderTimes = []int{}
	s.Require().NoError(s.notifications.SaveSettings(s.ctx, &notification.SaveSettingsInput{UserID: "user-1", Settings: settings}))

	sess := s.createSession("No Reminders", time.Hour)
	out, err := s.manager.ToggleBookmark(s.ctx, &ToggleBookmarkInput{SessionID: sess.ID})
	s.Require().NoError(err)

	s.True(out.Bookmarked)
	s.Require().NotNil(out.Reminders)
	s.Empty(out.Reminders.Scheduled)
	s.Empty(s.scheduler.Pending())
}

func (s *ManagerTestSuite) TestParallelTogglesKeepMirrorInStep() {
	sess := s.createSession("Crowded", time.Hour)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.manager.ToggleBookmark(s.ctx, &ToggleBookmarkInput{SessionID: sess.ID})
			s.NoError(err)
		}()
	}
	wg.Wait()

	stored, err := s.manager.listStored(s.ctx)
	s.Require().NoError(err)
	s.Empty(stored)
	s.False(s.manager.IsBookmarked(sess.ID))
	s.Empty(s.scheduler.Pending())

	_, err = s.manager.ToggleBookmark(s.ctx, &ToggleBookmarkInput{SessionID: sess.ID})
	s.Require().NoError(err)

	stored, err = s.manager.listStored(s.ctx)
	s.Require().NoError(err)
	s.Len(stored, 1)
	s.True(s.manager.IsBookmarked(sess.ID))
}

func (s *ManagerTestSuite) TestToggleTwiceRestoresMembershipAndCancelsReminders() {
	sess := s.createSession("Round Trip", time.Hour)
	before := s.manager.BookmarkedSessionIDs()

	_, err := s.manager.ToggleBookmark(s.ctx, &ToggleBookmarkInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Len(s.scheduler.Pending(), 3)

	out, err := s.manager.ToggleBookmark(s.ctx, &ToggleBookmarkInput{SessionID: sess.ID})
	s.Require().NoError(err)

	s.False(out.Bookmarked)
	s.Equal(3, out.CancelledReminders)
	s.Equal(before, s.manager.BookmarkedSessionIDs())
	s.Empty(s.scheduler.Pending())

	fresh, err := New(&Config{UserID: "user-1", DocumentRepo: s.store, Sessions: s.sessions})
	s.Require().NoError(err)
	s.Require().NoError(fresh.Load(s.ctx))
	s.Equal(0, fresh.Count())
}

func (s *ManagerTestSuite) TestLoadMirrorsStoredBookmarks() {
	a := s.createSession("A", time.Hour)
	b := s.createSession("B", 2*time.Hour)
	_, err := s.manager.ToggleBookmark(s.ctx, &ToggleBookmarkInput{SessionID: a.ID})
	s.Require().NoError(err)
	_, err = s.manager.ToggleBookmark(s.ctx, &ToggleBookmarkInput{SessionID: b.ID})
	s.Require().NoError(err)

	other, err := New(&Config{UserID: "user-2", DocumentRepo: s.store, Sessions: s.sessions})
	s.Require().NoError(err)
	s.Require().NoError(other.Load(s.ctx))
	s.Equal(0, other.Count())

	fresh, err := New(&Config{UserID: "user-1", DocumentRepo: s.store, Sessions: s.sessions})
	s.Require().NoError(err)
	s.False(fresh.IsBookmarked(a.ID))
	s.Require().NoError(fresh.Load(s.ctx))
	s.ElementsMatch([]string{a.ID, b.ID}, fresh.BookmarkedSessionIDs())
	s.Equal(2, fresh.Count())
}

func (s *ManagerTestSuite) TestBookmarkedSessionsDataDropsUnresolved() {
	kept := s.createSession("Kept", time.Hour)
	gone := s.createSession("Gone", 2*time.Hour)
	for _, id := range []string{kept.ID, gone.ID} {
		_, err := s.manager.ToggleBookmark(s.ctx, &ToggleBookmarkInput{SessionID: id})
		s.Require().NoError(err)
	}
	s.Require().NoError(s.sessions.DeleteSession(s.ctx, &session.DeleteSessionInput{SessionID: gone.ID}))

	sessions, err := s.manager.BookmarkedSessionsData(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(sessions, 1)
	s.Equal("Kept", sessions[0].Title)
}

func (s *ManagerTestSuite) TestClearAllBookmarks() {
	a := s.createSession("A", time.Hour)
	b := s.createSession("B", 2*time.Hour)
	for _, id := range []string{a.ID, b.ID} {
		_, err := s.manager.ToggleBookmark(s.ctx, &ToggleBookmarkInput{SessionID: id})
		s.Require().NoError(err)
	}
	s.Len(s.scheduler.Pending(), 6)

	s.Require().NoError(s.manager.ClearAllBookmarks(s.ctx))

	s.Equal(0, s.manager.Count())
	s.Empty(s.scheduler.Pending())

	sessions, err := s.manager.BookmarkedSessionsData(s.ctx)
	s.Require().NoError(err)
	s.Empty(sessions)
}

func (s *ManagerTestSuite) TestUpdateBookmark() {
	sess := s.createSession("Notes", time.Hour)

	notes := "bring laptop"
	_, err := s.manager.UpdateBookmark(s.ctx, &UpdateBookmarkInput{SessionID: sess.ID, Notes: &notes})
	s.ErrorIs(err, ErrBookmarkNotFound)

	_, err = s.manager.ToggleBookmark(s.ctx, &ToggleBookmarkInput{SessionID: sess.ID})
	s.Require().NoError(err)

	lead := 10
	updated, err := s.manager.UpdateBookmark(s.ctx, &UpdateBookmarkInput{SessionID: sess.ID, Notes: &notes, ReminderTime: &lead})
	s.Require().NoError(err)
	s.Equal("bring laptop", updated.Notes)
	s.Equal(10, updated.ReminderTime)
	s.Equal("user-1", updated.UserID)
}

func (s *ManagerTestSuite) TestNewBookmarkDefaultsReminderTime() {
	sess := s.createSession("Defaults", time.Hour)
	_, err := s.manager.ToggleBookmark(s.ctx, &ToggleBookmarkInput{SessionID: sess.ID})
	s.Require().NoError(err)

	stored, err := s.manager.findStored(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.Equal(models.DefaultBookmarkReminderMinutes, stored.ReminderTime)
}

type ManagerFailureTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *docmocks.MockRepository
	mockSessions *sessionmocks.MockService
	manager      *manager
	ctx          context.Context
}

func (s *ManagerFailureTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = docmocks.NewMockRepository(s.ctrl)
	s.mockSessions = sessionmocks.NewMockService(s.ctrl)
	s.ctx = context.Background()

	m, err := New(&Config{
		UserID:       "user-1",
		DocumentRepo: s.mockRepo,
		Sessions:     s.mockSessions,
	})
	s.Require().NoError(err)
	s.manager = m
}

func (s *ManagerFailureTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestManagerFailureTestSuite(t *testing.T) {
	suite.Run(t, new(ManagerFailureTestSuite))
}

func (s *ManagerFailureTestSuite) TestListFailureLeavesStateUnchanged() {
	s.mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	out, err := s.manager.ToggleBookmark(s.ctx, &ToggleBookmarkInput{SessionID: "session-1"})

	s.Nil(out)
	s.ErrorIs(err, ErrBackendUnavailable)
	s.False(s.manager.IsBookmarked("session-1"))
}

func (s *ManagerFailureTestSuite) TestCreateFailureLeavesStateUnchanged() {
	s.mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(&document.ListOutput{}, nil)
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := s.manager.ToggleBookmark(s.ctx, &ToggleBookmarkInput{SessionID: "session-1"})

	s.ErrorIs(err, ErrBackendUnavailable)
	s.Equal(0, s.manager.Count())
}

func (s *ManagerFailureTestSuite) TestDeleteFailureKeepsBookmark() {
	s.manager.bookmarks["session-1"] = struct{}{}

	s.mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(&document.ListOutput{
		Documents: []*models.Document{{
			ID:         "doc-1",
			Collection: document.CollectionBookmarks,
			Data:       []byte(`{"userId":"user-1","sessionId":"session-1"}`),
		}},
		Total: 1,
	}, nil)
	s.mockRepo.EXPECT().Delete(gomock.Any(), &document.DeleteInput{
		Collection: document.CollectionBookmarks,
		ID:         "doc-1",
	}).Return(errors.New("timeout"))

	_, err := s.manager.ToggleBookmark(s.ctx, &ToggleBookmarkInput{SessionID: "session-1"})

	s.ErrorIs(err, ErrBackendUnavailable)
	s.True(s.manager.IsBookmarked("session-1"))
}

func (s *ManagerFailureTestSuite) TestEmptySessionID() {
	_, err := s.manager.ToggleBookmark(s.ctx, &ToggleBookmarkInput{})
	s.ErrorIs(err, ErrEmptySessionID)
}

func TestToggleCancelsScheduledReminders(t *testing.T) {
	ctrl := gomock.NewController(t)
	reminders := remindermocks.NewMockService(ctrl)
	ctx := context.Background()

	m, err := New(&Config{
		UserID:       "user-1",
		DocumentRepo: testfixtures.NewStore(t),
		Sessions:     sessionmocks.NewMockService(ctrl),
		Reminders:    reminders,
		Logger:       zaptest.NewLogger(t),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	start := testfixtures.ReferenceTime.Add(2 * time.Hour)
	reminders.EXPECT().
		ScheduleSessionReminders(gomock.Any(), &reminder.ScheduleSessionRemindersInput{
			UserID:       "user-1",
			SessionID:    "session-1",
			SessionTitle: "Keynote",
			StartTime:    start,
			LeadTimes:    []int{30, 15, 5},
		}).
		Return(&reminder.ScheduleSessionRemindersOutput{Scheduled: []reminder.ScheduledReminder{
			{LeadMinutes: 30, Handle: "h-30"},
			{LeadMinutes: 15, Handle: "h-15"},
		}}, nil)

	added, err := m.ToggleBookmark(ctx, &ToggleBookmarkInput{SessionID: "session-1", SessionTitle: "Keynote", StartTime: start})
	if err != nil || !added.Bookmarked {
		t.Fatalf("add = %+v, %v", added, err)
	}

	reminders.EXPECT().
		CancelReminders(gomock.Any(), &reminder.CancelRemindersInput{Handles: []scheduler.Handle{"h-30", "h-15"}}).
		Return(errors.New("scheduler stopped"))

	removed, err := m.ToggleBookmark(ctx, &ToggleBookmarkInput{SessionID: "session-1"})
	if err != nil {
		t.Fatalf("remove error = %v", err)
	}
	if removed.Bookmarked || removed.CancelledReminders != 2 {
		t.Errorf("remove = %+v, want unbookmarked with 2 cancelled", removed)
	}
}

func TestReminderFailureKeepsBookmark(t *testing.T) {
	ctrl := gomock.NewController(t)
	reminders := remindermocks.NewMockService(ctrl)

	m, err := New(&Config{
		UserID:       "user-1",
		DocumentRepo: testfixtures.NewStore(t),
		Sessions:     sessionmocks.NewMockService(ctrl),
		Reminders:    reminders,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	reminders.EXPECT().ScheduleSessionReminders(gomock.Any(), gomock.Any()).Return(nil, errors.New("scheduler stopped"))

	out, err := m.ToggleBookmark(context.Background(), &ToggleBookmarkInput{
		SessionID:    "session-1",
		SessionTitle: "Keynote",
		StartTime:    testfixtures.ReferenceTime.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("ToggleBookmark() error = %v", err)
	}
	if !out.Bookmarked || out.Reminders != nil {
		t.Errorf("out = %+v, want bookmarked without reminders", out)
	}
	if !m.IsBookmarked("session-1") {
		t.Error("bookmark should be kept when reminders fail")
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil); err != ErrNilConfig {
		t.Errorf("New(nil) = %v, want ErrNilConfig", err)
	}
	if _, err := New(&Config{}); err != ErrEmptyUserID {
		t.Errorf("New(empty) = %v, want ErrEmptyUserID", err)
	}
	if _, err := New(&Config{UserID: "u"}); err != ErrNilDocumentRepo {
		t.Errorf("New(no repo) = %v, want ErrNilDocumentRepo", err)
	}
}
