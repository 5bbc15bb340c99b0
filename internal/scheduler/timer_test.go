package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/agendabot/internal/common/clock/mocks"
	uuidmocks "github.com/KirkDiggler/agendabot/internal/common/uuid/mocks"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

type TimerSchedulerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mocks.MockClock
	delivered chan *Payload
	scheduler *TimerScheduler
	testNow   time.Time
}

func (s *TimerSchedulerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.ctrl)
	s.testNow = time.Date(2025, 4, 19, 9, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()

	s.delivered = make(chan *Payload, 8)

	scheduler, err := New(&Config{
		Deliverer: DelivererFunc(func(ctx context.Context, payload *Payload) error {
			s.delivered <- payload
			return nil
		}),
		Clock:  s.mockClock,
		Logger: zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)
	s.scheduler = scheduler
}

func (s *TimerSchedulerTestSuite) TearDownTest() {
	s.scheduler.Stop()
	s.ctrl.Finish()
}

func TestTimerSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(TimerSchedulerTestSuite))
}

func (s *TimerSchedulerTestSuite) payload() *Payload {
	return &Payload{
		Type:            models.NotificationTypeSessionReminder,
		UserID:          "user-1",
		SessionID:       "session-1",
		ReminderMinutes: 5,
		Title:           "Session Starting in 5 Minutes",
		Body:            "Opening Keynote",
	}
}

func (s *TimerSchedulerTestSuite) TestFiresAndDelivers() {
	handle, err := s.scheduler.ScheduleAt(context.Background(), s.testNow.Add(20*time.Millisecond), s.payload())
	s.Require().NoError(err)
	s.NotEmpty(handle)
	s.Equal([]Handle{handle}, s.scheduler.Pending())

	select {
	case payload := <-s.delivered:
		s.Equal("session-1", payload.SessionID)
		s.Equal(5, payload.ReminderMinutes)
	case <-time.After(2 * time.Second):
		s.Fail("notification never fired")
	}

	s.Eventually(func() bool {
		return len(s.scheduler.Pending()) == 0
	}, time.Second, 5*time.Millisecond)
}

func (s *TimerSchedulerTestSuite) TestRejectsPastFireTime() {
	_, err := s.scheduler.ScheduleAt(context.Background(), s.testNow, s.payload())
	s.ErrorIs(err, ErrFireTimeInPast)

	_, err = s.scheduler.ScheduleAt(context.Background(), s.testNow.Add(-time.Minute), s.payload())
	s.ErrorIs(err, ErrFireTimeInPast)

	s.Empty(s.scheduler.Pending())
}

func (s *TimerSchedulerTestSuite) TestCancelPreventsDelivery() {
	handle, err := s.scheduler.ScheduleAt(context.Background(), s.testNow.Add(50*time.Millisecond), s.payload())
	s.Require().NoError(err)

	s.Require().NoError(s.scheduler.Cancel(context.Background(), handle))
	s.Empty(s.scheduler.Pending())

	select {
	case payload := <-s.delivered:
		s.Failf("cancelled notification delivered", "%+v", payload)
	case <-time.After(150 * time.Millisecond):
	}

	s.ErrorIs(s.scheduler.Cancel(context.Background(), handle), ErrHandleNotFound)
}

func (s *TimerSchedulerTestSuite) TestStopRejectsNewSchedules() {
	_, err := s.scheduler.ScheduleAt(context.Background(), s.testNow.Add(time.Hour), s.payload())
	s.Require().NoError(err)

	s.scheduler.Stop()
	s.Empty(s.scheduler.Pending())

	_, err = s.scheduler.ScheduleAt(context.Background(), s.testNow.Add(time.Hour), s.payload())
	s.ErrorIs(err, ErrStopped)
}

func TestDeliveryFailureIsContained(t *testing.T) {
	attempted := make(chan struct{})
	scheduler, err := New(&Config{
		Deliverer: DelivererFunc(func(ctx context.Context, payload *Payload) error {
			close(attempted)
			return errors.New("dm channel closed")
		}),
	})
	if err != nil {
		t.Fatal(err)
	}
	defer scheduler.Stop()

	if _, err := scheduler.ScheduleAt(context.Background(), time.Now().Add(10*time.Millisecond), &Payload{SessionID: "s"}); err != nil {
		t.Fatal(err)
	}

	select {
	case <-attempted:
	case <-time.After(2 * time.Second):
		t.Fatal("delivery never attempted")
	}
}

func TestHandlesComeFromGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	ids := uuidmocks.NewMockGenerator(ctrl)
	gomock.InOrder(
		ids.EXPECT().NewID().Return("reminder-b"),
		ids.EXPECT().NewID().Return("reminder-a"),
	)

	scheduler, err := New(&Config{
		Deliverer:     DelivererFunc(func(context.Context, *Payload) error { return nil }),
		UUIDGenerator: ids,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer scheduler.Stop()

	fireAt := time.Now().Add(time.Hour)
	first, err := scheduler.ScheduleAt(context.Background(), fireAt, &Payload{SessionID: "s1"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := scheduler.ScheduleAt(context.Background(), fireAt, &Payload{SessionID: "s2"})
	if err != nil {
		t.Fatal(err)
	}

	if first != "reminder-b" || second != "reminder-a" {
		t.Errorf("handles = %q, %q", first, second)
	}
	if got := scheduler.Pending(); len(got) != 2 || got[0] != "reminder-a" {
		t.Errorf("Pending() = %v, want sorted handles", got)
	}
}
