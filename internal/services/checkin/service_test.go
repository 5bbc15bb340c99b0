package checkin

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/agendabot/internal/aggregate"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/qrcode"
	"github.com/KirkDiggler/agendabot/internal/repositories/document"
	"github.com/KirkDiggler/agendabot/internal/services/session"
	"github.com/KirkDiggler/agendabot/internal/testfixtures"
	"github.com/stretchr/testify/suite"
)

type CheckInServiceTestSuite struct {
	suite.Suite
	store    *testfixtures.Store
	clock    *testfixtures.Clock
	sessions session.Service
	service  Service
	ctx      context.Context
}

func (s *CheckInServiceTestSuite) SetupTest() {
	s.store = testfixtures.NewStore(s.T())
	s.clock = testfixtures.NewClock(testfixtures.ReferenceTime)

	sessions, err := session.New(&session.Config{DocumentRepo: s.store, Clock: s.clock})
	s.Require().NoError(err)
	s.sessions = sessions

	svc, err := New(&Config{
		DocumentRepo: s.store,
		Sessions:     sessions,
		Clock:        s.clock,
	})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func TestCheckInServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CheckInServiceTestSuite))
}

func (s *CheckInServiceTestSuite) checkIn(userID, sessionID string) *models.CheckIn {
	out, err := s.service.CheckIn(s.ctx, &CheckInInput{UserID: userID, SessionID: sessionID})
	s.Require().NoError(err)
	return out.CheckIn
}

func (s *CheckInServiceTestSuite) checkOutAfter(c *models.CheckIn, d time.Duration) *models.CheckIn {
	s.clock.Advance(d)
	out, err := s.service.CheckOut(s.ctx, &CheckOutInput{CheckInID: c.ID})
	s.Require().NoError(err)
	return out
}

func (s *CheckInServiceTestSuite) TestCheckInReturnsExistingOpenCheckIn() {
	first, err := s.service.CheckIn(s.ctx, &CheckInInput{UserID: "u1", SessionID: "s1", Method: models.CheckInMethodManual})
	s.Require().NoError(err)
	s.False(first.Existing)
	s.Equal(models.CheckInMethodManual, first.CheckIn.Method)
	s.True(first.CheckIn.IsOpen())

	s.clock.Advance(time.Minute)
	second, err := s.service.CheckIn(s.ctx, &CheckInInput{UserID: "u1", SessionID: "s1"})
	s.Require().NoError(err)
	s.True(second.Existing)
	s.Equal(first.CheckIn.ID, second.CheckIn.ID)

	all, err := s.service.SessionCheckIns(s.ctx, &SessionCheckInsInput{SessionID: "s1"})
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *CheckInServiceTestSuite) TestCheckInDefaultsAndValidation() {
	c := s.checkIn("u1", "s1")
	s.Equal(models.CheckInMethodQR, c.Method)
	s.True(c.CheckInTime.Equal(testfixtures.ReferenceTime))

	_, err := s.service.CheckIn(s.ctx, &CheckInInput{UserID: "u1", SessionID: "s1", Method: "teleport"})
	s.ErrorIs(err, ErrInvalidMethod)

	_, err = s.service.CheckIn(s.ctx, &CheckInInput{SessionID: "s1"})
	s.ErrorIs(err, ErrEmptyUserID)
}

func (s *CheckInServiceTestSuite) TestCheckInWithQR() {
	text, err := qrcode.Encode(qrcode.NewPayload("s1", "event-1", s.clock.Now()))
	s.Require().NoError(err)

	out, err := s.service.CheckInWithQR(s.ctx, &CheckInWithQRInput{UserID: "u1", Payload: text})
	s.Require().NoError(err)
	s.Equal("s1", out.CheckIn.SessionID)
	s.Equal(models.CheckInMethodQR, out.CheckIn.Method)

	_, err = s.service.CheckInWithQR(s.ctx, &CheckInWithQRInput{UserID: "u1", Payload: `{"type":"badge"}`})
	s.ErrorIs(err, qrcode.ErrInvalidPayload)
}

func (s *CheckInServiceTestSuite) TestCheckOutDuration() {
	c := s.checkIn("u1", "s1")
	done := s.checkOutAfter(c, 47*time.Minute)

	s.False(done.IsOpen())
	minutes, ok := aggregate.Duration(done)
	s.True(ok)
	s.Equal(47, minutes)
	s.Equal("47m", aggregate.FormatDuration(done))

	_, err := s.service.CheckOut(s.ctx, &CheckOutInput{CheckInID: c.ID})
	s.ErrorIs(err, ErrAlreadyCheckedOut)

	_, err = s.service.CheckOut(s.ctx, &CheckOutInput{CheckInID: "missing"})
	s.ErrorIs(err, ErrCheckInNotFound)
}

func (s *CheckInServiceTestSuite) TestCheckOutSession() {
	_, err := s.service.CheckOutSession(s.ctx, &SessionUserInput{UserID: "u1", SessionID: "s1"})
	s.ErrorIs(err, ErrNotCheckedIn)

	s.checkIn("u1", "s1")
	checked, err := s.service.IsCheckedIn(s.ctx, &SessionUserInput{UserID: "u1", SessionID: "s1"})
	s.Require().NoError(err)
	s.True(checked)

	_, err = s.service.CheckOutSession(s.ctx, &SessionUserInput{UserID: "u1", SessionID: "s1"})
	s.Require().NoError(err)

	checked, err = s.service.IsCheckedIn(s.ctx, &SessionUserInput{UserID: "u1", SessionID: "s1"})
	s.Require().NoError(err)
	s.False(checked)

	again := s.checkIn("u1", "s1")
	s.True(again.IsOpen())
}

func (s *CheckInServiceTestSuite) TestAttendanceCountsDistinctSessions() {
	s.checkOutAfter(s.checkIn("u1", "s1"), 30*time.Minute)
	s.clock.Advance(time.Minute)
	s.checkOutAfter(s.checkIn("u1", "s1"), 10*time.Minute)
	s.clock.Advance(time.Minute)
	s.checkOutAfter(s.checkIn("u1", "s2"), 10*time.Minute)
	s.clock.Advance(time.Minute)
	s.checkIn("u1", "s3")

	total, err := s.service.UserTotalAttendance(s.ctx, &UserCheckInsInput{UserID: "u1"})
	s.Require().NoError(err)
	s.Equal(2, total)

	history, err := s.service.AttendanceHistory(s.ctx, &UserCheckInsInput{UserID: "u1"})
	s.Require().NoError(err)
	s.Len(history, 3)
	s.Equal("s2", history[0].SessionID)

	all, err := s.service.UserCheckIns(s.ctx, &UserCheckInsInput{UserID: "u1"})
	s.Require().NoError(err)
	s.Len(all, 4)
	s.Equal("s3", all[0].SessionID)
}

func (s *CheckInServiceTestSuite) TestSessionAttendanceCountsDistinctUsers() {
	s.checkOutAfter(s.checkIn("u1", "s1"), time.Minute)
	s.checkIn("u1", "s1")
	s.checkIn("u2", "s1")
	s.checkIn("u3", "s2")

	count, err := s.service.SessionAttendanceCount(s.ctx, &SessionCheckInsInput{SessionID: "s1"})
	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *CheckInServiceTestSuite) TestCheckInsByMethod() {
	s.checkIn("u1", "s1")
	_, err := s.service.CheckIn(s.ctx, &CheckInInput{UserID: "u2", SessionID: "s1", Method: models.CheckInMethodNFC})
	s.Require().NoError(err)

	nfc, err := s.service.CheckInsByMethod(s.ctx, &CheckInsByMethodInput{SessionID: "s1", Method: models.CheckInMethodNFC})
	s.Require().NoError(err)
	s.Require().Len(nfc, 1)
	s.Equal("u2", nfc[0].UserID)
}

func (s *CheckInServiceTestSuite) TestSessionAttendance() {
	start := s.clock.Now()
	sess, err := s.sessions.CreateSession(s.ctx, &session.CreateSessionInput{Session: &models.Session{
		EventID: "event-1", Title: "Workshop", StartTime: start, EndTime: start.Add(time.Hour),
	}})
	s.Require().NoError(err)

	s.checkIn("u1", sess.ID)
	s.checkIn("u2", sess.ID)

	out, err := s.service.SessionAttendance(s.ctx, &SessionCheckInsInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal("Workshop", out.Session.Title)
	s.Len(out.CheckIns, 2)
	s.Equal(2, out.AttendeeCount)

	_, err = s.service.SessionAttendance(s.ctx, &SessionCheckInsInput{SessionID: "missing"})
	s.ErrorIs(err, session.ErrSessionNotFound)
}

func (s *CheckInServiceTestSuite) TestDeleteCheckIn() {
	c := s.checkIn("u1", "s1")

	s.Require().NoError(s.service.DeleteCheckIn(s.ctx, &CheckOutInput{CheckInID: c.ID}))
	s.ErrorIs(s.service.DeleteCheckIn(s.ctx, &CheckOutInput{CheckInID: c.ID}), ErrCheckInNotFound)
}

func (s *CheckInServiceTestSuite) TestParallelCheckInsOpenOnce() {
	const callers = 8

	var wg sync.WaitGroup
	outs := make([]*CheckInOutput, callers)
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outs[i], errs[i] = s.service.CheckIn(s.ctx, &CheckInInput{UserID: "u1", SessionID: "s1"})
		}(i)
	}
	wg.Wait()

	created := 0
	for i := range callers {
		if errs[i] != nil {
			s.True(errors.Is(errs[i], ErrCheckInInProgress), "unexpected error: %v", errs[i])
			continue
		}
		if !outs[i].Existing {
			created++
		}
	}
	s.Equal(1, created)

	all, err := s.service.SessionCheckIns(s.ctx, &SessionCheckInsInput{SessionID: "s1"})
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *CheckInServiceTestSuite) TestAbandonedClaimExpires() {
	_, err := s.store.Create(s.ctx, &document.CreateInput{
		Collection: document.CollectionCheckInLocks,
		ID:         openClaimID("u1", "s1"),
		Fields:     &openClaim{UserID: "u1", SessionID: "s1", ClaimedAt: s.clock.Now()},
	})
	s.Require().NoError(err)

	_, err = s.service.CheckIn(s.ctx, &CheckInInput{UserID: "u1", SessionID: "s1"})
	s.ErrorIs(err, ErrCheckInInProgress)

	s.clock.Advance(openClaimTTL + time.Second)
	out, err := s.service.CheckIn(s.ctx, &CheckInInput{UserID: "u1", SessionID: "s1"})
	s.Require().NoError(err)
	s.False(out.Existing)
	s.True(out.CheckIn.IsOpen())
}

func (s *CheckInServiceTestSuite) TestCheckInsTrackSessionAttendees() {
	start := s.clock.Now()
	sess, err := s.sessions.CreateSession(s.ctx, &session.CreateSessionInput{Session: &models.Session{
		EventID: "event-1", Title: "Keynote", StartTime: start, EndTime: start.Add(time.Hour),
	}})
	s.Require().NoError(err)

	attendees := func() int {
		got, err := s.sessions.GetSession(s.ctx, &session.GetSessionInput{SessionID: sess.ID})
		s.Require().NoError(err)
		return got.CurrentAttendees
	}

	first := s.checkIn("u1", sess.ID)
	second := s.checkIn("u2", sess.ID)
	s.Equal(2, attendees())

	s.checkIn("u1", sess.ID)
	s.Equal(2, attendees())

	s.checkOutAfter(first, 20*time.Minute)
	s.Equal(1, attendees())

	s.Require().NoError(s.service.DeleteCheckIn(s.ctx, &CheckOutInput{CheckInID: second.ID}))
	s.Equal(0, attendees())

	again := s.checkIn("u2", sess.ID)
	s.True(again.IsOpen())
	s.Equal(1, attendees())
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil); err != ErrNilConfig {
		t.Errorf("New(nil) = %v, want ErrNilConfig", err)
	}
	if _, err := New(&Config{}); err != ErrNilDocumentRepo {
		t.Errorf("New(empty) = %v, want ErrNilDocumentRepo", err)
	}
}
