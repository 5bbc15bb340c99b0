package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KirkDiggler/agendabot/internal/httpapi"
	"github.com/KirkDiggler/agendabot/internal/metrics"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/services/session"
	sessionmocks "github.com/KirkDiggler/agendabot/internal/services/session/mocks"
	"github.com/KirkDiggler/agendabot/internal/testfixtures"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

type ServerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	sessions *sessionmocks.MockService
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	pingErr  error
	server   *httpapi.Server
}

func (s *ServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sessions = sessionmocks.NewMockService(s.ctrl)
	s.registry = prometheus.NewRegistry()
	s.metrics = metrics.New(s.registry)
	s.pingErr = nil

	var err error
	s.server, err = httpapi.New(&httpapi.Config{
		Addr:     ":0",
		Sessions: s.sessions,
		Gatherer: s.registry,
		Store: httpapi.PingFunc(func(context.Context) error {
			return s.pingErr
		}),
		EventID: "devcon",
		Clock:   testfixtures.NewClock(testfixtures.ReferenceTime),
		Logger:  zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)
}

func (s *ServerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServerTestSuite) get(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.server.Handler().ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) TestHealthy() {
	rec := s.get("/healthz")

	s.Equal(http.StatusOK, rec.Code)
	var resp httpapi.HealthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("ok", resp.Status)
	s.Equal("ok", resp.Store)
}

func (s *ServerTestSuite) TestStoreUnavailable() {
	s.pingErr = errors.New("connection refused")

	rec := s.get("/healthz")

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	var resp httpapi.HealthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("unavailable", resp.Status)
}

func (s *ServerTestSuite) TestMetricsExposed() {
	s.metrics.VoteSubmitted()
	s.metrics.BookmarkToggled("added")

	rec := s.get("/metrics")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "agendabot_votes_submitted_total 1")
	s.Contains(rec.Body.String(), `agendabot_bookmark_toggles_total{result="added"} 1`)
}

func (s *ServerTestSuite) TestSessionQR() {
	s.sessions.EXPECT().
		GetSession(gomock.Any(), &session.GetSessionInput{SessionID: "s1"}).
		Return(&models.Session{Meta: models.Meta{ID: "s1"}, Title: "Keynote"}, nil)

	rec := s.get("/sessions/s1/qr.png?size=128")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("image/png", rec.Header().Get("Content-Type"))
	s.True(bytes.HasPrefix(rec.Body.Bytes(), pngMagic))
}

func (s *ServerTestSuite) TestSessionQRNotFound() {
	s.sessions.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(nil, session.ErrSessionNotFound)

	rec := s.get("/sessions/missing/qr.png")

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestSessionQRStoreError() {
	s.sessions.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down"))

	rec := s.get("/sessions/s1/qr.png")

	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *ServerTestSuite) TestSessionQRBadSize() {
	for _, size := range []string{"0", "-4", "huge", "4096"} {
		rec := s.get("/sessions/s1/qr.png?size=" + size)
		s.Equal(http.StatusBadRequest, rec.Code, "size %s", size)
	}
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func TestNewValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := sessionmocks.NewMockService(ctrl)

	_, err := httpapi.New(nil)
	assert.ErrorIs(t, err, httpapi.ErrNilConfig)

	_, err = httpapi.New(&httpapi.Config{Gatherer: prometheus.NewRegistry()})
	assert.ErrorIs(t, err, httpapi.ErrNilSessionService)

	_, err = httpapi.New(&httpapi.Config{Sessions: sessions})
	assert.ErrorIs(t, err, httpapi.ErrNilGatherer)

	server, err := httpapi.New(&httpapi.Config{Sessions: sessions, Gatherer: prometheus.NewRegistry()})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
