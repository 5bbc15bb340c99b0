// Package httpapi serves the health, metrics and check-in QR endpoints.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/KirkDiggler/agendabot/internal/common/clock"
	"github.com/KirkDiggler/agendabot/internal/logging"
	"github.com/KirkDiggler/agendabot/internal/qrcode"
	"github.com/KirkDiggler/agendabot/internal/services/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	maxQRSize    = 1024
	pingTimeout  = 2 * time.Second
	statusOK     = "ok"
	statusFailed = "unavailable"
)

var (
	ErrNilConfig         = errors.New("config cannot be nil")
	ErrNilSessionService = errors.New("session service cannot be nil")
	ErrNilGatherer       = errors.New("metrics gatherer cannot be nil")
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// Config holds the server dependencies.
type Config struct {
	Addr     string
	Sessions session.Service
	Gatherer prometheus.Gatherer

	// Store is checked by /healthz; nil always reports healthy
	Store Pinger

	// EventID is embedded in QR payloads of sessions without one
	EventID string
	Clock   clock.Clock
	Logger  *zap.Logger
}

// Server is the HTTP surface of the bot.
type Server struct {
	echo     *echo.Echo
	addr     string
	sessions session.Service
	store    Pinger
	eventID  string
	clock    clock.Clock
	logger   *zap.Logger
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store,omitempty"`
}

// New creates the server and registers its routes.
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Sessions == nil {
		return nil, ErrNilSessionService
	}
	if cfg.Gatherer == nil {
		return nil, ErrNilGatherer
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:     e,
		addr:     cfg.Addr,
		sessions: cfg.Sessions,
		store:    cfg.Store,
		eventID:  cfg.EventID,
		clock:    c,
		logger:   logging.OrNop(cfg.Logger),
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(s.logRequests)

	e.GET("/healthz", s.handleHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	e.GET("/sessions/:id/qr.png", s.handleSessionQR)

	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("starting http server", zap.String("addr", s.addr))
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) logRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		s.logger.Debug("http request",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Int("status", c.Response().Status),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		)
		return err
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	if s.store == nil {
		return c.JSON(http.StatusOK, HealthResponse{Status: statusOK})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		s.logger.Warn("health check failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: statusFailed, Store: statusFailed})
	}
	return c.JSON(http.StatusOK, HealthResponse{Status: statusOK, Store: statusOK})
}

// handleSessionQR renders the check-in code of a session. The optional size
// query parameter sets the PNG edge in pixels.
func (s *Server) handleSessionQR(c echo.Context) error {
	size := qrcode.DefaultSize
	if raw := c.QueryParam("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxQRSize {
			return echo.NewHTTPError(http.StatusBadRequest, "size must be between 1 and 1024")
		}
		size = n
	}

	sess, err := s.sessions.GetSession(c.Request().Context(), &session.GetSessionInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "session not found")
		}
		s.logger.Error("failed to load session for QR code",
			zap.String("session_id", c.Param("id")),
			zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load session")
	}

	eventID := sess.EventID
	if eventID == "" {
		eventID = s.eventID
	}

	png, err := qrcode.PNG(qrcode.NewPayload(sess.ID, eventID, s.clock.Now()), size)
	if err != nil {
		s.logger.Error("failed to render QR code", zap.String("session_id", sess.ID), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render QR code")
	}
	return c.Blob(http.StatusOK, "image/png", png)
}
