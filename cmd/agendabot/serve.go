package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/agendabot/internal/common/clock"
	"github.com/KirkDiggler/agendabot/internal/common/uuid"
	"github.com/KirkDiggler/agendabot/internal/config"
	"github.com/KirkDiggler/agendabot/internal/handlers/discord"
	"github.com/KirkDiggler/agendabot/internal/httpapi"
	"github.com/KirkDiggler/agendabot/internal/metrics"
	"github.com/KirkDiggler/agendabot/internal/repositories/kv"
	"github.com/KirkDiggler/agendabot/internal/scheduler"
	"github.com/KirkDiggler/agendabot/internal/services/bookmark"
	"github.com/KirkDiggler/agendabot/internal/services/checkin"
	"github.com/KirkDiggler/agendabot/internal/services/connection"
	"github.com/KirkDiggler/agendabot/internal/services/notification"
	"github.com/KirkDiggler/agendabot/internal/services/poll"
	"github.com/KirkDiggler/agendabot/internal/services/question"
	"github.com/KirkDiggler/agendabot/internal/services/reminder"
	"github.com/KirkDiggler/agendabot/internal/services/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// serveCmd runs the bot and its HTTP listener
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Discord bot",
	Long: `Run the Discord bot together with the HTTP listener serving /healthz,
/metrics and session check-in QR codes.

Requires DISCORD_TOKEN and DISCORD_APPLICATION_ID. Set NATS_ENABLED=true to
carry change events over NATS instead of Redis pub/sub.

Examples:
  # Run with a config file
  agendabot serve --config agendabot.yaml

  # Register commands on one server while developing
  DISCORD_GUILD_ID=1234 agendabot serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe handles the serve command
func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	if err := cfg.RequireDiscord(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clk := clock.New()
	b, err := openBackend(ctx, cfg, clk, logger)
	if err != nil {
		return err
	}
	defer b.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	bot, err := discord.New(&discord.Config{
		Token:         cfg.Discord.Token.Value(),
		ApplicationID: cfg.Discord.ApplicationID,
		GuildID:       cfg.Discord.GuildID,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	app, err := newApp(cfg, b, bot.Messenger(), clk, logger, m)
	if err != nil {
		return err
	}
	defer app.scheduler.Stop()
	defer app.live.Close()

	for _, c := range app.commands {
		if err := bot.AddCommand(c); err != nil {
			return err
		}
	}

	srv, err := httpapi.New(&httpapi.Config{
		Addr:     cfg.HTTP.Addr,
		Sessions: app.sessions,
		Gatherer: registry,
		Store:    b,
		EventID:  cfg.Event.ID,
		Clock:    clk,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create HTTP server: %w", err)
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}
	logger.Info("agendabot started",
		zap.String("http_addr", cfg.HTTP.Addr),
		zap.String("event_id", cfg.Event.ID),
		zap.Int("commands", len(app.commands)))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("HTTP shutdown failed", zap.Error(err))
		}
		return nil
	})

	err = g.Wait()

	if stopErr := bot.Stop(); stopErr != nil {
		logger.Warn("failed to stop Discord bot", zap.Error(stopErr))
	}
	logger.Info("agendabot has been shut down",
		zap.Int("pending_reminders", len(app.scheduler.Pending())))
	return err
}

// app is the service graph behind the bot
type app struct {
	sessions  session.Service
	scheduler *scheduler.TimerScheduler
	live      *discord.LiveBoard
	commands  []discord.CommandHandler
}

// newApp wires the services and Discord commands over backend b
func newApp(cfg *config.Config, b *backend, messenger discord.Messenger, clk clock.Clock, logger *zap.Logger, m *metrics.Metrics) (*app, error) {
	settingsStore, err := kv.NewRedis(&kv.Config{RedisClient: b.redis})
	if err != nil {
		return nil, fmt.Errorf("failed to create settings store: %w", err)
	}

	sessions, err := session.New(&session.Config{DocumentRepo: b.documents, Clock: clk, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}

	notifications, err := notification.New(&notification.Config{
		DocumentRepo: b.documents,
		KVRepo:       settingsStore,
		Clock:        clk,
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %w", err)
	}

	deliverer, err := discord.NewReminderDeliverer(messenger, notifications, logger)
	if err != nil {
		return nil, err
	}

	sched, err := scheduler.New(&scheduler.Config{
		Deliverer:     deliverer,
		Clock:         clk,
		UUIDGenerator: uuid.New(),
		Logger:        logger,
		Metrics:       m,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	reminders, err := reminder.New(&reminder.Config{
		Scheduler: sched,
		Clock:     clk,
		LeadTimes: cfg.Reminders.LeadTimes,
		Logger:    logger,
		Metrics:   m,
	})
	if err != nil {
		sched.Stop()
		return nil, fmt.Errorf("failed to create reminder service: %w", err)
	}

	svc, err := newServices(b, sessions, notifications, reminders, clk, logger, m)
	if err != nil {
		sched.Stop()
		return nil, err
	}

	live, err := discord.NewLiveBoard(&discord.LiveBoardConfig{
		Feed:      b.feed,
		Messenger: messenger,
		Logger:    logger,
		Metrics:   m,
	})
	if err != nil {
		sched.Stop()
		return nil, err
	}

	return &app{
		sessions:  sessions,
		scheduler: sched,
		live:      live,
		commands: []discord.CommandHandler{
			discord.NewAgendaCommand(sessions, svc.bookmarks, cfg.Event.ID),
			discord.NewPollCommand(svc.polls, live),
			discord.NewQACommand(svc.questions, sessions, live),
			discord.NewCheckInCommand(svc.checkIns, sessions),
			discord.NewConnectCommand(svc.connections),
			discord.NewInboxCommand(notifications, clk),
		},
	}, nil
}

type services struct {
	bookmarks   bookmark.Provider
	polls       poll.Service
	questions   question.Service
	checkIns    checkin.Service
	connections connection.Service
}

func newServices(b *backend, sessions session.Service, notifications notification.Service, reminders reminder.Service, clk clock.Clock, logger *zap.Logger, m *metrics.Metrics) (*services, error) {
	bookmarks, err := bookmark.NewProvider(&bookmark.ProviderConfig{
		DocumentRepo: b.documents,
		Sessions:     sessions,
		Settings:     notifications,
		Reminders:    reminders,
		Logger:       logger,
		Metrics:      m,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bookmark provider: %w", err)
	}

	polls, err := poll.New(&poll.Config{DocumentRepo: b.documents, Clock: clk, Logger: logger, Metrics: m})
	if err != nil {
		return nil, fmt.Errorf("failed to create poll service: %w", err)
	}

	questions, err := question.New(&question.Config{DocumentRepo: b.documents, Clock: clk, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("failed to create question service: %w", err)
	}

	checkIns, err := checkin.New(&checkin.Config{
		DocumentRepo: b.documents,
		Sessions:     sessions,
		Clock:        clk,
		Logger:       logger,
		Metrics:      m,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create check-in service: %w", err)
	}

	connections, err := connection.New(&connection.Config{
		DocumentRepo:  b.documents,
		Notifications: notifications,
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create connection service: %w", err)
	}

	return &services{
		bookmarks:   bookmarks,
		polls:       polls,
		questions:   questions,
		checkIns:    checkIns,
		connections: connections,
	}, nil
}
