// Package agenda reads conference agenda files and imports their sessions.
package agenda

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/KirkDiggler/agendabot/internal/logging"
	"github.com/KirkDiggler/agendabot/internal/models"
	"github.com/KirkDiggler/agendabot/internal/services/session"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

// ErrInvalidAgenda is returned for agenda files that do not describe sessions
var ErrInvalidAgenda = errors.New("invalid agenda")

// File is a parsed agenda
type File struct {
	EventID  string
	Sessions []*models.Session
}

type entry struct {
	ID          string   `koanf:"id"`
	Title       string   `koanf:"title"`
	Description string   `koanf:"description"`
	Type        string   `koanf:"type"`
	Track       string   `koanf:"track"`
	Start       string   `koanf:"start"`
	End         string   `koanf:"end"`
	Room        string   `koanf:"room"`
	Floor       string   `koanf:"floor"`
	Speakers    []string `koanf:"speakers"`
	Capacity    int      `koanf:"capacity"`
	Tags        []string `koanf:"tags"`
	Featured    bool     `koanf:"featured"`
}

// Load reads and parses the agenda at path. A missing event falls back to defaultEventID.
func Load(path, defaultEventID string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read agenda: %w", err)
	}
	return Parse(content, defaultEventID)
}

// Parse decodes a YAML agenda. Times are quoted RFC 3339 strings.
func Parse(content []byte, defaultEventID string) (*File, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAgenda, err)
	}

	var entries []entry
	if err := k.Unmarshal("sessions", &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAgenda, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no sessions", ErrInvalidAgenda)
	}

	file := &File{EventID: k.String("event")}
	if file.EventID == "" {
		file.EventID = defaultEventID
	}

	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		s, err := e.session(file.EventID)
		if err != nil {
			return nil, fmt.Errorf("%w: session %d: %v", ErrInvalidAgenda, i+1, err)
		}
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate session id %q", ErrInvalidAgenda, s.ID)
		}
		seen[s.ID] = struct{}{}
		file.Sessions = append(file.Sessions, s)
	}
	return file, nil
}

func (e *entry) session(eventID string) (*models.Session, error) {
	if strings.TrimSpace(e.ID) == "" {
		return nil, errors.New("id is required")
	}
	if strings.TrimSpace(e.Title) == "" {
		return nil, errors.New("title is required")
	}

	start, err := time.Parse(time.RFC3339, e.Start)
	if err != nil {
		return nil, fmt.Errorf("bad start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, e.End)
	if err != nil {
		return nil, fmt.Errorf("bad end: %w", err)
	}
	if end.Before(start) {
		return nil, errors.New("ends before it starts")
	}

	sessionType := models.SessionType(e.Type)
	if sessionType == "" {
		sessionType = models.SessionTypeBreakout
	}

	return &models.Session{
		Meta:        models.Meta{ID: e.ID},
		EventID:     eventID,
		Title:       e.Title,
		Description: e.Description,
		Type:        sessionType,
		Track:       e.Track,
		StartTime:   start.UTC(),
		EndTime:     end.UTC(),
		Room:        e.Room,
		Floor:       e.Floor,
		SpeakerIDs:  e.Speakers,
		Capacity:    e.Capacity,
		Tags:        e.Tags,
		IsFeatured:  e.Featured,
		Status:      models.SessionStatusScheduled,
	}, nil
}

// ImportResult reports what Import did
type ImportResult struct {
	Created []string
	Updated []string
}

// Import creates the file's sessions, updating schedule details of ones that already exist
func Import(ctx context.Context, sessions session.Service, file *File, logger *zap.Logger) (*ImportResult, error) {
	if sessions == nil {
		return nil, errors.New("session service cannot be nil")
	}
	if file == nil {
		return nil, fmt.Errorf("%w: nil file", ErrInvalidAgenda)
	}
	logger = logging.OrNop(logger)

	result := &ImportResult{}
	for _, s := range file.Sessions {
		_, err := sessions.GetSession(ctx, &session.GetSessionInput{SessionID: s.ID})
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			if _, err := sessions.CreateSession(ctx, &session.CreateSessionInput{Session: s}); err != nil {
				return result, fmt.Errorf("failed to create session %s: %w", s.ID, err)
			}
			result.Created = append(result.Created, s.ID)
		case err != nil:
			return result, fmt.Errorf("failed to look up session %s: %w", s.ID, err)
		default:
			if _, err := sessions.UpdateSession(ctx, &session.UpdateSessionInput{
				SessionID:   s.ID,
				Title:       &s.Title,
				Description: &s.Description,
				StartTime:   &s.StartTime,
				EndTime:     &s.EndTime,
				Room:        &s.Room,
				IsFeatured:  &s.IsFeatured,
			}); err != nil {
				return result, fmt.Errorf("failed to update session %s: %w", s.ID, err)
			}
			result.Updated = append(result.Updated, s.ID)
		}
	}

	logger.Info("agenda imported",
		zap.String("event_id", file.EventID),
		zap.Int("created", len(result.Created)),
		zap.Int("updated", len(result.Updated)))
	return result, nil
}
