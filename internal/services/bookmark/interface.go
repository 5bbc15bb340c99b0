package bookmark

import (
	"context"

	"github.com/KirkDiggler/agendabot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_manager.go github.com/KirkDiggler/agendabot/internal/services/bookmark Manager,Provider

// Manager owns one user's bookmark set and the reminders scheduled for it
type Manager interface {
	// Load replaces the in-memory mirror with the stored bookmarks
	Load(ctx context.Context) error

	// ToggleBookmark adds the session when absent and removes it when present
	ToggleBookmark(ctx context.Context, input *ToggleBookmarkInput) (*ToggleBookmarkOutput, error)

	// IsBookmarked reports membership from the in-memory mirror
	IsBookmarked(sessionID string) bool

	// BookmarkedSessionIDs returns the mirrored session IDs in sorted order
	BookmarkedSessionIDs() []string

	// BookmarkedSessionsData resolves stored bookmarks to sessions, dropping any that fail to resolve
	BookmarkedSessionsData(ctx context.Context) ([]*models.Session, error)

	// ClearAllBookmarks deletes every bookmark of the user
	ClearAllBookmarks(ctx context.Context) error

	UpdateBookmark(ctx context.Context, input *UpdateBookmarkInput) (*models.Bookmark, error)

	Count() int
}

// Provider hands out one loaded Manager per user
type Provider interface {
	For(ctx context.Context, userID string) (Manager, error)
}
