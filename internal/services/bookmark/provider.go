package bookmark

import (
	"context"
	"sync"

	"github.com/KirkDiggler/agendabot/internal/logging"
)

// provider keeps one loaded manager per user
type provider struct {
	cfg *ProviderConfig

	mu       sync.Mutex
	managers map[string]*manager
}

// NewProvider creates a Provider; managers are created and loaded on first use
func NewProvider(cfg *ProviderConfig) (*provider, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DocumentRepo == nil {
		return nil, ErrNilDocumentRepo
	}
	if cfg.Sessions == nil {
		return nil, ErrNilSessionService
	}

	return &provider{
		cfg:      cfg,
		managers: make(map[string]*manager),
	}, nil
}

// For returns the user's manager, loading it from the store the first time
func (p *provider) For(ctx context.Context, userID string) (Manager, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if m, ok := p.managers[userID]; ok {
		return m, nil
	}

	m, err := New(&Config{
		UserID:       userID,
		DocumentRepo: p.cfg.DocumentRepo,
		Sessions:     p.cfg.Sessions,
		Settings:     p.cfg.Settings,
		Reminders:    p.cfg.Reminders,
		Logger:       logging.OrNop(p.cfg.Logger),
		Metrics:      p.cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	if err := m.Load(ctx); err != nil {
		return nil, err
	}

	p.managers[userID] = m
	return m, nil
}
