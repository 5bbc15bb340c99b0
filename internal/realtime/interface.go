package realtime

import (
	"context"

	"github.com/KirkDiggler/agendabot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_realtime.go github.com/KirkDiggler/agendabot/internal/realtime Publisher,Feed,Subscription

// Publisher fans a committed change out to the collection and document channels
type Publisher interface {
	Publish(ctx context.Context, event *models.ChangeEvent) error
}

// Feed opens change-feed subscriptions
type Feed interface {
	// Subscribe starts delivering events published on channel.
	// The subscription is confirmed before Subscribe returns.
	Subscribe(ctx context.Context, channel string) (Subscription, error)
}

// Subscription is a live change-feed registration
type Subscription interface {
	// Events is closed after Unsubscribe
	Events() <-chan *models.ChangeEvent

	// Unsubscribe releases the subscription; it is safe to call more than once
	Unsubscribe() error
}
