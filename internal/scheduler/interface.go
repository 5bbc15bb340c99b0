package scheduler

import (
	"context"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_scheduler.go github.com/KirkDiggler/agendabot/internal/scheduler Scheduler,Deliverer

// Scheduler registers one-shot notifications for a future time
type Scheduler interface {
	// ScheduleAt registers payload to fire at fireAt and returns its handle
	ScheduleAt(ctx context.Context, fireAt time.Time, payload *Payload) (Handle, error)

	// Cancel unregisters a pending notification
	Cancel(ctx context.Context, handle Handle) error
}

// Deliverer receives payloads when they fire
type Deliverer interface {
	Deliver(ctx context.Context, payload *Payload) error
}

// DelivererFunc adapts a function to Deliverer
type DelivererFunc func(ctx context.Context, payload *Payload) error

func (f DelivererFunc) Deliver(ctx context.Context, payload *Payload) error {
	return f(ctx, payload)
}
