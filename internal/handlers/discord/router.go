package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/agendabot/internal/logging"
	"go.uber.org/zap"
)

// Router maps command names to handlers and turns handler errors into replies
type Router struct {
	handlers map[string]CommandHandler
	order    []CommandHandler
	logger   *zap.Logger
}

// NewRouter creates an empty router
func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		handlers: make(map[string]CommandHandler),
		logger:   logging.OrNop(logger),
	}
}

// Add registers cmd; names must be unique
func (r *Router) Add(cmd CommandHandler) error {
	if cmd == nil {
		return errors.New("command cannot be nil")
	}
	if _, ok := r.handlers[cmd.GetName()]; ok {
		return fmt.Errorf("command %s already registered", cmd.GetName())
	}
	r.handlers[cmd.GetName()] = cmd
	r.order = append(r.order, cmd)
	return nil
}

// Commands returns the handlers in registration order
func (r *Router) Commands() []CommandHandler {
	out := make([]CommandHandler, len(r.order))
	copy(out, r.order)
	return out
}

// Dispatch runs the named command. It returns nil for unknown commands.
func (r *Router) Dispatch(ctx context.Context, name string, req *Request) *Response {
	h, ok := r.handlers[name]
	if !ok {
		r.logger.Warn("interaction for unknown command", zap.String("command", name))
		return nil
	}

	resp, err := h.Handle(ctx, req)
	if err != nil {
		fields := []zap.Field{
			zap.String("command", name),
			zap.String("subcommand", req.Subcommand),
			zap.String("user_id", req.UserID),
			zap.Error(err),
		}
		if userMessage(err) == genericFailure {
			r.logger.Error("command failed", fields...)
		} else {
			r.logger.Debug("command rejected", fields...)
		}
		return ErrorResponse(userMessage(err))
	}
	if resp == nil {
		return EphemeralMessage("Done.")
	}
	return resp
}
