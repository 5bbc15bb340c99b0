package realtime

import (
	"encoding/json"
	"sync"

	"github.com/KirkDiggler/agendabot/internal/models"
	"go.uber.org/zap"
)

const defaultBufferSize = 64

// pump decodes raw transport messages into change events until stopped.
// Only run closes events.
type pump struct {
	events chan *models.ChangeEvent
	done   chan struct{}
	once   sync.Once
	logger *zap.Logger
}

func newPump(bufferSize int, logger *zap.Logger) *pump {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &pump{
		events: make(chan *models.ChangeEvent, bufferSize),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// run reads payloads from raw until raw closes or stop is called, then closes events
func (p *pump) run(raw <-chan []byte) {
	defer close(p.events)

	for {
		select {
		case <-p.done:
			return
		case payload, ok := <-raw:
			if !ok {
				return
			}

			var event models.ChangeEvent
			if err := json.Unmarshal(payload, &event); err != nil {
				p.logger.Warn("dropping undecodable change event", zap.Error(err))
				continue
			}

			select {
			case p.events <- &event:
			case <-p.done:
				return
			}
		}
	}
}

func (p *pump) stop() {
	p.once.Do(func() { close(p.done) })
}
