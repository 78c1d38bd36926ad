package events

import (
	"log/slog"
	"sync"
)

type Handler func(payload any)

// Bus dispatches named events to handlers synchronously, in registration
// order.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   *slog.Logger
}

func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

func (b *Bus) On(name string, h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

// Emit runs every handler registered for name. Events without handlers are
// logged at debug level and dropped.
func (b *Bus) Emit(name string, payload any) {
	b.mu.RLock()
	hs := make([]Handler, len(b.handlers[name]))
	copy(hs, b.handlers[name])
	b.mu.RUnlock()

	if len(hs) == 0 {
		b.logger.Debug("event without listeners", "event", name)
		return
	}
	for _, h := range hs {
		h(payload)
	}
}

func (b *Bus) Listeners(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[name])
}
