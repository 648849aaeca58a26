// Package stream pushes menu summaries to WebSocket subscribers after every mutation.
package stream

import (
	"encoding/json"
	"sync"

	"plateperfect/internal/model"

	"github.com/rs/zerolog"
)

// Publisher receives the menu state after each mutation.
type Publisher interface {
	Publish(summary model.MenuSummary)
}

// Hub fans menu summaries out to subscribers.
type Hub struct {
	mu          sync.Mutex
	subscribers map[*subscriber]struct{}
	bufferSize  int
	logger      zerolog.Logger
}

type subscriber struct {
	send chan []byte
}

// NewHub creates a hub whose subscribers buffer up to bufferSize messages.
func NewHub(bufferSize int, logger zerolog.Logger) *Hub {
	if bufferSize < 1 {
		bufferSize = 16
	}
	return &Hub{
		subscribers: make(map[*subscriber]struct{}),
		bufferSize:  bufferSize,
		logger:      logger.With().Str("component", "menu-stream").Logger(),
	}
}

// Subscribe registers a new subscriber. The returned cancel func must be called once the
// subscriber is done; it closes the channel.
func (h *Hub) Subscribe() (<-chan []byte, func()) {
	sub := &subscriber{send: make(chan []byte, h.bufferSize)}

	h.mu.Lock()
	h.subscribers[sub] = struct{}{}
	count := len(h.subscribers)
	h.mu.Unlock()

	h.logger.Debug().Int("subscribers", count).Msg("subscriber added")

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers, sub)
			close(sub.send)
			h.mu.Unlock()
		})
	}
	return sub.send, cancel
}

// Subscribers returns the number of active subscribers.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Publish sends summary to every subscriber. Full buffers drop the message.
func (h *Hub) Publish(summary model.MenuSummary) {
	data, err := json.Marshal(summary)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to marshal menu summary")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subscribers {
		select {
		case sub.send <- data:
		default:
			h.logger.Warn().Msg("subscriber buffer full, dropping menu update")
		}
	}
}
