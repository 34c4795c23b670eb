// Package stream broadcasts whole-collection snapshots to live
// dashboard views. The contract mirrors the original store wire format:
// every event carries the FULL collection, never a diff, so a consumer
// that misses an event loses nothing once the next one arrives, and
// independent collections update with no ordering guarantee between
// them.
package stream

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"
)

const subscriberBuffer = 16

// Hub fans collection snapshots out to subscribers.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan json.RawMessage]struct{}
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan json.RawMessage]struct{})}
}

// Subscribe registers a listener on a collection. The returned cancel
// function must be called when the listener goes away.
func (h *Hub) Subscribe(collection string) (<-chan json.RawMessage, func()) {
	ch := make(chan json.RawMessage, subscriberBuffer)

	h.mu.Lock()
	if h.subs[collection] == nil {
		h.subs[collection] = make(map[chan json.RawMessage]struct{})
	}
	h.subs[collection][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[collection]; ok {
			delete(set, ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish sends a full snapshot of a collection to every subscriber.
// A subscriber whose buffer is full skips this event; the next publish
// carries the complete state again, so nothing is lost.
func (h *Hub) Publish(collection string, snapshot interface{}) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		log.Error().Err(err).Str("collection", collection).Msg("stream: snapshot marshal failed")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[collection] {
		select {
		case ch <- payload:
		default:
		}
	}
}
