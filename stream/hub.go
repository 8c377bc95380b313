// Package stream fans order lifecycle events out to live subscribers,
// e.g. the back-office SSE feed that replaces client-side polling.
package stream

import (
	"sync"

	"chorsu-feast-api/models"
)

const (
	EventOrderCreated     = "order_created"
	EventStatusUpdated    = "status_updated"
	EventCourierAssigned  = "courier_assigned"
	EventPaymentConfirmed = "payment_confirmed"
	EventOrderDeleted     = "order_deleted"
)

type Event struct {
	Type    string        `json:"type"`
	OrderID uint          `json:"orderId"`
	Order   *models.Order `json:"order,omitempty"`
}

// Hub is an in-process publish/subscribe fanout. Subscribers that fall
// behind lose events rather than block publishers.
type Hub struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Event)}
}

// Subscribe returns an event channel and a function that cancels the
// subscription and closes the channel. The cancel function is safe to
// call more than once.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	ch := make(chan Event, 16)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (h *Hub) Publish(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- e:
		default: // drop for slow subscribers
		}
	}
}
