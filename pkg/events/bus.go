// Package events provides the in-process event bus that fans committed
// mutations out to subscribers (webhook dispatch, telemetry).
//
// Publishing never blocks the caller: each subscriber has a bounded buffer
// and, when it is full, the oldest pending event is dropped and counted.
// A slow subscriber can therefore lose events but can never stall a request.
package events

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// DefaultBuffer is the per-subscriber channel capacity.
const DefaultBuffer = 256

// Subscription is one subscriber's view of the bus.
type Subscription struct {
	// C delivers events in publish order, minus any dropped under overflow.
	C    <-chan Event
	name string
	ch   chan Event
}

// Name returns the subscriber name given at Subscribe time.
func (s *Subscription) Name() string { return s.name }

// Bus is a non-blocking fan-out of events to named subscribers.
type Bus struct {
	mu      sync.RWMutex
	subs    []*Subscription
	closed  bool
	dropped atomic.Uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a named subscriber with the given buffer capacity
// (DefaultBuffer if size <= 0). The returned channel is closed by Close.
func (b *Bus) Subscribe(name string, size int) *Subscription {
	if size <= 0 {
		size = DefaultBuffer
	}
	ch := make(chan Event, size)
	sub := &Subscription{C: ch, name: name, ch: ch}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return sub
	}
	b.subs = append(b.subs, sub)
	return sub
}

// Publish fans evt out to every subscriber without blocking. When a
// subscriber's buffer is full the oldest pending event is discarded to make
// room, and the loss is counted and logged.
func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}

	for _, sub := range b.subs {
		select {
		case sub.ch <- evt:
			continue
		default:
		}

		// Buffer full: drop the oldest pending event, then retry once.
		// A concurrent receive may have freed space in between, in which
		// case the drain gets nothing and the send succeeds.
		select {
		case <-sub.ch:
			b.dropped.Add(1)
			slog.Warn("Event bus subscriber overflow, dropped oldest event",
				"subscriber", sub.name, "event_type", evt.Type)
		default:
		}
		select {
		case sub.ch <- evt:
		default:
			b.dropped.Add(1)
			slog.Warn("Event bus subscriber overflow, dropped event",
				"subscriber", sub.name, "event_type", evt.Type)
		}
	}
}

// Dropped returns the total number of events lost to subscriber overflow.
// Exposed as a prometheus counter by the metrics wiring in main.
func (b *Bus) Dropped() uint64 {
	return b.dropped.Load()
}

// Close closes all subscriber channels. Publish becomes a no-op.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, sub := range b.subs {
		close(sub.ch)
	}
	b.subs = nil
}
