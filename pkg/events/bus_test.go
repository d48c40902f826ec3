package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DeliversToAllSubscribers(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	a := bus.Subscribe("a", 4)
	b := bus.Subscribe("b", 4)

	bus.Publish(Event{Type: TypeContentItemCreate, EntityID: 1})

	select {
	case evt := <-a.C:
		assert.Equal(t, TypeContentItemCreate, evt.Type)
	case <-time.After(time.Second):
		t.Fatal("subscriber a did not receive event")
	}
	select {
	case evt := <-b.C:
		assert.Equal(t, 1, evt.EntityID)
	case <-time.After(time.Second):
		t.Fatal("subscriber b did not receive event")
	}
}

func TestBus_PublishNeverBlocks(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	// A subscriber that never reads.
	bus.Subscribe("stalled", 2)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			bus.Publish(Event{Type: TypeContentItemUpdate, EntityID: i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a stalled subscriber")
	}
	assert.Greater(t, bus.Dropped(), uint64(0))
}

func TestBus_OverflowDropsOldest(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	sub := bus.Subscribe("slow", 2)

	bus.Publish(Event{EntityID: 1})
	bus.Publish(Event{EntityID: 2})
	bus.Publish(Event{EntityID: 3}) // evicts 1

	first := <-sub.C
	assert.Equal(t, 2, first.EntityID)
	second := <-sub.C
	assert.Equal(t, 3, second.EntityID)
	assert.Equal(t, uint64(1), bus.Dropped())
}

func TestBus_CloseStopsDelivery(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe("a", 1)

	bus.Close()
	bus.Publish(Event{EntityID: 9})

	_, open := <-sub.C
	require.False(t, open, "channel should be closed")
}

func TestBus_SubscribeAfterClose(t *testing.T) {
	bus := NewBus()
	bus.Close()

	sub := bus.Subscribe("late", 1)
	_, open := <-sub.C
	assert.False(t, open)
}
