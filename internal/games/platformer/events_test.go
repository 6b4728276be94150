package platformer

import "testing"

func TestEventBusDeliversInOrder(t *testing.T) {
	bus := NewEventBus()

	var order []string
	bus.Subscribe(func(Status) { order = append(order, "a") })
	bus.Subscribe(func(Status) { order = append(order, "b") })

	bus.Publish(Status{Lives: 3})
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("delivery order = %v", order)
	}
}

func TestEventBusUnsubscribe(t *testing.T) {
	bus := NewEventBus()

	calls := 0
	unsubscribe := bus.Subscribe(func(Status) { calls++ })
	bus.Publish(Status{})
	unsubscribe()
	unsubscribe()
	bus.Publish(Status{})

	if calls != 1 {
		t.Errorf("subscriber called %d times, expected 1", calls)
	}
}

func TestEventBusSelfUnsubscribeDuringPublish(t *testing.T) {
	bus := NewEventBus()

	var unsubscribe func()
	first, second := 0, 0
	unsubscribe = bus.Subscribe(func(Status) {
		first++
		unsubscribe()
	})
	bus.Subscribe(func(Status) { second++ })

	bus.Publish(Status{})
	bus.Publish(Status{})

	if first != 1 || second != 2 {
		t.Errorf("first=%d second=%d, expected 1 and 2", first, second)
	}
}

func TestEventBusClose(t *testing.T) {
	bus := NewEventBus()
	bus.Publish(Status{}) // no subscribers is fine

	calls := 0
	bus.Subscribe(func(Status) { calls++ })
	bus.Close()
	bus.Publish(Status{Score: 100})
	bus.Subscribe(func(Status) { calls++ })
	bus.Publish(Status{Score: 200})

	if calls != 0 || !bus.closed {
		t.Errorf("calls=%d closed=%v, a closed bus should deliver nothing", calls, bus.closed)
	}
}
