package platformer

// Status is the HUD payload published after every change to lives or score.
type Status struct {
	Lives int
	Score int
}

type subscriber struct {
	id int
	fn func(Status)
}

// EventBus delivers Status updates synchronously, in subscription order.
// Each Playing scene owns one bus and closes it on exit.
type EventBus struct {
	subs   []subscriber
	nextID int
	closed bool
}

// NewEventBus creates an open bus with no subscribers.
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers fn and returns a function that removes it.
// Subscribing to a closed bus is a no-op.
func (b *EventBus) Subscribe(fn func(Status)) (unsubscribe func()) {
	if b.closed || fn == nil {
		return func() {}
	}
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish hands st to every subscriber. It is fire-and-forget.
func (b *EventBus) Publish(st Status) {
	if b.closed {
		return
	}
	// A subscriber may unsubscribe itself while being called.
	subs := append([]subscriber(nil), b.subs...)
	for _, s := range subs {
		s.fn(st)
	}
}

// Close drops every subscriber. Later publishes do nothing.
func (b *EventBus) Close() {
	b.closed = true
	b.subs = nil
}
