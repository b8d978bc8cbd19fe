package session

import "sync"

// Broadcaster fans a "transcript updated" signal out to subscribers.
// It carries no payload; observers re-read the transcript when poked.
// This is the explicit form of the widget's render-trigger callback.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[int]chan struct{}
	next int
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]chan struct{})}
}

// Subscribe registers an observer. The returned cancel function must be
// called when the observer goes away.
func (b *Broadcaster) Subscribe() (<-chan struct{}, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	// Buffer of 1 coalesces bursts; a slow observer misses nothing it
	// cares about since the signal carries no payload.
	ch := make(chan struct{}, 1)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
	return ch, cancel
}

// Notify signals all subscribers without blocking.
func (b *Broadcaster) Notify() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// SubscriberCount returns the number of active subscribers.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
