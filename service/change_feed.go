package services

import "sync"

// ChangeFeed fans out "state changed" signals to subscribers. Signals are
// coalesced: a subscriber that has not drained its channel gets one pending
// signal, not one per change.
type ChangeFeed struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan struct{}
}

func NewChangeFeed() *ChangeFeed {
	return &ChangeFeed{subs: make(map[int]chan struct{})}
}

// Subscribe returns a signal channel and a function that unsubscribes and
// closes it.
func (f *ChangeFeed) Subscribe() (<-chan struct{}, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	ch := make(chan struct{}, 1)
	f.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			delete(f.subs, id)
			close(ch)
		})
	}
}

// Notify signals every subscriber without blocking.
func (f *ChangeFeed) Notify() {
	if f == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
