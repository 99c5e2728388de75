package session

import "sync"

// Broadcaster is the in-process ActivityNotifier: callers push activity
// through Notify and subscribers (the guard) receive it. In the CLI every
// scanned input line counts as activity, standing in for the pointer,
// keyboard, scroll and touch events of a graphical shell.
type Broadcaster struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]func())}
}

// Subscribe registers fn and returns a cancel func. Cancelling twice is safe.
func (b *Broadcaster) Subscribe(fn func()) (cancel func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Notify fans one activity signal out to all subscribers. Callbacks run
// outside the broadcaster lock.
func (b *Broadcaster) Notify() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
