package impl

import "sync"

// observers is an ordered list of callbacks. Callbacks run outside the lock, in registration order.
type observers[T any] struct {
	mu      sync.Mutex
	nextID  int
	entries []observerEntry[T]
}

type observerEntry[T any] struct {
	id int
	fn func(T)
}

func (o *observers[T]) add(fn func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.nextID++
	id := o.nextID
	o.entries = append(o.entries, observerEntry[T]{id: id, fn: fn})

	var once sync.Once

	return func() {
		once.Do(func() { o.remove(id) })
	}
}

func (o *observers[T]) remove(id int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i, entry := range o.entries {
		if entry.id == id {
			o.entries = append(o.entries[:i:i], o.entries[i+1:]...)

			return
		}
	}
}

func (o *observers[T]) notify(value T) {
	o.mu.Lock()
	snapshot := make([]observerEntry[T], len(o.entries))
	copy(snapshot, o.entries)
	o.mu.Unlock()

	for _, entry := range snapshot {
		entry.fn(value)
	}
}
