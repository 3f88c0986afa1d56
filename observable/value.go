// Package observable provides a small observable scalar used to broadcast
// state changes to the UI. Subscribers are notified synchronously, on the
// writer's goroutine, before the write returns.
package observable

import (
	"slices"
	"sync"
)

// Observable is the read-only view of a Value handed to consumers.
type Observable[T comparable] interface {
	Get() T
	Subscribe(fn func(T)) (cancel func())
}

// Value holds a single value of type T and notifies subscribers when it
// changes. Writing a value equal to the current one does not notify.
type Value[T comparable] struct {
	mu     sync.RWMutex
	v      T
	subs   map[int]func(T)
	nextID int

	// emit serializes writers and their notifications so subscribers see
	// writes in order. It is always taken before mu and mu is never held
	// while a subscriber runs, so a subscriber may Get the Value but must not
	// Set or Update it.
	emit sync.Mutex
}

// NewValue returns a Value holding initial.
func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{v: initial, subs: make(map[int]func(T))}
}

// Get returns the current value.
func (o *Value[T]) Get() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.v
}

// Set stores v and notifies subscribers if it changed.
func (o *Value[T]) Set(v T) {
	o.Update(func(T) T { return v })
}

// Update atomically replaces the value with fn(current) and returns the new
// value. Subscribers are notified if it changed.
func (o *Value[T]) Update(fn func(T) T) T {
	o.emit.Lock()
	defer o.emit.Unlock()

	o.mu.Lock()
	old := o.v
	next := fn(old)
	if next == old {
		o.mu.Unlock()
		return next
	}
	o.v = next
	subs := o.snapshotLocked()
	o.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// Subscribe registers fn and calls it once with the current value. The
// returned function removes the subscription; calling it more than once is
// harmless.
func (o *Value[T]) Subscribe(fn func(T)) (cancel func()) {
	o.emit.Lock()
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.subs[id] = fn
	current := o.v
	o.mu.Unlock()
	fn(current)
	o.emit.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			delete(o.subs, id)
			o.mu.Unlock()
		})
	}
}

func (o *Value[T]) subscribers() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.subs)
}

func (o *Value[T]) snapshotLocked() []func(T) {
	ids := make([]int, 0, len(o.subs))
	for id := range o.subs {
		ids = append(ids, id)
	}
	// notify in subscription order
	slices.Sort(ids)
	out := make([]func(T), len(ids))
	for i, id := range ids {
		out[i] = o.subs[id]
	}
	return out
}
