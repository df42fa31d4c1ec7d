// Package history keeps recently submitted command lines.
package history

// Ring is a fixed-capacity buffer that keeps the most recently pushed
// items in insertion order and drops the oldest on overflow.
type Ring[T any] struct {
	capacity int
	items    []T
}

// initialSize bounds the up-front allocation; the backing slice grows on
// demand up to the capacity.
const initialSize = 64

// New creates a ring holding at most capacity items. Capacities below
// one are raised to one.
func New[T any](capacity int) *Ring[T] {
	capacity = max(capacity, 1)
	return &Ring[T]{
		capacity: capacity,
		items:    make([]T, 0, min(capacity, initialSize)),
	}
}

// Push appends item, overwriting the oldest entry when full.
func (r *Ring[T]) Push(item T) {
	if len(r.items) == r.capacity {
		copy(r.items, r.items[1:])
		r.items[len(r.items)-1] = item
		return
	}
	r.items = append(r.items, item)
}

// FromCurrent looks up an entry relative to the slot after the newest one,
// wrapping around. An offset of -1 is the newest entry, -2 the one before it.
func (r *Ring[T]) FromCurrent(offset int) (T, bool) {
	var zero T
	n := len(r.items)
	if n == 0 {
		return zero, false
	}
	i := ((offset % n) + n) % n
	return r.items[i], true
}

// Resize changes the capacity in place, keeping as many of the most
// recent entries as fit.
func (r *Ring[T]) Resize(capacity int) {
	capacity = max(capacity, 1)
	if len(r.items) > capacity {
		kept := make([]T, capacity)
		copy(kept, r.items[len(r.items)-capacity:])
		r.items = kept
	}
	r.capacity = capacity
}

// Entries returns a copy of the items, oldest first.
func (r *Ring[T]) Entries() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of stored items.
func (r *Ring[T]) Len() int {
	return len(r.items)
}

// Cap returns the ring's capacity.
func (r *Ring[T]) Cap() int {
	return r.capacity
}
