package queue

import "github.com/ef-ds/deque"

// Q is a generic double-ended queue. It is used as a FIFO queue for tokens and pending
// positional arguments, and supports pushing items back to the front so a consumer can
// un-read an item it has inspected.
// All operations are O(1) amortized.
type Q[T any] struct {
	d *deque.Deque
}

// New creates a new Q
func New[T any]() *Q[T] {
	return &Q[T]{d: deque.New()}
}

// From creates a new Q holding items in order (the first item is at the front)
func From[T any](items ...T) *Q[T] {
	q := New[T]()
	for _, item := range items {
		q.Enqueue(item)
	}

	return q
}

// Enqueue adds an item to the back of the queue
func (q *Q[T]) Enqueue(item T) {
	q.d.PushBack(item)
}

// Dequeue removes and returns the item at the front of the queue
func (q *Q[T]) Dequeue() (T, bool) {
	v, ok := q.d.PopFront()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// Front returns the item at the front of the queue without removing it
func (q *Q[T]) Front() (T, bool) {
	v, ok := q.d.Front()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// PushFront puts an item back at the front of the queue
func (q *Q[T]) PushFront(item T) {
	q.d.PushFront(item)
}

// Len returns the number of items in the Q
func (q *Q[T]) Len() int {
	return q.d.Len()
}

// Drain removes all items and returns them front to back
func (q *Q[T]) Drain() []T {
	items := make([]T, 0, q.d.Len())
	for {
		item, ok := q.Dequeue()
		if !ok {
			return items
		}
		items = append(items, item)
	}
}

// Clear removes all items
func (q *Q[T]) Clear() {
	q.d.Init()
}
