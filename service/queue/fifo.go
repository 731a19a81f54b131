// Package queue provides the per-class process queues.
package queue

import (
	"fmt"
	"iter"
)

// FIFO implements Queue over a slice. It is not safe for concurrent use;
// every simulation run owns its queues.
type FIFO[T any] struct {
	items []T
}

// NewFIFO creates a new queue with the supplied initial capacity
func NewFIFO[T any](capacity int) *FIFO[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &FIFO[T]{items: make([]T, 0, capacity)}
}

// Enqueue appends an item at the tail
func (q *FIFO[T]) Enqueue(t T) {
	q.items = append(q.items, t)
}

// Dequeue removes and returns the head
func (q *FIFO[T]) Dequeue() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.remove(0), nil
}

// RemoveAt removes the item at index preserving the order of the others
func (q *FIFO[T]) RemoveAt(index int) (T, error) {
	var zero T
	if len(q.items) == 0 {
		return zero, ErrEmptyQueue
	}
	if index < 0 || index >= len(q.items) {
		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return q.remove(index), nil
}

func (q *FIFO[T]) remove(index int) T {
	var zero T
	item := q.items[index]
	copy(q.items[index:], q.items[index+1:])
	q.items[len(q.items)-1] = zero
	q.items = q.items[:len(q.items)-1]
	return item
}

// Peek returns the item at index
func (q *FIFO[T]) Peek(index int) (T, error) {
	if index < 0 || index >= len(q.items) {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return q.items[index], nil
}

// IsEmpty returns true when the queue holds no item
func (q *FIFO[T]) IsEmpty() bool {
	return len(q.items) == 0
}

// Len returns the number of queued items
func (q *FIFO[T]) Len() int {
	return len(q.items)
}

// All iterates head to tail. Each call starts a new pass.
func (q *FIFO[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range q.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the queued items
func (q *FIFO[T]) Snapshot() []T {
	return append([]T(nil), q.items...)
}

// ensure FIFO implements Queue interface
var _ Queue[any] = (*FIFO[any])(nil)
