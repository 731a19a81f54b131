package queue

import (
	"errors"
	"iter"
)

var (
	// ErrEmptyQueue is returned when removing from an empty queue. Callers
	// check IsEmpty first, so seeing it means an internal invariant broke.
	ErrEmptyQueue = errors.New("queue: empty")

	// ErrIndexOutOfRange is returned by index based access outside [0, Len).
	ErrIndexOutOfRange = errors.New("queue: index out of range")
)

// Queue represents an ordered container served head first
type Queue[T any] interface {
	// Enqueue appends an item at the tail
	Enqueue(t T)

	// Dequeue removes and returns the head
	Dequeue() (T, error)

	// RemoveAt removes and returns the item at the supplied position
	RemoveAt(index int) (T, error)

	// Peek returns the item at the supplied position without removing it
	Peek(index int) (T, error)

	// IsEmpty returns true when no item is queued
	IsEmpty() bool

	// Len returns the number of queued items
	Len() int

	// All returns a restartable iterator that never mutates the queue
	All() iter.Seq2[int, T]
}
