// Package dispatch defines the events produced by a simulation run and the
// append-only log holding them.
package dispatch

import (
	"fmt"

	"github.com/viant/cpusched/model/process"
)

// Kind represents an event kind
type Kind string

const (
	KindQueued    Kind = "queued"
	KindRejected  Kind = "rejected"
	KindAssigned  Kind = "assigned"
	KindRequeued  Kind = "quantumExpiredRequeued"
	KindCompleted Kind = "completed"
)

// Event represents a single admission or execution event.
//
//   - Queued carries the class and CPU the process was queued for.
//   - Rejected carries the requested and the available memory.
//   - QuantumExpiredRequeued carries the quantum and the remaining burst.
type Event struct {
	Kind      Kind          `json:"kind"`
	ProcessID string        `json:"processId"`
	Class     process.Class `json:"class"`
	CPU       string        `json:"cpu"`
	Quantum   int           `json:"quantum,omitempty"`
	Remaining int           `json:"remaining,omitempty"`
	Requested int           `json:"requested,omitempty"`
	Available int           `json:"available,omitempty"`
}

func newEvent(kind Kind, p *process.Process) *Event {
	return &Event{Kind: kind, ProcessID: p.ID, Class: p.Class, CPU: p.Class.CPU()}
}

// NewQueued creates an admission event
func NewQueued(p *process.Process) *Event {
	return newEvent(KindQueued, p)
}

// NewRejected creates a rejection event, available is what the pool had left.
func NewRejected(p *process.Process, available int) *Event {
	ret := newEvent(KindRejected, p)
	ret.Requested = p.RAM
	ret.Available = available
	return ret
}

// NewAssigned creates an assignment event
func NewAssigned(p *process.Process) *Event {
	return newEvent(KindAssigned, p)
}

// NewRequeued creates a quantum expiry event; p.Burst must already hold the remaining burst.
func NewRequeued(p *process.Process, quantum int) *Event {
	ret := newEvent(KindRequeued, p)
	ret.Quantum = quantum
	ret.Remaining = p.Burst
	return ret
}

// NewCompleted creates a completion event
func NewCompleted(p *process.Process) *Event {
	return newEvent(KindCompleted, p)
}

// Terminal returns true for events that end a process lifecycle.
func (e *Event) Terminal() bool {
	return e.Kind == KindCompleted || e.Kind == KindRejected
}

func (e *Event) String() string {
	switch e.Kind {
	case KindQueued, KindAssigned:
		return fmt.Sprintf("%s(%s, %s)", e.Kind, e.ProcessID, e.CPU)
	case KindRequeued:
		return fmt.Sprintf("%s(%s, remaining=%d)", e.Kind, e.ProcessID, e.Remaining)
	case KindRejected:
		return fmt.Sprintf("%s(%s, requested=%d, available=%d)", e.Kind, e.ProcessID, e.Requested, e.Available)
	}
	return fmt.Sprintf("%s(%s)", e.Kind, e.ProcessID)
}
