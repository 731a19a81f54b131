// Package event routes engine events to the dispatch log, the progress
// tracker and any registered listener.
package event

import (
	"context"

	"github.com/viant/cpusched/model/dispatch"
	"github.com/viant/cpusched/progress"
)

// Listener observes events in production order
type Listener func(ctx context.Context, event *dispatch.Event)

// Publisher is the only writer of a run's dispatch log.
type Publisher struct {
	log       *dispatch.Log
	listeners []Listener
}

// NewPublisher creates a publisher appending to the supplied log
func NewPublisher(log *dispatch.Log, listeners ...Listener) *Publisher {
	if log == nil {
		log = dispatch.NewLog()
	}
	return &Publisher{log: log, listeners: listeners}
}

// Publish appends the event, updates the context tracker and notifies listeners.
func (p *Publisher) Publish(ctx context.Context, event *dispatch.Event) {
	p.log.Append(event)
	progress.UpdateCtx(ctx, deltaOf(event.Kind))
	for _, listener := range p.listeners {
		listener(ctx, event)
	}
}

// Log returns the underlying log
func (p *Publisher) Log() *dispatch.Log {
	return p.log
}

func deltaOf(kind dispatch.Kind) progress.Delta {
	switch kind {
	case dispatch.KindQueued:
		return progress.Delta{Total: 1, Queued: 1}
	case dispatch.KindRejected:
		return progress.Delta{Total: 1, Rejected: 1}
	case dispatch.KindAssigned:
		return progress.Delta{Assigned: 1}
	case dispatch.KindRequeued:
		return progress.Delta{Requeued: 1}
	case dispatch.KindCompleted:
		return progress.Delta{Completed: 1}
	}
	return progress.Delta{}
}
