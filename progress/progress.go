package progress

import (
	"context"
	"sync"
)

// Delta represents an incremental counter change emitted for every
// published event.
type Delta struct {
	Total     int
	Queued    int
	Rejected  int
	Assigned  int
	Requeued  int
	Completed int
}

// Progress keeps aggregated counters of one run. It is safe for concurrent use.
type Progress struct {
	RunID string

	// Counters, modified via Update.
	Total     int
	Queued    int
	Rejected  int
	Assigned  int
	Requeued  int
	Completed int

	sync.Mutex
	onChange func(Progress)
}

// Pending returns how many admitted processes have not completed yet.
func (p *Progress) Pending() int {
	return p.Queued - p.Completed
}

// Update applies the supplied delta. The onChange callback, if any, receives
// a copy taken under the lock and is invoked after it is released.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}

	p.Lock()
	p.Total += d.Total
	p.Queued += d.Queued
	p.Rejected += d.Rejected
	p.Assigned += d.Assigned
	p.Requeued += d.Requeued
	p.Completed += d.Completed
	snapshot := p.copy()
	cb := p.onChange
	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return p.copy()
}

func (p *Progress) copy() Progress {
	return Progress{
		RunID:     p.RunID,
		Total:     p.Total,
		Queued:    p.Queued,
		Rejected:  p.Rejected,
		Assigned:  p.Assigned,
		Requeued:  p.Requeued,
		Completed: p.Completed,
	}
}

// OnChange registers a callback invoked after every Update; nil disables it.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	p.onChange = cb
	p.Unlock()
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a tracker, embeds it in a derived context and
// returns both.
func WithNewTracker(ctx context.Context, runID string, onChange func(Progress)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{RunID: runID, onChange: onChange}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the tracker from ctx
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// GetSnapshot combines FromContext and Snapshot
func GetSnapshot(ctx context.Context) (Progress, bool) {
	if tr, ok := FromContext(ctx); ok {
		return tr.Snapshot(), true
	}
	return Progress{}, false
}

// UpdateCtx applies the delta to the tracker carried by ctx, if any.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
