package cpusched

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/viant/cpusched/internal/idgen"
	"github.com/viant/cpusched/model/dispatch"
	"github.com/viant/cpusched/model/process"
	"github.com/viant/cpusched/progress"
	"github.com/viant/cpusched/service/allocator"
	"github.com/viant/cpusched/service/event"
	"github.com/viant/cpusched/service/processor"
	"github.com/viant/cpusched/service/report"
	"github.com/viant/cpusched/service/sink"
	"github.com/viant/cpusched/tracing"
)

// Report represents the outcome of one simulation run
type Report struct {
	RunID string
	Log   *dispatch.Log
	// Admitted holds per class copies of the queued processes, in admission order.
	Admitted map[process.Class][]*process.Process
	Rejected []*process.Process
	// Pools is the memory state once every record was admitted
	Pools    allocator.Pools
	Passes   []*processor.Pass
	Progress progress.Progress
}

// Trace renders the event trace
func (r *Report) Trace() []byte {
	return sink.Encode(r.Log)
}

// Summary writes the per-class console summary
func (r *Report) Summary(w io.Writer) error {
	return report.Summary(w, r.Passes, r.Admitted)
}

// Pass returns the pass of the supplied class or nil
func (r *Report) Pass(class process.Class) *processor.Pass {
	for _, pass := range r.Passes {
		if pass.Class == class {
			return pass
		}
	}
	return nil
}

// Service runs simulations. It keeps no per-run state.
type Service struct {
	config     *Config
	processor  *processor.Service
	listeners  []event.Listener
	onProgress func(progress.Progress)
	logger     *slog.Logger
	tracingErr error
}

// New creates a service
func New(options ...Option) (*Service, error) {
	ret := &Service{config: DefaultConfig(), logger: slog.Default()}
	for _, option := range options {
		option(ret)
	}
	if ret.tracingErr != nil {
		return nil, fmt.Errorf("failed to initialise tracing: %w", ret.tracingErr)
	}
	if err := ret.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	var err error
	if ret.processor, err = processor.New(processor.WithConfig(ret.config.Processor()), processor.WithLogger(ret.logger)); err != nil {
		return nil, err
	}
	return ret, nil
}

// Config returns the service configuration
func (s *Service) Config() *Config {
	return s.config
}

// Run admits every record in input order, then dispatches class queues in
// priority order. Input records are not modified.
func (s *Service) Run(ctx context.Context, processes []*process.Process) (ret *Report, err error) {
	for i, p := range processes {
		if p == nil {
			return nil, fmt.Errorf("process at %d is nil", i)
		}
		if !p.Class.Valid() {
			return nil, fmt.Errorf("%w: process %s has priority %d", process.ErrInvalidClass, p.ID, int(p.Class))
		}
	}
	runID := idgen.New()
	ctx, tracker := progress.WithNewTracker(ctx, runID, s.onProgress)
	ctx, span := tracing.StartSpan(ctx, "cpusched.Run")
	defer func() {
		span.SetString("runId", runID).SetInt("processes", len(processes))
		tracing.EndSpan(span, err)
	}()

	log := dispatch.NewLog()
	publisher := event.NewPublisher(log, s.listeners...)
	admission := allocator.New(s.config.Allocator(), publisher, allocator.WithLogger(s.logger))
	ret = &Report{RunID: runID, Log: log, Admitted: make(map[process.Class][]*process.Process, len(process.Classes))}

	for _, p := range processes {
		record := p.Clone()
		admitted, err := admission.TryAdmit(ctx, record)
		if err != nil {
			return nil, err
		}
		if !admitted {
			ret.Rejected = append(ret.Rejected, record)
		}
	}
	ret.Pools = admission.Pools()
	for _, class := range process.Classes {
		for _, p := range admission.Queue(class).All() {
			ret.Admitted[class] = append(ret.Admitted[class], p.Clone())
		}
	}
	s.logger.Info("admission finished", "run", runID, "records", len(processes), "rejected", len(ret.Rejected),
		"priorityZeroUsed", ret.Pools.PriorityZero.Used, "sharedUsed", ret.Pools.Shared.Used)

	for _, class := range process.Classes {
		pass, err := s.processor.Dispatch(ctx, class, admission.Queue(class), publisher)
		if err != nil {
			return nil, err
		}
		ret.Passes = append(ret.Passes, pass)
	}
	ret.Progress = tracker.Snapshot()
	return ret, nil
}
