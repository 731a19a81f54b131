package processor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/viant/cpusched/model/process"
	"github.com/viant/cpusched/service/event"
	"github.com/viant/cpusched/service/queue"
	"github.com/viant/cpusched/tracing"
)

// Config represents processor configuration
type Config struct {
	// MediumQuantum is the round robin time slice of priority 2
	MediumQuantum int
	// LowQuantum is the round robin time slice of priority 3
	LowQuantum int
}

// DefaultConfig returns the default processor configuration
func DefaultConfig() Config {
	return Config{
		MediumQuantum: 8,
		LowQuantum:    16,
	}
}

// Service dispatches class queues with the strategy bound to each class
type Service struct {
	config     Config
	strategies map[process.Class]Strategy
	logger     *slog.Logger
}

// New creates a processor and binds one strategy per class
func New(options ...Option) (*Service, error) {
	s := &Service{
		config: DefaultConfig(),
		logger: slog.Default(),
	}
	for _, opt := range options {
		opt(s)
	}
	if s.config.MediumQuantum <= 0 || s.config.LowQuantum <= 0 {
		return nil, fmt.Errorf("processor: quantum must be > 0, got %d/%d", s.config.MediumQuantum, s.config.LowQuantum)
	}
	s.strategies = map[process.Class]Strategy{
		process.ClassZero:   &fcfs{},
		process.ClassHigh:   &sjf{},
		process.ClassMedium: &roundRobin{quantum: s.config.MediumQuantum},
		process.ClassLow:    &roundRobin{quantum: s.config.LowQuantum},
	}
	return s, nil
}

// Strategy returns the strategy bound to the class
func (s *Service) Strategy(class process.Class) Strategy {
	return s.strategies[class]
}

// Dispatch drains q with the strategy bound to class and returns the pass summary.
func (s *Service) Dispatch(ctx context.Context, class process.Class, q queue.Queue[*process.Process], publisher *event.Publisher) (pass *Pass, err error) {
	strategy := s.strategies[class]
	if strategy == nil {
		return nil, fmt.Errorf("%w: %d", process.ErrInvalidClass, int(class))
	}
	pass = &Pass{Class: class, CPU: class.CPU(), Policy: strategy.Policy(), Quantum: strategy.Quantum()}

	ctx, span := tracing.StartSpan(ctx, "processor."+pass.Label())
	defer func() {
		span.SetString("cpu", pass.CPU).
			SetInt("class", int(class)).
			SetInt("dispatched", pass.Dispatched).
			SetInt("requeued", pass.Requeued).
			SetInt("elapsed", pass.Elapsed)
		tracing.EndSpan(span, err)
	}()

	if err = strategy.Run(ctx, publisher, q, pass); err != nil {
		return pass, fmt.Errorf("failed to dispatch %v: %w", class, err)
	}
	s.logger.Info("dispatch pass finished", "class", class.String(), "cpu", pass.CPU, "policy", pass.Label(),
		"completed", pass.Completed, "requeued", pass.Requeued, "elapsed", pass.Elapsed)
	return pass, nil
}
