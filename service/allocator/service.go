package allocator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/viant/cpusched/model/dispatch"
	"github.com/viant/cpusched/model/process"
	"github.com/viant/cpusched/service/event"
	"github.com/viant/cpusched/service/queue"
)

// Config represents allocator configuration
type Config struct {
	// TotalMemory is the memory of the whole system
	TotalMemory int
	// ReservedMemory is carved out of TotalMemory for priority zero
	ReservedMemory int
}

// DefaultConfig returns the default allocator configuration
func DefaultConfig() Config {
	return Config{
		TotalMemory:    2048,
		ReservedMemory: 512,
	}
}

// Service admits processes into per-class queues
type Service struct {
	config        Config
	pools         Pools
	queues        map[process.Class]*queue.FIFO[*process.Process]
	publisher     *event.Publisher
	logger        *slog.Logger
	queueCapacity int
}

// New creates a new allocator with fresh pools and empty queues
func New(config Config, publisher *event.Publisher, options ...Option) *Service {
	s := &Service{
		config:        config,
		pools:         NewPools(config.TotalMemory, config.ReservedMemory),
		queues:        make(map[process.Class]*queue.FIFO[*process.Process], len(process.Classes)),
		publisher:     publisher,
		logger:        slog.Default(),
		queueCapacity: 50,
	}
	for _, opt := range options {
		opt(s)
	}
	for _, class := range process.Classes {
		s.queues[class] = queue.NewFIFO[*process.Process](s.queueCapacity)
	}
	return s
}

// TryAdmit admits p into its class queue if the class pool can hold its RAM.
// A rejection is not an error: it is published as an event and false is returned.
func (s *Service) TryAdmit(ctx context.Context, p *process.Process) (bool, error) {
	if p == nil {
		return false, fmt.Errorf("allocator: nil process")
	}
	if !p.Class.Valid() {
		return false, fmt.Errorf("%w: process %s has priority %d", process.ErrInvalidClass, p.ID, int(p.Class))
	}
	pool := s.pools.For(p.Class)
	if !pool.Fits(p.RAM) {
		s.logger.Debug("process rejected", "process", p.ID, "class", p.Class.String(),
			"pool", pool.Name, "ram", p.RAM, "remaining", pool.Remaining())
		s.publisher.Publish(ctx, dispatch.NewRejected(p, pool.Remaining()))
		return false, nil
	}
	pool.debit(p.RAM)
	s.publisher.Publish(ctx, dispatch.NewQueued(p))
	s.queues[p.Class].Enqueue(p)
	s.logger.Debug("process queued", "process", p.ID, "class", p.Class.String(),
		"pool", pool.Name, "ram", p.RAM, "remaining", pool.Remaining())
	return true, nil
}

// Queue returns the queue of the supplied class, nil for an invalid class
func (s *Service) Queue(class process.Class) *queue.FIFO[*process.Process] {
	return s.queues[class]
}

// Pools returns a copy of the pool state
func (s *Service) Pools() Pools {
	return s.pools
}
