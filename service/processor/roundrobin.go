package processor

import (
	"context"
	"fmt"

	"github.com/viant/cpusched/model/dispatch"
	"github.com/viant/cpusched/model/process"
	"github.com/viant/cpusched/service/event"
	"github.com/viant/cpusched/service/queue"
)

type roundRobin struct {
	quantum int
}

func (s *roundRobin) Policy() process.Policy { return process.PolicyRoundRobin }

func (s *roundRobin) Quantum() int { return s.quantum }

// Run grants the head one quantum; unfinished work goes back to the tail of
// the same queue with its burst reduced by the quantum.
func (s *roundRobin) Run(ctx context.Context, publisher *event.Publisher, q queue.Queue[*process.Process], pass *Pass) error {
	for !q.IsEmpty() {
		p, err := q.Dequeue()
		if err != nil {
			return fmt.Errorf("rr(q=%d): %w", s.quantum, err)
		}
		assign(ctx, publisher, p, pass)
		if p.Burst > s.quantum {
			p.Burst -= s.quantum
			pass.Requeued++
			publisher.Publish(ctx, dispatch.NewRequeued(p, s.quantum))
			q.Enqueue(p)
			continue
		}
		complete(ctx, publisher, p, pass)
	}
	return nil
}
