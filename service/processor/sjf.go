package processor

import (
	"context"
	"fmt"

	"github.com/viant/cpusched/model/process"
	"github.com/viant/cpusched/service/event"
	"github.com/viant/cpusched/service/queue"
)

type sjf struct{}

func (s *sjf) Policy() process.Policy { return process.PolicySJF }

func (s *sjf) Quantum() int { return 0 }

// Run repeatedly extracts the process with the strictly smallest burst; on a
// tie the one closest to the head wins. Non-preemptive.
func (s *sjf) Run(ctx context.Context, publisher *event.Publisher, q queue.Queue[*process.Process], pass *Pass) error {
	for !q.IsEmpty() {
		p, err := q.RemoveAt(shortest(q))
		if err != nil {
			return fmt.Errorf("sjf: %w", err)
		}
		assign(ctx, publisher, p, pass)
		complete(ctx, publisher, p, pass)
	}
	return nil
}

func shortest(q queue.Queue[*process.Process]) int {
	index := -1
	burst := 0
	for i, p := range q.All() {
		if index == -1 || p.Burst < burst {
			index, burst = i, p.Burst
		}
	}
	return index
}
