package processor

import (
	"context"
	"fmt"

	"github.com/viant/cpusched/model/process"
	"github.com/viant/cpusched/service/event"
	"github.com/viant/cpusched/service/queue"
)

type fcfs struct{}

func (s *fcfs) Policy() process.Policy { return process.PolicyFCFS }

func (s *fcfs) Quantum() int { return 0 }

// Run serves the queue strictly head first, each process to completion.
func (s *fcfs) Run(ctx context.Context, publisher *event.Publisher, q queue.Queue[*process.Process], pass *Pass) error {
	for !q.IsEmpty() {
		p, err := q.Dequeue()
		if err != nil {
			return fmt.Errorf("fcfs: %w", err)
		}
		assign(ctx, publisher, p, pass)
		complete(ctx, publisher, p, pass)
	}
	return nil
}
