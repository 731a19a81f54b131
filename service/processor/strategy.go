package processor

import (
	"context"
	"strconv"

	"github.com/viant/cpusched/model/dispatch"
	"github.com/viant/cpusched/model/process"
	"github.com/viant/cpusched/service/event"
	"github.com/viant/cpusched/service/queue"
)

// Strategy drains one class queue to completion
type Strategy interface {
	Policy() process.Policy
	Quantum() int
	Run(ctx context.Context, publisher *event.Publisher, q queue.Queue[*process.Process], pass *Pass) error
}

// Pass summarises one class dispatch pass
type Pass struct {
	Class      process.Class  `json:"class"`
	CPU        string         `json:"cpu"`
	Policy     process.Policy `json:"policy"`
	Quantum    int            `json:"quantum,omitempty"`
	Dispatched int            `json:"dispatched"`
	Requeued   int            `json:"requeued"`
	Completed  int            `json:"completed"`
	// Elapsed is the simulated time accumulated at completion.
	Elapsed int `json:"elapsed"`
}

// Label returns the policy label, with its quantum for round robin
func (p *Pass) Label() string {
	if p.Policy == process.PolicyRoundRobin {
		return string(p.Policy) + ", q=" + strconv.Itoa(p.Quantum)
	}
	return string(p.Policy)
}

func complete(ctx context.Context, publisher *event.Publisher, p *process.Process, pass *Pass) {
	pass.Elapsed += p.Burst
	pass.Completed++
	publisher.Publish(ctx, dispatch.NewCompleted(p))
}

func assign(ctx context.Context, publisher *event.Publisher, p *process.Process, pass *Pass) {
	pass.Dispatched++
	publisher.Publish(ctx, dispatch.NewAssigned(p))
}
