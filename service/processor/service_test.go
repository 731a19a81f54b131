package processor

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/cpusched/model/dispatch"
	"github.com/viant/cpusched/model/process"
	"github.com/viant/cpusched/service/event"
	"github.com/viant/cpusched/service/queue"
)

func newQueue(processes ...*process.Process) *queue.FIFO[*process.Process] {
	q := queue.NewFIFO[*process.Process](len(processes))
	for _, p := range processes {
		q.Enqueue(p)
	}
	return q
}

func assigned(log *dispatch.Log) []string {
	var ret []string
	for e := range log.All() {
		if e.Kind == dispatch.KindAssigned {
			ret = append(ret, e.ProcessID)
		}
	}
	return ret
}

func trace(log *dispatch.Log) []string {
	var ret []string
	for e := range log.All() {
		ret = append(ret, e.String())
	}
	return ret
}

func TestService_FCFS(t *testing.T) {
	srv, err := New()
	require.NoError(t, err)
	publisher := event.NewPublisher(dispatch.NewLog())
	q := newQueue(
		&process.Process{ID: "P3", Class: process.ClassZero, Burst: 30},
		&process.Process{ID: "P1", Class: process.ClassZero, Burst: 10},
		&process.Process{ID: "P2", Class: process.ClassZero, Burst: 20},
	)

	pass, err := srv.Dispatch(context.Background(), process.ClassZero, q, publisher)
	require.NoError(t, err)
	assert.True(t, q.IsEmpty())
	assert.Equal(t, []string{"P3", "P1", "P2"}, assigned(publisher.Log()))
	assert.Equal(t, []string{
		"assigned(P3, CPU-1)", "completed(P3)",
		"assigned(P1, CPU-1)", "completed(P1)",
		"assigned(P2, CPU-1)", "completed(P2)",
	}, trace(publisher.Log()))
	assert.Equal(t, 60, pass.Elapsed)
	assert.Equal(t, 3, pass.Dispatched)
	assert.Equal(t, "FCFS", pass.Label())
	assert.Equal(t, process.CPU1, pass.CPU)
}

func TestService_SJF(t *testing.T) {
	testCases := []struct {
		description string
		bursts      []int
		expected    []string
	}{
		{description: "input order ignored", bursts: []int{30, 10, 20}, expected: []string{"B", "C", "A"}},
		{description: "ties keep queue order", bursts: []int{10, 5, 10, 5}, expected: []string{"B", "D", "A", "C"}},
		{description: "already sorted", bursts: []int{1, 2, 3}, expected: []string{"A", "B", "C"}},
		{description: "single", bursts: []int{7}, expected: []string{"A"}},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			srv, err := New()
			require.NoError(t, err)
			publisher := event.NewPublisher(dispatch.NewLog())
			q := queue.NewFIFO[*process.Process](len(tc.bursts))
			total := 0
			for i, burst := range tc.bursts {
				q.Enqueue(&process.Process{ID: string(rune('A' + i)), Class: process.ClassHigh, Burst: burst})
				total += burst
			}
			pass, err := srv.Dispatch(context.Background(), process.ClassHigh, q, publisher)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, assigned(publisher.Log()))
			assert.Equal(t, total, pass.Elapsed)
			assert.Equal(t, 0, publisher.Log().Count(dispatch.KindRequeued))
			assert.Equal(t, len(tc.bursts), publisher.Log().Count(dispatch.KindCompleted))
		})
	}
}

func TestService_RoundRobinScenario(t *testing.T) {
	srv, err := New()
	require.NoError(t, err)
	publisher := event.NewPublisher(dispatch.NewLog())
	q := newQueue(&process.Process{ID: "P1", Class: process.ClassMedium, Burst: 20, RAM: 100, CPURate: 1})

	pass, err := srv.Dispatch(context.Background(), process.ClassMedium, q, publisher)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"assigned(P1, CPU-2)",
		"quantumExpiredRequeued(P1, remaining=12)",
		"assigned(P1, CPU-2)",
		"quantumExpiredRequeued(P1, remaining=4)",
		"assigned(P1, CPU-2)",
		"completed(P1)",
	}, trace(publisher.Log()))
	assert.Equal(t, 2, pass.Requeued)
	assert.Equal(t, 4, pass.Elapsed)
	assert.Equal(t, "RR, q=8", pass.Label())
}

func TestService_RoundRobinInterleave(t *testing.T) {
	srv, err := New()
	require.NoError(t, err)
	publisher := event.NewPublisher(dispatch.NewLog())
	q := newQueue(
		&process.Process{ID: "A", Class: process.ClassLow, Burst: 40},
		&process.Process{ID: "B", Class: process.ClassLow, Burst: 16},
		&process.Process{ID: "C", Class: process.ClassLow, Burst: 20},
	)
	_, err = srv.Dispatch(context.Background(), process.ClassLow, q, publisher)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "A", "C", "A"}, assigned(publisher.Log()))
	assert.Equal(t, 3, publisher.Log().Count(dispatch.KindRequeued))
}

func TestService_RoundRobinQuantumLaw(t *testing.T) {
	for _, quantum := range []int{8, 16} {
		for _, burst := range []int{1, 7, 8, 9, 16, 17, 20, 33, 64, 100} {
			t.Run(fmt.Sprintf("q=%d/b=%d", quantum, burst), func(t *testing.T) {
				srv, err := New(WithConfig(Config{MediumQuantum: quantum, LowQuantum: quantum}))
				require.NoError(t, err)
				publisher := event.NewPublisher(dispatch.NewLog())
				p := &process.Process{ID: "P", Class: process.ClassMedium, Burst: burst}
				_, err = srv.Dispatch(context.Background(), process.ClassMedium, newQueue(p), publisher)
				require.NoError(t, err)

				expectedRequeues := (burst+quantum-1)/quantum - 1
				assert.Equal(t, expectedRequeues, publisher.Log().Count(dispatch.KindRequeued))
				assert.Equal(t, expectedRequeues+1, publisher.Log().Count(dispatch.KindAssigned))
				assert.Equal(t, 1, publisher.Log().Count(dispatch.KindCompleted))
				final := burst - quantum*expectedRequeues
				assert.Equal(t, final, p.Burst)
				assert.Greater(t, p.Burst, 0)
				assert.LessOrEqual(t, p.Burst, quantum)
			})
		}
	}
}

func TestService_Strategies(t *testing.T) {
	srv, err := New(WithConfig(Config{MediumQuantum: 4, LowQuantum: 32}))
	require.NoError(t, err)
	assert.Equal(t, process.PolicyFCFS, srv.Strategy(process.ClassZero).Policy())
	assert.Equal(t, process.PolicySJF, srv.Strategy(process.ClassHigh).Policy())
	assert.Equal(t, 4, srv.Strategy(process.ClassMedium).Quantum())
	assert.Equal(t, 32, srv.Strategy(process.ClassLow).Quantum())

	_, err = New(WithConfig(Config{MediumQuantum: 0, LowQuantum: 16}))
	assert.Error(t, err)

	_, err = srv.Dispatch(context.Background(), process.Class(9), newQueue(), event.NewPublisher(nil))
	assert.True(t, errors.Is(err, process.ErrInvalidClass))
}

// brokenQueue reports items it cannot hand out.
type brokenQueue struct {
	*queue.FIFO[*process.Process]
}

func (b *brokenQueue) IsEmpty() bool { return false }

func (b *brokenQueue) All() iter.Seq2[int, *process.Process] {
	return func(yield func(int, *process.Process) bool) {}
}

func TestService_EmptyQueueIsFatal(t *testing.T) {
	srv, err := New()
	require.NoError(t, err)
	for _, class := range process.Classes {
		q := &brokenQueue{FIFO: queue.NewFIFO[*process.Process](0)}
		_, err := srv.Dispatch(context.Background(), class, q, event.NewPublisher(nil))
		assert.True(t, errors.Is(err, queue.ErrEmptyQueue), class.String())
	}
}
