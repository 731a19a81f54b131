package allocator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/cpusched/model/dispatch"
	"github.com/viant/cpusched/model/process"
	"github.com/viant/cpusched/service/event"
)

func TestService_TryAdmit(t *testing.T) {
	testCases := []struct {
		description string
		processes   []*process.Process
		admitted    []bool
		kinds       []dispatch.Kind
		zeroUsed    int
		sharedUsed  int
	}{
		{
			description: "priority zero over reserve",
			processes:   []*process.Process{{ID: "P1", Class: process.ClassZero, RAM: 600}},
			admitted:    []bool{false},
			kinds:       []dispatch.Kind{dispatch.KindRejected},
		},
		{
			description: "reserve exactly filled",
			processes: []*process.Process{
				{ID: "P1", Class: process.ClassZero, RAM: 300},
				{ID: "P2", Class: process.ClassZero, RAM: 212},
				{ID: "P3", Class: process.ClassZero, RAM: 1},
			},
			admitted: []bool{true, true, false},
			kinds:    []dispatch.Kind{dispatch.KindQueued, dispatch.KindQueued, dispatch.KindRejected},
			zeroUsed: 512,
		},
		{
			description: "no best fit look ahead",
			processes: []*process.Process{
				{ID: "A", Class: process.ClassHigh, RAM: 1000},
				{ID: "B", Class: process.ClassMedium, RAM: 1000},
				{ID: "C", Class: process.ClassLow, RAM: 536},
			},
			admitted:   []bool{true, false, true},
			kinds:      []dispatch.Kind{dispatch.KindQueued, dispatch.KindRejected, dispatch.KindQueued},
			sharedUsed: 1536,
		},
		{
			description: "pools are independent",
			processes: []*process.Process{
				{ID: "A", Class: process.ClassLow, RAM: 1536},
				{ID: "B", Class: process.ClassZero, RAM: 512},
				{ID: "C", Class: process.ClassHigh, RAM: 1},
			},
			admitted:   []bool{true, true, false},
			kinds:      []dispatch.Kind{dispatch.KindQueued, dispatch.KindQueued, dispatch.KindRejected},
			zeroUsed:   512,
			sharedUsed: 1536,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			publisher := event.NewPublisher(dispatch.NewLog())
			srv := New(DefaultConfig(), publisher)
			ctx := context.Background()
			for i, p := range tc.processes {
				ok, err := srv.TryAdmit(ctx, p)
				require.NoError(t, err)
				assert.Equal(t, tc.admitted[i], ok, p.ID)
			}
			assert.Equal(t, tc.kinds, publisher.Log().Kinds())
			pools := srv.Pools()
			assert.Equal(t, tc.zeroUsed, pools.PriorityZero.Used)
			assert.Equal(t, tc.sharedUsed, pools.Shared.Used)
			assert.LessOrEqual(t, pools.PriorityZero.Used, pools.PriorityZero.Capacity)
			assert.LessOrEqual(t, pools.Shared.Used, pools.Shared.Capacity)
		})
	}
}

func TestService_Queues(t *testing.T) {
	publisher := event.NewPublisher(dispatch.NewLog())
	srv := New(Config{TotalMemory: 1024, ReservedMemory: 256}, publisher, WithQueueCapacity(4))
	ctx := context.Background()
	for _, p := range []*process.Process{
		{ID: "P1", Class: process.ClassMedium, RAM: 10},
		{ID: "P2", Class: process.ClassZero, RAM: 10},
		{ID: "P3", Class: process.ClassMedium, RAM: 10},
		{ID: "P4", Class: process.ClassZero, RAM: 300},
	} {
		_, err := srv.TryAdmit(ctx, p)
		require.NoError(t, err)
	}
	assert.Equal(t, 768, srv.Pools().Shared.Capacity)
	assert.Equal(t, 1, srv.Queue(process.ClassZero).Len())
	assert.Equal(t, 2, srv.Queue(process.ClassMedium).Len())
	assert.True(t, srv.Queue(process.ClassHigh).IsEmpty())
	head, err := srv.Queue(process.ClassMedium).Peek(0)
	require.NoError(t, err)
	assert.Equal(t, "P1", head.ID)

	rejected := publisher.Log().Of("P4")
	require.Len(t, rejected, 1)
	assert.Equal(t, 300, rejected[0].Requested)
	assert.Equal(t, 246, rejected[0].Available)
}

func TestService_InvalidClass(t *testing.T) {
	publisher := event.NewPublisher(dispatch.NewLog())
	srv := New(DefaultConfig(), publisher)
	_, err := srv.TryAdmit(context.Background(), &process.Process{ID: "X", Class: 7})
	assert.True(t, errors.Is(err, process.ErrInvalidClass))
	assert.Equal(t, 0, publisher.Log().Len())
	assert.Nil(t, srv.Queue(7))
}
