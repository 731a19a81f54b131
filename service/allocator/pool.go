package allocator

import "github.com/viant/cpusched/model/process"

// Pool represents a fixed memory budget. Used only grows within a run.
type Pool struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Used     int    `json:"used"`
}

// Remaining returns the memory still available
func (p *Pool) Remaining() int {
	return p.Capacity - p.Used
}

// Fits returns true if ram can be debited
func (p *Pool) Fits(ram int) bool {
	return ram <= p.Remaining()
}

func (p *Pool) debit(ram int) {
	p.Used += ram
}

// Pools represents the reserved priority zero pool and the pool shared by
// all other classes.
type Pools struct {
	PriorityZero Pool `json:"priorityZero"`
	Shared       Pool `json:"shared"`
}

// NewPools partitions total memory, reserving the supplied amount for priority zero.
func NewPools(total, reserved int) Pools {
	return Pools{
		PriorityZero: Pool{Name: "priorityZero", Capacity: reserved},
		Shared:       Pool{Name: "shared", Capacity: total - reserved},
	}
}

// For returns the pool a class draws from
func (p *Pools) For(class process.Class) *Pool {
	if class.Reserved() {
		return &p.PriorityZero
	}
	return &p.Shared
}
