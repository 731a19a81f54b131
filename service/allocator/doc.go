// Package allocator owns the memory pools and the per-class queues of a run.
// It is the only component allowed to debit a pool or admit a process into a
// queue; admission is decided once per process, in input order.
package allocator
