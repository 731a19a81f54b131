// Package processor drains the per-class queues. Each priority class is bound
// to one strategy: first-come-first-served, shortest-job-first, or round
// robin with the class quantum.
package processor
