// Package progress keeps aggregated event counters for a simulation run so
// that callers can observe admission and dispatch as it happens.
package progress
