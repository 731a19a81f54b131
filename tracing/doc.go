// Package tracing wraps OpenTelemetry so that a simulation run and each
// per-class dispatch pass are recorded as spans. Without Init the global
// no-op provider is used and spans cost nothing.
package tracing
