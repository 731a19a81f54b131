// Package idgen generates run identifiers. NewFunc can be replaced in tests
// to get deterministic IDs.
package idgen
