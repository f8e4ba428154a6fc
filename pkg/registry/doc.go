// Package registry provides a generic, thread-safe registry of named items
// that remembers registration order. The build package keeps its targets
// here.
package registry
