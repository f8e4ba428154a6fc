// Package types defines the interfaces shared across scrpatch packages.
package types
