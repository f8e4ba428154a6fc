// Package commands holds the implementations behind the scrpatch CLI. Each
// subpackage takes an options struct and returns a display-ready result, so
// the cobra layer only parses flags and renders.
package commands
