// Package filesystem provides the types.FS implementations scrpatch builds
// with: the disk, with atomic replacement of generated scripts; any afero
// filesystem; and a dry-run filesystem that reads from disk but keeps every
// write in memory.
package filesystem
