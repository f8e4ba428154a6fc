// Package testutil provides filesystem helpers for scrpatch tests.
//
// NewTestFS returns a types.FS backed by synthfs' in-memory TestFileSystem,
// so pipeline and build tests never touch the disk. LoadTemplatesT seeds it
// with the template fixtures. The *T helpers fail the test on error
// instead of returning it.
package testutil
