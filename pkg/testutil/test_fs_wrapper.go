package testutil

import (
	"github.com/arthur-debert/scrpatch/pkg/types"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
)

// TestFS wraps filesystem.TestFileSystem to implement types.FS.
// Paths are relative; the pipeline tests use "templates" and "out" roots.
type TestFS struct {
	*filesystem.TestFileSystem
}

// NewTestFS creates an in-memory filesystem for pipeline and build tests.
func NewTestFS() types.FS {
	return &TestFS{
		TestFileSystem: filesystem.NewTestFileSystem(),
	}
}
