package testutil

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/scrpatch/pkg/types"
)

// CreateFileT writes content to path, creating parent directories.
func CreateFileT(t *testing.T, fsys types.FS, name, content string) {
	t.Helper()

	if err := fsys.MkdirAll(path.Dir(name), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", name, err)
	}
	if err := fsys.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", name, err)
	}
}

// ReadFileT returns the content at name or fails the test.
func ReadFileT(t *testing.T, fsys types.FS, name string) string {
	t.Helper()

	data, err := fsys.ReadFile(name)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", name, err)
	}
	return string(data)
}

// LoadTemplatesT copies every .scr file of the disk directory src into
// fsys under dest and returns the number of files copied.
func LoadTemplatesT(t *testing.T, fsys types.FS, src, dest string) int {
	t.Helper()

	entries, err := os.ReadDir(src)
	if err != nil {
		t.Fatalf("Failed to list templates in %s: %v", src, err)
	}
	n := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".scr") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(src, e.Name()))
		if err != nil {
			t.Fatalf("Failed to read template %s: %v", e.Name(), err)
		}
		CreateFileT(t, fsys, path.Join(dest, e.Name()), string(data))
		n++
	}
	return n
}

// IsNotExist reports whether err means a missing file, for both the OS and
// the in-memory filesystems.
func IsNotExist(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return true
	}
	return strings.Contains(err.Error(), "file does not exist") ||
		strings.Contains(err.Error(), "no such file or directory")
}
