package types

import (
	"io/fs"
)

// FS is what a build needs from a filesystem. Templates are read, generated
// scripts are written, and scripts of targets that are no longer selected
// are removed.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
}
