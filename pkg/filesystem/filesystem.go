package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/arthur-debert/scrpatch/pkg/types"
)

// scriptFS adapts an afero.Fs to types.FS.
type scriptFS struct {
	fs afero.Fs
	// atomic replaces files through a temporary sibling and a rename, so a
	// reader never sees a half written script.
	atomic bool
}

// NewOS returns the disk filesystem. Writes are atomic.
func NewOS() types.FS {
	return &scriptFS{fs: afero.NewOsFs(), atomic: true}
}

// NewAferoFS wraps any afero filesystem.
func NewAferoFS(fs afero.Fs) types.FS {
	return &scriptFS{fs: fs}
}

// NewMemory returns an empty in-memory filesystem.
func NewMemory() types.FS {
	return NewAferoFS(afero.NewMemMapFs())
}

// NewDryRun returns a filesystem that reads through to the OS but keeps
// writes in memory, so a build can run end to end without touching disk.
func NewDryRun() types.FS {
	base := afero.NewReadOnlyFs(afero.NewOsFs())
	return NewAferoFS(afero.NewCopyOnWriteFs(base, afero.NewMemMapFs()))
}

func (s *scriptFS) Stat(name string) (fs.FileInfo, error) {
	return s.fs.Stat(name)
}

func (s *scriptFS) ReadFile(name string) ([]byte, error) {
	info, err := s.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(s.fs, name)
}

func (s *scriptFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if !s.atomic {
		return afero.WriteFile(s.fs, name, data, perm)
	}

	dir, base := filepath.Split(name)
	if dir == "" {
		dir = "."
	}
	tmp, err := afero.TempFile(s.fs, dir, "."+base+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = s.fs.Chmod(tmpName, perm)
	}
	if err == nil {
		err = s.fs.Rename(tmpName, name)
	}
	if err != nil {
		_ = s.fs.Remove(tmpName)
	}
	return err
}

func (s *scriptFS) MkdirAll(path string, perm fs.FileMode) error {
	return s.fs.MkdirAll(path, perm)
}

func (s *scriptFS) Remove(name string) error {
	return s.fs.Remove(name)
}
