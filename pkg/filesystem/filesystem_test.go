// pkg/filesystem/filesystem_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: afero MemMapFs, OS temp dir
// PURPOSE: Test the afero adapter, the OS filesystem and dry-run isolation

package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/scrpatch/pkg/filesystem"
)

func TestAferoFS(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fs.MkdirAll("scripts/player", 0755))
	require.NoError(t, fs.WriteFile("scripts/player/player_variables.scr", []byte("Param();"), 0644))

	data, err := fs.ReadFile("scripts/player/player_variables.scr")
	require.NoError(t, err)
	assert.Equal(t, "Param();", string(data))

	_, err = fs.ReadFile("scripts/player")
	assert.Error(t, err, "reading a directory fails")

	require.NoError(t, fs.Remove("scripts/player/player_variables.scr"))
	_, err = fs.Stat("scripts/player/player_variables.scr")
	assert.True(t, os.IsNotExist(err))
}

func TestOSFS(t *testing.T) {
	dir := t.TempDir()
	fs := filesystem.NewOS()
	path := filepath.Join(dir, "a", "b.scr")

	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fs.WriteFile(path, []byte("x"), 0644))

	info, err := fs.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1), info.Size())

	require.NoError(t, fs.WriteFile(path, []byte("replaced"), 0644))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "replaced", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestMemory(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.WriteFile("x.scr", []byte("x"), 0644))
	_, err := os.Stat("x.scr")
	assert.True(t, os.IsNotExist(err))
}

func TestDryRunKeepsWritesInMemory(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "template.scr")
	require.NoError(t, os.WriteFile(tmpl, []byte("vanilla"), 0644))

	fs := filesystem.NewDryRun()

	data, err := fs.ReadFile(tmpl)
	require.NoError(t, err)
	assert.Equal(t, "vanilla", string(data))

	out := filepath.Join(dir, "out", "patched.scr")
	require.NoError(t, fs.MkdirAll(filepath.Dir(out), 0755))
	require.NoError(t, fs.WriteFile(out, []byte("patched"), 0644))

	data, err = fs.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "patched", string(data))

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err), "dry run must not write to disk")
}
