// pkg/commands/initialize/init_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: testutil.TestFS
// PURPOSE: Test settings file generation

package initialize_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/scrpatch/pkg/commands/initialize"
	"github.com/arthur-debert/scrpatch/pkg/config"
	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/testutil"
)

var noLayers = config.Options{NoFile: true, NoEnv: true}

func TestInitStdout(t *testing.T) {
	res, err := initialize.Init(initialize.Options{Config: noLayers})
	require.NoError(t, err)
	assert.Empty(t, res.Written)
	assert.Contains(t, res.Content, "[xp]")
}

func TestInitWritesFile(t *testing.T) {
	fs := testutil.NewTestFS()
	opts := initialize.Options{Path: "cfg/scrpatch.toml", Commented: true, Config: noLayers, FS: fs}

	res, err := initialize.Init(opts)
	require.NoError(t, err)
	assert.Equal(t, "cfg/scrpatch.toml", res.Written)

	content := testutil.ReadFileT(t, fs, "cfg/scrpatch.toml")
	assert.Equal(t, res.Content, content)
	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(line, " = ") {
			assert.True(t, strings.HasPrefix(strings.TrimSpace(line), "#"), line)
		}
	}

	t.Run("refuses to overwrite", func(t *testing.T) {
		_, err := initialize.Init(opts)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	})

	t.Run("force overwrites", func(t *testing.T) {
		opts := opts
		opts.Force = true
		opts.Commented = false
		res, err := initialize.Init(opts)
		require.NoError(t, err)
		assert.Equal(t, res.Content, testutil.ReadFileT(t, fs, "cfg/scrpatch.toml"))
	})
}
