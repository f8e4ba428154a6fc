// pkg/logging/logging_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: temporary XDG state directory
// PURPOSE: Test verbosity levels, log file placement and component loggers

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)
			t.Setenv(EnvLogFile, filepath.Join(tempDir, "scrpatch", LogFileName))
			xdg.Reload()

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "scrpatch", LogFileName)
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestLogFilePath(t *testing.T) {
	t.Setenv(EnvLogFile, "")
	require.NoError(t, os.Unsetenv(EnvLogFile))
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	xdg.Reload()
	assert.Equal(t, filepath.Join("/custom/state", "scrpatch", "scrpatch.log"), LogFilePath())

	t.Setenv(EnvLogFile, "/tmp/build.log")
	assert.Equal(t, "/tmp/build.log", LogFilePath())

	t.Setenv(EnvLogFile, "OFF")
	assert.Equal(t, "", LogFilePath())
}

func TestSetupLoggerWithoutFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	t.Setenv(EnvLogFile, "off")
	xdg.Reload()

	SetupLogger(1)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	_, err := os.Stat(filepath.Join(dir, "scrpatch"))
	assert.True(t, os.IsNotExist(err))
}

func TestTargetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := TargetLogger("pipeline", "aipresetpool")
	logger.Info().Msg("built")

	assert.Contains(t, buf.String(), `"component":"pipeline"`)
	assert.Contains(t, buf.String(), `"target":"aipresetpool"`)
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := GetLogger("pipeline")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"pipeline"`)
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	done := LogOperationStart(logger, "build")
	require.Contains(t, buf.String(), "Operation started")

	done()
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), `"duration"`)
}
