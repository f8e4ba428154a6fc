// Package logging configures zerolog for scrpatch. Console output goes to
// stderr; a JSON copy goes to a log file under the XDG state directory.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arthur-debert/scrpatch/pkg/errors"
)

// LogFileName is the name of the log file under the XDG state directory
const LogFileName = "scrpatch.log"

// EnvLogFile overrides the log file path. "off" disables the file.
const EnvLogFile = "SCRPATCH_LOG_FILE"

// Level maps the -v count to a level: warnings by default, then info,
// debug and trace.
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// SetupLogger configures the global logger for verbosity.
func SetupLogger(verbosity int) {
	zerolog.SetGlobalLevel(Level(verbosity))

	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}}

	logFile := LogFilePath()
	var fileErr error
	if logFile != "" {
		var f *os.File
		if f, fileErr = openLogFile(logFile); fileErr == nil {
			writers = append(writers, f)
		}
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logFile).Msg("Logging to console only")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

// GetLogger returns a logger tagged with the given component name
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// TargetLogger returns a component logger that also carries the script
// target being built.
func TargetLogger(component, target string) zerolog.Logger {
	return log.With().Str("component", component).Str("target", target).Logger()
}

// LogFilePath returns the log file path: $SCRPATCH_LOG_FILE when set,
// otherwise $XDG_STATE_HOME/scrpatch/scrpatch.log. It is empty when file
// logging is off.
func LogFilePath() string {
	if p, ok := os.LookupEnv(EnvLogFile); ok {
		if strings.EqualFold(p, "off") {
			return ""
		}
		return p
	}
	return filepath.Join(xdg.StateHome, "scrpatch", LogFileName)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "failed to create log directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileWrite, "failed to open log file")
	}
	return f, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
