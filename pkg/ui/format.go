package ui

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/scrpatch/pkg/errors"
)

// Format selects a Renderer.
type Format int

const (
	FormatAuto Format = iota
	FormatTerminal
	FormatText
	FormatJSON
)

// formatNames lists accepted --format values. The first name of each format
// is its canonical spelling.
var formatNames = []struct {
	format Format
	names  []string
}{
	{FormatAuto, []string{"auto", ""}},
	{FormatTerminal, []string{"term", "terminal"}},
	{FormatText, []string{"text", "plain"}},
	{FormatJSON, []string{"json"}},
}

func (f Format) String() string {
	for _, fn := range formatNames {
		if fn.format == f {
			return fn.names[0]
		}
	}
	return "unknown"
}

// ParseFormat parses a --format value, ignoring case.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, fn := range formatNames {
		for _, name := range fn.names {
			if name == s {
				return fn.format, nil
			}
		}
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
		WithDetail("format", s).
		WithDetail("accepted", "auto, term, text, json")
}

// DetectFormat picks FormatTerminal for a colour capable terminal and
// FormatText for pipes, redirects, NO_COLOR and dumb terminals.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	fd := output.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}
	if termenv.NewOutput(output).Profile == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
