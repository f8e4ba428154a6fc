// Package ui renders command results as rich terminal output, plain text or
// JSON.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/ui/display"
	"github.com/arthur-debert/scrpatch/pkg/ui/json"
	"github.com/arthur-debert/scrpatch/pkg/ui/terminal"
	"github.com/arthur-debert/scrpatch/pkg/ui/text"
)

// Renderer writes command results in one output format.
type Renderer interface {
	RenderBuild(res *display.BuildResult) error
	RenderTargets(list *display.TargetList) error
	// RenderError writes err with its code and details, if any.
	RenderError(err error) error
	RenderMessage(msg string) error
}

var (
	_ Renderer = (*json.Renderer)(nil)
	_ Renderer = (*terminal.Renderer)(nil)
	_ Renderer = (*text.Renderer)(nil)
)

// NewRenderer creates a renderer for format. FormatAuto inspects output
// when it is a file and falls back to the terminal renderer otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	if format == FormatAuto {
		format = FormatTerminal
		if file, ok := output.(*os.File); ok {
			format = DetectFormat(file)
		}
	}

	switch format {
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
