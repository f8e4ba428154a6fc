package display

import (
	"fmt"
	"io"
)

// TextRenderer provides minimal text output
type TextRenderer struct {
	writer io.Writer
}

// NewTextRenderer creates a new text renderer
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{writer: w}
}

// RenderBuild writes one line per file followed by a summary line.
func (r *TextRenderer) RenderBuild(result *BuildResult) error {
	if result == nil {
		return nil
	}

	header := result.Command
	if result.DryRun {
		header += " (dry run)"
	}
	if _, err := fmt.Fprintln(r.writer, header); err != nil {
		return err
	}

	if len(result.Files) == 0 {
		_, err := fmt.Fprintln(r.writer, "No scripts to build")
		return err
	}

	for _, f := range result.Files {
		line := fmt.Sprintf("  %-10s %s", f.Status, f.Path)
		if f.Error != "" {
			line += ": " + f.Error
		}
		if _, err := fmt.Fprintln(r.writer, line); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(r.writer, Summary(result))
	return err
}

// RenderTargets writes the target table as aligned plain text.
func (r *TextRenderer) RenderTargets(list *TargetList) error {
	if list == nil {
		return nil
	}
	for _, t := range list.Targets {
		flags := ""
		if t.Always {
			flags += " always"
		}
		if !t.Found {
			flags += " missing"
		}
		if _, err := fmt.Fprintf(r.writer, "%-26s %-42s%s\n", t.Name, t.Output, flags); err != nil {
			return err
		}
	}
	return nil
}

// Summary is the one-line build summary shared by the renderers.
func Summary(result *BuildResult) string {
	s := fmt.Sprintf("%d written, %d unchanged, %d failed",
		result.Count(StatusWritten), result.Count(StatusUnchanged), result.Count(StatusFailed))
	if n := result.Count(StatusRemoved); n > 0 {
		s += fmt.Sprintf(", %d removed", n)
	}
	return s
}
