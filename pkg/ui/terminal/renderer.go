// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/style"
	"github.com/arthur-debert/scrpatch/pkg/ui/display"
)

// Renderer provides rich terminal output using pterm and lipgloss
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderBuild writes a status line per script and a summary box.
func (r *Renderer) RenderBuild(res *display.BuildResult) error {
	if res == nil {
		return nil
	}

	title := res.Command
	if res.DryRun {
		title += " (dry run)"
	}
	if len(res.Files) == 0 {
		_, err := fmt.Fprintln(r.output, style.MutedStyle.Render("No scripts to build"))
		return err
	}

	files := make([]style.FileStatus, 0, len(res.Files))
	counts := map[style.Status]int{}
	for _, f := range res.Files {
		st := style.Status(f.Status)
		counts[st]++
		files = append(files, style.FileStatus{Path: f.Path, Status: st, DryRun: res.DryRun, Error: f.Error})
	}

	_, err := fmt.Fprintf(r.output, "%s\n%s\n\n%s\n",
		style.TitleStyle.Render(title),
		style.RenderFileStatuses(files),
		style.RenderSummary(res.OutputDir, counts))
	return err
}

// RenderTargets writes the target table.
func (r *Renderer) RenderTargets(list *display.TargetList) error {
	if list == nil {
		return nil
	}
	rows := make([][]string, 0, len(list.Targets))
	for _, t := range list.Targets {
		var flags []string
		if t.Always {
			flags = append(flags, "always")
		}
		if t.Planned {
			flags = append(flags, "planned")
		}
		if !t.Found {
			flags = append(flags, style.ErrorStyle.Render("missing"))
		}
		rows = append(rows, []string{
			style.Bold(t.Name),
			style.FamilyStyle(t.Output).Render(t.Output),
			strings.Join(flags, " "),
			t.Description,
		})
	}
	table, err := style.RenderTable([]string{"Target", "Output", "", "Description"}, rows)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(r.output, table)
	return err
}

// RenderError renders an error with its code and details
func (r *Renderer) RenderError(err error) error {
	msg := style.ErrorIndicator + " " + style.ErrorStyle.Render(err.Error())
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		for _, k := range sortedKeys(details) {
			msg += "\n" + style.Indent(style.MutedStyle.Render(fmt.Sprintf("%s: %v", k, details[k])), 1)
		}
	}
	_, werr := fmt.Fprintln(r.output, msg)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.Render(msg))
	return err
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
