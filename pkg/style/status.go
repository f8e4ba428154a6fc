package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Status is the outcome of one output file.
type Status string

const (
	StatusWritten   Status = "written"   // patched and written
	StatusUnchanged Status = "unchanged" // written, identical to the template
	StatusFailed    Status = "failed"    // not written
	StatusRemoved   Status = "removed"   // stale output pruned
)

// StatusVerbs are the past and dry-run phrasings of each status
var StatusVerbs = map[Status]struct {
	Past   string
	DryRun string
}{
	StatusWritten:   {Past: "patched", DryRun: "would be patched"},
	StatusUnchanged: {Past: "copied unchanged", DryRun: "would be copied unchanged"},
	StatusFailed:    {Past: "failed", DryRun: "would fail"},
	StatusRemoved:   {Past: "removed", DryRun: "would be removed"},
}

// StatusStyle returns the pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusWritten:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case StatusFailed:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	case StatusRemoved:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// FileStatus is one rendered line of a build.
type FileStatus struct {
	Path   string
	Status Status
	DryRun bool
	Error  string
}

// RenderFileStatus renders a single file status line
func RenderFileStatus(fs FileStatus) string {
	label := StatusStyle(fs.Status).Sprint(fmt.Sprintf(" %-9s ", fs.Status))

	msg := ""
	if verbs, ok := StatusVerbs[fs.Status]; ok {
		msg = verbs.Past
		if fs.DryRun {
			msg = verbs.DryRun
		}
	}
	if fs.Error != "" {
		msg += ": " + fs.Error
	}

	path := FamilyStyle(fs.Path).Render(fs.Path)
	return fmt.Sprintf("  %s %s %s", label, path, MutedStyle.Render(msg))
}

// RenderFileStatuses renders one line per file.
func RenderFileStatuses(files []FileStatus) string {
	lines := make([]string, 0, len(files))
	for _, f := range files {
		lines = append(lines, RenderFileStatus(f))
	}
	return strings.Join(lines, "\n")
}

// RenderSummary renders the build totals in a bordered box.
func RenderSummary(title string, counts map[Status]int) string {
	var parts []string
	for _, s := range []Status{StatusWritten, StatusUnchanged, StatusFailed, StatusRemoved} {
		n := counts[s]
		if n == 0 && s == StatusRemoved {
			continue
		}
		text := fmt.Sprintf("%d %s", n, s)
		switch {
		case s == StatusFailed && n > 0:
			text = ErrorStyle.Render(text)
		case s == StatusWritten && n > 0:
			text = SuccessStyle.Render(text)
		default:
			text = NormalStyle.Render(text)
		}
		parts = append(parts, text)
	}

	indicator := SuccessIndicator
	if counts[StatusFailed] > 0 {
		indicator = ErrorIndicator
	}
	body := SubtitleStyle.Render(title) + "\n" + indicator + " " + strings.Join(parts, MutedStyle.Render(" · "))
	return BoxStyle.Render(body)
}

// RenderTable renders rows under a header as a pterm table.
func RenderTable(header []string, rows [][]string) (string, error) {
	data := pterm.TableData{header}
	data = append(data, rows...)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
