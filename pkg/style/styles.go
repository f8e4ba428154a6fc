package style

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle    = lipgloss.NewStyle().Foreground(HeadingColor).Bold(true).MarginBottom(1)
	SubtitleStyle = lipgloss.NewStyle().Foreground(HeadingColor).Bold(true)
	NormalStyle   = lipgloss.NewStyle().Foreground(TextColor)
	MutedStyle    = lipgloss.NewStyle().Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)

	// BoxStyle frames the build summary.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 2)
)

var (
	PlayerStyle  = lipgloss.NewStyle().Foreground(PlayerColor).Bold(true)
	AIStyle      = lipgloss.NewStyle().Foreground(AIColor).Bold(true)
	VehicleStyle = lipgloss.NewStyle().Foreground(VehicleColor).Bold(true)
	InputStyle   = lipgloss.NewStyle().Foreground(InputColor).Bold(true)
)

// families maps the first directory under scripts/ to its style.
var families = map[string]lipgloss.Style{
	"player":          PlayerStyle,
	"inventory":       PlayerStyle,
	"progression":     PlayerStyle,
	"ai":              AIStyle,
	"nightaggression": AIStyle,
	"vehicles":        VehicleStyle,
	"inputs":          InputStyle,
}

// FamilyStyle picks the style for an output path by its scripts/
// subdirectory. Scripts directly under scripts/ get the muted style.
func FamilyStyle(output string) lipgloss.Style {
	rel := strings.TrimPrefix(filepath.ToSlash(output), "scripts/")
	if i := strings.Index(rel, "/scripts/"); i >= 0 {
		rel = rel[i+len("/scripts/"):]
	}
	dir, _, ok := strings.Cut(rel, "/")
	if !ok {
		return MutedStyle
	}
	if s, ok := families[dir]; ok {
		return s
	}
	return NormalStyle
}

var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	WarningIndicator = WarningStyle.Render("!")
)

// Indent pads s by two spaces per level.
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}

func Italic(s string) string {
	return lipgloss.NewStyle().Italic(true).Render(s)
}

func Underline(s string) string {
	return lipgloss.NewStyle().Underline(true).Render(s)
}
