package style

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// markupTags are the [tag]text[/tag] pairs Render understands. Inner tags
// come first so a family tag nested in a status tag is styled before its
// parent.
var markupTags = []struct {
	name  string
	style lipgloss.Style
}{
	{"player", PlayerStyle},
	{"ai", AIStyle},
	{"vehicle", VehicleStyle},
	{"input", InputStyle},
	{"muted", MutedStyle},
	{"bold", lipgloss.NewStyle().Bold(true)},
	{"italic", lipgloss.NewStyle().Italic(true)},
	{"success", SuccessStyle},
	{"warning", WarningStyle},
	{"error", ErrorStyle},
	{"title", SubtitleStyle},
}

type markupRule struct {
	re    *regexp.Regexp
	style lipgloss.Style
}

var markupRules = func() []markupRule {
	rules := make([]markupRule, len(markupTags))
	for i, t := range markupTags {
		rules[i] = markupRule{
			re:    regexp.MustCompile(`\[` + t.name + `\]((?s).*?)\[/` + t.name + `\]`),
			style: t.style,
		}
	}
	return rules
}()

// Render replaces markup tags in text with styled output. Unknown tags are
// left as they are.
func Render(text string) string {
	for _, r := range markupRules {
		text = r.re.ReplaceAllStringFunc(text, func(m string) string {
			return r.style.Render(r.re.FindStringSubmatch(m)[1])
		})
	}
	return text
}
