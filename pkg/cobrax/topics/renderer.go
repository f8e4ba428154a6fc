package topics

import (
	"os"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// Renderer formats a topic's content. ext is the topic file extension,
// including the dot.
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer returns content unchanged.
type PlainRenderer struct{}

// Render returns content.
func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}

// GlamourRenderer renders markdown topics for the terminal. Other formats
// pass through.
type GlamourRenderer struct {
	// Style is a glamour style name or a path to a style file. Empty means
	// "auto" on a terminal and "notty" otherwise.
	Style string
	// Width wraps output at this column; 0 keeps glamour's default.
	Width int

	once sync.Once
	term *glamour.TermRenderer
}

// NewGlamourRenderer returns a GlamourRenderer with the style chosen from
// stdout.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{}
}

func (r *GlamourRenderer) style() string {
	if r.Style != "" {
		return r.Style
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return "auto"
	}
	return "notty"
}

// Render converts markdown, falling back to the raw content when glamour
// fails.
func (r *GlamourRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	r.once.Do(func() {
		var opts []glamour.TermRendererOption
		if s := r.style(); s == "auto" {
			opts = append(opts, glamour.WithAutoStyle())
		} else {
			opts = append(opts, glamour.WithStylePath(s))
		}
		if r.Width > 0 {
			opts = append(opts, glamour.WithWordWrap(r.Width))
		}
		r.term, _ = glamour.NewTermRenderer(opts...)
	})
	if r.term == nil {
		return content
	}

	out, err := r.term.Render(content)
	if err != nil {
		return content
	}
	return out
}
