// Package text writes results as unstyled text for pipes and logs.
package text

import (
	"fmt"
	"io"
	"sort"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/ui/display"
)

// Renderer writes plain text.
type Renderer struct {
	output io.Writer
	plain  *display.TextRenderer
}

func New(output io.Writer) *Renderer {
	return &Renderer{output: output, plain: display.NewTextRenderer(output)}
}

func (r *Renderer) RenderBuild(res *display.BuildResult) error {
	return r.plain.RenderBuild(res)
}

func (r *Renderer) RenderTargets(list *display.TargetList) error {
	return r.plain.RenderTargets(list)
}

// RenderError writes "Error: msg" and one indented line per detail.
func (r *Renderer) RenderError(err error) error {
	if _, werr := fmt.Fprintf(r.output, "Error: %v\n", err); werr != nil {
		return werr
	}
	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, werr := fmt.Fprintf(r.output, "  %s: %v\n", k, details[k]); werr != nil {
			return werr
		}
	}
	return nil
}

func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
