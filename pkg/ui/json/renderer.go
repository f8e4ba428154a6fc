// Package json writes results as indented JSON documents, one per call.
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/ui/display"
)

// Renderer encodes results as JSON.
type Renderer struct {
	encoder *json.Encoder
}

func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

// buildDoc adds per-status totals to a build result.
type buildDoc struct {
	*display.BuildResult
	Summary map[string]int `json:"summary"`
}

func (r *Renderer) RenderBuild(res *display.BuildResult) error {
	if res == nil {
		return r.encoder.Encode(nil)
	}
	summary := map[string]int{}
	for _, st := range []string{display.StatusWritten, display.StatusUnchanged, display.StatusFailed, display.StatusRemoved} {
		summary[st] = res.Count(st)
	}
	return r.encoder.Encode(buildDoc{BuildResult: res, Summary: summary})
}

func (r *Renderer) RenderTargets(list *display.TargetList) error {
	return r.encoder.Encode(list)
}

// RenderError encodes the message, the error code when known and the
// details.
func (r *Renderer) RenderError(err error) error {
	obj := map[string]interface{}{
		"error": err.Error(),
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		obj["code"] = code
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		obj["details"] = details
	}
	return r.encoder.Encode(obj)
}

func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
