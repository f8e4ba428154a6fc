// Package pipeline turns one template into one generated script.
//
// A Pipeline names a template, an output path and the ordered patches that
// produce it. The Runner reads the template through a types.FS, applies the
// patches and writes the result. A failing patch aborts that file before
// anything is written.
package pipeline

import (
	"context"
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/logging"
	"github.com/arthur-debert/scrpatch/pkg/patch"
	"github.com/arthur-debert/scrpatch/pkg/types"
)

// Pipeline is the recipe for one output file. Template and Output are
// relative to the runner's TemplateDir and OutputDir.
type Pipeline struct {
	Name     string
	Template string
	Output   string
	Patches  []patch.Func
}

// Result describes a successfully written output file.
type Result struct {
	Name     string
	Output   string
	Changed  bool // output differs from the template
	Bytes    int
	Duration time.Duration
}

// Runner executes pipelines against a filesystem.
type Runner struct {
	FS          types.FS
	TemplateDir string
	OutputDir   string
}

// NewRunner creates a Runner reading from templateDir and writing to outputDir.
func NewRunner(fsys types.FS, templateDir, outputDir string) *Runner {
	return &Runner{FS: fsys, TemplateDir: templateDir, OutputDir: outputDir}
}

// Run builds p and writes the result under OutputDir.
func (r *Runner) Run(ctx context.Context, p Pipeline) (Result, error) {
	logger := logging.TargetLogger("pipeline", p.Name)
	defer logging.LogOperationStart(logger, "run")()

	start := time.Now()
	src, out, err := r.build(ctx, p)
	if err != nil {
		logger.Debug().Err(err).Msg("Pipeline failed")
		return Result{}, err
	}

	dest := filepath.Join(r.OutputDir, p.Output)
	if err := r.FS.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return Result{}, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(dest)).
			WithDetail("target", p.Name)
	}
	if err := r.FS.WriteFile(dest, []byte(out), 0644); err != nil {
		return Result{}, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dest).
			WithDetail("target", p.Name)
	}

	res := Result{
		Name:     p.Name,
		Output:   dest,
		Changed:  out != src,
		Bytes:    len(out),
		Duration: time.Since(start),
	}
	logger.Info().
		Str("output", dest).
		Bool("changed", res.Changed).
		Int("bytes", res.Bytes).
		Msg("Wrote script")
	return res, nil
}

// Preview returns the patched text of p without writing anything.
func (r *Runner) Preview(ctx context.Context, p Pipeline) (string, error) {
	_, out, err := r.build(ctx, p)
	return out, err
}

func (r *Runner) build(ctx context.Context, p Pipeline) (string, string, error) {
	src, err := r.readTemplate(p)
	if err != nil {
		return "", "", err
	}

	text := src
	for i, fn := range p.Patches {
		if err := ctx.Err(); err != nil {
			return "", "", errors.Wrapf(err, errors.ErrCancelled, "%s cancelled before patch #%d", p.Name, i).
				WithDetail("target", p.Name)
		}
		if fn == nil {
			return "", "", errors.Newf(errors.ErrInvalidInput, "%s: patch #%d is nil", p.Name, i).
				WithDetail("target", p.Name).
				WithDetail("index", i)
		}
		// Engine errors are returned as-is so their code and message survive.
		if text, err = fn(text); err != nil {
			return "", "", err
		}
	}
	return src, text, nil
}

func (r *Runner) readTemplate(p Pipeline) (string, error) {
	path := filepath.Join(r.TemplateDir, p.Template)
	data, err := r.FS.ReadFile(path)
	if err != nil {
		if isNotExist(err) {
			return "", errors.Wrapf(err, errors.ErrTemplateNotFound, "template %s not found", path).
				WithDetail("target", p.Name).
				WithDetail("path", path)
		}
		return "", errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path).
			WithDetail("target", p.Name)
	}
	return string(data), nil
}

func isNotExist(err error) bool {
	if stderrors.Is(err, fs.ErrNotExist) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "file does not exist") ||
		strings.Contains(msg, "no such file or directory")
}
