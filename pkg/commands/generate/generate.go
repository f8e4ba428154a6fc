// Package generate implements the build command: load settings, plan the
// scripts and write them.
package generate

import (
	"context"

	"github.com/arthur-debert/scrpatch/pkg/build"
	"github.com/arthur-debert/scrpatch/pkg/config"
	"github.com/arthur-debert/scrpatch/pkg/filesystem"
	"github.com/arthur-debert/scrpatch/pkg/logging"
	"github.com/arthur-debert/scrpatch/pkg/pipeline"
	"github.com/arthur-debert/scrpatch/pkg/types"
	"github.com/arthur-debert/scrpatch/pkg/ui/converter"
	"github.com/arthur-debert/scrpatch/pkg/ui/display"
)

// Options holds options for the build command
type Options struct {
	TemplateDir string
	OutputDir   string
	Config      config.Options
	Jobs        int
	DryRun      bool
	// Prune removes outputs of targets the settings no longer select.
	Prune bool
	// FS overrides the filesystem; nil selects the OS, or an in-memory
	// overlay when DryRun is set.
	FS types.FS
}

// Build runs a full build. A nil error with a failed file is possible: the
// result lists per-file outcomes and OK reports overall success.
func Build(ctx context.Context, opts Options) (*display.BuildResult, error) {
	logger := logging.GetLogger("commands.generate")
	logger.Info().
		Str("templates", opts.TemplateDir).
		Str("output", opts.OutputDir).
		Bool("dry_run", opts.DryRun).
		Int("jobs", opts.Jobs).
		Msg("Building scripts")

	params, err := config.Load(opts.Config)
	if err != nil {
		return nil, err
	}

	plan, err := build.Plan(params)
	if err != nil {
		return nil, err
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
		if opts.DryRun {
			fsys = filesystem.NewDryRun()
		}
	}

	o := build.NewOrchestrator(pipeline.NewRunner(fsys, opts.TemplateDir, opts.OutputDir), opts.Jobs)
	o.DryRun = opts.DryRun
	report := o.Build(ctx, plan, opts.Prune)

	logger.Info().
		Int("planned", len(plan)).
		Int("changed", report.Changed()).
		Int("failed", len(report.Failures)).
		Int("removed", len(report.Removed)).
		Msg("Build complete")

	return converter.FromReport(report, opts.OutputDir, opts.DryRun), nil
}
