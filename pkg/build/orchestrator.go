package build

import (
	"context"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/logging"
	"github.com/arthur-debert/scrpatch/pkg/pipeline"
)

// Failure records one output file that could not be built.
type Failure struct {
	Name   string
	Output string
	Err    error
}

// Report is the outcome of a build, in plan order.
type Report struct {
	Results  []pipeline.Result
	Failures []Failure
	// Removed lists stale outputs of targets that were not planned.
	Removed []string
}

// OK reports whether every planned file was written.
func (r Report) OK() bool { return len(r.Failures) == 0 }

// Changed counts written files that differ from their template.
func (r Report) Changed() int {
	n := 0
	for _, res := range r.Results {
		if res.Changed {
			n++
		}
	}
	return n
}

// Orchestrator runs a plan. Files are independent: a failing file is
// recorded and the others still run.
type Orchestrator struct {
	Runner *pipeline.Runner
	// Jobs bounds how many files are built at once; values below 1 mean 1.
	Jobs int
	// DryRun makes Prune report stale outputs without removing them.
	DryRun bool
}

// NewOrchestrator creates an Orchestrator over runner.
func NewOrchestrator(runner *pipeline.Runner, jobs int) *Orchestrator {
	return &Orchestrator{Runner: runner, Jobs: jobs}
}

type outcome struct {
	result pipeline.Result
	err    error
	ran    bool
}

// Run builds every pipeline. Once ctx is done no new file is started and
// the remaining ones are reported as cancelled.
func (o *Orchestrator) Run(ctx context.Context, plan []pipeline.Pipeline) Report {
	logger := logging.GetLogger("build")
	defer logging.LogOperationStart(logger, "build")()

	jobs := o.Jobs
	if jobs < 1 {
		jobs = 1
	}

	outcomes := make([]outcome, len(plan))
	var g errgroup.Group
	g.SetLimit(jobs)

	for i, p := range plan {
		if ctx.Err() != nil {
			break
		}
		i, p := i, p
		g.Go(func() error {
			res, err := o.Runner.Run(ctx, p)
			outcomes[i] = outcome{result: res, err: err, ran: true}
			return nil
		})
	}
	_ = g.Wait()

	var report Report
	for i, p := range plan {
		out := outcomes[i]
		switch {
		case !out.ran:
			report.Failures = append(report.Failures, Failure{
				Name:   p.Name,
				Output: p.Output,
				Err: errors.Wrapf(ctx.Err(), errors.ErrCancelled, "%s not started", p.Name).
					WithDetail("target", p.Name),
			})
		case out.err != nil:
			logger.Error().Err(out.err).Str("target", p.Name).Msg("Build failed")
			report.Failures = append(report.Failures, Failure{Name: p.Name, Output: p.Output, Err: out.err})
		default:
			report.Results = append(report.Results, out.result)
		}
	}

	logger.Info().
		Int("written", len(report.Results)).
		Int("failed", len(report.Failures)).
		Msg("Build finished")
	return report
}

// Stale returns the existing outputs of known targets that are not in plan.
func (o *Orchestrator) Stale(plan []pipeline.Pipeline) []string {
	planned := make(map[string]bool, len(plan))
	for _, p := range plan {
		planned[p.Name] = true
	}

	var stale []string
	for _, name := range targets.Names() {
		if planned[name] {
			continue
		}
		path := filepath.Join(o.Runner.OutputDir, registryTarget(name).Output)
		if _, err := o.Runner.FS.Stat(path); err == nil {
			stale = append(stale, path)
		}
	}
	return stale
}

// Prune removes the Stale outputs, so a build never leaves scripts from an
// earlier configuration behind. It returns the removed paths.
func (o *Orchestrator) Prune(plan []pipeline.Pipeline) ([]string, error) {
	stale := o.Stale(plan)
	if o.DryRun {
		return stale, nil
	}

	removed := make([]string, 0, len(stale))
	for _, path := range stale {
		if err := o.Runner.FS.Remove(path); err != nil {
			return removed, errors.Wrapf(err, errors.ErrFileWrite, "failed to remove stale %s", path).
				WithDetail("path", path)
		}
		removed = append(removed, path)
	}
	return removed, nil
}

// Build runs plan and, when prune is set and every file was written,
// removes the stale outputs of unplanned targets. A failed build prunes
// nothing.
func (o *Orchestrator) Build(ctx context.Context, plan []pipeline.Pipeline, prune bool) Report {
	report := o.Run(ctx, plan)
	if !prune || !report.OK() {
		return report
	}
	removed, err := o.Prune(plan)
	report.Removed = removed
	if err != nil {
		report.Failures = append(report.Failures, Failure{Name: "prune", Err: err})
	}
	return report
}
