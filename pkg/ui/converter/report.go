// Package converter turns build and manifest results into display views.
package converter

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/scrpatch/pkg/build"
	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/types"
	"github.com/arthur-debert/scrpatch/pkg/ui/display"
)

// FromReport converts a build report. Written files come first, then
// failures, then pruned files.
func FromReport(report build.Report, outputDir string, dryRun bool) *display.BuildResult {
	res := &display.BuildResult{
		Command:   "build",
		OutputDir: outputDir,
		DryRun:    dryRun,
		Files:     make([]display.FileResult, 0, len(report.Results)+len(report.Failures)+len(report.Removed)),
		Timestamp: time.Now(),
	}

	for _, r := range report.Results {
		status := display.StatusUnchanged
		if r.Changed {
			status = display.StatusWritten
		}
		res.Files = append(res.Files, display.FileResult{
			Target:   r.Name,
			Path:     r.Output,
			Status:   status,
			Bytes:    r.Bytes,
			Duration: r.Duration,
		})
	}

	for _, f := range report.Failures {
		path := ""
		if f.Output != "" {
			path = filepath.Join(outputDir, f.Output)
		}
		res.Files = append(res.Files, display.FileResult{
			Target: f.Name,
			Path:   path,
			Status: display.StatusFailed,
			Error:  f.Err.Error(),
			Code:   string(errors.GetErrorCode(f.Err)),
		})
	}

	for _, path := range report.Removed {
		res.Files = append(res.Files, display.FileResult{
			Target: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
			Path:   path,
			Status: display.StatusRemoved,
		})
	}
	return res
}

// FromTargets lists the script targets, marking which ones plan builds and
// which templates exist under templateDir.
func FromTargets(fsys types.FS, templateDir string, targets []build.Target, plan map[string]bool) *display.TargetList {
	list := &display.TargetList{
		TemplateDir: templateDir,
		Targets:     make([]display.TargetInfo, 0, len(targets)),
	}
	for _, t := range targets {
		_, err := fsys.Stat(filepath.Join(templateDir, t.Template))
		list.Targets = append(list.Targets, display.TargetInfo{
			Name:        t.Name,
			Template:    t.Template,
			Output:      t.Output,
			Always:      t.Always,
			Planned:     plan[t.Name],
			Found:       err == nil,
			Description: t.Description,
		})
	}
	return list
}
