// Package display holds the render-ready views of command results. Renderers
// only ever see these types, never build or config internals.
package display

import (
	"time"
)

// File statuses
const (
	StatusWritten   = "written"   // output differs from the template
	StatusUnchanged = "unchanged" // output equals the template
	StatusFailed    = "failed"
	StatusRemoved   = "removed" // stale output pruned
)

// BuildResult is the result of a build or a dry run.
type BuildResult struct {
	Command   string       `json:"command"` // "build"
	OutputDir string       `json:"outputDir"`
	DryRun    bool         `json:"dryRun"`
	Files     []FileResult `json:"files"`
	Timestamp time.Time    `json:"timestamp"`
}

// FileResult is one line of a BuildResult.
type FileResult struct {
	Target   string        `json:"target"`
	Path     string        `json:"path"`
	Status   string        `json:"status"`
	Bytes    int           `json:"bytes,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
	Error    string        `json:"error,omitempty"`
	Code     string        `json:"code,omitempty"`
}

// Count returns how many files have status.
func (r *BuildResult) Count(status string) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}

// OK reports whether no file failed.
func (r *BuildResult) OK() bool {
	return r.Count(StatusFailed) == 0
}

// TargetList is the result of the templates command.
type TargetList struct {
	TemplateDir string       `json:"templateDir"`
	Targets     []TargetInfo `json:"targets"`
}

// TargetInfo describes one script target.
type TargetInfo struct {
	Name        string `json:"name"`
	Template    string `json:"template"`
	Output      string `json:"output"`
	Always      bool   `json:"always"`
	Planned     bool   `json:"planned"`
	Found       bool   `json:"found"` // template present in TemplateDir
	Description string `json:"description"`
}
