// Package listing implements the templates command.
package listing

import (
	"github.com/arthur-debert/scrpatch/pkg/build"
	"github.com/arthur-debert/scrpatch/pkg/config"
	"github.com/arthur-debert/scrpatch/pkg/filesystem"
	"github.com/arthur-debert/scrpatch/pkg/types"
	"github.com/arthur-debert/scrpatch/pkg/ui/converter"
	"github.com/arthur-debert/scrpatch/pkg/ui/display"
)

// Options holds options for the templates command
type Options struct {
	TemplateDir string
	Config      config.Options
	FS          types.FS
}

// ListTargets lists every target with whether the current settings plan it
// and whether its template is present.
func ListTargets(opts Options) (*display.TargetList, error) {
	params, err := config.Load(opts.Config)
	if err != nil {
		return nil, err
	}
	plan, err := build.Plan(params)
	if err != nil {
		return nil, err
	}
	planned := make(map[string]bool, len(plan))
	for _, p := range plan {
		planned[p.Name] = true
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return converter.FromTargets(fsys, opts.TemplateDir, build.AllTargets(), planned), nil
}
