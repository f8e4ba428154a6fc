// Package preview renders one patched script without writing it.
package preview

import (
	"context"

	"github.com/arthur-debert/scrpatch/pkg/build"
	"github.com/arthur-debert/scrpatch/pkg/config"
	"github.com/arthur-debert/scrpatch/pkg/filesystem"
	"github.com/arthur-debert/scrpatch/pkg/logging"
	"github.com/arthur-debert/scrpatch/pkg/pipeline"
	"github.com/arthur-debert/scrpatch/pkg/types"
)

// Options holds options for the patch command
type Options struct {
	TemplateDir string
	Target      string
	Config      config.Options
	FS          types.FS
}

// Preview returns the patched text of one target. Targets the settings do
// not select come back as their unmodified template.
func Preview(ctx context.Context, opts Options) (string, error) {
	logger := logging.GetLogger("commands.preview")
	logger.Debug().Str("target", opts.Target).Msg("Previewing target")

	params, err := config.Load(opts.Config)
	if err != nil {
		return "", err
	}
	p, err := build.PlanTarget(params, opts.Target)
	if err != nil {
		return "", err
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return pipeline.NewRunner(fsys, opts.TemplateDir, "").Preview(ctx, p)
}
