// Package initialize implements the init command, which writes a starter
// settings file.
package initialize

import (
	"path/filepath"

	"github.com/arthur-debert/scrpatch/pkg/config"
	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/filesystem"
	"github.com/arthur-debert/scrpatch/pkg/logging"
	"github.com/arthur-debert/scrpatch/pkg/types"
)

// Options holds options for the init command
type Options struct {
	// Path is the file to write. Empty means only return the content.
	Path string
	// Commented writes every default as a comment instead of the current
	// settings.
	Commented bool
	Force     bool
	Config    config.Options
	FS        types.FS
}

// Result is what init produced.
type Result struct {
	Content string
	Written string // empty when nothing was written
}

// Init renders a settings file and writes it to Path unless Path exists.
func Init(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.initialize")

	var content string
	if opts.Commented {
		content = config.GenerateCommented()
	} else {
		params, err := config.Load(opts.Config)
		if err != nil {
			return nil, err
		}
		data, err := config.Generate(params)
		if err != nil {
			return nil, err
		}
		content = string(data)
	}

	result := &Result{Content: content}
	if opts.Path == "" {
		return result, nil
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	if _, err := fsys.Stat(opts.Path); err == nil && !opts.Force {
		return nil, errors.Newf(errors.ErrAlreadyExists, "%s already exists; use --force to overwrite", opts.Path).
			WithDetail("path", opts.Path)
	}
	if dir := filepath.Dir(opts.Path); dir != "." {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir)
		}
	}
	if err := fsys.WriteFile(opts.Path, []byte(content), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", opts.Path)
	}

	logger.Info().Str("path", opts.Path).Bool("commented", opts.Commented).Msg("Wrote settings file")
	result.Written = opts.Path
	return result, nil
}
