package config

import (
	_ "embed"
	"sync"

	"github.com/knadh/koanf/parsers/toml"

	"github.com/arthur-debert/scrpatch/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// DefaultsContent returns the embedded defaults file.
func DefaultsContent() string {
	return string(defaultConfig)
}

var (
	defaultsOnce sync.Once
	defaultsTree map[string]interface{}
	defaultsErr  error
)

// defaults parses the embedded file once. Callers get the shared tree and
// must not modify it; confmap.Provider copies it before koanf merges.
func defaults() (map[string]interface{}, error) {
	defaultsOnce.Do(func() {
		defaultsTree, defaultsErr = toml.Parser().Unmarshal(defaultConfig)
		if defaultsErr != nil {
			defaultsErr = errors.Wrap(defaultsErr, errors.ErrConfigParse, "failed to parse embedded defaults")
		}
	})
	return defaultsTree, defaultsErr
}
