package config

import (
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/logging"
)

const (
	// FileName is the settings file looked up in the working directory.
	FileName = "scrpatch.toml"
	// EnvPrefix prefixes environment overrides: SCRPATCH_XP_MODE=legend.
	EnvPrefix = "SCRPATCH_"
)

// Options selects the layers applied on top of the embedded defaults.
type Options struct {
	// File is an explicit settings file. When empty, FileName in the working
	// directory and then $XDG_CONFIG_HOME/scrpatch/scrpatch.toml are tried.
	File string
	// Sets are key=value overrides, applied last.
	Sets []string
	// NoFile skips settings file discovery. An explicit File is still loaded.
	NoFile bool
	// NoEnv skips SCRPATCH_ environment variables.
	NoEnv bool
}

// Load merges every layer and returns validated Params.
func Load(opts Options) (Params, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	// 1. Embedded defaults
	tree, err := defaults()
	if err != nil {
		return Params{}, err
	}
	if err := k.Load(confmap.Provider(tree, ""), nil); err != nil {
		return Params{}, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	known := envKeys(k.Keys())

	// 2. Settings file
	path, err := resolveFile(opts.File, !opts.NoFile)
	if err != nil {
		return Params{}, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return Params{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded settings file")
	}

	// 3. Environment
	if !opts.NoEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			return known[strings.TrimPrefix(s, EnvPrefix)]
		}), nil)
		if err != nil {
			return Params{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
		}
	}

	// 4. --set overrides
	if len(opts.Sets) > 0 {
		sets, err := parseSets(opts.Sets)
		if err != nil {
			return Params{}, err
		}
		if err := k.Load(confmap.Provider(sets, "."), nil); err != nil {
			return Params{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var p Params
	if err := unmarshal(k, &p); err != nil {
		return Params{}, err
	}
	if err := Validate(p); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Defaults returns the embedded defaults alone.
func Defaults() (Params, error) {
	return Load(Options{NoFile: true, NoEnv: true})
}

func unmarshal(k *koanf.Koanf, p *Params) error {
	conf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           p,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.TextUnmarshallerHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", p, conf); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "failed to decode settings")
	}
	return nil
}

// resolveFile returns the settings file to load, or "" when there is none.
// An explicit file must exist.
func resolveFile(explicit string, discover bool) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "settings file %s not found", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}
	if !discover {
		return "", nil
	}
	if _, err := os.Stat(FileName); err == nil {
		return FileName, nil
	}
	if path, err := xdg.SearchConfigFile("scrpatch/" + FileName); err == nil {
		return path, nil
	}
	return "", nil
}

// envKeys maps XP_OPENWORLD_MULTIPLIER style names to their dotted keys.
// Keys are taken from the defaults so underscores inside key names
// survive.
func envKeys(keys []string) map[string]string {
	m := make(map[string]string, len(keys))
	for _, key := range keys {
		name := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		m[name] = key
	}
	return m
}

// parseSets turns key=value pairs into a flat override map.
func parseSets(sets []string) (map[string]interface{}, error) {
	m := make(map[string]interface{}, len(sets))
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrConfigParse, "invalid override %q, expected key=value", s).
				WithDetail("override", s)
		}
		m[key] = strings.TrimSpace(value)
	}
	return m, nil
}
