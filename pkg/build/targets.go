package build

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/scrpatch/pkg/registry"
)

//go:embed targets.yaml
var targetsYAML []byte

// Target maps a template to the script it generates.
type Target struct {
	Name        string `yaml:"name"`
	Template    string `yaml:"template"`
	Output      string `yaml:"output"`
	Always      bool   `yaml:"always"`
	Description string `yaml:"description"`
}

var targets = mustLoadTargets(targetsYAML)

// Targets returns the target registry, in write order.
func Targets() registry.Registry[Target] {
	return targets
}

// AllTargets returns every target, in write order.
func AllTargets() []Target {
	names := targets.Names()
	all := make([]Target, 0, len(names))
	for _, name := range names {
		all = append(all, registry.MustGet(targets, name))
	}
	return all
}

// LookupTarget returns the named target.
func LookupTarget(name string) (Target, error) {
	return targets.Get(name)
}

func loadTargets(data []byte) (registry.Registry[Target], error) {
	var manifest struct {
		Targets []Target `yaml:"targets"`
	}
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse target manifest: %w", err)
	}

	reg := registry.New[Target]()
	for _, t := range manifest.Targets {
		if t.Template == "" || t.Output == "" {
			return nil, fmt.Errorf("target %q needs a template and an output", t.Name)
		}
		if err := reg.Register(t.Name, t); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func mustLoadTargets(data []byte) registry.Registry[Target] {
	reg, err := loadTargets(data)
	if err != nil {
		panic(err)
	}
	return reg
}
