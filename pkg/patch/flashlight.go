package patch

import (
	"fmt"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/numfmt"
	"github.com/arthur-debert/scrpatch/pkg/script"
)

// Flashlight is the tuning of one FlashlightPreset.
type Flashlight struct {
	Drain      float64 // EnergyDrainPerSecond
	MaxEnergy  float64
	RegenDelay float64 // RegenerationDelay
}

// FlashlightLevelCount is the number of UV flashlight upgrade levels.
const FlashlightLevelCount = 5

// FlashlightPresetName returns the preset name of a UV level, 1-based.
func FlashlightPresetName(level int) string {
	return fmt.Sprintf("Player Flashlight UV LVL %d", level)
}

// Vanilla RegenerationDelay of the first two levels. A level whose delay is
// still vanilla keeps its RegenerationDelay line untouched.
var flashlightRegenVanilla = map[int]float64{1: 3.0, 2: 2.5}

// FlashlightPreset rewrites the three tuning calls of FlashlightPreset(name).
// Calls whose value is already equal are not touched. The preset and every
// call must exist. When regenVanilla is non-nil and equals the requested
// delay, RegenerationDelay is skipped entirely.
func FlashlightPreset(name string, f Flashlight, regenVanilla *float64) Func {
	return func(text string) (string, error) {
		span, ok := script.FindPresetSpan(text, "FlashlightPreset", name)
		if !ok {
			return "", errors.NotFound(fmt.Sprintf(`FlashlightPreset(%q)`, name))
		}
		block := span.Text(text)

		calls := []struct {
			fn    string
			value float64
			skip  bool
		}{
			{"EnergyDrainPerSecond", f.Drain, false},
			{"MaxEnergy", f.MaxEnergy, false},
			{"RegenerationDelay", f.RegenDelay, regenVanilla != nil && numfmt.Equal(f.RegenDelay, *regenVanilla)},
		}
		for _, c := range calls {
			if c.skip {
				continue
			}
			nb, ok := setNumericCall(block, numericCallRe(c.fn), c.value)
			if !ok {
				return "", errors.NotFound(fmt.Sprintf(`%s(...) inside FlashlightPreset(%q)`, c.fn, name)).
					WithDetail("preset", name)
			}
			block = nb
		}
		if block == span.Text(text) {
			return text, nil
		}
		return script.Splice(text, span, block), nil
	}
}

// FlashlightLevels returns one FlashlightPreset patch per UV level.
func FlashlightLevels(levels [FlashlightLevelCount]Flashlight) []Func {
	funcs := make([]Func, 0, FlashlightLevelCount)
	for i, f := range levels {
		lvl := i + 1
		var vanilla *float64
		if v, ok := flashlightRegenVanilla[lvl]; ok {
			vanilla = &v
		}
		funcs = append(funcs, FlashlightPreset(FlashlightPresetName(lvl), f, vanilla))
	}
	return funcs
}
