// pkg/patch/patch_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test patch composition and the no-op and idempotence properties

package patch_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/patch"
)

func TestApply(t *testing.T) {
	upper := func(s string) (string, error) { return strings.ToUpper(s), nil }
	suffix := func(s string) (string, error) { return s + "!", nil }

	out, err := patch.Apply("abc", upper, suffix)
	require.NoError(t, err)
	assert.Equal(t, "ABC!", out)

	out, err = patch.Apply("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", out)

	failing := func(string) (string, error) { return "", errors.NotFound("X") }
	_, err = patch.Apply("abc", upper, failing, suffix)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternNotFound))

	_, err = patch.Apply("abc", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestChain(t *testing.T) {
	out, err := patch.Chain()("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", out)

	out, err = patch.Chain(patch.SetParam("Foo", "1.0"), patch.SetParam("Foo", "2.0"))(`Param("Foo", "0");`)
	require.NoError(t, err)
	assert.Equal(t, `Param("Foo", "2.0");`, out)
}

// Vanilla parameters must leave every template byte-identical.
func TestNoOpParametersAreIdentity(t *testing.T) {
	all := playerVars + hungerVars + aiDifficulty + perceptionProfiles + nightPools +
		presetPools + healthDefinitions + densitiesSettings + inputsKeyboard + inventorySpecial

	noops := map[string]patch.Func{
		"ScaleParam":           patch.ScaleParam("Foo", 1, 3),
		"ParamFloatMul":        patch.ParamFloatMul("fuel_max_amount", 1),
		"MovementSpeed":        patch.MovementSpeed(0, 0, 0),
		"ClimbOptions":         patch.ClimbOptions(false, false),
		"DeathPenaltyLevels":   patch.DeathPenaltyLevels(100),
		"LegendXPLoss":         patch.LegendXPLoss(100),
		"VolatileDamageBonus":  patch.VolatileDamageBonus(patch.Uniform(0)),
		"HumanHealth":          patch.HumanHealth(patch.Uniform(100)),
		"EnemyTagHealth":       patch.EnemyTagHealth("Biter", patch.Uniform(100)),
		"HungerBuckets":        patch.HungerBuckets(patch.VanillaHungerCosts),
		"RemapVanilla":         patch.RemapPerceptionProfiles(patch.Remap{Mode: patch.ModeVanilla}),
		"NightPursuitCaps":     patch.NightPursuitCaps(nil),
		"VolatileWeights":      patch.VolatileWeights(100, patch.ExteriorNightVolatilePools, 2),
		"VolatileHealth":       patch.VolatileHealth(100, 100, 100),
		"VehicleHealth":        patch.VehicleHealth(100, 100),
		"Densities":            patch.Densities(patch.DefaultAIDensity),
		"DeletePoolsNone":      patch.DeletePools(),
		"DisableLayoutMissing": patch.DisableLayoutKeybinding("_ACTION_NONE"),
	}
	for name, fn := range noops {
		t.Run(name, func(t *testing.T) {
			out, err := fn(all)
			require.NoError(t, err)
			assert.Equal(t, all, out)
		})
	}
}

// Applying the same tolerant or value-setting patch twice equals applying it once.
func TestIdempotentPatches(t *testing.T) {
	all := playerVars + aiDifficulty + nightPools + inputsKeyboard + inventorySpecial

	funcs := map[string]patch.Func{
		"SetParam":                patch.SetParam("Foo", "9.0"),
		"ClimbOptions":            patch.ClimbOptions(true, false),
		"FlashlightPreset":        patch.FlashlightPreset(patch.FlashlightPresetName(2), patch.Flashlight{Drain: 1, MaxEnergy: 2, RegenDelay: 3}, nil),
		"NightPursuitCaps":        patch.NightPursuitCaps(map[string]int{"Night_Aggresion_Level_2": 11}),
		"DisableLayoutKeybinding": patch.DisableLayoutKeybinding("_ACTION_HORN"),
		"BindAction":              patch.BindAction("_ACTION_HORN", "EKey__K"),
	}
	for name, fn := range funcs {
		t.Run(name, func(t *testing.T) {
			once, err := fn(all)
			require.NoError(t, err)
			twice, err := fn(once)
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		})
	}
}
