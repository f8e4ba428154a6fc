// pkg/build/targets_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: embedded target manifest
// PURPOSE: Test target manifest loading and lookup

package build

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/scrpatch/pkg/errors"
)

func TestTargetsManifest(t *testing.T) {
	names := Targets().Names()
	require.Len(t, names, 16)
	assert.Equal(t, PlayerVariables, names[0])
	assert.Equal(t, BuggyWastelandFuel, names[len(names)-1])

	for _, name := range names {
		tgt, err := LookupTarget(name)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(tgt.Output, "scripts/"), name)
		assert.NotEmpty(t, tgt.Description, name)
	}

	tgt, err := LookupTarget(AIDifficultyModifiers)
	require.NoError(t, err)
	assert.Equal(t, "scripts/ai/ai_difficulty_modifiers.scr", tgt.Output)
	assert.True(t, tgt.Always)

	all := AllTargets()
	require.Len(t, all, len(names))
	for i, tgt := range all {
		assert.Equal(t, names[i], tgt.Name)
	}
}

func TestTargetNamesMatchManifest(t *testing.T) {
	for _, name := range []string{
		PlayerVariables, ProgressionActions, InventorySpecial, VarlistGameOverlay,
		PlayerHungerConfig, NightSpawnPools, AIPerceptionProfiles, AIPresetPool,
		AIDifficultyModifiers, AISpawnPrioritySystem, DensitiesSettings,
		HealthDefinitions, InputsKeyboard, BuggyDefenderFuel, BuggyMadridersFuel,
		BuggyWastelandFuel,
	} {
		assert.True(t, Targets().Has(name), name)
	}
}

func TestLookupTargetMiss(t *testing.T) {
	_, err := LookupTarget("inputs_keybord")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Contains(t, err.Error(), "did you mean inputs_keyboard")
}

func TestLoadTargetsRejectsBadManifest(t *testing.T) {
	tests := map[string]string{
		"not yaml":        "targets: [",
		"missing output":  "targets:\n  - name: a\n    template: a.scr\n",
		"duplicate names": "targets:\n  - {name: a, template: a, output: a}\n  - {name: a, template: b, output: b}\n",
	}
	for name, manifest := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loadTargets([]byte(manifest))
			assert.Error(t, err)
		})
	}
}
