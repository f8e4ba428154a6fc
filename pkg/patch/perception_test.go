// pkg/patch/perception_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test perception profile remapping and mode parsing

package patch_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/patch"
)

const perceptionProfiles = "PerceptionProfile(\"volatile_night\")\r\n" +
	"{\r\n" +
	"    DefaultProfile(\"v_default\");\r\n" +
	"    LowAlertProfile(\"v_low\");\r\n" +
	"    HighAlertProfile(\"v_high\");\r\n" +
	"}\r\n" +
	"PerceptionProfile(\"volatile_aiden\")\r\n" +
	"{\r\n" +
	"    DefaultProfile(\"a_default\");\r\n" +
	"    LowAlertProfile(\"a_low\");\r\n" +
	"    HighAlertProfile(\"a_high\");\r\n" +
	"}\r\n" +
	"PerceptionProfile(\"volatile_partial\")\r\n" +
	"{\r\n" +
	"    DefaultProfile(\"p_default\");\r\n" +
	"}\r\n"

func remap(mode patch.PerceptionMode) patch.Func {
	return patch.RemapPerceptionProfiles(patch.Remap{
		Selector: patch.Selector{Prefixes: []string{"volatile_"}, ExcludeNames: []string{"volatile_aiden"}},
		Mode:     mode,
	})
}

func TestRemapPerceptionProfiles(t *testing.T) {
	t.Run("vanilla_is_identity", func(t *testing.T) {
		out, err := remap(patch.ModeVanilla)(perceptionProfiles)
		require.NoError(t, err)
		assert.Equal(t, perceptionProfiles, out)
	})

	t.Run("high_to_low", func(t *testing.T) {
		out, err := remap(patch.ModeHighToLow)(perceptionProfiles)
		require.NoError(t, err)
		assert.Contains(t, out, "    LowAlertProfile(\"v_default\");\r\n    HighAlertProfile(\"v_low\");\r\n")
		assert.Contains(t, out, "HighAlertProfile(\"a_high\");", "excluded block untouched")
		assert.Contains(t, out, "DefaultProfile(\"p_default\");\r\n}", "partial block skipped")
	})

	t.Run("high_to_default", func(t *testing.T) {
		out, err := remap(patch.ModeHighToDefault)(perceptionProfiles)
		require.NoError(t, err)
		assert.Contains(t, out, "    LowAlertProfile(\"v_default\");\r\n    HighAlertProfile(\"v_default\");\r\n")
	})

	t.Run("all_to_resting", func(t *testing.T) {
		out, err := remap(patch.ModeAllToResting)(perceptionProfiles)
		require.NoError(t, err)
		assert.Equal(t, 3, strings.Count(out, `("`+patch.DefaultRestingProfile+`")`))
	})

	t.Run("nothing_changed", func(t *testing.T) {
		once, err := remap(patch.ModeHighToDefault)(perceptionProfiles)
		require.NoError(t, err)
		_, err = remap(patch.ModeHighToDefault)(once)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNoEligibleMatch))
	})

	t.Run("pacify_is_rejected", func(t *testing.T) {
		_, err := remap(patch.ModePacify)(perceptionProfiles)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestParsePerceptionMode(t *testing.T) {
	tests := []struct {
		in      string
		want    patch.PerceptionMode
		wantErr bool
	}{
		{"vanilla", patch.ModeVanilla, false},
		{"none", patch.ModeVanilla, false},
		{"High_To_Low", patch.ModeHighToLow, false},
		{"high_to_default", patch.ModeHighToDefault, false},
		{"all_to_resting", patch.ModeAllToResting, false},
		{"pacify", patch.ModePacify, false},
		{"calm", patch.ModeVanilla, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := patch.ParsePerceptionMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	var m patch.PerceptionMode
	require.NoError(t, m.UnmarshalText([]byte("pacify")))
	assert.Equal(t, "pacify", m.String())
}
