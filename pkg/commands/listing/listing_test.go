// pkg/commands/listing/listing_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: testutil.TestFS
// PURPOSE: Test the target listing

package listing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/scrpatch/pkg/build"
	"github.com/arthur-debert/scrpatch/pkg/commands/listing"
	"github.com/arthur-debert/scrpatch/pkg/config"
	"github.com/arthur-debert/scrpatch/pkg/testutil"
)

func TestListTargets(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.CreateFileT(t, fs, "templates/aipresetpool.scr", "")

	list, err := listing.ListTargets(listing.Options{
		TemplateDir: "templates",
		Config:      config.Options{NoFile: true, NoEnv: true, Sets: []string{"volatiles.spawn_percent=150"}},
		FS:          fs,
	})
	require.NoError(t, err)
	require.Len(t, list.Targets, 16)

	byName := map[string]bool{}
	for _, tgt := range list.Targets {
		byName[tgt.Name] = tgt.Planned
		if tgt.Name == build.AIPresetPool {
			assert.True(t, tgt.Found)
		} else {
			assert.False(t, tgt.Found, tgt.Name)
		}
	}
	assert.True(t, byName[build.AIPresetPool])
	assert.True(t, byName[build.InputsKeyboard])
	assert.False(t, byName[build.DensitiesSettings])
}
