// pkg/patch/densities_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test global density table interpolation

package patch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/patch"
)

const densitiesSettings = `// globals
/*Densities(Day)
{
	None(0, 0);
	Easy(14, 16);
	Medium(14, 16);
	VeryHard(85, 90);
}
Densities(Night)
{
	None(0, 0);
	Easy(35, 40);
	Hard(90, 95);
}
*/
`

func TestDensities(t *testing.T) {
	t.Run("default_density_is_identity", func(t *testing.T) {
		out, err := patch.Densities(patch.DefaultAIDensity)(densitiesSettings)
		require.NoError(t, err)
		assert.Equal(t, densitiesSettings, out)
	})

	t.Run("max_density_uncomments_max_tables", func(t *testing.T) {
		out, err := patch.Densities(patch.MaxAIDensity)(densitiesSettings)
		require.NoError(t, err)
		assert.Equal(t, `// globals
Densities(Day)
{
	None(50, 100);
	Easy(100, 200);
	Medium(100, 200);
	VeryHard(125, 250);
}
Densities(Night)
{
	None(50, 100);
	Easy(100, 200);
	Hard(100, 200);
}

`, out)

		again, err := patch.Densities(patch.MaxAIDensity)(out)
		require.NoError(t, err)
		assert.Equal(t, out, again)
	})

	t.Run("midpoint", func(t *testing.T) {
		mid := patch.DefaultAIDensity + (patch.MaxAIDensity-patch.DefaultAIDensity)/2
		out, err := patch.Densities(mid)(densitiesSettings)
		require.NoError(t, err)
		assert.Contains(t, out, "\tEasy(57, 108);\n")
	})

	t.Run("missing_block", func(t *testing.T) {
		_, err := patch.Densities(patch.MaxAIDensity)("// empty\n")
		assert.True(t, errors.IsErrorCode(err, errors.ErrPatternNotFound))
	})
}
