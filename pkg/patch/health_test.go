// pkg/patch/health_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test health definition scaling

package patch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/scrpatch/pkg/patch"
)

const healthDefinitions = `Health
{
	Health("Volatile")
	{
		Health("1000");
	}
	Health("Volatile_Hive_Queen")
	{
		Health("2000-1500");
	}
	Health("Volatile_Apex_Alpha")
	{
		Health("5000");
		Health("boss");
	}
	Health("Biter")
	{
		Health("100");
	}
	Health("Vehicle_Pickup")
	{
		Health("1150");
	}
	Health("Vehicle_Pickup_CTB")
	{
		Health("2000");
	}
}
`

func TestVolatileHealth(t *testing.T) {
	out, err := patch.VolatileHealth(100, 100, 100)(healthDefinitions)
	require.NoError(t, err)
	assert.Equal(t, healthDefinitions, out)

	out, err = patch.VolatileHealth(50, 10, 100)(healthDefinitions)
	require.NoError(t, err)
	assert.Contains(t, out, "Health(\"Volatile\")\n\t{\n\t\tHealth(\"500\");")
	assert.Contains(t, out, `Health("150-200");`, "range is reordered and scaled")
	assert.Contains(t, out, `Health("5000");`, "apex kept at 100")
	assert.Contains(t, out, `Health("100");`, "non-volatile untouched")

	out, err = patch.VolatileHealth(100, 100, 0)(healthDefinitions)
	require.NoError(t, err)
	assert.Contains(t, out, `Health("1");`, "clamped to 1")
	assert.Contains(t, out, `Health("boss");`, "non-numeric kept")
}

func TestVehicleHealth(t *testing.T) {
	out, err := patch.VehicleHealth(100, 100)(healthDefinitions)
	require.NoError(t, err)
	assert.Equal(t, healthDefinitions, out)

	out, err = patch.VehicleHealth(200, 100)(healthDefinitions)
	require.NoError(t, err)
	assert.Contains(t, out, "Health(\"Vehicle_Pickup\")\n\t{\n\t\tHealth(\"2300\");")
	assert.Contains(t, out, "Health(\"Vehicle_Pickup_CTB\")\n\t{\n\t\tHealth(\"2000\");")
}
