// pkg/patch/params_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test Param, ParamFloat, VarVec3 and numeric call setters

package patch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/patch"
)

const playerVars = `sub main()
{
	Param("Foo", "2.000000");
	Param("MoveSprintSpeed", "6.5"); // sprint
	Param("LadderClimbSlow", "true");
	Param("FastClimbEnabled", "false");
	Param("LLDeathPenaltyXpLossPercentage", "0.1");
}
`

func TestScaleParam(t *testing.T) {
	t.Run("factor_one_is_identity", func(t *testing.T) {
		out, err := patch.ScaleParam("Foo", 1.0, 3)(playerVars)
		require.NoError(t, err)
		assert.Equal(t, playerVars, out)
	})

	t.Run("scales_and_formats", func(t *testing.T) {
		out, err := patch.ScaleParam("Foo", 1.5, 3)(`Param("Foo", "2.000000");`)
		require.NoError(t, err)
		assert.Equal(t, `Param("Foo", "3.0");`, out)
	})

	t.Run("keeps_trailing_comment", func(t *testing.T) {
		out, err := patch.ScaleParam("MoveSprintSpeed", 2, 3)(playerVars)
		require.NoError(t, err)
		assert.Contains(t, out, `Param("MoveSprintSpeed", "13.0"); // sprint`)
	})

	t.Run("missing_param_is_tolerated", func(t *testing.T) {
		out, err := patch.ScaleParam("Nope", 2, 3)(playerVars)
		require.NoError(t, err)
		assert.Equal(t, playerVars, out)
	})

	t.Run("rounded_equal_value_is_not_rewritten", func(t *testing.T) {
		in := `Param("Foo", "2.000000");`
		out, err := patch.ScaleParam("Foo", 1.0001, 3)(in)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})
}

func TestSetParam(t *testing.T) {
	out, err := patch.SetParam("LadderClimbSlow", "false")(playerVars)
	require.NoError(t, err)
	assert.Contains(t, out, `Param("LadderClimbSlow", "false");`)

	_, err = patch.SetParam("Missing", "1")(playerVars)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternNotFound))

	out, err = patch.SetParamOptional("Missing", "1")(playerVars)
	require.NoError(t, err)
	assert.Equal(t, playerVars, out)
}

func TestSetParamIsIdempotent(t *testing.T) {
	fn := patch.SetParam("Foo", "4.0")
	once, err := fn(playerVars)
	require.NoError(t, err)
	twice, err := fn(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestScaleParamStrict(t *testing.T) {
	out, err := patch.ScaleParamStrict("LLDeathPenaltyXpLossPercentage", 0.5)(playerVars)
	require.NoError(t, err)
	assert.Contains(t, out, `Param("LLDeathPenaltyXpLossPercentage", "0.05");`)

	_, err = patch.ScaleParamStrict("Missing", 0.5)(playerVars)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternNotFound))
}

func TestParamFloatMul(t *testing.T) {
	in := "ParamFloat(\"fuel_usage_base\", 0.2);\r\nParamFloat(\"fuel_max_amount\", 40.0);\r\n"

	out, err := patch.ParamFloatMul("fuel_max_amount", 0.5)(in)
	require.NoError(t, err)
	assert.Equal(t, "ParamFloat(\"fuel_usage_base\", 0.2);\r\nParamFloat(\"fuel_max_amount\", 20.0);\r\n", out)

	out, err = patch.ParamFloatMul("fuel_max_amount", 1)(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = patch.ParamFloatMul("fuel_tank", 2)(in)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternNotFound))
}

func TestVarVec3(t *testing.T) {
	in := `VarVec3("v_flashlight_pp_color", [1.0, 0.95, 0.87]);` + "\n"

	out, err := patch.VarVec3("v_flashlight_pp_color", 1.0, 0.95, 0.87)(in)
	require.NoError(t, err)
	assert.Equal(t, in, out, "equal colour must not be rewritten")

	out, err = patch.VarVec3("v_flashlight_pp_color", 0.5, 0.5, 1)(in)
	require.NoError(t, err)
	assert.Equal(t, `VarVec3("v_flashlight_pp_color", [0.5, 0.5, 1.0]);`+"\n", out)

	_, err = patch.VarVec3("v_flashlight_pp_uv_color", 0, 0, 0)(in)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternNotFound))
}

func TestVarFloat(t *testing.T) {
	in := `VarFloat("v_flashlight_range", 25.0);`
	out, err := patch.VarFloat("v_flashlight_range", 30)(in)
	require.NoError(t, err)
	assert.Equal(t, `VarFloat("v_flashlight_range", 30.0);`, out)
}

func TestNumericCall(t *testing.T) {
	in := "\tMaxEnergy(5.0);\n"
	out, err := patch.NumericCall("MaxEnergy", 7.5)(in)
	require.NoError(t, err)
	assert.Equal(t, "\tMaxEnergy(7.5);\n", out)

	_, err = patch.NumericCall("RegenerationDelay", 1)(in)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternNotFound))
}
