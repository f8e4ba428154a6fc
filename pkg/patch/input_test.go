// pkg/patch/input_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test key rebinding and layout keybinding suppression

package patch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/patch"
)

const inputsKeyboard = "\tAddAction(_ACTION_THROTTLE, EInputDevice_Keyboard, EKey__W, 0.0);\r\n" +
	"\tAddAction(_ACTION_HORN, EInputDevice_Keyboard, EKey__H) { Hold(); }\r\n" +
	"LayoutKeybinding(\"Vehicle\", 1)\r\n" +
	"{\r\n" +
	"\tAction(_ACTION_HORN);\r\n" +
	"\t// already off\r\n" +
	"}\r\n" +
	"LayoutKeybinding(\"Other\", 1)\r\n" +
	"{\r\n" +
	"\tAction(_ACTION_BRAKE);\r\n" +
	"}\r\n"

func TestBindAction(t *testing.T) {
	out, err := patch.BindAction("_ACTION_THROTTLE", "EMouse__BUTTON_3")(inputsKeyboard)
	require.NoError(t, err)
	assert.Contains(t, out, "\tAddAction(_ACTION_THROTTLE, EInputDevice_Mouse, EMouse__BUTTON_3, 0.0);\r\n")

	out, err = patch.BindAction("_ACTION_HORN", "EKey__J")(inputsKeyboard)
	require.NoError(t, err)
	assert.Contains(t, out, "\tAddAction(_ACTION_HORN, EInputDevice_Keyboard, EKey__J) { Hold(); }\r\n")

	_, err = patch.BindAction("_ACTION_BRAKE", "EKey__S")(inputsKeyboard)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternNotFound))
}

func TestBindKey(t *testing.T) {
	fn, err := patch.BindKey("_ACTION_THROTTLE", "Space")
	require.NoError(t, err)
	out, err := fn(inputsKeyboard)
	require.NoError(t, err)
	assert.Contains(t, out, "EInputDevice_Keyboard, EKey__SPACE_, 0.0);")

	_, err = patch.BindKey("_ACTION_THROTTLE", "Spcae")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestDisableLayoutKeybinding(t *testing.T) {
	fn := patch.DisableLayoutKeybinding("_ACTION_HORN")

	out, err := fn(inputsKeyboard)
	require.NoError(t, err)
	assert.Contains(t, out, "//LayoutKeybinding(\"Vehicle\", 1)\r\n"+
		"//{\r\n"+
		"//\tAction(_ACTION_HORN);\r\n"+
		"\t// already off\r\n"+
		"//}\r\n")
	assert.Contains(t, out, "LayoutKeybinding(\"Other\", 1)\r\n{\r\n\tAction(_ACTION_BRAKE);\r\n}\r\n")

	again, err := fn(out)
	require.NoError(t, err)
	assert.Equal(t, out, again)

	out, err = patch.DisableLayoutKeybinding("_ACTION_MISSING")(inputsKeyboard)
	require.NoError(t, err)
	assert.Equal(t, inputsKeyboard, out)
}
