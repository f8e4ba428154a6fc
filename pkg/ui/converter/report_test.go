// pkg/ui/converter/report_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: testutil.TestFS
// PURPOSE: Test conversion of build reports and target lists to display views

package converter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/scrpatch/pkg/build"
	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/pipeline"
	"github.com/arthur-debert/scrpatch/pkg/testutil"
	"github.com/arthur-debert/scrpatch/pkg/ui/converter"
	"github.com/arthur-debert/scrpatch/pkg/ui/display"
)

func TestFromReport(t *testing.T) {
	report := build.Report{
		Results: []pipeline.Result{
			{Name: "player_variables", Output: "out/scripts/player/player_variables.scr", Changed: true, Bytes: 42, Duration: time.Millisecond},
			{Name: "healthdefinitions", Output: "out/scripts/healthdefinitions.scr"},
		},
		Failures: []build.Failure{
			{Name: "aipresetpool", Output: "scripts/aipresetpool.scr", Err: errors.NoEligible("no pool weights")},
		},
		Removed: []string{"out/scripts/densitiessettings.scr"},
	}

	res := converter.FromReport(report, "out", true)
	assert.Equal(t, "build", res.Command)
	assert.True(t, res.DryRun)
	require.Len(t, res.Files, 4)

	assert.Equal(t, display.StatusWritten, res.Files[0].Status)
	assert.Equal(t, 42, res.Files[0].Bytes)
	assert.Equal(t, display.StatusUnchanged, res.Files[1].Status)

	failed := res.Files[2]
	assert.Equal(t, display.StatusFailed, failed.Status)
	assert.Equal(t, "out/scripts/aipresetpool.scr", failed.Path)
	assert.Equal(t, string(errors.ErrNoEligibleMatch), failed.Code)
	assert.Contains(t, failed.Error, "no pool weights")

	assert.Equal(t, display.FileResult{
		Target: "densitiessettings",
		Path:   "out/scripts/densitiessettings.scr",
		Status: display.StatusRemoved,
	}, res.Files[3])
	assert.False(t, res.OK())
}

func TestFromTargets(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.CreateFileT(t, fs, "templates/player_variables.scr", "Param(\"x\", \"1\");\n")

	all := build.AllTargets()
	list := converter.FromTargets(fs, "templates", all, map[string]bool{build.PlayerVariables: true})

	require.Len(t, list.Targets, len(all))
	first := list.Targets[0]
	assert.Equal(t, build.PlayerVariables, first.Name)
	assert.True(t, first.Found)
	assert.True(t, first.Planned)

	for _, tgt := range list.Targets[1:] {
		assert.False(t, tgt.Found, tgt.Name)
		assert.False(t, tgt.Planned, tgt.Name)
	}
}
