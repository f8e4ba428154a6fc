// pkg/ui/ui_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test format parsing and the three renderers

package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/scrpatch/pkg/errors"
	"github.com/arthur-debert/scrpatch/pkg/ui"
	"github.com/arthur-debert/scrpatch/pkg/ui/display"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   ui.Format
		expected string
	}{
		{ui.FormatAuto, "auto"},
		{ui.FormatTerminal, "term"},
		{ui.FormatText, "text"},
		{ui.FormatJSON, "json"},
		{ui.Format(999), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"auto", ui.FormatAuto, false},
		{"", ui.FormatAuto, false},
		{"term", ui.FormatTerminal, false},
		{"Terminal", ui.FormatTerminal, false},
		{"plain", ui.FormatText, false},
		{"JSON", ui.FormatJSON, false},
		{"yaml", ui.FormatAuto, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewRenderer(t *testing.T) {
	for _, f := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		t.Run(f.String(), func(t *testing.T) {
			r, err := ui.NewRenderer(f, &bytes.Buffer{})
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}

	_, err := ui.NewRenderer(ui.Format(999), &bytes.Buffer{})
	assert.Error(t, err)
}

func buildResult() *display.BuildResult {
	return &display.BuildResult{
		Command:   "build",
		OutputDir: "out",
		Files: []display.FileResult{
			{Target: "player_variables", Path: "out/scripts/player/player_variables.scr", Status: display.StatusWritten, Bytes: 120},
			{Target: "aipresetpool", Path: "out/scripts/aipresetpool.scr", Status: display.StatusFailed, Error: "no pools", Code: "NO_ELIGIBLE_MATCH"},
		},
	}
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderBuild(buildResult()))
	var decoded display.BuildResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "build", decoded.Command)
	require.Len(t, decoded.Files, 2)
	assert.Equal(t, "NO_ELIGIBLE_MATCH", decoded.Files[1].Code)

	var doc struct {
		Summary map[string]int `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 1, doc.Summary["written"])
	assert.Equal(t, 1, doc.Summary["failed"])
	assert.Equal(t, 0, doc.Summary["removed"])

	buf.Reset()
	require.NoError(t, r.RenderError(errors.NotFound(`Param("Foo", ...)`).WithDetail("target", "player_variables")))
	var obj map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &obj))
	assert.Equal(t, string(errors.ErrPatternNotFound), obj["code"])
	details, ok := obj["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "player_variables", details["target"])
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderBuild(buildResult()))
	assert.Contains(t, buf.String(), "1 written, 0 unchanged, 1 failed")

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrConfigParse, "bad toml").
		WithDetail("line", 3).WithDetail("file", "scrpatch.toml")))
	assert.Equal(t, "Error: [CONFIG_PARSE] bad toml\n  file: scrpatch.toml\n  line: 3\n", buf.String())
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderBuild(buildResult()))
	out := buf.String()
	assert.Contains(t, out, "out/scripts/player/player_variables.scr")
	assert.Contains(t, out, "no pools")
	assert.Contains(t, out, "1 written")

	buf.Reset()
	require.NoError(t, r.RenderTargets(&display.TargetList{Targets: []display.TargetInfo{
		{Name: "inputs_keyboard", Output: "scripts/inputs/inputs_keyboard.scr", Always: true, Found: true},
	}}))
	assert.Contains(t, buf.String(), "inputs_keyboard")

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrConfigValid, "bad").WithDetail("key", "xp.coop")))
	assert.Contains(t, buf.String(), "key: xp.coop")
}
