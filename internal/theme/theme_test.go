package theme

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viiv-themes/viiv/internal/config"
	"github.com/viiv-themes/viiv/internal/fsys"
	"github.com/viiv-themes/viiv/internal/match"
	"github.com/viiv-themes/viiv/internal/palette"
)

const template = `{
    "name": "viiv",
    "$schema": "vscode://schemas/color-theme",
    "colors": {
        "statusBar.background": "C_02_0180",
        "editor.foreground": "C_02_01",
        "editor.background": "C_01_00",
        "widget.shadow": "#00000040"
    },
    "semanticHighlighting": true,
    "tokenColors": [
        {"scope": "string", "settings": {"foreground": "C_01_01"}},
        {"name": "Comments", "scope": ["comment", "punctuation.definition.comment"], "settings": {"foreground": "C_02_00", "fontStyle": "italic"}}
    ]
}`

const assignConfig = `{
    "default": [
        {"groups": ["default"], "color": {"basic_range": [2, 3], "light_range": [0, 1]}}
    ],
    "background": [
        {"groups": ["background"], "color": {"basic_range": [1, 2], "light_range": [0, 1], "alpha_range": ["0xf0", "0xf1"]}}
    ],
    "foreground": [
        {"groups": ["foreground"], "color": {"hex": "#eeeeee"}}
    ],
    "unused": [
        {"groups": ["neverMatches"], "color": {"hex": "#123456"}}
    ],
    "token": [
        {"groups": ["token_default"], "color": {"basic_range": [1, 2], "light_range": [1, 2]}},
        {"groups": ["comment"], "color": {"hex": "#777777"}}
    ]
}`

func testPalette() *palette.Palette {
	p := palette.New()
	p.Set("C_01_00", "#101010")
	p.Set("C_01_01", "#202020")
	p.Set("C_02_00", "#e0e0e0")
	p.Set("C_02_01", "#f0f0f0")
	return p
}

func TestParseKeepsOrder(t *testing.T) {
	d, err := Parse([]byte(template))
	require.NoError(t, err)

	assert.Equal(t, "viiv", d.Name())
	assert.Equal(t, "", d.Type())
	assert.Equal(t, []string{"statusBar.background", "editor.foreground", "editor.background", "widget.shadow"}, d.Properties())
	require.Len(t, d.TokenColors, 2)
	assert.Equal(t, "string", d.TokenColors[0].Scope.First())
	assert.Equal(t, "comment", d.TokenColors[1].Scope.First())

	data, err := d.Bytes()
	require.NoError(t, err)
	out := string(data)
	assert.Less(t, strings.Index(out, `"name"`), strings.Index(out, `"$schema"`))
	assert.Less(t, strings.Index(out, `"colors"`), strings.Index(out, `"semanticHighlighting"`))
	assert.Less(t, strings.Index(out, `"semanticHighlighting"`), strings.Index(out, `"tokenColors"`))
	assert.Contains(t, out, `"scope": "string"`)
	assert.Contains(t, out, "\n    \"colors\": {")
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte(`{"colors": [}`))
	assert.Error(t, err)
	_, err = Parse([]byte(`{"colors": ["not", "a", "map"]}`))
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	d, err := Parse([]byte(template))
	require.NoError(t, err)

	out, sel, err := Render(d, testPalette())
	require.NoError(t, err)

	bg, _ := out.Colors.Get("editor.background")
	status, _ := out.Colors.Get("statusBar.background")
	shadow, _ := out.Colors.Get("widget.shadow")
	assert.Equal(t, "#101010", bg)
	assert.Equal(t, "#f0f0f080", status)
	assert.Equal(t, "#00000040", shadow)
	assert.Equal(t, "#202020", out.TokenColors[0].Settings.Foreground)
	assert.Equal(t, "italic", out.TokenColors[1].Settings.FontStyle)
	assert.Equal(t, "dark", out.Type())

	assert.Empty(t, Placeholders(out))
	assert.Equal(t, []string{"C_01_00", "C_02_01"}, sel.UI.Names())
	assert.Equal(t, []string{"C_01_01", "C_02_00"}, sel.Token.Names())

	orig, _ := d.Colors.Get("editor.background")
	assert.Equal(t, "C_01_00", orig, "template must stay untouched")
}

func TestRenderUnresolved(t *testing.T) {
	d, err := Parse([]byte(`{"colors": {"editor.background": "C_09_00"}, "tokenColors": []}`))
	require.NoError(t, err)

	_, _, err = Render(d, testPalette())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolvedPlaceholder)
	assert.Contains(t, err.Error(), "editor.background")
}

func TestDetectType(t *testing.T) {
	tests := []struct {
		bg       string
		expected string
	}{
		{"#101010", "dark"},
		{"#f8f8f8", "light"},
		{"#f8f8f8cc", "light"},
		{"C_01_00", "dark"},
	}

	for _, tt := range tests {
		t.Run(tt.bg, func(t *testing.T) {
			d := NewDocument()
			d.Colors.Set("editor.background", tt.bg)
			assert.Equal(t, tt.expected, DetectType(d))
		})
	}

	d, err := Parse([]byte(`{"type": "light", "colors": {"editor.background": "C_01_00"}}`))
	require.NoError(t, err)
	out, _, err := Render(d, testPalette())
	require.NoError(t, err)
	assert.Equal(t, "light", out.Type())
}

func newResolver(t *testing.T) (*match.Resolver, *config.Config) {
	t.Helper()
	cfg, err := config.Parse([]byte(assignConfig))
	require.NoError(t, err)
	r, err := match.NewResolver(cfg, config.Range{1, 11})
	require.NoError(t, err)
	return r, cfg
}

func TestAssign(t *testing.T) {
	d, err := Parse([]byte(template))
	require.NoError(t, err)
	r, cfg := newResolver(t)

	report := Assign(d, r, rand.New(rand.NewPCG(1, 1)), cfg.AllGroups())

	assert.Equal(t, []string{"editor.background", "editor.foreground", "statusBar.background", "widget.shadow"}, d.Properties())

	bg, _ := d.Colors.Get("editor.background")
	fg, _ := d.Colors.Get("editor.foreground")
	status, _ := d.Colors.Get("statusBar.background")
	shadow, _ := d.Colors.Get("widget.shadow")
	assert.Equal(t, "C_01_00f0", bg)
	assert.Equal(t, "#eeeeee", fg)
	assert.Equal(t, "C_01_00f0", status)
	assert.Equal(t, "C_02_00", shadow)

	require.Len(t, d.TokenColors, 2)
	assert.Equal(t, "comment", d.TokenColors[0].Scope.First())
	assert.Equal(t, "#777777", d.TokenColors[0].Settings.Foreground)
	assert.Equal(t, "italic", d.TokenColors[0].Settings.FontStyle)
	assert.Equal(t, "string", d.TokenColors[1].Scope.First())
	assert.Equal(t, "C_01_01", d.TokenColors[1].Settings.Foreground)

	assert.Equal(t, []string{"background", "comment", "foreground"}, report.Used)
	assert.Contains(t, report.Unused, "neverMatches")
	assert.Contains(t, report.Unused, "default")
	assert.NotContains(t, report.Unused, "background")
	assert.Equal(t, cfg.AllGroups(), report.All)
}

func TestAssignThenRenderLeavesNoPlaceholder(t *testing.T) {
	r, cfg := newResolver(t)
	opts := palette.DefaultOptions()
	p, err := palette.Generate(opts, rand.New(rand.NewPCG(5, 5)))
	require.NoError(t, err)

	d := Starter()
	Assign(d, r, rand.New(rand.NewPCG(5, 5)), cfg.AllGroups())
	out, _, err := Render(d, p)
	require.NoError(t, err)

	assert.Empty(t, Placeholders(out))
	hexRe := regexp.MustCompile(`^#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?$`)
	for pair := out.Colors.Oldest(); pair != nil; pair = pair.Next() {
		assert.Regexp(t, hexRe, pair.Value, pair.Key)
	}
}

func TestStarterRendersWithDefaultPalette(t *testing.T) {
	p, err := palette.Generate(palette.DefaultOptions(), rand.New(rand.NewPCG(2, 2)))
	require.NoError(t, err)

	d := Starter()
	assert.Greater(t, d.Colors.Len(), 100)
	out, _, err := Render(d, p)
	require.NoError(t, err)
	assert.Empty(t, Placeholders(out))
	assert.Equal(t, "dark", out.Type())
}

func TestSaveAndLoad(t *testing.T) {
	fsys.SetMemMapFs()
	defer fsys.SetOsFs()

	d, err := Parse([]byte(template))
	require.NoError(t, err)
	require.NoError(t, d.Save("/work/themes/viiv-color-theme.json"))

	loaded, err := Load("/work/themes/viiv-color-theme.json")
	require.NoError(t, err)
	assert.Equal(t, d.Properties(), loaded.Properties())
	assert.Equal(t, d.TokenColors, loaded.TokenColors)

	_, err = Load("/work/missing.json")
	assert.Error(t, err)
}
