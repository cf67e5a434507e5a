package config

import (
	"encoding/json"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viiv-themes/viiv/internal/fsys"
	"github.com/viiv-themes/viiv/internal/palette"
)

const minimalConfig = `{
    "options": {"token_colors_total": 3, "discard_dark_red_color": true},
    "themes": [
        {"name": "dark-blue", "workbench_base_color_name": "BLUE"},
        {"name": "dark-green", "workbench_colors_min": 10, "workbench_colors_max": 30},
        {"name": "Light-Gray"}
    ],
    "default": [
        {"groups": ["default"], "color": {"basic_range": [4, 6], "light_range": [0, 2]}}
    ],
    "background": [
        {"groups": ["background"], "color": {"hex": "#101010"}}
    ],
    "token": [
        {"groups": ["token_default"], "color": {"basic_range": [1, 2], "light_range": [10, 11]}}
    ]
}`

func TestRangeValueUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Range
		wantErr  bool
	}{
		{"integers", `[1, 11]`, Range{1, 11}, false},
		{"decimal strings", `["8", "12"]`, Range{8, 12}, false},
		{"hex strings", `["0x99", "0xcc"]`, Range{0x99, 0xcc}, false},
		{"mixed", `[0, "0xff"]`, Range{0, 255}, false},
		{"garbage", `["zz", 1]`, nil, true},
		{"object", `[{}, 1]`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Range
			err := json.Unmarshal([]byte(tt.input), &r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r)
		})
	}
}

func TestNormalizeRange(t *testing.T) {
	assert.Equal(t, []string{"01", "02", "03"}, NormalizeRange(Range{1, 4}))
	assert.Equal(t, []string{"59"}, NormalizeRange(Range{59, 60}))
	assert.Nil(t, NormalizeRange(Range{4, 4}))
	assert.Nil(t, NormalizeRange(Range{1, 2, 3}))
	assert.Nil(t, NormalizeRange(nil))
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		name     string
		spec     ColorSpec
		expected []string
	}{
		{
			name:     "hex only",
			spec:     ColorSpec{Hex: "#008000"},
			expected: []string{"#008000"},
		},
		{
			name:     "hex with alpha",
			spec:     ColorSpec{Hex: "#008000", AlphaRange: Range{0x99, 0x9b}},
			expected: []string{"#00800099", "#0080009a"},
		},
		{
			name:     "hex wins over ranges",
			spec:     ColorSpec{Hex: "#008000", BasicRange: Range{1, 3}, LightRange: Range{1, 3}},
			expected: []string{"#008000"},
		},
		{
			name:     "basic by light",
			spec:     ColorSpec{BasicRange: Range{11, 13}, LightRange: Range{58, 60}},
			expected: []string{"C_11_58", "C_11_59", "C_12_58", "C_12_59"},
		},
		{
			name:     "placeholder with alpha",
			spec:     ColorSpec{BasicRange: Range{11, 12}, LightRange: Range{59, 60}, AlphaRange: Range{0x3e, 0x40}},
			expected: []string{"C_11_593e", "C_11_593f"},
		},
		{
			name:     "invalid light range falls back to black",
			spec:     ColorSpec{BasicRange: Range{1, 3}, LightRange: Range{5, 5}},
			expected: []string{"#000000"},
		},
		{
			name:     "empty spec",
			spec:     ColorSpec{},
			expected: []string{"#000000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.spec.Candidates())
		})
	}
}

func TestParseKeepsAreaOrder(t *testing.T) {
	cfg, err := Parse([]byte(minimalConfig))
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "background", "token"}, cfg.AreaNames())
	assert.Equal(t, []string{"dark-blue", "dark-green", "Light-Gray"}, cfg.ThemeNames())

	spec, ok := cfg.DefaultSpec()
	require.True(t, ok)
	assert.Equal(t, Range{4, 6}, spec.BasicRange)

	spec, ok = cfg.TokenDefaultSpec()
	require.True(t, ok)
	assert.Equal(t, Range{10, 11}, spec.LightRange)
}

func TestMarshalRoundTripKeepsAreas(t *testing.T) {
	cfg, err := Parse([]byte(minimalConfig))
	require.NoError(t, err)

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.AreaNames(), again.AreaNames())
	assert.Equal(t, cfg.ThemeNames(), again.ThemeNames())
	assert.True(t, again.Options.DiscardDarkRedColor)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{
			name:    "missing default",
			input:   `{"default": [{"groups": ["x"], "color": {}}], "token": [{"groups": ["token_default"], "color": {}}]}`,
			message: `needs an entry with the group "default"`,
		},
		{
			name:    "token default must be alone",
			input:   `{"default": [{"groups": ["default"], "color": {}}], "token": [{"groups": ["token_default", "comment"], "color": {}}]}`,
			message: `needs an entry with groups ["token_default"]`,
		},
		{
			name:    "basic range too large",
			input:   `{"default": [{"groups": ["default"], "color": {"basic_range": [1, 101]}}], "token": [{"groups": ["token_default"], "color": {}}]}`,
			message: "basic_range",
		},
		{
			name:    "alpha range too large",
			input:   `{"default": [{"groups": ["default"], "color": {"alpha_range": [0, 257]}}], "token": [{"groups": ["token_default"], "color": {}}]}`,
			message: "alpha_range",
		},
		{
			name:    "bad pattern",
			input:   `{"default": [{"groups": ["default", "editor.[x"], "color": {}}], "token": [{"groups": ["token_default"], "color": {}}]}`,
			message: "not a valid pattern",
		},
		{
			name:    "bad hex",
			input:   `{"default": [{"groups": ["default"], "color": {"hex": "#12"}}], "token": [{"groups": ["token_default"], "color": {}}]}`,
			message: "not a #rrggbb",
		},
		{
			name:    "bad component",
			input:   `{"default": [{"groups": ["default"], "color": {}, "replace_color_component": ["HUE"]}], "token": [{"groups": ["token_default"], "color": {}}]}`,
			message: "unknown color component",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestGroupPattern(t *testing.T) {
	tests := []struct {
		group    string
		property string
		matched  bool
	}{
		{"list.*background", "list.hoverBackground", true},
		{"List", "list.hoverBackground", true},
		{"statusBar|background", "xbackgroundy", false},
		{"statusBar|background", "statusBar.border", true},
		{"statusBar|background", "background.x", true},
	}

	for _, tt := range tests {
		t.Run(tt.group+" "+tt.property, func(t *testing.T) {
			re, err := GroupPattern(tt.group)
			require.NoError(t, err)
			assert.Equal(t, tt.matched, re.MatchString(tt.property))
		})
	}

	_, err := GroupPattern("a[b")
	assert.Error(t, err)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte(`{"default": [`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	fsys.SetMemMapFs()
	defer fsys.SetOsFs()

	_, err := Load("/work/config.json")
	assert.Error(t, err)

	require.NoError(t, fsys.WriteFile("/work/config.json", []byte(minimalConfig)))
	cfg, err := Load("/work/config.json")
	require.NoError(t, err)
	assert.Len(t, cfg.Themes, 3)
}

func TestStarterConfigIsValid(t *testing.T) {
	cfg, err := Parse([]byte(StarterConfig))
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.AreaNames()[0])

	for _, theme := range cfg.Themes {
		opts := cfg.PaletteOptions(&theme)
		assert.NoError(t, opts.Validate(), theme.Name)
	}
}

func TestPaletteOptionsLayering(t *testing.T) {
	cfg, err := Parse([]byte(minimalConfig))
	require.NoError(t, err)

	opts := cfg.PaletteOptions(nil)
	assert.Equal(t, 3, opts.TokenTotal)
	assert.Equal(t, palette.DefaultOptions().WorkbenchMin, opts.WorkbenchMin)
	assert.True(t, opts.DiscardDarkRed)

	theme := cfg.Themes[1]
	opts = cfg.PaletteOptions(&theme)
	assert.Equal(t, 3, opts.TokenTotal)
	assert.Equal(t, 10, opts.WorkbenchMin)
	assert.Equal(t, 30, opts.WorkbenchMax)
}

func TestFilterThemes(t *testing.T) {
	cfg, err := Parse([]byte(minimalConfig))
	require.NoError(t, err)

	names := func(themes []ThemeConfig) []string {
		out := make([]string, 0, len(themes))
		for _, th := range themes {
			out = append(out, th.Name)
		}
		return out
	}

	assert.Equal(t, []string{"dark-blue", "dark-green", "Light-Gray"}, names(cfg.FilterThemes("")))
	assert.Equal(t, []string{"dark-blue"}, names(cfg.FilterThemes("dark-blue")))
	assert.Equal(t, []string{"dark-blue", "dark-green"}, names(cfg.FilterThemes("DARK")))
	assert.Equal(t, []string{"Light-Gray"}, names(cfg.FilterThemes("gray")))
	assert.Empty(t, cfg.FilterThemes("purple"))
	assert.Empty(t, cfg.FilterThemes("[unclosed"))
}

func TestDecoration(t *testing.T) {
	cfg, err := Parse([]byte(StarterConfig))
	require.NoError(t, err)

	groups := cfg.DecorationGroups()
	assert.Contains(t, groups, "decoration")
	assert.Contains(t, groups, "focusBorder")
	assert.NotContains(t, groups, "editor.background")

	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 50; i++ {
		r := cfg.DecorationRange(rng)
		require.True(t, r.Valid())
		assert.Equal(t, r.Start()+1, r.End())
		assert.GreaterOrEqual(t, r.Start(), 1)
		assert.LessOrEqual(t, r.Start(), 7)
	}

	cfg.Options.RandomDecorationColor = false
	assert.Equal(t, Range{6, 7}, cfg.DecorationRange(rng))
}

func TestAllGroupsUnique(t *testing.T) {
	cfg, err := Parse([]byte(StarterConfig))
	require.NoError(t, err)
	groups := cfg.AllGroups()
	seen := map[string]bool{}
	for _, g := range groups {
		assert.False(t, seen[g], g)
		seen[g] = true
	}
	assert.Equal(t, "default", groups[0])
}

func TestSchema(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)
	s := string(data)
	assert.True(t, strings.Contains(s, "token_colors_total"))
	assert.True(t, strings.Contains(s, "basic_range"))
	assert.True(t, strings.Contains(s, "oneOf"))
}
