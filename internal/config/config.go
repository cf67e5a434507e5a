// Package config loads the generator config.json: palette options, the named
// themes and the areas of property groups.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/samber/lo"
	"github.com/viiv-themes/viiv/internal/fsys"
	"github.com/viiv-themes/viiv/internal/palette"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	AreaDefault    = "default"
	AreaToken      = "token"
	AreaBackground = "background"
	AreaForeground = "foreground"

	GroupDefault      = "default"
	GroupTokenDefault = "token_default"
	GroupDecoration   = "decoration"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrUnknownTheme  = errors.New("unknown theme")
)

type Component string

const (
	ComponentBasic Component = "BASIC"
	ComponentLight Component = "LIGHT"
	ComponentAlpha Component = "ALPHA"
	ComponentAll   Component = "ALL"
)

type GroupConfig struct {
	Groups  []string  `json:"groups"`
	Color   ColorSpec `json:"color"`
	Enabled *bool     `json:"enabled,omitempty"`
	// ReplaceColorComponent is parsed and kept on round trips; matching always
	// uses the whole color spec.
	ReplaceColorComponent []Component `json:"replace_color_component,omitempty" jsonschema:"enum=BASIC,enum=LIGHT,enum=ALPHA,enum=ALL"`
}

func (g GroupConfig) IsEnabled() bool {
	return lo.FromPtrOr(g.Enabled, true)
}

// PaletteSettings are the palette keys shared by options and themes. Nil
// fields inherit.
type PaletteSettings struct {
	TokenColorsTotal               *int     `json:"token_colors_total,omitempty"`
	TokenColorsGradationsTotal     *int     `json:"token_colors_gradations_total,omitempty"`
	TokenColorsMin                 *int     `json:"token_colors_min,omitempty"`
	TokenColorsMax                 *int     `json:"token_colors_max,omitempty"`
	TokenColorsSaturation          *float64 `json:"token_colors_saturation,omitempty"`
	TokenColorsLightness           *float64 `json:"token_colors_lightness,omitempty"`
	WorkbenchColorsTotal           *int     `json:"workbench_colors_total,omitempty"`
	WorkbenchColorsGradationsTotal *int     `json:"workbench_colors_gradations_total,omitempty"`
	WorkbenchColorsMin             *int     `json:"workbench_colors_min,omitempty"`
	WorkbenchColorsMax             *int     `json:"workbench_colors_max,omitempty"`
	WorkbenchColorsSaturation      *float64 `json:"workbench_colors_saturation,omitempty"`
	WorkbenchColorsLightness       *float64 `json:"workbench_colors_lightness,omitempty"`
	WorkbenchBaseColorName         *string  `json:"workbench_base_color_name,omitempty"`
	WorkbenchBaseColors            []string `json:"workbench_base_colors,omitempty"`
}

// Apply overrides opts with every field that is set.
func (s PaletteSettings) Apply(opts palette.Options) palette.Options {
	opts.TokenTotal = lo.FromPtrOr(s.TokenColorsTotal, opts.TokenTotal)
	opts.TokenGradations = lo.FromPtrOr(s.TokenColorsGradationsTotal, opts.TokenGradations)
	opts.TokenMin = lo.FromPtrOr(s.TokenColorsMin, opts.TokenMin)
	opts.TokenMax = lo.FromPtrOr(s.TokenColorsMax, opts.TokenMax)
	opts.TokenSaturation = lo.FromPtrOr(s.TokenColorsSaturation, opts.TokenSaturation)
	opts.TokenLightness = lo.FromPtrOr(s.TokenColorsLightness, opts.TokenLightness)
	opts.WorkbenchTotal = lo.FromPtrOr(s.WorkbenchColorsTotal, opts.WorkbenchTotal)
	opts.WorkbenchGradations = lo.FromPtrOr(s.WorkbenchColorsGradationsTotal, opts.WorkbenchGradations)
	opts.WorkbenchMin = lo.FromPtrOr(s.WorkbenchColorsMin, opts.WorkbenchMin)
	opts.WorkbenchMax = lo.FromPtrOr(s.WorkbenchColorsMax, opts.WorkbenchMax)
	opts.WorkbenchSaturation = lo.FromPtrOr(s.WorkbenchColorsSaturation, opts.WorkbenchSaturation)
	opts.WorkbenchLightness = lo.FromPtrOr(s.WorkbenchColorsLightness, opts.WorkbenchLightness)
	opts.WorkbenchBaseColorName = lo.FromPtrOr(s.WorkbenchBaseColorName, opts.WorkbenchBaseColorName)
	if len(s.WorkbenchBaseColors) > 0 {
		opts.WorkbenchBaseColors = append([]string(nil), s.WorkbenchBaseColors...)
	}
	return opts
}

type Options struct {
	PaletteSettings
	DiscardDarkRedColor             bool  `json:"discard_dark_red_color,omitempty"`
	RandomDecorationColor           bool  `json:"random_decoration_color,omitempty"`
	RandomDecorationColorBasicRange Range `json:"random_decoration_color_basic_range,omitempty"`
	StaticDecorationColorBasicRange Range `json:"static_decoration_color_basic_range,omitempty"`
}

type ThemeConfig struct {
	Name string `json:"name" jsonschema:"required"`
	PaletteSettings
}

type Config struct {
	Options Options
	Themes  []ThemeConfig
	// Areas keep their file order.
	Areas *orderedmap.OrderedMap[string, []GroupConfig]
}

func New() *Config {
	return &Config{Areas: orderedmap.New[string, []GroupConfig]()}
}

func (c *Config) UnmarshalJSON(data []byte) error {
	raw := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, raw); err != nil {
		return err
	}

	c.Areas = orderedmap.New[string, []GroupConfig]()
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		switch pair.Key {
		case "options":
			if err := json.Unmarshal(pair.Value, &c.Options); err != nil {
				return fmt.Errorf("options: %w", err)
			}
		case "themes":
			if err := json.Unmarshal(pair.Value, &c.Themes); err != nil {
				return fmt.Errorf("themes: %w", err)
			}
		default:
			var groups []GroupConfig
			if err := json.Unmarshal(pair.Value, &groups); err != nil {
				return fmt.Errorf("area %s: %w", pair.Key, err)
			}
			c.Areas.Set(pair.Key, groups)
		}
	}
	return nil
}

func (c *Config) MarshalJSON() ([]byte, error) {
	out := orderedmap.New[string, any]()
	out.Set("options", c.Options)
	out.Set("themes", lo.Ternary(c.Themes == nil, []ThemeConfig{}, c.Themes))
	for pair := c.Areas.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, pair.Value)
	}
	return json.Marshal(out)
}

func Load(path string) (*Config, error) {
	cfg := New()
	if err := fsys.ReadJSON(path, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if _, ok := c.DefaultSpec(); !ok {
		errs = append(errs, fmt.Errorf("area %q needs an entry with the group %q", AreaDefault, GroupDefault))
	}
	if _, ok := c.TokenDefaultSpec(); !ok {
		errs = append(errs, fmt.Errorf("area %q needs an entry with groups [%q]", AreaToken, GroupTokenDefault))
	}

	for pair := c.Areas.Oldest(); pair != nil; pair = pair.Next() {
		for i, entry := range pair.Value {
			if len(entry.Groups) == 0 {
				errs = append(errs, fmt.Errorf("%s[%d]: no groups", pair.Key, i))
			}
			if err := entry.Color.validate(); err != nil {
				errs = append(errs, fmt.Errorf("%s[%d]: %w", pair.Key, i, err))
			}
			for _, group := range entry.Groups {
				if _, err := GroupPattern(group); err != nil {
					errs = append(errs, fmt.Errorf("%s[%d]: group %q is not a valid pattern: %w", pair.Key, i, group, err))
				}
			}
			for _, component := range entry.ReplaceColorComponent {
				if !lo.Contains([]Component{ComponentBasic, ComponentLight, ComponentAlpha, ComponentAll}, component) {
					errs = append(errs, fmt.Errorf("%s[%d]: unknown color component %q", pair.Key, i, component))
				}
			}
		}
	}

	for _, r := range []Range{c.Options.RandomDecorationColorBasicRange, c.Options.StaticDecorationColorBasicRange} {
		if len(r) > 0 && (!r.Valid() || !r.within(0, 100)) {
			errs = append(errs, fmt.Errorf("decoration basic range %v must be two increasing values in [0,100]", r))
		}
	}

	for i, theme := range c.Themes {
		if strings.TrimSpace(theme.Name) == "" {
			errs = append(errs, fmt.Errorf("themes[%d]: missing name", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func (c *Config) AreaNames() []string {
	names := make([]string, 0, c.Areas.Len())
	for pair := c.Areas.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

func (c *Config) Area(name string) []GroupConfig {
	groups, _ := c.Areas.Get(name)
	return groups
}

// DefaultSpec is the color of the first default area entry listing the
// default group.
func (c *Config) DefaultSpec() (ColorSpec, bool) {
	entry, ok := lo.Find(c.Area(AreaDefault), func(g GroupConfig) bool {
		return lo.Contains(g.Groups, GroupDefault)
	})
	return entry.Color, ok
}

func (c *Config) TokenDefaultSpec() (ColorSpec, bool) {
	entry, ok := lo.Find(c.Area(AreaToken), func(g GroupConfig) bool {
		return len(g.Groups) == 1 && g.Groups[0] == GroupTokenDefault
	})
	return entry.Color, ok
}

// AllGroups lists every configured group once, in file order.
func (c *Config) AllGroups() []string {
	var groups []string
	for pair := c.Areas.Oldest(); pair != nil; pair = pair.Next() {
		for _, entry := range pair.Value {
			groups = append(groups, entry.Groups...)
		}
	}
	return lo.Uniq(groups)
}

// DecorationGroups lists all groups of entries that include the decoration group.
func (c *Config) DecorationGroups() []string {
	var groups []string
	for pair := c.Areas.Oldest(); pair != nil; pair = pair.Next() {
		for _, entry := range pair.Value {
			if lo.Contains(entry.Groups, GroupDecoration) {
				groups = append(groups, entry.Groups...)
			}
		}
	}
	return lo.Uniq(groups)
}

var defaultDecorationRange = Range{1, 11}

// DecorationRange is the basic range every decoration group uses for one run.
func (c *Config) DecorationRange(rng *rand.Rand) Range {
	if c.Options.RandomDecorationColor {
		r := lo.Ternary(c.Options.RandomDecorationColorBasicRange.Valid(), c.Options.RandomDecorationColorBasicRange, defaultDecorationRange)
		n := r.Start() + rng.IntN(r.End()-r.Start()+1)
		return Range{RangeValue(n), RangeValue(n + 1)}
	}
	return lo.Ternary(c.Options.StaticDecorationColorBasicRange.Valid(), c.Options.StaticDecorationColorBasicRange, defaultDecorationRange)
}

// PaletteOptions layers the config options and then the theme over defaults.
// A nil theme uses the options alone.
func (c *Config) PaletteOptions(theme *ThemeConfig) palette.Options {
	opts := c.Options.PaletteSettings.Apply(palette.DefaultOptions())
	opts.DiscardDarkRed = c.Options.DiscardDarkRedColor
	if theme != nil {
		opts = theme.PaletteSettings.Apply(opts)
	}
	return opts
}

func (c *Config) ThemeNames() []string {
	return lo.Map(c.Themes, func(t ThemeConfig, _ int) string { return t.Name })
}

// FilterThemes returns the themes whose name equals filter or matches it as a case
// insensitive pattern. An empty filter returns every theme.
func (c *Config) FilterThemes(filter string) []ThemeConfig {
	if filter == "" {
		return c.Themes
	}
	return lo.Filter(c.Themes, func(t ThemeConfig, _ int) bool {
		return NameMatches(t.Name, filter)
	})
}

// GroupPattern compiles the fuzzy pattern of a group. The whole pattern is
// anchored at the start of the property and matched case-insensitively.
func GroupPattern(group string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)^(?:" + group + ")")
}

func NameMatches(name, filter string) bool {
	if filter == "" || name == filter {
		return true
	}
	re, err := regexp.Compile("(?i).*" + filter + ".*")
	if err != nil {
		return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
	}
	return re.MatchString(name)
}
