// Package generator runs the theme pipeline: assign the template from the
// config, generate a palette, render and write the results.
package generator

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/viiv-themes/viiv/internal/config"
	"github.com/viiv-themes/viiv/internal/fsys"
	"github.com/viiv-themes/viiv/internal/log"
	"github.com/viiv-themes/viiv/internal/match"
	"github.com/viiv-themes/viiv/internal/palette"
	"github.com/viiv-themes/viiv/internal/settings"
	"github.com/viiv-themes/viiv/internal/theme"
)

const (
	RandomThemeName    = "viiv-random-0"
	DefaultThemePrefix = "viiv-"

	RandomPaletteFile        = "random-palette.json"
	SelectedUIPaletteFile    = "selected-ui-palette.json"
	SelectedTokenPaletteFile = "selected-token-palette.json"
	UsedGroupsFile           = "used_groups.json"
	AllGroupsFile            = "all_groups.json"
	NotUsedGroupsFile        = "not_used_groups.json"
)

type Options struct {
	ConfigPath   string
	TemplatePath string
	OutputDir    string
	ThemesDir    string
	// Seed 0 draws a fresh seed.
	Seed uint64
	// Static renders the template as it is instead of re-assigning it first.
	Static bool
}

type Generator struct {
	opts Options
	cfg  *config.Config
	seed uint64
	rng  *rand.Rand
}

type Result struct {
	Name      string
	Path      string
	Palette   *palette.Palette
	Theme     *theme.Document
	Selection theme.Selection
}

func New(opts Options) (*Generator, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
		log.Infof("Using random seed %d", seed)
	}

	return &Generator{
		opts: opts,
		cfg:  cfg,
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

func (g *Generator) Seed() uint64 { return g.seed }

func (g *Generator) Config() *config.Config { return g.cfg }

// ThemeFile is the theme file for name inside dir.
func ThemeFile(dir, name string) string {
	return filepath.Join(dir, strings.ToLower(name)+"-color-theme.json")
}

// ThemePath is where the theme called name is written.
func (g *Generator) ThemePath(name string) string {
	return ThemeFile(g.opts.ThemesDir, name)
}

// AssignTemplate re-assigns every template color from the config, saves the
// template and writes the group reports.
func (g *Generator) AssignTemplate() (theme.GroupReport, error) {
	doc, err := theme.Load(g.opts.TemplatePath)
	if err != nil {
		return theme.GroupReport{}, err
	}

	resolver, err := match.NewResolver(g.cfg, g.cfg.DecorationRange(g.rng))
	if err != nil {
		return theme.GroupReport{}, err
	}

	report := theme.Assign(doc, resolver, g.rng, g.cfg.AllGroups())
	if err := doc.Save(g.opts.TemplatePath); err != nil {
		return report, err
	}

	reports := []struct {
		file   string
		groups []string
	}{
		{UsedGroupsFile, report.Used},
		{AllGroupsFile, report.All},
		{NotUsedGroupsFile, report.Unused},
	}
	for _, r := range reports {
		if err := fsys.WriteJSON(filepath.Join(g.opts.OutputDir, r.file), lo.Ternary(r.groups == nil, []string{}, r.groups)); err != nil {
			return report, err
		}
	}

	log.Infof("Assigned template %s: %d of %d groups used", g.opts.TemplatePath, len(report.Used), len(report.All))
	return report, nil
}

func (g *Generator) generate(name string, opts palette.Options) (Result, error) {
	if !g.opts.Static {
		if _, err := g.AssignTemplate(); err != nil {
			return Result{}, err
		}
	}

	doc, err := theme.Load(g.opts.TemplatePath)
	if err != nil {
		return Result{}, err
	}

	p, err := palette.Generate(opts, g.rng)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", name, err)
	}
	if opts.DiscardDarkRed {
		palette.DiscardDarkRed(p, opts)
	}

	out, sel, err := theme.Render(doc, p)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", name, err)
	}
	out.SetName(name)

	path := g.ThemePath(name)
	if err := out.Save(path); err != nil {
		return Result{}, err
	}
	if err := fsys.WriteJSON(filepath.Join(g.opts.OutputDir, RandomPaletteFile), p); err != nil {
		return Result{}, err
	}
	if err := fsys.WriteJSON(filepath.Join(g.opts.OutputDir, SelectedUIPaletteFile), sel.UI); err != nil {
		return Result{}, err
	}
	if err := fsys.WriteJSON(filepath.Join(g.opts.OutputDir, SelectedTokenPaletteFile), sel.Token); err != nil {
		return Result{}, err
	}

	log.Infof("Generated %s", path)
	return Result{Name: name, Path: path, Palette: p, Theme: out, Selection: sel}, nil
}

// GenerateThemes renders every configured theme matching filter.
func (g *Generator) GenerateThemes(filter string) ([]Result, error) {
	themes := g.cfg.FilterThemes(filter)
	if len(themes) == 0 {
		if filter == "" {
			return nil, fmt.Errorf("%w: the config defines no themes", config.ErrUnknownTheme)
		}
		return nil, unknownTheme(filter, g.cfg.ThemeNames())
	}

	results := make([]Result, 0, len(themes))
	for _, t := range themes {
		res, err := g.generate(t.Name, g.cfg.PaletteOptions(&t))
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// GenerateRandom renders one theme from the config options alone.
func (g *Generator) GenerateRandom() (Result, error) {
	return g.generate(RandomThemeName, g.cfg.PaletteOptions(nil))
}

// GenerateDefaults renders the built-in default themes matching filter.
func (g *Generator) GenerateDefaults(filter string) ([]Result, error) {
	defaults := lo.Filter(palette.DefaultThemes, func(t palette.DefaultTheme, _ int) bool {
		return filter == "" || t.Name == filter || DefaultThemePrefix+t.Name == filter
	})
	if len(defaults) == 0 {
		return nil, unknownTheme(filter, palette.DefaultThemeNames())
	}

	results := make([]Result, 0, len(defaults))
	for _, t := range defaults {
		opts := g.cfg.PaletteOptions(nil)
		if len(t.Colors) > 0 {
			opts.WorkbenchBaseColors = t.Colors
		}
		res, err := g.generate(DefaultThemePrefix+t.Name, opts)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func unknownTheme(filter string, names []string) error {
	if closest := settings.Closest(filter, names); closest != "" {
		return fmt.Errorf("%w %q, did you mean %q?", config.ErrUnknownTheme, filter, closest)
	}
	return fmt.Errorf("%w %q", config.ErrUnknownTheme, filter)
}
