// Package match picks the configured group that best describes a theme
// property or token scope.
package match

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/viiv-themes/viiv/internal/config"
	"github.com/viiv-themes/viiv/internal/log"
)

// Rule is a match kind. Lower values win.
type Rule int

const (
	Exact Rule = iota + 1
	EndsWith
	StartsWith
	Contains
	Fuzzy
)

func (r Rule) String() string {
	switch r {
	case Exact:
		return "EXACT"
	case EndsWith:
		return "ENDSWITH"
	case StartsWith:
		return "STARTSWITH"
	case Contains:
		return "CONTAINS"
	case Fuzzy:
		return "FUZZY"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

type Group struct {
	Name    string
	lower   string
	pattern *regexp.Regexp
}

func NewGroup(name string) (Group, error) {
	re, err := config.GroupPattern(name)
	if err != nil {
		return Group{}, fmt.Errorf("group %q: %w", name, err)
	}
	return Group{Name: name, lower: strings.ToLower(name), pattern: re}, nil
}

// Rule reports the first rule under which property matches the group.
func (g Group) Rule(property string) mo.Option[Rule] {
	p := strings.ToLower(property)
	switch {
	case p == g.lower:
		return mo.Some(Exact)
	case strings.HasSuffix(p, "."+g.lower):
		return mo.Some(EndsWith)
	case strings.HasPrefix(p, g.lower+"."):
		return mo.Some(StartsWith)
	case strings.Contains(p, g.lower):
		return mo.Some(Contains)
	case g.pattern.MatchString(property):
		return mo.Some(Fuzzy)
	}
	return mo.None[Rule]()
}

type candidate struct {
	group string
	rule  Rule
}

// bestOf returns the best matching group. Ties go to the earliest group.
func bestOf(groups []Group, property string) mo.Option[candidate] {
	best := mo.None[candidate]()
	for _, g := range groups {
		rule, ok := g.Rule(property).Get()
		if !ok {
			continue
		}
		if current, ok := best.Get(); !ok || rule < current.rule {
			best = mo.Some(candidate{group: g.Name, rule: rule})
		}
	}
	return best
}

type entry struct {
	config config.GroupConfig
	groups []Group
}

type area struct {
	name    string
	entries []entry
}

// Match is a resolved group with the area and rule that selected it.
type Match struct {
	Area  string
	Group string
	Rule  Rule
	Spec  config.ColorSpec
}

type Resolution struct {
	Match mo.Option[Match]
	Spec  config.ColorSpec
}

// Group is the matched group name or an empty string for the fallback spec.
func (r Resolution) Group() string {
	if m, ok := r.Match.Get(); ok {
		return m.Group
	}
	return ""
}

func (r Resolution) Candidates() []string {
	return r.Spec.Candidates()
}

type Resolver struct {
	areas            []area
	defaultSpec      config.ColorSpec
	tokenDefaultSpec config.ColorSpec
	decorationGroups map[string]bool
	decorationRange  config.Range
}

// NewResolver compiles every enabled group of cfg. Groups matching a
// decoration entry resolve with decoration as their basic range.
func NewResolver(cfg *config.Config, decoration config.Range) (*Resolver, error) {
	r := &Resolver{
		decorationGroups: lo.SliceToMap(cfg.DecorationGroups(), func(g string) (string, bool) { return g, true }),
		decorationRange:  decoration,
	}

	var ok bool
	if r.defaultSpec, ok = cfg.DefaultSpec(); !ok {
		return nil, fmt.Errorf("%w: no default color", config.ErrInvalidConfig)
	}
	if r.tokenDefaultSpec, ok = cfg.TokenDefaultSpec(); !ok {
		return nil, fmt.Errorf("%w: no token default color", config.ErrInvalidConfig)
	}

	for _, name := range cfg.AreaNames() {
		a := area{name: name}
		for _, gc := range cfg.Area(name) {
			if !gc.IsEnabled() {
				continue
			}
			names := append([]string(nil), gc.Groups...)
			sort.Sort(sort.Reverse(sort.StringSlice(names)))
			e := entry{config: gc}
			for _, n := range names {
				g, err := NewGroup(n)
				if err != nil {
					return nil, fmt.Errorf("%w: area %s: %w", config.ErrInvalidConfig, name, err)
				}
				e.groups = append(e.groups, g)
			}
			a.entries = append(a.entries, e)
		}
		r.areas = append(r.areas, a)
	}
	return r, nil
}

func (r *Resolver) matchArea(a area, property string) mo.Option[Match] {
	best := mo.None[Match]()
	for _, e := range a.entries {
		c, ok := bestOf(e.groups, property).Get()
		if !ok {
			continue
		}
		if current, ok := best.Get(); ok && current.Rule <= c.rule {
			continue
		}
		spec := e.config.Color
		if r.decorationGroups[c.group] {
			spec = spec.WithBasicRange(r.decorationRange)
		}
		best = mo.Some(Match{Area: a.name, Group: c.group, Rule: c.rule, Spec: spec})
	}
	return best
}

func areaApplies(name, property string) bool {
	if name == config.AreaBackground || name == config.AreaForeground {
		return strings.Contains(strings.ToLower(property), name)
	}
	return true
}

func (r *Resolver) find(property string, token bool) mo.Option[Match] {
	var matches []Match
	for _, a := range r.areas {
		if token != (a.name == config.AreaToken) {
			continue
		}
		if !areaApplies(a.name, property) {
			continue
		}
		if m, ok := r.matchArea(a, property).Get(); ok {
			matches = append(matches, m)
		}
	}
	if len(matches) == 0 {
		return mo.None[Match]()
	}

	// An exact group wins in any area, ahead of the default area precedence.
	if exact, ok := lo.Find(matches, func(m Match) bool { return m.Rule == Exact }); ok {
		return mo.Some(exact)
	}

	if defaults := lo.Filter(matches, func(m Match, _ int) bool { return m.Area == config.AreaDefault }); len(defaults) > 0 {
		matches = defaults
	}

	best := matches[0]
	for _, m := range matches[1:] {
		if m.Rule < best.Rule {
			best = m
		}
	}
	return mo.Some(best)
}

// Resolve picks the color spec of a workbench color property. The token area
// is not consulted.
func (r *Resolver) Resolve(property string) Resolution {
	return r.resolve(property, false, r.defaultSpec)
}

// ResolveToken picks the color spec of a token scope from the token area.
func (r *Resolver) ResolveToken(scope string) Resolution {
	return r.resolve(scope, true, r.tokenDefaultSpec)
}

func (r *Resolver) resolve(property string, token bool, fallback config.ColorSpec) Resolution {
	m, ok := r.find(property, token).Get()
	if !ok {
		log.Debug("No group matched", "property", property, "token", token)
		return Resolution{Match: mo.None[Match](), Spec: fallback}
	}
	log.Debug("Matched group", "property", property, "area", m.Area, "group", m.Group, "rule", m.Rule)
	return Resolution{Match: mo.Some(m), Spec: m.Spec}
}
