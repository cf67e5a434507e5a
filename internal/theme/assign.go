package theme

import (
	"math/rand/v2"
	"sort"

	"github.com/samber/lo"
	"github.com/viiv-themes/viiv/internal/log"
	"github.com/viiv-themes/viiv/internal/match"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Resolver resolves workbench properties and token scopes to color specs.
type Resolver interface {
	Resolve(property string) match.Resolution
	ResolveToken(scope string) match.Resolution
}

// GroupReport tells which configured groups were used by an assignment.
type GroupReport struct {
	Used   []string
	All    []string
	Unused []string
}

func newGroupReport(used, all []string) GroupReport {
	used = lo.Uniq(used)
	sort.Strings(used)
	return GroupReport{
		Used:   used,
		All:    all,
		Unused: lo.Without(all, used...),
	}
}

// Assign replaces every color and token foreground with a random candidate
// of its resolved spec. Colors end up sorted by property and token entries by
// their first scope. allGroups feeds the report.
func Assign(d *Document, resolver Resolver, rng *rand.Rand, allGroups []string) GroupReport {
	var used []string

	properties := d.Properties()
	sort.Strings(properties)

	colors := orderedmap.New[string, string]()
	for _, property := range properties {
		res := resolver.Resolve(property)
		colors.Set(property, pick(rng, res.Candidates()))
		if g := res.Group(); g != "" {
			used = append(used, g)
		}
	}
	d.Colors = colors

	sort.SliceStable(d.TokenColors, func(i, j int) bool {
		return d.TokenColors[i].Scope.First() < d.TokenColors[j].Scope.First()
	})
	for i := range d.TokenColors {
		res := resolver.ResolveToken(d.TokenColors[i].Scope.First())
		d.TokenColors[i].Settings.Foreground = pick(rng, res.Candidates())
		if g := res.Group(); g != "" {
			used = append(used, g)
		}
	}

	report := newGroupReport(used, allGroups)
	log.Debugf("Assigned %d colors and %d token colors using %d of %d groups", len(properties), len(d.TokenColors), len(report.Used), len(report.All))
	return report
}

func pick(rng *rand.Rand, candidates []string) string {
	if len(candidates) == 0 {
		return "#000000"
	}
	return candidates[rng.IntN(len(candidates))]
}
