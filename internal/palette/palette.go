package palette

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/viiv-themes/viiv/internal/log"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// PlaceholderPattern matches C_bb_ll with an optional two character alpha suffix.
var PlaceholderPattern = regexp.MustCompile(`C_[a-zA-Z0-9]{2}_[a-zA-Z0-9]{2}([a-zA-Z0-9]{2})?`)

var placeholderHead = regexp.MustCompile(`^C_[a-zA-Z0-9]{2}_[a-zA-Z0-9]{2}$`)

func Placeholder(base, gradation int) string {
	return fmt.Sprintf("C_%02d_%02d", base, gradation)
}

// IsPlaceholder reports whether s is exactly a seven character placeholder.
func IsPlaceholder(s string) bool {
	return placeholderHead.MatchString(s)
}

// Palette maps placeholders to #rrggbb colors in generation order.
type Palette struct {
	colors *orderedmap.OrderedMap[string, string]
}

func New() *Palette {
	return &Palette{colors: orderedmap.New[string, string]()}
}

func (p *Palette) Set(name, hex string) {
	p.colors.Set(name, hex)
}

func (p *Palette) Get(name string) (string, bool) {
	return p.colors.Get(name)
}

func (p *Palette) Len() int {
	return p.colors.Len()
}

func (p *Palette) Names() []string {
	names := make([]string, 0, p.colors.Len())
	for pair := p.colors.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

func (p *Palette) Each(fn func(name, hex string)) {
	for pair := p.colors.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

func (p *Palette) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.colors)
}

func (p *Palette) UnmarshalJSON(data []byte) error {
	p.colors = orderedmap.New[string, string]()
	return json.Unmarshal(data, p.colors)
}

type base struct {
	hue        float64
	saturation float64
	lightness  float64
}

// Generate builds the token bases 1..T followed by the workbench bases
// T+1..T+W. Random draws happen in that order so a seeded rng reproduces the
// palette.
func Generate(opts Options, rng *rand.Rand) (*Palette, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	p := New()
	index := 1

	offset := rng.Float64() * 360
	for i := 0; i < opts.TokenTotal; i++ {
		b := base{
			hue:        math.Mod(offset+float64(i)*360/float64(opts.TokenTotal), 360),
			saturation: opts.TokenSaturation,
			lightness:  randomLightness(rng, opts.TokenMin, opts.TokenMax),
		}
		fill(p, index, b, opts.TokenGradations, opts.TokenMin, opts.TokenMax, opts.TokenLightness)
		index++
	}

	fam, _ := lookupFamily(opts.WorkbenchBaseColorName)
	for k := 0; k < opts.WorkbenchTotal; k++ {
		var b base
		if len(opts.WorkbenchBaseColors) > 0 {
			c, _ := colorful.Hex(opts.WorkbenchBaseColors[k%len(opts.WorkbenchBaseColors)])
			h, s, l := c.Hsl()
			b = base{
				hue:        h,
				saturation: s,
				lightness:  clamp(l, float64(opts.WorkbenchMin)/255, float64(opts.WorkbenchMax)/255),
			}
		} else {
			b = familyBase(rng, fam, opts.WorkbenchSaturation)
			b.lightness = randomLightness(rng, opts.WorkbenchMin, opts.WorkbenchMax)
		}
		fill(p, index, b, opts.WorkbenchGradations, opts.WorkbenchMin, opts.WorkbenchMax, opts.WorkbenchLightness)
		index++
	}

	log.Debugf("Generated palette with %d colors", p.Len())
	return p, nil
}

func familyBase(rng *rand.Rand, f family, saturation float64) base {
	switch {
	case f.random:
		return base{hue: rng.Float64() * 360, saturation: saturation}
	case f.achromatic:
		return base{hue: 0, saturation: 0}
	default:
		jitter := rng.Float64()*30 - 15
		return base{hue: math.Mod(f.hue+jitter+360, 360), saturation: saturation}
	}
}

func randomLightness(rng *rand.Rand, min, max int) float64 {
	return (float64(min) + rng.Float64()*float64(max-min)) / 255
}

func fill(p *Palette, index int, b base, gradations, min, max int, weight float64) {
	for j := 0; j < gradations; j++ {
		ramp := float64(min) / 255
		if gradations > 1 {
			ramp = (float64(min) + float64(max-min)*float64(j)/float64(gradations-1)) / 255
		}
		lightness := ramp*(1-weight) + b.lightness*weight
		p.Set(Placeholder(index, j), hsl(b.hue, b.saturation, lightness))
	}
}

// DiscardDarkRed replaces the gradation row of the last workbench base when its
// last gradation is red-dominant. The replacement is the first earlier workbench base
// whose last gradation is not red-dominant. Reports whether a row was replaced.
func DiscardDarkRed(p *Palette, opts Options) bool {
	first := opts.TokenTotal + 1
	last := opts.TokenTotal + opts.WorkbenchTotal
	lastGradation := opts.WorkbenchGradations - 1

	hex, ok := p.Get(Placeholder(last, lastGradation))
	if !ok || !IsRedDominant(hex) {
		return false
	}

	for k := first; k < last; k++ {
		candidate, ok := p.Get(Placeholder(k, lastGradation))
		if !ok || IsRedDominant(candidate) {
			continue
		}
		for j := 0; j <= lastGradation; j++ {
			replacement, _ := p.Get(Placeholder(k, j))
			p.Set(Placeholder(last, j), replacement)
		}
		log.Debugf("Replaced red dominant workbench base %d with base %d", last, k)
		return true
	}

	log.Warnf("Workbench base %d is red dominant and no replacement base exists", last)
	return false
}
