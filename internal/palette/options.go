package palette

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const MaxBases = 99

var ErrInvalidOptions = errors.New("invalid palette options")

type Options struct {
	TokenTotal      int
	TokenGradations int
	TokenMin        int
	TokenMax        int
	TokenSaturation float64
	TokenLightness  float64

	WorkbenchTotal      int
	WorkbenchGradations int
	WorkbenchMin        int
	WorkbenchMax        int
	WorkbenchSaturation float64
	WorkbenchLightness  float64

	// WorkbenchBaseColors takes precedence over WorkbenchBaseColorName when set.
	WorkbenchBaseColors    []string
	WorkbenchBaseColorName string

	DiscardDarkRed bool
}

func DefaultOptions() Options {
	return Options{
		TokenTotal:      7,
		TokenGradations: 60,
		TokenMin:        120,
		TokenMax:        180,
		TokenSaturation: 0.35,
		TokenLightness:  0.15,

		WorkbenchTotal:         7,
		WorkbenchGradations:    60,
		WorkbenchMin:           19,
		WorkbenchMax:           20,
		WorkbenchSaturation:    0.2,
		WorkbenchLightness:     0.09,
		WorkbenchBaseColorName: "BLUE",
	}
}

func (o Options) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(o.TokenTotal >= 1, "token_colors_total must be at least 1, got %d", o.TokenTotal)
	check(o.WorkbenchTotal >= 1, "workbench_colors_total must be at least 1, got %d", o.WorkbenchTotal)
	check(o.TokenTotal+o.WorkbenchTotal <= MaxBases, "token and workbench totals add up to %d, at most %d bases fit a placeholder", o.TokenTotal+o.WorkbenchTotal, MaxBases)
	check(o.TokenGradations >= 1 && o.TokenGradations <= 100, "token_colors_gradations_total must be in 1..100, got %d", o.TokenGradations)
	check(o.WorkbenchGradations >= 1 && o.WorkbenchGradations <= 100, "workbench_colors_gradations_total must be in 1..100, got %d", o.WorkbenchGradations)
	check(o.TokenMin >= 0 && o.TokenMin <= o.TokenMax && o.TokenMax <= 255, "token_colors_min/max must satisfy 0 <= min <= max <= 255, got %d/%d", o.TokenMin, o.TokenMax)
	check(o.WorkbenchMin >= 0 && o.WorkbenchMin <= o.WorkbenchMax && o.WorkbenchMax <= 255, "workbench_colors_min/max must satisfy 0 <= min <= max <= 255, got %d/%d", o.WorkbenchMin, o.WorkbenchMax)
	check(unit(o.TokenSaturation), "token_colors_saturation must be in [0,1], got %g", o.TokenSaturation)
	check(unit(o.TokenLightness), "token_colors_lightness must be in [0,1], got %g", o.TokenLightness)
	check(unit(o.WorkbenchSaturation), "workbench_colors_saturation must be in [0,1], got %g", o.WorkbenchSaturation)
	check(unit(o.WorkbenchLightness), "workbench_colors_lightness must be in [0,1], got %g", o.WorkbenchLightness)

	for _, hex := range o.WorkbenchBaseColors {
		_, err := colorful.Hex(hex)
		check(err == nil && IsHex(hex), "workbench base color %q is not a #rrggbb color", hex)
	}
	if len(o.WorkbenchBaseColors) == 0 {
		_, ok := lookupFamily(o.WorkbenchBaseColorName)
		check(ok, "unknown workbench_base_color_name %q, expected one of %s", o.WorkbenchBaseColorName, strings.Join(Names(), ", "))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, errors.Join(errs...))
	}
	return nil
}

func unit(v float64) bool {
	return v >= 0 && v <= 1
}

type family struct {
	hue        float64
	achromatic bool
	random     bool
}

var families = map[string]family{
	"RED":     {hue: 0},
	"ORANGE":  {hue: 30},
	"YELLOW":  {hue: 60},
	"LIME":    {hue: 90},
	"GREEN":   {hue: 120},
	"CYAN":    {hue: 180},
	"BLUE":    {hue: 220},
	"VIOLET":  {hue: 270},
	"MAGENTA": {hue: 300},
	"PINK":    {hue: 330},
	"BLACK":   {achromatic: true},
	"GRAY":    {achromatic: true},
	"RANDOM":  {random: true},
}

func lookupFamily(name string) (family, bool) {
	f, ok := families[strings.ToUpper(strings.TrimSpace(name))]
	return f, ok
}

// Names lists the supported workbench base color names.
func Names() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
