package theme

import (
	"errors"
	"fmt"
	"sort"

	"github.com/viiv-themes/viiv/internal/palette"
)

var ErrUnresolvedPlaceholder = errors.New("placeholder not in palette")

// Selection holds the palette entries a rendered theme actually uses.
type Selection struct {
	UI    *palette.Palette
	Token *palette.Palette
}

// Render substitutes every placeholder of d with its palette color, keeping
// any alpha suffix. d is left untouched.
func Render(d *Document, p *palette.Palette) (*Document, Selection, error) {
	out := d.Clone()
	ui := map[string]string{}
	token := map[string]string{}

	for pair := out.Colors.Oldest(); pair != nil; pair = pair.Next() {
		value, err := substitute(pair.Value, p, ui)
		if err != nil {
			return nil, Selection{}, fmt.Errorf("colors.%s: %w", pair.Key, err)
		}
		pair.Value = value
	}

	for i := range out.TokenColors {
		value, err := substitute(out.TokenColors[i].Settings.Foreground, p, token)
		if err != nil {
			return nil, Selection{}, fmt.Errorf("tokenColors[%s]: %w", out.TokenColors[i].Scope.First(), err)
		}
		out.TokenColors[i].Settings.Foreground = value
	}

	if out.Type() == "" {
		out.SetType(DetectType(out))
	}

	return out, Selection{UI: sortedPalette(ui), Token: sortedPalette(token)}, nil
}

func substitute(value string, p *palette.Palette, selected map[string]string) (string, error) {
	if len(value) < 7 || !palette.IsPlaceholder(value[:7]) {
		return value, nil
	}
	name := value[:7]
	hex, ok := p.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnresolvedPlaceholder, name)
	}
	selected[name] = hex
	return hex + value[7:], nil
}

func sortedPalette(m map[string]string) *palette.Palette {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	p := palette.New()
	for _, name := range names {
		p.Set(name, m[name])
	}
	return p
}

// DetectType is light when editor.background is a light color, dark otherwise.
func DetectType(d *Document) string {
	bg, ok := d.Colors.Get("editor.background")
	if !ok || len(bg) < 7 || !palette.IsHex(bg[:7]) {
		return "dark"
	}
	if palette.IsDark(bg[:7]) {
		return "dark"
	}
	return "light"
}

// Placeholders lists every placeholder still present in colors and token
// foregrounds.
func Placeholders(d *Document) []string {
	var found []string
	for pair := d.Colors.Oldest(); pair != nil; pair = pair.Next() {
		found = append(found, palette.PlaceholderPattern.FindAllString(pair.Value, -1)...)
	}
	for _, tc := range d.TokenColors {
		found = append(found, palette.PlaceholderPattern.FindAllString(tc.Settings.Foreground, -1)...)
	}
	return found
}
