// Package preview prints theme colors and palettes as terminal swatches.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/viiv-themes/viiv/internal/config"
	"github.com/viiv-themes/viiv/internal/palette"
	"github.com/viiv-themes/viiv/internal/theme"
)

const DefaultSwatchWidth = 9

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// Swatch renders text on the color with a black or white foreground,
// padded to width. Colors that are not hex are returned unstyled.
func Swatch(hex, text string, width int) string {
	if len(hex) < 7 || !palette.IsHex(hex[:7]) {
		return lipgloss.NewStyle().Width(width).Render(text)
	}
	bg := hex[:7]
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(palette.ReadableOn(bg))).
		Width(width).
		Render(text)
}

// Section is a titled palette printed by Palette.
type Section struct {
	Title   string
	Palette *palette.Palette
}

type Printer struct {
	Out   io.Writer
	Width int
}

func NewPrinter(out io.Writer, width int) *Printer {
	if width <= 0 {
		width = DefaultSwatchWidth
	}
	return &Printer{Out: out, Width: width}
}

// Colors prints every property of the rendered theme matching filter together
// with its value in the template. Returns the number of properties printed.
func (p *Printer) Colors(rendered, template *theme.Document, filter string) (int, error) {
	names := rendered.Properties()
	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}

	count := 0
	for pair := rendered.Colors.Oldest(); pair != nil; pair = pair.Next() {
		if !config.NameMatches(pair.Key, filter) {
			continue
		}
		source := ""
		if template != nil {
			source, _ = template.Colors.Get(pair.Key)
		}
		line := fmt.Sprintf("%s %s %-9s %s\n",
			Swatch(pair.Value, pair.Value, p.Width),
			nameStyle.Render(pad(pair.Key, width)),
			pair.Value,
			faintStyle.Render(source))
		if _, err := io.WriteString(p.Out, line); err != nil {
			return count, err
		}
		count++
	}

	for _, tc := range rendered.TokenColors {
		scope := tc.Scope.First()
		if tc.Settings.Foreground == "" || !config.NameMatches(scope, filter) {
			continue
		}
		line := fmt.Sprintf("%s %s %s\n",
			Swatch(tc.Settings.Foreground, tc.Settings.Foreground, p.Width),
			nameStyle.Render(pad(scope, width)),
			faintStyle.Render(strings.Join(tc.Scope.Values, ", ")))
		if _, err := io.WriteString(p.Out, line); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// Palette prints the placeholders of each section matching filter, one row
// of gradations per base.
func (p *Printer) Palette(filter string, sections ...Section) (int, error) {
	count := 0
	for _, s := range sections {
		if s.Palette == nil {
			continue
		}
		if _, err := fmt.Fprintln(p.Out, titleStyle.Render(s.Title)); err != nil {
			return count, err
		}

		var row strings.Builder
		rowBase := ""
		flush := func() error {
			if row.Len() == 0 {
				return nil
			}
			_, err := fmt.Fprintln(p.Out, row.String())
			row.Reset()
			return err
		}

		var err error
		s.Palette.Each(func(name, hex string) {
			if err != nil || !config.NameMatches(name, filter) {
				return
			}
			if base := name[:4]; base != rowBase {
				if err = flush(); err != nil {
					return
				}
				rowBase = base
			}
			row.WriteString(Swatch(hex, name, p.Width))
			count++
		})
		if err != nil {
			return count, err
		}
		if err := flush(); err != nil {
			return count, err
		}
	}
	return count, nil
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
