package palette

import "fmt"

type DefaultTheme struct {
	Name   string
	Colors []string
}

func repeat(hex string) []string {
	return []string{hex, hex, hex, hex}
}

// DefaultThemes are the built-in themes of `viiv defaults`. An empty color
// list falls back to the configured base color name.
var DefaultThemes = func() []DefaultTheme {
	themes := []DefaultTheme{
		{"dark-black", repeat("#010101")},
		{"dark-red", repeat("#010000")},
		{"dark-yellow", repeat("#010100")},
		{"dark-desaturated-yellow", repeat("#202313")},
		{"dark-olive-yellow", repeat("#222118")},
		{"dark-green", repeat("#000100")},
		{"dark-lime-green", repeat("#1e2420")},
		{"dark-cyan", repeat("#000101")},
		{"dark-grayish-cyan", repeat("#090c0c")},
		{"dark-blue", repeat("#000001")},
		{"dark-desaturated-blue", repeat("#191f27")},
		{"dark-violet", repeat("#010001")},
		{"dark-pink", repeat("#271622")},
		{"dark-magenta", repeat("#231626")},
		{"dark-grayish-violet", repeat("#18171a")},
		{"black", repeat("#0b0b0b")},
		{"red", repeat("#0c0000")},
		{"yellow", repeat("#0c0c00")},
		{"green", repeat("#000c00")},
		{"cyan", repeat("#000c0c")},
		{"blue", repeat("#00000c")},
		{"violet", repeat("#0c000c")},
		{"ericsson-black", repeat("#0c0c0c")},
		{"github-blue", repeat("#010409")},
		{"twitter-dim", repeat("#0d1319")},
	}
	for i := 0; i < 8; i++ {
		themes = append(themes, DefaultTheme{Name: fmt.Sprintf("random-%d", i)})
	}
	return themes
}()

func DefaultThemeNames() []string {
	names := make([]string, len(DefaultThemes))
	for i, t := range DefaultThemes {
		names[i] = t.Name
	}
	return names
}
