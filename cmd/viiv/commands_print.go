package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viiv-themes/viiv/internal/fsys"
	"github.com/viiv-themes/viiv/internal/generator"
	"github.com/viiv-themes/viiv/internal/log"
	"github.com/viiv-themes/viiv/internal/palette"
	"github.com/viiv-themes/viiv/internal/preview"
	"github.com/viiv-themes/viiv/internal/settings"
	"github.com/viiv-themes/viiv/internal/theme"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print generated colors",
	Long:  "Print the colors of a generated theme or the last generated palettes as terminal swatches",
}

var printColorsCmd = &cobra.Command{
	Use:   "colors <filter>",
	Short: "Print theme colors matching a filter",
	Long:  "Print every color property of a generated theme whose name contains the filter or matches it as a case-insensitive regex, next to its template value",
	Args:  cobra.ExactArgs(1),
	Run:   runPrintColors,
}

var printPaletteCmd = &cobra.Command{
	Use:   "palette [filter]",
	Short: "Print the last generated palettes",
	Long:  "Print the random, selected UI and selected token palettes of the last generation, optionally filtered by placeholder",
	Args:  cobra.MaximumNArgs(1),
	Run:   runPrintPalette,
}

func init() {
	printColorsCmd.Flags().StringP("theme", "t", generator.RandomThemeName, "Generated theme to print")

	printCmd.AddCommand(printColorsCmd, printPaletteCmd)
}

func newPrinter() *preview.Printer {
	return preview.NewPrinter(os.Stdout, viper.GetInt(settings.KeyPreviewSwatchWidth))
}

// loadTheme reads a generated theme and the template it came from. A missing
// template is not fatal.
func loadTheme(name string) (*theme.Document, *theme.Document) {
	rendered, err := theme.Load(generator.ThemeFile(settings.ThemesDir(), name))
	if err != nil {
		log.Fatalf("Error loading theme %s, generate it first: %v", name, err)
	}
	template, err := theme.Load(settings.TemplatePath())
	if err != nil {
		log.Warnf("Template not available: %v", err)
	}
	return rendered, template
}

func runPrintColors(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("theme")
	rendered, template := loadTheme(name)

	count, err := newPrinter().Colors(rendered, template, args[0])
	if err != nil {
		log.Fatalf("Error printing colors: %v", err)
	}
	if count == 0 {
		log.Warnf("No color of %s matches %q", name, args[0])
	}
}

func runPrintPalette(cmd *cobra.Command, args []string) {
	filter := ""
	if len(args) > 0 {
		filter = args[0]
	}

	files := []struct {
		title string
		file  string
	}{
		{"random palette", generator.RandomPaletteFile},
		{"selected UI palette", generator.SelectedUIPaletteFile},
		{"selected token palette", generator.SelectedTokenPaletteFile},
	}

	sections := make([]preview.Section, 0, len(files))
	for _, f := range files {
		p := palette.New()
		path := filepath.Join(settings.OutputDir(), f.file)
		if err := fsys.ReadJSON(path, p); err != nil {
			log.Fatalf("Error loading %s, generate a theme first: %v", path, err)
		}
		sections = append(sections, preview.Section{Title: f.title, Palette: p})
	}

	count, err := newPrinter().Palette(filter, sections...)
	if err != nil {
		log.Fatalf("Error printing palette: %v", err)
	}
	if count == 0 {
		log.Warnf("No placeholder matches %q", filter)
	}
}
