package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viiv-themes/viiv/internal/generator"
	"github.com/viiv-themes/viiv/internal/log"
	"github.com/viiv-themes/viiv/internal/settings"
	"github.com/viiv-themes/viiv/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [theme]",
	Short: "Browse the colors of a generated theme",
	Long:  "Browse the colors of a generated theme interactively with fuzzy filtering. Defaults to " + generator.RandomThemeName,
	Args:  cobra.MaximumNArgs(1),
	Run:   runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) {
	name := generator.RandomThemeName
	if len(args) > 0 {
		name = args[0]
	}

	rendered, template := loadTheme(name)
	if rendered.Name() == "" {
		rendered.SetName(name)
	}
	if err := tui.Run(rendered, template, viper.GetInt(settings.KeyPreviewSwatchWidth)); err != nil {
		log.Fatalf("Error running browser: %v", err)
	}
}
