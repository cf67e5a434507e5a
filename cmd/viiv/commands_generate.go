package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viiv-themes/viiv/internal/generator"
	"github.com/viiv-themes/viiv/internal/log"
	"github.com/viiv-themes/viiv/internal/settings"
	"github.com/viiv-themes/viiv/internal/watch"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the configured themes",
	Long:  "Re-assign the template from config.json, generate a palette and render every configured theme, or the themes matching --theme",
	Args:  cobra.NoArgs,
	Run:   runGenerate,
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a random theme",
	Long:  "Generate one theme named " + generator.RandomThemeName + " from the palette options of config.json",
	Args:  cobra.NoArgs,
	Run:   runRandom,
}

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Generate the built-in default themes",
	Long:  "Generate the built-in default themes, or only the one named by --theme",
	Args:  cobra.NoArgs,
	Run:   runDefaults,
}

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Re-assign the template placeholders",
	Long:  "Re-assign every color of the template from config.json and write the used, all and not used group reports",
	Args:  cobra.NoArgs,
	Run:   runTemplate,
}

func init() {
	generateCmd.Flags().StringP("theme", "t", "", "Only generate themes matching this name or regex")
	generateCmd.Flags().Uint64("seed", 0, "Random seed, 0 picks a fresh one")
	generateCmd.Flags().Bool("static", false, "Render the existing template without re-assigning it")
	generateCmd.Flags().Bool("watch", false, "Regenerate whenever the config or the template changes")

	randomCmd.Flags().Uint64("seed", 0, "Random seed, 0 picks a fresh one")
	randomCmd.Flags().Bool("static", false, "Render the existing template without re-assigning it")

	defaultsCmd.Flags().StringP("theme", "t", "", "Only generate the default theme with this name, with or without the viiv- prefix")
	defaultsCmd.Flags().Uint64("seed", 0, "Random seed, 0 picks a fresh one")
	defaultsCmd.Flags().Bool("static", false, "Render the existing template without re-assigning it")

	templateCmd.Flags().Uint64("seed", 0, "Random seed, 0 picks a fresh one")
}

func runGenerate(cmd *cobra.Command, args []string) {
	filter, _ := cmd.Flags().GetString("theme")
	watchFiles, _ := cmd.Flags().GetBool("watch")

	generate := func() error {
		g, err := newGenerator(cmd)
		if err != nil {
			return err
		}
		results, err := g.GenerateThemes(filter)
		for _, res := range results {
			log.Infof("Theme %s written to %s", res.Name, res.Path)
		}
		return err
	}

	if err := generate(); err != nil {
		if !watchFiles {
			log.Fatalf("Error generating themes: %v", err)
		}
		log.Errorf("Error generating themes: %v", err)
	}
	if !watchFiles {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	delay := time.Duration(viper.GetInt(settings.KeyWatchDebounce)) * time.Millisecond
	w := watch.New(delay, settings.ConfigPath(), settings.TemplatePath())
	if !staticMode(cmd) {
		// generate re-assigns the template in place
		w.Produces(settings.TemplatePath())
	}
	log.Infof("Watching %v, press Ctrl+C to stop", w.Paths())

	err := w.Run(ctx, func(paths []string) {
		if err := generate(); err != nil {
			log.Errorf("Error generating themes: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Error watching files: %v", err)
	}
}

func runRandom(cmd *cobra.Command, args []string) {
	g := mustGenerator(cmd)
	res, err := g.GenerateRandom()
	if err != nil {
		log.Fatalf("Error generating random theme: %v", err)
	}
	log.Infof("Theme %s written to %s (seed %d)", res.Name, res.Path, g.Seed())
}

func runDefaults(cmd *cobra.Command, args []string) {
	filter, _ := cmd.Flags().GetString("theme")

	g := mustGenerator(cmd)
	results, err := g.GenerateDefaults(filter)
	for _, res := range results {
		log.Infof("Theme %s written to %s", res.Name, res.Path)
	}
	if err != nil {
		log.Fatalf("Error generating default themes: %v", err)
	}
}

func runTemplate(cmd *cobra.Command, args []string) {
	g := mustGenerator(cmd)
	report, err := g.AssignTemplate()
	if err != nil {
		log.Fatalf("Error assigning template: %v", err)
	}
	for _, group := range report.Unused {
		log.Debugf("Unused group %s", group)
	}
}
