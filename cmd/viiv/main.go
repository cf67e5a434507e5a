package main

import (
	"os"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viiv-themes/viiv/internal/generator"
	"github.com/viiv-themes/viiv/internal/log"
	"github.com/viiv-themes/viiv/internal/settings"
)

var rootCmd = &cobra.Command{
	Use:   "viiv",
	Short: "Generate VS Code color themes from a template and a palette",
	Long: "viiv assigns palette placeholders to the colors of a VS Code theme template " +
		"using matching rules from config.json, generates a random palette and renders " +
		"the template into finished theme files",
	SilenceUsage:     true,
	PersistentPreRun: setup,
}

func init() {
	rootCmd.PersistentFlags().String("workdir", ".", "Working directory holding config, template and outputs")
	lo.Must0(viper.BindPFlag(settings.KeyWorkdir, rootCmd.PersistentFlags().Lookup("workdir")))

	rootCmd.PersistentFlags().String("config", "", "Generator config file")
	lo.Must0(viper.BindPFlag(settings.KeyConfig, rootCmd.PersistentFlags().Lookup("config")))

	rootCmd.PersistentFlags().String("template", "", "Theme template file")
	lo.Must0(viper.BindPFlag(settings.KeyTemplate, rootCmd.PersistentFlags().Lookup("template")))

	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error, fatal")
	lo.Must0(viper.BindPFlag(settings.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level")))

	rootCmd.AddCommand(
		generateCmd,
		randomCmd,
		defaultsCmd,
		templateCmd,
		printCmd,
		browseCmd,
		initCmd,
		configCmd,
	)
}

func setup(cmd *cobra.Command, args []string) {
	if err := settings.Setup(); err != nil {
		log.Fatalf("Error loading settings: %v", err)
	}
	log.SetLevel(viper.GetString(settings.KeyLogLevel))
	log.Debugf("Working directory %s", viper.GetString(settings.KeyWorkdir))
}

// newGenerator builds a generator from the settings. A --seed or --static
// flag on cmd overrides the setting.
func newGenerator(cmd *cobra.Command) (*generator.Generator, error) {
	seed := viper.GetUint64(settings.KeySeed)
	if cmd.Flags().Changed("seed") {
		seed, _ = cmd.Flags().GetUint64("seed")
	}
	return generator.New(generator.Options{
		ConfigPath:   settings.ConfigPath(),
		TemplatePath: settings.TemplatePath(),
		OutputDir:    settings.OutputDir(),
		ThemesDir:    settings.ThemesDir(),
		Seed:         seed,
		Static:       staticMode(cmd),
	})
}

func staticMode(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("static") {
		static, _ := cmd.Flags().GetBool("static")
		return static
	}
	return viper.GetBool(settings.KeyGenerateStatic)
}

func mustGenerator(cmd *cobra.Command) *generator.Generator {
	g, err := newGenerator(cmd)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	return g
}

func main() {
	cc.Init(&cc.Config{
		RootCmd:       rootCmd,
		Headings:      cc.HiCyan + cc.Bold + cc.Underline,
		Commands:      cc.HiYellow + cc.Bold,
		Example:       cc.Italic,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic + cc.HiBlue,
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
