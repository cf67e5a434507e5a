package main

import (
	"github.com/spf13/cobra"
	"github.com/viiv-themes/viiv/internal/config"
	"github.com/viiv-themes/viiv/internal/fsys"
	"github.com/viiv-themes/viiv/internal/log"
	"github.com/viiv-themes/viiv/internal/settings"
	"github.com/viiv-themes/viiv/internal/theme"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config and template",
	Long:  "Write a starter config.json and theme template into the working directory. Existing files are kept unless --force is given",
	Args:  cobra.NoArgs,
	Run:   runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) {
	force, _ := cmd.Flags().GetBool("force")

	writeIfMissing := func(path string, write func() error) {
		exists, err := fsys.API().Exists(path)
		if err != nil {
			log.Fatalf("Error checking %s: %v", path, err)
		}
		if exists && !force {
			log.Warnf("%s exists, use --force to overwrite", path)
			return
		}
		if err := write(); err != nil {
			log.Fatalf("Error writing %s: %v", path, err)
		}
		log.Infof("Wrote %s", path)
	}

	configPath := settings.ConfigPath()
	writeIfMissing(configPath, func() error {
		return fsys.WriteFile(configPath, []byte(config.StarterConfig))
	})

	templatePath := settings.TemplatePath()
	writeIfMissing(templatePath, func() error {
		return theme.Starter().Save(templatePath)
	})
}
