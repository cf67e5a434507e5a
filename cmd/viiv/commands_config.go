package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/viiv-themes/viiv/internal/config"
	"github.com/viiv-themes/viiv/internal/log"
	"github.com/viiv-themes/viiv/internal/settings"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect settings and the config format",
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show settings with their values and descriptions",
	Long:  "Show the tool settings read from flags, VIIV_* environment variables and viiv.toml",
	Args:  cobra.NoArgs,
	Run:   runConfigInfo,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.json",
	Args:  cobra.NoArgs,
	Run:   runConfigSchema,
}

func completionSettingsKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(settings.Default), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Only show these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionSettingsKeys)

	configCmd.AddCommand(configInfoCmd, configSchemaCmd)
}

func runConfigInfo(cmd *cobra.Command, args []string) {
	keys, _ := cmd.Flags().GetStringSlice("key")
	asJSON, _ := cmd.Flags().GetBool("json")

	fields, err := settings.Fields(keys...)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if asJSON {
		data, err := json.MarshalIndent(fields, "", "    ")
		if err != nil {
			log.Fatalf("Error encoding settings: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	for i, f := range fields {
		if i > 0 {
			fmt.Fprintln(os.Stdout)
		}
		fmt.Fprintln(os.Stdout, f.Pretty())
	}
}

func runConfigSchema(cmd *cobra.Command, args []string) {
	data, err := config.SchemaJSON()
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}
	fmt.Println(string(data))
}
