// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the aidaily CLI: a new AI
// research paper every day, fetched from arXiv, stored locally, and
// optionally summarized.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yubraaj11/AIDaily/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the aidaily CLI.
var rootCmd = &cobra.Command{
	Use:   "aidaily",
	Short: "A new AI research paper every day",
	Long: `aidaily rotates through a fixed list of arXiv categories, fetches one
randomly chosen recent paper per day, stores it as a JSON record, and can
attach a generated summary of the full text.

Run "aidaily serve" for the HTTP API with the daily scheduler, or use the
fetch, papers, and summarize subcommands directly.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./aidaily.yaml or ~/.config/aidaily/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("aidaily")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "aidaily"))
		}
	}

	viper.SetEnvPrefix("AIDAILY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
