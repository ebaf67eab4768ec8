// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the sitegen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the sitegen CLI.
var rootCmd = &cobra.Command{
	Use:   "sitegen",
	Short: "Content generators for the homepage",
	Long: `sitegen regenerates the derived content of the homepage. Each generator
is a subcommand: publications renders the bibliography as an HTML list,
essays pulls the blog's RSS feed and rewrites the essay-card regions of
the essays page.

Both generators are single-pass and idempotent; running one twice with
the same inputs produces the same output.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./sitegen.yaml or ~/.config/sitegen/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sitegen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "sitegen"))
		}
	}

	viper.SetEnvPrefix("SITEGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// cfgString resolves a setting: an explicitly set flag wins, then the
// config file, then the built-in default.
func cfgString(flagVal, key, fallback string) string {
	if flagVal != "" {
		return flagVal
	}
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
