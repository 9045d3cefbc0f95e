// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pharma-finder CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KomalGangwar/pubmed-pharma-finder/internal/secrets"
	"github.com/KomalGangwar/pubmed-pharma-finder/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds NCBI credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when set, otherwise the secret value for
// key, otherwise "".
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the pharma-finder CLI.
var rootCmd = &cobra.Command{
	Use:   "pharma-finder",
	Short: "Find PubMed papers with pharma/biotech company authors",
	Long: `pharma-finder searches PubMed for articles matching a query, classifies
each author's affiliation as company or academic using keyword heuristics,
and reports the articles that have at least one author affiliated with a
pharmaceutical or biotech company.

The find subcommand runs a query end to end; cache inspects or clears the
local record cache.`,
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

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pharma-finder.yaml or ~/.config/pharma-finder/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pharma-finder")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pharma-finder"))
		}
	}

	viper.SetEnvPrefix("PHARMA_FINDER")
	viper.AutomaticEnv()

	viper.SetDefault("fetch.timeout", 30*time.Second)
	viper.SetDefault("fetch.user_agent", "pharma-finder/"+version)
	viper.SetDefault("fetch.max_results", 100)
	viper.SetDefault("fetch.batch_size", 100)
	viper.SetDefault("fetch.request_delay", 350*time.Millisecond)
	viper.SetDefault("cache.dir", "cache")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// fetchConfig assembles the fetch settings from config, env, and secrets.
func fetchConfig() types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("fetch.timeout"),
			UserAgent: viper.GetString("fetch.user_agent"),
		},
		MaxResults:   viper.GetInt("fetch.max_results"),
		BatchSize:    viper.GetInt("fetch.batch_size"),
		RequestDelay: viper.GetDuration("fetch.request_delay"),
		APIKey:       secretDefault("ncbi-api-key", viper.GetString("fetch.api_key")),
		Email:        secretDefault("entrez-email", viper.GetString("fetch.email")),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
