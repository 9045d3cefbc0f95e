// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KomalGangwar/pubmed-pharma-finder/internal/store"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the local record cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the number of cached PubMed records",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(viper.GetString("cache.dir"))
		if err != nil {
			return err
		}
		defer s.Close()

		count, oldest, err := s.Stats(cmd.Context())
		if err != nil {
			return err
		}
		if count == 0 {
			fmt.Println("cache is empty")
			return nil
		}
		fmt.Printf("%d cached records (oldest fetched %s)\n", count, oldest.Format("2006-01-02"))
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached PubMed records",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(viper.GetString("cache.dir"))
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("cache cleared")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
