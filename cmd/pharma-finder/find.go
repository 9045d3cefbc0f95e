// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KomalGangwar/pubmed-pharma-finder/internal/classify"
	"github.com/KomalGangwar/pubmed-pharma-finder/internal/pipeline"
	"github.com/KomalGangwar/pubmed-pharma-finder/internal/pubmed"
	"github.com/KomalGangwar/pubmed-pharma-finder/internal/report"
	"github.com/KomalGangwar/pubmed-pharma-finder/internal/store"
)

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Search PubMed and report papers with company-affiliated authors",
	Long: `Find searches PubMed for articles matching the query (full PubMed query
syntax is supported), fetches author and affiliation metadata, and reports
every article with at least one pharmaceutical/biotech company author.

Output is CSV by default, written to stdout or to -f/--file. --json emits
JSON instead; --table prints a readable table. --save writes the full run
(query, rows, summary) to a YAML file for later reloading.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]

		maxResults, _ := cmd.Flags().GetInt("max")
		outFile, _ := cmd.Flags().GetString("file")
		debug, _ := cmd.Flags().GetBool("debug")
		asJSON, _ := cmd.Flags().GetBool("json")
		asTable, _ := cmd.Flags().GetBool("table")
		noCache, _ := cmd.Flags().GetBool("no-cache")
		lexiconPath, _ := cmd.Flags().GetString("lexicon")
		savePath, _ := cmd.Flags().GetString("save")

		lex := classify.DefaultLexicon()
		if lexiconPath != "" {
			var err error
			if lex, err = classify.LoadLexicon(lexiconPath); err != nil {
				return err
			}
		}

		var progress io.Writer = io.Discard
		if debug {
			progress = os.Stderr
		}

		var cache pipeline.Cache
		if !noCache && !viper.GetBool("cache.disabled") {
			s, err := store.Open(viper.GetString("cache.dir"))
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: cache unavailable: %v\n", err)
			} else {
				defer s.Close()
				cache = s
			}
		}

		client := pubmed.NewClient(fetchConfig())
		normalizer := pipeline.NewNormalizer(classify.NewClassifier(lex))

		rows, summary, err := pipeline.Run(cmd.Context(), client, cache, normalizer, query, maxResults, progress)
		if err != nil {
			return err
		}

		if savePath != "" {
			if err := report.WriteResultFile(savePath, query, maxResults, rows, summary.Found); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Run saved to %s\n", savePath)
		}

		out := os.Stdout
		if outFile != "" {
			f, err := os.Create(outFile)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		switch {
		case asJSON:
			return report.FormatJSON(rows, out)
		case asTable:
			report.FormatTable(rows, out)
			return nil
		default:
			if len(rows) == 0 {
				fmt.Fprintln(os.Stderr, "No papers with pharmaceutical/biotech company affiliations found.")
			}
			if err := report.WriteCSV(rows, out); err != nil {
				return err
			}
			if outFile != "" {
				fmt.Fprintf(os.Stderr, "Results saved to %s (%d papers)\n", outFile, len(rows))
			}
			return nil
		}
	},
}

func init() {
	findCmd.Flags().IntP("max", "m", 100, "maximum number of papers to retrieve")
	findCmd.Flags().StringP("file", "f", "", "write results to this file instead of stdout")
	findCmd.Flags().BoolP("debug", "d", false, "print progress information to stderr")
	findCmd.Flags().Bool("json", false, "output results as JSON")
	findCmd.Flags().Bool("table", false, "output results as a readable table")
	findCmd.Flags().Bool("no-cache", false, "bypass the local record cache")
	findCmd.Flags().String("lexicon", "", "YAML file overriding the classification keyword sets")
	findCmd.Flags().String("save", "", "save the full run (query, rows, summary) to this YAML file")

	rootCmd.AddCommand(findCmd)
}
