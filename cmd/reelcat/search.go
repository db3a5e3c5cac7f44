package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type searchResult struct {
	Title      string  `json:"title"`
	Score      float64 `json:"score"`
	Confidence string  `json:"confidence"`
}

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Fuzzy search catalog titles",
		Long: `Fuzzy search catalog titles.

Examples:
  reelcat search matrix
  reelcat search --limit 1 "breaking bad"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.loadApp(cmd)
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			matches := a.catalog.Search(query, limit)

			if opts.jsonOutput {
				results := make([]searchResult, len(matches))
				for i, m := range matches {
					results[i] = searchResult{Title: m.Title, Score: m.Score, Confidence: m.Confidence.String()}
				}
				return printJSON(cmd.OutOrStdout(), results)
			}

			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintf(out, "No titles match %q\n", query)
				return nil
			}
			for i, m := range matches {
				fmt.Fprintf(out, "%2d. %-30s %.2f  %s\n", i+1, truncate(m.Title, 30), m.Score, m.Confidence)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 5, "Maximum number of results")
	return cmd
}
