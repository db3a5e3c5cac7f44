package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vmunix/reelcat/internal/content"
	"github.com/vmunix/reelcat/internal/render"
)

// contentEntry is the JSON form of a catalog item.
type contentEntry struct {
	Title       string `json:"title"`
	Kind        string `json:"kind"`
	Duration    int    `json:"duration"`
	Resolution  string `json:"resolution,omitempty"`
	Free        bool   `json:"free"`
	ReleaseDate string `json:"release_date,omitempty"`
	Seasons     int    `json:"seasons,omitempty"`
	Episodes    int    `json:"episodes,omitempty"`
}

func newContentEntry(c content.Content) contentEntry {
	e := contentEntry{
		Title:      c.Title(),
		Kind:       string(c.Kind()),
		Duration:   c.Duration(),
		Resolution: c.Resolution().String(),
		Free:       c.Free(),
	}
	if t, ok := c.ReleaseDate(); ok {
		e.ReleaseDate = t.Format(content.DateLayout)
	}
	if s, ok := c.(*content.Series); ok {
		e.Seasons = len(s.Seasons())
		e.Episodes = s.EpisodeCount()
	}
	return e
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.loadApp(cmd)
			if err != nil {
				return err
			}

			var items []content.Content
			for _, c := range a.catalog.Contents() {
				if kind == "" || string(c.Kind()) == kind {
					items = append(items, c)
				}
			}

			if opts.jsonOutput {
				entries := make([]contentEntry, len(items))
				for i, c := range items {
					entries[i] = newContentEntry(c)
				}
				return printJSON(cmd.OutOrStdout(), entries)
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No content found")
				return nil
			}

			fmt.Fprintf(out, "%-30s %-7s %-16s %-6s %-14s %s\n", "TITLE", "KIND", "DURATION", "RES", "ACCESS", "RELEASED")
			fmt.Fprintln(out, strings.Repeat("-", 90))
			total := 0
			for _, c := range items {
				total += c.Duration()
				fmt.Fprintf(out, "%-30s %-7s %-16s %-6s %-14s %s\n",
					truncate(c.Title(), 30),
					c.Kind(),
					render.FormatMinutes(c.Duration()),
					orDash(c.Resolution().String()),
					access(c),
					released(c),
				)
			}
			fmt.Fprintf(out, "\n%d titles, %s minutes\n", len(items), humanize.Comma(int64(total)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "", "Filter by kind (movie, series)")
	return cmd
}

func access(c content.Content) string {
	if c.Free() {
		return "Free"
	}
	return "Subscription"
}

func released(c content.Content) string {
	t, ok := c.ReleaseDate()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", t.Format(content.DateLayout), humanize.RelTime(t, time.Now(), "ago", "from now"))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
