package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/reelcat/internal/content"
	"github.com/vmunix/reelcat/internal/render"
)

type watchReport struct {
	Title     string   `json:"title"`
	User      string   `json:"user"`
	Events    []string `json:"events"`
	Progress  int      `json:"progress"`
	Remaining int      `json:"remaining"`
	Completed bool     `json:"completed"`
	Episodes  int      `json:"episodes"`
}

func newWatchCmd(opts *rootOptions) *cobra.Command {
	var (
		userName string
		minutes  []int
	)

	cmd := &cobra.Command{
		Use:   "watch <title>...",
		Short: "Record viewing of a catalog entry",
		Long: `Record one or more viewing sessions and show the resulting event log
and watch-list state.

Examples:
  reelcat watch "The Matrix" --user alice --minutes 60
  reelcat watch "Breaking Bad" --user alice --minutes 120 --minutes 200`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.loadApp(cmd)
			if err != nil {
				return err
			}
			item, err := a.find(strings.Join(args, " "))
			if err != nil {
				return err
			}
			u, err := a.user(userName)
			if err != nil {
				return err
			}

			episodes := 0
			for _, m := range minutes {
				session, err := a.catalog.Watch(u, item, m)
				if err != nil {
					return err
				}
				episodes = len(session.Episodes)
			}

			report := watchReport{
				Title:     item.Title(),
				User:      u.Name,
				Events:    a.eventLog.Messages(),
				Progress:  a.watchList.Progress(u.ID, item.Title()),
				Remaining: a.watchList.Remaining(u.ID, item),
				Completed: contains(a.watchList.Completed(u.ID), item),
				Episodes:  episodes,
			}

			if opts.jsonOutput {
				return printJSON(cmd.OutOrStdout(), report)
			}

			out := cmd.OutOrStdout()
			for _, line := range report.Events {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out)
			if report.Completed {
				fmt.Fprintf(out, "%s has finished '%s' (%s)\n", u.Name, item.Title(), render.FormatMinutes(item.Duration()))
			} else {
				fmt.Fprintf(out, "%s is watching '%s': %d of %d min, %d remaining\n",
					u.Name, item.Title(), report.Progress, item.Duration(), report.Remaining)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&userName, "user", "u", "", "Watching user (required)")
	cmd.Flags().IntSliceVarP(&minutes, "minutes", "m", nil, "Minutes watched; repeat for several sessions (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("minutes")
	return cmd
}

func contains(items []content.Content, c content.Content) bool {
	for _, item := range items {
		if content.Same(item, c) {
			return true
		}
	}
	return false
}
