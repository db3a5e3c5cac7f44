package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/reelcat/internal/download"
)

func newDownloadCmd(opts *rootOptions) *cobra.Command {
	var userName, path string

	cmd := &cobra.Command{
		Use:   "download <title>...",
		Short: "Plan a download of a catalog entry",
		Long: `Plan where a catalog entry would be downloaded. Nothing is transferred.

Examples:
  reelcat download "The Matrix" --user alice
  reelcat download "Breaking Bad" --user alice --path /mnt/media`,
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

			req := download.Request{Path: path}
			if req.Path == "" {
				req.Path = a.cfg.Download.Root
			}
			if userName != "" {
				u, err := a.user(userName)
				if err != nil {
					return err
				}
				req.Requester = &u
			}

			res, err := a.catalog.Download(item, req)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				if err := printJSON(cmd.OutOrStdout(), res); err != nil {
					return err
				}
			} else {
				printDownload(cmd, res)
			}
			if !res.Success {
				return errors.New("download not possible")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&userName, "user", "u", "", "Requesting user (checked against access tier)")
	cmd.Flags().StringVarP(&path, "path", "p", "", "Destination directory (default: download.root)")
	return cmd
}

func printDownload(cmd *cobra.Command, res download.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res.Message)
	for _, f := range res.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
}

