package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vmunix/reelcat/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	testCmd := &cobra.Command{
		Use:   "test [path]",
		Short: "Validate configuration file",
		Long:  "Validates config.toml syntax, environment variable substitution and every catalog entry without running a command.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			explicit := opts.configPath
			if len(args) > 0 {
				explicit = args[0]
			}
			path, err := config.Discover(explicit)
			if err != nil {
				return err
			}
			return runConfigTest(cmd, path)
		},
	}

	configCmd.AddCommand(testCmd)
	return configCmd
}

func runConfigTest(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.Error
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Validation passes field checks; building catches anything the builders reject.
	items, err := cfg.Contents()
	if err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	minutes := 0
	for _, c := range items {
		minutes += c.Duration()
	}

	fmt.Fprintln(out, "Configuration Summary:")
	fmt.Fprintf(out, "  Log:           %s (%s)\n", cfg.Log.Level, cfg.Log.Format)
	fmt.Fprintf(out, "  Downloads:     %s (*.%s)\n", cfg.Download.Root, cfg.Download.Extension)
	fmt.Fprintf(out, "  Users:         %d\n", len(cfg.Users))
	fmt.Fprintf(out, "  Movies:        %d\n", len(cfg.Movies))
	fmt.Fprintf(out, "  Series:        %d\n", len(cfg.Series))
	fmt.Fprintf(out, "  Running time:  %s min\n", humanize.Comma(int64(minutes)))
	if cfg.Notifications.Enabled {
		fmt.Fprintf(out, "  Notifications: from %s\n", cfg.Notifications.From)
	} else {
		fmt.Fprintln(out, "  Notifications: disabled")
	}
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(out io.Writer, e *config.Error) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(out, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(out, "  - %s\n", m)
		}
		fmt.Fprintln(out)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(out, "Validation errors:")
		for _, entry := range e.Entries() {
			fmt.Fprintf(out, "  %s\n", entry.Label())
			for _, msg := range entry.Messages {
				fmt.Fprintf(out, "    - %s\n", msg)
			}
		}
		fmt.Fprintln(out)
	}
}
