package main

import (
	"github.com/spf13/cobra"
)

var version = "dev"

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	jsonOutput bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "reelcat",
		Short: "Media catalog for a streaming platform",
		Long: `reelcat - media catalog for a streaming platform

Loads movies, series and users from a TOML config and lets you browse,
search, plan downloads and record viewing against the catalog.

Config is found via --config, $REELCAT_CONFIG, ./config.toml or
$XDG_CONFIG_HOME/reelcat/config.toml. Run 'reelcat init' to create one.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config")

	cmd.Version = version
	cmd.SetVersionTemplate("reelcat {{.Version}}\n")

	cmd.AddCommand(
		newInitCmd(),
		newConfigCmd(opts),
		newListCmd(opts),
		newShowCmd(opts),
		newSearchCmd(opts),
		newDownloadCmd(opts),
		newWatchCmd(opts),
	)
	return cmd
}
