package main

import (
	"os"

	"github.com/spf13/cobra"
)

// globalOptions are the flags shared by every subcommand.
type globalOptions struct {
	profile   string
	configDir string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "quotes",
		Short: "Quotes and authors service",
		Long: `Serves the quotes API and manages its database.

Without a subcommand the HTTP API is started, as with "quotes serve".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	root.PersistentFlags().StringVar(&opts.profile, "profile", profile,
		"config profile loaded from <config-dir>/<profile>.yaml (env APP_ENVIRONMENT)")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs",
		"directory holding base.yaml and the profile files")

	root.AddCommand(
		newServeCmd(opts),
		newMigrateCmd(opts),
		newImportCmd(opts),
		newCreateSuperuserCmd(opts),
	)

	return root
}
