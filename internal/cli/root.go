// Package cli implements the salesops terminal client commands
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"salesops/internal/core/version"
)

// globalFlags are shared by every subcommand
type globalFlags struct {
	Server string
	Token  string
}

// NewRootCmd creates the root cobra command
func NewRootCmd() *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:           "salesops",
		Short:         "Terminal client for the salesops admin API",
		Long:          "salesops browses and exports the back office tables (customers, vehicles, assets, payments) from the terminal.",
		Version:       version.Info().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.Server, "server", "s", envOr("SALESOPS_SERVER", "http://localhost:4000"), "API base URL")
	cmd.PersistentFlags().StringVar(&flags.Token, "token", "", "API token (overrides keyring and env)")

	cmd.AddCommand(newBrowseCmd(&flags))
	cmd.AddCommand(newExportCmd(&flags))
	cmd.AddCommand(newOptionsCmd(&flags))
	cmd.AddCommand(newLoginCmd())

	return cmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
