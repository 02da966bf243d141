package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"salesops/internal/client"
)

func newExportCmd(flags *globalFlags) *cobra.Command {
	var (
		format string
		query  string
		status string
		output string
	)

	// assets have no file export endpoint
	exportable := map[string]bool{"customers": true, "vehicles": true, "payments": true}

	cmd := &cobra.Command{
		Use:   "export <resource>",
		Short: "Export a table to CSV or XLSX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resource := args[0]
			if !exportable[resource] {
				return fmt.Errorf("resource %q cannot be exported", resource)
			}

			var opts []client.Option
			if flags.Token != "" {
				opts = append(opts, client.WithToken(flags.Token))
			}
			c := client.New(flags.Server, opts...)

			path := output
			if path == "" {
				ext := ".csv"
				if format == "xlsx" {
					ext = ".xlsx"
				}
				path = resource + ext
			}
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			var filters map[string]any
			if status != "" {
				filters = map[string]any{"status": status}
			}
			if err := c.Export(cmd.Context(), resource, format, query, filters, f); err != nil {
				_ = os.Remove(path)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "export format (csv or xlsx)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "free-text search to narrow the export")
	cmd.Flags().StringVar(&status, "status", "", "status filter")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default <resource>.<format>)")
	return cmd
}
