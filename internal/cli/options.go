package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"salesops/internal/client"
	"salesops/internal/refdata"
)

func newOptionsCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options <list>",
		Short: "Print a lookup list",
		Long:  "Prints the options of one lookup list (vehicle_makes, currencies, cities...) as value/label pairs.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []client.Option
			if flags.Token != "" {
				opts = append(opts, client.WithToken(flags.Token))
			}
			c := client.New(flags.Server, opts...)

			cat := refdata.NewCatalog()
			cat.Register(args[0], c.LookupFetcher(args[0]))
			list, err := cat.Ensure(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, o := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", o.Value, o.Label)
			}
			return nil
		},
	}
	return cmd
}
