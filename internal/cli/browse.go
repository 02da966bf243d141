package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"salesops/internal/client"
	"salesops/internal/prefs"
	"salesops/internal/refdata"
	"salesops/internal/tablekit"
	"salesops/internal/tui"
)

// resourceColumns declares the table shape per API resource. Cells come
// from the row's Fielder so no Render funcs are needed
var resourceColumns = map[string][]tablekit.Column[client.Row]{
	"customers": {
		{Key: "name", Title: "Name", Sortable: true},
		{Key: "email", Title: "Email", Sortable: true},
		{Key: "phone", Title: "Phone"},
		{Key: "city", Title: "City", Sortable: true},
		{Key: "status", Title: "Status", Sortable: true},
	},
	"vehicles": {
		{Key: "plate", Title: "Plate", Sortable: true},
		{Key: "make", Title: "Make", Sortable: true},
		{Key: "model", Title: "Model", Sortable: true},
		{Key: "year", Title: "Year", Sortable: true},
		{Key: "status", Title: "Status", Sortable: true},
	},
	"payments": {
		{Key: "reference", Title: "Reference", Sortable: true},
		{Key: "amount", Title: "Amount", Sortable: true},
		{Key: "currency", Title: "Currency"},
		{Key: "status", Title: "Status", Sortable: true},
		{Key: "paid_at", Title: "Paid"},
	},
	"assets": {
		{Key: "kind", Title: "Kind", Sortable: true},
		{Key: "label", Title: "Label", Sortable: true},
		{Key: "url", Title: "URL"},
		{Key: "status", Title: "Status", Sortable: true},
	},
}

func newBrowseCmd(flags *globalFlags) *cobra.Command {
	var pageSize int

	cmd := &cobra.Command{
		Use:   "browse <resource>",
		Short: "Browse a table interactively",
		Long:  "Opens a terminal table over customers, vehicles, payments or assets with paging, search, filters and bulk review actions.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resource := args[0]
			columns, ok := resourceColumns[resource]
			if !ok {
				return fmt.Errorf("unknown resource %q", resource)
			}

			var opts []client.Option
			if flags.Token != "" {
				opts = append(opts, client.WithToken(flags.Token))
			}
			c := client.New(flags.Server, opts...)
			src := c.Table(resource)

			cfg := tablekit.Config[client.Row]{
				Columns:  columns,
				Source:   src,
				PageSize: pageSize,
				RowID:    func(r client.Row) string { return r.ID() },
				PrefsKey: "columns." + resource,
				Prefs:    prefsStore(),
			}
			switch resource {
			case "vehicles":
				cfg.BulkActions = reviewBulkActions(c.ApproveVehicles, c.RejectVehicles)
			case "assets":
				cfg.BulkActions = reviewBulkActions(c.ApproveAssets, c.RejectAssets)
			}

			ctrl := tablekit.NewController(cfg)
			lookups := refdata.NewCatalog()
			lookups.Register("statuses", c.LookupFetcher("statuses"))
			model := tui.NewBrowser(cmd.Context(), ctrl, resource, lookups)
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", 10, "rows per page")
	return cmd
}

// reviewBulkActions wires the review surface: approve is available for
// any selection, reject reads its reason from the prompt context
func reviewBulkActions(
	approve func(context.Context, []string) (client.ReviewResult, error),
	reject func(context.Context, []string, string) (client.ReviewResult, error),
) []tablekit.BulkAction[client.Row] {
	ids := func(rows []client.Row, selected []int) []string {
		out := make([]string, 0, len(selected))
		for _, i := range selected {
			if i < len(rows) {
				out = append(out, rows[i].ID())
			}
		}
		return out
	}
	return []tablekit.BulkAction[client.Row]{
		{
			Name: "approve",
			When: func(rows []client.Row, selected []int) bool { return len(selected) > 0 },
			Do: func(ctx context.Context, rows []client.Row, selected []int) error {
				_, err := approve(ctx, ids(rows, selected))
				return err
			},
		},
		{
			Name: "reject",
			When: func(rows []client.Row, selected []int) bool { return len(selected) > 0 },
			Do: func(ctx context.Context, rows []client.Row, selected []int) error {
				_, err := reject(ctx, ids(rows, selected), tui.ReasonFrom(ctx))
				return err
			},
		},
	}
}

// prefsStore persists column visibility under the user config dir,
// falling back to memory when no config dir is resolvable
func prefsStore() tablekit.PrefStore {
	dir, err := os.UserConfigDir()
	if err != nil {
		return prefs.NewMemory()
	}
	path := filepath.Join(dir, "salesops", "prefs.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return prefs.NewMemory()
	}
	return prefs.NewFile(path)
}
