package cmd

import (
	"fmt"

	"github.com/mmangon/wakdrop-backend/cmd/wakdrop-cli/utils"
	"github.com/mmangon/wakdrop-backend/services/search"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var resolveThreshold float64

var resolveCmd = &cobra.Command{
	Use:   "resolve <name>...",
	Short: "Resolve free-text item names against the catalog.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := catalogService.GetAllItems(cmd.Context())
		if err != nil {
			return err
		}
		result := search.ResolveAll(cmd.Context(), args, items,
			search.Options{Threshold: resolveThreshold})

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Query", "Wakfu ID", "Name", "Rarity", "Score"})
		for _, res := range result.Resolved {
			t.AppendRow(table.Row{
				res.Query, res.WakfuID, res.Name, res.Rarity.String(),
				fmt.Sprintf("%.2f", res.Score),
			})
		}
		t.Render()

		for _, query := range result.Unresolved {
			fmt.Println("unresolved:", query)
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().Float64VarP(
		&resolveThreshold, "threshold", "t", search.ThresholdSearch,
		"minimum match score to accept")
	rootCmd.AddCommand(resolveCmd)
}
