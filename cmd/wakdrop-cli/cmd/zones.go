package cmd

import (
	"strconv"

	"github.com/mmangon/wakdrop-backend/cmd/wakdrop-cli/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "Manage the zone registry.",
}

var zonesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known zones.",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := zoneService.ListZones(cmd.Context())
		if err != nil {
			return err
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"ID", "Name", "Levels", "Description"})
		for _, zone := range list {
			levels := ""
			if zone.MinLevel != 0 || zone.MaxLevel != 0 {
				levels = formatLevels(zone.MinLevel, zone.MaxLevel)
			}
			t.AppendRow(table.Row{zone.ID, zone.Name, levels, zone.Description})
		}
		t.Render()
		return nil
	},
}

func formatLevels(min, max int64) string {
	switch {
	case min != 0 && max != 0:
		return formatInt(min) + "-" + formatInt(max)
	case min != 0:
		return formatInt(min) + "+"
	default:
		return "≤" + formatInt(max)
	}
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

func init() {
	zonesCmd.AddCommand(zonesListCmd)
	rootCmd.AddCommand(zonesCmd)
}
