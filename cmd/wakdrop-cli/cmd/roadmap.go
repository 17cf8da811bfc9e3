package cmd

import (
	"fmt"
	"strconv"

	"github.com/mmangon/wakdrop-backend/cmd/wakdrop-cli/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap <item-id>...",
	Short: "Build a farm roadmap for a set of item ids.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemIDs := make([]int64, len(args))
		for i, arg := range args {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q: %w", arg, err)
			}
			itemIDs[i] = id
		}

		result, err := roadmapService.BuildRoadmap(cmd.Context(), itemIDs)
		if err != nil {
			return err
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Zone", "Items", "Avg Rate", "Monster", "Monster Items"})
		for _, zone := range result.Zones {
			for i, monster := range zone.Monsters {
				var name, items, avg any = "", "", ""
				if i == 0 {
					name = zone.Name
					items = zone.TotalItems
					avg = fmt.Sprintf("%.1f%%", zone.AvgDropRate)
				}
				t.AppendRow(table.Row{name, items, avg, monster.Name, len(monster.Items)})
			}
		}
		t.Render()

		s := result.Summary
		fmt.Printf("%d/%d items covered, %d zones, %d monsters\n",
			s.CoveredItems, s.RequestedItems, s.TotalZones, s.TotalMonsters)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(roadmapCmd)
}
