// Package roadmap turns drop records into a farm plan grouped by zone
// and monster, ranked by how much of the requested item set each zone
// covers.
package roadmap

import (
	"sort"

	"github.com/mmangon/wakdrop-backend/services/catalog"
)

// records without any zone association land here
const UnknownZone = "Zone inconnue"

type ItemDrop struct {
	ItemID int64   `json:"item_id"`
	Rate   float64 `json:"drop_rate"`
}

// Monster owns its item list. Zone views reference the same list (by
// design: a monster appearing in several zones must count its items
// once per zone without the lists diverging).
type Monster struct {
	ID    int64      `json:"id"`
	Name  string     `json:"name"`
	Level int64      `json:"level,omitempty"`
	Zones []string   `json:"zones"`
	Items []ItemDrop `json:"items"`
}

// ZoneMonster is the zone-scoped view of a monster. Items aliases the
// monster's own list, it is not an independent copy.
type ZoneMonster struct {
	ID    int64      `json:"id"`
	Name  string     `json:"name"`
	Level int64      `json:"level,omitempty"`
	Items []ItemDrop `json:"items"`
}

type Zone struct {
	Name        string        `json:"name"`
	TotalItems  int           `json:"total_items"`
	AvgDropRate float64       `json:"avg_drop_rate"`
	Monsters    []ZoneMonster `json:"monsters"`
}

type Summary struct {
	RequestedItems int `json:"requested_items"`
	CoveredItems   int `json:"covered_items"`
	TotalZones     int `json:"total_zones"`
	TotalMonsters  int `json:"total_monsters"`
}

type Result struct {
	Zones   []Zone  `json:"zones"`
	Summary Summary `json:"summary"`
}

// Build aggregates pre-fetched drop records into an ordered roadmap.
// Pure computation over the snapshot: items without drop data are
// silently absent, an empty input produces an empty (not nil-error)
// result. Zones are ordered descending by (total_items,
// avg_drop_rate); monsters within a zone descending by summed rate.
func Build(itemIDs []int64, drops []catalog.Drop) Result {
	monsters := map[int64]*Monster{}
	zoneMembers := map[string][]int64{}
	zoneSeen := map[string]map[int64]bool{}
	var zoneOrder []string
	coveredItems := map[int64]struct{}{}

	for _, d := range drops {
		coveredItems[d.ItemID] = struct{}{}

		m, ok := monsters[d.MonsterID]
		if !ok {
			m = &Monster{
				ID:    d.MonsterID,
				Name:  d.MonsterName,
				Level: d.MonsterLevel,
				Zones: d.Zones,
			}
			monsters[d.MonsterID] = m
		}
		m.Items = append(m.Items, ItemDrop{ItemID: d.ItemID, Rate: d.Rate})

		zones := d.Zones
		if len(zones) == 0 {
			zones = []string{UnknownZone}
		}
		for _, zone := range zones {
			if zoneSeen[zone] == nil {
				zoneSeen[zone] = map[int64]bool{}
				zoneOrder = append(zoneOrder, zone)
			}
			if !zoneSeen[zone][d.MonsterID] {
				zoneSeen[zone][d.MonsterID] = true
				zoneMembers[zone] = append(zoneMembers[zone], d.MonsterID)
			}
		}
	}

	zones := make([]Zone, 0, len(zoneOrder))
	for _, name := range zoneOrder {
		z := Zone{Name: name}

		var totalRate float64
		for _, monsterID := range zoneMembers[name] {
			// tallies read from the monster index, zone views are
			// only references
			m := monsters[monsterID]
			z.TotalItems += len(m.Items)
			for _, item := range m.Items {
				totalRate += item.Rate
			}
			z.Monsters = append(z.Monsters, ZoneMonster{
				ID:    m.ID,
				Name:  m.Name,
				Level: m.Level,
				Items: m.Items,
			})
		}
		if z.TotalItems > 0 {
			z.AvgDropRate = totalRate / float64(z.TotalItems)
		}

		sort.SliceStable(z.Monsters, func(i, j int) bool {
			ri, rj := summedRate(z.Monsters[i].Items), summedRate(z.Monsters[j].Items)
			if ri != rj {
				return ri > rj
			}
			return z.Monsters[i].ID < z.Monsters[j].ID
		})
		zones = append(zones, z)
	}

	// more covered items wins ties over higher average rate
	sort.SliceStable(zones, func(i, j int) bool {
		if zones[i].TotalItems != zones[j].TotalItems {
			return zones[i].TotalItems > zones[j].TotalItems
		}
		return zones[i].AvgDropRate > zones[j].AvgDropRate
	})

	return Result{
		Zones: zones,
		Summary: Summary{
			RequestedItems: len(itemIDs),
			CoveredItems:   len(coveredItems),
			TotalZones:     len(zones),
			TotalMonsters:  len(monsters),
		},
	}
}

func summedRate(items []ItemDrop) float64 {
	var total float64
	for _, item := range items {
		total += item.Rate
	}
	return total
}
