package cdn

// Obtention buckets. "drop" is never assigned here: the CDN has no
// bestiary table, drop status comes from the imported drop records.
const (
	ObtentionCraft   = "craft"
	ObtentionHarvest = "harvest"
	ObtentionShop    = "shop"
	ObtentionUnknown = "unknown"
)

// item types sold exclusively by NPC shops (consumable tokens,
// sacks). Sourced from the gamedata itemTypes table, stable across
// versions so far.
var shopItemTypes = map[int64]bool{
	582: true,
	611: true,
}

// Obtentions indexes the recipe and harvest tables by produced item
// so classification is a lookup.
type Obtentions struct {
	crafted   map[int64]bool
	harvested map[int64]bool
}

func IndexObtentions(recipes []RawRecipeResult, loots []RawHarvestLoot) Obtentions {
	o := Obtentions{
		crafted:   make(map[int64]bool, len(recipes)),
		harvested: make(map[int64]bool, len(loots)),
	}
	for _, r := range recipes {
		o.crafted[r.ProductedItemID] = true
	}
	for _, l := range loots {
		o.harvested[l.ItemID] = true
	}
	return o
}

// Classify buckets an item by how a player obtains it. Craft beats
// harvest when both apply: a craftable item's harvest path is the
// ingredients', not its own.
func (o Obtentions) Classify(item RawItem) string {
	id := item.Definition.Item.ID
	switch {
	case o.crafted[id]:
		return ObtentionCraft
	case o.harvested[id]:
		return ObtentionHarvest
	case shopItemTypes[item.Definition.Item.BaseParameters.ItemTypeID]:
		return ObtentionShop
	default:
		return ObtentionUnknown
	}
}
