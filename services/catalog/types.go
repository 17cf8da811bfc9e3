package catalog

// Rarity follows the CDN's numeric encoding.
type Rarity int64

const (
	RarityCommon Rarity = iota
	RarityUnusual
	RarityRare
	RarityMythic
	RarityLegendary
	RarityRelic
	RarityEpic
	RaritySouvenir
)

var rarityNames = map[Rarity]string{
	RarityCommon:    "Commun",
	RarityUnusual:   "Inhabituel",
	RarityRare:      "Rare",
	RarityMythic:    "Mythique",
	RarityLegendary: "Légendaire",
	RarityRelic:     "Relique",
	RarityEpic:      "Épique",
	RaritySouvenir:  "Souvenir",
}

func (r Rarity) String() string {
	name, ok := rarityNames[r]
	if !ok {
		return "Commun"
	}
	return name
}

// Item is one game item as known to the catalog. Source data is not
// guaranteed clean: Name may be empty, Level and ItemType may be
// missing (zero values).
type Item struct {
	WakfuID       int64
	Name          string
	Level         int64
	ItemType      string
	Rarity        Rarity
	ObtentionType string
}

// Drop is one observed "monster drops item at rate" association. Rate
// is a plain percentage in [0,100]; percent-string inputs are
// normalized before they ever reach this type. Zones lists the zone
// names the monster is known to appear in, it may be empty.
type Drop struct {
	MonsterID    int64
	MonsterName  string
	MonsterLevel int64
	ItemID       int64
	Rate         float64
	Zones        []string
}
