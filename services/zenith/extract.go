package zenith

import (
	"regexp"
	"strings"

	"github.com/mmangon/wakdrop-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

type EquipmentItem struct {
	Name   string `json:"name"`
	Rarity string `json:"rarity,omitempty"`
	// which DOM attribute the name was found in, for diagnostics
	Source string `json:"source,omitempty"`
}

// rarityClasses maps CSS class fragments used by the planner to a
// rarity keyword usable as a search hint. Order matters: "mythique"
// before "rare" would not collide today but the planner has renamed
// classes before, scan specific names first.
var rarityClasses = []struct {
	class  string
	rarity string
}{
	{"mythique", "mythique"},
	{"legendaire", "legendaire"},
	{"epique", "epique"},
	{"relique", "relique"},
	{"souvenir", "souvenir"},
	{"rare", "rare"},
	{"inhabituel", "inhabituel"},
}

var (
	maxStackRegex     = regexp.MustCompile(`\[\s*[Mm]ax\s*:\s*\d+\s*\]`)
	leadingCountRegex = regexp.MustCompile(`^\d+\s*[x×]?\s*`)
)

// noiseMarkers are substrings that identify UI chrome rather than
// item names.
var noiseMarkers = []string{"max :", "abandon", "accumulation"}

// ExtractEquipment scans a build page for anything that looks like an
// equipped item: titled elements and image alt texts, deduplicated by
// name. The planner renders equipment client-side in several layouts
// so this intentionally over-collects and filters.
func ExtractEquipment(doc *goquery.Document) []EquipmentItem {
	var items []EquipmentItem
	seen := make(map[string]bool)

	collect := func(name, source string, sel *goquery.Selection) {
		name = cleanItemName(name)
		if !plausibleItemName(name) {
			return
		}
		key := strings.ToLower(name)
		if seen[key] {
			return
		}
		seen[key] = true
		items = append(items, EquipmentItem{
			Name:   name,
			Rarity: rarityFromSelection(sel),
			Source: source,
		})
	}

	doc.Find("[title]").Each(func(_ int, sel *goquery.Selection) {
		title, _ := sel.Attr("title")
		collect(title, "title", sel)
	})
	doc.Find("img[alt]").Each(func(_ int, sel *goquery.Selection) {
		alt, _ := sel.Attr("alt")
		collect(alt, "alt", sel.Parent())
	})
	doc.Find("[class*='item-name']").Each(func(_ int, sel *goquery.Selection) {
		for _, node := range sel.Nodes {
			collect(htmlutil.GetText(node), "text", sel)
		}
	})

	return items
}

func cleanItemName(name string) string {
	name = maxStackRegex.ReplaceAllString(name, "")
	name = leadingCountRegex.ReplaceAllString(name, "")
	return htmlutil.CleanText(name)
}

func plausibleItemName(name string) bool {
	if len([]rune(name)) <= 3 {
		return false
	}
	lower := strings.ToLower(name)
	for _, marker := range noiseMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}

// rarityFromSelection walks the element and its ancestors looking for
// a rarity-bearing CSS class.
func rarityFromSelection(sel *goquery.Selection) string {
	for depth := 0; depth < 4 && sel.Length() > 0; depth++ {
		class, _ := sel.Attr("class")
		class = strings.ToLower(class)
		for _, rc := range rarityClasses {
			if strings.Contains(class, rc.class) {
				return rc.rarity
			}
		}
		sel = sel.Parent()
	}
	return ""
}
