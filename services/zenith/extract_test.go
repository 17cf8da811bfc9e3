package zenith

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const buildPage = `
<html><body>
  <div class="equipment-slot rarity-legendaire">
    <div class="item" title="Casque du Bouffon"></div>
  </div>
  <div class="equipment-slot">
    <img alt="Amulette du Craqueleur" src="a.png"/>
  </div>
  <div class="equipment-slot rarity-rare">
    <img alt="2x Anneau de Bouze" src="b.png"/>
  </div>
  <div class="item" title="Cape [Max : 3]  du Tofu"></div>
  <div class="item" title="Abandon"></div>
  <div class="item" title="Accumulation [Max : 10]"></div>
  <div class="item" title="Toc"></div>
  <div class="item" title="casque du bouffon"></div>
  <span class="item-name rarity-epique">Bottes <b>du Tofu</b></span>
</body></html>`

func TestExtractEquipment(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buildPage))
	require.NoError(t, err)

	items := ExtractEquipment(doc)
	byName := make(map[string]EquipmentItem)
	for _, item := range items {
		byName[item.Name] = item
	}

	require.Len(t, items, 5)
	require.Equal(t, "legendaire", byName["Casque du Bouffon"].Rarity)
	require.Equal(t, "", byName["Amulette du Craqueleur"].Rarity)
	require.Equal(t, "rare", byName["Anneau de Bouze"].Rarity)
	require.Contains(t, byName, "Cape du Tofu")
	require.Equal(t, "epique", byName["Bottes du Tofu"].Rarity)
	require.Equal(t, "text", byName["Bottes du Tofu"].Source)
}

func TestCleanItemName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2x Anneau de Bouze", "Anneau de Bouze"},
		{"Cape [Max : 3]  du Tofu", "Cape du Tofu"},
		{"  Heaume   Creux ", "Heaume Creux"},
		{"3 Potions", "Potions"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, cleanItemName(c.in), c.in)
	}
}

func TestExtractBuildID(t *testing.T) {
	id, err := ExtractBuildID("https://builder.example.com/fr/builder/v3dhe")
	require.NoError(t, err)
	require.Equal(t, "v3dhe", id)

	_, err = ExtractBuildID("https://builder.example.com/")
	require.Error(t, err)
}
