// Package prices holds the static per-city material price table for the
// Zambian market. Amounts are ZMW; bricks are priced per piece, cement per
// 50 kg bag, the rest per m³.
package prices

import (
	"fmt"
	"sort"

	"github.com/zedbuild/buildcalc/internal/common"
)

// Currency is the currency code of the static table.
const Currency = "ZMW"

// CityPrices is the material price set of one city.
type CityPrices struct {
	Cement    float64
	Sand      float64
	Aggregate float64
	Brick     float64
	Mortar    float64
}

// Materials maps material names to their price in this city.
func (c CityPrices) Materials() map[string]float64 {
	return map[string]float64{
		"cement":    c.Cement,
		"sand":      c.Sand,
		"aggregate": c.Aggregate,
		"brick":     c.Brick,
		"mortar":    c.Mortar,
	}
}

var materialUnits = map[string]string{
	"cement":    "bag",
	"sand":      "m³",
	"aggregate": "m³",
	"brick":     "piece",
	"mortar":    "m³",
}

// MaterialUnit returns the pricing unit of a material, or "" if unknown.
func MaterialUnit(material string) string {
	return materialUnits[material]
}

var cityTable = map[string]CityPrices{
	"Lusaka":      {Cement: 120, Sand: 350, Aggregate: 400, Brick: 1.5, Mortar: 800},
	"Kitwe":       {Cement: 125, Sand: 320, Aggregate: 380, Brick: 1.4, Mortar: 750},
	"Ndola":       {Cement: 122, Sand: 330, Aggregate: 390, Brick: 1.45, Mortar: 760},
	"Kabwe":       {Cement: 118, Sand: 340, Aggregate: 395, Brick: 1.5, Mortar: 780},
	"Livingstone": {Cement: 130, Sand: 370, Aggregate: 420, Brick: 1.6, Mortar: 820},
	"Solwezi":     {Cement: 135, Sand: 360, Aggregate: 410, Brick: 1.55, Mortar: 800},
	"Chipata":     {Cement: 128, Sand: 340, Aggregate: 400, Brick: 1.5, Mortar: 790},
	"Chingola":    {Cement: 124, Sand: 325, Aggregate: 385, Brick: 1.45, Mortar: 755},
	"Mufulira":    {Cement: 123, Sand: 328, Aggregate: 388, Brick: 1.43, Mortar: 758},
	"Kasama":      {Cement: 132, Sand: 355, Aggregate: 405, Brick: 1.52, Mortar: 795},
}

// ForCity returns the price set of a city, or common.ErrNotFound.
func ForCity(city string) (CityPrices, error) {
	p, ok := cityTable[city]
	if !ok {
		return CityPrices{}, fmt.Errorf("%w: no prices for city %q", common.ErrNotFound, city)
	}
	return p, nil
}

// Cities lists the available cities in sorted order.
func Cities() []string {
	names := make([]string, 0, len(cityTable))
	for name := range cityTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
