package entities

import "github.com/shopspring/decimal"

// Category groups material items into the four blocks of an estimate.
// The order of the blocks in a result is always Foundation, Walls, Openings, Roof.

type Category string

const (
	CategoryFoundation Category = "platea"
	CategoryWalls      Category = "muros"
	CategoryOpenings   Category = "aberturas"
	CategoryRoof       Category = "techo"
)

// Categories lists the blocks in result order.
var Categories = []Category{
	CategoryFoundation,
	CategoryWalls,
	CategoryOpenings,
	CategoryRoof,
}

var categoryLabels = map[Category]string{
	CategoryFoundation: "Platea / Fundación",
	CategoryWalls:      "Muros",
	CategoryOpenings:   "Aberturas",
	CategoryRoof:       "Techo",
}

func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Inputs are the geometric inputs of one calculation run.
//
// Units:
//   - SlabArea, WindowArea: m²
//   - WallHeight, WallPerimeter: m
type Inputs struct {
	SlabArea      float64 `json:"slab_area"`
	WallHeight    float64 `json:"wall_height"`
	WallPerimeter float64 `json:"wall_perimeter"`
	WindowArea    float64 `json:"window_area"`
	DoorCount     int     `json:"door_count"`
}

// PriceOverrides maps a material id to a unit price chosen by the caller.
// Only explicitly overridden materials are present.
type PriceOverrides map[string]float64

// Merge returns a new mapping with the entries of o overlaid by next.
// Neither receiver nor argument is modified.
func (o PriceOverrides) Merge(next PriceOverrides) PriceOverrides {
	out := make(PriceOverrides, len(o)+len(next))
	for k, v := range o {
		out[k] = v
	}
	for k, v := range next {
		out[k] = v
	}
	return out
}

// MaterialItem is one line of a bill of materials.
// Quantity is already rounded up at two decimals.
type MaterialItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Unit      string   `json:"unit"`
	Quantity  float64  `json:"quantity"`
	UnitPrice float64  `json:"unit_price"`
	Category  Category `json:"category"`
}

func (m MaterialItem) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(m.Quantity).Mul(decimal.NewFromFloat(m.UnitPrice))
}

// CalculationResult is the ordered bill of materials for one
// (inputs, system, overrides) triple.
type CalculationResult struct {
	System ConstructionSystem `json:"system"`
	Inputs Inputs             `json:"inputs"`
	Items  []MaterialItem     `json:"items"`
}

// Total is the sum of quantity × unit price over all items.
func (r CalculationResult) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range r.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// SubtotalsByCategory returns the cost of each block, in block order.
func (r CalculationResult) SubtotalsByCategory() map[Category]decimal.Decimal {
	out := make(map[Category]decimal.Decimal, len(Categories))
	for _, c := range Categories {
		out[c] = decimal.Zero
	}
	for _, it := range r.Items {
		out[it.Category] = out[it.Category].Add(it.Subtotal())
	}
	return out
}
