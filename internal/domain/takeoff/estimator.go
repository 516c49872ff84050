// Package takeoff computes the gray-structure bill of materials.
//
// Estimate is a pure function of its inputs: it allocates a fresh slice on
// every call, keeps no state and performs no I/O, so it is safe to call
// concurrently and as often as prices or inputs change.
package takeoff

import (
	"errors"
	"fmt"
	"math"
	"obra_gris/internal/domain/entities"
)

var (
	ErrUnknownSystem = errors.New("unknown construction system")
	ErrInvalidInput  = errors.New("invalid estimate input")
)

// doorArea is the wall area (m²) taken by one exterior door.
const doorArea = 2.0

type geometry struct {
	in          entities.Inputs
	netWallArea float64
}

func newGeometry(in entities.Inputs) geometry {
	gross := in.WallPerimeter * in.WallHeight
	net := gross - in.WindowArea - float64(in.DoorCount)*doorArea
	return geometry{in: in, netWallArea: math.Max(0, net)}
}

func (g geometry) studCount() float64 {
	return ceilCount(g.in.WallPerimeter / studSpacing)
}

// NetWallArea is perimeter × height minus window and door openings,
// clamped at zero.
func NetWallArea(in entities.Inputs) float64 {
	return newGeometry(in).netWallArea
}

// Validate rejects negative or non-finite inputs.
func Validate(in entities.Inputs) error {
	fields := []struct {
		name string
		v    float64
	}{
		{"slab_area", in.SlabArea},
		{"wall_height", in.WallHeight},
		{"wall_perimeter", in.WallPerimeter},
		{"window_area", in.WindowArea},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidInput, f.name)
		}
	}
	if in.DoorCount < 0 {
		return fmt.Errorf("%w: door_count must be >= 0", ErrInvalidInput)
	}
	return nil
}

// ValidateOverrides rejects negative or non-finite override prices.
func ValidateOverrides(overrides entities.PriceOverrides) error {
	for id, p := range overrides {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return fmt.Errorf("%w: price override %s must be a non-negative number", ErrInvalidInput, id)
		}
	}
	return nil
}

// Estimate returns the bill of materials for system in four blocks:
// foundation, walls, openings and roof. Items are never dropped for a zero
// quantity.
func Estimate(in entities.Inputs, system entities.ConstructionSystem, overrides entities.PriceOverrides) ([]entities.MaterialItem, error) {
	ws, ok := wallSystems[system]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSystem, system)
	}
	if err := Validate(in); err != nil {
		return nil, err
	}
	if err := ValidateOverrides(overrides); err != nil {
		return nil, err
	}

	g := newGeometry(in)
	walls := ws.walls(g)

	items := make([]entities.MaterialItem, 0, 9+len(walls))
	add := func(cat entities.Category, lines ...line) {
		for _, l := range lines {
			items = append(items, newItem(l, cat, overrides))
		}
	}

	add(entities.CategoryFoundation,
		line{IDConcreteH17, in.SlabArea * 0.12},
		line{IDSlabMesh, in.SlabArea * 1.10},
		line{IDPolyFilm, in.SlabArea * 1.10},
	)
	add(entities.CategoryWalls, walls...)
	add(entities.CategoryOpenings,
		line{IDWindows, in.WindowArea},
		line{IDExteriorDoor, float64(in.DoorCount)},
	)
	add(entities.CategoryRoof,
		ws.roofStructure(g),
		line{IDRoofSheeting, in.SlabArea * 1.15},
		line{IDRoofInsul, in.SlabArea * 1.15},
		line{IDRoofScrews, in.SlabArea * 6},
	)

	return items, nil
}

// Calculate runs Estimate and wraps the items into a CalculationResult.
func Calculate(in entities.Inputs, system entities.ConstructionSystem, overrides entities.PriceOverrides) (entities.CalculationResult, error) {
	items, err := Estimate(in, system, overrides)
	if err != nil {
		return entities.CalculationResult{}, err
	}
	return entities.CalculationResult{System: system, Inputs: in, Items: items}, nil
}

func newItem(l line, cat entities.Category, overrides entities.PriceOverrides) entities.MaterialItem {
	m := materials[l.id]
	return entities.MaterialItem{
		ID:        l.id,
		Name:      m.Name,
		Unit:      m.Unit,
		Quantity:  RoundUp(l.qty),
		UnitPrice: ResolvePrice(l.id, overrides),
		Category:  cat,
	}
}
