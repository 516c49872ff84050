package request

import (
	"strings"

	"obra_gris/internal/domain/entities"
)

// InputsRequest carries the geometry of the building. Zero is a valid value
// for every field, so none of them is marked as required.
type InputsRequest struct {
	SlabArea      float64 `json:"slab_area" example:"60"`
	WallHeight    float64 `json:"wall_height" example:"2.6"`
	WallPerimeter float64 `json:"wall_perimeter" example:"40"`
	WindowArea    float64 `json:"window_area" example:"8"`
	DoorCount     int     `json:"door_count" example:"2"`
}

func (r InputsRequest) ToInputs() entities.Inputs {
	return entities.Inputs{
		SlabArea:      r.SlabArea,
		WallHeight:    r.WallHeight,
		WallPerimeter: r.WallPerimeter,
		WindowArea:    r.WindowArea,
		DoorCount:     r.DoorCount,
	}
}

// EstimateRequest is the payload of the calculation and export routes.
//
// `price_overrides` maps a material id to a unit price; a null entry means
// "use the catalog or default price" and is ignored.
type EstimateRequest struct {
	System         string              `json:"system" binding:"required" example:"mamposteria"`
	Inputs         InputsRequest       `json:"inputs"`
	PriceOverrides map[string]*float64 `json:"price_overrides"`
}

func (r EstimateRequest) ResolveSystem() entities.ConstructionSystem {
	return entities.ConstructionSystem(strings.ToLower(strings.TrimSpace(r.System)))
}

func (r EstimateRequest) ResolveOverrides() entities.PriceOverrides {
	out := entities.PriceOverrides{}
	for id, p := range r.PriceOverrides {
		id = strings.TrimSpace(id)
		if id == "" || p == nil {
			continue
		}
		out[id] = *p
	}
	return out
}

type CheckoutRequest struct {
	EstimateRequest
	PayerEmail string `json:"payer_email" example:"obra@example.com"`
}
