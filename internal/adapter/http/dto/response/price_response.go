package response

import (
	"time"

	"obra_gris/internal/domain/entities"
)

type EffectivePriceResponse struct {
	MaterialID   string   `json:"material_id"`
	Name         string   `json:"name"`
	Unit         string   `json:"unit"`
	DefaultPrice float64  `json:"default_price"`
	CatalogPrice *float64 `json:"catalog_price,omitempty"`
	Price        float64  `json:"price"`
}

func FromEffectivePrice(p entities.EffectivePrice) EffectivePriceResponse {
	return EffectivePriceResponse{
		MaterialID:   p.MaterialID,
		Name:         p.Name,
		Unit:         p.Unit,
		DefaultPrice: p.DefaultPrice,
		CatalogPrice: p.CatalogPrice,
		Price:        p.Price,
	}
}

func FromEffectivePrices(prices []entities.EffectivePrice) []EffectivePriceResponse {
	out := make([]EffectivePriceResponse, 0, len(prices))
	for _, p := range prices {
		out = append(out, FromEffectivePrice(p))
	}
	return out
}

type CatalogPriceResponse struct {
	MaterialID string    `json:"material_id"`
	Price      float64   `json:"price"`
	Source     string    `json:"source"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromCatalogPrice(p entities.CatalogPrice) CatalogPriceResponse {
	return CatalogPriceResponse{
		MaterialID: p.MaterialID,
		Price:      p.Price,
		Source:     p.Source,
		UpdatedAt:  p.UpdatedAt,
	}
}
