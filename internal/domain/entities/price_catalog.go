package entities

import "time"

// CatalogPrice is a reference unit price kept in the price catalog.
//
// Storage model (DynamoDB):
//   - PK: material_id
//
// Catalog prices feed the override mapping with the lowest precedence: an
// override sent with a calculation request always wins.
type CatalogPrice struct {
	MaterialID string    `json:"material_id"`
	Price      float64   `json:"price"`
	Source     string    `json:"source"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EffectivePrice describes how the unit price of one material is resolved.
type EffectivePrice struct {
	MaterialID   string   `json:"material_id"`
	Name         string   `json:"name"`
	Unit         string   `json:"unit"`
	DefaultPrice float64  `json:"default_price"`
	CatalogPrice *float64 `json:"catalog_price,omitempty"`
	Price        float64  `json:"price"`
}
