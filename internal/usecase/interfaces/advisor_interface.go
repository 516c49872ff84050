package interfaces

import (
	"context"
	"obra_gris/internal/domain/entities"
)

// IPriceOracle suggests unit prices for the current material list at a
// location. The returned mapping may be partial.
type IPriceOracle interface {
	SuggestPrices(ctx context.Context, materials []entities.MaterialItem, location string) (map[string]float64, error)
}

// ISupplierFinder looks up suppliers for a construction system near a
// location and reports the web sources it used.
type ISupplierFinder interface {
	FindSuppliers(ctx context.Context, system entities.ConstructionSystem, location string) (entities.SupplierReport, error)
}

// IAssistant answers free-text questions about the current estimate.
type IAssistant interface {
	Ask(ctx context.Context, message string, history []entities.ChatMessage, snapshot entities.EstimateSnapshot) (string, error)
}
