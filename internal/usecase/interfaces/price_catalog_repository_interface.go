package interfaces

import (
	"context"
	"obra_gris/internal/domain/entities"
)

// IPriceCatalogRepository abstracts DynamoDB persistence for reference prices.
//
// The catalog only feeds the price-override mapping; the estimator never
// reads it directly.

type IPriceCatalogRepository interface {
	List(ctx context.Context) ([]entities.CatalogPrice, error)
	GetByID(ctx context.Context, materialID string) (entities.CatalogPrice, error)
	Upsert(ctx context.Context, p entities.CatalogPrice) (entities.CatalogPrice, error)
}
