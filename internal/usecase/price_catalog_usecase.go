package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"obra_gris/internal/domain/entities"
	"obra_gris/internal/domain/takeoff"
	"obra_gris/internal/usecase/interfaces"
	"strings"
	"time"
)

var (
	ErrUnknownMaterial         = errors.New("unknown material id")
	ErrInvalidPrice            = errors.New("invalid price")
	ErrPriceCatalogUnavailable = errors.New("price catalog not configured")
)

const defaultCatalogSource = "manual"

// IPriceCatalogUseCase manages reference prices kept in the catalog.

type IPriceCatalogUseCase interface {
	ListEffectivePrices(ctx context.Context) ([]entities.EffectivePrice, error)
	GetEffectivePrice(ctx context.Context, materialID string) (entities.EffectivePrice, error)
	SetPrice(ctx context.Context, materialID string, price float64, source string) (entities.CatalogPrice, error)
}

type PriceCatalogUseCase struct {
	repo interfaces.IPriceCatalogRepository
}

var _ IPriceCatalogUseCase = (*PriceCatalogUseCase)(nil)

func NewPriceCatalogUseCase(repo interfaces.IPriceCatalogRepository) *PriceCatalogUseCase {
	return &PriceCatalogUseCase{repo: repo}
}

// ListEffectivePrices returns every known material with the price the
// estimator would apply when the request carries no override.
func (u *PriceCatalogUseCase) ListEffectivePrices(ctx context.Context) ([]entities.EffectivePrice, error) {
	if u.repo == nil {
		return nil, ErrPriceCatalogUnavailable
	}
	stored, err := u.repo.List(ctx)
	if err != nil {
		log.Printf("[catalog][usecase] list failed err=%v", err)
		return nil, err
	}

	byID := make(map[string]float64, len(stored))
	for _, p := range stored {
		byID[p.MaterialID] = p.Price
	}

	all := takeoff.Materials()
	out := make([]entities.EffectivePrice, 0, len(all))
	for _, m := range all {
		p, ok := byID[m.ID]
		out = append(out, effectivePrice(m, p, ok))
	}
	return out, nil
}

// GetEffectivePrice resolves a single material through a point read of
// its catalog row.
func (u *PriceCatalogUseCase) GetEffectivePrice(ctx context.Context, materialID string) (entities.EffectivePrice, error) {
	materialID = strings.TrimSpace(materialID)
	m, ok := takeoff.LookupMaterial(materialID)
	if !ok {
		return entities.EffectivePrice{}, ErrUnknownMaterial
	}
	if u.repo == nil {
		return entities.EffectivePrice{}, ErrPriceCatalogUnavailable
	}

	stored, err := u.repo.GetByID(ctx, materialID)
	if err != nil {
		log.Printf("[catalog][usecase] get failed material_id=%s err=%v", materialID, err)
		return entities.EffectivePrice{}, err
	}
	return effectivePrice(m, stored.Price, stored.MaterialID != ""), nil
}

func effectivePrice(m takeoff.Material, stored float64, found bool) entities.EffectivePrice {
	ep := entities.EffectivePrice{
		MaterialID:   m.ID,
		Name:         m.Name,
		Unit:         m.Unit,
		DefaultPrice: m.DefaultPrice,
		Price:        m.DefaultPrice,
	}
	if found && stored >= 0 {
		price := stored
		ep.CatalogPrice = &price
		ep.Price = stored
	}
	return ep
}

func (u *PriceCatalogUseCase) SetPrice(ctx context.Context, materialID string, price float64, source string) (entities.CatalogPrice, error) {
	materialID = strings.TrimSpace(materialID)
	if _, ok := takeoff.LookupMaterial(materialID); !ok {
		return entities.CatalogPrice{}, ErrUnknownMaterial
	}
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return entities.CatalogPrice{}, ErrInvalidPrice
	}
	if u.repo == nil {
		return entities.CatalogPrice{}, ErrPriceCatalogUnavailable
	}

	source = strings.TrimSpace(source)
	if source == "" {
		source = defaultCatalogSource
	}

	saved, err := u.repo.Upsert(ctx, entities.CatalogPrice{
		MaterialID: materialID,
		Price:      price,
		Source:     source,
		UpdatedAt:  time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[catalog][usecase] upsert failed material_id=%s err=%v", materialID, err)
		return entities.CatalogPrice{}, err
	}
	log.Printf("[catalog][usecase] upsert success material_id=%s price=%.2f source=%s", materialID, price, source)
	return saved, nil
}
