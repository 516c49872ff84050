package usecase

import (
	"context"
	"log"
	"obra_gris/internal/domain/entities"
	"obra_gris/internal/domain/takeoff"
	"obra_gris/internal/usecase/interfaces"
)

var (
	ErrInvalidSystem = takeoff.ErrUnknownSystem
	ErrInvalidInputs = takeoff.ErrInvalidInput
)

// IEstimateUseCase exposes the material quantity takeoff.
//
// Price precedence for every material:
//   - override sent with the request
//   - price catalog entry
//   - built-in default

type IEstimateUseCase interface {
	Calculate(ctx context.Context, system entities.ConstructionSystem, inputs entities.Inputs, overrides entities.PriceOverrides) (entities.CalculationResult, error)
	Export(ctx context.Context, system entities.ConstructionSystem, inputs entities.Inputs, overrides entities.PriceOverrides) (entities.EstimateExport, error)
}

type EstimateUseCase struct {
	catalog interfaces.IPriceCatalogRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

// NewEstimateUseCase accepts a nil catalog; calculations then use request
// overrides and defaults only.
func NewEstimateUseCase(catalog interfaces.IPriceCatalogRepository) *EstimateUseCase {
	return &EstimateUseCase{catalog: catalog}
}

func (u *EstimateUseCase) Calculate(ctx context.Context, system entities.ConstructionSystem, inputs entities.Inputs, overrides entities.PriceOverrides) (entities.CalculationResult, error) {
	if !system.Valid() {
		log.Printf("[estimate][usecase] invalid system=%q", system)
		return entities.CalculationResult{}, ErrInvalidSystem
	}

	if err := takeoff.ValidateOverrides(overrides); err != nil {
		log.Printf("[estimate][usecase] invalid overrides system=%s err=%v", system, err)
		return entities.CalculationResult{}, err
	}

	prices := u.catalogOverrides(ctx).Merge(overrides)
	res, err := takeoff.Calculate(inputs, system, prices)
	if err != nil {
		log.Printf("[estimate][usecase] calculate failed system=%s err=%v", system, err)
		return entities.CalculationResult{}, err
	}
	log.Printf("[estimate][usecase] calculate success system=%s items=%d overrides=%d total=%s",
		system, len(res.Items), len(overrides), res.Total().StringFixed(2))
	return res, nil
}

func (u *EstimateUseCase) Export(ctx context.Context, system entities.ConstructionSystem, inputs entities.Inputs, overrides entities.PriceOverrides) (entities.EstimateExport, error) {
	res, err := u.Calculate(ctx, system, inputs, overrides)
	if err != nil {
		return entities.EstimateExport{}, err
	}
	text := FormatEstimateText(res)
	return entities.EstimateExport{Text: text, WhatsAppURL: WhatsAppShareURL(text)}, nil
}

// catalogOverrides loads catalog prices. A failing catalog never blocks a
// calculation: defaults are used instead.
func (u *EstimateUseCase) catalogOverrides(ctx context.Context) entities.PriceOverrides {
	out := entities.PriceOverrides{}
	if u.catalog == nil {
		return out
	}
	prices, err := u.catalog.List(ctx)
	if err != nil {
		log.Printf("[estimate][usecase] price catalog unavailable; using defaults err=%v", err)
		return out
	}
	for _, p := range prices {
		if _, ok := takeoff.LookupMaterial(p.MaterialID); !ok || p.Price < 0 {
			continue
		}
		out[p.MaterialID] = p.Price
	}
	return out
}
