package usecase

import (
	"context"
	"errors"
	"testing"

	"obra_gris/internal/domain/entities"
	"obra_gris/internal/domain/takeoff"
	mock_interfaces "obra_gris/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var sampleInputs = entities.Inputs{SlabArea: 60, WallHeight: 2.6, WallPerimeter: 40, WindowArea: 8, DoorCount: 2}

func findItem(t *testing.T, items []entities.MaterialItem, id string) entities.MaterialItem {
	t.Helper()
	for _, it := range items {
		if it.ID == id {
			return it
		}
	}
	t.Fatalf("item %s not found", id)
	return entities.MaterialItem{}
}

func TestEstimateUseCase_Calculate(t *testing.T) {
	t.Run("invalid system", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.Calculate(context.Background(), "adobe", sampleInputs, nil)
		if !errors.Is(err, ErrInvalidSystem) {
			t.Fatalf("expected ErrInvalidSystem, got %v", err)
		}
	})

	t.Run("invalid inputs", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.Calculate(context.Background(), entities.SystemMasonry, entities.Inputs{SlabArea: -1}, nil)
		if !errors.Is(err, ErrInvalidInputs) {
			t.Fatalf("expected ErrInvalidInputs, got %v", err)
		}
	})

	t.Run("negative override rejected before catalog read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceCatalogRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		_, err := uc.Calculate(context.Background(), entities.SystemMasonry, sampleInputs, entities.PriceOverrides{takeoff.IDConcreteH17: -500})
		if !errors.Is(err, ErrInvalidInputs) {
			t.Fatalf("expected ErrInvalidInputs, got %v", err)
		}
	})

	t.Run("without catalog uses defaults", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		res, err := uc.Calculate(context.Background(), entities.SystemMasonry, sampleInputs, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m, _ := takeoff.LookupMaterial(takeoff.IDConcreteH17)
		if got := findItem(t, res.Items, takeoff.IDConcreteH17); got.UnitPrice != m.DefaultPrice || got.Quantity != 7.2 {
			t.Fatalf("unexpected concrete item: %+v", got)
		}
	})

	t.Run("catalog below request overrides", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceCatalogRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.CatalogPrice{
			{MaterialID: takeoff.IDConcreteH17, Price: 150000},
			{MaterialID: takeoff.IDMasonryBrick, Price: 500},
			{MaterialID: "unknown", Price: 1},
			{MaterialID: takeoff.IDRoofScrews, Price: -3},
		}, nil)

		res, err := uc.Calculate(context.Background(), entities.SystemMasonry, sampleInputs, entities.PriceOverrides{takeoff.IDConcreteH17: 200000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := findItem(t, res.Items, takeoff.IDConcreteH17).UnitPrice; got != 200000 {
			t.Fatalf("expected request override 200000, got %v", got)
		}
		if got := findItem(t, res.Items, takeoff.IDMasonryBrick).UnitPrice; got != 500 {
			t.Fatalf("expected catalog price 500, got %v", got)
		}
		m, _ := takeoff.LookupMaterial(takeoff.IDRoofScrews)
		if got := findItem(t, res.Items, takeoff.IDRoofScrews).UnitPrice; got != m.DefaultPrice {
			t.Fatalf("expected negative catalog price to be ignored, got %v", got)
		}
	})

	t.Run("catalog error falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceCatalogRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		res, err := uc.Calculate(context.Background(), entities.SystemSIP, sampleInputs, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Items) != 3+3+2+4 {
			t.Fatalf("unexpected item count %d", len(res.Items))
		}
	})
}

func TestEstimateUseCase_Export(t *testing.T) {
	t.Run("invalid system", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.Export(context.Background(), "", sampleInputs, nil)
		if !errors.Is(err, ErrInvalidSystem) {
			t.Fatalf("expected ErrInvalidSystem, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		out, err := uc.Export(context.Background(), entities.SystemMasonry, sampleInputs, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Text == "" || out.WhatsAppURL == "" {
			t.Fatalf("unexpected export: %+v", out)
		}
	})
}
