package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"obra_gris/internal/domain/entities"
	"obra_gris/internal/domain/takeoff"
	mock_interfaces "obra_gris/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAdvisorUseCase_SuggestPrices(t *testing.T) {
	t.Run("empty location", func(t *testing.T) {
		uc := NewAdvisorUseCase(NewEstimateUseCase(nil), nil, nil, nil)
		_, err := uc.SuggestPrices(context.Background(), entities.SystemMasonry, sampleInputs, "  ")
		if !errors.Is(err, ErrInvalidLocation) {
			t.Fatalf("expected ErrInvalidLocation, got %v", err)
		}
	})

	t.Run("invalid system", func(t *testing.T) {
		uc := NewAdvisorUseCase(NewEstimateUseCase(nil), nil, nil, nil)
		_, err := uc.SuggestPrices(context.Background(), "adobe", sampleInputs, "Córdoba")
		if !errors.Is(err, ErrInvalidSystem) {
			t.Fatalf("expected ErrInvalidSystem, got %v", err)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		uc := NewAdvisorUseCase(NewEstimateUseCase(nil), nil, nil, nil)
		_, err := uc.SuggestPrices(context.Background(), entities.SystemMasonry, sampleInputs, "Córdoba")
		if !errors.Is(err, ErrAdvisorNotConfigured) {
			t.Fatalf("expected ErrAdvisorNotConfigured, got %v", err)
		}
	})

	t.Run("oracle error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		oracle := mock_interfaces.NewMockIPriceOracle(ctrl)
		uc := NewAdvisorUseCase(NewEstimateUseCase(nil), oracle, nil, nil)
		oracle.EXPECT().SuggestPrices(gomock.Any(), gomock.Any(), "Córdoba").Return(nil, errors.New("quota"))

		_, err := uc.SuggestPrices(context.Background(), entities.SystemMasonry, sampleInputs, "Córdoba")
		if err == nil || err.Error() != "quota" {
			t.Fatalf("expected quota error, got %v", err)
		}
	})

	t.Run("filters unknown and invalid prices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		oracle := mock_interfaces.NewMockIPriceOracle(ctrl)
		uc := NewAdvisorUseCase(NewEstimateUseCase(nil), oracle, nil, nil)

		oracle.EXPECT().SuggestPrices(gomock.Any(), gomock.Any(), "Córdoba").DoAndReturn(
			func(_ context.Context, materials []entities.MaterialItem, _ string) (map[string]float64, error) {
				if len(materials) != 12 {
					t.Fatalf("expected masonry materials, got %d", len(materials))
				}
				return map[string]float64{
					takeoff.IDConcreteH17:  130000,
					takeoff.IDMasonryBrick: 510,
					takeoff.IDSIPPanel:     1,
					takeoff.IDRoofScrews:   -1,
					takeoff.IDPolyFilm:     math.NaN(),
				}, nil
			},
		)

		got, err := uc.SuggestPrices(context.Background(), entities.SystemMasonry, sampleInputs, " Córdoba ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := map[string]float64{takeoff.IDConcreteH17: 130000, takeoff.IDMasonryBrick: 510}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("unexpected prices: %v", got)
		}
	})
}

func TestAdvisorUseCase_FindSuppliers(t *testing.T) {
	t.Run("invalid system", func(t *testing.T) {
		uc := NewAdvisorUseCase(NewEstimateUseCase(nil), nil, nil, nil)
		_, err := uc.FindSuppliers(context.Background(), "x", "Rosario")
		if !errors.Is(err, ErrInvalidSystem) {
			t.Fatalf("expected ErrInvalidSystem, got %v", err)
		}
	})

	t.Run("invalid location", func(t *testing.T) {
		uc := NewAdvisorUseCase(NewEstimateUseCase(nil), nil, nil, nil)
		_, err := uc.FindSuppliers(context.Background(), entities.SystemSIP, "")
		if !errors.Is(err, ErrInvalidLocation) {
			t.Fatalf("expected ErrInvalidLocation, got %v", err)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		uc := NewAdvisorUseCase(NewEstimateUseCase(nil), nil, nil, nil)
		_, err := uc.FindSuppliers(context.Background(), entities.SystemSIP, "Rosario")
		if !errors.Is(err, ErrAdvisorNotConfigured) {
			t.Fatalf("expected ErrAdvisorNotConfigured, got %v", err)
		}
	})

	t.Run("success dedupes citations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		finder := mock_interfaces.NewMockISupplierFinder(ctrl)
		uc := NewAdvisorUseCase(NewEstimateUseCase(nil), nil, finder, nil)

		finder.EXPECT().FindSuppliers(gomock.Any(), entities.SystemSIP, "Rosario").Return(entities.SupplierReport{
			Text: "Proveedores en Rosario",
			Citations: []entities.Citation{
				{Title: "A", URI: "https://a.example"},
				{Title: "A again", URI: "https://a.example"},
				{Title: "", URI: "https://b.example"},
				{Title: "empty", URI: " "},
			},
		}, nil)

		rep, err := uc.FindSuppliers(context.Background(), entities.SystemSIP, " Rosario ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rep.System != entities.SystemSIP || rep.Location != "Rosario" {
			t.Fatalf("unexpected report: %+v", rep)
		}
		want := []entities.Citation{{Title: "A", URI: "https://a.example"}, {Title: "https://b.example", URI: "https://b.example"}}
		if !reflect.DeepEqual(rep.Citations, want) {
			t.Fatalf("unexpected citations: %+v", rep.Citations)
		}
	})
}

func TestAdvisorUseCase_Chat(t *testing.T) {
	t.Run("empty message", func(t *testing.T) {
		uc := NewAdvisorUseCase(NewEstimateUseCase(nil), nil, nil, nil)
		_, err := uc.Chat(context.Background(), " ", nil, entities.SystemMasonry, sampleInputs, nil)
		if !errors.Is(err, ErrEmptyMessage) {
			t.Fatalf("expected ErrEmptyMessage, got %v", err)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		uc := NewAdvisorUseCase(NewEstimateUseCase(nil), nil, nil, nil)
		_, err := uc.Chat(context.Background(), "hola", nil, entities.SystemMasonry, sampleInputs, nil)
		if !errors.Is(err, ErrAdvisorNotConfigured) {
			t.Fatalf("expected ErrAdvisorNotConfigured, got %v", err)
		}
	})

	t.Run("passes snapshot and trimmed history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assistant := mock_interfaces.NewMockIAssistant(ctrl)
		uc := NewAdvisorUseCase(NewEstimateUseCase(nil), nil, nil, assistant)

		var history []entities.ChatMessage
		for i := 0; i < 30; i++ {
			history = append(history, entities.ChatMessage{Role: entities.ChatRoleUser, Text: fmt.Sprintf("m%d", i)})
		}
		history = append(history, entities.ChatMessage{Role: "system", Text: "x"}, entities.ChatMessage{Role: entities.ChatRoleAssistant, Text: "  "})

		assistant.EXPECT().Ask(gomock.Any(), "¿Cuántos ladrillos?", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, h []entities.ChatMessage, s entities.EstimateSnapshot) (string, error) {
				if len(h) != maxChatHistory {
					t.Fatalf("expected %d history messages, got %d", maxChatHistory, len(h))
				}
				if last := h[len(h)-1]; last.Role != entities.ChatRoleUser || last.Text != "x" {
					t.Fatalf("unexpected last message: %+v", last)
				}
				if s.System != entities.SystemMasonry || len(s.Materials) != 12 {
					t.Fatalf("unexpected snapshot: %+v", s)
				}
				if findItem(t, s.Materials, takeoff.IDConcreteH17).UnitPrice != 1 {
					t.Fatalf("expected overrides applied to snapshot")
				}
				return "  Unos 1426 ladrillos.  ", nil
			},
		)

		answer, err := uc.Chat(context.Background(), "¿Cuántos ladrillos?", history, entities.SystemMasonry, sampleInputs, entities.PriceOverrides{takeoff.IDConcreteH17: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if answer != "Unos 1426 ladrillos." {
			t.Fatalf("unexpected answer: %q", answer)
		}
	})
	t.Run("snapshot uses catalog prices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPriceCatalogRepository(ctrl)
		repo.EXPECT().List(gomock.Any()).Return([]entities.CatalogPrice{
			{MaterialID: takeoff.IDConcreteH17, Price: 1, Source: "manual"},
		}, nil)
		assistant := mock_interfaces.NewMockIAssistant(ctrl)
		uc := NewAdvisorUseCase(NewEstimateUseCase(repo), nil, nil, assistant)

		assistant.EXPECT().Ask(gomock.Any(), "¿Cuánto sale el hormigón?", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ []entities.ChatMessage, s entities.EstimateSnapshot) (string, error) {
				if got := findItem(t, s.Materials, takeoff.IDConcreteH17).UnitPrice; got != 1 {
					t.Fatalf("expected catalog price 1 in snapshot, got %v", got)
				}
				return "ok", nil
			},
		)

		if _, err := uc.Chat(context.Background(), "¿Cuánto sale el hormigón?", nil, entities.SystemMasonry, sampleInputs, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
