package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"obra_gris/internal/adapter/http/handlers/mocks"
	"obra_gris/internal/domain/entities"
	"obra_gris/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPriceCatalogHandler_ListPrices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, http.StatusOK},
		{"not configured", usecase.ErrPriceCatalogUnavailable, http.StatusServiceUnavailable},
		{"repository error", errors.New("db"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPriceCatalogUseCase(ctrl)
			h := NewPriceCatalogHandler(uc)

			r := gin.New()
			r.GET("/v1/prices", h.ListPrices)

			uc.EXPECT().ListEffectivePrices(gomock.Any()).Return([]entities.EffectivePrice{{MaterialID: "conc_h17", Price: 1}}, tt.err)

			w := performJSON(r, http.MethodGet, "/v1/prices", "")
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestPriceCatalogHandler_GetPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	catalog := 1000.0
	tests := []struct {
		name  string
		price entities.EffectivePrice
		err   error
		want  int
	}{
		{"success", entities.EffectivePrice{MaterialID: "sip_panel", DefaultPrice: 98000, CatalogPrice: &catalog, Price: catalog}, nil, http.StatusOK},
		{"unknown material", entities.EffectivePrice{}, usecase.ErrUnknownMaterial, http.StatusNotFound},
		{"not configured", entities.EffectivePrice{}, usecase.ErrPriceCatalogUnavailable, http.StatusServiceUnavailable},
		{"repository error", entities.EffectivePrice{}, errors.New("db"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPriceCatalogUseCase(ctrl)
			h := NewPriceCatalogHandler(uc)

			r := gin.New()
			r.GET("/v1/prices/:material_id", h.GetPrice)

			uc.EXPECT().GetEffectivePrice(gomock.Any(), "sip_panel").Return(tt.price, tt.err)

			w := performJSON(r, http.MethodGet, "/v1/prices/sip_panel", "")
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, w.Code)
			}
			if tt.err == nil && !strings.Contains(w.Body.String(), `"catalog_price":1000`) {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}
}

func TestPriceCatalogHandler_SetPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceCatalogUseCase(ctrl)
		h := NewPriceCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/prices/:material_id", h.SetPrice)

		w := performJSON(r, http.MethodPut, "/v1/prices/conc_h17", `{"source":"x"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown material", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceCatalogUseCase(ctrl)
		h := NewPriceCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/prices/:material_id", h.SetPrice)

		uc.EXPECT().SetPrice(gomock.Any(), "nope", 10.0, "").Return(entities.CatalogPrice{}, usecase.ErrUnknownMaterial)

		w := performJSON(r, http.MethodPut, "/v1/prices/nope", `{"price":10}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceCatalogUseCase(ctrl)
		h := NewPriceCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/prices/:material_id", h.SetPrice)

		uc.EXPECT().SetPrice(gomock.Any(), "conc_h17", -5.0, "").Return(entities.CatalogPrice{}, usecase.ErrInvalidPrice)

		w := performJSON(r, http.MethodPut, "/v1/prices/conc_h17", `{"price":-5}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero price is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceCatalogUseCase(ctrl)
		h := NewPriceCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/prices/:material_id", h.SetPrice)

		uc.EXPECT().SetPrice(gomock.Any(), "conc_h17", 0.0, "corralon").Return(entities.CatalogPrice{MaterialID: "conc_h17", Source: "corralon", UpdatedAt: time.Now()}, nil)

		w := performJSON(r, http.MethodPut, "/v1/prices/conc_h17", `{"price":0,"source":"corralon"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
