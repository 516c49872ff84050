package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	response "obra_gris/internal/adapter/http/dto/response"
	"obra_gris/internal/adapter/http/handlers/mocks"
	"obra_gris/internal/domain/entities"
	"obra_gris/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCheckoutHandler_CreateCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/checkout", h.CreateCheckout)

		w := performJSON(r, http.MethodPost, "/v1/checkout", "[")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	errorCases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid email", usecase.ErrInvalidPayerEmail, http.StatusBadRequest},
		{"empty checkout", usecase.ErrEmptyCheckout, http.StatusUnprocessableEntity},
		{"unauthorized", usecase.ErrCheckoutUnauthorized, http.StatusUnauthorized},
		{"gateway bad request", usecase.ErrCheckoutGatewayBadRequest, http.StatusBadRequest},
		{"not configured", usecase.ErrCheckoutNotConfigured, http.StatusServiceUnavailable},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockICheckoutUseCase(ctrl)
			h := NewCheckoutHandler(uc)

			r := gin.New()
			r.POST("/v1/checkout", h.CreateCheckout)

			uc.EXPECT().CreateCheckout(gomock.Any(), entities.SystemMasonry, gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Checkout{}, tc.err)

			w := performJSON(r, http.MethodPost, "/v1/checkout", `{"system":"mamposteria"}`)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/checkout", h.CreateCheckout)

		uc.EXPECT().CreateCheckout(gomock.Any(), entities.SystemMasonry, sampleInputs, gomock.Any(), "obra@example.com").Return(entities.Checkout{
			PreferenceID: "pref-1",
			Reference:    "ref-1",
			InitPoint:    "https://mp.example/init",
			Total:        3572,
		}, nil)

		body := `{"system":"mamposteria","inputs":{"slab_area":60,"wall_height":2.6,"wall_perimeter":40,"window_area":8,"door_count":2},"payer_email":"obra@example.com"}`
		w := performJSON(r, http.MethodPost, "/v1/checkout", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res response.CheckoutResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if res.PreferenceID != "pref-1" || res.InitPoint == "" || res.Total != 3572 {
			t.Fatalf("unexpected body: %+v", res)
		}
	})
}
