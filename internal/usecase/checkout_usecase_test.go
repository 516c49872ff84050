package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"obra_gris/internal/domain/entities"
	"obra_gris/internal/domain/takeoff"
	mock_interfaces "obra_gris/internal/usecase/interfaces/mocks"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// zeroPrices prices every material at zero except the given ones.
func zeroPrices(keep entities.PriceOverrides) entities.PriceOverrides {
	out := entities.PriceOverrides{}
	for _, m := range takeoff.Materials() {
		out[m.ID] = 0
	}
	return out.Merge(keep)
}

func TestCheckoutItems(t *testing.T) {
	res, err := takeoff.Calculate(sampleInputs, entities.SystemMasonry, zeroPrices(entities.PriceOverrides{
		takeoff.IDConcreteH17:  100000,
		takeoff.IDMasonryBrick: 480.5,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := CheckoutItems(res)
	if len(items) != 2 {
		t.Fatalf("expected 2 billable items, got %d", len(items))
	}
	if items[0].ID != takeoff.IDConcreteH17 || items[0].Quantity != 1 || items[0].UnitPrice != 720000 {
		t.Fatalf("unexpected concrete line: %+v", items[0])
	}
	if items[0].Title != "Hormigón elaborado H17 - 7.20 m³" || items[0].Category != "platea" {
		t.Fatalf("unexpected concrete title: %+v", items[0])
	}
	if items[1].UnitPrice != 685193 {
		t.Fatalf("unexpected brick subtotal: %v", items[1].UnitPrice)
	}
}

func TestCheckoutUseCase_CreateCheckout(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		uc := NewCheckoutUseCase(NewEstimateUseCase(nil), nil)
		_, err := uc.CreateCheckout(context.Background(), entities.SystemMasonry, sampleInputs, nil, "not-an-email")
		if !errors.Is(err, ErrInvalidPayerEmail) {
			t.Fatalf("expected ErrInvalidPayerEmail, got %v", err)
		}
	})

	t.Run("invalid system", func(t *testing.T) {
		uc := NewCheckoutUseCase(NewEstimateUseCase(nil), nil)
		_, err := uc.CreateCheckout(context.Background(), "x", sampleInputs, nil, "")
		if !errors.Is(err, ErrInvalidSystem) {
			t.Fatalf("expected ErrInvalidSystem, got %v", err)
		}
	})

	t.Run("empty bill", func(t *testing.T) {
		uc := NewCheckoutUseCase(NewEstimateUseCase(nil), nil)
		_, err := uc.CreateCheckout(context.Background(), entities.SystemMasonry, sampleInputs, zeroPrices(nil), "")
		if !errors.Is(err, ErrEmptyCheckout) {
			t.Fatalf("expected ErrEmptyCheckout, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewCheckoutUseCase(NewEstimateUseCase(nil), nil)
		_, err := uc.CreateCheckout(context.Background(), entities.SystemMasonry, sampleInputs, nil, "")
		if !errors.Is(err, ErrCheckoutNotConfigured) {
			t.Fatalf("expected ErrCheckoutNotConfigured, got %v", err)
		}
	})

	t.Run("gateway errors are mapped", func(t *testing.T) {
		cases := []struct {
			err  error
			want error
		}{
			{errors.New(`{"status":401,"error":"unauthorized"}`), ErrCheckoutUnauthorized},
			{errors.New(`{"status":400,"error":"bad_request"}`), ErrCheckoutGatewayBadRequest},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
			uc := NewCheckoutUseCase(NewEstimateUseCase(nil), gateway)
			gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(entities.Checkout{}, tc.err)

			_, err := uc.CreateCheckout(context.Background(), entities.SystemMasonry, sampleInputs, nil, "")
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)
		uc := NewCheckoutUseCase(NewEstimateUseCase(nil), gateway)

		overrides := zeroPrices(entities.PriceOverrides{takeoff.IDConcreteH17: 100000})
		gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any(), gomock.Any(), "obra@example.com").DoAndReturn(
			func(_ context.Context, ref string, items []entities.CheckoutItem, _ string) (entities.Checkout, error) {
				if _, err := uuid.Parse(ref); err != nil {
					t.Fatalf("expected uuid reference, got %q", ref)
				}
				if len(items) != 1 || items[0].UnitPrice != 720000 {
					t.Fatalf("unexpected items: %+v", items)
				}
				return entities.Checkout{PreferenceID: "pref-1", InitPoint: "https://mp.example/init"}, nil
			},
		)

		res, err := uc.CreateCheckout(context.Background(), entities.SystemMasonry, sampleInputs, overrides, " obra@example.com ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PreferenceID != "pref-1" || res.Total != 720000 || strings.TrimSpace(res.Reference) == "" {
			t.Fatalf("unexpected checkout: %+v", res)
		}
	})
}
