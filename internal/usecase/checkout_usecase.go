package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"obra_gris/internal/domain/entities"
	"obra_gris/internal/usecase/interfaces"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCheckout             = errors.New("bill of materials has no billable items")
	ErrInvalidPayerEmail         = errors.New("invalid payer email")
	ErrCheckoutGatewayBadRequest = errors.New("checkout gateway bad request")
	ErrCheckoutUnauthorized      = errors.New("checkout gateway unauthorized")
	ErrCheckoutNotConfigured     = errors.New("checkout gateway not configured")
)

// ICheckoutUseCase turns a bill of materials into a Mercado Pago checkout
// link so the buyer can pay a supplier for the whole list.

type ICheckoutUseCase interface {
	CreateCheckout(ctx context.Context, system entities.ConstructionSystem, inputs entities.Inputs, overrides entities.PriceOverrides, payerEmail string) (entities.Checkout, error)
}

type CheckoutUseCase struct {
	estimates IEstimateUseCase
	gateway   interfaces.ICheckoutGateway
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(estimates IEstimateUseCase, gateway interfaces.ICheckoutGateway) *CheckoutUseCase {
	return &CheckoutUseCase{estimates: estimates, gateway: gateway}
}

func (u *CheckoutUseCase) CreateCheckout(ctx context.Context, system entities.ConstructionSystem, inputs entities.Inputs, overrides entities.PriceOverrides, payerEmail string) (entities.Checkout, error) {
	payerEmail = strings.TrimSpace(payerEmail)
	if payerEmail != "" {
		if _, err := mail.ParseAddress(payerEmail); err != nil {
			return entities.Checkout{}, ErrInvalidPayerEmail
		}
	}

	res, err := u.estimates.Calculate(ctx, system, inputs, overrides)
	if err != nil {
		return entities.Checkout{}, err
	}

	items := CheckoutItems(res)
	if len(items) == 0 {
		log.Printf("[checkout][usecase] nothing to bill system=%s", system)
		return entities.Checkout{}, ErrEmptyCheckout
	}
	if u.gateway == nil {
		log.Printf("[checkout][usecase] gateway not configured")
		return entities.Checkout{}, ErrCheckoutNotConfigured
	}

	reference := uuid.NewString()
	log.Printf("[checkout][usecase] create start reference=%s system=%s items=%d", reference, system, len(items))
	checkout, err := u.gateway.CreatePreference(ctx, reference, items, payerEmail)
	if err != nil {
		log.Printf("[checkout][usecase] gateway failed reference=%s err=%v", reference, err)
		if isGatewayUnauthorized(err) {
			return entities.Checkout{}, ErrCheckoutUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.Checkout{}, ErrCheckoutGatewayBadRequest
		}
		return entities.Checkout{}, err
	}

	checkout.Reference = reference
	checkout.Total = res.Total().Round(2).InexactFloat64()
	log.Printf("[checkout][usecase] create success reference=%s preference_id=%s total=%.2f", reference, checkout.PreferenceID, checkout.Total)
	return checkout, nil
}

// CheckoutItems maps every item with a positive cost to one checkout line.
// Quantities are fractional (7.20 m³) while the provider takes whole units,
// so each line is sent as quantity 1 priced at the line subtotal.
func CheckoutItems(res entities.CalculationResult) []entities.CheckoutItem {
	out := make([]entities.CheckoutItem, 0, len(res.Items))
	for _, it := range res.Items {
		subtotal := it.Subtotal().Round(2)
		if !subtotal.IsPositive() {
			continue
		}
		out = append(out, entities.CheckoutItem{
			ID:        it.ID,
			Title:     fmt.Sprintf("%s - %s %s", it.Name, decimal.NewFromFloat(it.Quantity).StringFixed(2), it.Unit),
			Category:  string(it.Category),
			Quantity:  1,
			UnitPrice: subtotal.InexactFloat64(),
		})
	}
	return out
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
