package payments

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"obra_gris/internal/domain/entities"
	"obra_gris/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const defaultCurrency = "ARS"

// MercadoPagoGateway turns a material list into a Checkout Pro preference.
type MercadoPagoGateway struct {
	client   preference.Client
	currency string
	mockMode bool
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	currency := getenvDefault("CHECKOUT_CURRENCY", defaultCurrency)

	if isPaymentGatewayMockEnabled() {
		log.Printf("[checkout][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, currency: currency}, nil
	}

	if accessToken == "" {
		log.Printf("[checkout][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[checkout][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[checkout][gateway] Mercado Pago client initialized currency=%s", currency)

	return &MercadoPagoGateway{client: preference.NewClient(cfg), currency: currency}, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, reference string, items []entities.CheckoutItem, payerEmail string) (entities.Checkout, error) {
	if g != nil && g.mockMode {
		id := "mock-" + reference
		log.Printf("[checkout][gateway] mock preference reference=%s items=%d", reference, len(items))
		return entities.Checkout{
			PreferenceID:     id,
			InitPoint:        "https://www.mercadopago.com.ar/checkout/v1/redirect?pref_id=" + id,
			SandboxInitPoint: "https://sandbox.mercadopago.com.ar/checkout/v1/redirect?pref_id=" + id,
		}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[checkout][gateway] gateway not configured")
		return entities.Checkout{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[checkout][gateway] create start reference=%s items=%d", reference, len(items))

	resp, err := g.client.Create(ctx, g.buildRequest(reference, items, payerEmail))
	if err != nil {
		log.Printf("[checkout][gateway] sdk create failed reference=%s err=%v", reference, err)
		return entities.Checkout{}, err
	}
	log.Printf("[checkout][gateway] create success reference=%s preference_id=%s", reference, resp.ID)

	return entities.Checkout{
		PreferenceID:     resp.ID,
		InitPoint:        resp.InitPoint,
		SandboxInitPoint: resp.SandboxInitPoint,
	}, nil
}

func (g *MercadoPagoGateway) buildRequest(reference string, items []entities.CheckoutItem, payerEmail string) preference.Request {
	req := preference.Request{
		ExternalReference: reference,
		Items:             make([]preference.ItemRequest, 0, len(items)),
	}
	for _, it := range items {
		req.Items = append(req.Items, preference.ItemRequest{
			ID:         it.ID,
			Title:      it.Title,
			CategoryID: it.Category,
			CurrencyID: g.currency,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
		})
	}
	if payerEmail != "" {
		req.Payer = &preference.PayerRequest{Email: payerEmail}
	}
	return req
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
