package interfaces

import (
	"context"
	"obra_gris/internal/domain/entities"
)

// ICheckoutGateway abstracts external checkout providers (e.g. Mercado Pago).
//
// reference is sent as external_reference so provider notifications can be
// reconciled with the bill of materials.
type ICheckoutGateway interface {
	CreatePreference(ctx context.Context, reference string, items []entities.CheckoutItem, payerEmail string) (entities.Checkout, error)
}
