package entities

// CheckoutItem is one line sent to the payment provider.
type CheckoutItem struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Checkout is a Mercado Pago checkout preference created for a bill of
// materials.
//
// Reference is our own id (sent as external_reference) so provider
// notifications can be reconciled with the estimate that produced them.
type Checkout struct {
	PreferenceID     string  `json:"preference_id"`
	Reference        string  `json:"reference"`
	InitPoint        string  `json:"init_point"`
	SandboxInitPoint string  `json:"sandbox_init_point"`
	Total            float64 `json:"total"`
}
