package response

import "obra_gris/internal/domain/entities"

type CheckoutResponse struct {
	PreferenceID     string  `json:"preference_id"`
	Reference        string  `json:"reference"`
	InitPoint        string  `json:"init_point"`
	SandboxInitPoint string  `json:"sandbox_init_point,omitempty"`
	Total            float64 `json:"total"`
}

func FromCheckout(c entities.Checkout) CheckoutResponse {
	return CheckoutResponse{
		PreferenceID:     c.PreferenceID,
		Reference:        c.Reference,
		InitPoint:        c.InitPoint,
		SandboxInitPoint: c.SandboxInitPoint,
		Total:            c.Total,
	}
}
