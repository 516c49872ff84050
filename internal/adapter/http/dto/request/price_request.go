package request

// PriceUpdateRequest sets the catalog price of one material.
type PriceUpdateRequest struct {
	Price  *float64 `json:"price" binding:"required" example:"125000"`
	Source string   `json:"source" example:"corralon"`
}
