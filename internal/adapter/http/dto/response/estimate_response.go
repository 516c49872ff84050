package response

import (
	"obra_gris/internal/domain/entities"
	"obra_gris/internal/domain/takeoff"

	"github.com/shopspring/decimal"
)

type EstimateItemResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
	Category  string  `json:"category"`
}

type CategorySubtotalResponse struct {
	Category string  `json:"category"`
	Label    string  `json:"label"`
	Subtotal float64 `json:"subtotal"`
}

type EstimateResponse struct {
	System      string                     `json:"system"`
	SystemLabel string                     `json:"system_label"`
	Inputs      entities.Inputs            `json:"inputs"`
	NetWallArea float64                    `json:"net_wall_area"`
	Items       []EstimateItemResponse     `json:"items"`
	Subtotals   []CategorySubtotalResponse `json:"subtotals"`
	Total       float64                    `json:"total"`
}

func FromCalculation(res entities.CalculationResult) EstimateResponse {
	items := make([]EstimateItemResponse, 0, len(res.Items))
	for _, it := range res.Items {
		items = append(items, EstimateItemResponse{
			ID:        it.ID,
			Name:      it.Name,
			Unit:      it.Unit,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  money(it.Subtotal()),
			Category:  string(it.Category),
		})
	}

	byCategory := res.SubtotalsByCategory()
	subtotals := make([]CategorySubtotalResponse, 0, len(entities.Categories))
	for _, c := range entities.Categories {
		subtotals = append(subtotals, CategorySubtotalResponse{
			Category: string(c),
			Label:    c.Label(),
			Subtotal: money(byCategory[c]),
		})
	}

	return EstimateResponse{
		System:      string(res.System),
		SystemLabel: res.System.Label(),
		Inputs:      res.Inputs,
		NetWallArea: takeoff.RoundUp(takeoff.NetWallArea(res.Inputs)),
		Items:       items,
		Subtotals:   subtotals,
		Total:       money(res.Total()),
	}
}

type EstimateExportResponse struct {
	Text        string `json:"text"`
	WhatsAppURL string `json:"whatsapp_url"`
}

func FromExport(e entities.EstimateExport) EstimateExportResponse {
	return EstimateExportResponse{Text: e.Text, WhatsAppURL: e.WhatsAppURL}
}

type SystemResponse struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

func FromSystems(systems []entities.ConstructionSystem) []SystemResponse {
	out := make([]SystemResponse, 0, len(systems))
	for _, s := range systems {
		out = append(out, SystemResponse{ID: string(s), Label: s.Label(), Description: s.Description()})
	}
	return out
}

// money rounds a currency amount to cents for JSON output.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
