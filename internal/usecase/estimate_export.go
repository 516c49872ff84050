package usecase

import (
	"fmt"
	"net/url"
	"obra_gris/internal/domain/entities"
	"obra_gris/internal/domain/takeoff"
	"strings"

	"github.com/shopspring/decimal"
)

const whatsAppShareBase = "https://wa.me/?text="

// FormatEstimateText renders a calculation as a plain-text bill of materials,
// grouped by block, with subtotals and the grand total in ARS.
func FormatEstimateText(res entities.CalculationResult) string {
	var b strings.Builder
	in := res.Inputs

	fmt.Fprintf(&b, "Presupuesto obra gris - %s\n", res.System.Label())
	fmt.Fprintf(&b, "Superficie: %s m² | Perímetro: %s m | Altura: %s m\n",
		formatQty(in.SlabArea), formatQty(in.WallPerimeter), formatQty(in.WallHeight))
	fmt.Fprintf(&b, "Ventanas: %s m² | Puertas: %d | Muro neto: %s m²\n",
		formatQty(in.WindowArea), in.DoorCount, formatQty(takeoff.NetWallArea(in)))

	subtotals := res.SubtotalsByCategory()
	for _, cat := range entities.Categories {
		fmt.Fprintf(&b, "\n== %s ==\n", cat.Label())
		for _, it := range res.Items {
			if it.Category != cat {
				continue
			}
			fmt.Fprintf(&b, "- %s: %s %s x %s = %s\n",
				it.Name, formatQty(it.Quantity), it.Unit, formatARS(decimal.NewFromFloat(it.UnitPrice)), formatARS(it.Subtotal()))
		}
		fmt.Fprintf(&b, "Subtotal: %s\n", formatARS(subtotals[cat]))
	}

	fmt.Fprintf(&b, "\nTOTAL: %s\n", formatARS(res.Total()))
	return b.String()
}

// WhatsAppShareURL builds a wa.me link carrying text. Spaces are encoded as
// %20 because WhatsApp shows a literal "+" otherwise.
func WhatsAppShareURL(text string) string {
	return whatsAppShareBase + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

func formatQty(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// formatARS renders an amount as "$ 1.234.567,89" (es-AR separators).
func formatARS(v decimal.Decimal) string {
	fixed := v.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	sign := ""
	if v.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("%s$ %s,%s", sign, grouped.String(), frac)
}
