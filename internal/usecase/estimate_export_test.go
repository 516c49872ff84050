package usecase

import (
	"net/url"
	"strings"
	"testing"

	"obra_gris/internal/domain/entities"
	"obra_gris/internal/domain/takeoff"

	"github.com/shopspring/decimal"
)

func TestFormatARS(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$ 0,00"},
		{"12.5", "$ 12,50"},
		{"999", "$ 999,00"},
		{"1000", "$ 1.000,00"},
		{"1234567.891", "$ 1.234.567,89"},
		{"-4500", "-$ 4.500,00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := formatARS(decimal.RequireFromString(tt.in)); got != tt.want {
				t.Fatalf("formatARS(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatEstimateText(t *testing.T) {
	overrides := entities.PriceOverrides{}
	for _, m := range takeoff.Materials() {
		overrides[m.ID] = 0
	}
	overrides[takeoff.IDConcreteH17] = 100000

	res, err := takeoff.Calculate(sampleInputs, entities.SystemMasonry, overrides)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := FormatEstimateText(res)

	for _, want := range []string{
		"Presupuesto obra gris - Mampostería tradicional",
		"Muro neto: 92.00 m²",
		"== Platea / Fundación ==",
		"- Hormigón elaborado H17: 7.20 m³ x $ 100.000,00 = $ 720.000,00",
		"- Ladrillo hueco 12x18x33: 1426.00 u x $ 0,00 = $ 0,00",
		"== Techo ==",
		"TOTAL: $ 720.000,00",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in:\n%s", want, text)
		}
	}

	order := []string{"== Platea", "== Muros", "== Aberturas", "== Techo"}
	last := -1
	for _, h := range order {
		i := strings.Index(text, h)
		if i <= last {
			t.Fatalf("block %q out of order", h)
		}
		last = i
	}
}

func TestWhatsAppShareURL(t *testing.T) {
	got := WhatsAppShareURL("Total: $ 1.000 & más")
	if !strings.HasPrefix(got, "https://wa.me/?text=") {
		t.Fatalf("unexpected prefix: %s", got)
	}
	if strings.Contains(got, "+") || strings.Contains(got, " ") {
		t.Fatalf("expected %%20 encoded spaces: %s", got)
	}

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if u.Query().Get("text") != "Total: $ 1.000 & más" {
		t.Fatalf("text did not round-trip: %q", u.Query().Get("text"))
	}
}
