package response

import (
	"testing"

	"obra_gris/internal/domain/entities"
	"obra_gris/internal/domain/takeoff"
)

func TestFromCalculation(t *testing.T) {
	in := entities.Inputs{SlabArea: 60, WallHeight: 2.6, WallPerimeter: 40, WindowArea: 8, DoorCount: 2}
	overrides := entities.PriceOverrides{}
	for _, m := range takeoff.Materials() {
		overrides[m.ID] = 0
	}
	overrides[takeoff.IDConcreteH17] = 100000
	overrides[takeoff.IDMasonryBrick] = 0.5

	res, err := takeoff.Calculate(in, entities.SystemMasonry, overrides)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := FromCalculation(res)
	if out.System != "mamposteria" || out.SystemLabel != entities.SystemMasonry.Label() {
		t.Fatalf("unexpected system: %+v", out)
	}
	if out.NetWallArea != 92 || len(out.Items) != len(res.Items) {
		t.Fatalf("unexpected body: %+v", out)
	}
	if out.Items[0].Subtotal != 720000 || out.Items[0].Category != "platea" {
		t.Fatalf("unexpected first item: %+v", out.Items[0])
	}
	if out.Total != 720713 {
		t.Fatalf("unexpected total: %v", out.Total)
	}
	if len(out.Subtotals) != 4 || out.Subtotals[0].Subtotal != 720000 || out.Subtotals[1].Subtotal != 713 {
		t.Fatalf("unexpected subtotals: %+v", out.Subtotals)
	}
	if out.Subtotals[3].Category != "techo" || out.Subtotals[3].Subtotal != 0 {
		t.Fatalf("unexpected roof subtotal: %+v", out.Subtotals[3])
	}
}

func TestFromSystems(t *testing.T) {
	out := FromSystems(entities.AllSystems)
	if len(out) != 5 || out[0].ID != "mamposteria" || out[0].Label == "" || out[0].Description == "" {
		t.Fatalf("unexpected systems: %+v", out)
	}
}

func TestFromSupplierReport(t *testing.T) {
	out := FromSupplierReport(entities.SupplierReport{System: entities.SystemSIP, Location: "Rosario", Text: "x"})
	if out.System != "sip" || out.Citations == nil || len(out.Citations) != 0 {
		t.Fatalf("unexpected report: %+v", out)
	}
}

func TestFromCheckout(t *testing.T) {
	out := FromCheckout(entities.Checkout{PreferenceID: "p", Reference: "r", InitPoint: "i", Total: 10})
	if out.PreferenceID != "p" || out.Reference != "r" || out.InitPoint != "i" || out.Total != 10 {
		t.Fatalf("unexpected checkout: %+v", out)
	}
}
