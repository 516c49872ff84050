package entities

// ConstructionSystem identifies the wall construction method used for a
// gray-structure (obra gris) estimate.
//
// The set is closed: every value accepted by the estimator has its own wall
// generator and anything else is rejected.

type ConstructionSystem string

const (
	SystemMasonry    ConstructionSystem = "mamposteria"
	SystemSIP        ConstructionSystem = "sip"
	SystemSteelFrame ConstructionSystem = "steel_frame"
	SystemWoodFrame  ConstructionSystem = "wood_frame"
	SystemMetalPanel ConstructionSystem = "panel_metalico"
)

// AllSystems lists the supported systems in display order.
var AllSystems = []ConstructionSystem{
	SystemMasonry,
	SystemSIP,
	SystemSteelFrame,
	SystemWoodFrame,
	SystemMetalPanel,
}

var systemLabels = map[ConstructionSystem]string{
	SystemMasonry:    "Mampostería tradicional",
	SystemSIP:        "Paneles SIP",
	SystemSteelFrame: "Steel Frame",
	SystemWoodFrame:  "Wood Frame",
	SystemMetalPanel: "Panel metálico aislado",
}

var systemDescriptions = map[ConstructionSystem]string{
	SystemMasonry:    "Ladrillo hueco con mortero y revoque, estructura de techo en perfil metálico.",
	SystemSIP:        "Paneles estructurales aislados de OSB con núcleo de EPS, techo en madera.",
	SystemSteelFrame: "Perfiles galvanizados PGC/PGU cada 40 cm con placas y aislación.",
	SystemWoodFrame:  "Entramado de pino cada 40 cm con siding exterior y aislación.",
	SystemMetalPanel: "Paneles sándwich sobre columnas y vigas metálicas.",
}

func (s ConstructionSystem) Valid() bool {
	_, ok := systemLabels[s]
	return ok
}

// Label returns the Spanish display name, or the raw value for unknown systems.
func (s ConstructionSystem) Label() string {
	if l, ok := systemLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s ConstructionSystem) Description() string {
	return systemDescriptions[s]
}
