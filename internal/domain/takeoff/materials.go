package takeoff

import (
	"obra_gris/internal/domain/entities"
	"sort"
)

// Material ids are fixed constants. Price overrides and catalog entries key
// off them, so they must never be renamed or derived from list positions.
const (
	// common: slab
	IDConcreteH17  = "conc_h17"
	IDSlabMesh     = "malla_q188"
	IDPolyFilm     = "film_200"
	IDWindows      = "ventana_alu"
	IDExteriorDoor = "puerta_ext"
	IDRoofSheeting = "chapa_c25"
	IDRoofInsul    = "aisl_techo"
	IDRoofScrews   = "torn_techo"

	// masonry
	IDMasonryBrick   = "mamp_ladrillo_12"
	IDMasonryMortar  = "mamp_mortero"
	IDMasonryPlaster = "mamp_revoque"
	IDMasonryRoof    = "mamp_techo_perfil"

	// SIP
	IDSIPPanel    = "sip_panel"
	IDSIPScrews   = "sip_tornillos"
	IDSIPSheath   = "sip_placa_ext"
	IDSIPRoofWood = "sip_techo_madera"

	// steel frame
	IDSteelStud      = "sf_pgc_100"
	IDSteelTrack     = "sf_pgu_100"
	IDSteelSheath    = "sf_placa_osb"
	IDSteelInsul     = "sf_lana_vidrio"
	IDSteelFasteners = "sf_tornillos_t1"
	IDSteelRoof      = "sf_techo_perfil"

	// wood frame
	IDWoodFraming = "wf_pino_2x4"
	IDWoodSiding  = "wf_siding"
	IDWoodInsul   = "wf_lana_vidrio"
	IDWoodRoof    = "wf_techo_madera"

	// metal panel
	IDMetalWallPanel = "mp_panel_sandwich"
	IDMetalColumns   = "mp_columnas"
	IDMetalBeams     = "mp_vigas"
	IDMetalFasteners = "mp_fijaciones"
	IDMetalRoof      = "mp_techo_perfil"
)

// Material is a catalog entry: display data plus the built-in default unit
// price in ARS.
type Material struct {
	ID           string
	Name         string
	Unit         string
	DefaultPrice float64
}

var materials = map[string]Material{
	IDConcreteH17:  {IDConcreteH17, "Hormigón elaborado H17", "m³", 125000},
	IDSlabMesh:     {IDSlabMesh, "Malla sima Q188", "m²", 4800},
	IDPolyFilm:     {IDPolyFilm, "Film polietileno 200 micrones", "m²", 650},
	IDWindows:      {IDWindows, "Ventanas de aluminio con vidrio", "m²", 185000},
	IDExteriorDoor: {IDExteriorDoor, "Puerta exterior", "u", 260000},
	IDRoofSheeting: {IDRoofSheeting, "Chapa sinusoidal C25", "m²", 14500},
	IDRoofInsul:    {IDRoofInsul, "Aislante techo (membrana + lana)", "m²", 5600},
	IDRoofScrews:   {IDRoofScrews, "Tornillos autoperforantes techo", "u", 120},

	IDMasonryBrick:   {IDMasonryBrick, "Ladrillo hueco 12x18x33", "u", 480},
	IDMasonryMortar:  {IDMasonryMortar, "Mortero de asiento", "kg", 160},
	IDMasonryPlaster: {IDMasonryPlaster, "Revoque grueso y fino", "kg", 190},
	IDMasonryRoof:    {IDMasonryRoof, "Estructura techo perfil C metálico", "m", 9200},

	IDSIPPanel:    {IDSIPPanel, "Panel SIP 1.22x2.44", "u", 98000},
	IDSIPScrews:   {IDSIPScrews, "Tornillos para panel SIP", "u", 210},
	IDSIPSheath:   {IDSIPSheath, "Placa exterior cementicia", "m²", 12500},
	IDSIPRoofWood: {IDSIPRoofWood, "Estructura techo madera", "m", 7400},

	IDSteelStud:      {IDSteelStud, "Perfil PGC 100", "m", 4300},
	IDSteelTrack:     {IDSteelTrack, "Perfil PGU 100", "m", 3900},
	IDSteelSheath:    {IDSteelSheath, "Placa OSB 11 mm", "m²", 9800},
	IDSteelInsul:     {IDSteelInsul, "Lana de vidrio 50 mm", "m²", 4900},
	IDSteelFasteners: {IDSteelFasteners, "Tornillos T1 punta mecha", "u", 38},
	IDSteelRoof:      {IDSteelRoof, "Estructura techo perfil C metálico", "m", 9200},

	IDWoodFraming: {IDWoodFraming, "Pino cepillado 2x4", "m", 3600},
	IDWoodSiding:  {IDWoodSiding, "Siding exterior", "m²", 11500},
	IDWoodInsul:   {IDWoodInsul, "Lana de vidrio 50 mm", "m²", 4900},
	IDWoodRoof:    {IDWoodRoof, "Estructura techo madera", "m", 7400},

	IDMetalWallPanel: {IDMetalWallPanel, "Panel sándwich muro 50 mm", "m²", 43000},
	IDMetalColumns:   {IDMetalColumns, "Columnas metálicas", "m", 26000},
	IDMetalBeams:     {IDMetalBeams, "Vigas metálicas", "m", 23000},
	IDMetalFasteners: {IDMetalFasteners, "Fijaciones para panel", "u", 320},
	IDMetalRoof:      {IDMetalRoof, "Estructura techo perfil C metálico", "m", 9200},
}

// LookupMaterial returns the catalog entry for id.
func LookupMaterial(id string) (Material, bool) {
	m, ok := materials[id]
	return m, ok
}

// Materials returns every known material sorted by id.
func Materials() []Material {
	out := make([]Material, 0, len(materials))
	for _, m := range materials {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ResolvePrice returns the override for id when present, otherwise the
// built-in default. Unknown ids without override resolve to zero.
func ResolvePrice(id string, overrides entities.PriceOverrides) float64 {
	if p, ok := overrides[id]; ok {
		return p
	}
	return materials[id].DefaultPrice
}
