package takeoff

import "obra_gris/internal/domain/entities"

const (
	studSpacing    = 0.40 // m between studs (steel and wood frame)
	columnSpacing  = 3.0  // m between metal panel columns
	sipPanelArea   = 2.97 // m² covered by one SIP panel
	roofStructFact = 1.5  // m of roof structure per m² of slab
)

// line is a raw, unrounded quantity for one material.
type line struct {
	id  string
	qty float64
}

// wallSystem produces the wall block and the roof structure of one
// construction system. The roof structure is emitted at the head of the
// roof block by the estimator.
type wallSystem interface {
	walls(g geometry) []line
	roofStructure(g geometry) line
}

var wallSystems = map[entities.ConstructionSystem]wallSystem{
	entities.SystemMasonry:    masonry{},
	entities.SystemSIP:        sip{},
	entities.SystemSteelFrame: steelFrame{},
	entities.SystemWoodFrame:  woodFrame{},
	entities.SystemMetalPanel: metalPanel{},
}

type masonry struct{}

func (masonry) walls(g geometry) []line {
	return []line{
		{IDMasonryBrick, g.netWallArea * 15.5},
		{IDMasonryMortar, g.netWallArea * 25},
		{IDMasonryPlaster, g.netWallArea * 35},
	}
}

func (masonry) roofStructure(g geometry) line {
	return line{IDMasonryRoof, g.in.SlabArea * roofStructFact}
}

type sip struct{}

func (sip) walls(g geometry) []line {
	return []line{
		{IDSIPPanel, (g.netWallArea / sipPanelArea) * 1.10},
		{IDSIPScrews, g.netWallArea * 10},
		{IDSIPSheath, g.netWallArea * 1.05},
	}
}

func (sip) roofStructure(g geometry) line {
	return line{IDSIPRoofWood, g.in.SlabArea * roofStructFact}
}

type steelFrame struct{}

func (steelFrame) walls(g geometry) []line {
	studLength := g.studCount() * g.in.WallHeight
	trackLength := g.in.WallPerimeter*2 + g.in.WindowArea*2
	return []line{
		{IDSteelStud, studLength * 1.05},
		{IDSteelTrack, trackLength * 1.05},
		{IDSteelSheath, g.netWallArea * 1.05},
		{IDSteelInsul, g.netWallArea * 1.05},
		{IDSteelFasteners, g.netWallArea * 30},
	}
}

func (steelFrame) roofStructure(g geometry) line {
	return line{IDSteelRoof, g.in.SlabArea * roofStructFact}
}

type woodFrame struct{}

func (woodFrame) walls(g geometry) []line {
	studLength := g.studCount() * g.in.WallHeight
	return []line{
		{IDWoodFraming, (studLength + g.in.WallPerimeter*2) * 1.10},
		{IDWoodSiding, g.netWallArea * 1.10},
		{IDWoodInsul, g.netWallArea * 1.05},
	}
}

func (woodFrame) roofStructure(g geometry) line {
	return line{IDWoodRoof, g.in.SlabArea * roofStructFact}
}

type metalPanel struct{}

func (metalPanel) walls(g geometry) []line {
	columns := ceilCount(g.in.WallPerimeter / columnSpacing)
	return []line{
		{IDMetalWallPanel, g.netWallArea * 1.05},
		{IDMetalColumns, columns * g.in.WallHeight},
		{IDMetalBeams, g.in.WallPerimeter * 2},
		{IDMetalFasteners, g.netWallArea * 8},
	}
}

func (metalPanel) roofStructure(g geometry) line {
	return line{IDMetalRoof, g.in.SlabArea * roofStructFact}
}
