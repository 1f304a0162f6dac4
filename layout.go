package stadium3d

import (
	"errors"
	"fmt"
)

// SectionConfig names an angular range and what goes there. The geometry of the section comes from the Layout.
type SectionConfig struct {
	Name     string  `toml:"name" yaml:"name"`
	Start    float64 `toml:"start" yaml:"start"`
	End      float64 `toml:"end" yaml:"end"`
	Role     Role    `toml:"role" yaml:"role"`
	Segments int     `toml:"segments,omitempty" yaml:"segments,omitempty"` // Overrides the Layout's segment count for this section if above 0
}

// CanopyConfig shapes the overhang: how far it reaches in from the elevated wall's top, and how far it drops while doing so.
type CanopyConfig struct {
	Depth float64 `toml:"depth" yaml:"depth"`
	Drop  float64 `toml:"drop" yaml:"drop"`
}

// GroundConfig describes the textured ground quad under the stadium.
type GroundConfig struct {
	Size   float64 `toml:"size" yaml:"size"`     // Half the side length of the quad
	Repeat float64 `toml:"repeat" yaml:"repeat"` // Texture repeats across the quad, on both axes
	Z      float64 `toml:"z" yaml:"z"`
}

// Layout is the full declarative description of one stadium: the sections and the shared parameters they're resolved with.
type Layout struct {
	Name    string  `toml:"name" yaml:"name"`
	CenterX float64 `toml:"center_x" yaml:"center_x"`
	CenterY float64 `toml:"center_y" yaml:"center_y"`

	Seating SeatingProfile  `toml:"seating" yaml:"seating"` // The standard seating profile
	Special SpecialOverride `toml:"special" yaml:"special"` // How the special profile differs from the standard one

	WallLean         float64 `toml:"wall_lean" yaml:"wall_lean"`                   // How far the main wall's top leans out past its base
	ElevatedWallLean float64 `toml:"elevated_wall_lean" yaml:"elevated_wall_lean"` // How far the elevated wall's top leans out past its base

	// ConnectorHeightFactor sets the connector wall height as a multiple of the seating MinHeight.
	ConnectorHeightFactor float64 `toml:"connector_height_factor" yaml:"connector_height_factor"`

	// CapInnerElevation is the elevation of an end cap's inner-top corner. It defaults to the connector height but is tuned separately.
	CapInnerElevation float64 `toml:"cap_inner_elevation" yaml:"cap_inner_elevation"`

	Canopy CanopyConfig `toml:"canopy" yaml:"canopy"`
	Ground GroundConfig `toml:"ground" yaml:"ground"`

	StepSegments int `toml:"step_segments" yaml:"step_segments"`
	WallSegments int `toml:"wall_segments" yaml:"wall_segments"`

	// EndQuads closes every terrace step at both of its ends. Only useful for single-arc layouts.
	EndQuads bool `toml:"end_quads" yaml:"end_quads"`

	Sections []SectionConfig `toml:"sections" yaml:"sections"`
}

// ScaleOpenGL is the ratio between real world metres and stadium units.
const ScaleOpenGL = 10.0

// DefaultLayout returns the full stadium: four standard grandstands and one special one, two connector walls,
// the elevated wall over the special grandstand and a canopy over its middle.
func DefaultLayout() Layout {

	seating := SeatingProfile{
		Inner:     Radii{RX: 0.5, RY: 0.7},
		Outer:     Radii{RX: 0.8, RY: 0.95},
		StepCount: 15,
		MinHeight: 0.2 / ScaleOpenGL,
		MaxHeight: 3.0 / ScaleOpenGL,
		Ground:    0,
	}

	connectorFactor := 7.0

	return Layout{
		Name:                  "stadium",
		Seating:               seating,
		Special:               DefaultSpecialOverride(),
		WallLean:              0.05,
		ElevatedWallLean:      0.05,
		ConnectorHeightFactor: connectorFactor,
		CapInnerElevation:     seating.MinHeight * connectorFactor,
		Canopy:                CanopyConfig{Depth: 0.25, Drop: 0.03},
		Ground:                GroundConfig{Size: 20, Repeat: 15, Z: -0.01},
		StepSegments:          40,
		WallSegments:          60,
		Sections: []SectionConfig{
			{Name: "north", Start: 0, End: 60, Role: RoleSeatingStandard},
			{Name: "east-connector", Start: 60, End: 120, Role: RoleConnector},
			{Name: "east-near", Start: 120, End: 140, Role: RoleSeatingStandard},
			{Name: "main-stand", Start: 140, End: 220, Role: RoleSeatingSpecial},
			{Name: "east-far", Start: 220, End: 240, Role: RoleSeatingStandard},
			{Name: "west-connector", Start: 240, End: 300, Role: RoleConnector},
			{Name: "south", Start: 300, End: 360, Role: RoleSeatingStandard},
			{Name: "main-stand-wall", Start: 140, End: 220, Role: RoleElevatedWall},
			{Name: "main-stand-canopy", Start: 150, End: 210, Role: RoleCanopy},
		},
	}

}

// Center returns the stadium center as a Vector.
func (layout Layout) Center() Vector {
	return NewVector(layout.CenterX, layout.CenterY, 0)
}

// SpecialSeating returns the special SeatingProfile.
func (layout Layout) SpecialSeating() SeatingProfile {
	return layout.Seating.Special(layout.Special)
}

// ConnectorHeight returns the height of the connector walls.
func (layout Layout) ConnectorHeight() float64 {
	return layout.Seating.MinHeight * layout.ConnectorHeightFactor
}

// StandardWallTop returns the top edge of the main wall behind standard seating.
func (layout Layout) StandardWallTop() Profile {
	return layout.Seating.Outer.At(layout.Seating.Ground + layout.Seating.MaxHeight).Grow(layout.WallLean)
}

// specialWallTop is the top edge of the main wall behind the special seating; it stays at the standard wall height,
// and the elevated wall carries on from there.
func (layout Layout) specialWallTop() Profile {
	return layout.SpecialSeating().Outer.At(layout.Seating.Ground + layout.Seating.MaxHeight).Grow(layout.WallLean)
}

// ElevatedWallTop returns the top edge of the elevated wall, level with the top of the special seating.
func (layout Layout) ElevatedWallTop() Profile {
	special := layout.SpecialSeating()
	return layout.specialWallTop().Grow(layout.ElevatedWallLean).At(special.Ground + special.MaxHeight)
}

// canopyEdge is the inner, lower edge of the canopy.
func (layout Layout) canopyEdge() Profile {
	top := layout.ElevatedWallTop()
	top.RX -= layout.Canopy.Depth
	top.RY -= layout.Canopy.Depth
	top.Z -= layout.Canopy.Drop
	return top
}

// AngularSections resolves the Layout's SectionConfigs into AngularSections. It doesn't validate them; see Validate().
func (layout Layout) AngularSections() []AngularSection {

	sections := make([]AngularSection, 0, len(layout.Sections))
	ground := layout.Seating.Ground

	for _, cfg := range layout.Sections {

		section := AngularSection{
			Name:         cfg.Name,
			Start:        cfg.Start,
			End:          cfg.End,
			Role:         cfg.Role,
			Seating:      layout.Seating,
			Segments:     layout.StepSegments,
			WallSegments: layout.WallSegments,
		}

		if cfg.Segments > 0 {
			section.Segments = cfg.Segments
			section.WallSegments = cfg.Segments
		}

		switch cfg.Role {

		case RoleSeatingStandard:
			section.WallBase = layout.Seating.Outer.At(ground)
			section.WallTop = layout.StandardWallTop()

		case RoleSeatingSpecial:
			section.Seating = layout.SpecialSeating()
			section.WallBase = section.Seating.Outer.At(ground)
			section.WallTop = layout.specialWallTop()

		case RoleConnector:
			section.WallBase = layout.Seating.Outer.At(ground)
			section.WallTop = layout.Seating.Outer.At(ground + layout.ConnectorHeight()).Grow(layout.WallLean)

		case RoleElevatedWall:
			section.WallBase = layout.specialWallTop()
			section.WallTop = layout.ElevatedWallTop()

		case RoleCanopy:
			section.WallBase = layout.ElevatedWallTop()
			section.WallTop = layout.canopyEdge()

		}

		sections = append(sections, section)

	}

	return sections

}

// Validate checks every resolved section, plus the Layout-wide parameters. All problems are reported together;
// each wraps ErrConfigurationInvalid.
func (layout Layout) Validate() error {

	var errs []error

	if len(layout.Sections) == 0 {
		errs = append(errs, invalidf("layout %q has no sections", layout.Name))
	}

	if !finite(layout.CenterX, layout.CenterY, layout.Special.HeightFactor, layout.Special.RadiusFactor,
		layout.WallLean, layout.ElevatedWallLean, layout.ConnectorHeightFactor, layout.CapInnerElevation,
		layout.Canopy.Depth, layout.Canopy.Drop, layout.Ground.Size, layout.Ground.Repeat, layout.Ground.Z) {
		errs = append(errs, invalidf("layout %q has a NaN or infinite parameter", layout.Name))
	}

	if err := layout.Seating.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("standard seating: %w", err))
	}

	if layout.Special.HeightFactor <= 0 || layout.Special.RadiusFactor <= 0 || layout.Special.ExtraSteps < 0 {
		errs = append(errs, invalidf("special override must have positive factors and non-negative extra steps"))
	}

	if layout.WallLean < 0 || layout.ElevatedWallLean < 0 {
		errs = append(errs, invalidf("wall lean can't be negative"))
	}

	if layout.ConnectorHeightFactor <= 0 {
		errs = append(errs, invalidf("connector height factor must be positive (got %v)", layout.ConnectorHeightFactor))
	}

	if layout.CapInnerElevation < 0 {
		errs = append(errs, invalidf("cap inner elevation can't be negative (got %v)", layout.CapInnerElevation))
	}

	if layout.Canopy.Depth < 0 || layout.Canopy.Drop < 0 {
		errs = append(errs, invalidf("canopy depth and drop can't be negative (got %v, %v)", layout.Canopy.Depth, layout.Canopy.Drop))
	}

	if layout.Ground.Size <= 0 {
		errs = append(errs, invalidf("ground size must be positive (got %v)", layout.Ground.Size))
	}

	if layout.Ground.Repeat <= 0 {
		errs = append(errs, invalidf("ground texture repeat must be positive (got %v)", layout.Ground.Repeat))
	}

	for _, section := range layout.AngularSections() {
		if err := section.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)

}
