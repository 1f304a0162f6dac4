package stadium3d

import (
	"fmt"
	"strings"
)

// Role is what an AngularSection contributes to the stadium.
type Role int

const (
	RoleSeatingStandard Role = iota // Terraces with the standard profile, backed by the main wall
	RoleSeatingSpecial              // Terraces with the enlarged (special) profile
	RoleConnector                   // A bare wall joining two seating sections
	RoleElevatedWall                // The secondary wall raised over the special section
	RoleCanopy                      // The overhang projecting inwards from the elevated wall's top
)

var roleNames = map[Role]string{
	RoleSeatingStandard: "seating-standard",
	RoleSeatingSpecial:  "seating-special",
	RoleConnector:       "connector",
	RoleElevatedWall:    "elevated-wall",
	RoleCanopy:          "canopy",
}

func (role Role) String() string {
	if name, ok := roleNames[role]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", int(role))
}

// IsSeating returns true for the two terrace-bearing roles.
func (role Role) IsSeating() bool {
	return role == RoleSeatingStandard || role == RoleSeatingSpecial
}

// MarshalText allows Roles to be written by name in layout files.
func (role Role) MarshalText() ([]byte, error) {
	name, ok := roleNames[role]
	if !ok {
		return nil, invalidf("unknown role %d", int(role))
	}
	return []byte(name), nil
}

// UnmarshalText allows Roles to be read by name from layout files.
func (role *Role) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for r, n := range roleNames {
		if n == name {
			*role = r
			return nil
		}
	}
	return invalidf("unknown role %q", string(text))
}

// Radii are the two semi-axes of an ellipse centered on the stadium center.
type Radii struct {
	RX float64 `toml:"rx" yaml:"rx"`
	RY float64 `toml:"ry" yaml:"ry"`
}

// Scale returns a copy of the Radii multiplied by the given factor.
func (r Radii) Scale(factor float64) Radii {
	return Radii{RX: r.RX * factor, RY: r.RY * factor}
}

// Lerp interpolates between these Radii and the other Radii; it's exact at both ends.
func (r Radii) Lerp(other Radii, t float64) Radii {
	return Radii{RX: lerp(r.RX, other.RX, t), RY: lerp(r.RY, other.RY, t)}
}

// At returns a Profile of these Radii at the given elevation.
func (r Radii) At(z float64) Profile {
	return Profile{RX: r.RX, RY: r.RY, Z: z}
}

// AngularSection is a contiguous wedge of the stadium with everything needed to emit it: its angular range, its role,
// its terrace profile (seating roles only) and the wall swept along it.
//
// AngularSections are normally resolved from a Layout (see Layout.AngularSections()), but can be built by hand.
type AngularSection struct {
	Name       string
	Start, End float64 // Angles in degrees; 0 <= Start < End <= 360
	Role       Role

	Seating SeatingProfile // Terrace profile; ignored unless Role.IsSeating()

	// Wall is swept from Base (T = 0) to Top (T = 1) along the whole section.
	WallBase, WallTop Profile

	Segments     int // Arc tessellation for terrace steps
	WallSegments int // Arc tessellation for the wall
}

// Arc returns the terrace Arc of the AngularSection.
func (section AngularSection) Arc() Arc {
	return NewArc(section.Start, section.End, section.Segments)
}

// WallArc returns the Arc the AngularSection's wall is swept along.
func (section AngularSection) WallArc() Arc {
	return NewArc(section.Start, section.End, section.WallSegments)
}

// Validate checks the AngularSection's invariants, returning an error wrapping ErrConfigurationInvalid if one doesn't hold.
func (section AngularSection) Validate() error {

	if !finite(section.Start, section.End) {
		return invalidf("section %q: angles must be finite (got %v..%v)", section.Name, section.Start, section.End)
	}

	if section.Start < 0 || section.Start >= 360 {
		return invalidf("section %q: start angle %v outside [0, 360)", section.Name, section.Start)
	}

	if section.End <= section.Start {
		return invalidf("section %q: end angle %v isn't past start angle %v", section.Name, section.End, section.Start)
	}

	if section.End > 360 {
		return invalidf("section %q: end angle %v past 360", section.Name, section.End)
	}

	if _, ok := roleNames[section.Role]; !ok {
		return invalidf("section %q: unknown role %d", section.Name, int(section.Role))
	}

	for _, p := range []Profile{section.WallBase, section.WallTop} {
		if !finite(p.RX, p.RY, p.Z) {
			return invalidf("section %q: wall profile must be finite (got %v x %v at %v)", section.Name, p.RX, p.RY, p.Z)
		}
		if p.RX <= 0 || p.RY <= 0 {
			return invalidf("section %q: wall radii must be positive (got %v x %v)", section.Name, p.RX, p.RY)
		}
	}

	if section.Role.IsSeating() {
		if err := section.Seating.Validate(); err != nil {
			return fmt.Errorf("section %q: %w", section.Name, err)
		}
	}

	return nil

}

// TerraceSteps returns every TerraceStep of the AngularSection, or nil if it isn't a seating section.
func (section AngularSection) TerraceSteps() []TerraceStep {
	if !section.Role.IsSeating() {
		return nil
	}
	return section.Seating.Steps()
}

// Boundaries returns the AngularSection's start and end angles.
func (section AngularSection) Boundaries() [2]float64 {
	return [2]float64{section.Start, section.End}
}
