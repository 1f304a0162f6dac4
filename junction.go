package stadium3d

import (
	"math"
	"slices"
)

// CapProfile picks which wall top an end cap's outer-top corner is pinned to.
type CapProfile int

const (
	CapStandard CapProfile = iota // The standard main wall's top edge
	CapElevated                   // The elevated wall's top edge
)

func (p CapProfile) String() string {
	if p == CapElevated {
		return "elevated"
	}
	return "standard"
}

// normalizeAngle folds an angle into [0, 360). Configured angles pass through unchanged, so the result
// can be used as an exact map key; 360 becomes 0.
func normalizeAngle(degrees float64) float64 {
	a := math.Mod(degrees, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// JunctionTable decides, for every seating boundary angle, whether an end cap closes it and which wall
// top the cap reaches up to. It is built once from the section list and looked up by exact angle afterwards;
// a lookup never depends on the order sections were emitted in.
type JunctionTable struct {
	seating  map[float64][]Role // seating roles that start or end at an angle
	elevated Set[float64]       // angles where an elevated wall starts or ends
}

// NewJunctionTable builds a JunctionTable from the given sections.
func NewJunctionTable(sections []AngularSection) *JunctionTable {

	table := &JunctionTable{
		seating:  map[float64][]Role{},
		elevated: newSet[float64](),
	}

	for _, section := range sections {
		for _, angle := range section.Boundaries() {
			a := normalizeAngle(angle)
			if section.Role.IsSeating() {
				table.seating[a] = append(table.seating[a], section.Role)
			} else if section.Role == RoleElevatedWall {
				table.elevated.Add(a)
			}
		}
	}

	return table

}

// ShouldSkip returns true if no end cap belongs at the given angle. That is the case at the 0/360 seam, at angles
// that aren't a seating boundary at all, and where two seating sections of the same role meet (the boundary is
// internal to one grandstand, so there's no open side to close).
func (table *JunctionTable) ShouldSkip(degrees float64) bool {

	a := normalizeAngle(degrees)

	if a == 0 {
		return true
	}

	roles, ok := table.seating[a]
	if !ok {
		return true
	}

	if len(roles) < 2 {
		return false
	}

	for _, r := range roles[1:] {
		if r != roles[0] {
			return false
		}
	}

	return true

}

// OuterTop returns which wall top the end cap at the given angle should reach.
func (table *JunctionTable) OuterTop(degrees float64) CapProfile {
	if table.elevated.Contains(normalizeAngle(degrees)) {
		return CapElevated
	}
	return CapStandard
}

// CapAngles returns every angle (in [0, 360)) that receives an end cap, in ascending order. Each boundary
// appears once, however many sections share it.
func (table *JunctionTable) CapAngles() []float64 {
	angles := []float64{}
	for a := range table.seating {
		if !table.ShouldSkip(a) {
			angles = append(angles, a)
		}
	}
	slices.Sort(angles)
	return angles
}
