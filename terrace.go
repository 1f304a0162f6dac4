package stadium3d

import "fmt"

// SeatingProfile describes a run of terrace steps. Inner is the radii of the lowest step's inner edge, Outer the radii
// of the highest step's outer edge; step radii and elevations are interpolated between the two ends.
type SeatingProfile struct {
	Inner     Radii   `toml:"inner" yaml:"inner"`
	Outer     Radii   `toml:"outer" yaml:"outer"`
	StepCount int     `toml:"steps" yaml:"steps"`
	MinHeight float64 `toml:"min_height" yaml:"min_height"` // Top of the lowest step, above Ground
	MaxHeight float64 `toml:"max_height" yaml:"max_height"` // Top of the highest step, above Ground
	Ground    float64 `toml:"ground" yaml:"ground"`         // Elevation the lowest step stands on
}

// SpecialOverride holds the three knobs that turn the standard SeatingProfile into the special one.
type SpecialOverride struct {
	ExtraSteps   int     `toml:"extra_steps" yaml:"extra_steps"`
	HeightFactor float64 `toml:"height_factor" yaml:"height_factor"`
	RadiusFactor float64 `toml:"radius_factor" yaml:"radius_factor"`
}

// DefaultSpecialOverride returns the override used by the default layout: 8 more steps, 35% taller and 15% wider.
func DefaultSpecialOverride() SpecialOverride {
	return SpecialOverride{
		ExtraSteps:   8,
		HeightFactor: 1.35,
		RadiusFactor: 1.15,
	}
}

// Special returns a copy of the SeatingProfile with the override applied. Only the step count, the maximum height and
// the outer radii change; the interpolation itself is shared with the standard profile.
func (profile SeatingProfile) Special(override SpecialOverride) SeatingProfile {
	profile.StepCount += override.ExtraSteps
	profile.MaxHeight *= override.HeightFactor
	profile.Outer = profile.Outer.Scale(override.RadiusFactor)
	return profile
}

// Validate checks the SeatingProfile's invariants.
func (profile SeatingProfile) Validate() error {

	if !finite(profile.Inner.RX, profile.Inner.RY, profile.Outer.RX, profile.Outer.RY, profile.MinHeight, profile.MaxHeight, profile.Ground) {
		return invalidf("radii and heights must be finite (inner %v x %v, outer %v x %v, heights %v..%v, ground %v)",
			profile.Inner.RX, profile.Inner.RY, profile.Outer.RX, profile.Outer.RY, profile.MinHeight, profile.MaxHeight, profile.Ground)
	}

	if profile.StepCount < 1 {
		return invalidf("step count must be at least 1 (got %d)", profile.StepCount)
	}

	if profile.Inner.RX <= 0 || profile.Inner.RY <= 0 || profile.Outer.RX <= 0 || profile.Outer.RY <= 0 {
		return invalidf("radii must be positive (inner %v x %v, outer %v x %v)", profile.Inner.RX, profile.Inner.RY, profile.Outer.RX, profile.Outer.RY)
	}

	if profile.Inner.RX >= profile.Outer.RX || profile.Inner.RY >= profile.Outer.RY {
		return invalidf("inner radii (%v x %v) must be inside outer radii (%v x %v)", profile.Inner.RX, profile.Inner.RY, profile.Outer.RX, profile.Outer.RY)
	}

	if profile.MinHeight <= 0 {
		return invalidf("minimum height must be positive (got %v)", profile.MinHeight)
	}

	if profile.MaxHeight <= profile.MinHeight {
		return invalidf("maximum height %v must be above minimum height %v", profile.MaxHeight, profile.MinHeight)
	}

	return nil

}

// TerraceStep is one tread and riser of a seating section.
type TerraceStep struct {
	Index int
	Inner Radii   // Radii of the tread's inner edge (and of the riser)
	Outer Radii   // Radii of the tread's outer edge
	Base  float64 // Elevation of the riser's bottom, equal to the previous step's Top
	Top   float64 // Elevation of the tread
}

func (step TerraceStep) String() string {
	return fmt.Sprintf("step %d: r %.4fx%.4f..%.4fx%.4f z %.4f..%.4f", step.Index, step.Inner.RX, step.Inner.RY, step.Outer.RX, step.Outer.RY, step.Base, step.Top)
}

// topAt returns the top elevation of step k. Step 0 sits at MinHeight and step StepCount-1 at MaxHeight.
func (profile SeatingProfile) topAt(k int) float64 {
	t := 1.0
	if profile.StepCount > 1 {
		t = float64(k) / float64(profile.StepCount-1)
	}
	return profile.Ground + lerp(profile.MinHeight, profile.MaxHeight, t)
}

// StepAt returns the k-th TerraceStep of the SeatingProfile.
func (profile SeatingProfile) StepAt(k int) TerraceStep {

	n := float64(profile.StepCount)

	base := profile.Ground
	if k > 0 {
		base = profile.topAt(k - 1)
	}

	return TerraceStep{
		Index: k,
		Inner: profile.Inner.Lerp(profile.Outer, float64(k)/n),
		Outer: profile.Inner.Lerp(profile.Outer, float64(k+1)/n),
		Base:  base,
		Top:   profile.topAt(k),
	}

}

// Steps returns all StepCount TerraceSteps of the SeatingProfile, lowest first.
func (profile SeatingProfile) Steps() []TerraceStep {
	steps := make([]TerraceStep, 0, profile.StepCount)
	for k := 0; k < profile.StepCount; k++ {
		steps = append(steps, profile.StepAt(k))
	}
	return steps
}

// StepEmitter turns TerraceSteps into tread and riser strips.
type StepEmitter struct {
	Center   Vector
	Arc      Arc
	Tiling   float64
	EndQuads bool // If set, each step also gets a quad closing it at both ends of the Arc
}

// Emit returns the Primitives for a single step: the tread, the riser, and the two end quads if EndQuads is set.
func (e StepEmitter) Emit(name string, step TerraceStep) []*Primitive {

	tread := RuledStrip{
		Name:    name + "/tread",
		Surface: SurfaceTerrace,
		Center:  e.Center,
		From:    step.Inner.At(step.Top),
		To:      step.Outer.At(step.Top),
		Arc:     e.Arc,
		Tiling:  e.Tiling,
	}

	riser := RuledStrip{
		Name:    name + "/riser",
		Surface: SurfaceTerrace,
		Center:  e.Center,
		From:    step.Inner.At(step.Base),
		To:      step.Inner.At(step.Top),
		Arc:     e.Arc,
		Tiling:  e.Tiling,
	}

	prims := []*Primitive{tread.Primitive(), riser.Primitive()}

	if e.EndQuads {
		for i, angle := range []float64{e.Arc.Start, e.Arc.End} {
			prims = append(prims, CapQuad(
				fmt.Sprintf("%s/end-%d", name, i),
				SurfaceTerrace,
				e.Center,
				angle,
				step.Inner.At(step.Base),
				step.Outer.At(step.Base),
				step.Outer.At(step.Top),
				step.Inner.At(step.Top),
			))
		}
	}

	return prims

}
