package scene

import (
	"math"

	"github.com/solarlune/stadium3d"
	"github.com/solarlune/stadium3d/colors"
)

// Lighting shades vertices with an ambient term plus a diffuse term from a single directional light. Faces are lit
// the same from either side, since the stadium's surfaces are seen from both.
type Lighting struct {
	Direction stadium3d.Vector // Points towards the light; normalized on use
}

// NewLighting returns a Lighting with the sun high up and off to one side of the main stand.
func NewLighting() Lighting {
	return Lighting{Direction: stadium3d.NewVector(-0.4, 0.3, 1)}
}

// Shade returns the color a vertex with the given normal and surface tint takes on under the given palette.
func (l Lighting) Shade(normal stadium3d.Vector, tint stadium3d.Color, palette colors.Palette) stadium3d.Color {

	intensity := float32(0)
	if !normal.IsZero() {
		intensity = float32(math.Abs(normal.Unit().Dot(l.Direction.Unit())))
	}

	light := palette.Ambient
	light.R += palette.Diffuse.R * intensity
	light.G += palette.Diffuse.G * intensity
	light.B += palette.Diffuse.B * intensity
	light.A = 1

	return light.Mix(tint).Clamped()

}
