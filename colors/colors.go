package colors

// package colors contains named stadium3d.Color values, plus the palettes the viewer fades between (i.e. "Day()", "Night()").

import "github.com/solarlune/stadium3d"

// White generates a stadium3d.Color instance of the provided name.
func White() stadium3d.Color {
	return stadium3d.NewColor(1, 1, 1, 1)
}

// Black generates a stadium3d.Color instance of the provided name.
func Black() stadium3d.Color {
	return stadium3d.NewColor(0, 0, 0, 1)
}

// LightGray generates a stadium3d.Color instance of the provided name.
func LightGray() stadium3d.Color {
	return stadium3d.NewColor(0.8, 0.8, 0.8, 1)
}

// DarkGray generates a stadium3d.Color instance of the provided name.
func DarkGray() stadium3d.Color {
	return stadium3d.NewColor(0.2, 0.2, 0.2, 1)
}

// SkyBlue is the clear color of a daytime sky.
func SkyBlue() stadium3d.Color {
	return stadium3d.NewColor(0.529, 0.808, 0.922, 1)
}

// NightBlue is the clear color of a night sky.
func NightBlue() stadium3d.Color {
	return stadium3d.NewColor(0.03, 0.05, 0.12, 1)
}

// Floodlight is the slightly cold white of stadium lighting.
func Floodlight() stadium3d.Color {
	return stadium3d.NewColor(0.85, 0.9, 1, 1)
}

// Palette is a set of colors that light one scene: the sky behind it, the ambient light every face gets, and the
// diffuse light that depends on a face's angle to the light direction.
type Palette struct {
	Sky     stadium3d.Color
	Ambient stadium3d.Color
	Diffuse stadium3d.Color
}

// Lerp blends every color of the Palette towards the other Palette by the percentage given (0 to 1).
func (p Palette) Lerp(other Palette, percent float32) Palette {
	return Palette{
		Sky:     p.Sky.Lerp(other.Sky, percent),
		Ambient: p.Ambient.Lerp(other.Ambient, percent),
		Diffuse: p.Diffuse.Lerp(other.Diffuse, percent),
	}
}

// Day returns the daytime Palette.
func Day() Palette {
	return Palette{
		Sky:     SkyBlue(),
		Ambient: stadium3d.NewColorGray(0.45),
		Diffuse: stadium3d.NewColor(0.6, 0.58, 0.55, 1),
	}
}

// Night returns the night Palette: a dark sky, with the stands lit mostly by floodlights.
func Night() Palette {
	return Palette{
		Sky:     NightBlue(),
		Ambient: stadium3d.NewColor(0.12, 0.13, 0.18, 1),
		Diffuse: Floodlight().MultiplyRGB(0.55),
	}
}
