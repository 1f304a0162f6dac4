package scene

import (
	"github.com/solarlune/stadium3d"
)

const (
	RotationStep = 5.0  // Degrees turned per key press
	ZoomStep     = 0.2  // Distance moved per key press
	ZoomMin      = 0.5  // Closest the camera gets to the stadium center
	ZoomMax      = 20.0 // Furthest the camera gets from the stadium center
)

// Axis is one of the three world axes the Camera can turn about.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Camera orbits the stadium center. The stadium is turned about Z, then Y, then X, and then viewed from Distance units
// away along the eye's +Z, looking down -Z.
type Camera struct {
	RotationX, RotationY, RotationZ float64 // Degrees
	Distance                        float64

	FieldOfView float64 // Vertical field of view, in degrees
	Near, Far   float64
}

// NewCamera returns a Camera in its starting position: turned 90 degrees about Y, 5 units out.
func NewCamera() *Camera {
	return &Camera{
		RotationY:   90,
		Distance:    5,
		FieldOfView: 60,
		Near:        0.1,
		Far:         100,
	}
}

// Rotate turns the Camera by the given number of degrees about the given axis.
func (camera *Camera) Rotate(axis Axis, degrees float64) {
	switch axis {
	case AxisX:
		camera.RotationX += degrees
	case AxisY:
		camera.RotationY += degrees
	case AxisZ:
		camera.RotationZ += degrees
	}
}

// Zoom moves the Camera towards (negative delta) or away from (positive delta) the center, keeping the distance
// within [ZoomMin, ZoomMax].
func (camera *Camera) Zoom(delta float64) {
	camera.Distance += delta
	if camera.Distance > ZoomMax {
		camera.Distance = ZoomMax
	}
	if camera.Distance < ZoomMin {
		camera.Distance = ZoomMin
	}
}

// View returns the world-to-eye Matrix4.
func (camera *Camera) View() stadium3d.Matrix4 {
	return stadium3d.NewMatrix4Rotate(0, 0, 1, stadium3d.ToRadians(camera.RotationZ)).
		Mult(stadium3d.NewMatrix4Rotate(0, 1, 0, stadium3d.ToRadians(camera.RotationY))).
		Mult(stadium3d.NewMatrix4Rotate(1, 0, 0, stadium3d.ToRadians(camera.RotationX))).
		Mult(stadium3d.NewMatrix4Translate(0, 0, -camera.Distance))
}

// Projection returns the perspective Matrix4 for a screen of the given size.
func (camera *Camera) Projection(width, height int) stadium3d.Matrix4 {
	if height <= 0 {
		height = 1
	}
	return stadium3d.NewProjectionPerspective(camera.FieldOfView, camera.Near, camera.Far, float64(width), float64(height))
}

// ViewProjection returns View() followed by Projection().
func (camera *Camera) ViewProjection(width, height int) stadium3d.Matrix4 {
	return camera.View().Mult(camera.Projection(width, height))
}

// Eye returns the Camera's position in world space.
func (camera *Camera) Eye() stadium3d.Vector {
	return camera.View().Inverted().MultVec(stadium3d.Vector{})
}
