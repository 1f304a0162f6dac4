package scene

import (
	"testing"

	"github.com/solarlune/stadium3d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// facing returns a triangle in the plane X = x, facing the default camera, with its first vertex on the X axis.
func facing(name string, surface stadium3d.Surface, x float64) *stadium3d.Primitive {
	return stadium3d.NewTriangles(name, surface,
		stadium3d.NewVertex(x, 0, 0, 0, 0),
		stadium3d.NewVertex(x, 0.5, 0, 1, 0),
		stadium3d.NewVertex(x, 0, 0.5, 0, 1),
	)
}

func TestProjectBackToFront(t *testing.T) {

	sc := NewScene(1)

	mesh := stadium3d.NewMesh("test")
	mesh.Add(
		facing("near", stadium3d.SurfaceWall, 0),
		facing("far", stadium3d.SurfaceGround, 2),
		facing("middle", stadium3d.SurfaceTerrace, 1),
	)
	mesh.ComputeNormals()

	tris := sc.Project(mesh, 1200, 800)
	require.Len(t, tris, 3)

	assert.Equal(t, stadium3d.SurfaceGround, tris[0].Surface)
	assert.Equal(t, stadium3d.SurfaceTerrace, tris[1].Surface)
	assert.Equal(t, stadium3d.SurfaceWall, tris[2].Surface)

	for i := 1; i < len(tris); i++ {
		assert.Greater(t, tris[i-1].Depth, tris[i].Depth)
	}

	// The stadium center lands in the middle of the screen. Turned 90 degrees about Y, the camera sees +Y as up
	// and elevation (+Z) as off to the right.
	near := tris[2]
	assert.InDelta(t, 5, near.Depth, 1e-9)
	assert.InDelta(t, 600, near.Vertices[0].X, 1e-3)
	assert.InDelta(t, 400, near.Vertices[0].Y, 1e-3)
	assert.Less(t, near.Vertices[1].Y, near.Vertices[0].Y)
	assert.Greater(t, near.Vertices[2].X, near.Vertices[0].X)
	assert.Equal(t, float32(1), near.Vertices[2].T)

	for _, v := range near.Vertices {
		assert.Equal(t, float32(1), v.Color.A)
	}

}

func TestProjectCulls(t *testing.T) {

	sc := NewScene(1)

	mesh := stadium3d.NewMesh("test")
	mesh.Add(
		facing("behind", stadium3d.SurfaceWall, -6),
		stadium3d.NewTriangles("aside", stadium3d.SurfaceWall,
			stadium3d.NewVertex(0, 50, 0, 0, 0),
			stadium3d.NewVertex(0, 51, 0, 0, 0),
			stadium3d.NewVertex(0, 50, 1, 0, 0),
		),
		facing("visible", stadium3d.SurfaceTerrace, 0),
	)

	tris := sc.Project(mesh, 640, 480)
	require.Len(t, tris, 1)
	assert.Equal(t, stadium3d.SurfaceTerrace, tris[0].Surface)

	// The result is reused between calls.
	empty := sc.Project(stadium3d.NewMesh("empty"), 640, 480)
	assert.Empty(t, empty)

}

func TestDepthBucketKeepsOrderWithinBin(t *testing.T) {

	bucket := newDepthBucket(4)

	tris := []ScreenTriangle{
		{Surface: stadium3d.SurfaceWall, Depth: 1},
		{Surface: stadium3d.SurfaceGround, Depth: 1},
		{Surface: stadium3d.SurfaceTerrace, Depth: 10},
	}

	sorted := bucket.sortBackToFront(tris, nil)
	require.Len(t, sorted, 3)
	assert.Equal(t, stadium3d.SurfaceTerrace, sorted[0].Surface)
	assert.Equal(t, stadium3d.SurfaceWall, sorted[1].Surface)
	assert.Equal(t, stadium3d.SurfaceGround, sorted[2].Surface)

	assert.Empty(t, bucket.sortBackToFront(nil, nil))

}

func TestLightingShade(t *testing.T) {

	light := NewLighting()
	palette := NewDayNight(1).Palette()
	tint := stadium3d.NewColor(1, 1, 1, 1)

	lit := light.Shade(light.Direction, tint, palette)
	unlit := light.Shade(stadium3d.Vector{}, tint, palette)
	backside := light.Shade(light.Direction.Invert(), tint, palette)

	assert.Greater(t, lit.R, unlit.R)
	assert.InDelta(t, lit.R, backside.R, 1e-6)
	assert.InDelta(t, palette.Ambient.R, unlit.R, 1e-6)
	assert.Equal(t, float32(1), lit.A)
	assert.LessOrEqual(t, lit.R, float32(1))

}
