package scene

import (
	"github.com/solarlune/stadium3d"
	"github.com/solarlune/stadium3d/colors"
)

// ScreenVertex is a projected vertex: a position in pixels, its (tiled) texture coordinate, and its lit color.
type ScreenVertex struct {
	X, Y  float32
	S, T  float32
	Color stadium3d.Color
}

// ScreenTriangle is one projected triangle, ready to be drawn with its Surface's texture.
type ScreenTriangle struct {
	Surface  stadium3d.Surface
	Vertices [3]ScreenVertex
	Depth    float64 // Mean distance of the triangle's vertices in front of the eye
}

// Scene is everything needed to turn a stadium Mesh into screen triangles, besides the Mesh itself.
type Scene struct {
	Camera   *Camera
	DayNight *DayNight
	Lighting Lighting

	bucket      *depthBucket
	projected   []stadium3d.Vector
	shaded      []stadium3d.Color
	triangles   []ScreenTriangle
	sortedCache []ScreenTriangle
}

// NewScene returns a Scene with a fresh Camera, the day palette, and a day/night fade of the given duration in seconds.
func NewScene(fadeDuration float32) *Scene {
	return &Scene{
		Camera:   NewCamera(),
		DayNight: NewDayNight(fadeDuration),
		Lighting: NewLighting(),
		bucket:   newDepthBucket(512),
	}
}

// Palette returns the Palette the Scene is currently lit with.
func (scene *Scene) Palette() colors.Palette {
	return scene.DayNight.Palette()
}

// Project transforms, lights, and depth-sorts every triangle of the Mesh for a screen of the given size. The returned
// triangles are ordered back to front, so drawing them in order paints nearer faces over further ones. Triangles
// with a vertex behind the near plane, or entirely off to one side of the screen, are dropped.
// The returned slice is reused by the next call to Project.
func (scene *Scene) Project(mesh *stadium3d.Mesh, width, height int) []ScreenTriangle {

	vp := scene.Camera.ViewProjection(width, height)
	palette := scene.Palette()
	near := scene.Camera.Near

	w, h := float64(width), float64(height)

	scene.triangles = scene.triangles[:0]

	for _, prim := range mesh.Primitives {

		tint := stadium3d.SurfaceTint(prim.Surface)

		scene.projected = scene.projected[:0]
		scene.shaded = scene.shaded[:0]

		for _, v := range prim.Vertices {
			scene.projected = append(scene.projected, vp.MultVecW(v.Position))
			scene.shaded = append(scene.shaded, scene.Lighting.Shade(v.Normal, tint, palette))
		}

	triangles:
		for _, tri := range prim.Triangles() {

			st := ScreenTriangle{Surface: prim.Surface}

			left, right, top, bottom := 0, 0, 0, 0

			for i, index := range tri {

				clip := scene.projected[index]

				if clip.W < near {
					continue triangles
				}

				ndcX := clip.X / clip.W
				ndcY := clip.Y / clip.W

				if ndcX < -1 {
					left++
				} else if ndcX > 1 {
					right++
				}
				if ndcY < -1 {
					bottom++
				} else if ndcY > 1 {
					top++
				}

				uv := prim.Vertices[index].UV

				st.Vertices[i] = ScreenVertex{
					X:     float32((ndcX*0.5 + 0.5) * w),
					Y:     float32((0.5 - ndcY*0.5) * h),
					S:     float32(uv.X),
					T:     float32(uv.Y),
					Color: scene.shaded[index],
				}

				st.Depth += clip.W / 3

			}

			if left == 3 || right == 3 || top == 3 || bottom == 3 {
				continue
			}

			scene.triangles = append(scene.triangles, st)

		}

	}

	scene.sortedCache = scene.bucket.sortBackToFront(scene.triangles, scene.sortedCache[:0])

	return scene.sortedCache

}

// depthBucket sorts triangles approximately by depth, by dropping them into evenly sized depth bins.
// Triangles within one bin keep their emission order.
type depthBucket struct {
	bins [][]int
}

func newDepthBucket(binCount int) *depthBucket {
	if binCount < 1 {
		binCount = 1
	}
	return &depthBucket{bins: make([][]int, binCount)}
}

// sortBackToFront appends the triangles to out, furthest bin first.
func (b *depthBucket) sortBackToFront(tris []ScreenTriangle, out []ScreenTriangle) []ScreenTriangle {

	if len(tris) == 0 {
		return out
	}

	for i := range b.bins {
		b.bins[i] = b.bins[i][:0]
	}

	minRange, maxRange := tris[0].Depth, tris[0].Depth
	for _, t := range tris[1:] {
		minRange = min(minRange, t.Depth)
		maxRange = max(maxRange, t.Depth)
	}

	rangeDiff := maxRange - minRange
	if rangeDiff == 0 {
		rangeDiff = 0.001
	}

	binCount := len(b.bins)

	for i, t := range tris {
		bin := int((t.Depth - minRange) / rangeDiff * float64(binCount))
		bin = max(0, min(bin, binCount-1))
		b.bins[bin] = append(b.bins[bin], i)
	}

	for bin := binCount - 1; bin >= 0; bin-- {
		for _, i := range b.bins[bin] {
			out = append(out, tris[i])
		}
	}

	return out

}
