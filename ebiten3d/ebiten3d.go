package ebiten3d

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/stadium3d"
	"github.com/solarlune/stadium3d/scene"
)

// maxBatchVertices is how many vertices one DrawTriangles call takes; indices are uint16.
const maxBatchVertices = (1<<16 - 1) / 3 * 3

var defaultImg *ebiten.Image

func init() {
	defaultImg = ebiten.NewImage(4, 4)
	defaultImg.Fill(color.White)
}

// Renderer is a stadium3d.MeshSink that draws the submitted Mesh to an ebiten.Image every frame, using a scene.Scene
// for the camera and lighting.
type Renderer struct {
	Scene *scene.Scene

	mesh     *stadium3d.Mesh
	textures map[stadium3d.Surface]*ebiten.Image

	vertexList []ebiten.Vertex
	indexList  []uint16

	// DrawnTriangles is how many triangles the last Draw() call drew.
	DrawnTriangles int
}

// NewRenderer creates a Renderer drawing through the given Scene.
func NewRenderer(sc *scene.Scene) *Renderer {
	return &Renderer{
		Scene:      sc,
		textures:   map[stadium3d.Surface]*ebiten.Image{},
		vertexList: make([]ebiten.Vertex, 0, maxBatchVertices),
		indexList:  make([]uint16, 0, maxBatchVertices),
	}
}

// Submit replaces the Mesh being drawn, uploading its textures. Surfaces missing from textures are drawn untextured,
// in their vertex colors.
func (renderer *Renderer) Submit(mesh *stadium3d.Mesh, textures stadium3d.TextureSet) error {

	for surface, img := range renderer.textures {
		if _, ok := textures[surface]; !ok {
			img.Deallocate()
			delete(renderer.textures, surface)
		}
	}

	for surface, tex := range textures {
		if tex == nil {
			continue
		}
		if old, ok := renderer.textures[surface]; ok {
			old.Deallocate()
		}
		renderer.textures[surface] = ebiten.NewImageFromImage(tex.Image)
	}

	renderer.mesh = mesh

	return nil

}

// Mesh returns the Mesh last submitted to the Renderer.
func (renderer *Renderer) Mesh() *stadium3d.Mesh {
	return renderer.mesh
}

func (renderer *Renderer) imageFor(surface stadium3d.Surface) *ebiten.Image {
	if img, ok := renderer.textures[surface]; ok {
		return img
	}
	return defaultImg
}

// Draw clears the screen to the sky color, then draws the Mesh's triangles back to front.
func (renderer *Renderer) Draw(screen *ebiten.Image) {

	screen.Fill(renderer.Scene.Palette().Sky.ToNRGBA64())

	renderer.DrawnTriangles = 0

	if renderer.mesh == nil {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	tris := renderer.Scene.Project(renderer.mesh, w, h)

	opt := &ebiten.DrawTrianglesOptions{
		Address: ebiten.AddressRepeat,
		Filter:  ebiten.FilterLinear,
	}

	forEachBatch(tris, func(surface stadium3d.Surface, batch []scene.ScreenTriangle) {

		img := renderer.imageFor(surface)
		renderer.vertexList, renderer.indexList = appendVertices(renderer.vertexList[:0], renderer.indexList[:0], batch, img.Bounds().Dx(), img.Bounds().Dy())

		screen.DrawTriangles(renderer.vertexList, renderer.indexList, img, opt)

		renderer.DrawnTriangles += len(batch)

	})

}

// forEachBatch splits the (already sorted) triangles into runs that share a Surface and fit in one DrawTriangles
// call, without changing their order.
func forEachBatch(tris []scene.ScreenTriangle, do func(surface stadium3d.Surface, batch []scene.ScreenTriangle)) {

	start := 0

	for i := 1; i <= len(tris); i++ {
		if i == len(tris) || tris[i].Surface != tris[start].Surface || (i-start)*3 >= maxBatchVertices {
			if i > start {
				do(tris[start].Surface, tris[start:i])
			}
			start = i
		}
	}

}

// appendVertices converts ScreenTriangles into ebiten vertices and indices. Texture coordinates are scaled by the
// texture's size; the image is stored bottom row first, so T maps straight onto SrcY.
func appendVertices(vertexList []ebiten.Vertex, indexList []uint16, tris []scene.ScreenTriangle, srcW, srcH int) ([]ebiten.Vertex, []uint16) {

	w, h := float32(srcW), float32(srcH)

	for _, tri := range tris {
		for _, v := range tri.Vertices {
			indexList = append(indexList, uint16(len(vertexList)))
			vertexList = append(vertexList, ebiten.Vertex{
				DstX:   v.X,
				DstY:   v.Y,
				SrcX:   v.S * w,
				SrcY:   v.T * h,
				ColorR: v.Color.R,
				ColorG: v.Color.G,
				ColorB: v.Color.B,
				ColorA: v.Color.A,
			})
		}
	}

	return vertexList, indexList

}
