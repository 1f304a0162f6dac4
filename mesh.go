package stadium3d

import (
	"fmt"
	"math"
)

// Dimensions represents the minimum and maximum spatial dimensions of a Mesh.
type Dimensions [2]Vector

// Max returns the maximum value from all of the axes in the Dimensions. For example, if the Dimensions have a min of [-1, -2, -2],
// and a max of [6, 1.5, 1], Max() will return 7, as it's the largest distance between all axes.
func (dim Dimensions) Max() float64 {
	return math.Max(math.Max(dim.Width(), dim.Depth()), dim.Height())
}

// Center returns the center point inbetween the two corners of the dimension set.
func (dim Dimensions) Center() Vector {
	return dim[0].Lerp(dim[1], 0.5)
}

// Width returns the span of the Dimensions along X.
func (dim Dimensions) Width() float64 {
	return dim[1].X - dim[0].X
}

// Depth returns the span of the Dimensions along Y.
func (dim Dimensions) Depth() float64 {
	return dim[1].Y - dim[0].Y
}

// Height returns the span of the Dimensions along Z (elevation).
func (dim Dimensions) Height() float64 {
	return dim[1].Z - dim[0].Z
}

// Surface indicates which texture (and tint) a Primitive is drawn with.
type Surface int

const (
	SurfaceGround  Surface = iota // The ground plane
	SurfaceTerrace                // Terrace treads and risers
	SurfaceWall                   // Outer walls, the elevated wall, the canopy and end caps
)

// Surfaces lists every Surface, in draw order.
var Surfaces = []Surface{SurfaceGround, SurfaceTerrace, SurfaceWall}

func (s Surface) String() string {
	switch s {
	case SurfaceGround:
		return "ground"
	case SurfaceTerrace:
		return "terrace"
	case SurfaceWall:
		return "wall"
	}
	return fmt.Sprintf("Surface(%d)", int(s))
}

// PrimitiveKind is the topology of a Primitive's vertex list.
type PrimitiveKind int

const (
	PrimitiveStrip PrimitiveKind = iota // A triangle strip; every vertex after the second forms a triangle with the two before it.
	PrimitiveQuad                       // A single planar quadrilateral, given as four vertices in winding order.
	PrimitiveTriangles                  // An unindexed triangle list; every three vertices form a triangle.
)

func (kind PrimitiveKind) String() string {
	switch kind {
	case PrimitiveQuad:
		return "quad"
	case PrimitiveTriangles:
		return "triangles"
	}
	return "strip"
}

// Vertex represents a vertex. Vertices are not shared between Primitives.
type Vertex struct {
	Position Vector
	UV       Vector // Texture coordinate; X is S, Y is T. Z and W are unused.
	Normal   Vector // Zero until Mesh.ComputeNormals() is called.
}

// NewVertex creates a new Vertex with the provided position (x, y, z) and UV values (u, v).
func NewVertex(x, y, z, u, v float64) Vertex {
	return Vertex{
		Position: NewVector(x, y, z),
		UV:       NewVector2(u, v),
	}
}

// A Primitive is a single strip or quad handed to a MeshSink, drawn with one Surface's texture.
type Primitive struct {
	Name     string
	Kind     PrimitiveKind
	Surface  Surface
	Vertices []Vertex
	// TileS and TileT are the tiling scale already baked into the vertices' UVs; sinks that set up
	// texture wrapping per primitive can read them, the rest can ignore them.
	TileS, TileT float64
}

// NewStrip creates a new triangle strip Primitive. A strip needs an even number of vertices, four at least;
// NewStrip panics otherwise.
func NewStrip(name string, surface Surface, verts ...Vertex) *Primitive {
	if len(verts) < 4 || len(verts)%2 != 0 {
		panic("Error: NewStrip() needs an even number of vertices, and at least 4 of them.")
	}
	return &Primitive{
		Name:     name,
		Kind:     PrimitiveStrip,
		Surface:  surface,
		Vertices: verts,
		TileS:    1,
		TileT:    1,
	}
}

// NewQuad creates a new quad Primitive from four vertices, given in winding order.
func NewQuad(name string, surface Surface, v0, v1, v2, v3 Vertex) *Primitive {
	return &Primitive{
		Name:     name,
		Kind:     PrimitiveQuad,
		Surface:  surface,
		Vertices: []Vertex{v0, v1, v2, v3},
		TileS:    1,
		TileT:    1,
	}
}

// NewTriangles creates a new triangle list Primitive. The number of vertices must be divisible by 3, or NewTriangles will panic.
func NewTriangles(name string, surface Surface, verts ...Vertex) *Primitive {
	if len(verts) == 0 || len(verts)%3 != 0 {
		panic("Error: NewTriangles() has not been given a correct number of vertices to constitute triangles (it needs to be greater than 0 and divisible by 3).")
	}
	return &Primitive{
		Name:     name,
		Kind:     PrimitiveTriangles,
		Surface:  surface,
		Vertices: verts,
		TileS:    1,
		TileT:    1,
	}
}

// Triangles returns the Primitive's triangles as index triplets into its Vertices. Strip triangles
// alternate their index order so that every triangle keeps the same facing.
func (prim *Primitive) Triangles() [][3]int {

	switch prim.Kind {
	case PrimitiveQuad:
		return [][3]int{{0, 1, 2}, {0, 2, 3}}
	case PrimitiveTriangles:
		tris := make([][3]int, 0, len(prim.Vertices)/3)
		for i := 0; i+2 < len(prim.Vertices); i += 3 {
			tris = append(tris, [3]int{i, i + 1, i + 2})
		}
		return tris
	}

	tris := make([][3]int, 0, len(prim.Vertices)-2)
	for i := 0; i+2 < len(prim.Vertices); i++ {
		if i%2 == 0 {
			tris = append(tris, [3]int{i, i + 1, i + 2})
		} else {
			tris = append(tris, [3]int{i + 1, i, i + 2})
		}
	}
	return tris

}

// Mesh is the aggregate output of one generation pass: an ordered list of Primitives.
type Mesh struct {
	Name       string
	Primitives []*Primitive
	Dimensions Dimensions
}

// NewMesh creates a new, empty Mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:       name,
		Primitives: []*Primitive{},
	}
}

// Add appends the given Primitives to the Mesh, in order.
func (mesh *Mesh) Add(prims ...*Primitive) {
	mesh.Primitives = append(mesh.Primitives, prims...)
}

// VertexCount returns the total number of vertices across all Primitives.
func (mesh *Mesh) VertexCount() int {
	count := 0
	for _, p := range mesh.Primitives {
		count += len(p.Vertices)
	}
	return count
}

// TriangleCount returns the total number of triangles across all Primitives.
func (mesh *Mesh) TriangleCount() int {
	count := 0
	for _, p := range mesh.Primitives {
		count += len(p.Triangles())
	}
	return count
}

// PrimitivesBySurface returns the Primitives drawn with the given Surface, in order.
func (mesh *Mesh) PrimitivesBySurface(surface Surface) []*Primitive {
	out := []*Primitive{}
	for _, p := range mesh.Primitives {
		if p.Surface == surface {
			out = append(out, p)
		}
	}
	return out
}

// UpdateBounds updates the mesh's dimensions; call this after manually changing vertex positions.
func (mesh *Mesh) UpdateBounds() {

	mesh.Dimensions[0] = NewVector(math.MaxFloat64, math.MaxFloat64, math.MaxFloat64)
	mesh.Dimensions[1] = NewVector(-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64)

	for _, p := range mesh.Primitives {

		for _, v := range p.Vertices {

			mesh.Dimensions[0].X = math.Min(mesh.Dimensions[0].X, v.Position.X)
			mesh.Dimensions[0].Y = math.Min(mesh.Dimensions[0].Y, v.Position.Y)
			mesh.Dimensions[0].Z = math.Min(mesh.Dimensions[0].Z, v.Position.Z)

			mesh.Dimensions[1].X = math.Max(mesh.Dimensions[1].X, v.Position.X)
			mesh.Dimensions[1].Y = math.Max(mesh.Dimensions[1].Y, v.Position.Y)
			mesh.Dimensions[1].Z = math.Max(mesh.Dimensions[1].Z, v.Position.Z)

		}

	}

	if mesh.VertexCount() == 0 {
		mesh.Dimensions = Dimensions{}
	}

}

// ComputeNormals sets each vertex's normal to the normalized sum of the face normals of the triangles that use it,
// within its own Primitive. Larger triangles weigh more; degenerate ones contribute nothing.
func (mesh *Mesh) ComputeNormals() {

	for _, p := range mesh.Primitives {

		sums := make([]Vector, len(p.Vertices))

		for _, tri := range p.Triangles() {
			a := p.Vertices[tri[0]].Position
			b := p.Vertices[tri[1]].Position
			c := p.Vertices[tri[2]].Position
			face := b.Sub(a).Cross(c.Sub(a))
			for _, i := range tri {
				sums[i] = sums[i].Add(face)
			}
		}

		for i := range p.Vertices {
			p.Vertices[i].Normal = sums[i].Unit()
		}

	}

}

// MeshSink is anything a finished Mesh can be handed to, along with the textures its Surfaces are drawn with.
type MeshSink interface {
	Submit(mesh *Mesh, textures TextureSet) error
}
