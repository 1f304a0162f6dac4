package stadium3d

import (
	"fmt"
	"log/slog"
)

// Build validates the Layout and assembles the stadium Mesh from it: the ground quad, then each section in order
// (terrace steps first for seating sections, then the section's wall), then the end caps in ascending angle order.
// The returned Mesh has its normals and bounds computed.
func Build(layout Layout) (*Mesh, error) {

	if err := layout.Validate(); err != nil {
		return nil, err
	}

	sections := layout.AngularSections()
	center := layout.Center()

	mesh := NewMesh(layout.Name)

	mesh.Add(groundQuad(layout.Ground, center))

	for _, section := range sections {

		if section.Role.IsSeating() {
			emitter := StepEmitter{
				Center:   center,
				Arc:      section.Arc(),
				Tiling:   TerraceTiling,
				EndQuads: layout.EndQuads,
			}
			for _, step := range section.TerraceSteps() {
				mesh.Add(emitter.Emit(fmt.Sprintf("%s/step-%02d", section.Name, step.Index), step)...)
			}
		}

		mesh.Add(wallStrip(section, center))

	}

	mesh.Add(endCaps(layout, sections)...)

	mesh.ComputeNormals()
	mesh.UpdateBounds()

	return mesh, nil

}

func wallStrip(section AngularSection, center Vector) *Primitive {
	return RuledStrip{
		Name:    section.Name + "/wall",
		Surface: SurfaceWall,
		Center:  center,
		From:    section.WallBase,
		To:      section.WallTop,
		Arc:     section.WallArc(),
		Tiling:  WallTiling,
	}.Primitive()
}

func groundQuad(ground GroundConfig, center Vector) *Primitive {

	s := ground.Size
	r := ground.Repeat
	z := center.Z + ground.Z

	quad := NewQuad("ground", SurfaceGround,
		NewVertex(center.X-s, center.Y-s, z, 0, 0),
		NewVertex(center.X+s, center.Y-s, z, r, 0),
		NewVertex(center.X+s, center.Y+s, z, r, r),
		NewVertex(center.X-s, center.Y+s, z, 0, r),
	)
	quad.TileS = r
	quad.TileT = r
	return quad

}

// endCaps emits one cap per seating boundary that the JunctionTable doesn't skip. Every corner but the outer-top one
// uses the standard seating and wall radii; the outer-top corner reaches the elevated wall where one begins or ends.
func endCaps(layout Layout, sections []AngularSection) []*Primitive {

	table := NewJunctionTable(sections)
	center := layout.Center()
	ground := layout.Seating.Ground

	innerBase := layout.Seating.Inner.At(ground)
	outerBase := layout.Seating.Outer.At(ground)
	innerTop := layout.Seating.Inner.At(ground + layout.CapInnerElevation)

	caps := []*Primitive{}

	for _, angle := range table.CapAngles() {

		outerTop := layout.StandardWallTop()
		if table.OuterTop(angle) == CapElevated {
			outerTop = layout.ElevatedWallTop()
		}

		caps = append(caps, CapQuad(fmt.Sprintf("cap-%03g", angle), SurfaceWall, center, angle, innerBase, outerBase, outerTop, innerTop))

	}

	return caps

}

// Generator holds a Layout and the Mesh built from it, rebuilding the Mesh only after the Layout changes.
// A Generator isn't safe for concurrent use.
type Generator struct {
	Logger *slog.Logger // Where rebuilds are logged; slog.Default() if nil

	layout Layout
	mesh   *Mesh
	dirty  bool
	builds int
}

// NewGenerator creates a new Generator for the given Layout. Nothing is built until Mesh() is called.
func NewGenerator(layout Layout) *Generator {
	return &Generator{
		layout: layout,
		dirty:  true,
	}
}

// Layout returns the Generator's current Layout.
func (gen *Generator) Layout() Layout {
	return gen.layout
}

// SetLayout replaces the Generator's Layout; the next call to Mesh() rebuilds.
func (gen *Generator) SetLayout(layout Layout) {
	gen.layout = layout
	gen.dirty = true
}

// Invalidate forces the next call to Mesh() to rebuild, even if the Layout hasn't changed.
func (gen *Generator) Invalidate() {
	gen.dirty = true
}

// Builds returns how many times the Generator has (successfully) built a Mesh.
func (gen *Generator) Builds() int {
	return gen.builds
}

// Mesh returns the Mesh for the current Layout, building it first if the Layout changed since the last build.
// If the build fails, the previous Mesh is discarded and the error returned; the Generator stays dirty.
func (gen *Generator) Mesh() (*Mesh, error) {

	if !gen.dirty && gen.mesh != nil {
		return gen.mesh, nil
	}

	logger := gen.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mesh, err := Build(gen.layout)
	if err != nil {
		gen.mesh = nil
		logger.Error("stadium build failed", "layout", gen.layout.Name, "err", err)
		return nil, err
	}

	gen.mesh = mesh
	gen.dirty = false
	gen.builds++

	logger.Debug("stadium built",
		"layout", gen.layout.Name,
		"sections", len(gen.layout.Sections),
		"primitives", len(mesh.Primitives),
		"triangles", mesh.TriangleCount(),
	)

	return mesh, nil

}
