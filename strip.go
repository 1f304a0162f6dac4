package stadium3d

// Texture tiling along an arc. Terrace surfaces repeat their texture 5 times per arc, walls 10 times.
const (
	TerraceTiling = 5.0
	WallTiling    = 10.0
)

// Profile is an ellipse (semi-axes RX and RY around the stadium center) at an elevation Z.
type Profile struct {
	RX, RY float64
	Z      float64
}

// Point returns the point of the Profile at the given arc sample.
func (p Profile) Point(center Vector, s ArcSample) Vector {
	return NewVector(center.X+p.RX*s.Cos, center.Y+p.RY*s.Sin, center.Z+p.Z)
}

// Grow returns a copy of the Profile with both semi-axes enlarged by the given offset.
func (p Profile) Grow(offset float64) Profile {
	p.RX += offset
	p.RY += offset
	return p
}

// At returns a copy of the Profile at the given elevation.
func (p Profile) At(z float64) Profile {
	p.Z = z
	return p
}

// RuledStrip is a surface swept along an Arc between two Profiles. Treads, risers, walls and the canopy are all
// RuledStrips; they only differ in which Profiles they're given. A canopy, for instance, simply has a To Profile that is
// smaller and lower than its From Profile.
type RuledStrip struct {
	Name    string
	Surface Surface
	Center  Vector
	From    Profile // The edge with T = 0
	To      Profile // The edge with T = 1
	Arc     Arc
	Tiling  float64 // How many times the texture repeats along the full Arc
}

// Primitive emits the RuledStrip as a triangle strip of 2*(segments+1) vertices, alternating To and From
// at each arc sample.
func (strip RuledStrip) Primitive() *Primitive {

	verts := make([]Vertex, 0, strip.Arc.Len()*2)

	for _, s := range strip.Arc.Samples() {
		u := s.Fraction * strip.Tiling
		top := strip.To.Point(strip.Center, s)
		bottom := strip.From.Point(strip.Center, s)
		verts = append(verts,
			NewVertex(top.X, top.Y, top.Z, u, 1),
			NewVertex(bottom.X, bottom.Y, bottom.Z, u, 0),
		)
	}

	prim := NewStrip(strip.Name, strip.Surface, verts...)
	prim.TileS = strip.Tiling
	return prim

}

// CapQuad returns a planar quad at a single angle, through four points given as Profiles (each profile
// contributes its point at that angle). Corners are textured (0,0), (1,0), (1,1), (0,1) in order.
func CapQuad(name string, surface Surface, center Vector, degrees float64, innerBase, outerBase, outerTop, innerTop Profile) *Primitive {

	s := NewArc(degrees, degrees, MinArcSegments).Sample(0)

	p0 := innerBase.Point(center, s)
	p1 := outerBase.Point(center, s)
	p2 := outerTop.Point(center, s)
	p3 := innerTop.Point(center, s)

	return NewQuad(name, surface,
		NewVertex(p0.X, p0.Y, p0.Z, 0, 0),
		NewVertex(p1.X, p1.Y, p1.Z, 1, 0),
		NewVertex(p2.X, p2.Y, p2.Z, 1, 1),
		NewVertex(p3.X, p3.Y, p3.Z, 0, 1),
	)

}
