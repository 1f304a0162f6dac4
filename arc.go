package stadium3d

import (
	"iter"
	"math"
)

// MinArcSegments is the smallest tessellation an Arc will use; anything lower is raised to it.
const MinArcSegments = 2

// An Arc is an angular range (in degrees) split into an even number of segments. Every surface the
// generator emits is swept along an Arc.
type Arc struct {
	Start, End float64 // Start and end angle, in degrees
	segments   int
}

// ArcSample is one angle along an Arc.
type ArcSample struct {
	Degrees  float64 // The angle in degrees
	Cos, Sin float64 // Cosine and sine of the angle
	Fraction float64 // How far along the Arc this sample is, from 0 at Start to 1 at End
}

// NewArc creates a new Arc from start to end (in degrees), split into the given number of segments.
// A segment count below MinArcSegments is clamped up to it so that zero-width strips can't happen.
func NewArc(start, end float64, segments int) Arc {
	if segments < MinArcSegments {
		segments = MinArcSegments
	}
	return Arc{Start: start, End: end, segments: segments}
}

// Segments returns the (clamped) segment count of the Arc.
func (arc Arc) Segments() int {
	if arc.segments < MinArcSegments {
		return MinArcSegments
	}
	return arc.segments
}

// Len returns the number of samples the Arc yields, which is Segments()+1.
func (arc Arc) Len() int {
	return arc.Segments() + 1
}

// Sample returns the i-th sample of the Arc. The first sample is exactly Start, and the last is exactly End.
func (arc Arc) Sample(i int) ArcSample {
	fraction := float64(i) / float64(arc.Segments())
	degrees := lerp(arc.Start, arc.End, fraction)
	sin, cos := math.Sincos(ToRadians(degrees))
	return ArcSample{
		Degrees:  degrees,
		Cos:      cos,
		Sin:      sin,
		Fraction: fraction,
	}
}

// Samples returns a sequence of the Arc's Segments()+1 evenly spaced samples, inclusive of both ends.
// Nothing is computed until the sequence is ranged over, and it can be ranged over any number of times.
func (arc Arc) Samples() iter.Seq2[int, ArcSample] {
	return func(yield func(int, ArcSample) bool) {
		for i := 0; i < arc.Len(); i++ {
			if !yield(i, arc.Sample(i)) {
				return
			}
		}
	}
}

// Angles returns every sample angle of the Arc, in degrees.
func (arc Arc) Angles() []float64 {
	angles := make([]float64, 0, arc.Len())
	for _, s := range arc.Samples() {
		angles = append(angles, s.Degrees)
	}
	return angles
}
