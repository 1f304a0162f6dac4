package stadium3d

import (
	"math"
)

// ToRadians is a helper function to easily convert degrees to radians. Sections are configured in degrees; the arc math runs in radians.
func ToRadians(degrees float64) float64 {
	return math.Pi * degrees / 180
}

// finite reports whether none of the values are NaN or infinite.
func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// lerp interpolates between a and b. It is written as a weighted sum rather than a + (b-a)*t so that
// t == 1 gives b bit for bit; the last terrace step and the last arc sample rely on that.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func clamp[V float64 | float32 | int](value, min, max V) V {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// Set represents a Set of elements.
type Set[E comparable] map[E]struct{}

// newSet creates a new set.
func newSet[E comparable]() Set[E] {
	return Set[E]{}
}

// Add adds the given elements to a set.
func (s Set[E]) Add(element E) {
	s[element] = struct{}{}
}

// Contains returns if the set contains the given element.
func (s Set[E]) Contains(element E) bool {
	_, ok := s[element]
	return ok
}
