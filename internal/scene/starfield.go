package scene

import "math/rand"

const (
	// StarCount is the default size of the starfield.
	StarCount = 800

	StarBound      = 2000.0
	StarStep       = 10.0
	RecycleNearest = -1000.0

	StarMinBrightness = 50.0
	StarMaxBrightness = 255.0
	starTwinkle       = 30.0
)

// Star is one background particle.
type Star struct {
	X, Y, Z float64
}

// Starfield is the fixed set of background particles. Stars are recycled in
// place once they pass the camera and are never removed.
type Starfield struct {
	stars []Star
	rng   *rand.Rand
}

// NewStarfield places count stars uniformly in the cube [-StarBound, StarBound]^3.
func NewStarfield(count int, rng *rand.Rand) *Starfield {
	if count < 0 {
		count = 0
	}
	s := &Starfield{
		stars: make([]Star, count),
		rng:   rng,
	}
	for i := range s.stars {
		s.stars[i] = Star{
			X: s.uniform(-StarBound, StarBound),
			Y: s.uniform(-StarBound, StarBound),
			Z: s.uniform(-StarBound, StarBound),
		}
	}
	return s
}

func (s *Starfield) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Advance moves every star StarStep units towards the viewer. A star that
// crosses the far bound is re-seeded at the back of the field.
func (s *Starfield) Advance() {
	for i := range s.stars {
		st := &s.stars[i]
		st.Z += StarStep
		if st.Z > StarBound {
			s.recycle(st)
		}
	}
}

func (s *Starfield) recycle(st *Star) {
	st.X = s.uniform(-StarBound, StarBound)
	st.Y = s.uniform(-StarBound, StarBound)
	st.Z = s.uniform(-StarBound, RecycleNearest)
}

// Stars returns the current star positions. Callers must not modify the slice.
func (s *Starfield) Stars() []Star { return s.stars }

func (s *Starfield) Len() int { return len(s.stars) }

// StarBrightness returns the grey level of st at frame t: a depth fade from
// 255 (far) to 50 (near) plus a slow twinkle, clamped to [50, 255].
func StarBrightness(st Star, t int) float64 {
	base := MapRange(st.Z, -StarBound, StarBound, StarMaxBrightness, StarMinBrightness)
	twinkle := starTwinkle * sinDeg(float64(t)*0.1+st.X*0.001+st.Y*0.001)
	return Clamp(base+twinkle, StarMinBrightness, StarMaxBrightness)
}
