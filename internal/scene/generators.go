package scene

const (
	SwirlPoints = 80
	RingCount   = 5
	RingPoints  = 80

	// MarkerRadius is the radius of the small sphere drawn at every swirl and ring point.
	MarkerRadius = 3.0

	SwirlStrokeWeight = 1.5
	RingStrokeWeight  = 1.2
)

// Marker is one generated point of the swirl or a ring, before the layer's
// z rotation is applied.
type Marker struct {
	Pos   Vec3
	Color RGB
}

// RingParameters are the per-ring offsets derived from the ring index.
type RingParameters struct {
	Index       int
	AngleOffset float64
	BaseRadius  float64
	Twist       float64
}

// Ring returns the derived parameters of ring j.
func Ring(j int) RingParameters {
	return RingParameters{
		Index:       j,
		AngleOffset: 15 * float64(j),
		BaseRadius:  220 + 40*float64(j),
		Twist:       30 * float64(j),
	}
}

// SwirlRotation is the z rotation of the whole swirl at frame t, in degrees.
func SwirlRotation(t int) float64 { return float64(t) * 0.3 }

// RingRotation is the z rotation of ring j at frame t, in degrees.
func RingRotation(t, j int) float64 { return SwirlRotation(t) + Ring(j).Twist }

// SwirlPoint returns point i of the spiral swirl at frame t. It does not
// depend on audio.
func SwirlPoint(t, i int) Marker {
	ft, fi := float64(t), float64(i)
	angle := fi*10 + ft*0.5
	radius := 180 + 20*sinDeg(fi+ft*0.02)
	return Marker{
		Pos: Vec3{
			X: radius * cosDeg(angle),
			Y: radius * sinDeg(angle),
			Z: 50 * sinDeg(fi*5+ft),
		},
		Color: RGB{
			R: 100 + 100*sinDeg(fi*0.1+ft*0.02),
			G: 100 + 100*sinDeg(fi*0.1+ft*0.03),
			B: 255,
		},
	}
}

// RingPoint returns point i of ring j at frame t. The mid-band energy shifts
// the colour phase of every channel.
func RingPoint(t, i, j int, energy float64) Marker {
	ft, fi, fj := float64(t), float64(i), float64(j)
	p := Ring(j)
	angle := fi*10 + ft*0.5 + p.AngleOffset
	radius := p.BaseRadius + 20*sinDeg(fi+ft*0.02+fj)
	shift := 0.01 * energy
	return Marker{
		Pos: Vec3{
			X: radius * cosDeg(angle),
			Y: radius * sinDeg(angle),
			Z: 50 * sinDeg(fi*5+ft+20*fj),
		},
		Color: RGB{
			R: 127 + 127*sinDeg(fi*0.15+ft*0.01+3*fj+shift),
			G: 127 + 127*cosDeg(fi*0.1+ft*0.015+1.5*fj+shift),
			B: 127 + 127*sinDeg(fi*0.2+ft*0.02+2*fj+shift),
		},
	}
}
