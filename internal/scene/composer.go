package scene

// FrameState is everything a frame is computed from besides the starfield.
type FrameState struct {
	T      int
	Energy float64

	MouseX, MouseY float64
	Width, Height  float64
}

// StarPoint is an unlit star in camera space.
type StarPoint struct {
	Pos  Vec3
	Gray float64
}

// Triangle is a shaded planet face in camera space, one colour per vertex.
type Triangle struct {
	V [3]Vec3
	C [3]RGB
}

// Layer is a set of markers in camera space drawn with one stroke weight.
type Layer struct {
	Markers      []Marker
	StrokeWeight float64
}

// Frame is the composed scene for one tick, ready to be projected.
type Frame struct {
	T           int
	Energy      float64
	Orientation Orientation
	Projection  Projection
	Background  RGB

	Stars  []StarPoint
	Planet []Triangle
	Swirl  Layer
	Rings  [RingCount]Layer
}

// Composer builds frames in a fixed layer order: starfield (unlit), planet,
// swirl, then rings 0 through RingCount-1.
type Composer struct {
	stars    *Starfield
	lights   Lights
	material Material
	sphere   Mesh
}

func NewComposer(stars *Starfield) *Composer {
	return &Composer{
		stars:    stars,
		lights:   DefaultLights(),
		material: PlanetMaterial(),
		sphere:   NewSphere(PlanetRadius, SphereDetailX, SphereDetailY),
	}
}

// Compose advances the starfield by one step and returns the frame for fs.
func (c *Composer) Compose(fs FrameState) Frame {
	f := Frame{
		T:           fs.T,
		Energy:      fs.Energy,
		Orientation: OrientationFromMouse(fs.MouseX, fs.MouseY, fs.Width, fs.Height),
		Projection:  NewProjection(fs.Width, fs.Height),
		Background:  RGB{},
	}

	c.composeStars(&f)

	// The point light is placed after the camera rotation, so it turns with
	// the scene; the planet spin below does not move it.
	lights := c.lights
	lights.PointPos = f.Orientation.Apply(lights.PointPos)

	f.Planet = c.composePlanet(f.T, f.Orientation, f.Projection.Eye(), lights)

	f.Swirl = Layer{Markers: make([]Marker, 0, SwirlPoints), StrokeWeight: SwirlStrokeWeight}
	swirlRot := SwirlRotation(f.T)
	for i := 0; i < SwirlPoints; i++ {
		m := SwirlPoint(f.T, i)
		m.Pos = f.Orientation.Apply(RotateZ(m.Pos, swirlRot))
		f.Swirl.Markers = append(f.Swirl.Markers, m)
	}

	for j := 0; j < RingCount; j++ {
		layer := Layer{Markers: make([]Marker, 0, RingPoints), StrokeWeight: RingStrokeWeight}
		rot := RingRotation(f.T, j)
		for i := 0; i < RingPoints; i++ {
			m := RingPoint(f.T, i, j, f.Energy)
			m.Pos = f.Orientation.Apply(RotateZ(m.Pos, rot))
			layer.Markers = append(layer.Markers, m)
		}
		f.Rings[j] = layer
	}
	return f
}

func (c *Composer) composeStars(f *Frame) {
	if c.stars == nil {
		return
	}
	c.stars.Advance()
	stars := c.stars.Stars()
	f.Stars = make([]StarPoint, len(stars))
	for i, st := range stars {
		f.Stars[i] = StarPoint{
			Pos:  f.Orientation.Apply(Vec3{st.X, st.Y, st.Z}),
			Gray: StarBrightness(st, f.T),
		}
	}
}

func (c *Composer) composePlanet(t int, o Orientation, eye Vec3, lights Lights) []Triangle {
	spin := float64(t) * PlanetSpinRate
	verts := make([]Vertex, len(c.sphere.Vertices))
	colors := make([]RGB, len(c.sphere.Vertices))
	for i, v := range c.sphere.Vertices {
		p := o.Apply(RotateY(v.Pos, spin))
		n := o.Apply(RotateY(v.Normal, spin))
		verts[i] = Vertex{Pos: p, Normal: n}
		colors[i] = Shade(p, n, eye, lights, c.material)
	}

	tris := make([]Triangle, 0, len(c.sphere.Indices)/6)
	for k := 0; k+2 < len(c.sphere.Indices); k += 3 {
		a, b, d := c.sphere.Indices[k], c.sphere.Indices[k+1], c.sphere.Indices[k+2]
		va, vb, vd := verts[a], verts[b], verts[d]
		centroid := va.Pos.Add(vb.Pos).Add(vd.Pos).Scale(1.0 / 3)
		normal := va.Normal.Add(vb.Normal).Add(vd.Normal)
		if normal.Dot(eye.Sub(centroid)) <= 0 {
			continue
		}
		tris = append(tris, Triangle{
			V: [3]Vec3{va.Pos, vb.Pos, vd.Pos},
			C: [3]RGB{colors[a], colors[b], colors[d]},
		})
	}
	return tris
}
