package scene

import "math"

const (
	PlanetRadius   = 120.0
	PlanetSpinRate = 0.2

	SphereDetailX = 24
	SphereDetailY = 16
)

// Lights is the lighting rig of the lit layers: one ambient term and a
// single point light.
type Lights struct {
	Ambient    RGB
	PointColor RGB
	PointPos   Vec3
}

// Material describes how a surface responds to Lights.
type Material struct {
	Ambient   RGB
	Specular  RGB
	Shininess float64
}

func DefaultLights() Lights {
	return Lights{
		Ambient:    Gray(20),
		PointColor: Gray(255),
		PointPos:   Vec3{0, 0, 300},
	}
}

// PlanetMaterial is the reflective grey with a white-blue highlight used for
// the central sphere.
func PlanetMaterial() Material {
	return Material{
		Ambient:   Gray(80),
		Specular:  RGB{200, 200, 255},
		Shininess: 100,
	}
}

func modulate(a, b RGB, k float64) RGB {
	return RGB{a.R * b.R / 255 * k, a.G * b.G / 255 * k, a.B * b.B / 255 * k}
}

// Shade returns the Phong colour of a surface point seen from eye. normal
// must be unit length. The material's ambient colour doubles as its diffuse
// colour.
func Shade(pos, normal, eye Vec3, l Lights, m Material) RGB {
	c := modulate(l.Ambient, m.Ambient, 1)

	toLight := l.PointPos.Sub(pos).Normalize()
	lambert := normal.Dot(toLight)
	if lambert <= 0 {
		return c.Clamped()
	}
	d := modulate(l.PointColor, m.Ambient, lambert)
	c = RGB{c.R + d.R, c.G + d.G, c.B + d.B}

	reflected := normal.Scale(2 * lambert).Sub(toLight)
	toEye := eye.Sub(pos).Normalize()
	if rv := reflected.Dot(toEye); rv > 0 {
		s := modulate(l.PointColor, m.Specular, math.Pow(rv, m.Shininess))
		c = RGB{c.R + s.R, c.G + s.G, c.B + s.B}
	}
	return c.Clamped()
}

// Vertex is a mesh vertex with a unit normal.
type Vertex struct {
	Pos    Vec3
	Normal Vec3
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// NewSphere builds a UV sphere of the given radius with detailX segments
// around the y axis and detailY bands from pole to pole.
func NewSphere(radius float64, detailX, detailY int) Mesh {
	if detailX < 3 {
		detailX = 3
	}
	if detailY < 2 {
		detailY = 2
	}
	var m Mesh
	for i := 0; i <= detailY; i++ {
		phi := math.Pi*float64(i)/float64(detailY) - math.Pi/2
		for j := 0; j <= detailX; j++ {
			theta := 2 * math.Pi * float64(j) / float64(detailX)
			n := Vec3{
				X: math.Cos(phi) * math.Sin(theta),
				Y: math.Sin(phi),
				Z: math.Cos(phi) * math.Cos(theta),
			}
			m.Vertices = append(m.Vertices, Vertex{Pos: n.Scale(radius), Normal: n})
		}
	}
	row := detailX + 1
	for i := 0; i < detailY; i++ {
		for j := 0; j < detailX; j++ {
			a := uint16(i*row + j)
			b := a + 1
			c := a + uint16(row)
			d := c + 1
			m.Indices = append(m.Indices, a, b, c, c, b, d)
		}
	}
	return m
}
