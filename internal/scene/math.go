package scene

import "math"

// Vec3 is a point or direction in world space.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns the unit vector along v, or the zero vector when v has no length.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

func sinDeg(a float64) float64 { return math.Sin(a * math.Pi / 180) }

func cosDeg(a float64) float64 { return math.Cos(a * math.Pi / 180) }

// RotateX rotates v about the x axis by deg degrees.
func RotateX(v Vec3, deg float64) Vec3 {
	s, c := sinDeg(deg), cosDeg(deg)
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

// RotateY rotates v about the y axis by deg degrees.
func RotateY(v Vec3, deg float64) Vec3 {
	s, c := sinDeg(deg), cosDeg(deg)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

// RotateZ rotates v about the z axis by deg degrees.
func RotateZ(v Vec3, deg float64) Vec3 {
	s, c := sinDeg(deg), cosDeg(deg)
	return Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
}

// MapRange linearly maps v from [inLo, inHi] to [outLo, outHi] without clamping.
func MapRange(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RGB is a colour with channels on the 0-255 scale.
type RGB struct {
	R, G, B float64
}

// Gray returns an RGB with all channels set to v.
func Gray(v float64) RGB { return RGB{v, v, v} }

// Clamped saturates every channel into [0, 255].
func (c RGB) Clamped() RGB {
	return RGB{Clamp(c.R, 0, 255), Clamp(c.G, 0, 255), Clamp(c.B, 0, 255)}
}
