package scene

import "math"

const (
	PitchRange = 90.0
	YawRange   = 180.0

	fovY = 60.0
)

// Orientation is the mouse-driven rotation of the whole scene, in degrees.
type Orientation struct {
	Pitch float64
	Yaw   float64
}

// OrientationFromMouse maps the cursor across the viewport to a pitch in
// [-90, 90] (top to bottom) and a yaw in [-180, 180] (left to right). The
// cursor is not clamped, so positions outside the window extrapolate.
func OrientationFromMouse(mouseX, mouseY, width, height float64) Orientation {
	var o Orientation
	if height > 0 {
		o.Pitch = MapRange(mouseY, 0, height, -PitchRange, PitchRange)
	}
	if width > 0 {
		o.Yaw = MapRange(mouseX, 0, width, -YawRange, YawRange)
	}
	return o
}

// Apply rotates v by yaw about y and then by pitch about x.
func (o Orientation) Apply(v Vec3) Vec3 {
	return RotateX(RotateY(v, o.Yaw), o.Pitch)
}

// Projection is a perspective camera on the z axis looking at the origin,
// with a 60 degree vertical field of view sized so that the z=0 plane maps
// one unit to one pixel.
type Projection struct {
	Width, Height float64
	EyeZ          float64
	Near, Far     float64
}

func NewProjection(width, height float64) Projection {
	eyeZ := (height / 2) / math.Tan(fovY/2*math.Pi/180)
	return Projection{
		Width:  width,
		Height: height,
		EyeZ:   eyeZ,
		Near:   eyeZ / 10,
		Far:    eyeZ * 10,
	}
}

// Eye returns the camera position.
func (p Projection) Eye() Vec3 { return Vec3{0, 0, p.EyeZ} }

// Depth returns the distance of v from the eye along the view axis.
func (p Projection) Depth(v Vec3) float64 { return p.EyeZ - v.Z }

// Project maps v to screen pixels with the origin at the top-left corner.
// scale is the pixels-per-unit factor at v's depth. ok is false when v lies
// outside the near and far planes.
func (p Projection) Project(v Vec3) (x, y, scale float64, ok bool) {
	d := p.Depth(v)
	if d < p.Near || d > p.Far {
		return 0, 0, 0, false
	}
	scale = p.EyeZ / d
	return p.Width/2 + v.X*scale, p.Height/2 + v.Y*scale, scale, true
}
