package viz

import (
	"math"

	"github.com/san-kum/physutil/internal/calc"
)

// Point3 is a Cartesian point with z up.
type Point3 struct {
	X, Y, Z float64
}

func (p Point3) norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

func (p Point3) finite() bool {
	for _, v := range []float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Camera is an orthographic view. Yaw turns the scene about z, pitch
// raises the eye above the xy plane.
type Camera struct {
	Yaw, Pitch, Zoom float64
}

const (
	rotateStep = math.Pi / 12
	zoomStep   = 1.25
)

func NewCamera() *Camera {
	return &Camera{Yaw: -math.Pi / 6, Pitch: math.Pi / 8, Zoom: 1}
}

func (c *Camera) Rotate(dyaw, dpitch float64) {
	c.Yaw = math.Mod(c.Yaw+dyaw, 2*math.Pi)
	c.Pitch = math.Max(-math.Pi/2, math.Min(math.Pi/2, c.Pitch+dpitch))
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(8, c.Zoom*zoomStep) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.125, c.Zoom/zoomStep) }

// project maps p to screen coordinates with y up.
func (c *Camera) project(p Point3) (float64, float64) {
	cy, sy := math.Cos(c.Yaw), math.Sin(c.Yaw)
	x := p.X*cy - p.Y*sy
	depth := p.X*sy + p.Y*cy
	return x, p.Z*math.Cos(c.Pitch) + depth*math.Sin(c.Pitch)
}

// RenderVector draws v as a line from the origin over labelled axes. Planar
// vectors are drawn from above and skip the z axis. It returns "" when v
// has a NaN or infinite component.
func RenderVector(v Point3, planar bool, cam *Camera, width, height int) string {
	if !v.finite() {
		return ""
	}
	if cam == nil {
		cam = NewCamera()
	}
	if planar {
		cam = &Camera{Pitch: math.Pi / 2, Zoom: cam.Zoom}
		v.Z = 0
	}

	c := NewCanvas(width, height)
	dw, dh := c.Dots()
	axis := math.Max(v.norm(), 1)
	scale := cam.Zoom * 0.45 * float64(min(dw, dh)) / axis
	toDots := func(p Point3) (int, int) {
		sx, sy := cam.project(p)
		return dw/2 + int(math.Round(sx*scale)), dh/2 - int(math.Round(sy*scale))
	}

	ox, oy := toDots(Point3{})
	axes := []struct {
		end   Point3
		label rune
	}{
		{Point3{X: axis}, 'x'},
		{Point3{Y: axis}, 'y'},
		{Point3{Z: axis}, 'z'},
	}
	if planar {
		axes = axes[:2]
	}
	for _, a := range axes {
		ax, ay := toDots(a.end)
		// dotted
		for i := 0; i <= 8; i += 2 {
			c.Set(ox+(ax-ox)*i/8, oy+(ay-oy)*i/8)
		}
		c.Label(ax, ay, a.label)
	}

	tx, ty := toDots(v)
	c.Line(ox, oy, tx, ty)
	c.Set(tx+1, ty)
	c.Set(tx, ty+1)
	c.Set(tx+1, ty+1)
	return c.String()
}

// VectorFor returns the Cartesian vector a result describes. planar is
// set for the two-dimensional calculations.
func VectorFor(res *calc.Result) (v Point3, planar, ok bool) {
	if res == nil {
		return Point3{}, false, false
	}
	var vals []calc.Value
	switch res.Calculation {
	case calc.Components, calc.Cartesian:
		vals = res.Outputs
	case calc.Polar, calc.Spherical:
		vals = res.Inputs
	default:
		return Point3{}, false, false
	}
	m := make(map[string]float64, len(vals))
	for _, val := range vals {
		m[val.Name] = val.Value
	}
	v = Point3{X: m["x"], Y: m["y"], Z: m["z"]}
	planar = res.Calculation == calc.Components || res.Calculation == calc.Polar
	return v, planar, true
}
