package vecmath

import "math"

const (
	radPerDeg = math.Pi / 180
	degPerRad = 180 / math.Pi
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * radPerDeg }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * degPerRad }

// VectorComponents returns the x and y components of a vector given its
// magnitude and its direction in degrees from the positive x-axis.
func VectorComponents(magnitude, direction float64) (x, y float64) {
	rad := Radians(direction)
	x = magnitude * math.Cos(rad)
	y = magnitude * math.Sin(rad)
	return x, y
}

// VectorMagnitudeDirection returns the length of (x, y) and its direction
// in degrees, normalized into [0, 360). The zero vector maps to (0, 0).
func VectorMagnitudeDirection(x, y float64) (magnitude, direction float64) {
	magnitude = math.Sqrt(x*x + y*y)
	direction = Degrees(math.Atan2(y, x))
	if direction < 0 {
		direction += 360
	}
	return magnitude, direction
}
