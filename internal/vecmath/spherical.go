package vecmath

import "math"

// CartesianToSpherical converts (x, y, z) to radius, polar angle in [0, π]
// and azimuthal angle in [0, 2π). At the origin the polar angle is NaN.
func CartesianToSpherical(x, y, z float64) (radius, polar, azimuthal float64) {
	radius = math.Sqrt(x*x + y*y + z*z)
	polar = math.Acos(z / radius)
	azimuthal = math.Atan2(y, x)
	if azimuthal < 0 {
		azimuthal += 2 * math.Pi
	}
	return radius, polar, azimuthal
}

// SphericalToCartesian is the inverse of CartesianToSpherical. Angles are
// in radians.
func SphericalToCartesian(radius, polar, azimuthal float64) (x, y, z float64) {
	sinP, cosP := math.Sincos(polar)
	sinA, cosA := math.Sincos(azimuthal)
	x = radius * sinP * cosA
	y = radius * sinP * sinA
	z = radius * cosP
	return x, y, z
}
