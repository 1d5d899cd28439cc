// Package vecmath provides closed-form vector and oscillator formulas.
//
// Every function is pure and operates on float64 values only:
//
//   - [VectorComponents]: polar (magnitude, degrees) to Cartesian (x, y)
//   - [VectorMagnitudeDirection]: Cartesian (x, y) to polar, direction in [0, 360)
//   - [CartesianToSpherical]: (x, y, z) to (radius, polar, azimuthal)
//   - [SphericalToCartesian]: (radius, polar, azimuthal) to (x, y, z)
//   - [SpringHarmonicMotion]: amplitude, period and equation of an ideal spring
//
// # Out-of-domain inputs
//
// The formulas never panic and never return an error. Inputs outside the
// physical domain produce NaN or Inf, which the caller sees unchanged:
//
//	r, polar, az := vecmath.CartesianToSpherical(0, 0, 0) // polar is NaN
//	_, period, _ := vecmath.SpringHarmonicMotion(0, 1)    // period is +Inf
//
// Callers that prefer explicit errors run the Check helpers first:
//
//	if err := vecmath.CheckSpherical(x, y, z); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// The package holds no state. All functions are safe for concurrent use.
package vecmath
