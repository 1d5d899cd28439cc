package vecmath

import (
	"errors"
	"math"
)

// Domain errors reported by the Check helpers.
var (
	// ErrOrigin indicates a spherical conversion of the zero vector.
	ErrOrigin = errors.New("vecmath: spherical conversion undefined at origin")

	// ErrNonPositiveStiffness indicates a spring constant <= 0.
	ErrNonPositiveStiffness = errors.New("vecmath: spring constant must be positive")

	// ErrNotFinite indicates a NaN or Inf input.
	ErrNotFinite = errors.New("vecmath: input is NaN or Inf")
)

// CheckFinite reports ErrNotFinite if any value is NaN or Inf.
func CheckFinite(vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNotFinite
		}
	}
	return nil
}

// CheckSpherical reports whether CartesianToSpherical yields finite angles
// for the given point.
func CheckSpherical(x, y, z float64) error {
	if err := CheckFinite(x, y, z); err != nil {
		return err
	}
	if x == 0 && y == 0 && z == 0 {
		return ErrOrigin
	}
	return nil
}

// CheckSpring reports whether springConstant gives a finite, real period.
func CheckSpring(springConstant float64) error {
	if err := CheckFinite(springConstant); err != nil {
		return err
	}
	if springConstant <= 0 {
		return ErrNonPositiveStiffness
	}
	return nil
}
