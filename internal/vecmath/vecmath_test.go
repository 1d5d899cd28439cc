package vecmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVectorComponents(t *testing.T) {
	tests := []struct {
		name      string
		magnitude float64
		direction float64
		x, y      float64
	}{
		{"east", 1, 0, 1, 0},
		{"north", 1, 90, 0, 1},
		{"west", 2, 180, -2, 0},
		{"south", 3, 270, 0, -3},
		{"diagonal", math.Sqrt2, 45, 1, 1},
		{"negative direction", 1, -90, 0, -1},
		{"full turn", 1, 360, 1, 0},
		{"zero magnitude", 0, 123, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := VectorComponents(tt.magnitude, tt.direction)
			if math.Abs(x-tt.x) > eps || math.Abs(y-tt.y) > eps {
				t.Errorf("VectorComponents(%v, %v) = (%v, %v), want (%v, %v)",
					tt.magnitude, tt.direction, x, y, tt.x, tt.y)
			}
		})
	}
}

func TestVectorComponents_Exact(t *testing.T) {
	x, y := VectorComponents(1, 0)
	if x != 1 || y != 0 {
		t.Errorf("expected (1, 0), got (%v, %v)", x, y)
	}
}

func TestVectorMagnitudeDirection(t *testing.T) {
	tests := []struct {
		name      string
		x, y      float64
		magnitude float64
		direction float64
	}{
		{"diagonal", 1, 1, math.Sqrt2, 45},
		{"negative x", -1, 0, 1, 180},
		{"positive y", 0, 5, 5, 90},
		{"negative y", 0, -1, 1, 270},
		{"third quadrant", -1, -1, math.Sqrt2, 225},
		{"pythagorean", 3, 4, 5, math.Atan2(4, 3) * 180 / math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, d := VectorMagnitudeDirection(tt.x, tt.y)
			if math.Abs(m-tt.magnitude) > eps {
				t.Errorf("magnitude = %v, want %v", m, tt.magnitude)
			}
			if math.Abs(d-tt.direction) > eps {
				t.Errorf("direction = %v, want %v", d, tt.direction)
			}
		})
	}
}

func TestVectorMagnitudeDirection_Origin(t *testing.T) {
	m, d := VectorMagnitudeDirection(0, 0)
	if m != 0 || d != 0 {
		t.Errorf("expected (0, 0) at origin, got (%v, %v)", m, d)
	}
}

func TestCartesianToSpherical(t *testing.T) {
	tests := []struct {
		name                     string
		x, y, z                  float64
		radius, polar, azimuthal float64
	}{
		{"z axis", 0, 0, 1, 1, 0, 0},
		{"negative z axis", 0, 0, -2, 2, math.Pi, 0},
		{"x axis", 3, 0, 0, 3, math.Pi / 2, 0},
		{"y axis", 0, 1, 0, 1, math.Pi / 2, math.Pi / 2},
		{"negative y axis", 0, -1, 0, 1, math.Pi / 2, 3 * math.Pi / 2},
		{"negative x axis", -1, 0, 0, 1, math.Pi / 2, math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, p, a := CartesianToSpherical(tt.x, tt.y, tt.z)
			if math.Abs(r-tt.radius) > eps || math.Abs(p-tt.polar) > eps || math.Abs(a-tt.azimuthal) > eps {
				t.Errorf("CartesianToSpherical(%v, %v, %v) = (%v, %v, %v), want (%v, %v, %v)",
					tt.x, tt.y, tt.z, r, p, a, tt.radius, tt.polar, tt.azimuthal)
			}
		})
	}
}

func TestCartesianToSpherical_OriginIsNaN(t *testing.T) {
	r, p, a := CartesianToSpherical(0, 0, 0)
	if r != 0 {
		t.Errorf("expected radius 0, got %v", r)
	}
	if !math.IsNaN(p) {
		t.Errorf("expected NaN polar angle at origin, got %v", p)
	}
	if a != 0 {
		t.Errorf("expected azimuthal 0, got %v", a)
	}
}

func TestSphericalToCartesian(t *testing.T) {
	x, y, z := SphericalToCartesian(2, math.Pi/2, math.Pi/2)
	if math.Abs(x) > eps || math.Abs(y-2) > eps || math.Abs(z) > eps {
		t.Errorf("expected (0, 2, 0), got (%v, %v, %v)", x, y, z)
	}

	x, y, z = SphericalToCartesian(1, 0, 1.234)
	if math.Abs(x) > eps || math.Abs(y) > eps || math.Abs(z-1) > eps {
		t.Errorf("expected (0, 0, 1), got (%v, %v, %v)", x, y, z)
	}
}

func TestSpringHarmonicMotion(t *testing.T) {
	tests := []struct {
		name      string
		k, x0     float64
		amplitude float64
		period    float64
		equation  string
	}{
		{"positive start", 4, 2, 2, math.Pi, "f(x) = 2.0 * cos(2.0 * t)"},
		{"negative start", 4, -2, 2, math.Pi, "f(x) = 2.0 * cos(2.0 * t - 3.141592653589793)"},
		{"at rest", 9, 0, 0, 2 * math.Pi / 3, "f(x) = 0.0 * cos(3.0 * t)"},
		{"fractional", 0.25, 1.5, 1.5, 4 * math.Pi, "f(x) = 1.5 * cos(0.5 * t)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, p, eq := SpringHarmonicMotion(tt.k, tt.x0)
			if a != tt.amplitude {
				t.Errorf("amplitude = %v, want %v", a, tt.amplitude)
			}
			if math.Abs(p-tt.period) > eps {
				t.Errorf("period = %v, want %v", p, tt.period)
			}
			if eq != tt.equation {
				t.Errorf("equation = %q, want %q", eq, tt.equation)
			}
		})
	}
}

func TestSpringHarmonicMotion_Degenerate(t *testing.T) {
	_, period, eq := SpringHarmonicMotion(0, 1)
	if !math.IsInf(period, 1) {
		t.Errorf("expected +Inf period for zero stiffness, got %v", period)
	}
	if eq != "f(x) = 1.0 * cos(0.0 * t)" {
		t.Errorf("unexpected equation %q", eq)
	}

	_, period, eq = SpringHarmonicMotion(-4, 1)
	if !math.IsNaN(period) {
		t.Errorf("expected NaN period for negative stiffness, got %v", period)
	}
	if eq != "f(x) = 1.0 * cos(NaN * t)" {
		t.Errorf("unexpected equation %q", eq)
	}
}

func TestHarmonic(t *testing.T) {
	h := NewHarmonic(4, -2)
	if h.Omega != 2 || h.Amplitude != 2 || h.Phase != math.Pi {
		t.Fatalf("unexpected harmonic %+v", h)
	}
	if got := h.Displacement(0); math.Abs(got-(-2)) > eps {
		t.Errorf("expected x(0) = x0 = -2, got %v", got)
	}
	if got := h.Displacement(h.Period); math.Abs(got-(-2)) > 1e-9 {
		t.Errorf("expected x(T) = -2, got %v", got)
	}
	if got := h.Frequency(); math.Abs(got-1/math.Pi) > eps {
		t.Errorf("expected frequency 1/pi, got %v", got)
	}

	h = NewHarmonic(1, 3)
	if got := h.Displacement(math.Pi / 2); math.Abs(got) > eps {
		t.Errorf("expected zero crossing at quarter period, got %v", got)
	}
}

func TestHarmonicSamples(t *testing.T) {
	h := NewHarmonic(4, 1)
	times, values := h.Samples(2, 101)
	if len(times) != 101 || len(values) != 101 {
		t.Fatalf("expected 101 samples, got %d/%d", len(times), len(values))
	}
	if times[0] != 0 || math.Abs(times[100]-2*math.Pi) > eps {
		t.Errorf("expected span [0, 2T], got [%v, %v]", times[0], times[100])
	}
	if math.Abs(values[0]-1) > eps {
		t.Errorf("expected first sample 1, got %v", values[0])
	}

	if times, _ := NewHarmonic(0, 1).Samples(1, 10); times != nil {
		t.Error("expected nil samples for infinite period")
	}
	if times, _ := h.Samples(1, 1); times != nil {
		t.Error("expected nil samples for n < 2")
	}
}

func TestChecks(t *testing.T) {
	if err := CheckSpherical(0, 0, 0); err != ErrOrigin {
		t.Errorf("expected ErrOrigin, got %v", err)
	}
	if err := CheckSpherical(0, 0, 1); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := CheckSpherical(math.NaN(), 0, 1); err != ErrNotFinite {
		t.Errorf("expected ErrNotFinite, got %v", err)
	}
	if err := CheckSpring(0); err != ErrNonPositiveStiffness {
		t.Errorf("expected ErrNonPositiveStiffness, got %v", err)
	}
	if err := CheckSpring(-1); err != ErrNonPositiveStiffness {
		t.Errorf("expected ErrNonPositiveStiffness, got %v", err)
	}
	if err := CheckSpring(math.Inf(1)); err != ErrNotFinite {
		t.Errorf("expected ErrNotFinite, got %v", err)
	}
	if err := CheckSpring(4); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestRadiansDegrees(t *testing.T) {
	if got := Radians(180); math.Abs(got-math.Pi) > eps {
		t.Errorf("Radians(180) = %v, want pi", got)
	}
	if got := Degrees(math.Pi / 2); math.Abs(got-90) > eps {
		t.Errorf("Degrees(pi/2) = %v, want 90", got)
	}
}
