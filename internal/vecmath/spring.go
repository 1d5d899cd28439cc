package vecmath

import (
	"math"
	"strings"
)

// SpringHarmonicMotion describes the undamped oscillation of an ideal
// spring. springConstant is taken as ω² directly (k/m with unit mass) and
// x0 is the displacement at t=0.
//
// The equation is "f(x) = A * cos(ω * t)" for x0 >= 0. A negative x0 starts
// the motion half a cycle later and appends a literal " - π" phase term.
// springConstant < 0 yields a NaN ω; springConstant == 0 yields an
// infinite period.
func SpringHarmonicMotion(springConstant, x0 float64) (amplitude, period float64, equation string) {
	omega := math.Sqrt(springConstant)
	amplitude = math.Abs(x0)
	period = 2 * math.Pi / omega

	var b strings.Builder
	b.WriteString("f(x) = ")
	b.WriteString(FormatFloat(amplitude))
	b.WriteString(" * cos(")
	b.WriteString(FormatFloat(omega))
	b.WriteString(" * t")
	if x0 < 0 {
		b.WriteString(" - ")
		b.WriteString(FormatFloat(math.Pi))
	}
	b.WriteString(")")

	return amplitude, period, b.String()
}

// Harmonic bundles the parameters of a spring oscillation.
type Harmonic struct {
	Amplitude float64
	Omega     float64
	Period    float64
	Phase     float64 // 0 or π
	Equation  string
}

// NewHarmonic builds the oscillation SpringHarmonicMotion describes.
func NewHarmonic(springConstant, x0 float64) Harmonic {
	amplitude, period, eq := SpringHarmonicMotion(springConstant, x0)
	h := Harmonic{
		Amplitude: amplitude,
		Omega:     math.Sqrt(springConstant),
		Period:    period,
		Equation:  eq,
	}
	if x0 < 0 {
		h.Phase = math.Pi
	}
	return h
}

// Displacement evaluates the equation at time t.
func (h Harmonic) Displacement(t float64) float64 {
	return h.Amplitude * math.Cos(h.Omega*t-h.Phase)
}

// Frequency returns 1/Period in hertz.
func (h Harmonic) Frequency() float64 {
	return 1 / h.Period
}

// Samples evaluates the displacement at n evenly spaced times covering
// the given number of periods. It returns nil when the period is not
// finite or n < 2.
func (h Harmonic) Samples(cycles float64, n int) (times, values []float64) {
	if n < 2 || math.IsNaN(h.Period) || math.IsInf(h.Period, 0) {
		return nil, nil
	}
	span := cycles * h.Period
	times = make([]float64, n)
	values = make([]float64, n)
	for i := 0; i < n; i++ {
		t := span * float64(i) / float64(n-1)
		times[i] = t
		values[i] = h.Displacement(t)
	}
	return times, values
}
