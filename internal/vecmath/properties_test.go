package vecmath_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/physutil/internal/vecmath"
)

const samples = 500

// angleDiff returns the distance between two angles on a circle of the
// given period.
func angleDiff(a, b, period float64) float64 {
	d := math.Mod(math.Abs(a-b), period)
	return math.Min(d, period-d)
}

var _ = Describe("polar conversion", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(GinkgoRandomSeed()))
	})

	It("recovers magnitude and direction from components", func() {
		for i := 0; i < samples; i++ {
			magnitude := 0.01 + rng.Float64()*100
			direction := rng.Float64() * 360

			x, y := vecmath.VectorComponents(magnitude, direction)
			m, d := vecmath.VectorMagnitudeDirection(x, y)

			Expect(m).To(BeNumerically("~", magnitude, 1e-9*magnitude+1e-12))
			Expect(angleDiff(d, direction, 360)).To(BeNumerically("<", 1e-9))
		}
	})

	It("keeps direction in [0, 360)", func() {
		for i := 0; i < samples; i++ {
			x := rng.NormFloat64() * 10
			y := rng.NormFloat64() * 10
			_, d := vecmath.VectorMagnitudeDirection(x, y)
			Expect(d).To(BeNumerically(">=", 0))
			Expect(d).To(BeNumerically("<", 360))
		}
	})

	It("matches the documented cases", func() {
		x, y := vecmath.VectorComponents(1, 90)
		Expect(x).To(BeNumerically("~", 0, 1e-12))
		Expect(y).To(BeNumerically("~", 1, 1e-12))

		m, d := vecmath.VectorMagnitudeDirection(1, 1)
		Expect(m).To(BeNumerically("~", 1.4142, 1e-4))
		Expect(d).To(BeNumerically("~", 45, 1e-9))

		m, d = vecmath.VectorMagnitudeDirection(-1, 0)
		Expect(m).To(Equal(1.0))
		Expect(d).To(BeNumerically("~", 180, 1e-9))
	})
})

var _ = Describe("spherical conversion", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(GinkgoRandomSeed()))
	})

	It("round-trips points away from the origin", func() {
		for i := 0; i < samples; i++ {
			x := rng.NormFloat64() * 50
			y := rng.NormFloat64() * 50
			z := rng.NormFloat64() * 50
			if x == 0 && y == 0 && z == 0 {
				continue
			}

			gx, gy, gz := vecmath.SphericalToCartesian(vecmath.CartesianToSpherical(x, y, z))
			scale := math.Max(1, math.Sqrt(x*x+y*y+z*z))

			Expect(gx).To(BeNumerically("~", x, 1e-9*scale))
			Expect(gy).To(BeNumerically("~", y, 1e-9*scale))
			Expect(gz).To(BeNumerically("~", z, 1e-9*scale))
		}
	})

	It("keeps angles in range", func() {
		for i := 0; i < samples; i++ {
			_, polar, az := vecmath.CartesianToSpherical(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
			Expect(polar).To(BeNumerically(">=", 0))
			Expect(polar).To(BeNumerically("<=", math.Pi))
			Expect(az).To(BeNumerically(">=", 0))
			Expect(az).To(BeNumerically("<", 2*math.Pi))
		}
	})

	It("maps the z axis to zero angles", func() {
		r, polar, az := vecmath.CartesianToSpherical(0, 0, 1)
		Expect(r).To(Equal(1.0))
		Expect(polar).To(Equal(0.0))
		Expect(az).To(Equal(0.0))
	})

	It("propagates NaN at the origin", func() {
		_, polar, _ := vecmath.CartesianToSpherical(0, 0, 0)
		Expect(math.IsNaN(polar)).To(BeTrue())
		Expect(vecmath.CheckSpherical(0, 0, 0)).To(MatchError(vecmath.ErrOrigin))
	})
})

var _ = Describe("spring harmonic motion", func() {
	It("derives amplitude, period and equation", func() {
		a, p, eq := vecmath.SpringHarmonicMotion(4, 2)
		Expect(a).To(Equal(2.0))
		Expect(p).To(BeNumerically("~", math.Pi, 1e-15))
		Expect(eq).To(Equal("f(x) = 2.0 * cos(2.0 * t)"))
	})

	It("appends a literal pi phase for negative displacement", func() {
		_, _, eq := vecmath.SpringHarmonicMotion(4, -2)
		Expect(eq).To(HaveSuffix("- 3.141592653589793)"))
	})

	It("starts every oscillation at x0", func() {
		rng := rand.New(rand.NewSource(GinkgoRandomSeed()))
		for i := 0; i < samples; i++ {
			k := 0.1 + rng.Float64()*20
			x0 := rng.NormFloat64() * 5
			h := vecmath.NewHarmonic(k, x0)
			Expect(h.Displacement(0)).To(BeNumerically("~", x0, 1e-12))
			Expect(h.Period * h.Omega).To(BeNumerically("~", 2*math.Pi, 1e-12))
		}
	})
})
