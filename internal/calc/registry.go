package calc

import (
	"fmt"
	"sort"

	"github.com/san-kum/physutil/internal/vecmath"
)

const (
	Components = "components"
	Polar      = "polar"
	Spherical  = "spherical"
	Cartesian  = "cartesian"
	Spring     = "spring"
)

type evalFunc func(args []float64, opts Options) (outputs []float64, equation string, err error)

// Calculation describes one formula with ordered parameter and output names.
type Calculation struct {
	Name        string
	Description string
	Params      []string
	Outputs     []string
	eval        evalFunc
}

// Eval runs the calculation with inputs keyed by parameter name.
func (c Calculation) Eval(in map[string]float64, opts Options) (*Result, error) {
	args := make([]float64, len(c.Params))
	for i, p := range c.Params {
		v, ok := in[p]
		if !ok {
			return nil, fmt.Errorf("%w: %s requires %q", ErrMissingParam, c.Name, p)
		}
		args[i] = v
	}
	if len(in) > len(c.Params) {
		for name := range in {
			if !c.hasParam(name) {
				return nil, fmt.Errorf("%w: %s has no parameter %q", ErrUnknownParam, c.Name, name)
			}
		}
	}
	return c.EvalArgs(args, opts)
}

// EvalArgs runs the calculation with positional arguments in Params order.
func (c Calculation) EvalArgs(args []float64, opts Options) (*Result, error) {
	if len(args) != len(c.Params) {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrArgCount, c.Name, len(c.Params), len(args))
	}
	if opts.Strict {
		if err := vecmath.CheckFinite(args...); err != nil {
			return nil, err
		}
	}

	outs, eq, err := c.eval(args, opts)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Calculation: c.Name,
		Inputs:      make([]Value, len(args)),
		Outputs:     make([]Value, len(outs)),
		Equation:    eq,
	}
	for i, v := range args {
		res.Inputs[i] = Value{Name: c.Params[i], Value: v}
	}
	for i, v := range outs {
		res.Outputs[i] = Value{Name: c.Outputs[i], Value: v}
	}
	return res, nil
}

func (c Calculation) hasParam(name string) bool {
	for _, p := range c.Params {
		if p == name {
			return true
		}
	}
	return false
}

type Registry struct {
	calcs map[string]Calculation
}

func NewRegistry() *Registry {
	r := &Registry{calcs: make(map[string]Calculation)}

	r.register(Calculation{
		Name:        Components,
		Description: "vector components from magnitude and direction (degrees)",
		Params:      []string{"magnitude", "direction"},
		Outputs:     []string{"x", "y"},
		eval: func(a []float64, _ Options) ([]float64, string, error) {
			x, y := vecmath.VectorComponents(a[0], a[1])
			return []float64{x, y}, "", nil
		},
	})
	r.register(Calculation{
		Name:        Polar,
		Description: "magnitude and direction (degrees) from components",
		Params:      []string{"x", "y"},
		Outputs:     []string{"magnitude", "direction"},
		eval: func(a []float64, _ Options) ([]float64, string, error) {
			m, d := vecmath.VectorMagnitudeDirection(a[0], a[1])
			return []float64{m, d}, "", nil
		},
	})
	r.register(Calculation{
		Name:        Spherical,
		Description: "spherical coordinates (radians) from cartesian",
		Params:      []string{"x", "y", "z"},
		Outputs:     []string{"radius", "polar", "azimuthal"},
		eval: func(a []float64, opts Options) ([]float64, string, error) {
			if opts.Strict {
				if err := vecmath.CheckSpherical(a[0], a[1], a[2]); err != nil {
					return nil, "", err
				}
			}
			rad, pol, az := vecmath.CartesianToSpherical(a[0], a[1], a[2])
			return []float64{rad, pol, az}, "", nil
		},
	})
	r.register(Calculation{
		Name:        Cartesian,
		Description: "cartesian coordinates from spherical (radians)",
		Params:      []string{"radius", "polar", "azimuthal"},
		Outputs:     []string{"x", "y", "z"},
		eval: func(a []float64, _ Options) ([]float64, string, error) {
			x, y, z := vecmath.SphericalToCartesian(a[0], a[1], a[2])
			return []float64{x, y, z}, "", nil
		},
	})
	r.register(Calculation{
		Name:        Spring,
		Description: "simple harmonic motion of an ideal spring",
		Params:      []string{"k", "x0"},
		Outputs:     []string{"amplitude", "period"},
		eval: func(a []float64, opts Options) ([]float64, string, error) {
			if opts.Strict {
				if err := vecmath.CheckSpring(a[0]); err != nil {
					return nil, "", err
				}
			}
			amp, period, eq := vecmath.SpringHarmonicMotion(a[0], a[1])
			return []float64{amp, period}, eq, nil
		},
	})

	return r
}

func (r *Registry) register(c Calculation) {
	r.calcs[c.Name] = c
}

func (r *Registry) Get(name string) (Calculation, error) {
	c, ok := r.calcs[name]
	if !ok {
		return Calculation{}, fmt.Errorf("%w: %s", ErrUnknownCalculation, name)
	}
	return c, nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.calcs))
	for name := range r.calcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
