// Package calc exposes the vecmath formulas as named calculations.
//
// A [Registry] maps names to [Calculation] values, each describing its
// ordered input parameters and outputs. The CLI, the interactive
// calculator and the batch runner all dispatch through it:
//
//	reg := calc.NewRegistry()
//	c, _ := reg.Get("spring")
//	res, err := c.Eval(map[string]float64{"k": 4, "x0": -2}, calc.Options{})
//
// [Batch] evaluates many jobs concurrently and returns results in job
// order.
package calc
