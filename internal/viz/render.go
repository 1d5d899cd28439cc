package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/physutil/internal/calc"
	"github.com/san-kum/physutil/internal/vecmath"
)

// RenderResult draws a calculation result as a bordered panel.
func RenderResult(res *calc.Result) string {
	if res == nil {
		return ""
	}

	width := labelWidth(res)
	var b strings.Builder
	b.WriteString(Title.Render(strings.ToUpper(res.Calculation)) + "\n")
	b.WriteString(Subtle.Render("inputs") + "\n")
	for _, v := range res.Inputs {
		b.WriteString(renderValue(v, width) + "\n")
	}
	b.WriteString(Subtle.Render("outputs") + "\n")
	for i, v := range res.Outputs {
		b.WriteString(renderValue(v, width))
		if i < len(res.Outputs)-1 {
			b.WriteString("\n")
		}
	}
	if res.Equation != "" {
		b.WriteString("\n\n" + Equation.Render(res.Equation))
	}
	return Panel.Render(b.String())
}

func renderValue(v calc.Value, width int) string {
	label := MetricLabel.Render(fmt.Sprintf("  %-*s", width, v.Name))
	s := vecmath.FormatFloat(v.Value)
	if math.IsNaN(v.Value) || math.IsInf(v.Value, 0) {
		return label + " " + Warning.Render(s)
	}
	return label + " " + MetricValue.Render(s)
}

func labelWidth(res *calc.Result) int {
	w := 0
	for _, v := range res.Inputs {
		w = max(w, len(v.Name))
	}
	for _, v := range res.Outputs {
		w = max(w, len(v.Name))
	}
	return w
}

// PlotDisplacement plots x(t) of a spring over the given number of
// periods. It returns "" when the period is not finite.
func PlotDisplacement(h vecmath.Harmonic, cycles float64, width, height int) string {
	_, values := h.Samples(cycles, width)
	if values == nil {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("%s, t in [0, %.3gs]", h.Equation, cycles*h.Period)),
	)
}

// HarmonicFor rebuilds the oscillation from a spring result.
func HarmonicFor(res *calc.Result) (vecmath.Harmonic, bool) {
	if res == nil || res.Calculation != calc.Spring {
		return vecmath.Harmonic{}, false
	}
	k, ok1 := res.Input("k")
	x0, ok2 := res.Input("x0")
	if !ok1 || !ok2 {
		return vecmath.Harmonic{}, false
	}
	return vecmath.NewHarmonic(k, x0), true
}
