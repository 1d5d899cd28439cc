// Package viz renders calculation results in the terminal.
//
// [RenderResult] draws a lipgloss panel, [PlotDisplacement] an asciigraph
// chart of a spring's x(t), [RenderVector] a braille figure of a vector over
// its axes, and [RunInteractive] starts a Bubble Tea calculator.
//
// # Key Bindings
//
//	j/k   - Move selection
//	Enter - Select calculation / edit parameter
//	h/l   - Nudge parameter by 0.1
//	s     - Compute
//	x     - Toggle strict mode
//	Esc   - Back
//	q     - Quit
//
// On a vector result h/j/k/l rotate the figure, +/- zoom and r resets the
// view.
package viz
