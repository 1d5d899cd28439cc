package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/physutil/internal/vecmath"
)

// Point is a 2D sample.
type Point struct{ X, Y float64 }

// DisplacementToSVG draws x(t) of a spring oscillation over the given
// number of periods.
func DisplacementToSVG(h vecmath.Harmonic, cycles float64, samples, width, height int) string {
	times, values := h.Samples(cycles, samples)
	if times == nil {
		return ""
	}
	points := make([]Point, len(times))
	for i := range times {
		points[i] = Point{X: times[i], Y: values[i]}
	}
	return TrajectoryToSVG(points, width, height, "#00ff88")
}

// TrajectoryToSVG creates an SVG polyline from point data
func TrajectoryToSVG(points []Point, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder
	writeHeader(&sb, width, height)
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// VectorToSVG draws the vector (x, y) as an arrow from the centre of the
// canvas, scaled so the arrow fills 80% of the half-width.
func VectorToSVG(x, y float64, width, height int) string {
	mag := math.Hypot(x, y)
	if math.IsNaN(mag) || math.IsInf(mag, 0) || width <= 0 || height <= 0 {
		return ""
	}

	cx, cy := float64(width)/2, float64(height)/2
	scale := 0.0
	if mag > 0 {
		scale = 0.8 * math.Min(cx, cy) / mag
	}
	tx := cx + x*scale
	ty := cy - y*scale

	var sb strings.Builder
	writeHeader(&sb, width, height)
	sb.WriteString(fmt.Sprintf(`<g stroke="#444466" stroke-width="1">
<line x1="0" y1="%.1f" x2="%d" y2="%.1f"/>
<line x1="%.1f" y1="0" x2="%.1f" y2="%d"/>
</g>
`, cy, width, cy, cx, cx, height))

	if mag > 0 {
		// Arrow head: two short strokes at ±25° from the shaft.
		ang := math.Atan2(cy-ty, tx-cx)
		head := 0.1 * math.Min(cx, cy)
		lx := tx - head*math.Cos(ang-0.436)
		ly := ty + head*math.Sin(ang-0.436)
		rx := tx - head*math.Cos(ang+0.436)
		ry := ty + head*math.Sin(ang+0.436)

		sb.WriteString(fmt.Sprintf(`<g stroke="#00ccff" stroke-width="2" fill="none">
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
<polyline points="%.1f,%.1f %.1f,%.1f %.1f,%.1f"/>
</g>
`, cx, cy, tx, ty, lx, ly, tx, ty, rx, ry))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func writeHeader(sb *strings.Builder, width, height int) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))
}
