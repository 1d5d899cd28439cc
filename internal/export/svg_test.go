package export

import (
	"strings"
	"testing"

	"github.com/san-kum/physutil/internal/vecmath"
)

func TestDisplacementToSVG(t *testing.T) {
	svg := DisplacementToSVG(vecmath.NewHarmonic(4, 2), 2, 50, 400, 200)
	if !strings.HasPrefix(svg, "<?xml") {
		t.Fatalf("expected xml header, got %q", svg[:min(len(svg), 20)])
	}
	if !strings.Contains(svg, `width="400" height="200"`) {
		t.Error("expected canvas size in header")
	}
	if got := strings.Count(svg, " L"); got != 49 {
		t.Errorf("expected 49 line segments, got %d", got)
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("expected closing svg tag")
	}
}

func TestDisplacementToSVG_Degenerate(t *testing.T) {
	if svg := DisplacementToSVG(vecmath.NewHarmonic(0, 1), 2, 50, 400, 200); svg != "" {
		t.Error("expected empty svg for infinite period")
	}
	if svg := DisplacementToSVG(vecmath.NewHarmonic(4, 1), 2, 1, 400, 200); svg != "" {
		t.Error("expected empty svg for a single sample")
	}
}

func TestTrajectoryToSVG_Flat(t *testing.T) {
	svg := TrajectoryToSVG([]Point{{0, 1}, {1, 1}}, 100, 100, "#fff")
	if svg == "" {
		t.Fatal("flat trajectory should still render")
	}
	if strings.Contains(svg, "NaN") {
		t.Error("flat trajectory produced NaN coordinates")
	}
}

func TestVectorToSVG(t *testing.T) {
	svg := VectorToSVG(3, 4, 200, 200)
	if !strings.Contains(svg, "<polyline") {
		t.Error("expected arrow head")
	}
	if !strings.Contains(svg, `x1="100.0" y1="100.0" x2="148.0" y2="36.0"`) {
		t.Errorf("unexpected shaft in %s", svg)
	}

	if svg := VectorToSVG(0, 0, 200, 200); strings.Contains(svg, "<polyline") {
		t.Error("zero vector should have no arrow")
	}
	if svg := VectorToSVG(1, 2, 0, 200); svg != "" {
		t.Error("expected empty svg for zero width")
	}
}
