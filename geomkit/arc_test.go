package geomkit_test

import (
	"testing"

	"github.com/katalvlaran/fingerbox/geomkit"
)

func TestCircle_HasAtLeastMinSegments(t *testing.T) {
	c := geomkit.Circle(geomkit.Point2{}, 10, 4)
	if len(c) < geomkit.MinCircleSegments {
		t.Fatalf("expected at least %d points, got %d", geomkit.MinCircleSegments, len(c))
	}
	for _, p := range c {
		d := p.Dist(geomkit.Point2{})
		if d < 9.999 || d > 10.001 {
			t.Fatalf("point %v not on circle of radius 10", p)
		}
	}
}

func TestRoundedRect_ZeroRadiusIsFourPoints(t *testing.T) {
	r := geomkit.RoundedRect(geomkit.Point2{}, 10, 6, 0)
	if len(r) != 4 {
		t.Fatalf("expected 4 points for zero radius, got %d", len(r))
	}
}

func TestRoundedRect_ClampsRadiusToShorterSide(t *testing.T) {
	r := geomkit.RoundedRect(geomkit.Point2{}, 10, 6, 100)
	minX, minY, maxX, maxY := r.Bounds()
	if maxX-minX > 10.001 || maxY-minY > 6.001 {
		t.Fatalf("rounded rect escaped its nominal bounds: %v %v %v %v", minX, minY, maxX, maxY)
	}
}

func TestSampleArc_EndpointsMatchAngles(t *testing.T) {
	arc := geomkit.SampleArc(geomkit.Point2{}, 5, 0, 1.5707963267948966, geomkit.MinFilletSamples)
	if len(arc) != geomkit.MinFilletSamples+1 {
		t.Fatalf("expected %d points, got %d", geomkit.MinFilletSamples+1, len(arc))
	}
	first, last := arc[0], arc[len(arc)-1]
	if first.Dist(geomkit.Point2{X: 5}) > 1e-9 {
		t.Fatalf("arc must start at angle 0: %v", first)
	}
	if last.Dist(geomkit.Point2{Y: 5}) > 1e-9 {
		t.Fatalf("arc must end at angle 90deg: %v", last)
	}
}
