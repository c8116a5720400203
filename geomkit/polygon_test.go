package geomkit_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fingerbox/geomkit"
)

func TestPolygon_WindingHelpers(t *testing.T) {
	// A square listed counter-clockwise in a Y-up frame.
	ccw := geomkit.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	if ccw.IsClockwise() {
		t.Fatalf("expected square to be detected counter-clockwise")
	}
	cw := ccw.EnsureClockwise()
	if !cw.IsClockwise() {
		t.Fatalf("EnsureClockwise must produce a clockwise ring")
	}
	backToCCW := cw.EnsureCounterClockwise()
	if backToCCW.IsClockwise() {
		t.Fatalf("EnsureCounterClockwise must produce a counter-clockwise ring")
	}
}

func TestPolygon_Bounds(t *testing.T) {
	p := geomkit.Polygon{{X: -2, Y: 3}, {X: 5, Y: -1}, {X: 0, Y: 0}}
	minX, minY, maxX, maxY := p.Bounds()
	if minX != -2 || minY != -1 || maxX != 5 || maxY != 3 {
		t.Fatalf("unexpected bounds: %v %v %v %v", minX, minY, maxX, maxY)
	}
}

func TestOutline_AddHoleForcesCCW(t *testing.T) {
	o := geomkit.NewOutline(geomkit.Polygon{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}})
	if !o.Outer.IsClockwise() {
		t.Fatalf("NewOutline must force the outer ring clockwise")
	}
	hole := geomkit.Polygon{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}} // clockwise as listed
	o.AddHole(hole)
	if o.Holes[0].IsClockwise() {
		t.Fatalf("AddHole must force holes counter-clockwise")
	}
}

func TestOutline_EqualTol(t *testing.T) {
	a := geomkit.NewOutline(geomkit.Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}})
	b := a.Clone()
	if !a.EqualTol(b, geomkit.OutlineTolerance) {
		t.Fatalf("clone must equal source within tolerance")
	}
	b.Outer[0].X += 1
	if a.EqualTol(b, geomkit.OutlineTolerance) {
		t.Fatalf("perturbed outline must not equal source")
	}
}

func TestSignedArea_Square(t *testing.T) {
	unit := geomkit.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	if math.Abs(math.Abs(unit.SignedArea())-2) > 1e-9 {
		t.Fatalf("expected |signed area| == 2*1 for unit square, got %v", unit.SignedArea())
	}
}
