package finger

import (
	"testing"

	"github.com/katalvlaran/fingerbox/geomkit"
)

func TestMemo_GetReturnsSameBackingArrayOnRepeat(t *testing.T) {
	memo := NewMemo()
	mat := MaterialConfig{Thickness: 3, FingerWidth: 10, FingerGap: 1.5}

	a, err := memo.Get(geomkit.AxisX, 100, mat)
	if err != nil {
		t.Fatalf("first get: %v", err)
	}
	b, err := memo.Get(geomkit.AxisX, 100, mat)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if &a.Points[0] != &b.Points[0] {
		t.Fatalf("expected identical backing array across repeated Get calls")
	}
}

func TestMemo_DifferentAxisDoesNotShareEntry(t *testing.T) {
	memo := NewMemo()
	mat := MaterialConfig{Thickness: 3, FingerWidth: 10, FingerGap: 1.5}

	x, _ := memo.Get(geomkit.AxisX, 100, mat)
	y, _ := memo.Get(geomkit.AxisY, 80, mat)
	if len(x.Points) == len(y.Points) && &x.Points[0] == &y.Points[0] {
		t.Fatalf("expected distinct entries for distinct axis/dim keys")
	}
}

func TestMemo_ClearForcesRecompute(t *testing.T) {
	memo := NewMemo()
	mat := MaterialConfig{Thickness: 3, FingerWidth: 10, FingerGap: 1.5}

	a, _ := memo.Get(geomkit.AxisX, 100, mat)
	memo.Clear()
	b, _ := memo.Get(geomkit.AxisX, 100, mat)
	if &a.Points[0] == &b.Points[0] {
		t.Fatalf("expected a fresh entry after Clear")
	}
}

func TestMemo_Clone_IsIndependent(t *testing.T) {
	memo := NewMemo()
	mat := MaterialConfig{Thickness: 3, FingerWidth: 10, FingerGap: 1.5}
	memo.Get(geomkit.AxisX, 100, mat)

	clone := memo.Clone()
	clone.Clear()
	if len(memo.entries) == 0 {
		t.Fatalf("expected original memo entries to survive clone's Clear")
	}
}
