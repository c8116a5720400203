package finger_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/fingerbox/finger"
)

func basicMaterial() finger.MaterialConfig {
	return finger.MaterialConfig{Thickness: 3, FingerWidth: 10, FingerGap: 1.5}
}

func TestCalculate_RejectsInvalidMaterial(t *testing.T) {
	_, err := finger.Calculate(100, finger.MaterialConfig{Thickness: 0, FingerWidth: 10})
	if !errors.Is(err, finger.ErrInvalidMaterial) {
		t.Fatalf("expected ErrInvalidMaterial, got %v", err)
	}
}

func TestCalculate_RejectsTooShortAxis(t *testing.T) {
	_, err := finger.Calculate(5, basicMaterial())
	if !errors.Is(err, finger.ErrJointTooShort) {
		t.Fatalf("expected ErrJointTooShort, got %v", err)
	}
}

func TestCalculate_PointsStartAndEndOnATab(t *testing.T) {
	fd, err := finger.Calculate(100, basicMaterial())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fd.Points) < 2 {
		t.Fatalf("expected at least 2 transition points")
	}
	if !fd.IsTabRegion(0) {
		t.Fatalf("first region must be a tab")
	}
	lastRegion := len(fd.Points) - 2
	if !fd.IsTabRegion(lastRegion) {
		t.Fatalf("last region must be a tab")
	}
	if math.Abs(fd.Points[0]-fd.InnerOffset) > 1e-9 {
		t.Fatalf("first point must equal innerOffset")
	}
	want := fd.MaxJointLength - fd.InnerOffset
	if math.Abs(fd.Points[len(fd.Points)-1]-want) > 1e-9 {
		t.Fatalf("last point must equal jointLength-innerOffset, got %v want %v",
			fd.Points[len(fd.Points)-1], want)
	}
}

func TestCalculate_DeterministicForIdenticalInputs(t *testing.T) {
	a, err := finger.Calculate(100, basicMaterial())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := finger.Calculate(100, basicMaterial())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a.Points) != len(b.Points) {
		t.Fatalf("same inputs must produce same point count")
	}
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("same inputs must produce byte-identical points at index %d", i)
		}
	}
}

func TestCalculate_MonotonicPoints(t *testing.T) {
	fd, err := finger.Calculate(237, basicMaterial())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(fd.Points); i++ {
		if fd.Points[i] <= fd.Points[i-1] {
			t.Fatalf("points must be strictly increasing at index %d: %v", i, fd.Points)
		}
	}
}
