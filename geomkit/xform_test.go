package geomkit_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fingerbox/geomkit"
)

func TestMat3_RotZ90AppliesToUnitX(t *testing.T) {
	m := geomkit.RotZ(math.Pi / 2)
	got := m.Apply(geomkit.Vec3{X: 1})
	want := geomkit.Vec3{X: 0, Y: 1, Z: 0}
	if !got.EqualTol(want, 1e-9) {
		t.Fatalf("RotZ(90deg) on +X = %v, want %v", got, want)
	}
}

func TestTransform3D_ComposeTranslatesAndRotates(t *testing.T) {
	world := geomkit.Transform3D{Pos: geomkit.Vec3{X: 100}, Rot: geomkit.Identity3()}
	local := geomkit.Transform3D{Pos: geomkit.Vec3{Y: 5}, Rot: geomkit.RotY(math.Pi / 2)}
	composed := world.Compose(local)

	if !composed.Pos.EqualTol(geomkit.Vec3{X: 100, Y: 5}, 1e-9) {
		t.Fatalf("composed position = %v", composed.Pos)
	}
	// RotY(90deg) applied to +Z should map to +X in local frame.
	got := composed.Rot.Apply(geomkit.Vec3{Z: 1})
	if !got.EqualTol(geomkit.Vec3{X: 1}, 1e-9) {
		t.Fatalf("composed rotation mismatch: %v", got)
	}
}

func TestTransform3D_EulerXYZRoundTripsIdentity(t *testing.T) {
	e := geomkit.Identity3D().EulerXYZ()
	if e.X != 0 || e.Y != 0 || e.Z != 0 {
		t.Fatalf("identity transform must decompose to zero Euler angles, got %+v", e)
	}
}

func TestTransform3D_EulerXYZHandlesGimbalLock(t *testing.T) {
	tr := geomkit.Transform3D{Rot: geomkit.RotY(math.Pi / 2)}
	e := tr.EulerXYZ()
	if math.Abs(e.Y-math.Pi/2) > 1e-9 {
		t.Fatalf("expected pitch == +90deg at gimbal lock, got %v", e.Y)
	}
}

func TestBounds3D_Center(t *testing.T) {
	b := geomkit.Bounds3D{X: 0, Y: 0, Z: 0, W: 100, H: 80, D: 60}
	c := b.Center()
	if c != (geomkit.Vec3{X: 50, Y: 40, Z: 30}) {
		t.Fatalf("unexpected center: %v", c)
	}
}
