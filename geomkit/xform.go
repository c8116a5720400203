// File: xform.go
// Role: Bounds3D and rigid-transform composition (Mat3 + Transform3D).
//
// Rotations in this engine are always compositions of axis-aligned 90°
// rotations (a panel is bolted flat against one of six faces or splits an
// interior void along one axis), so a full 3×3 orientation matrix is more
// than the domain strictly needs — but it is the correct, general way to
// *compose* an assembly's own world transform with a panel's local one
// (spec §4.5: "Assembly's own world transform is composed in"), and it is
// what lets SubAssembly nesting compose to arbitrary depth without special
// casing. Decomposition back to Euler angles happens once, at snapshot
// time (see the snapshot package), matching spec §6's wire format.
package geomkit

import "math"

// Bounds3D is an axis-aligned box: origin at one corner, non-negative
// extents along each axis.
type Bounds3D struct {
	X, Y, Z float64
	W, H, D float64
}

// Center returns the bounds' midpoint.
func (b Bounds3D) Center() Vec3 {
	return Vec3{b.X + b.W/2, b.Y + b.H/2, b.Z + b.D/2}
}

// Mat3 is a 3×3 row-major rotation matrix.
type Mat3 [3][3]float64

// Identity3 returns the identity rotation.
func Identity3() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// RotX returns a right-handed rotation of theta radians about +X.
func RotX(theta float64) Mat3 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotY returns a right-handed rotation of theta radians about +Y.
func RotY(theta float64) Mat3 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotZ returns a right-handed rotation of theta radians about +Z.
func RotZ(theta float64) Mat3 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// Mul composes two rotations: (m.Mul(n)).Apply(v) == m.Apply(n.Apply(v)).
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m[i][k] * n[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Apply rotates v by m.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Euler is an XYZ Euler-angle triple, in radians, for the rotation
// R = Rz·Ry·Rx (rotations about the fixed X, then Y, then Z axes),
// matching the wire format spec §6 mandates for snapshot rotations.
type Euler struct {
	X, Y, Z float64
}

// Transform3D is a rigid transform: rotate by Rot, then translate by Pos.
type Transform3D struct {
	Pos Vec3
	Rot Mat3
}

// Identity3D is the transform with no rotation and no translation.
func Identity3D() Transform3D {
	return Transform3D{Rot: Identity3()}
}

// Apply maps a point from this transform's local space into its parent
// space.
func (t Transform3D) Apply(v Vec3) Vec3 {
	return t.Rot.Apply(v).Add(t.Pos)
}

// Compose returns the transform that first applies child, then t — i.e.
// t is the outer (e.g. assembly world) transform and child is the inner
// (e.g. panel local) transform. This is how an assembly's own world
// transform is "composed in" over a derived panel or sub-assembly
// transform, to arbitrary nesting depth.
func (t Transform3D) Compose(child Transform3D) Transform3D {
	return Transform3D{
		Pos: t.Apply(child.Pos),
		Rot: t.Rot.Mul(child.Rot),
	}
}

// EulerXYZ decomposes the rotation into the Euler angles of R = Rz·Ry·Rx
// (extrinsic X, Y, Z) for serialization. Handles the gimbal-lock case (pitch at ±90°) that axis-
// aligned panel rotations can legitimately hit (e.g. top/bottom panels).
func (t Transform3D) EulerXYZ() Euler {
	m := t.Rot
	// Standard XYZ (roll-X, pitch-Y, yaw-Z composed as Rz*Ry*Rx) extraction.
	sy := -m[2][0]
	const gimbalEps = 1e-9
	if sy > 1-gimbalEps {
		// pitch == +90deg
		return Euler{X: math.Atan2(m[0][1], m[0][2]), Y: math.Pi / 2, Z: 0}
	}
	if sy < -1+gimbalEps {
		// pitch == -90deg
		return Euler{X: math.Atan2(-m[0][1], -m[0][2]), Y: -math.Pi / 2, Z: 0}
	}
	pitch := math.Asin(sy)
	roll := math.Atan2(m[2][1], m[2][2])
	yaw := math.Atan2(m[1][0], m[0][0])
	return Euler{X: roll, Y: pitch, Z: yaw}
}
