// File: basis.go — small helpers converting a faceBasis into the Vec3/
// Mat3 values FacePanel's 3D placement needs.
package panel

import "github.com/katalvlaran/fingerbox/geomkit"

// axisUnit returns the unsigned unit vector for a world axis.
func axisUnit(axis geomkit.Axis) geomkit.Vec3 {
	switch axis {
	case geomkit.AxisX:
		return geomkit.Vec3{X: 1}
	case geomkit.AxisY:
		return geomkit.Vec3{Y: 1}
	default:
		return geomkit.Vec3{Z: 1}
	}
}

// nextAxis and prevAxis walk the cyclic X->Y->Z->X ordering used to
// derive a divider panel's in-plane basis from its split axis (spec
// §4.6's "for an x-axis divider, rotate -pi/2 around Y so 2D +X maps to
// world +Z" generalises to: U = prevAxis(normal), V = nextAxis(normal)).
func nextAxis(a geomkit.Axis) geomkit.Axis { return (a + 1) % 3 }
func prevAxis(a geomkit.Axis) geomkit.Axis { return (a + 2) % 3 }

// basisMat3 builds the rotation carrying a panel's local (X=U, Y=V, Z=
// normal) axes onto the world directions named by basis: column i of the
// result is where local axis i lands in world space.
func basisMat3(basis faceBasis) geomkit.Mat3 {
	col0 := axisUnit(basis.UAxis).Scale(basis.USign)
	col1 := axisUnit(basis.VAxis).Scale(basis.VSign)
	col2 := axisUnit(basis.NormalAxis).Scale(basis.NormalSign)
	return geomkit.Mat3{
		{col0.X, col1.X, col2.X},
		{col0.Y, col1.Y, col2.Y},
		{col0.Z, col1.Z, col2.Z},
	}
}
