// Package geomkit provides the value-typed 2D/3D primitives shared across
// the derivation engine: points, polygons-with-holes (Outline), bounds,
// and rigid transforms.
//
// Style note: types here are immutable value types composed with builder-
// style accretion (Outline.AddHole, Polygon append), the shape borrowed
// from golang/geo's r2/r3/s2 value-type API — not its spherical math,
// which has no bearing on planar panel geometry.
//
//	point2.go, polygon.go, arc.go — Point2, Polygon, Outline, winding + arc helpers
//	xform.go — Vec3, Mat3, Transform3D (rigid transform composition)
//	enums.go — Axis, EdgePosition, FaceId, JointGender domain enums
package geomkit
