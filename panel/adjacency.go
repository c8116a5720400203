// File: adjacency.go — per-face 2D-to-3D basis and cube adjacency
// lookup (spec §4.5: "Mating face id per edge: adjacency lookup on the
// cube").
package panel

import "github.com/katalvlaran/fingerbox/geomkit"

// faceBasis describes how a face panel's local (U,V) axes embed into
// world space: which world axis each maps to, and its sign.
type faceBasis struct {
	UAxis, VAxis, NormalAxis       geomkit.Axis
	USign, VSign, NormalSign       float64
}

var faceBases = map[geomkit.FaceID]faceBasis{
	geomkit.FaceFront:  {UAxis: geomkit.AxisX, USign: 1, VAxis: geomkit.AxisY, VSign: 1, NormalAxis: geomkit.AxisZ, NormalSign: -1},
	geomkit.FaceBack:   {UAxis: geomkit.AxisX, USign: -1, VAxis: geomkit.AxisY, VSign: 1, NormalAxis: geomkit.AxisZ, NormalSign: 1},
	geomkit.FaceLeft:   {UAxis: geomkit.AxisZ, USign: 1, VAxis: geomkit.AxisY, VSign: 1, NormalAxis: geomkit.AxisX, NormalSign: -1},
	geomkit.FaceRight:  {UAxis: geomkit.AxisZ, USign: -1, VAxis: geomkit.AxisY, VSign: 1, NormalAxis: geomkit.AxisX, NormalSign: 1},
	geomkit.FaceTop:    {UAxis: geomkit.AxisX, USign: 1, VAxis: geomkit.AxisZ, VSign: 1, NormalAxis: geomkit.AxisY, NormalSign: 1},
	geomkit.FaceBottom: {UAxis: geomkit.AxisX, USign: 1, VAxis: geomkit.AxisZ, VSign: 1, NormalAxis: geomkit.AxisY, NormalSign: -1},
}

// edgeAxis returns the world axis a face panel's edge at position runs
// along: top/bottom edges run along the U axis, left/right along V.
func edgeAxis(face geomkit.FaceID, position geomkit.EdgePosition) geomkit.Axis {
	b := faceBases[face]
	if position == geomkit.EdgeTop || position == geomkit.EdgeBottom {
		return b.UAxis
	}
	return b.VAxis
}

// faceAdjacency maps each face's four edges to the neighboring face the
// edge borders in 3D, derived from the faceBases table above (self-
// consistent: each pair of adjacent faces names the other across some
// edge, though not necessarily the same EdgePosition name on both
// sides).
var faceAdjacency = map[geomkit.FaceID]map[geomkit.EdgePosition]geomkit.FaceID{
	geomkit.FaceFront:  {geomkit.EdgeTop: geomkit.FaceTop, geomkit.EdgeBottom: geomkit.FaceBottom, geomkit.EdgeRight: geomkit.FaceRight, geomkit.EdgeLeft: geomkit.FaceLeft},
	geomkit.FaceBack:   {geomkit.EdgeTop: geomkit.FaceTop, geomkit.EdgeBottom: geomkit.FaceBottom, geomkit.EdgeRight: geomkit.FaceLeft, geomkit.EdgeLeft: geomkit.FaceRight},
	geomkit.FaceLeft:   {geomkit.EdgeTop: geomkit.FaceTop, geomkit.EdgeBottom: geomkit.FaceBottom, geomkit.EdgeRight: geomkit.FaceBack, geomkit.EdgeLeft: geomkit.FaceFront},
	geomkit.FaceRight:  {geomkit.EdgeTop: geomkit.FaceTop, geomkit.EdgeBottom: geomkit.FaceBottom, geomkit.EdgeRight: geomkit.FaceFront, geomkit.EdgeLeft: geomkit.FaceBack},
	geomkit.FaceTop:    {geomkit.EdgeTop: geomkit.FaceBack, geomkit.EdgeBottom: geomkit.FaceFront, geomkit.EdgeRight: geomkit.FaceRight, geomkit.EdgeLeft: geomkit.FaceLeft},
	geomkit.FaceBottom: {geomkit.EdgeTop: geomkit.FaceBack, geomkit.EdgeBottom: geomkit.FaceFront, geomkit.EdgeRight: geomkit.FaceRight, geomkit.EdgeLeft: geomkit.FaceLeft},
}

// MeetingFace returns the FaceID that face's edge at position borders.
func MeetingFace(face geomkit.FaceID, position geomkit.EdgePosition) geomkit.FaceID {
	return faceAdjacency[face][position]
}

// faceForAxisEnd returns the outer face whose normal points along axis,
// on its positive or negative side — the wall a divider's end reaches
// when that end touches the assembly's outer shell rather than another
// divider.
func faceForAxisEnd(axis geomkit.Axis, positive bool) geomkit.FaceID {
	want := -1.0
	if positive {
		want = 1.0
	}
	for _, face := range geomkit.AllFaces {
		b := faceBases[face]
		if b.NormalAxis == axis && b.NormalSign == want {
			return face
		}
	}
	return geomkit.FaceFront
}
