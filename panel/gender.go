// File: gender.go — edge gender rules (spec §4.4).
package panel

import (
	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/geomkit"
)

// lidGender resolves a lid face's own gender from its configured tab
// direction: tabs-out is male, tabs-in is female.
func lidGender(cfg assembly.LidConfig) geomkit.JointGender {
	if cfg.TabDirection == assembly.TabsOut {
		return geomkit.GenderMale
	}
	return geomkit.GenderFemale
}

// FaceEdgeGender resolves the gender of face's edge at position, per
// spec §4.4's ordered rule set:
//  1. adjacent face open -> none
//  2. one face a lid, the other a wall -> lid's gender follows its own
//     tabDirection; the wall gets the complementary gender
//  3. both walls -> lower face priority (spec's front<back<left<right<
//     top<bottom order, i.e. lower FaceID value) is male, higher female
func FaceEdgeGender(a *assembly.Assembly, face geomkit.FaceID, position geomkit.EdgePosition) geomkit.JointGender {
	neighbor := MeetingFace(face, position)
	if !a.Face(neighbor).Solid {
		return geomkit.GenderNone
	}

	faceLid, faceIsLid := a.IsLid(face)
	neighborLid, neighborIsLid := a.IsLid(neighbor)

	switch {
	case faceIsLid && !neighborIsLid:
		return lidGender(faceLid)
	case !faceIsLid && neighborIsLid:
		return lidGender(neighborLid).Opposite()
	case faceIsLid && neighborIsLid:
		// Two lids never share an edge on a rectangular box (they sit on
		// opposite ends of the assembly axis); treat as walls by priority
		// as a defensive fallback.
		fallthrough
	default:
		if int(face) < int(neighbor) {
			return geomkit.GenderMale
		}
		return geomkit.GenderFemale
	}
}
