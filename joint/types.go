// File: types.go — JointConstraint and alignment-error value types
// (spec §4.9).
package joint

import (
	"fmt"

	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/geomkit"
)

// Side identifies one panel's contribution to a joint: which panel, and
// which of its edges meets the other side.
type Side struct {
	PanelID assembly.PanelID
	Edge    geomkit.EdgePosition
	Anchor  geomkit.Vec3
}

// JointConstraint is one mating edge pair: two panels whose EdgeAnchors
// are expected to coincide at a shared world-space point (spec §4.9).
type JointConstraint struct {
	A, B   Side
	Axis   geomkit.Axis
	Anchor geomkit.Vec3
}

// Key returns the sorted-pair registry key spec §4.9 names: the two
// panel IDs, lexicographically ordered so A-meets-B and B-meets-A
// collapse to the same entry.
func (c JointConstraint) Key() string {
	if c.A.PanelID < c.B.PanelID {
		return string(c.A.PanelID) + "|" + string(c.B.PanelID)
	}
	return string(c.B.PanelID) + "|" + string(c.A.PanelID)
}

// AlignmentError reports a JointConstraint whose two anchors disagree by
// more than geomkit.DefaultTolerance.
type AlignmentError struct {
	Constraint JointConstraint
	Deviation  geomkit.Vec3
	Magnitude  float64
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("joint: %s anchors deviate by %.4fmm", e.Constraint.Key(), e.Magnitude)
}
