// File: types.go — shared derived value types for FacePanel and
// DividerPanel, and the Panel interface both implement.
//
// Grounded on other_examples' jsleeio-frontpanels Panel interface: a
// small mm-denominated shape contract implemented by multiple concrete
// panel kinds.
package panel

import (
	"github.com/katalvlaran/fingerbox/core"
	"github.com/katalvlaran/fingerbox/geomkit"
)

// EdgeStatus classifies an edge for UI purposes: whether it can be
// freely edited.
type EdgeStatus int

const (
	// EdgeLocked edges carry fingers on both coordinating panels and may
	// not be freely resized without invalidating the joint.
	EdgeLocked EdgeStatus = iota
	// EdgeOutwardOnly edges may be extended outward but not shortened
	// below the finger-joint region.
	EdgeOutwardOnly
	// EdgeUnlocked edges have gender none and may be freely edited.
	EdgeUnlocked
)

func (s EdgeStatus) String() string {
	switch s {
	case EdgeLocked:
		return "locked"
	case EdgeOutwardOnly:
		return "outward-only"
	default:
		return "unlocked"
	}
}

// EdgeConfig is one panel edge's derived configuration (spec §3).
type EdgeConfig struct {
	Position       geomkit.EdgePosition
	HasTabs        bool
	MeetsFaceID    *geomkit.FaceID
	MeetsDividerID *core.NodeID
	Gender         geomkit.JointGender
	WorldAxis      geomkit.Axis
	Status         EdgeStatus
}

// EdgeAnchor is the world-space point spec §4.9 requires every mating
// edge to publish: the edge midpoint, offset inward by half material
// thickness so both panels of a joint land on the same mid-plane point.
type EdgeAnchor struct {
	Position geomkit.EdgePosition
	World    geomkit.Vec3
}

// CornerEligibility publishes whether a corner may be filleted and the
// maximum radius available (spec §4.8's eligibility rule).
type CornerEligibility struct {
	Corner    geomkit.Corner
	Eligible  bool
	MaxRadius float64
}

// Panel is implemented by both FacePanel and DividerPanel: the common
// derived-geometry surface consumed by the outline and joint packages.
type Panel interface {
	PanelID() string
	Dimensions() (width, height float64)
	EdgeConfigs() [4]EdgeConfig
	BaseOutline() geomkit.Outline
	Transform() geomkit.Transform3D
	EdgeAnchors() []EdgeAnchor
	EdgeStatuses() [4]EdgeStatus
	CornerEligibilities() [4]CornerEligibility
	EdgeRuns() map[geomkit.EdgePosition]geomkit.Polygon
}
