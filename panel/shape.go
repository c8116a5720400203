// File: shape.go — panelShape, the derived-geometry state shared by
// FacePanel and DividerPanel, and the Panel methods that only depend on
// it. Each concrete panel type embeds panelShape and adds its own
// PanelID and whatever identifies where it sits in the assembly.
package panel

import "github.com/katalvlaran/fingerbox/geomkit"

type panelShape struct {
	width, height, thickness float64
	edges                    [4]EdgeConfig
	outline                  geomkit.Outline
	edgeRuns                 map[geomkit.EdgePosition]geomkit.Polygon
	transform                geomkit.Transform3D
}

func (s *panelShape) Dimensions() (width, height float64) { return s.width, s.height }
func (s *panelShape) EdgeConfigs() [4]EdgeConfig           { return s.edges }
func (s *panelShape) BaseOutline() geomkit.Outline         { return s.outline }
func (s *panelShape) Transform() geomkit.Transform3D       { return s.transform }

// EdgeRuns returns, for each edge, the base-outline points belonging to it
// (its leading corner point through its last interior point, exclusive of
// the next edge's corner) in panel-local coordinates. The outline package
// uses this to locate each edge's span within the outer ring without
// re-deriving finger geometry.
func (s *panelShape) EdgeRuns() map[geomkit.EdgePosition]geomkit.Polygon { return s.edgeRuns }

// EdgeAnchors returns the midpoint of each gendered edge, offset inward by
// half material thickness and transformed to world coordinates (spec
// §4.9).
func (s *panelShape) EdgeAnchors() []EdgeAnchor {
	halfU, halfV := s.width/2, s.height/2
	frames := edgeFrames(halfU, halfV)
	var out []EdgeAnchor
	for _, cfg := range s.edges {
		if cfg.Gender == geomkit.GenderNone {
			continue
		}
		frame := frames[cfg.Position]
		local := frame.point(frame.run/2, s.thickness/2)
		world := s.transform.Apply(geomkit.Vec3{X: local.X, Y: local.Y})
		out = append(out, EdgeAnchor{Position: cfg.Position, World: world})
	}
	return out
}

func (s *panelShape) EdgeStatuses() [4]EdgeStatus {
	var out [4]EdgeStatus
	for i, c := range s.edges {
		out[i] = c.Status
	}
	return out
}

// CornerEligibilities implements a pre-extension estimate of spec §4.8's
// fillet eligibility rule: both adjacent edges must have free length
// (no fingers, or the finger-free buffer) clear at the corner, floored at
// 1mm. The outline package refines this after edge extensions are
// applied, since a positive extension can open up a corner that this
// estimate alone would reject.
func (s *panelShape) CornerEligibilities() [4]CornerEligibility {
	frames := edgeFrames(s.width/2, s.height/2)
	byPos := make(map[geomkit.EdgePosition]EdgeConfig, 4)
	for _, c := range s.edges {
		byPos[c.Position] = c
	}
	freeLength := func(pos geomkit.EdgePosition) float64 {
		if byPos[pos].Gender == geomkit.GenderNone {
			return frames[pos].run
		}
		return s.thickness
	}

	var out [4]CornerEligibility
	const floor = 1.0
	for i, corner := range geomkit.AllCorners {
		eFirst, eSecond := corner.AdjacentEdges()
		radius := freeLength(eFirst)
		if other := freeLength(eSecond); other < radius {
			radius = other
		}
		out[i] = CornerEligibility{Corner: corner, Eligible: radius >= floor, MaxRadius: radius}
	}
	return out
}
