// File: registry.go — builds the set of JointConstraints over an
// assembly's currently derived panels and validates anchor coincidence
// (spec §4.9, §8 property 1).
package joint

import (
	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/geomkit"
	"github.com/katalvlaran/fingerbox/panel"
)

// Registry is the keyed set of joint constraints derived from one set of
// panels, built fresh each time the assembly's panels are re-derived
// (panels carry no identity beyond their PanelID, so there is nothing to
// incrementally update).
type Registry struct {
	constraints map[string]JointConstraint
}

// Build enumerates every gendered edge across panels and pairs it with
// the mating panel's own anchor at the same physical location, keyed by
// EdgeConfig.MeetsFaceID. A divider's edge that touches the outer shell
// is matched against the face panel for that FaceID; two face panels
// that share a cube edge are matched against each other. Edges with no
// MeetsFaceID (cross-lap divider-to-divider notches, or unlocked/open
// edges) publish no constraint: they carry no anchor requirement of
// their own (spec §4.7's cross-lap notches are dimensional, not a finger
// joint).
func Build(panels []panel.Panel) *Registry {
	byID := make(map[assembly.PanelID]panel.Panel, len(panels))
	for _, p := range panels {
		byID[assembly.PanelID(p.PanelID())] = p
	}

	out := &Registry{constraints: make(map[string]JointConstraint)}
	for _, p := range panels {
		anchors := make(map[geomkit.EdgePosition]geomkit.Vec3, 4)
		for _, a := range p.EdgeAnchors() {
			anchors[a.Position] = a.World
		}
		for _, cfg := range p.EdgeConfigs() {
			if cfg.MeetsFaceID == nil {
				continue
			}
			anchor, ok := anchors[cfg.Position]
			if !ok {
				continue
			}
			mate, ok := byID[assembly.FacePanelID(*cfg.MeetsFaceID)]
			if !ok || mate.PanelID() == p.PanelID() {
				continue
			}
			mateEdge, mateAnchor, ok := nearestAnchor(mate, anchor)
			if !ok {
				continue
			}
			c := JointConstraint{
				A:      Side{PanelID: assembly.PanelID(p.PanelID()), Edge: cfg.Position, Anchor: anchor},
				B:      Side{PanelID: assembly.PanelID(mate.PanelID()), Edge: mateEdge, Anchor: mateAnchor},
				Axis:   cfg.WorldAxis,
				Anchor: anchor,
			}
			if _, exists := out.constraints[c.Key()]; !exists {
				out.constraints[c.Key()] = c
			}
		}
	}
	return out
}

// nearestAnchor returns the mate panel's own anchor closest to target,
// standing in for an explicit edge-to-edge correspondence table: since
// EdgeAnchors are already world-space points, the correct mating edge on
// the other panel is whichever one lands nearest the anchor under test.
func nearestAnchor(mate panel.Panel, target geomkit.Vec3) (geomkit.EdgePosition, geomkit.Vec3, bool) {
	anchors := mate.EdgeAnchors()
	if len(anchors) == 0 {
		return geomkit.EdgeTop, geomkit.Vec3{}, false
	}
	best := anchors[0]
	bestDist := target.Dist(best.World)
	for _, a := range anchors[1:] {
		if d := target.Dist(a.World); d < bestDist {
			best, bestDist = a, d
		}
	}
	return best.Position, best.World, true
}

// Constraints returns every joint constraint in the registry, unordered.
func (r *Registry) Constraints() []JointConstraint {
	out := make([]JointConstraint, 0, len(r.constraints))
	for _, c := range r.constraints {
		out = append(out, c)
	}
	return out
}

// Validate checks every constraint's two anchors against
// geomkit.DefaultTolerance and returns one AlignmentError per violation.
func (r *Registry) Validate() []AlignmentError {
	var errs []AlignmentError
	for _, c := range r.constraints {
		dev := c.A.Anchor.Sub(c.B.Anchor)
		mag := c.A.Anchor.Dist(c.B.Anchor)
		if mag > geomkit.DefaultTolerance {
			errs = append(errs, AlignmentError{Constraint: c, Deviation: dev, Magnitude: mag})
		}
	}
	return errs
}
