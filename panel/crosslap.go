// File: crosslap.go — detecting where two perpendicular dividers cross
// and assigning the complementary notch each must carry (spec §4.7).
package panel

import (
	"fmt"

	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/core"
	"github.com/katalvlaran/fingerbox/geomkit"
	"github.com/katalvlaran/fingerbox/void"
)

// CrossLapNotch is one notch assignment for a divider panel: cut from
// Edge, centered at Coord (full-run s coordinate along that edge),
// HalfWidth wide, Depth deep.
type CrossLapNotch struct {
	Edge                geomkit.EdgePosition
	Coord, HalfWidth, Depth float64
}

// dividerNode is one divider plane anywhere in the void tree: either the
// split-carrying second child of a simple subdivide, or one position
// along one axis of a grid subdivision (spec §4.2 — a grid divider has
// no void of its own, so VoidID is synthesized from its parent and
// position rather than read off a real node).
type dividerNode struct {
	VoidID   core.NodeID
	Parent   *void.Void
	Axis     geomkit.Axis
	Position float64
	Geom     dividerGeometry
}

// gridDividerID synthesizes a stable NodeID for one grid divider plane,
// since SubdivideGrid produces sibling leaf cells rather than a
// dedicated divider void to key a panel ID off of.
func gridDividerID(parent *void.Void, axis geomkit.Axis, index int) core.NodeID {
	return core.NodeID(fmt.Sprintf("%s/grid/%s/%d", parent.ID(), axis, index))
}

// collectDividers walks the entire void tree and returns every divider
// plane: simple-subdivide dividers at any nesting depth, and grid
// dividers (one per axis per position, per spec §8 scenario 3's "exactly
// 2 divider panels, one per axis"). Grid cells are themselves walked for
// further nested subdivisions.
func collectDividers(root *void.Void) []dividerNode {
	var out []dividerNode
	var walk func(v *void.Void)
	walk = func(v *void.Void) {
		children := v.ChildVoids()
		switch {
		case len(children) == 2 && children[1].Split() != nil:
			split := children[1].Split()
			out = append(out, dividerNode{VoidID: children[1].ID(), Parent: v, Axis: split.Axis, Position: split.Position})
		case v.Grid() != nil:
			for _, ga := range v.Grid().Axes {
				for i, pos := range ga.Positions {
					out = append(out, dividerNode{VoidID: gridDividerID(v, ga.Axis, i), Parent: v, Axis: ga.Axis, Position: pos})
				}
			}
		}
		for _, c := range children {
			walk(c)
		}
	}
	walk(root)
	return out
}

// FindCrossLaps walks a's entire void tree, finds every pair of
// perpendicular dividers that physically cross, and returns each
// affected divider void's notch assignment. It returns
// ErrThreeAxisIntersection if three dividers on three distinct axes all
// cross the same location.
func FindCrossLaps(a *assembly.Assembly) (map[core.NodeID][]CrossLapNotch, error) {
	nodes := collectDividers(a.Root())
	for i := range nodes {
		nodes[i].Geom = resolveDividerGeometry(a, nodes[i].Parent, nodes[i].Axis, nodes[i].Position)
	}

	thickness := a.Material.Thickness
	crossing := make(map[core.NodeID]map[core.NodeID]bool, len(nodes))
	result := make(map[core.NodeID][]CrossLapNotch)

	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			p, q := nodes[i], nodes[j]
			if p.Geom.Axis == q.Geom.Axis {
				continue
			}
			notchP, notchQ, ok := crossLapBetween(p.Geom, q.Geom, thickness)
			if !ok {
				continue
			}
			if crossing[p.VoidID] == nil {
				crossing[p.VoidID] = map[core.NodeID]bool{}
			}
			if crossing[q.VoidID] == nil {
				crossing[q.VoidID] = map[core.NodeID]bool{}
			}
			crossing[p.VoidID][q.VoidID] = true
			crossing[q.VoidID][p.VoidID] = true
			result[p.VoidID] = append(result[p.VoidID], notchP)
			result[q.VoidID] = append(result[q.VoidID], notchQ)
		}
	}

	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			for k := j + 1; k < len(nodes); k++ {
				a, b, c := nodes[i].VoidID, nodes[j].VoidID, nodes[k].VoidID
				if crossing[a][b] && crossing[b][c] && crossing[a][c] {
					return nil, ErrThreeAxisIntersection
				}
			}
		}
	}

	return result, nil
}

// crossLapBetween resolves the complementary notch pair for p and q, if
// their panels actually overlap in space. The lower-axis divider cuts
// from its panel's positive-side edge (top, if the crossing bears along
// its U axis; right, if it bears along V); the higher-axis divider cuts
// from the complementary negative-side edge — this generalises spec
// §4.7's "alphabetically lower axis cuts from the top edge" to the case
// where the crossing bears along a divider's V axis instead of U.
func crossLapBetween(p, q dividerGeometry, thickness float64) (notchP, notchQ CrossLapNotch, ok bool) {
	pEdge, pCoord, _, pDepth, okP := bearingEdge(p, q.Axis, q.Position)
	qEdge, qCoord, _, qDepth, okQ := bearingEdge(q, p.Axis, p.Position)
	if !okP || !okQ {
		return CrossLapNotch{}, CrossLapNotch{}, false
	}

	pPositive := pEdge == geomkit.EdgeTop || pEdge == geomkit.EdgeRight
	if p.Axis < q.Axis && !pPositive {
		pEdge = opposite(pEdge)
	} else if p.Axis > q.Axis && pPositive {
		pEdge = opposite(pEdge)
	}
	qPositive := qEdge == geomkit.EdgeTop || qEdge == geomkit.EdgeRight
	if q.Axis < p.Axis && !qPositive {
		qEdge = opposite(qEdge)
	} else if q.Axis > p.Axis && qPositive {
		qEdge = opposite(qEdge)
	}

	half := thickness / 2
	return CrossLapNotch{Edge: pEdge, Coord: pCoord, HalfWidth: half, Depth: pDepth},
		CrossLapNotch{Edge: qEdge, Coord: qCoord, HalfWidth: half, Depth: qDepth},
		true
}

// bearingEdge resolves, for panel p, the edge a crossing plane at
// (otherAxis, otherPosition) would be notched into, along with the
// along-edge coordinate and notch depth. ok is false when otherAxis
// isn't one of p's two in-plane axes (shouldn't happen given the caller
// only calls this with perpendicular dividers) or the crossing falls
// outside p's own panel extent.
func bearingEdge(p dividerGeometry, otherAxis geomkit.Axis, otherPosition float64) (edge geomkit.EdgePosition, coord, half, depth float64, ok bool) {
	switch otherAxis {
	case p.UAxis:
		localU := otherPosition - p.CenterU
		if localU < -p.HalfU || localU > p.HalfU {
			return 0, 0, 0, 0, false
		}
		return geomkit.EdgeTop, localU + p.HalfU, p.HalfU, p.HalfV, true
	case p.VAxis:
		localV := otherPosition - p.CenterV
		if localV < -p.HalfV || localV > p.HalfV {
			return 0, 0, 0, 0, false
		}
		return geomkit.EdgeRight, localV + p.HalfV, p.HalfV, p.HalfU, true
	default:
		return 0, 0, 0, 0, false
	}
}

func opposite(pos geomkit.EdgePosition) geomkit.EdgePosition {
	switch pos {
	case geomkit.EdgeTop:
		return geomkit.EdgeBottom
	case geomkit.EdgeBottom:
		return geomkit.EdgeTop
	case geomkit.EdgeRight:
		return geomkit.EdgeLeft
	default:
		return geomkit.EdgeRight
	}
}
