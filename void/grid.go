// File: grid.go — grid subdivision shortcut: tiles a leaf with 1 or 2
// perpendicular axes in one call, storing the grid descriptor on the
// parent so it survives Clone and so divider panels can span the grid as
// a unit (spec §4.2).
//
// Row-major (axis-a-index, axis-b-index) cell addressing is grounded on
// gridgraph's "r,c" scheme (gridgraph/impl_grid-equivalent index/Coordinate
// helpers) — without gridgraph's graph-search layer, since grid cells here
// never need a connectivity query.
package void

import (
	"github.com/katalvlaran/fingerbox/core"
	"github.com/katalvlaran/fingerbox/geomkit"
)

// GridAxisSpec is one caller-supplied axis of a grid-subdivide request:
// the split axis and the ascending absolute positions along it.
type GridAxisSpec struct {
	Axis      geomkit.Axis
	Positions []float64
}

// SubdivideGrid tiles a leaf void along 1 or 2 perpendicular axes,
// producing the Cartesian product of per-axis segments as sibling leaf
// voids. A three-axis request is rejected (spec §4.2: "physically
// unassemblable").
func (v *Void) SubdivideGrid(s *core.Scene, mt float64, specs ...GridAxisSpec) ([]*Void, error) {
	if !v.IsLeaf() {
		return nil, ErrNotLeaf
	}
	switch len(specs) {
	case 0:
		return nil, ErrTooFewAxes
	case 1, 2:
		// ok
	default:
		return nil, ErrThreeAxisGrid
	}
	if len(specs) == 2 && specs[0].Axis == specs[1].Axis {
		return nil, ErrDuplicateAxis
	}

	type axisLayout struct {
		axis      geomkit.Axis
		segments  [][2]float64 // [low, high] per segment, ascending
		positions []float64
		percents  []float64
	}

	layouts := make([]axisLayout, len(specs))
	for ai, spec := range specs {
		low, high := v.bounds.AxisRange(spec.Axis)
		segs := make([][2]float64, 0, len(spec.Positions)+1)
		percents := make([]float64, len(spec.Positions))
		cursor := low
		for i, p := range spec.Positions {
			if p-mt/2 <= cursor || p+mt/2 >= high {
				return nil, ErrPositionOutOfRange
			}
			segs = append(segs, [2]float64{cursor, p - mt/2})
			percents[i] = (p - low) / (high - low)
			cursor = p + mt/2
		}
		segs = append(segs, [2]float64{cursor, high})
		layouts[ai] = axisLayout{axis: spec.Axis, segments: segs, positions: append([]float64(nil), spec.Positions...), percents: percents}
	}

	var cells []*Void
	if len(layouts) == 1 {
		la := layouts[0]
		cells = make([]*Void, len(la.segments))
		for i, seg := range la.segments {
			b := v.bounds.WithAxisRange(la.axis, seg[0], seg[1])
			cells[i] = NewLeaf(s.NextID(core.KindVoid), b)
		}
	} else {
		la, lb := layouts[0], layouts[1]
		cells = make([]*Void, 0, len(la.segments)*len(lb.segments))
		for _, sa := range la.segments {
			for _, sb := range lb.segments {
				b := v.bounds.WithAxisRange(la.axis, sa[0], sa[1])
				b = b.WithAxisRange(lb.axis, sb[0], sb[1])
				cells = append(cells, NewLeaf(s.NextID(core.KindVoid), b))
			}
		}
	}

	grid := &GridDescriptor{Axes: make([]GridAxis, len(layouts))}
	for i, la := range layouts {
		grid.Axes[i] = GridAxis{Axis: la.axis, Positions: la.positions, Percentages: la.percents}
	}

	v.children = cells
	v.grid = grid
	for _, c := range cells {
		s.Register(c, v.id)
	}
	return cells, nil
}
