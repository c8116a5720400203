// File: resize.go — propagating a bounds change down through a void
// subtree, rederiving child extents from the stored split/grid
// percentages rather than their absolute positions (spec §3: "carries...
// the percentage of the parent span, for proportional rescaling").
package void

import (
	"github.com/katalvlaran/fingerbox/geomkit"
)

// Resize sets v's own bounds to newBounds and, if v is subdivided or
// grid-subdivided, rederives every descendant's bounds from the stored
// percentages so the subtree keeps its proportions. A leaf with no
// children simply adopts newBounds; a void hosting a sub-assembly also
// notifies it via ResizeToVoid.
func (v *Void) Resize(newBounds geomkit.Bounds3D) {
	v.bounds = newBounds

	switch {
	case v.grid != nil:
		v.resizeGrid(newBounds)
	case len(v.children) == 2:
		v.resizeSplit(newBounds)
	}

	if v.sub != nil {
		v.sub.ResizeToVoid(newBounds)
	}
}

func (v *Void) resizeSplit(newBounds geomkit.Bounds3D) {
	childB := v.children[1]
	if childB.split == nil {
		return
	}
	axis := childB.split.Axis
	low, high := newBounds.AxisRange(axis)
	span := high - low
	position := low + childB.split.Percentage*span
	childB.split.Position = position

	childA := v.children[0]
	childA.Resize(newBounds.WithAxisRange(axis, low, position))
	childB.Resize(newBounds.WithAxisRange(axis, position, high))
}

func (v *Void) resizeGrid(newBounds geomkit.Bounds3D) {
	type axisBounds struct {
		axis     geomkit.Axis
		segments [][2]float64
	}
	layouts := make([]axisBounds, len(v.grid.Axes))
	for i, ga := range v.grid.Axes {
		low, high := newBounds.AxisRange(ga.Axis)
		span := high - low
		segs := make([][2]float64, 0, len(ga.Percentages)+1)
		cursor := low
		for _, pct := range ga.Percentages {
			pos := low + pct*span
			segs = append(segs, [2]float64{cursor, pos})
			cursor = pos
		}
		segs = append(segs, [2]float64{cursor, high})
		layouts[i] = axisBounds{axis: ga.Axis, segments: segs}
	}

	if len(layouts) == 1 {
		la := layouts[0]
		for i, seg := range la.segments {
			if i >= len(v.children) {
				break
			}
			v.children[i].Resize(newBounds.WithAxisRange(la.axis, seg[0], seg[1]))
		}
		return
	}

	la, lb := layouts[0], layouts[1]
	idx := 0
	for _, sa := range la.segments {
		for _, sb := range lb.segments {
			if idx >= len(v.children) {
				break
			}
			b := newBounds.WithAxisRange(la.axis, sa[0], sa[1])
			b = b.WithAxisRange(lb.axis, sb[0], sb[1])
			v.children[idx].Resize(b)
			idx++
		}
	}
}
