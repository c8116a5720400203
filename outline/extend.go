// File: extend.go — edge extensions with corner merging (spec §4.8 item 1).
package outline

import (
	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/geomkit"
)

// applyExtensions replaces each edge with extension>0 with a flat run
// between its two (possibly jointly extended) corners. A corner shared by
// two extended edges receives both edges' contributions at once, so
// adjacent extensions merge into a single diagonal point instead of
// stepping — the "corner merge" spec §4.8 item 1 requires — without any
// edge-processing-order bookkeeping: each corner's position is simply the
// vector sum of its own base position and both adjacent edges' own
// extension contributions.
func applyExtensions(runs runSet, halfU, halfV float64, ext assembly.EdgeExtensions) runSet {
	base := map[geomkit.Corner]geomkit.Point2{
		geomkit.CornerTopLeft:     {X: -halfU, Y: halfV},
		geomkit.CornerTopRight:    {X: halfU, Y: halfV},
		geomkit.CornerBottomRight: {X: halfU, Y: -halfV},
		geomkit.CornerBottomLeft:  {X: -halfU, Y: -halfV},
	}
	extended := make(map[geomkit.Corner]geomkit.Point2, 4)
	for c, p := range base {
		switch c {
		case geomkit.CornerTopLeft:
			p.X -= ext.Left
			p.Y += ext.Top
		case geomkit.CornerTopRight:
			p.X += ext.Right
			p.Y += ext.Top
		case geomkit.CornerBottomRight:
			p.X += ext.Right
			p.Y -= ext.Bottom
		case geomkit.CornerBottomLeft:
			p.X -= ext.Left
			p.Y -= ext.Bottom
		}
		extended[c] = p
	}

	extOf := map[geomkit.EdgePosition]float64{
		geomkit.EdgeTop:    ext.Top,
		geomkit.EdgeRight:  ext.Right,
		geomkit.EdgeBottom: ext.Bottom,
		geomkit.EdgeLeft:   ext.Left,
	}

	for _, pos := range geomkit.ClockwiseEdgeOrder {
		runs[pos][0] = extended[startCorner(pos)]
		if extOf[pos] > 0 {
			runs[pos] = geomkit.Polygon{extended[startCorner(pos)], extended[startCorner(clockwiseNext(pos))]}
		}
	}
	return runs
}
