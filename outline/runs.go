// File: runs.go — shared per-edge run bookkeeping used by every pipeline
// step: which corner an edge's leading point is, the edge's outward unit
// normal, and the neighbor relation in clockwise order.
package outline

import "github.com/katalvlaran/fingerbox/geomkit"

// runSet is a mutable, per-edge copy of a panel's base-outline points,
// threaded through the pipeline steps in order.
type runSet map[geomkit.EdgePosition]geomkit.Polygon

func newRunSet(src map[geomkit.EdgePosition]geomkit.Polygon) runSet {
	out := make(runSet, len(src))
	for pos, pts := range src {
		out[pos] = append(geomkit.Polygon{}, pts...)
	}
	return out
}

// flatten concatenates every edge's run, in ClockwiseEdgeOrder, into the
// final outer ring.
func (r runSet) flatten() geomkit.Polygon {
	var out geomkit.Polygon
	for _, pos := range geomkit.ClockwiseEdgeOrder {
		out = append(out, r[pos]...)
	}
	return out
}

func clockwiseNext(pos geomkit.EdgePosition) geomkit.EdgePosition {
	for i, p := range geomkit.ClockwiseEdgeOrder {
		if p == pos {
			return geomkit.ClockwiseEdgeOrder[(i+1)%4]
		}
	}
	return pos
}

// startCorner names the corner whose point is stored as edge pos's
// leading point, per the panel package's buildBaseOutline convention.
func startCorner(pos geomkit.EdgePosition) geomkit.Corner {
	switch pos {
	case geomkit.EdgeTop:
		return geomkit.CornerTopLeft
	case geomkit.EdgeRight:
		return geomkit.CornerTopRight
	case geomkit.EdgeBottom:
		return geomkit.CornerBottomRight
	default:
		return geomkit.CornerBottomLeft
	}
}

// outwardNormal returns edge pos's outward-pointing unit vector in
// panel-local coordinates.
func outwardNormal(pos geomkit.EdgePosition) geomkit.Point2 {
	switch pos {
	case geomkit.EdgeTop:
		return geomkit.Point2{X: 0, Y: 1}
	case geomkit.EdgeRight:
		return geomkit.Point2{X: 1, Y: 0}
	case geomkit.EdgeBottom:
		return geomkit.Point2{X: 0, Y: -1}
	default:
		return geomkit.Point2{X: -1, Y: 0}
	}
}

// edgeLength sums the polyline length of edge pos's own points plus the
// closing segment to the next edge's leading corner.
func (r runSet) edgeLength(pos geomkit.EdgePosition) float64 {
	pts := append(geomkit.Polygon{}, r[pos]...)
	pts = append(pts, r[clockwiseNext(pos)][0])
	var total float64
	for i := 0; i < len(pts)-1; i++ {
		total += pts[i].Dist(pts[i+1])
	}
	return total
}
