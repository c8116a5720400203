// File: fillet.go — corner fillets (spec §4.8 item 4).
package outline

import (
	"math"

	"github.com/katalvlaran/fingerbox/geomkit"
)

// cornerArcStart is the angle (standard math convention) at which the
// fillet arc touches the corner's incoming edge; the arc always sweeps
// -π/2 from there to where it touches the outgoing edge, tracing the
// same clockwise sense as the outline itself.
var cornerArcStart = map[geomkit.Corner]float64{
	geomkit.CornerTopLeft:     math.Pi,
	geomkit.CornerTopRight:    math.Pi / 2,
	geomkit.CornerBottomRight: 0,
	geomkit.CornerBottomLeft:  -math.Pi / 2,
}

// cornerArcCenter returns the fillet arc's center for a corner point c
// with radius r: offset inward along both adjacent edges' directions.
func cornerArcCenter(c geomkit.Corner, corner geomkit.Point2, r float64) geomkit.Point2 {
	switch c {
	case geomkit.CornerTopLeft:
		return geomkit.Point2{X: corner.X + r, Y: corner.Y - r}
	case geomkit.CornerTopRight:
		return geomkit.Point2{X: corner.X - r, Y: corner.Y - r}
	case geomkit.CornerBottomRight:
		return geomkit.Point2{X: corner.X - r, Y: corner.Y + r}
	default:
		return geomkit.Point2{X: corner.X + r, Y: corner.Y + r}
	}
}

// applyFillets replaces each registered corner's point with an arc of
// MinFilletSamples segments (MinFilletSamples+1 points), clamped to the shorter of the two adjacent
// edge lengths and floored at zero (a radius of exactly 0, or negative,
// is a no-op per spec §8 property 7: "no arc segment at that corner").
func applyFillets(runs runSet, fillets map[geomkit.Corner]float64) runSet {
	for corner, radius := range fillets {
		if radius <= 0 {
			continue
		}
		first, second := corner.AdjacentEdges()
		r := radius
		if l := runs.edgeLength(first); l < r {
			r = l
		}
		if l := runs.edgeLength(second); l < r {
			r = l
		}
		if r <= 0 {
			continue
		}

		cornerPoint := runs[second][0]
		center := cornerArcCenter(corner, cornerPoint, r)
		start := cornerArcStart[corner]
		arc := geomkit.SampleArc(center, r, start, start-math.Pi/2, geomkit.MinFilletSamples)
		runs[second] = append(arc, runs[second][1:]...)
	}
	return runs
}
