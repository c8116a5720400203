// File: outline_build.go — shared base-outline construction for
// FacePanel and DividerPanel (spec §4.5, §4.6): four "finger corners"
// inset by material thickness on male edges, straight lines on none
// edges, and zigzag finger teeth mapped from the shared finger sequence
// on male/female edges.
//
// Coordinate convention: an edgeFrame maps (s, c) to a panel-local point,
// where s runs along the edge's direction (0 at its "from" corner, full
// run dimension at its "to" corner) and c is the inward offset from the
// panel's outward (full nominal) boundary — c=0 sits flush with the
// silhouette, c=thickness sits one material thickness inward.
package panel

import (
	"github.com/katalvlaran/fingerbox/finger"
	"github.com/katalvlaran/fingerbox/geomkit"
)

// edgeSpec is one edge's inputs to base-outline construction.
type edgeSpec struct {
	Position geomkit.EdgePosition
	Gender   geomkit.JointGender
	Data     finger.FingerData // zero value if Gender == GenderNone
	SkipFrom []skipRange       // cross-lap blocking intervals (spec §4.7); in finger-local coordinates
	Notches  []notchSpec       // cross-lap notches to splice into this edge (spec §4.7)
}

// notchSpec is one cross-lap notch to splice into an edge: centered at
// Coord (full-run s coordinate), HalfWidth wide, cut Depth inward from
// the edge's flat level.
type notchSpec struct {
	Coord, HalfWidth, Depth float64
}

// scPoint is an edge point in the edge's own (s, c) frame, before the
// final frame.point(s, c) projection into panel-local (x, y).
type scPoint struct{ S, C float64 }

// skipRange is a [from,to] interval (finger-local coordinates, same
// frame as FingerData.Points) where tab generation must be suppressed
// because a cross-lap notch occupies that span.
type skipRange struct{ From, To float64 }

func inSkipRange(pos float64, skips []skipRange) bool {
	for _, sk := range skips {
		if pos >= sk.From && pos <= sk.To {
			return true
		}
	}
	return false
}

// edgeFrame parameterizes one edge of a halfU x halfV rectangle.
type edgeFrame struct {
	point func(s, c float64) geomkit.Point2
	run   float64 // full nominal run length (matches the dim passed to finger.Calculate)
}

func edgeFrames(halfU, halfV float64) map[geomkit.EdgePosition]edgeFrame {
	return map[geomkit.EdgePosition]edgeFrame{
		geomkit.EdgeTop: {
			run:   2 * halfU,
			point: func(s, c float64) geomkit.Point2 { return geomkit.Point2{X: -halfU + s, Y: halfV - c} },
		},
		geomkit.EdgeRight: {
			run:   2 * halfV,
			point: func(s, c float64) geomkit.Point2 { return geomkit.Point2{X: halfU - c, Y: halfV - s} },
		},
		geomkit.EdgeBottom: {
			run:   2 * halfU,
			point: func(s, c float64) geomkit.Point2 { return geomkit.Point2{X: halfU - s, Y: -halfV + c} },
		},
		geomkit.EdgeLeft: {
			run:   2 * halfV,
			point: func(s, c float64) geomkit.Point2 { return geomkit.Point2{X: -halfU + c, Y: -halfV + s} },
		},
	}
}

// defaultInset returns the non-tab ("gap") level c-offset for an edge of
// the given gender: male edges start inset by thickness (tabs later pop
// back out to the full boundary); female edges start flush (slots later
// recess inward); none edges are always flush.
func defaultInset(gender geomkit.JointGender, thickness float64) float64 {
	if gender == geomkit.GenderMale {
		return thickness
	}
	return 0
}

// regionInset returns the c-offset for one finger region: the default
// level outside tab regions, flipped during a tab region (male pops out
// to flush, female recesses inward).
func regionInset(gender geomkit.JointGender, isTab bool, thickness float64) float64 {
	def := defaultInset(gender, thickness)
	if !isTab {
		return def
	}
	if gender == geomkit.GenderMale {
		return 0
	}
	return thickness
}

// buildBaseOutline constructs the clockwise base outline (no edge
// extensions, fillets, custom paths, or cutouts — those are the
// outline package's post-processing job) for a halfU x halfV panel,
// given each edge's gender and (for male/female edges) its shared finger
// data. Corner points are each edge's own default-inset reference, so
// two edges of differing gender meeting at a corner legitimately produce
// a small flush step — the same texture a real finger-jointed corner has.
func buildBaseOutline(halfU, halfV, thickness float64, edges [4]edgeSpec) (geomkit.Polygon, map[geomkit.EdgePosition]geomkit.Polygon) {
	frames := edgeFrames(halfU, halfV)
	specByPos := make(map[geomkit.EdgePosition]edgeSpec, 4)
	for _, e := range edges {
		specByPos[e.Position] = e
	}
	insetOf := func(pos geomkit.EdgePosition) float64 {
		return defaultInset(specByPos[pos].Gender, thickness)
	}
	topC, rightC, bottomC, leftC := insetOf(geomkit.EdgeTop), insetOf(geomkit.EdgeRight), insetOf(geomkit.EdgeBottom), insetOf(geomkit.EdgeLeft)

	cornerOf := map[geomkit.EdgePosition]geomkit.Point2{
		geomkit.EdgeTop:    {X: -halfU + leftC, Y: halfV - topC},
		geomkit.EdgeRight:  {X: halfU - rightC, Y: halfV - topC},
		geomkit.EdgeBottom: {X: halfU - rightC, Y: -halfV + bottomC},
		geomkit.EdgeLeft:   {X: -halfU + leftC, Y: -halfV + bottomC},
	}

	var pts geomkit.Polygon
	runs := make(map[geomkit.EdgePosition]geomkit.Polygon, 4)
	for _, pos := range geomkit.ClockwiseEdgeOrder {
		spec := specByPos[pos]
		runStart := len(pts)
		pts = append(pts, cornerOf[pos])

		frame := frames[pos]
		defaultC := defaultInset(spec.Gender, thickness)

		var edge []scPoint
		if spec.Gender != geomkit.GenderNone && len(spec.Data.Points) >= 2 {
			runStart := thickness
			runEnd := frame.run - thickness
			edge = append(edge, scPoint{runStart, defaultC})

			fd := spec.Data
			for i := 0; i < len(fd.Points)-1; i++ {
				p0, p1 := fd.Points[i], fd.Points[i+1]
				isTab := fd.IsTabRegion(i)
				c := defaultC
				if !inSkipRange((p0+p1)/2, spec.SkipFrom) {
					c = regionInset(spec.Gender, isTab, thickness)
				}
				edge = append(edge, scPoint{runStart + p0, c})
				edge = append(edge, scPoint{runStart + p1, c})
			}

			edge = append(edge, scPoint{runEnd, defaultC})
		}

		edge = spliceNotches(edge, spec.Notches, defaultC)

		for _, sc := range edge {
			pts = append(pts, frame.point(sc.S, sc.C))
		}
		runs[pos] = append(geomkit.Polygon{}, pts[runStart:]...)
	}

	return pts, runs
}

// spliceNotches inserts a U-shaped detour into edge for each notch: any
// existing points whose s falls inside [Coord-HalfWidth, Coord+HalfWidth]
// are dropped (they were flat defaultC points there, made so by the
// caller's matching SkipFrom range) and replaced with the four notch
// corners, keeping the whole sequence ordered by s.
func spliceNotches(edge []scPoint, notches []notchSpec, defaultC float64) []scPoint {
	for _, n := range notches {
		lo, hi := n.Coord-n.HalfWidth, n.Coord+n.HalfWidth
		var kept []scPoint
		inserted := false
		for _, p := range edge {
			if p.S > lo && p.S < hi {
				continue
			}
			if !inserted && p.S >= hi {
				kept = append(kept,
					scPoint{lo, defaultC}, scPoint{lo, defaultC + n.Depth},
					scPoint{hi, defaultC + n.Depth}, scPoint{hi, defaultC},
				)
				inserted = true
			}
			kept = append(kept, p)
		}
		if !inserted {
			kept = append(kept,
				scPoint{lo, defaultC}, scPoint{lo, defaultC + n.Depth},
				scPoint{hi, defaultC + n.Depth}, scPoint{hi, defaultC},
			)
		}
		edge = kept
	}
	return edge
}
