// File: arc.go
// Role: arc and circle polygonization for corner fillets and round cutouts.
// Grounded on the SVG-shape arc/rounded-rectangle sampling of
// other_examples' rcoreilly-goki gi/shapes2d.go (DrawRoundedRectangle-style
// corner arcs), adapted from a render-time stroke routine into a pure
// point-sampling function usable inside a derivation pipeline.
package geomkit

import "math"

// MinFilletSamples and MinCircleSegments are the segment counts used for
// corner-fillet arcs and for circle cutouts (at least), per spec §4.8; an
// arc sampled with n segments has n+1 points (see SampleArc).
const (
	MinFilletSamples = 8
	MinCircleSegments = 16
)

// SampleArc returns `segments+1` points tracing a circular arc of the given
// radius centered at center, from startAngle to endAngle (radians, standard
// math convention: 0 along +X, increasing counter-clockwise).
func SampleArc(center Point2, radius, startAngle, endAngle float64, segments int) Polygon {
	if segments < 1 {
		segments = 1
	}
	out := make(Polygon, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		a := startAngle + (endAngle-startAngle)*t
		out[i] = Point2{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	return out
}

// Circle polygonizes a full circle of the given radius centered at center
// using at least MinCircleSegments segments, counter-clockwise (positive
// SignedArea), which is already the winding Outline uses for holes.
func Circle(center Point2, radius float64, segments int) Polygon {
	if segments < MinCircleSegments {
		segments = MinCircleSegments
	}
	arc := SampleArc(center, radius, 0, 2*math.Pi, segments)
	return arc[:len(arc)-1] // drop the duplicated closing point
}

// RoundedRect polygonizes an axis-aligned rectangle of size w×h centered at
// center with corner radius r (clamped to half the shorter side),
// counter-clockwise starting at the min-x/min-y corner's arc. r<=0 yields
// a plain 4-point rectangle.
func RoundedRect(center Point2, w, h, r float64) Polygon {
	halfW, halfH := w/2, h/2
	maxR := math.Min(halfW, halfH)
	if r > maxR {
		r = maxR
	}
	if r <= 0 {
		return Polygon{
			{center.X - halfW, center.Y - halfH},
			{center.X + halfW, center.Y - halfH},
			{center.X + halfW, center.Y + halfH},
			{center.X - halfW, center.Y + halfH},
		}
	}
	x0, y0 := center.X-halfW, center.Y-halfH
	x1, y1 := center.X+halfW, center.Y+halfH

	var out Polygon
	append4 := func(cx, cy, from, to float64) {
		out = append(out, SampleArc(Point2{cx, cy}, r, from, to, MinFilletSamples)...)
	}
	// Min-x/min-y corner, then the max-x/min-y, max-x/max-y and min-x/max-y
	// corners.
	append4(x0+r, y0+r, math.Pi, math.Pi*1.5)
	append4(x1-r, y0+r, math.Pi*1.5, math.Pi*2)
	append4(x1-r, y1-r, 0, math.Pi*0.5)
	append4(x0+r, y1-r, math.Pi*0.5, math.Pi)
	return out
}
