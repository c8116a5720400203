// File: polygon.go
// Role: Polygon (ordered point ring) and winding-direction helpers.
//
// Grounded on the outer/inner-ring naming convention of a doubly-connected
// edge list (other_examples' missinglink-simplefeatures geom/dcel.go
// faceRecord.outerComponent / innerComponents), without adopting its
// half-edge graph: an Outline's holes are independent closed rings that are
// never topologically re-split, so the heavier DCEL machinery buys nothing
// here.
package geomkit

// Polygon is an ordered ring of 2D points. Per spec §3, the outer ring of
// an Outline is clockwise and each hole is counter-clockwise.
type Polygon []Point2

// SignedArea returns twice the polygon's signed area (the shoelace sum).
// Positive means counter-clockwise in a standard (Y-up) math frame;
// negative means clockwise. Degenerate (<3 points) polygons return 0.
func (p Polygon) SignedArea() float64 {
	if len(p) < 3 {
		return 0
	}
	var sum float64
	for i := range p {
		j := (i + 1) % len(p)
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return sum
}

// IsClockwise reports whether the ring winds clockwise in a Y-up
// (panel-local) convention, i.e. SignedArea() <= 0.
func (p Polygon) IsClockwise() bool { return p.SignedArea() <= 0 }

// Reversed returns a new polygon with point order reversed (flips winding).
func (p Polygon) Reversed() Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

// EnsureClockwise returns p, reversed if necessary, so it winds clockwise.
func (p Polygon) EnsureClockwise() Polygon {
	if p.IsClockwise() {
		return p
	}
	return p.Reversed()
}

// EnsureCounterClockwise returns p, reversed if necessary, so it winds
// counter-clockwise — the convention spec §3 requires for holes.
func (p Polygon) EnsureCounterClockwise() Polygon {
	if !p.IsClockwise() {
		return p
	}
	return p.Reversed()
}

// Clone returns an independent copy of p.
func (p Polygon) Clone() Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Translate returns p shifted by d.
func (p Polygon) Translate(d Point2) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = pt.Add(d)
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the ring as
// (minX, minY, maxX, maxY). An empty polygon returns all zeros.
func (p Polygon) Bounds() (minX, minY, maxX, maxY float64) {
	if len(p) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = p[0].X, p[0].Y
	maxX, maxY = p[0].X, p[0].Y
	for _, pt := range p[1:] {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}
	return
}

// EqualTol reports whether two polygons have the same point count and each
// corresponding point coincides within tol.
func (p Polygon) EqualTol(q Polygon, tol float64) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !p[i].EqualTol(q[i], tol) {
			return false
		}
	}
	return true
}

// Outline is a panel's fully-derived 2D shape: a single outer ring plus an
// unordered collection of holes (spec §3: "Ordered clockwise polygon of 2D
// points ... plus an unordered collection of holes").
type Outline struct {
	Outer Polygon
	Holes []Polygon
}

// NewOutline wraps outer (forced clockwise) with no holes.
func NewOutline(outer Polygon) Outline {
	return Outline{Outer: outer.EnsureClockwise()}
}

// AddHole appends hole (forced counter-clockwise) to the outline.
func (o *Outline) AddHole(hole Polygon) {
	o.Holes = append(o.Holes, hole.EnsureCounterClockwise())
}

// Clone returns a deep, independent copy of the outline.
func (o Outline) Clone() Outline {
	holes := make([]Polygon, len(o.Holes))
	for i, h := range o.Holes {
		holes[i] = h.Clone()
	}
	return Outline{Outer: o.Outer.Clone(), Holes: holes}
}

// EqualTol reports whether two outlines have matching outer rings and the
// same multiset of holes (by position in slice — callers that need order-
// independent hole comparison should sort first).
func (o Outline) EqualTol(p Outline, tol float64) bool {
	if !o.Outer.EqualTol(p.Outer, tol) {
		return false
	}
	if len(o.Holes) != len(p.Holes) {
		return false
	}
	for i := range o.Holes {
		if !o.Holes[i].EqualTol(p.Holes[i], tol) {
			return false
		}
	}
	return true
}
