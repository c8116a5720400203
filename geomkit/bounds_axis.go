// File: bounds_axis.go — axis-indexed accessors for Bounds3D, used
// throughout void subdivision and panel dimension derivation so axis code
// never hand-writes a three-way switch on X/Y/Z.
package geomkit

// AxisRange returns the [low, high] extent of b along axis a.
func (b Bounds3D) AxisRange(a Axis) (low, high float64) {
	switch a {
	case AxisX:
		return b.X, b.X + b.W
	case AxisY:
		return b.Y, b.Y + b.H
	default:
		return b.Z, b.Z + b.D
	}
}

// AxisExtent returns the extent of b along axis a (high - low).
func (b Bounds3D) AxisExtent(a Axis) float64 {
	low, high := b.AxisRange(a)
	return high - low
}

// WithAxisRange returns a copy of b with its extent along axis a replaced
// by [low, high].
func (b Bounds3D) WithAxisRange(a Axis, low, high float64) Bounds3D {
	out := b
	switch a {
	case AxisX:
		out.X, out.W = low, high-low
	case AxisY:
		out.Y, out.H = low, high-low
	default:
		out.Z, out.D = low, high-low
	}
	return out
}

// OtherAxes returns the two axes other than a, in a stable (ascending)
// order.
func OtherAxes(a Axis) [2]Axis {
	switch a {
	case AxisX:
		return [2]Axis{AxisY, AxisZ}
	case AxisY:
		return [2]Axis{AxisX, AxisZ}
	default:
		return [2]Axis{AxisX, AxisY}
	}
}
