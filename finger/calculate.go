// File: calculate.go
// Role: the deterministic per-axis finger transition-point layout.
//
// Contract:
//   - jointLength = dim - 2*thickness (the material's own walls eat one
//     thickness off each end before any finger is cut).
//   - innerOffset = thickness + cornerGap: no finger starts closer to the
//     panel's physical corner than this, so corner material stays intact.
//   - The remaining interior span is divided into an odd number of equal-
//     width segments (tab, gap, tab, gap, ..., tab) so the pattern begins
//     and ends on a tab — the "remaining span at the far end matches by
//     symmetry" spec §4.3 calls for. Segment width is the nominal
//     fingerWidth turned into a segment count by rounding down (at least
//     one), made odd, then stretched evenly to land exactly on jointLength-innerOffset;
//     two panels given the same (dim, thickness, fingerWidth, gap) always
//     produce the identical Points slice (spec §8 property 3).
//
// Complexity: O(n) in the number of segments produced.
package finger

// FingerData is the per-axis finger transition sequence shared by every
// panel edge on that axis (spec §4.3).
type FingerData struct {
	// Points are the ordered transition offsets along the joint, measured
	// from the start of the joint span (one material thickness in from the
	// panel's near edge). len(Points) >= 2.
	Points []float64
	// InnerOffset is the distance from each end to the first/last point.
	InnerOffset float64
	// MaxJointLength is dim - 2*thickness, the usable joint span.
	MaxJointLength float64
}

// TabCount returns the number of tab regions ([Points[2k], Points[2k+1]]).
func (f FingerData) TabCount() int {
	if len(f.Points) < 2 {
		return 0
	}
	return (len(f.Points) - 1 + 1) / 2
}

// IsTabRegion reports whether [Points[i], Points[i+1]] is a tab (true) or
// gap (false) region, for i in [0, len(Points)-2].
func (f FingerData) IsTabRegion(i int) bool {
	return i%2 == 0
}

// Calculate derives the FingerData for one axis of length dim, given the
// assembly's material recipe.
func Calculate(dim float64, mat MaterialConfig) (FingerData, error) {
	if err := mat.Validate(); err != nil {
		return FingerData{}, err
	}
	jointLength := dim - 2*mat.Thickness
	innerOffset := mat.Thickness + mat.CornerGap()
	if jointLength-2*innerOffset <= 0 {
		return FingerData{}, ErrJointTooShort
	}

	available := jointLength - 2*innerOffset
	count := int(available / mat.FingerWidth)
	if count < 1 {
		count = 1
	}
	if count%2 == 0 {
		// Force an odd segment count so the pattern starts and ends on a
		// tab by growing by one (more segments, each narrower than
		// fingerWidth). An already-odd floor count keeps segments at or
		// above fingerWidth.
		count++
	}
	segWidth := available / float64(count)

	points := make([]float64, count+1)
	for i := 0; i <= count; i++ {
		points[i] = innerOffset + float64(i)*segWidth
	}

	return FingerData{
		Points:         points,
		InnerOffset:    innerOffset,
		MaxJointLength: jointLength,
	}, nil
}
