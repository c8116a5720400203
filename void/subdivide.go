// File: subdivide.go — single-axis subdivision and clearing.
//
// Grounded on builder/impl_grid.go's validate-then-emit shape: fail fast on
// bad parameters with a sentinel error and do no partial work, then emit
// deterministically.
package void

import (
	"github.com/katalvlaran/fingerbox/core"
	"github.com/katalvlaran/fingerbox/geomkit"
)

// Subdivide splits a leaf void at (axis, position, mt) into exactly two
// child voids, per spec §4.2: the non-split axes keep the parent's extent;
// the split axis extends [low, position-mt/2] for the first child and
// [position+mt/2, high] for the second, which carries the split info.
//
// position is the already-resolved absolute mm position along axis, in
// this void's local coordinate frame; mode is recorded in the split info
// and does not affect this call's geometry (Resize rescales from the
// stored percentage in either mode).
func (v *Void) Subdivide(s *core.Scene, axis geomkit.Axis, position float64, mode SplitMode, mt float64) ([2]*Void, error) {
	if !v.IsLeaf() {
		return [2]*Void{}, ErrNotLeaf
	}
	low, high := v.bounds.AxisRange(axis)
	if position-mt/2 <= low || position+mt/2 >= high {
		return [2]*Void{}, ErrPositionOutOfRange
	}

	boundsA := v.bounds.WithAxisRange(axis, low, position-mt/2)
	boundsB := v.bounds.WithAxisRange(axis, position+mt/2, high)

	childA := NewLeaf(s.NextID(core.KindVoid), boundsA)
	childB := NewLeaf(s.NextID(core.KindVoid), boundsB)
	childB.split = &SplitInfo{
		Axis:       axis,
		Position:   position,
		Mode:       mode,
		Percentage: (position - low) / (high - low),
	}

	v.children = []*Void{childA, childB}
	s.Register(childA, v.id)
	s.Register(childB, v.id)

	return [2]*Void{childA, childB}, nil
}

// ClearSubdivision removes all child voids, returning v to a leaf. Per
// spec §4.2, a hosted sub-assembly (if any — mutually exclusive in
// practice, since a void is either subdivided or hosting) is untouched.
func (v *Void) ClearSubdivision(s *core.Scene) error {
	if len(v.children) == 0 {
		return ErrNotSubdivided
	}
	for _, c := range v.children {
		s.Unregister(c.ID())
	}
	v.children = nil
	v.grid = nil
	s.MarkDirty(v.id)
	return nil
}

// MoveDivider relocates the split position of v (which must be a non-root
// child carrying SplitInfo, i.e. the second child of some simple
// subdivide) to a new absolute position within the legal range of its
// containing parent void, then resizes both sibling bounds to match.
// Parent is the void whose children are [sibling, v].
func (v *Void) MoveDivider(s *core.Scene, parent *Void, newPosition, mt float64) error {
	if v.split == nil {
		return ErrNotSubdivided
	}
	axis := v.split.Axis
	low, high := parent.bounds.AxisRange(axis)
	if newPosition-mt/2 <= low || newPosition+mt/2 >= high {
		return ErrPositionOutOfRange
	}
	var sibling *Void
	for _, c := range parent.children {
		if c.ID() != v.id {
			sibling = c
		}
	}
	if sibling == nil {
		return ErrNotSubdivided
	}
	siblingLow, _ := sibling.bounds.AxisRange(axis)
	sibling.bounds = sibling.bounds.WithAxisRange(axis, siblingLow, newPosition-mt/2)
	v.bounds = v.bounds.WithAxisRange(axis, newPosition+mt/2, high)
	v.split.Position = newPosition
	v.split.Percentage = (newPosition - low) / (high - low)

	s.MarkDirty(sibling.ID())
	s.MarkDirty(v.id)
	return nil
}
