// File: feet.go — feet profile on a downward-facing wall's bottom edge
// (spec §4.8 item 2).
package outline

import (
	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/geomkit"
)

// applyFeet replaces the bottom edge's run with a two-legged foot profile
// when feet is enabled and isBottomWall is set (the caller decides that:
// a wall face, as opposed to a lid, whose bottom edge rests on the
// ground). rightX/leftX/baseY are read from the edge's own current
// (possibly extended) corners, so feet compose correctly after step 1.
func applyFeet(runs runSet, feet *assembly.Feet, isBottomWall bool) runSet {
	if feet == nil || !feet.Enabled || !isBottomWall {
		return runs
	}

	bottom := runs[geomkit.EdgeBottom]
	rightX := bottom[0].X
	baseY := bottom[0].Y
	leftX := runs[clockwiseNext(geomkit.EdgeBottom)][0].X

	legTop := baseY
	legBottom := baseY - feet.Height
	rightLegOuter := rightX - feet.Inset
	rightLegInner := rightLegOuter - feet.Width
	leftLegOuter := leftX + feet.Inset
	leftLegInner := leftLegOuter + feet.Width

	runs[geomkit.EdgeBottom] = geomkit.Polygon{
		{X: rightX, Y: baseY},
		{X: rightLegOuter, Y: legTop},
		{X: rightLegOuter, Y: legBottom},
		{X: rightLegInner, Y: legBottom},
		{X: rightLegInner, Y: legTop},
		{X: leftLegInner, Y: legTop},
		{X: leftLegInner, Y: legBottom},
		{X: leftLegOuter, Y: legBottom},
		{X: leftLegOuter, Y: legTop},
	}
	return runs
}
