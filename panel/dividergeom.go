// File: dividergeom.go — the body-span geometry shared by DeriveDivider
// and the cross-lap detector, so both derive identical numbers from the
// same (parent, axis, position) divider plane (spec §4.6).
package panel

import (
	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/geomkit"
	"github.com/katalvlaran/fingerbox/void"
)

// dividerGeometry is the resolved placement of one divider panel's body.
type dividerGeometry struct {
	Axis             geomkit.Axis // the divider plane's own normal axis
	UAxis, VAxis     geomkit.Axis
	HalfU, HalfV     float64
	CenterU, CenterV float64 // world coordinate of local (0,0) along UAxis/VAxis
	Position         float64 // divider plane's coordinate along Axis
	TouchesWallU     [2]bool // [low, high] ends along UAxis
	TouchesWallV     [2]bool // [low, high] ends along VAxis
}

// resolveDividerGeometry computes the body span of a divider plane at
// (axis, position) within parent, per spec §4.6: full void extent plus a
// material thickness at each end that meets another divider rather than
// the outer wall. parent supplies the same bounds for both a simple
// subdivide's split-carrying child (its parent void) and a grid
// subdivision's divider lines (the grid-holding void itself, since spec
// §4.2 has grid dividers span the full parent extent as a unit).
func resolveDividerGeometry(a *assembly.Assembly, parent *void.Void, axis geomkit.Axis, position float64) dividerGeometry {
	uAxis, vAxis := prevAxis(axis), nextAxis(axis)
	thickness := a.Material.Thickness
	full := a.Bounds3D()

	pLow, pHigh := parent.Bounds().AxisRange(uAxis)
	fuLow, fuHigh := full.AxisRange(uAxis)
	uLowExt, uHighExt := endExtension(pLow, pHigh, fuLow, fuHigh, thickness)
	qLow, qHigh := parent.Bounds().AxisRange(vAxis)
	fvLow, fvHigh := full.AxisRange(vAxis)
	vLowExt, vHighExt := endExtension(qLow, qHigh, fvLow, fvHigh, thickness)

	return dividerGeometry{
		Axis:         axis,
		UAxis:        uAxis,
		VAxis:        vAxis,
		HalfU:        ((pHigh - pLow) + uLowExt + uHighExt) / 2,
		HalfV:        ((qHigh - qLow) + vLowExt + vHighExt) / 2,
		CenterU:      (pLow - uLowExt + pHigh + uHighExt) / 2,
		CenterV:      (qLow - vLowExt + qHigh + vHighExt) / 2,
		Position:     position,
		TouchesWallU: [2]bool{uLowExt == 0, uHighExt == 0},
		TouchesWallV: [2]bool{vLowExt == 0, vHighExt == 0},
	}
}
