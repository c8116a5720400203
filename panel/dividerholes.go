// File: dividerholes.go — face-panel cutouts where an interior divider
// crosses an outer face (spec §4.5's "divider-crossing holes").
//
// Every divider anywhere in the void tree is considered: a direct
// single-axis subdivision of the root, a nested subdivision at any
// depth, or a grid division (spec §8 scenario 3's 2x2 grid organizer,
// where the bottom face needs slot holes for both grid dividers).
package panel

import (
	"fmt"

	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/finger"
	"github.com/katalvlaran/fingerbox/geomkit"
)

// dividerHoles returns the hole polygons (panel-local, halfU x halfV
// frame) that every divider crossing faceID punches into it.
func dividerHoles(a *assembly.Assembly, faceID geomkit.FaceID, halfU, halfV, thickness float64) ([]geomkit.Polygon, error) {
	basis := faceBases[faceID]
	var holes []geomkit.Polygon
	for _, dn := range collectDividers(a.Root()) {
		if dn.Axis == basis.NormalAxis {
			continue // divider plane is parallel to this face; it never crosses it
		}
		crossing, err := crossingSlots(a, basis, dn.Axis, dn.Position, halfU, halfV, thickness)
		if err != nil {
			return nil, fmt.Errorf("panel: divider holes for face %s: %w", faceID, err)
		}
		holes = append(holes, crossing...)
	}
	return holes, nil
}

// crossingSlots builds the slot array for one divider plane (dividerAxis,
// dividerPosition) crossing a face with the given basis: a rectangular
// slot of width = thickness, length = tab length, at every interior tab
// of the shared finger sequence running along the crossing line, per
// spec §4.5. The sequence is the same one memoised for the divider's own
// edge along that direction, so the holes line up with its teeth. The
// first and last tab are always dropped since they sit at the panel's
// own corners, where a slot would merge into the corner's finger joint.
func crossingSlots(a *assembly.Assembly, basis faceBasis, dividerAxis geomkit.Axis, dividerPosition, halfU, halfV, thickness float64) ([]geomkit.Polygon, error) {
	rootBounds := a.Root().Bounds()
	axisOrigin := func(axis geomkit.Axis) float64 {
		switch axis {
		case geomkit.AxisX:
			return rootBounds.X
		case geomkit.AxisY:
			return rootBounds.Y
		default:
			return rootBounds.Z
		}
	}
	dimOf := func(axis geomkit.Axis) float64 {
		switch axis {
		case geomkit.AxisX:
			return rootBounds.W
		case geomkit.AxisY:
			return rootBounds.H
		default:
			return rootBounds.D
		}
	}

	memo := a.FingerMemo()

	switch dividerAxis {
	case basis.UAxis:
		localU := basis.USign * (dividerPosition - axisOrigin(dividerAxis) - dimOf(dividerAxis)/2)
		data, err := memo.Get(basis.VAxis, 2*halfV, a.Material)
		if err != nil {
			return nil, err
		}
		return slotsAlong(data, localU, halfU, halfV, thickness, true), nil
	case basis.VAxis:
		localV := basis.VSign * (dividerPosition - axisOrigin(dividerAxis) - dimOf(dividerAxis)/2)
		data, err := memo.Get(basis.UAxis, 2*halfU, a.Material)
		if err != nil {
			return nil, err
		}
		return slotsAlong(data, localV, halfU, halfV, thickness, false), nil
	default:
		return nil, nil
	}
}

// slotsAlong builds one rectangle per interior tab region of data, each
// thickness wide at fixedCoord and running the tab's own span along the
// crossing direction. alongU selects whether the run direction is the
// face's U axis (fixedCoord is a U position, tabs run along V) or its V
// axis (fixedCoord is a V position, tabs run along U).
func slotsAlong(data finger.FingerData, fixedCoord, halfU, halfV, thickness float64, alongU bool) []geomkit.Polygon {
	half := thickness / 2
	runHalf := halfV
	if !alongU {
		runHalf = halfU
	}

	var slots []geomkit.Polygon
	lastSeg := len(data.Points) - 2
	for i := 0; i < len(data.Points)-1; i++ {
		if !data.IsTabRegion(i) || i == 0 || i == lastSeg {
			continue
		}
		// Points are joint-span offsets; the span starts one thickness in
		// from the panel edge, as on the divider's own finger edge.
		from := -runHalf + thickness + data.Points[i]
		to := -runHalf + thickness + data.Points[i+1]

		var poly geomkit.Polygon
		if alongU {
			// fixedCoord is a U position; the slot runs along V.
			poly = geomkit.Polygon{
				{X: fixedCoord - half, Y: to},
				{X: fixedCoord + half, Y: to},
				{X: fixedCoord + half, Y: from},
				{X: fixedCoord - half, Y: from},
			}
		} else {
			// fixedCoord is a V position; the slot runs along U.
			poly = geomkit.Polygon{
				{X: from, Y: fixedCoord + half},
				{X: to, Y: fixedCoord + half},
				{X: to, Y: fixedCoord - half},
				{X: from, Y: fixedCoord - half},
			}
		}
		slots = append(slots, poly)
	}
	return slots
}
