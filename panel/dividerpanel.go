// File: dividerpanel.go — DividerPanel derivation (spec §4.6).
package panel

import (
	"fmt"

	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/core"
	"github.com/katalvlaran/fingerbox/finger"
	"github.com/katalvlaran/fingerbox/geomkit"
	"github.com/katalvlaran/fingerbox/void"
)

const wallTouchEps = 1e-6

// DividerPanel is the derived geometry of one divider plane: either the
// split-carrying second child of a simple subdivide, or one position
// along one axis of a grid subdivision (spec §4.2).
type DividerPanel struct {
	panelShape
	voidID   core.NodeID
	axis     geomkit.Axis
	position float64
}

// DeriveDivider builds the DividerPanel for the divider plane at (axis,
// position) within parent, identified by voidID (a real void's ID for a
// simple subdivide, or a synthesized one for a grid divider — see
// gridDividerID). a supplies the material recipe and finger memo; parent
// supplies the bounds the divider spans. notches are this divider's
// cross-lap assignments from FindCrossLaps, if any.
func DeriveDivider(a *assembly.Assembly, parent *void.Void, voidID core.NodeID, axis geomkit.Axis, position float64, notches ...CrossLapNotch) (*DividerPanel, error) {
	geom := resolveDividerGeometry(a, parent, axis, position)
	thickness := a.Material.Thickness

	memo := a.FingerMemo()
	var edges [4]edgeSpec
	var configs [4]EdgeConfig
	touchesWall := map[geomkit.EdgePosition]bool{
		geomkit.EdgeRight:  geom.TouchesWallU[1],
		geomkit.EdgeLeft:   geom.TouchesWallU[0],
		geomkit.EdgeTop:    geom.TouchesWallV[1],
		geomkit.EdgeBottom: geom.TouchesWallV[0],
	}
	for i, pos := range geomkit.ClockwiseEdgeOrder {
		gender := geomkit.GenderNone
		axis := geom.VAxis
		run := 2 * geom.HalfV
		if pos == geomkit.EdgeTop || pos == geomkit.EdgeBottom {
			axis = geom.UAxis
			run = 2 * geom.HalfU
		}
		if touchesWall[pos] {
			gender = geomkit.GenderMale
		}

		var data finger.FingerData
		if gender != geomkit.GenderNone {
			var err error
			data, err = memo.Get(axis, run, a.Material)
			if err != nil {
				return nil, fmt.Errorf("panel: derive divider %s edge %s: %w", voidID, pos, err)
			}
		}

		var edgeNotches []notchSpec
		var skips []skipRange
		for _, n := range notches {
			if n.Edge != pos {
				continue
			}
			edgeNotches = append(edgeNotches, notchSpec{Coord: n.Coord, HalfWidth: n.HalfWidth, Depth: n.Depth})
			skips = append(skips, skipRange{From: n.Coord - n.HalfWidth - thickness, To: n.Coord + n.HalfWidth - thickness})
		}
		edges[i] = edgeSpec{Position: pos, Gender: gender, Data: data, SkipFrom: skips, Notches: edgeNotches}

		status := EdgeUnlocked
		if gender != geomkit.GenderNone {
			status = EdgeLocked
		}
		var meetsFace *geomkit.FaceID
		if touchesWall[pos] {
			f := wallFaceFor(pos, geom)
			meetsFace = &f
		}
		configs[i] = EdgeConfig{
			Position:    pos,
			HasTabs:     gender != geomkit.GenderNone,
			MeetsFaceID: meetsFace,
			Gender:      gender,
			WorldAxis:   axis,
			Status:      status,
		}
	}

	outer, runs := buildBaseOutline(geom.HalfU, geom.HalfV, thickness, edges)
	outline := geomkit.NewOutline(outer)

	var pos geomkit.Vec3
	pos = setAxisComponent(pos, geom.Axis, geom.Position)
	pos = setAxisComponent(pos, geom.UAxis, geom.CenterU)
	pos = setAxisComponent(pos, geom.VAxis, geom.CenterV)

	basis := faceBasis{UAxis: geom.UAxis, USign: 1, VAxis: geom.VAxis, VSign: 1, NormalAxis: geom.Axis, NormalSign: -1}

	return &DividerPanel{
		voidID:   voidID,
		axis:     geom.Axis,
		position: geom.Position,
		panelShape: panelShape{
			width:     2 * geom.HalfU,
			height:    2 * geom.HalfV,
			thickness: thickness,
			edges:     configs,
			outline:   outline,
			edgeRuns:  runs,
			transform: geomkit.Transform3D{Pos: pos, Rot: basisMat3(basis)},
		},
	}, nil
}

// PanelID implements Panel.
func (p *DividerPanel) PanelID() string {
	return string(assembly.DividerPanelID(p.voidID, p.axis, p.position))
}

// wallFaceFor returns the outer face a divider's edge at pos reaches
// when that end touches the assembly's outer shell (touchesWall[pos]).
func wallFaceFor(pos geomkit.EdgePosition, geom dividerGeometry) geomkit.FaceID {
	switch pos {
	case geomkit.EdgeRight:
		return faceForAxisEnd(geom.UAxis, true)
	case geomkit.EdgeLeft:
		return faceForAxisEnd(geom.UAxis, false)
	case geomkit.EdgeTop:
		return faceForAxisEnd(geom.VAxis, true)
	default:
		return faceForAxisEnd(geom.VAxis, false)
	}
}

// setAxisComponent returns v with its component along axis set to val.
func setAxisComponent(v geomkit.Vec3, axis geomkit.Axis, val float64) geomkit.Vec3 {
	switch axis {
	case geomkit.AxisX:
		v.X = val
	case geomkit.AxisY:
		v.Y = val
	default:
		v.Z = val
	}
	return v
}

// endExtension reports the (lowEnd, highEnd) extension to add to a
// divider's body at a void boundary that touches the assembly's outer
// wall (0, fingers alone reach the outer surface) versus one that meets
// another divider (material-thickness extension, spec §4.6).
func endExtension(low, high, fullLow, fullHigh, thickness float64) (lowExt, highExt float64) {
	if low-fullLow > wallTouchEps {
		lowExt = thickness
	}
	if fullHigh-high > wallTouchEps {
		highExt = thickness
	}
	return lowExt, highExt
}
