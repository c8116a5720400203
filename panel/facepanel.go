// File: facepanel.go — FacePanel derivation (spec §4.5).
package panel

import (
	"fmt"

	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/finger"
	"github.com/katalvlaran/fingerbox/geomkit"
)

// FacePanel is the derived geometry of one of the assembly's six outer
// faces. It is never stored on the Assembly; DeriveFace computes a fresh
// value from the assembly's current state and its memoised finger data.
type FacePanel struct {
	panelShape
	faceID geomkit.FaceID
}

// DeriveFace builds the FacePanel for faceID from a's current state. It
// returns ErrFaceNotSolid if the face has been turned into an opening.
func DeriveFace(a *assembly.Assembly, faceID geomkit.FaceID) (*FacePanel, error) {
	if !a.Face(faceID).Solid {
		return nil, ErrFaceNotSolid
	}

	basis := faceBases[faceID]
	dimOf := func(axis geomkit.Axis) float64 {
		switch axis {
		case geomkit.AxisX:
			return a.Width
		case geomkit.AxisY:
			return a.Height
		default:
			return a.Depth
		}
	}

	width, height := dimOf(basis.UAxis), dimOf(basis.VAxis)
	if lid, isLid := a.IsLid(faceID); isLid && lid.Inset > 0 {
		width -= 2 * lid.Inset
		height -= 2 * lid.Inset
	}
	halfU, halfV := width/2, height/2
	thickness := a.Material.Thickness

	memo := a.FingerMemo()
	var edges [4]edgeSpec
	var configs [4]EdgeConfig
	for i, pos := range geomkit.ClockwiseEdgeOrder {
		gender := FaceEdgeGender(a, faceID, pos)
		axis := edgeAxis(faceID, pos)
		neighbor := MeetingFace(faceID, pos)

		var data finger.FingerData
		if gender != geomkit.GenderNone {
			run := width
			if axis == basis.VAxis {
				run = height
			}
			var err error
			data, err = memo.Get(axis, run, a.Material)
			if err != nil {
				return nil, fmt.Errorf("panel: derive face %s edge %s: %w", faceID, pos, err)
			}
		}
		edges[i] = edgeSpec{Position: pos, Gender: gender, Data: data}

		status := EdgeUnlocked
		if gender != geomkit.GenderNone {
			status = EdgeLocked
		}
		var meetsFace *geomkit.FaceID
		if gender != geomkit.GenderNone {
			f := neighbor
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

	outer, runs := buildBaseOutline(halfU, halfV, thickness, edges)
	outline := geomkit.NewOutline(outer)
	holes, err := dividerHoles(a, faceID, halfU, halfV, thickness)
	if err != nil {
		return nil, fmt.Errorf("panel: derive face %s: %w", faceID, err)
	}
	for _, hole := range holes {
		outline.AddHole(hole)
	}

	center := a.Bounds3D().Center()
	normalVec := axisUnit(basis.NormalAxis).Scale(basis.NormalSign)
	halfNormal := dimOf(basis.NormalAxis) / 2
	pos := center.Add(normalVec.Scale(halfNormal - thickness/2))

	return &FacePanel{
		faceID: faceID,
		panelShape: panelShape{
			width:     width,
			height:    height,
			thickness: thickness,
			edges:     configs,
			outline:   outline,
			edgeRuns:  runs,
			transform: geomkit.Transform3D{Pos: pos, Rot: basisMat3(basis)},
		},
	}, nil
}

// PanelID implements Panel.
func (p *FacePanel) PanelID() string { return string(assembly.FacePanelID(p.faceID)) }
