package main

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/fingerbox/action"
	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/core"
	"github.com/katalvlaran/fingerbox/finger"
	"github.com/katalvlaran/fingerbox/geomkit"
	"github.com/katalvlaran/fingerbox/void"
)

// actionEnvelope is the wire shape of one entry in a JSON action stream
// (spec §4.10: "typed {type, targetId, payload}"). Enum-valued fields
// (Axis, TabDirection, SplitMode, FaceID) are encoded as their
// underlying int.
type actionEnvelope struct {
	Kind     string          `json:"kind"`
	TargetID string          `json:"targetId"`
	PanelID  string          `json:"panelId,omitempty"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

func (e actionEnvelope) decode() (action.Action, error) {
	target := core.NodeID(e.TargetID)
	switch e.Kind {
	case "resizeAssembly":
		var p struct{ Width, Height, Depth float64 }
		if err := e.unmarshal(&p); err != nil {
			return nil, err
		}
		return action.ResizeAssembly{TargetID: target, Width: p.Width, Height: p.Height, Depth: p.Depth}, nil

	case "setMaterial":
		var p finger.MaterialConfig
		if err := e.unmarshal(&p); err != nil {
			return nil, err
		}
		return action.SetMaterial{TargetID: target, Material: p}, nil

	case "setFaceSolid":
		var p struct {
			Face  geomkit.FaceID
			Solid bool
		}
		if err := e.unmarshal(&p); err != nil {
			return nil, err
		}
		return action.SetFaceSolid{TargetID: target, Face: p.Face, Solid: p.Solid}, nil

	case "setAssemblyConfig":
		var p assembly.AssemblyConfig
		if err := e.unmarshal(&p); err != nil {
			return nil, err
		}
		return action.SetAssemblyConfig{TargetID: target, Config: p}, nil

	case "setFeet":
		var p assembly.Feet
		if err := e.unmarshal(&p); err != nil {
			return nil, err
		}
		return action.SetFeet{TargetID: target, Feet: &p}, nil

	case "setExtensions":
		var p assembly.EdgeExtensions
		if err := e.unmarshal(&p); err != nil {
			return nil, err
		}
		return action.SetExtensions{TargetID: target, PanelID: assembly.PanelID(e.PanelID), Extensions: p}, nil

	case "deleteExtensions":
		return action.DeleteExtensions{TargetID: target, PanelID: assembly.PanelID(e.PanelID)}, nil

	case "setFillets":
		var p map[geomkit.Corner]float64
		if err := e.unmarshal(&p); err != nil {
			return nil, err
		}
		return action.SetFillets{TargetID: target, PanelID: assembly.PanelID(e.PanelID), Fillets: p}, nil

	case "deleteFillets":
		return action.DeleteFillets{TargetID: target, PanelID: assembly.PanelID(e.PanelID)}, nil

	case "setCutouts":
		var p []geomkit.Cutout
		if err := e.unmarshal(&p); err != nil {
			return nil, err
		}
		return action.SetCutouts{TargetID: target, PanelID: assembly.PanelID(e.PanelID), Cutouts: p}, nil

	case "deleteCutouts":
		return action.DeleteCutouts{TargetID: target, PanelID: assembly.PanelID(e.PanelID)}, nil

	case "subdivideVoid":
		var p struct {
			Axis     geomkit.Axis
			Position float64
			Mode     void.SplitMode
		}
		if err := e.unmarshal(&p); err != nil {
			return nil, err
		}
		return action.SubdivideVoid{TargetID: target, Axis: p.Axis, Position: p.Position, Mode: p.Mode}, nil

	case "subdivideGridVoid":
		var p struct{ Specs []void.GridAxisSpec }
		if err := e.unmarshal(&p); err != nil {
			return nil, err
		}
		return action.SubdivideGridVoid{TargetID: target, Specs: p.Specs}, nil

	case "clearSubdivision":
		return action.ClearSubdivision{TargetID: target}, nil

	default:
		return nil, fmt.Errorf("unknown action kind %q", e.Kind)
	}
}

func (e actionEnvelope) unmarshal(v any) error {
	if len(e.Payload) == 0 {
		return fmt.Errorf("action %q requires a payload", e.Kind)
	}
	return json.Unmarshal(e.Payload, v)
}
