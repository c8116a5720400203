// File: types.go — the Action interface and the fixed action set spec
// §4.10 names. Each concrete type is self-contained: it knows its own
// target and payload, and resolves/validates/applies/marks-dirty in one
// method call.
package action

import (
	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/core"
	"github.com/katalvlaran/fingerbox/finger"
	"github.com/katalvlaran/fingerbox/geomkit"
	"github.com/katalvlaran/fingerbox/void"
)

// Action is one typed, self-contained scene mutation (spec §4.10:
// "Actions are typed {type: action-kind, targetId: node-id, payload:
// per-kind}"). Apply locates its own target within s, validates and
// applies the mutation, and marks the affected subtree dirty on success.
// It never panics; rejection is reported through the return value only.
type Action interface {
	Apply(s *core.Scene) (ok bool, reason string)
}

// resolveAssembly locates id in s as an *assembly.Assembly (which
// SubAssembly also satisfies, being an embedded Assembly under a
// distinct core.Kind).
func resolveAssembly(s *core.Scene, id core.NodeID) (*assembly.Assembly, bool) {
	n, ok := s.FindByID(id)
	if !ok {
		return nil, false
	}
	switch t := n.(type) {
	case *assembly.Assembly:
		return t, true
	case *assembly.SubAssembly:
		return t.Assembly, true
	default:
		return nil, false
	}
}

func resolveVoid(s *core.Scene, id core.NodeID) (*void.Void, bool) {
	n, ok := s.FindByID(id)
	if !ok {
		return nil, false
	}
	v, ok := n.(*void.Void)
	return v, ok
}

// ResizeAssembly implements the dimension-change action.
type ResizeAssembly struct {
	TargetID             core.NodeID
	Width, Height, Depth float64
}

func (a ResizeAssembly) Apply(s *core.Scene) (bool, string) {
	target, ok := resolveAssembly(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	if err := target.Resize(a.Width, a.Height, a.Depth); err != nil {
		return false, err.Error()
	}
	s.MarkDirty(a.TargetID)
	return true, ""
}

// SetMaterial implements the material-change action.
type SetMaterial struct {
	TargetID core.NodeID
	Material finger.MaterialConfig
}

func (a SetMaterial) Apply(s *core.Scene) (bool, string) {
	target, ok := resolveAssembly(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	if err := target.SetMaterial(a.Material); err != nil {
		return false, err.Error()
	}
	s.MarkDirty(a.TargetID)
	return true, ""
}

// SetFaceSolid implements the face-solidity action.
type SetFaceSolid struct {
	TargetID core.NodeID
	Face     geomkit.FaceID
	Solid    bool
}

func (a SetFaceSolid) Apply(s *core.Scene) (bool, string) {
	target, ok := resolveAssembly(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	target.SetFace(a.Face, a.Solid)
	s.MarkDirty(a.TargetID)
	return true, ""
}

// SetAssemblyConfig implements the combined assembly-axis/lid-config
// action (spec §4.10 lists these as two effects of one recognized option
// bundle, AssemblyConfig; see DESIGN.md).
type SetAssemblyConfig struct {
	TargetID core.NodeID
	Config   assembly.AssemblyConfig
}

func (a SetAssemblyConfig) Apply(s *core.Scene) (bool, string) {
	target, ok := resolveAssembly(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	if err := target.SetAssemblyConfig(a.Config); err != nil {
		return false, err.Error()
	}
	s.MarkDirty(a.TargetID)
	return true, ""
}

// SetFeet implements the feet-configuration action. Feet == nil disables
// feet.
type SetFeet struct {
	TargetID core.NodeID
	Feet     *assembly.Feet
}

func (a SetFeet) Apply(s *core.Scene) (bool, string) {
	target, ok := resolveAssembly(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	if err := target.SetFeet(a.Feet); err != nil {
		return false, err.Error()
	}
	s.MarkDirty(a.TargetID)
	return true, ""
}
