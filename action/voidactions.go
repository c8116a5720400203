// File: voidactions.go — void-tree mutations: subdivide (single-axis and
// grid), clear-subdivision, divider-move, and nested sub-assembly
// create/remove/clearance-update (spec §4.10).
package action

import (
	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/core"
	"github.com/katalvlaran/fingerbox/geomkit"
	"github.com/katalvlaran/fingerbox/void"
)

// materialThickness resolves the governing material thickness for a
// void-tree operation: the thickness of the nearest enclosing assembly,
// looked up by walking s.Parent until an *assembly.Assembly (or
// SubAssembly) is found.
func materialThickness(s *core.Scene, id core.NodeID) (float64, bool) {
	for id != "" {
		if n, ok := s.FindByID(id); ok {
			switch t := n.(type) {
			case *assembly.Assembly:
				return t.Material.Thickness, true
			case *assembly.SubAssembly:
				return t.Material.Thickness, true
			}
		}
		id = s.Parent(id)
	}
	return 0, false
}

// SubdivideVoid implements the single-axis subdivide action.
type SubdivideVoid struct {
	TargetID core.NodeID
	Axis     geomkit.Axis
	Position float64
	Mode     void.SplitMode
}

func (a SubdivideVoid) Apply(s *core.Scene) (bool, string) {
	target, ok := resolveVoid(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	mt, ok := materialThickness(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	if _, err := target.Subdivide(s, a.Axis, a.Position, a.Mode, mt); err != nil {
		return false, err.Error()
	}
	return true, ""
}

// SubdivideGridVoid implements the grid-subdivide action.
type SubdivideGridVoid struct {
	TargetID core.NodeID
	Specs    []void.GridAxisSpec
}

func (a SubdivideGridVoid) Apply(s *core.Scene) (bool, string) {
	target, ok := resolveVoid(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	mt, ok := materialThickness(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	if _, err := target.SubdivideGrid(s, mt, a.Specs...); err != nil {
		return false, err.Error()
	}
	return true, ""
}

// ClearSubdivision implements the clear-subdivision action.
type ClearSubdivision struct {
	TargetID core.NodeID
}

func (a ClearSubdivision) Apply(s *core.Scene) (bool, string) {
	target, ok := resolveVoid(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	if err := target.ClearSubdivision(s); err != nil {
		return false, err.Error()
	}
	return true, ""
}

// MoveDivider implements the divider-move action: TargetID names the
// divider void itself (the split-carrying second child); ParentID names
// its containing void.
type MoveDivider struct {
	TargetID    core.NodeID
	ParentID    core.NodeID
	NewPosition float64
}

func (a MoveDivider) Apply(s *core.Scene) (bool, string) {
	target, ok := resolveVoid(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	parent, ok := resolveVoid(s, a.ParentID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	mt, ok := materialThickness(s, a.ParentID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	if err := target.MoveDivider(s, parent, a.NewPosition, mt); err != nil {
		return false, err.Error()
	}
	return true, ""
}

// CreateSubAssembly implements the sub-assembly-create action: hosts a
// freshly constructed Assembly inside the leaf void named by TargetID.
type CreateSubAssembly struct {
	TargetID  core.NodeID
	Clearance float64
	Opts      []assembly.Option
}

func (a CreateSubAssembly) Apply(s *core.Scene) (bool, string) {
	target, ok := resolveVoid(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	sub, err := assembly.NewSubAssembly(s, a.TargetID, a.Clearance, target.Bounds(), a.Opts...)
	if err != nil {
		return false, err.Error()
	}
	if err := target.HostSubAssembly(s, sub); err != nil {
		return false, err.Error()
	}
	return true, ""
}

// RemoveSubAssembly implements the sub-assembly-remove action.
type RemoveSubAssembly struct {
	TargetID core.NodeID
}

func (a RemoveSubAssembly) Apply(s *core.Scene) (bool, string) {
	target, ok := resolveVoid(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	if err := target.RemoveSubAssembly(s); err != nil {
		return false, err.Error()
	}
	return true, ""
}

// SetSubAssemblyClearance implements the sub-assembly clearance-update
// action: TargetID names the hosting void.
type SetSubAssemblyClearance struct {
	TargetID  core.NodeID
	Clearance float64
}

func (a SetSubAssemblyClearance) Apply(s *core.Scene) (bool, string) {
	target, ok := resolveVoid(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	hosted := target.HostedAssembly()
	if hosted == nil {
		return false, void.ErrNotHosting.Error()
	}
	sa, ok := hosted.(*assembly.SubAssembly)
	if !ok {
		return false, ErrWrongNodeKind.Error()
	}
	if a.Clearance < 0 {
		return false, assembly.ErrInvalidClearance.Error()
	}
	sa.Clearance = a.Clearance
	sa.ResizeToVoid(target.Bounds())
	s.MarkDirty(target.ID())
	return true, ""
}
