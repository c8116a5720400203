// File: panelactions.go — the panel-keyed set-batch-and-delete actions
// (spec §4.10): edge extensions, corner fillets, custom edge paths, and
// cutouts, each addressed by assembly.PanelID rather than a core.NodeID
// (panels are derived, not scene nodes — spec §6).
package action

import (
	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/core"
	"github.com/katalvlaran/fingerbox/geomkit"
)

// SetExtensions replaces a panel's edge-extension set.
type SetExtensions struct {
	TargetID   core.NodeID
	PanelID    assembly.PanelID
	Extensions assembly.EdgeExtensions
}

func (a SetExtensions) Apply(s *core.Scene) (bool, string) {
	target, ok := resolveAssembly(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	if err := target.SetExtensions(a.PanelID, a.Extensions); err != nil {
		return false, err.Error()
	}
	s.MarkDirty(a.TargetID)
	return true, ""
}

// DeleteExtensions clears a panel's edge-extension set.
type DeleteExtensions struct {
	TargetID core.NodeID
	PanelID  assembly.PanelID
}

func (a DeleteExtensions) Apply(s *core.Scene) (bool, string) {
	target, ok := resolveAssembly(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	target.DeleteExtensions(a.PanelID)
	s.MarkDirty(a.TargetID)
	return true, ""
}

// SetFillets replaces a panel's corner-fillet map.
type SetFillets struct {
	TargetID core.NodeID
	PanelID  assembly.PanelID
	Fillets  map[geomkit.Corner]float64
}

func (a SetFillets) Apply(s *core.Scene) (bool, string) {
	target, ok := resolveAssembly(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	if err := target.SetFillets(a.PanelID, a.Fillets); err != nil {
		return false, err.Error()
	}
	s.MarkDirty(a.TargetID)
	return true, ""
}

// DeleteFillets clears a panel's corner-fillet map.
type DeleteFillets struct {
	TargetID core.NodeID
	PanelID  assembly.PanelID
}

func (a DeleteFillets) Apply(s *core.Scene) (bool, string) {
	target, ok := resolveAssembly(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	target.DeleteFillets(a.PanelID)
	s.MarkDirty(a.TargetID)
	return true, ""
}

// SetEdgePaths replaces a panel's custom-edge-path map.
type SetEdgePaths struct {
	TargetID  core.NodeID
	PanelID   assembly.PanelID
	EdgePaths map[geomkit.EdgePosition]geomkit.EdgePath
}

func (a SetEdgePaths) Apply(s *core.Scene) (bool, string) {
	target, ok := resolveAssembly(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	target.SetEdgePaths(a.PanelID, a.EdgePaths)
	s.MarkDirty(a.TargetID)
	return true, ""
}

// DeleteEdgePaths clears a panel's custom-edge-path map.
type DeleteEdgePaths struct {
	TargetID core.NodeID
	PanelID  assembly.PanelID
}

func (a DeleteEdgePaths) Apply(s *core.Scene) (bool, string) {
	target, ok := resolveAssembly(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	target.DeleteEdgePaths(a.PanelID)
	s.MarkDirty(a.TargetID)
	return true, ""
}

// SetCutouts replaces a panel's cutout list.
type SetCutouts struct {
	TargetID core.NodeID
	PanelID  assembly.PanelID
	Cutouts  []geomkit.Cutout
}

func (a SetCutouts) Apply(s *core.Scene) (bool, string) {
	target, ok := resolveAssembly(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	target.SetCutouts(a.PanelID, a.Cutouts)
	s.MarkDirty(a.TargetID)
	return true, ""
}

// DeleteCutouts clears a panel's cutout list.
type DeleteCutouts struct {
	TargetID core.NodeID
	PanelID  assembly.PanelID
}

func (a DeleteCutouts) Apply(s *core.Scene) (bool, string) {
	target, ok := resolveAssembly(s, a.TargetID)
	if !ok {
		return false, ErrTargetNotFound.Error()
	}
	target.DeleteCutouts(a.PanelID)
	s.MarkDirty(a.TargetID)
	return true, ""
}
