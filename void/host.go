// File: host.go — hosting a nested sub-assembly inside a leaf void.
package void

import (
	"github.com/katalvlaran/fingerbox/core"
)

// HostSubAssembly installs sub as the contents of leaf void v, registering
// it in the scene as v's child. v must be a leaf (spec §3: a void is
// exactly one of leaf, subdivided-parent, or hosting).
func (v *Void) HostSubAssembly(s *core.Scene, sub HostedAssembly) error {
	if !v.IsLeaf() {
		return ErrNotLeaf
	}
	v.sub = sub
	s.Register(sub, v.id)
	sub.ResizeToVoid(v.bounds)
	return nil
}

// RemoveSubAssembly detaches and unregisters v's hosted sub-assembly,
// returning v to a plain leaf.
func (v *Void) RemoveSubAssembly(s *core.Scene) error {
	if v.sub == nil {
		return ErrNotHosting
	}
	s.Unregister(v.sub.ID())
	v.sub = nil
	s.MarkDirty(v.id)
	return nil
}
