// File: subassembly.go — SubAssembly: an Assembly nested inside a void,
// weak-referencing its hosting void by NodeID rather than holding a
// strong parent pointer (spec §9's cyclic-reference re-architecture).
package assembly

import (
	"github.com/katalvlaran/fingerbox/core"
	"github.com/katalvlaran/fingerbox/geomkit"
)

// SubAssembly is an Assembly occupying an interior void: a nested box
// (e.g. a drawer inside a shelf). Its dimensions track the hosting
// void's bounds minus 2×Clearance on every axis (spec §3).
type SubAssembly struct {
	*Assembly

	// ParentVoidID is the weak reference to the hosting void, resolved
	// through the owning Scene's node index rather than a strong pointer
	// back — this is what keeps Void -> SubAssembly -> Void acyclic.
	ParentVoidID core.NodeID
	Clearance    float64
}

// NewSubAssembly constructs a SubAssembly sized from the hosting void's
// current bounds minus 2×clearance, using the Scene's ID counters so its
// own IDs never collide with the rest of the tree. It is not yet wired
// into the void tree — callers pass it to (*void.Void).HostSubAssembly,
// which also performs the initial ResizeToVoid call.
func NewSubAssembly(s *core.Scene, parentVoidID core.NodeID, clearance float64, hostBounds geomkit.Bounds3D, opts ...Option) (*SubAssembly, error) {
	if clearance < 0 {
		return nil, ErrInvalidClearance
	}
	width := hostBounds.W - 2*clearance
	height := hostBounds.H - 2*clearance
	depth := hostBounds.D - 2*clearance

	cfg, err := resolveConfig(width, height, depth, opts)
	if err != nil {
		return nil, err
	}

	id := s.NextID(core.KindSubAssembly)
	rootID := s.NextID(core.KindVoid)
	inner := newWithIDs(id, rootID, width, height, depth, cfg)

	return &SubAssembly{Assembly: inner, ParentVoidID: parentVoidID, Clearance: clearance}, nil
}

// Kind overrides the embedded Assembly's Kind so the scene tags this
// node as a sub-assembly, not a top-level assembly.
func (sa *SubAssembly) Kind() core.Kind { return core.KindSubAssembly }

// ResizeToVoid implements void.HostedAssembly: recomputes width/height/
// depth from the hosting void's new bounds minus 2×clearance, and
// cascades the resize into the sub-assembly's own root void so its
// interior layout rescales proportionally too.
func (sa *SubAssembly) ResizeToVoid(bounds geomkit.Bounds3D) {
	sa.Width = bounds.W - 2*sa.Clearance
	sa.Height = bounds.H - 2*sa.Clearance
	sa.Depth = bounds.D - 2*sa.Clearance
	if sa.root != nil {
		sa.root.Resize(sa.Bounds3D())
	}
	sa.cache.stale = true
}

// Clone implements core.Node: clones the embedded Assembly and copies
// the weak parent reference and clearance.
func (sa *SubAssembly) Clone() core.Node {
	inner := sa.Assembly.Clone().(*Assembly)
	return &SubAssembly{Assembly: inner, ParentVoidID: sa.ParentVoidID, Clearance: sa.Clearance}
}
