// File: types.go — Void entity, SplitInfo, GridDescriptor, and the
// HostedAssembly seam that lets a leaf void host a nested sub-assembly
// without the void package importing the assembly package (which owns
// Void trees itself — a direct import would cycle).
package void

import (
	"github.com/katalvlaran/fingerbox/core"
	"github.com/katalvlaran/fingerbox/geomkit"
)

// SplitMode records how a split position was originally specified
// (absolute mm or percentage). Resize does not read it: on a bounds
// change every split is recomputed from its stored percentage, whichever
// mode created it.
type SplitMode int

const (
	SplitAbsolute SplitMode = iota
	SplitPercentage
)

func (m SplitMode) String() string {
	if m == SplitPercentage {
		return "percentage"
	}
	return "absolute"
}

// SplitInfo describes the subdivision that produced a child void: the
// split axis, its resolved absolute position in parent-local coordinates,
// the originating mode, and the percentage of the parent's span that
// position represents (always populated, regardless of Mode, so a mode
// switch never loses information). Spec §3: "The second child carries the
// split info (axis, absolute position, and the percentage of the parent
// span, for proportional rescaling)."
type SplitInfo struct {
	Axis       geomkit.Axis
	Position   float64
	Mode       SplitMode
	Percentage float64
}

// GridAxis is one axis of a grid subdivision descriptor. Percentages
// mirrors Positions (same length, same order) as a fraction of the
// parent's span at creation time, carried alongside for proportional
// rescaling the same way a simple subdivide's SplitInfo.Percentage is.
type GridAxis struct {
	Axis        geomkit.Axis
	Positions   []float64
	Percentages []float64
}

// GridDescriptor records the axes and positions used by SubdivideGrid, so
// the shortcut can be reconstructed across Clone and so divider panels
// know to span the grid as a unit (spec §4.2: "Grid voids produce
// dividers that span the full parent extent, not each child's individual
// bounds").
type GridDescriptor struct {
	Axes []GridAxis
}

// HostedAssembly is the seam a nested sub-assembly must satisfy to be
// hosted inside a leaf Void. It is defined here (not in the assembly
// package) specifically to avoid a void<->assembly import cycle: Void
// owns a HostedAssembly by interface, assembly.SubAssembly implements it.
type HostedAssembly interface {
	core.Node

	// ResizeToVoid is invoked whenever the hosting void's bounds change
	// (parent resize, grid re-layout), so the sub-assembly's own
	// width/height/depth can be recomputed from the new bounds minus
	// 2×clearance (spec §3: "Its width/height/depth = parent-void bounds
	// minus 2×clearance").
	ResizeToVoid(bounds geomkit.Bounds3D)
}

// Void is an interior rectangular region. It is exactly one of: a leaf, a
// parent of >=2 coplanar child voids (simple or grid subdivision), or the
// host of a sub-assembly (spec §3 invariant).
type Void struct {
	id       core.NodeID
	bounds   geomkit.Bounds3D
	split    *SplitInfo // set on non-first children of a simple subdivide
	children []*Void
	grid     *GridDescriptor // set on the parent when grid-subdivided
	sub      HostedAssembly
}

// NewLeaf constructs a leaf void with the given bounds.
func NewLeaf(id core.NodeID, bounds geomkit.Bounds3D) *Void {
	return &Void{id: id, bounds: bounds}
}

func (v *Void) ID() core.NodeID   { return v.id }
func (v *Void) Kind() core.Kind   { return core.KindVoid }
func (v *Void) Bounds() geomkit.Bounds3D { return v.bounds }
func (v *Void) Split() *SplitInfo { return v.split }
func (v *Void) Grid() *GridDescriptor { return v.grid }
func (v *Void) HostedAssembly() HostedAssembly { return v.sub }

// ChildVoids returns this void's typed child slice (nil for a leaf or a
// void hosting a sub-assembly).
func (v *Void) ChildVoids() []*Void { return v.children }

// IsLeaf reports whether v has neither child voids nor a hosted
// sub-assembly.
func (v *Void) IsLeaf() bool { return len(v.children) == 0 && v.sub == nil }

// Children implements core.Node: the generic view used by Scene walks.
func (v *Void) Children() []core.Node {
	if v.sub != nil {
		return []core.Node{v.sub}
	}
	out := make([]core.Node, len(v.children))
	for i, c := range v.children {
		out[i] = c
	}
	return out
}

// Recompute implements core.Node. A Void has no derived caches of its own
// — everything downstream (panels, joints) is owned and cached by the
// enclosing Assembly — so recompute is a no-op; the Scene still visits
// this node once to clear its dirty flag.
func (v *Void) Recompute(s *core.Scene) error { return nil }

// Clone implements core.Node: a structurally independent deep copy
// preserving every ID in the subtree, including a hosted sub-assembly's.
func (v *Void) Clone() core.Node {
	clone := &Void{id: v.id, bounds: v.bounds}
	if v.split != nil {
		s := *v.split
		clone.split = &s
	}
	if v.grid != nil {
		g := &GridDescriptor{Axes: make([]GridAxis, len(v.grid.Axes))}
		for i, a := range v.grid.Axes {
			g.Axes[i] = GridAxis{
				Axis:        a.Axis,
				Positions:   append([]float64(nil), a.Positions...),
				Percentages: append([]float64(nil), a.Percentages...),
			}
		}
		clone.grid = g
	}
	if v.sub != nil {
		clone.sub = v.sub.Clone().(HostedAssembly)
	}
	if v.children != nil {
		clone.children = make([]*Void, len(v.children))
		for i, c := range v.children {
			clone.children[i] = c.Clone().(*Void)
		}
	}
	return clone
}
