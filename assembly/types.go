// File: types.go — the Assembly entity (spec §3) and its panel-keyed
// stores.
package assembly

import (
	"github.com/katalvlaran/fingerbox/core"
	"github.com/katalvlaran/fingerbox/finger"
	"github.com/katalvlaran/fingerbox/geomkit"
	"github.com/katalvlaran/fingerbox/void"
)

// EdgeExtensions is the per-edge outward protrusion depth applied by
// outline post-processing step 1 (spec §4.8 item 1); zero means no
// extension on that edge.
type EdgeExtensions struct {
	Top, Bottom, Left, Right float64
}

// IsZero reports whether every extension is zero (no-op for outline
// construction).
func (e EdgeExtensions) IsZero() bool {
	return e.Top == 0 && e.Bottom == 0 && e.Left == 0 && e.Right == 0
}

// derivedCache holds every value spec §3 calls "derivation caches (finger
// data, panels, joints, joint-alignment errors)", invalidated wholesale on
// Recompute and rebuilt lazily by the panel/joint packages on next read.
type derivedCache struct {
	fingerMemo *finger.Memo
	// panels, joints and joint-alignment errors are owned and populated by
	// the panel and joint packages (which import assembly, not the other
	// way around); assembly only clears the flag that tells those packages
	// their own caches are stale.
	stale bool
}

// Assembly is the outer box: the root of a scene, or — embedded in
// SubAssembly — a nested box occupying an interior void.
type Assembly struct {
	id core.NodeID

	Width, Height, Depth float64
	Material             finger.MaterialConfig
	Config               AssemblyConfig
	Faces                [6]FaceConfig
	Feet                 *Feet

	root *void.Void

	Extensions map[PanelID]EdgeExtensions
	Fillets    map[PanelID]map[geomkit.Corner]float64
	EdgePaths  map[PanelID]map[geomkit.EdgePosition]geomkit.EdgePath
	Cutouts    map[PanelID][]geomkit.Cutout

	cache derivedCache
}

// Root returns the assembly's exclusively-owned root void.
func (a *Assembly) Root() *void.Void { return a.root }

// Bounds3D returns the assembly's own extent, origin at its corner, in
// its own local coordinate frame (the frame its root void's bounds are
// expressed in).
func (a *Assembly) Bounds3D() geomkit.Bounds3D {
	return geomkit.Bounds3D{W: a.Width, H: a.Height, D: a.Depth}
}

// FingerMemo returns the assembly's memoised finger-joint calculator,
// shared by every panel deriving an outline on this assembly (spec
// §4.3).
func (a *Assembly) FingerMemo() *finger.Memo { return a.cache.fingerMemo }

// Face returns the FaceConfig for id.
func (a *Assembly) Face(id geomkit.FaceID) FaceConfig {
	return a.Faces[id]
}

// SetFace updates the solidity of face id.
func (a *Assembly) SetFace(id geomkit.FaceID, solid bool) {
	a.Faces[id].Solid = solid
}

// IsLid reports whether faceID is one of the two lids for the assembly's
// configured axis, and which lid config applies.
func (a *Assembly) IsLid(faceID geomkit.FaceID) (cfg LidConfig, isLid bool) {
	pos, neg := axisFaces(a.Config.AssemblyAxis)
	switch faceID {
	case pos:
		return a.Config.PositiveLid, true
	case neg:
		return a.Config.NegativeLid, true
	default:
		return LidConfig{}, false
	}
}

// axisFaces returns the (positive-side, negative-side) FaceID pair for
// axis.
func axisFaces(axis geomkit.Axis) (positive, negative geomkit.FaceID) {
	switch axis {
	case geomkit.AxisX:
		return geomkit.FaceRight, geomkit.FaceLeft
	case geomkit.AxisY:
		return geomkit.FaceTop, geomkit.FaceBottom
	default:
		return geomkit.FaceBack, geomkit.FaceFront
	}
}
