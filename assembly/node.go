// File: node.go — Assembly's core.Node implementation.
package assembly

import (
	"github.com/katalvlaran/fingerbox/core"
	"github.com/katalvlaran/fingerbox/geomkit"
	"github.com/katalvlaran/fingerbox/void"
)

func (a *Assembly) ID() core.NodeID { return a.id }
func (a *Assembly) Kind() core.Kind { return core.KindAssembly }

// Children returns the assembly's single child: its root void. Panels
// are derived, not tree members (spec §3).
func (a *Assembly) Children() []core.Node {
	if a.root == nil {
		return nil
	}
	return []core.Node{a.root}
}

// Recompute invalidates the assembly's derivation caches. Per spec §4.1,
// Recompute must not recurse into children — the Scene's walk visits the
// root void separately (itself a no-op; panels read the invalidated
// finger memo and recompute their own geometry lazily when read by the
// panel/joint packages).
func (a *Assembly) Recompute(s *core.Scene) error {
	a.cache.fingerMemo.Clear()
	a.cache.stale = true
	return nil
}

// MarkPanelsFresh clears the stale flag after the panel/joint packages
// have rebuilt their own caches against this assembly's current state.
func (a *Assembly) MarkPanelsFresh() { a.cache.stale = false }

// PanelsStale reports whether a.Recompute ran since the last
// MarkPanelsFresh, i.e. whether cached panels/joints need rebuilding.
func (a *Assembly) PanelsStale() bool { return a.cache.stale }

// Clone implements core.Node: a structurally independent deep copy
// preserving the assembly's ID and every panel-keyed store.
func (a *Assembly) Clone() core.Node {
	clone := &Assembly{
		id:         a.id,
		Width:      a.Width,
		Height:     a.Height,
		Depth:      a.Depth,
		Material:   a.Material,
		Config:     a.Config,
		Faces:      a.Faces,
		Extensions: make(map[PanelID]EdgeExtensions, len(a.Extensions)),
		Fillets:    make(map[PanelID]map[geomkit.Corner]float64, len(a.Fillets)),
		EdgePaths:  make(map[PanelID]map[geomkit.EdgePosition]geomkit.EdgePath, len(a.EdgePaths)),
		Cutouts:    make(map[PanelID][]geomkit.Cutout, len(a.Cutouts)),
		cache:      derivedCache{fingerMemo: a.cache.fingerMemo.Clone(), stale: a.cache.stale},
	}
	if a.Feet != nil {
		f := *a.Feet
		clone.Feet = &f
	}
	if a.root != nil {
		clone.root = a.root.Clone().(*void.Void)
	}
	for k, v := range a.Extensions {
		clone.Extensions[k] = v
	}
	for k, m := range a.Fillets {
		cm := make(map[geomkit.Corner]float64, len(m))
		for ck, cv := range m {
			cm[ck] = cv
		}
		clone.Fillets[k] = cm
	}
	for k, m := range a.EdgePaths {
		em := make(map[geomkit.EdgePosition]geomkit.EdgePath, len(m))
		for ek, ev := range m {
			em[ek] = ev
		}
		clone.EdgePaths[k] = em
	}
	for k, v := range a.Cutouts {
		clone.Cutouts[k] = append([]geomkit.Cutout(nil), v...)
	}
	return clone
}
