// File: mutate.go — the mutator surface the action package's dispatcher
// calls (spec §4.10's fixed action set). Every method here is a single
// field assignment plus cheap validation; the dispatcher is responsible
// for locating the target and marking the scene dirty afterward (spec
// §4.10: "Dispatch: locate target, apply, mark dirty").
package assembly

import (
	"github.com/katalvlaran/fingerbox/finger"
	"github.com/katalvlaran/fingerbox/geomkit"
)

// Resize changes the assembly's outer dimensions and cascades the new
// bounds down through the void tree, which rederives every subdivided
// descendant's extent from its stored split/grid percentage (spec §3).
func (a *Assembly) Resize(width, height, depth float64) error {
	if width <= 0 || height <= 0 || depth <= 0 {
		return ErrInvalidDimensions
	}
	if err := validateAssemblyConfig(a.Config, width, height, depth); err != nil {
		return err
	}
	a.Width, a.Height, a.Depth = width, height, depth
	if a.root != nil {
		a.root.Resize(a.Bounds3D())
	}
	return nil
}

// SetMaterial replaces the material recipe.
func (a *Assembly) SetMaterial(m finger.MaterialConfig) error {
	if err := m.Validate(); err != nil {
		return err
	}
	a.Material = m
	return nil
}

// SetAssemblyConfig replaces the assembly axis and lid configuration.
func (a *Assembly) SetAssemblyConfig(cfg AssemblyConfig) error {
	if err := validateAssemblyConfig(cfg, a.Width, a.Height, a.Depth); err != nil {
		return err
	}
	a.Config = cfg
	return nil
}

// SetFeet replaces the foot profile; nil disables feet entirely.
func (a *Assembly) SetFeet(feet *Feet) error {
	if feet != nil {
		if err := feet.Validate(); err != nil {
			return err
		}
		f := *feet
		a.Feet = &f
		return nil
	}
	a.Feet = nil
	return nil
}

// SetExtensions replaces panel id's edge-extension set.
func (a *Assembly) SetExtensions(id PanelID, ext EdgeExtensions) error {
	if ext.Top < 0 || ext.Bottom < 0 || ext.Left < 0 || ext.Right < 0 {
		return ErrInvalidDimensions
	}
	a.Extensions[id] = ext
	return nil
}

// DeleteExtensions clears panel id's edge-extension set.
func (a *Assembly) DeleteExtensions(id PanelID) { delete(a.Extensions, id) }

// SetFillets replaces panel id's corner-fillet map. Every radius must
// clear the 1mm eligibility floor (spec §4.8). Radii are stored as
// given; outline processing clamps an over-long radius to the shorter of
// the corner's two adjacent edge lengths — this entry point rejects only
// the degenerate sub-1mm case.
func (a *Assembly) SetFillets(id PanelID, fillets map[geomkit.Corner]float64) error {
	m := make(map[geomkit.Corner]float64, len(fillets))
	for corner, r := range fillets {
		if r < 1 {
			return ErrFilletRadiusTooSmall
		}
		m[corner] = r
	}
	a.Fillets[id] = m
	return nil
}

// DeleteFillets clears panel id's corner-fillet map.
func (a *Assembly) DeleteFillets(id PanelID) { delete(a.Fillets, id) }

// SetEdgePaths replaces panel id's custom-edge-path map.
func (a *Assembly) SetEdgePaths(id PanelID, paths map[geomkit.EdgePosition]geomkit.EdgePath) {
	m := make(map[geomkit.EdgePosition]geomkit.EdgePath, len(paths))
	for pos, p := range paths {
		m[pos] = p
	}
	a.EdgePaths[id] = m
}

// DeleteEdgePaths clears panel id's custom-edge-path map.
func (a *Assembly) DeleteEdgePaths(id PanelID) { delete(a.EdgePaths, id) }

// SetCutouts replaces panel id's cutout list.
func (a *Assembly) SetCutouts(id PanelID, cutouts []geomkit.Cutout) {
	a.Cutouts[id] = append([]geomkit.Cutout(nil), cutouts...)
}

// DeleteCutouts clears panel id's cutout list.
func (a *Assembly) DeleteCutouts(id PanelID) { delete(a.Cutouts, id) }
