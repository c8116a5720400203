// File: derive.go — DeriveAll, the single entry point that walks an
// assembly's faces and void tree and returns every panel it should cut.
package panel

import (
	"fmt"

	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/geomkit"
)

// DeriveAll derives every panel a currently implies: one FacePanel per
// solid face, and one DividerPanel per divider plane anywhere in the
// void tree (simple-subdivide or grid, any depth), with cross-lap
// notches (spec §4.7) resolved and applied before the divider panels
// are built.
func DeriveAll(a *assembly.Assembly) ([]Panel, error) {
	var panels []Panel

	for _, faceID := range geomkit.AllFaces {
		if !a.Face(faceID).Solid {
			continue
		}
		fp, err := DeriveFace(a, faceID)
		if err != nil {
			return nil, fmt.Errorf("panel: derive face %s: %w", faceID, err)
		}
		panels = append(panels, fp)
	}

	notches, err := FindCrossLaps(a)
	if err != nil {
		return nil, err
	}

	for _, dn := range collectDividers(a.Root()) {
		dp, err := DeriveDivider(a, dn.Parent, dn.VoidID, dn.Axis, dn.Position, notches[dn.VoidID]...)
		if err != nil {
			return nil, fmt.Errorf("panel: derive divider %s: %w", dn.VoidID, err)
		}
		panels = append(panels, dp)
	}

	return panels, nil
}
