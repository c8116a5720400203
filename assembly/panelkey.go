// File: panelkey.go — canonical, semantics-derived panel identifiers
// (spec §6: "stable across reclones because it derives from semantics,
// not transient node IDs").
package assembly

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/fingerbox/core"
	"github.com/katalvlaran/fingerbox/geomkit"
)

// PanelID is the canonical key used by every panel-keyed store
// (extensions, fillets, custom edge paths, cutouts) and by the
// persisted share-link format.
type PanelID string

// FacePanelID returns the canonical ID for the face panel of faceID:
// "face:<faceId>".
func FacePanelID(faceID geomkit.FaceID) PanelID {
	return PanelID(fmt.Sprintf("face:%s", faceID))
}

// DividerPanelID returns the canonical ID for a divider panel:
// "divider:<voidId>:<axis>:<position>". position is formatted with fixed
// precision so the key is stable regardless of floating-point noise in
// the caller's own formatting.
func DividerPanelID(voidID core.NodeID, axis geomkit.Axis, position float64) PanelID {
	return PanelID(fmt.Sprintf("divider:%s:%s:%s", voidID, axis, strconv.FormatFloat(position, 'f', 3, 64)))
}
