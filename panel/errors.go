// File: errors.go — sentinel errors for the panel package.
package panel

import "errors"

var (
	// ErrFaceNotSolid indicates DeriveFace was asked for a face whose
	// FaceConfig.Solid is false; such a face has no panel.
	ErrFaceNotSolid = errors.New("panel: face is open, no panel to derive")

	// ErrThreeAxisIntersection indicates three dividers on three distinct
	// axes overlap at the same location: no cross-lap pairing can
	// assemble all three (spec §4.7).
	ErrThreeAxisIntersection = errors.New("panel: three-axis divider intersection is not assemblable")
)
