// File: material.go — MaterialConfig, the per-assembly material recipe.
package finger

import "fmt"

// MaterialConfig is the material recipe driving every finger-joint
// calculation across an assembly: sheet thickness, nominal finger width,
// and the corner gap expressed as a multiple of fingerWidth (spec §3).
type MaterialConfig struct {
	Thickness   float64 // mm
	FingerWidth float64 // mm
	FingerGap   float64 // multiplier of FingerWidth, >= 0
}

// Validate checks the recognized-option constraints of spec §6: positive
// thickness and finger width, non-negative gap multiplier.
func (m MaterialConfig) Validate() error {
	if m.Thickness <= 0 || m.FingerWidth <= 0 {
		return ErrInvalidMaterial
	}
	if m.FingerGap < 0 {
		return ErrInvalidGap
	}
	return nil
}

// CornerGap returns the absolute corner-gap distance for this material.
func (m MaterialConfig) CornerGap() float64 {
	return m.FingerGap * m.FingerWidth
}

func (m MaterialConfig) String() string {
	return fmt.Sprintf("material(thickness=%.3f, fingerWidth=%.3f, fingerGap=%.3fx)",
		m.Thickness, m.FingerWidth, m.FingerGap)
}
