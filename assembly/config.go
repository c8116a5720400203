// File: config.go — AssemblyConfig, LidConfig, FaceConfig, Feet: the
// configurable recognized options of spec §6.
package assembly

import "github.com/katalvlaran/fingerbox/geomkit"

// TabDirection is a lid's finger orientation relative to its own edges.
type TabDirection int

const (
	// TabsOut gives the lid male fingers (tabs protruding).
	TabsOut TabDirection = iota
	// TabsIn gives the lid female fingers (slots receiving).
	TabsIn
)

func (d TabDirection) String() string {
	if d == TabsIn {
		return "tabs-in"
	}
	return "tabs-out"
}

// LidConfig configures one of the two faces perpendicular to the
// assembly axis (spec §3).
type LidConfig struct {
	TabDirection TabDirection
	Inset        float64 // mm, >= 0
}

// AssemblyConfig names the axis the box "opens" along and the
// configuration of its two resulting lid faces (positive and negative
// side of that axis).
type AssemblyConfig struct {
	AssemblyAxis geomkit.Axis
	PositiveLid  LidConfig
	NegativeLid  LidConfig
}

// FaceConfig records whether one of the six outer faces is solid (cut as
// a panel) or open (no panel, adjacent edges gendered none).
type FaceConfig struct {
	FaceID geomkit.FaceID
	Solid  bool
}

// Feet configures the optional foot profile applied to the downward-
// facing wall panel's bottom edge (spec §4.8 item 2).
type Feet struct {
	Enabled bool
	Height  float64 // mm, extension below the panel
	Width   float64 // mm, width of each leg
	Inset   float64 // mm, from each bottom corner
	Gap     float64 // mm, between the two legs
}

// Validate checks Feet's recognized-option constraints (spec §6): positive
// height/width when enabled, non-negative inset and gap.
func (f Feet) Validate() error {
	if !f.Enabled {
		return nil
	}
	if f.Height <= 0 || f.Width <= 0 {
		return ErrInvalidFeet
	}
	if f.Inset < 0 || f.Gap < 0 {
		return ErrInvalidFeet
	}
	return nil
}

// defaultFaceConfigs returns all six faces, solid by default.
func defaultFaceConfigs() [6]FaceConfig {
	var out [6]FaceConfig
	for i, id := range geomkit.AllFaces {
		out[i] = FaceConfig{FaceID: id, Solid: true}
	}
	return out
}
