// File: errors.go — sentinel errors for the assembly package.
package assembly

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive width/height/depth.
	ErrInvalidDimensions = errors.New("assembly: width, height and depth must be positive")

	// ErrInvalidInset indicates a lid inset outside [0, half the
	// assembly-axis dimension) per spec §6's recognized-options list.
	ErrInvalidInset = errors.New("assembly: lid inset out of range")

	// ErrInvalidFeet indicates a non-positive feet height/width, or a
	// negative feet inset/gap, while feet are enabled.
	ErrInvalidFeet = errors.New("assembly: feet height and width must be positive")

	// ErrInvalidClearance indicates a negative sub-assembly clearance.
	ErrInvalidClearance = errors.New("assembly: clearance must be non-negative")

	// ErrFilletRadiusTooSmall indicates a requested fillet radius below the
	// 1mm floor spec §4.8 sets for eligibility.
	ErrFilletRadiusTooSmall = errors.New("assembly: fillet radius below 1mm floor")
)
