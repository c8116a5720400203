// File: errors.go — sentinel errors for the finger package.
//
// Error policy mirrors the teacher's builder/errors.go: package-level
// sentinels only, never stringified at the definition site, always checked
// with errors.Is downstream.
package finger

import "errors"

// ErrInvalidMaterial indicates a non-positive thickness or finger width.
var ErrInvalidMaterial = errors.New("finger: thickness and fingerWidth must be positive")

// ErrInvalidGap indicates a negative finger-gap multiplier.
var ErrInvalidGap = errors.New("finger: fingerGap multiplier must be non-negative")

// ErrJointTooShort indicates the joint length (dim - 2*thickness) cannot
// accommodate even the two inner offsets, let alone a single finger.
var ErrJointTooShort = errors.New("finger: axis dimension too small for material thickness")
