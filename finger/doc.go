// Package finger computes the finger-joint transition-point sequence
// shared by every pair of mating panel edges on one axis.
//
// Grounded on the teacher's builder/impl_grid.go: a single deterministic
// layout routine, validated parameters up front (fail fast, no partial
// work), sentinel errors instead of panics, and a documented emission
// order so two callers computing the same inputs get byte-identical
// output (spec §8 property 3: "all panels with edges on that axis share a
// byte-identical finger transition sequence").
//
// Calculate is a pure function: memoisation (one FingerData per axis per
// assembly, shared by every panel with an edge on that axis, per spec
// §4.3) is the caller's responsibility — see assembly.Assembly's finger
// cache — so this package stays trivially testable and has no global
// state to reset between tests.
package finger
