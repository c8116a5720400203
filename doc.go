// Package fingerbox is a parametric CAD engine for laser-cut,
// finger-jointed boxes.
//
// An assembly (github.com/katalvlaran/fingerbox/assembly) owns a void
// tree (github.com/katalvlaran/fingerbox/void) that can be subdivided
// into compartments and host nested sub-assemblies. Panels are derived
// on demand from that tree (github.com/katalvlaran/fingerbox/panel),
// their outlines post-processed into laser-ready geometry
// (github.com/katalvlaran/fingerbox/outline), and the joints between
// them enumerated and validated
// (github.com/katalvlaran/fingerbox/joint). A scene
// (github.com/katalvlaran/fingerbox/core) tracks dirty state across
// edits, a dispatcher (github.com/katalvlaran/fingerbox/action) applies
// typed actions against it with preview/commit semantics, and a
// snapshot (github.com/katalvlaran/fingerbox/snapshot) flattens the
// result into a plain record tree for external consumers.
//
//	go get github.com/katalvlaran/fingerbox
package fingerbox
