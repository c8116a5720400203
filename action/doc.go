// Package action implements the dispatcher and preview workflow of spec
// §4.10: a fixed, typed set of scene mutations, applied one at a time,
// each reporting (ok bool, reason string) rather than raising (spec §7:
// "no exceptions cross the API boundary").
//
// Grounded on the teacher's functional-options resolve-then-apply style
// (`assembly.resolveConfig`) generalized from "resolve a config struct
// once" to "apply one typed command to a live scene"; preview cloning is
// grounded on core.Scene.Clone (methods_clone.go), already built to
// support exactly this copy-on-write workflow.
package action
