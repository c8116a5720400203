// Package core is the scene's node tree: stable IDs, parent/child wiring,
// and dirty-flag propagation shared by every domain entity (assemblies,
// voids, sub-assemblies).
//
//	What it gives you:
//
//	  • NodeID generation        — stable, unique within a Scene, survives clone
//	  • Node interface           — the contract every tree member satisfies
//	  • Scene                    — the owning registry; resolves parent handles,
//	                               walks dirty propagation, drives top-down
//	                               recompute-then-serialize
//
// Ownership model: a Scene is the sole arena. Domain packages (void,
// assembly) hold their children by strong reference (they own them) but
// store only a NodeID handle upward to their parent — resolved through the
// Scene's ID map on demand. This breaks the parent/child reference cycle
// and makes Clone a matter of cloning the arena and rewiring handles; see
// methods_clone.go.
//
// Concurrency: none needed. Per the engine's single-threaded contract, a
// Scene is mutated by exactly one dispatcher at a time; see the action
// package.
package core
