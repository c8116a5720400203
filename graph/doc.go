// Package graph is a minimal thread-safe reachability graph: vertices,
// unweighted edges, and breadth-first search. It is independent of this
// module's own scene-node tree (github.com/katalvlaran/fingerbox/core).
//
// The joint package (github.com/katalvlaran/fingerbox/joint) is the only
// consumer: it builds a throwaway graph over a derived assembly's panels
// and joint constraints to check that the assembly forms a single
// connected structure, not a set of floating panels.
package graph
