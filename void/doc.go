// Package void implements the Void entity: an interior rectangular region
// that is either a leaf, subdivided into sibling child voids along one or
// two axes, or hosting a nested sub-assembly — never more than one of
// those three, per spec §3.
//
// Grounded on the teacher's builder package for the subdivision/grid
// constructors (a single validated, deterministic layout routine per
// operation, sentinel errors instead of panics, stable emission order —
// builder/impl_grid.go) and on gridgraph's row-major (x,y) addressing and
// Options-struct style for the 2D grid descriptor's bookkeeping, without
// gridgraph's graph-search machinery (ConnectedComponents/ExpandIsland):
// grid cells here are always adjacent by construction, so no connectivity
// search is ever needed.
package void
