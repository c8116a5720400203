// Package assembly implements the Assembly and SubAssembly entities of
// spec §3: the outer box, its material and lid/face configuration, the
// void tree it exclusively owns, and the panel-keyed stores (edge
// extensions, corner fillets, custom edge paths, cutouts) that the
// outline package consumes when deriving panel geometry.
//
// Grounded on builder's New(opts ...BuilderOption) functional-options
// constructor and core/types.go's sentinel-error discipline. An Assembly
// is a core.Node whose only child is its root Void; panels are never
// tree members (spec §3: "derived on demand", "not independently
// addressable nodes").
package assembly
