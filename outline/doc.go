// Package outline applies the post-processing pipeline of spec §4.8 to a
// panel's base outline: edge extensions (with corner merging), feet
// profile, custom edge paths, corner fillets, and cutouts, applied in
// that fixed order. It consumes panel.Panel's EdgeRuns (the base outline
// grouped by edge, as built by the panel package's finger-aware
// construction) so each step can replace exactly one edge's points
// without disturbing the others.
//
// Grounded on other_examples' rcoreilly-goki gi/shapes2d.go for the
// corner-arc sampling convention (reused via geomkit.SampleArc) and on
// missinglink-simplefeatures' outer/inner-ring discipline already
// adopted by geomkit.Outline for cutout holes.
package outline
