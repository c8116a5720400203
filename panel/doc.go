// Package panel derives FacePanel and DividerPanel geometry on demand
// from an assembly's current node tree (spec §4.5–§4.7): dimensions,
// edge gender, the 2D outline with finger-joint teeth, divider slot
// holes, 3D placement transforms, cross-lap notches, and edge anchors.
//
// Panels are value-typed snapshots (spec §9: "derived panels referencing
// their source assembly/void... hold only an upward handle plus an
// immutable discriminator"); they are never stored in the scene tree.
// Grounded on builder's validate-then-emit constructors and
// other_examples' jsleeio-frontpanels Panel interface shape (an
// interface both FacePanel and DividerPanel implement).
package panel
