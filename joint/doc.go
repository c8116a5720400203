// Package joint enumerates the mating edges between derived panels and
// validates that both sides of each joint converge on the same
// world-space anchor point (spec §4.9, §8 property 1).
//
// Grounded on the teacher's registry-over-derived-structure pattern
// (`algorithms`/`matrix` packages compute a derived view of a graph and
// cache it); here the derived view is the set of JointConstraints over
// an assembly's current panels.
package joint
