// File: types.go
// Role: NodeID, the Node contract, and sentinel errors for the scene tree.
package core

import "errors"

// Sentinel errors for scene/tree operations.
var (
	// ErrNodeNotFound indicates FindByID (or a dependent operation) referenced
	// an ID absent from the Scene. Dispatcher callers treat this as a no-op.
	ErrNodeNotFound = errors.New("core: no such node")

	// ErrNilNode indicates a nil Node was passed where one is required.
	ErrNilNode = errors.New("core: nil node")

	// ErrDuplicateID indicates a node was registered under an ID already in use.
	ErrDuplicateID = errors.New("core: duplicate node ID")
)

// NodeID uniquely identifies a node within one Scene. IDs are stable across
// mutation and survive Clone (a cloned node keeps its source ID so external
// references — panel IDs, void IDs held by a UI — remain valid).
type NodeID string

// Kind tags a Node's concrete domain role. Snapshot serialization uses Kind
// to pick the right record shape without a Go type-switch on every caller.
type Kind string

const (
	KindAssembly    Kind = "assembly"
	KindVoid        Kind = "void"
	KindSubAssembly Kind = "subAssembly"
)

// Node is the contract every scene-tree member satisfies.
//
// Ownership model: a Node owns its children directly (strong references,
// e.g. a Void holds []*Void); it never holds a strong pointer back to its
// parent. Upward navigation and cross-tree bookkeeping (dirty propagation,
// clone, serialize order) are the Scene's job, addressed purely by NodeID —
// this is what breaks the parent/child reference cycle (see package doc).
type Node interface {
	ID() NodeID
	Kind() Kind

	// Children lists this node's direct children, in stable order, as the
	// generic Node view the Scene needs for tree walks. Concrete types
	// still expose their own typed accessors for domain code.
	Children() []Node

	// Clone returns a structurally independent deep copy of this node and
	// everything it owns, preserving every ID in the subtree.
	Clone() Node

	// Recompute invalidates and rebuilds this node's own derived caches.
	// It must not recurse into children — the Scene's top-down walk visits
	// every dirty node exactly once and children are visited separately.
	Recompute(s *Scene) error
}
