// File: scene.go
// Role: Scene is the owning registry for a node tree: ID lookup, dirty
// propagation, and the top-down recompute-then-serialize walk.
// Determinism:
//   - NextID(kind) carries its per-kind counter across Clone, mirroring the
//     teacher's nextEdgeID carry-over so IDs minted after a clone never
//     collide with IDs minted before it.
// Concurrency:
//   - None. A Scene is mutated by exactly one dispatcher at a time; see the
//     action package's preview/commit/discard contract.
package core

import "fmt"

// Scene owns a node tree rooted at Root and the bookkeeping needed to
// navigate it without parent back-pointers: an ID→Node index, an ID→parent
// ID map, and a per-ID dirty flag.
type Scene struct {
	root   Node
	byID   map[NodeID]Node
	parent map[NodeID]NodeID
	dirty  map[NodeID]bool
	seq    map[Kind]int
}

// NewScene builds a Scene over the given root, registering the root and
// every descendant it already owns. The root and all descendants start
// dirty, matching a freshly constructed tree that has never been derived.
func NewScene(root Node) *Scene {
	s := &Scene{
		root:   root,
		byID:   make(map[NodeID]Node),
		parent: make(map[NodeID]NodeID),
		dirty:  make(map[NodeID]bool),
		seq:    make(map[Kind]int),
	}
	s.registerTree(root, "")
	return s
}

// registerTree indexes node and its descendants, recording parent and
// marking everything dirty. It is also used to rebuild the index after
// Clone, since cloned nodes are entirely new Go values sharing only IDs
// with their source.
func (s *Scene) registerTree(n Node, parent NodeID) {
	if n == nil {
		return
	}
	s.byID[n.ID()] = n
	s.parent[n.ID()] = parent
	s.dirty[n.ID()] = true
	for _, c := range n.Children() {
		s.registerTree(c, n.ID())
	}
}

// Root returns the scene's root node.
func (s *Scene) Root() Node { return s.root }

// FindByID resolves a NodeID to its Node. Per spec, a miss is not an error
// value — callers (typically the dispatcher) branch on the bool.
func (s *Scene) FindByID(id NodeID) (Node, bool) {
	n, ok := s.byID[id]
	return n, ok
}

// Parent resolves the handle to a node's parent, or "" if id is the root or
// unknown.
func (s *Scene) Parent(id NodeID) NodeID {
	return s.parent[id]
}

// NextID mints a deterministic, scene-unique ID for the given kind. The
// per-kind counter is carried across Clone (methods_clone.go) so IDs minted
// in a cloned scene never collide with ones already present in the source.
func (s *Scene) NextID(kind Kind) NodeID {
	s.seq[kind]++
	return NodeID(fmt.Sprintf("%s-%d", kind, s.seq[kind]))
}

// Register adds a freshly constructed node (and its own already-owned
// descendants) into the scene's bookkeeping under the given parent, and
// marks it and every ancestor dirty. Domain constructors call this once,
// immediately after wiring a new child into its owner's strong-reference
// slice (e.g. Void.Subdivide appending the two new children).
func (s *Scene) Register(n Node, parent NodeID) {
	s.registerTree(n, parent)
	s.MarkDirty(n.ID())
}

// Unregister drops id and its entire subtree from the bookkeeping, used
// when a subdivision is cleared or a sub-assembly is removed. It does not
// touch the domain owner's own slice — callers detach the Go reference
// themselves before calling Unregister.
func (s *Scene) Unregister(id NodeID) {
	n, ok := s.byID[id]
	if !ok {
		return
	}
	for _, c := range n.Children() {
		s.Unregister(c.ID())
	}
	delete(s.byID, id)
	delete(s.parent, id)
	delete(s.dirty, id)
}

// MarkDirty flags id and walks every ancestor, flagging each in turn. A
// miss is silently ignored (mirrors FindByID's no-op-on-miss policy).
func (s *Scene) MarkDirty(id NodeID) {
	for id != "" {
		if _, ok := s.byID[id]; !ok {
			return
		}
		s.dirty[id] = true
		id = s.parent[id]
	}
}

// IsDirty reports whether id is currently flagged dirty.
func (s *Scene) IsDirty(id NodeID) bool { return s.dirty[id] }

// Recompute walks the tree top-down from root, invoking Recompute on every
// dirty node and then clearing its flag. Dirty propagation only ever runs
// upward (MarkDirty), so a clean node's entire subtree is guaranteed clean
// too — the walk stops descending the instant it finds a clean node,
// keeping unchanged subtrees out of the recompute path entirely.
func (s *Scene) Recompute() error {
	return s.recomputeNode(s.root)
}

func (s *Scene) recomputeNode(n Node) error {
	if n == nil {
		return nil
	}
	if !s.dirty[n.ID()] {
		return nil
	}
	if err := n.Recompute(s); err != nil {
		return fmt.Errorf("core: recompute %s %s: %w", n.Kind(), n.ID(), err)
	}
	s.dirty[n.ID()] = false
	for _, c := range n.Children() {
		if err := s.recomputeNode(c); err != nil {
			return err
		}
	}
	return nil
}
