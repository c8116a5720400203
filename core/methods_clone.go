// File: methods_clone.go
// Role: Scene-level cloning for the preview/commit/discard workflow.
// Determinism:
//   - Clone carries over every per-kind ID counter so future NextID calls on
//     the clone continue the same sequence and never collide with the source.
// Concurrency:
//   - Clone reads the source tree without mutating it.
package core

// Clone returns a deep copy of the Scene: the root node's Clone() is invoked
// (which recursively clones every owned descendant), the resulting tree is
// re-indexed from scratch, and the per-kind ID counters are carried over so
// IDs minted after cloning stay globally unique.
//
// IDs are preserved: a clone's root and every descendant keep the exact
// NodeID of their source, which is what lets a preview scene and the
// primary scene both be addressed by the same UI-held panel/void IDs.
func (s *Scene) Clone() *Scene {
	clone := NewScene(s.root.Clone())
	for kind, n := range s.seq {
		clone.seq[kind] = n
	}
	return clone
}
