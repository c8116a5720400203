package core_test

import (
	"testing"

	"github.com/katalvlaran/fingerbox/core"
)

// fakeNode is a minimal core.Node used to exercise Scene in isolation from
// any domain package (void/assembly).
type fakeNode struct {
	id       core.NodeID
	kind     core.Kind
	children []*fakeNode
	recomps  *int
}

func (f *fakeNode) ID() core.NodeID   { return f.id }
func (f *fakeNode) Kind() core.Kind   { return f.kind }
func (f *fakeNode) Children() []core.Node {
	out := make([]core.Node, len(f.children))
	for i, c := range f.children {
		out[i] = c
	}
	return out
}
func (f *fakeNode) Clone() core.Node {
	kids := make([]*fakeNode, len(f.children))
	for i, c := range f.children {
		kids[i] = c.Clone().(*fakeNode)
	}
	return &fakeNode{id: f.id, kind: f.kind, children: kids, recomps: f.recomps}
}
func (f *fakeNode) Recompute(s *core.Scene) error {
	*f.recomps++
	return nil
}

func TestScene_FindByID(t *testing.T) {
	n := 0
	root := &fakeNode{id: "root", kind: "fake", recomps: &n}
	s := core.NewScene(root)

	got, ok := s.FindByID("root")
	if !ok || got != core.Node(root) {
		t.Fatalf("expected root to resolve")
	}
	if _, ok := s.FindByID("missing"); ok {
		t.Fatalf("expected miss for unknown ID")
	}
}

func TestScene_DirtyPropagatesToAncestorsOnly(t *testing.T) {
	n := 0
	leaf := &fakeNode{id: "leaf", kind: "fake", recomps: &n}
	mid := &fakeNode{id: "mid", kind: "fake", children: []*fakeNode{leaf}, recomps: &n}
	root := &fakeNode{id: "root", kind: "fake", children: []*fakeNode{mid}, recomps: &n}
	s := core.NewScene(root)

	if err := s.Recompute(); err != nil {
		t.Fatalf("initial recompute: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 recomputes on fresh tree, got %d", n)
	}

	// Nothing dirty: a second pass must not recompute anything.
	if err := s.Recompute(); err != nil {
		t.Fatalf("second recompute: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected no extra recomputes on clean tree, got %d", n)
	}

	// Marking the leaf dirty propagates to mid and root.
	s.MarkDirty("leaf")
	if !s.IsDirty("leaf") || !s.IsDirty("mid") || !s.IsDirty("root") {
		t.Fatalf("expected dirty to propagate up to the root")
	}
	if err := s.Recompute(); err != nil {
		t.Fatalf("third recompute: %v", err)
	}
	if n != 6 {
		t.Fatalf("expected leaf+mid+root to recompute once each, got delta %d", n-3)
	}
}

func TestScene_MarkDirtyOnUnknownIDIsNoop(t *testing.T) {
	n := 0
	root := &fakeNode{id: "root", kind: "fake", recomps: &n}
	s := core.NewScene(root)
	s.MarkDirty("ghost") // must not panic nor affect root
	if s.IsDirty("ghost") {
		t.Fatalf("unknown ID must not become tracked")
	}
}

func TestScene_ClonePreservesIDsAndContinuesSequence(t *testing.T) {
	n := 0
	root := &fakeNode{id: "root", kind: core.KindAssembly, recomps: &n}
	s := core.NewScene(root)
	_ = s.NextID(core.KindVoid) // "void-1"
	id2 := s.NextID(core.KindVoid)
	if id2 != "void-2" {
		t.Fatalf("expected void-2, got %s", id2)
	}

	clone := s.Clone()
	if clone.Root().ID() != root.ID() {
		t.Fatalf("clone must preserve root ID")
	}
	if got, ok := clone.FindByID("root"); !ok || got.ID() != "root" {
		t.Fatalf("clone must re-index under the same ID")
	}
	if next := clone.NextID(core.KindVoid); next != "void-3" {
		t.Fatalf("expected clone to continue the sequence at void-3, got %s", next)
	}
}
