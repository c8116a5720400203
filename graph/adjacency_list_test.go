package graph

import "testing"

func TestAddAndHasVertex(t *testing.T) {
	g := NewGraph(false)
	if g.HasVertex("A") {
		t.Errorf("empty graph should not have any vertices")
	}
	g.AddVertex(&Vertex{ID: "A"})
	if !g.HasVertex("A") {
		t.Errorf("expected vertex A to exist")
	}
}

func TestAddEdgeAutoAddsVertices(t *testing.T) {
	g := NewGraph(false)
	g.AddEdge("A", "B")
	if !g.HasVertex("A") || !g.HasVertex("B") {
		t.Errorf("AddEdge should auto-add vertices")
	}
}

func TestAddEdgeUndirectedAddsMirror(t *testing.T) {
	g := NewGraph(false)
	g.AddEdge("A", "B")

	nbrsA := g.Neighbors("A")
	if len(nbrsA) != 1 || nbrsA[0].ID != "B" {
		t.Errorf("expected A's only neighbor to be B, got %v", nbrsA)
	}
	nbrsB := g.Neighbors("B")
	if len(nbrsB) != 1 || nbrsB[0].ID != "A" {
		t.Errorf("expected undirected mirror edge B->A, got %v", nbrsB)
	}
}

func TestAddEdgeDirectedHasNoMirror(t *testing.T) {
	g := NewGraph(true)
	g.AddEdge("X", "Y")

	if len(g.Neighbors("Y")) != 0 {
		t.Errorf("directed graph should not add a mirror edge")
	}
}

func TestNeighbors(t *testing.T) {
	g := NewGraph(false)
	g.AddEdge("1", "2")
	g.AddEdge("1", "3")
	n := g.Neighbors("1")
	if len(n) != 2 {
		t.Errorf("expected 2 neighbors, got %d", len(n))
	}
}
