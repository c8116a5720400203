package graph

import (
	"errors"
	"testing"
)

func TestBFS_EmptyGraph(t *testing.T) {
	g := NewGraph(false)
	_, err := g.BFS("X")
	if !errors.Is(err, ErrVertexNotFound) {
		t.Fatalf("expected ErrVertexNotFound, got %v", err)
	}
}

func TestBFS_SingleNode(t *testing.T) {
	g := NewGraph(false)
	g.AddVertex(&Vertex{ID: "A"})
	res, err := g.BFS("A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Order) != 1 || res.Order[0].ID != "A" {
		t.Errorf("expected order [A], got %v", res.Order)
	}
}

func TestBFS_LinearGraph(t *testing.T) {
	g := NewGraph(false)
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	res, err := g.BFS("A")
	if err != nil {
		t.Fatal(err)
	}
	wantOrder := []string{"A", "B", "C"}
	if len(res.Order) != len(wantOrder) {
		t.Fatalf("expected %d vertices visited, got %d", len(wantOrder), len(res.Order))
	}
	for i, v := range res.Order {
		if v.ID != wantOrder[i] {
			t.Errorf("at %d expected %s, got %s", i, wantOrder[i], v.ID)
		}
	}
}

func TestBFS_Cycle(t *testing.T) {
	g := NewGraph(false)
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "A")
	res, err := g.BFS("A")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 3 {
		t.Errorf("expected 3 unique visits, got %d", len(res.Order))
	}
}

func TestBFS_DisjointVertexIsUnreached(t *testing.T) {
	g := NewGraph(false)
	g.AddEdge("A", "B")
	g.AddVertex(&Vertex{ID: "Z"})

	res, err := g.BFS("A")
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range res.Order {
		if v.ID == "Z" {
			t.Errorf("Z is disconnected from A and should not be visited")
		}
	}
}
