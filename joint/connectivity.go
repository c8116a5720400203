// File: connectivity.go — checks that every panel in a registry is
// reachable from every other panel via joint constraints, catching a
// derivation bug that would otherwise surface only as a silently
// floating, unjoined panel (spec §8 property 1 implies a single rigid
// assembly, not a disjoint set of panels).
//
// Grounded on the teacher's standalone graph package (adjacency_list.go,
// bfs.go), trimmed to the bare reachability graph this check needs: no
// edge weight, no traversal callbacks, no dependency on this module's
// own scene-node core — panels and joints borrowed for one BFS pass,
// never retained.
package joint

import (
	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/graph"
)

// DisconnectedPanelsError reports that the assembly's panels split into
// more than one joint-connected component.
type DisconnectedPanelsError struct {
	Components [][]assembly.PanelID
}

func (e *DisconnectedPanelsError) Error() string {
	return "joint: panels form more than one connected component"
}

// CheckConnectivity builds an undirected graph over panelIDs with one
// edge per constraint in r and runs a BFS from each panel not yet
// reached, collecting the connected components. A nil return (exactly
// one component) means the assembly is a
// single rigid structure; otherwise the offending components are
// reported for diagnostics.
func (r *Registry) CheckConnectivity(panelIDs []assembly.PanelID) *DisconnectedPanelsError {
	if len(panelIDs) == 0 {
		return nil
	}

	g := graph.NewGraph(false)
	for _, id := range panelIDs {
		g.AddVertex(&graph.Vertex{ID: string(id)})
	}
	for _, c := range r.constraints {
		g.AddEdge(string(c.A.PanelID), string(c.B.PanelID))
	}

	visited := make(map[assembly.PanelID]bool, len(panelIDs))
	var components [][]assembly.PanelID
	for _, id := range panelIDs {
		if visited[id] {
			continue
		}
		res, err := g.BFS(string(id))
		if err != nil {
			continue
		}
		var comp []assembly.PanelID
		for _, v := range res.Order {
			pid := assembly.PanelID(v.ID)
			visited[pid] = true
			comp = append(comp, pid)
		}
		components = append(components, comp)
	}

	if len(components) <= 1 {
		return nil
	}
	return &DisconnectedPanelsError{Components: components}
}
