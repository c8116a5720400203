// File: edgepath.go — custom edge paths (spec §4.8 item 3).
package outline

import "github.com/katalvlaran/fingerbox/geomkit"

// applyEdgePaths replaces each edge named in paths with the resolved
// control-point sequence, each point placed by lerping between the
// edge's current corners and offsetting along the edge's outward normal.
// An unresolved (fewer than 2 points) path is skipped (spec §7's
// degenerate-geometry policy): a caller-supplied path too short to trace
// is dropped rather than corrupting the outline.
func applyEdgePaths(runs runSet, paths map[geomkit.EdgePosition]geomkit.EdgePath) runSet {
	for pos, path := range paths {
		resolved := path.Resolved()
		if len(resolved) < 2 {
			continue
		}
		start := runs[pos][0]
		end := runs[clockwiseNext(pos)][0]
		normal := outwardNormal(pos)
		pts := make(geomkit.Polygon, len(resolved))
		for i, cp := range resolved {
			base := start.Lerp(end, cp.T)
			pts[i] = base.Add(normal.Scale(cp.Offset))
		}
		runs[pos] = pts
	}
	return runs
}
