// File: process.go — Process, the fixed-order post-processing pipeline
// (spec §4.8) turning a panel's base outline into its final cut geometry.
package outline

import (
	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/geomkit"
	"github.com/katalvlaran/fingerbox/panel"
)

// Options bundles everything spec §4.8 looks up in the assembly's
// panel-keyed stores for one panel, plus the single cross-panel fact
// (isBottomWall) the feet step needs.
type Options struct {
	Extensions   assembly.EdgeExtensions
	Feet         *assembly.Feet
	IsBottomWall bool
	EdgePaths    map[geomkit.EdgePosition]geomkit.EdgePath
	Fillets      map[geomkit.Corner]float64
	Cutouts      []geomkit.Cutout
}

// Process runs p's base outline through the five-step pipeline and
// returns the final outline plus the post-extension corner eligibility,
// recomputed from this panel's own extensions: a gendered edge's free
// length is its own extension amount (0 when not extended), and an open
// edge's is unbounded.
func Process(p panel.Panel, opts Options) (geomkit.Outline, [4]panel.CornerEligibility, error) {
	src := p.EdgeRuns()
	if src == nil {
		return geomkit.Outline{}, [4]panel.CornerEligibility{}, ErrNoEdgeRuns
	}
	width, height := p.Dimensions()
	halfU, halfV := width/2, height/2

	runs := newRunSet(src)
	runs = applyExtensions(runs, halfU, halfV, opts.Extensions)
	runs = applyFeet(runs, opts.Feet, opts.IsBottomWall)
	runs = applyEdgePaths(runs, opts.EdgePaths)
	runs = applyFillets(runs, opts.Fillets)

	out := geomkit.NewOutline(runs.flatten())
	for _, cutout := range opts.Cutouts {
		out.AddHole(cutoutHole(cutout))
	}

	elig := refineEligibilities(p, opts.Extensions)
	return out, elig, nil
}

func refineEligibilities(p panel.Panel, ext assembly.EdgeExtensions) [4]panel.CornerEligibility {
	extOf := map[geomkit.EdgePosition]float64{
		geomkit.EdgeTop:    ext.Top,
		geomkit.EdgeRight:  ext.Right,
		geomkit.EdgeBottom: ext.Bottom,
		geomkit.EdgeLeft:   ext.Left,
	}
	byPos := make(map[geomkit.EdgePosition]panel.EdgeConfig, 4)
	for _, c := range p.EdgeConfigs() {
		byPos[c.Position] = c
	}

	var out [4]panel.CornerEligibility
	for i, corner := range geomkit.AllCorners {
		out[i] = recomputeCorner(corner, byPos, extOf)
	}
	return out
}

func recomputeCorner(corner geomkit.Corner, byPos map[geomkit.EdgePosition]panel.EdgeConfig, extOf map[geomkit.EdgePosition]float64) panel.CornerEligibility {
	first, second := corner.AdjacentEdges()
	freeOf := func(pos geomkit.EdgePosition) float64 {
		cfg := byPos[pos]
		if cfg.Gender == geomkit.GenderNone {
			return 1 << 30 // open edge: effectively unlimited free length
		}
		return extOf[pos]
	}
	radius := freeOf(first)
	if r := freeOf(second); r < radius {
		radius = r
	}
	const floor = 1.0
	return panel.CornerEligibility{Corner: corner, Eligible: radius >= floor, MaxRadius: radius}
}
