// File: cutout.go — rectangular, circular, and polygon cutouts (spec
// §4.8 item 5).
package outline

import "github.com/katalvlaran/fingerbox/geomkit"

// cutoutHole polygonizes one cutout into a ring without normalising its
// winding (EnsureCounterClockwise is applied by Outline.AddHole, not here).
func cutoutHole(c geomkit.Cutout) geomkit.Polygon {
	switch c.Kind {
	case geomkit.CutoutCircle:
		return geomkit.Circle(c.Center, c.Radius, 0)
	case geomkit.CutoutPolygon:
		return c.Polygon.Clone()
	default:
		return geomkit.RoundedRect(c.Center, c.Width, c.Height, c.CornerRadius)
	}
}
