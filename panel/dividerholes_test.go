package panel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/core"
	"github.com/katalvlaran/fingerbox/geomkit"
	"github.com/katalvlaran/fingerbox/panel"
	"github.com/katalvlaran/fingerbox/void"
)

// A simple-subdivide divider punches slots into the two faces its plane
// crosses, and none into the four it runs parallel to.
func TestDeriveFace_SimpleDividerPunchesCrossingFacesOnly(t *testing.T) {
	a, err := assembly.New(100, 80, 100)
	require.NoError(t, err)
	scene := core.NewScene(a)

	_, err = a.Root().Subdivide(scene, geomkit.AxisX, 50, void.SplitAbsolute, a.Material.Thickness)
	require.NoError(t, err)

	top, err := panel.DeriveFace(a, geomkit.FaceTop)
	require.NoError(t, err)
	require.NotEmpty(t, top.BaseOutline().Holes, "top face crosses an X-axis divider plane")

	right, err := panel.DeriveFace(a, geomkit.FaceRight)
	require.NoError(t, err)
	require.Empty(t, right.BaseOutline().Holes, "right face's normal is the divider's own axis, so its plane runs parallel to it")
}

// Slots never touch the panel's own edge: the first and last tab regions
// of the shared finger sequence are always dropped (spec §4.5).
func TestDeriveFace_DividerSlotsDoNotTouchPanelEdge(t *testing.T) {
	a, err := assembly.New(100, 80, 100)
	require.NoError(t, err)
	scene := core.NewScene(a)

	_, err = a.Root().Subdivide(scene, geomkit.AxisX, 50, void.SplitAbsolute, a.Material.Thickness)
	require.NoError(t, err)

	top, err := panel.DeriveFace(a, geomkit.FaceTop)
	require.NoError(t, err)
	require.NotEmpty(t, top.BaseOutline().Holes)

	_, halfV := top.Dimensions()
	halfV /= 2
	for _, hole := range top.BaseOutline().Holes {
		for _, pt := range hole {
			require.NotEqual(t, halfV, pt.Y)
			require.NotEqual(t, -halfV, pt.Y)
		}
	}
}

// A 2x2 grid subdivision produces one divider per axis (spec §8 scenario
// 3), and the face it is cut from (here, the bottom) gets slot holes for
// both.
func TestDeriveAll_GridSubdivisionYieldsTwoDividerPanelsAndBottomHoles(t *testing.T) {
	a, err := assembly.New(100, 60, 100)
	require.NoError(t, err)
	scene := core.NewScene(a)

	_, err = a.Root().SubdivideGrid(scene, a.Material.Thickness,
		void.GridAxisSpec{Axis: geomkit.AxisX, Positions: []float64{50}},
		void.GridAxisSpec{Axis: geomkit.AxisZ, Positions: []float64{50}},
	)
	require.NoError(t, err)

	panels, err := panel.DeriveAll(a)
	require.NoError(t, err)

	var dividerCount int
	for _, p := range panels {
		if _, ok := p.(*panel.DividerPanel); ok {
			dividerCount++
		}
	}
	require.Equal(t, 2, dividerCount, "one grid divider per axis")

	bottom, err := panel.DeriveFace(a, geomkit.FaceBottom)
	require.NoError(t, err)
	require.NotEmpty(t, bottom.BaseOutline().Holes, "bottom face crosses both grid dividers")
}
