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

// A single divider has no other divider to cross, so FindCrossLaps must
// return an empty result without error.
func TestFindCrossLaps_SingleDividerHasNoCrossing(t *testing.T) {
	a, err := assembly.New(100, 80, 60)
	require.NoError(t, err)
	scene := core.NewScene(a)

	_, err = a.Root().Subdivide(scene, geomkit.AxisX, 50, void.SplitAbsolute, a.Material.Thickness)
	require.NoError(t, err)

	notches, err := panel.FindCrossLaps(a)
	require.NoError(t, err)
	require.Empty(t, notches)
}

// Two dividers that share the same split axis run parallel to each other
// and can never physically cross, regardless of where each sits in the
// void tree.
func TestFindCrossLaps_ParallelDividersOnSameAxisDoNotCross(t *testing.T) {
	a, err := assembly.New(100, 80, 60)
	require.NoError(t, err)
	scene := core.NewScene(a)

	children, err := a.Root().Subdivide(scene, geomkit.AxisX, 40, void.SplitAbsolute, a.Material.Thickness)
	require.NoError(t, err)

	_, err = children[0].Subdivide(scene, geomkit.AxisX, 15, void.SplitAbsolute, a.Material.Thickness)
	require.NoError(t, err)

	notches, err := panel.FindCrossLaps(a)
	require.NoError(t, err)
	require.Empty(t, notches)
}
