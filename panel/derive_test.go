package panel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/geomkit"
	"github.com/katalvlaran/fingerbox/panel"
)

func TestDeriveAll_PlainBoxYieldsSixFacePanelsNoDividers(t *testing.T) {
	a, err := assembly.New(100, 80, 60)
	require.NoError(t, err)

	panels, err := panel.DeriveAll(a)
	require.NoError(t, err)
	require.Len(t, panels, 6)

	seen := make(map[string]bool, 6)
	for _, p := range panels {
		require.False(t, seen[p.PanelID()], "duplicate panel id %s", p.PanelID())
		seen[p.PanelID()] = true

		w, h := p.Dimensions()
		require.Greater(t, w, 0.0)
		require.Greater(t, h, 0.0)
		require.Len(t, p.EdgeAnchors(), 4)
	}
}

func TestDeriveAll_OpenFaceIsOmitted(t *testing.T) {
	a, err := assembly.New(100, 80, 60, assembly.WithFace(geomkit.FaceTop, false))
	require.NoError(t, err)

	panels, err := panel.DeriveAll(a)
	require.NoError(t, err)
	require.Len(t, panels, 5)

	for _, p := range panels {
		require.NotEqual(t, string(assembly.FacePanelID(geomkit.FaceTop)), p.PanelID())
	}
}
