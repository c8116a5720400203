package panel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/geomkit"
	"github.com/katalvlaran/fingerbox/panel"
)

// A default assembly puts the lids on the assembly axis's two faces
// (AxisX -> Right/Left), both tabs-out by default, so every wall edge
// touching a lid gets the complementary gender and every wall-to-wall
// edge resolves by face priority (front < back < left < right < top <
// bottom).
func TestFaceEdgeGender_LidEdgesAreMaleWallSideIsComplementary(t *testing.T) {
	a, err := assembly.New(100, 80, 60)
	require.NoError(t, err)

	require.Equal(t, geomkit.GenderMale, panel.FaceEdgeGender(a, geomkit.FaceRight, geomkit.EdgeRight))
	require.Equal(t, geomkit.GenderFemale, panel.FaceEdgeGender(a, geomkit.FaceFront, geomkit.EdgeRight))
}

func TestFaceEdgeGender_WallToWallFollowsFacePriority(t *testing.T) {
	a, err := assembly.New(100, 80, 60)
	require.NoError(t, err)

	require.Equal(t, geomkit.GenderMale, panel.FaceEdgeGender(a, geomkit.FaceFront, geomkit.EdgeTop))
	require.Equal(t, geomkit.GenderFemale, panel.FaceEdgeGender(a, geomkit.FaceTop, geomkit.EdgeBottom))
}

func TestFaceEdgeGender_OpenNeighborIsNone(t *testing.T) {
	a, err := assembly.New(100, 80, 60, assembly.WithFace(geomkit.FaceTop, false))
	require.NoError(t, err)

	require.Equal(t, geomkit.GenderNone, panel.FaceEdgeGender(a, geomkit.FaceFront, geomkit.EdgeTop))
}

func TestFaceEdgeGender_TabsInLidFlipsBothSides(t *testing.T) {
	a, err := assembly.New(100, 80, 60, assembly.WithAssemblyConfig(assembly.AssemblyConfig{
		AssemblyAxis: geomkit.AxisX,
		PositiveLid:  assembly.LidConfig{TabDirection: assembly.TabsIn},
		NegativeLid:  assembly.LidConfig{TabDirection: assembly.TabsOut},
	}))
	require.NoError(t, err)

	require.Equal(t, geomkit.GenderFemale, panel.FaceEdgeGender(a, geomkit.FaceRight, geomkit.EdgeRight))
	require.Equal(t, geomkit.GenderMale, panel.FaceEdgeGender(a, geomkit.FaceFront, geomkit.EdgeRight))
}
