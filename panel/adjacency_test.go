package panel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fingerbox/geomkit"
	"github.com/katalvlaran/fingerbox/panel"
)

func TestMeetingFace_EveryFaceEdgeHasADistinctNeighbor(t *testing.T) {
	for _, face := range geomkit.AllFaces {
		neighbors := make(map[geomkit.FaceID]bool, 4)
		for _, pos := range []geomkit.EdgePosition{geomkit.EdgeTop, geomkit.EdgeBottom, geomkit.EdgeLeft, geomkit.EdgeRight} {
			neighbor := panel.MeetingFace(face, pos)
			require.NotEqual(t, face, neighbor, "face %s edge %s cannot border itself", face, pos)
			neighbors[neighbor] = true
		}
		require.Len(t, neighbors, 4, "face %s must border four distinct faces", face)
	}
}

func TestMeetingFace_FrontRightPairIsMutual(t *testing.T) {
	require.Equal(t, geomkit.FaceRight, panel.MeetingFace(geomkit.FaceFront, geomkit.EdgeRight))
	require.Equal(t, geomkit.FaceFront, panel.MeetingFace(geomkit.FaceRight, geomkit.EdgeRight))
}
