package snapshot_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/geomkit"
	"github.com/katalvlaran/fingerbox/snapshot"
)

func newAssembly(t *testing.T) *assembly.Assembly {
	t.Helper()
	a, err := assembly.New(100, 80, 60)
	require.NoError(t, err)
	return a
}

func TestBuild_ProducesSixFacePanels(t *testing.T) {
	a := newAssembly(t)
	scene, err := snapshot.Build(a)
	require.NoError(t, err)
	require.Len(t, scene.Assembly.Panels, 6)
	require.Empty(t, scene.Assembly.JointAlignmentErrors)
	require.True(t, scene.Assembly.JointsConnected)
}

func TestBuild_RootVoidHasNoChildrenWhenUnsplit(t *testing.T) {
	a := newAssembly(t)
	scene, err := snapshot.Build(a)
	require.NoError(t, err)
	require.Empty(t, scene.Assembly.Root.Children)
	require.Nil(t, scene.Assembly.Root.Split)
}

func TestShareLink_RoundTripsThroughYAML(t *testing.T) {
	a := newAssembly(t)
	require.NoError(t, a.SetExtensions(assembly.FacePanelID(geomkit.FaceFront), assembly.EdgeExtensions{Top: 5, Right: 2}))

	want := snapshot.BuildShareLink(a)
	data, err := snapshot.Marshal(want)
	require.NoError(t, err)

	got, err := snapshot.Unmarshal(data)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("share link round trip mismatch (-want +got):\n%s", diff)
	}
}
