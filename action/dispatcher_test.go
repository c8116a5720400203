package action_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fingerbox/action"
	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/core"
	"github.com/katalvlaran/fingerbox/geomkit"
)

func newDispatcher(t *testing.T) (*action.Dispatcher, *assembly.Assembly) {
	t.Helper()
	a, err := assembly.New(100, 80, 60)
	require.NoError(t, err)
	scene := core.NewScene(a)
	return action.NewDispatcher(scene, nil), a
}

func TestDispatch_ResizeAssembly(t *testing.T) {
	d, a := newDispatcher(t)
	ok, reason := d.Dispatch(action.ResizeAssembly{TargetID: a.ID(), Width: 120, Height: 80, Depth: 60})
	require.True(t, ok, reason)
	require.Equal(t, 120.0, a.Width)
}

func TestDispatch_InvalidTargetFails(t *testing.T) {
	d, _ := newDispatcher(t)
	ok, reason := d.Dispatch(action.ResizeAssembly{TargetID: "no-such-id", Width: 10, Height: 10, Depth: 10})
	require.False(t, ok)
	require.NotEmpty(t, reason)
}

func TestDispatch_SetFaceSolid(t *testing.T) {
	d, a := newDispatcher(t)
	ok, _ := d.Dispatch(action.SetFaceSolid{TargetID: a.ID(), Face: geomkit.FaceTop, Solid: false})
	require.True(t, ok)
	require.False(t, a.Face(geomkit.FaceTop).Solid)
}

func TestDispatch_SetExtensionsRejectsNegative(t *testing.T) {
	d, a := newDispatcher(t)
	ok, reason := d.Dispatch(action.SetExtensions{
		TargetID:   a.ID(),
		PanelID:    assembly.FacePanelID(geomkit.FaceFront),
		Extensions: assembly.EdgeExtensions{Top: -5},
	})
	require.False(t, ok)
	require.NotEmpty(t, reason)
}

func TestPreview_MutationIsolatedUntilCommit(t *testing.T) {
	d, a := newDispatcher(t)
	ok, reason := d.StartPreview()
	require.True(t, ok, reason)
	require.True(t, d.InPreview())

	ok, reason = d.Dispatch(action.ResizeAssembly{TargetID: a.ID(), Width: 200, Height: 80, Depth: 60})
	require.True(t, ok, reason)

	require.Equal(t, 100.0, a.Width, "primary assembly must be untouched while preview is open")

	previewRoot := d.ActiveScene().Root().(*assembly.Assembly)
	require.Equal(t, 200.0, previewRoot.Width)

	ok, reason = d.CommitPreview()
	require.True(t, ok, reason)
	require.False(t, d.InPreview())

	committed := d.MainScene().Root().(*assembly.Assembly)
	require.Equal(t, 200.0, committed.Width)
}

func TestPreview_Discard(t *testing.T) {
	d, a := newDispatcher(t)
	_, _ = d.StartPreview()
	_, _ = d.Dispatch(action.ResizeAssembly{TargetID: a.ID(), Width: 500, Height: 80, Depth: 60})

	ok, reason := d.DiscardPreview()
	require.True(t, ok, reason)
	require.False(t, d.InPreview())
	require.Equal(t, 100.0, a.Width)
}

func TestPreview_DoubleStartFails(t *testing.T) {
	d, _ := newDispatcher(t)
	_, _ = d.StartPreview()
	ok, reason := d.StartPreview()
	require.False(t, ok)
	require.NotEmpty(t, reason)
}

func TestDispatch_SubdivideVoid(t *testing.T) {
	d, a := newDispatcher(t)
	root := a.Root()
	ok, reason := d.Dispatch(action.SubdivideVoid{
		TargetID: root.ID(),
		Axis:     geomkit.AxisX,
		Position: 50,
	})
	require.True(t, ok, reason)
	require.Len(t, root.ChildVoids(), 2)
}
