package joint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/geomkit"
	"github.com/katalvlaran/fingerbox/joint"
	"github.com/katalvlaran/fingerbox/panel"
)

func derivedPanels(t *testing.T) []panel.Panel {
	t.Helper()
	a, err := assembly.New(100, 80, 60)
	require.NoError(t, err)
	panels, err := panel.DeriveAll(a)
	require.NoError(t, err)
	return panels
}

func TestBuild_AdjacentFacesShareAlignedAnchor(t *testing.T) {
	panels := derivedPanels(t)
	reg := joint.Build(panels)
	constraints := reg.Constraints()
	require.NotEmpty(t, constraints, "a 6-face box must produce face-to-face joint constraints")

	for _, c := range constraints {
		require.True(t, c.A.Anchor.EqualTol(c.B.Anchor, geomkit.DefaultTolerance),
			"constraint %s: anchors %v vs %v", c.Key(), c.A.Anchor, c.B.Anchor)
	}
}

func TestValidate_CleanAssemblyHasNoAlignmentErrors(t *testing.T) {
	panels := derivedPanels(t)
	reg := joint.Build(panels)
	require.Empty(t, reg.Validate())
}

func TestJointConstraint_KeyIsOrderIndependent(t *testing.T) {
	a := joint.Side{PanelID: "face:front"}
	b := joint.Side{PanelID: "face:top"}
	c1 := joint.JointConstraint{A: a, B: b}
	c2 := joint.JointConstraint{A: b, B: a}
	require.Equal(t, c1.Key(), c2.Key())
}

func TestCheckConnectivity_FreshBoxIsOneComponent(t *testing.T) {
	panels := derivedPanels(t)
	reg := joint.Build(panels)

	ids := make([]assembly.PanelID, len(panels))
	for i, p := range panels {
		ids[i] = assembly.PanelID(p.PanelID())
	}

	require.Nil(t, reg.CheckConnectivity(ids))
}

func TestCheckConnectivity_DetectsAFloatingPanel(t *testing.T) {
	panels := derivedPanels(t)
	reg := joint.Build(panels)

	ids := make([]assembly.PanelID, len(panels))
	for i, p := range panels {
		ids[i] = assembly.PanelID(p.PanelID())
	}
	ids = append(ids, assembly.PanelID("face:phantom"))

	err := reg.CheckConnectivity(ids)
	require.NotNil(t, err)
	require.Greater(t, len(err.Components), 1)
}
