package outline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/geomkit"
	"github.com/katalvlaran/fingerbox/outline"
	"github.com/katalvlaran/fingerbox/panel"
)

func deriveFront(t *testing.T) (*assembly.Assembly, *panel.FacePanel) {
	t.Helper()
	a, err := assembly.New(100, 80, 60)
	require.NoError(t, err)
	fp, err := panel.DeriveFace(a, geomkit.FaceFront)
	require.NoError(t, err)
	return a, fp
}

func TestProcess_ZeroExtensionMatchesBaseOutline(t *testing.T) {
	_, fp := deriveFront(t)
	out, _, err := outline.Process(fp, outline.Options{})
	require.NoError(t, err)
	require.True(t, out.Outer.EqualTol(fp.BaseOutline().Outer, geomkit.OutlineTolerance))
}

func TestProcess_ExtensionMergesCorner(t *testing.T) {
	_, fp := deriveFront(t)
	width, height := fp.Dimensions()
	out, _, err := outline.Process(fp, outline.Options{
		Extensions: assembly.EdgeExtensions{Top: 20, Right: 20},
	})
	require.NoError(t, err)

	wantX, wantY := width/2+20, height/2+20
	found := false
	for _, pt := range out.Outer {
		if pt.EqualTol(geomkit.Point2{X: wantX, Y: wantY}, geomkit.DefaultTolerance) {
			found = true
			break
		}
	}
	require.True(t, found, "expected merged corner at (%v,%v), got %v", wantX, wantY, out.Outer)
}

func TestProcess_FilletZeroRadiusIsNoOp(t *testing.T) {
	_, fp := deriveFront(t)
	before, _, err := outline.Process(fp, outline.Options{})
	require.NoError(t, err)
	after, _, err := outline.Process(fp, outline.Options{
		Fillets: map[geomkit.Corner]float64{geomkit.CornerTopLeft: 0},
	})
	require.NoError(t, err)
	require.Equal(t, len(before.Outer), len(after.Outer))
}

func TestProcess_FilletAddsArcSamples(t *testing.T) {
	_, fp := deriveFront(t)
	before, _, err := outline.Process(fp, outline.Options{})
	require.NoError(t, err)
	after, _, err := outline.Process(fp, outline.Options{
		Fillets: map[geomkit.Corner]float64{geomkit.CornerTopLeft: 10},
	})
	require.NoError(t, err)
	require.Equal(t, len(before.Outer)+geomkit.MinFilletSamples, len(after.Outer))
}

func TestProcess_CutoutAddsHole(t *testing.T) {
	_, fp := deriveFront(t)
	out, _, err := outline.Process(fp, outline.Options{
		Cutouts: []geomkit.Cutout{{Kind: geomkit.CutoutCircle, Radius: 5}},
	})
	require.NoError(t, err)
	require.Len(t, out.Holes, 1)
	require.GreaterOrEqual(t, len(out.Holes[0]), geomkit.MinCircleSegments)
}

func TestProcess_FeetReplaceBottomEdge(t *testing.T) {
	_, fp := deriveFront(t)
	feet := assembly.Feet{Enabled: true, Height: 15, Width: 10, Inset: 5, Gap: 20}
	out, _, err := outline.Process(fp, outline.Options{Feet: &feet, IsBottomWall: true})
	require.NoError(t, err)

	minY := out.Outer[0].Y
	for _, pt := range out.Outer {
		if pt.Y < minY {
			minY = pt.Y
		}
	}
	_, height := fp.Dimensions()
	require.InDelta(t, -height/2-feet.Height, minY, geomkit.DefaultTolerance)
}

func TestProcess_RefinedEligibilityGrowsWithExtension(t *testing.T) {
	_, fp := deriveFront(t)
	_, before, err := outline.Process(fp, outline.Options{})
	require.NoError(t, err)
	_, after, err := outline.Process(fp, outline.Options{
		Extensions: assembly.EdgeExtensions{Top: 20, Left: 20},
	})
	require.NoError(t, err)

	for i := range before {
		if before[i].Corner == geomkit.CornerTopLeft {
			require.Greater(t, after[i].MaxRadius, before[i].MaxRadius)
		}
	}
}
