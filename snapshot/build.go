// File: build.go — builds a Scene snapshot from a live *assembly.Assembly
// by deriving panels (panel.DeriveAll), running the outline
// post-processing pipeline for each (outline.Process), building the
// joint registry (joint.Build) and validating it, and walking the void
// tree into VoidRecords (spec §6).
package snapshot

import (
	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/geomkit"
	"github.com/katalvlaran/fingerbox/joint"
	"github.com/katalvlaran/fingerbox/outline"
	"github.com/katalvlaran/fingerbox/panel"
	"github.com/katalvlaran/fingerbox/void"
)

// Build derives every panel and joint of a and assembles the full
// snapshot tree. It is read-only: a's caches are read, never
// invalidated (that is the dispatcher's job).
func Build(a *assembly.Assembly) (Scene, error) {
	rec, err := buildAssembly(a)
	if err != nil {
		return Scene{}, err
	}
	return Scene{Assembly: rec}, nil
}

func buildAssembly(a *assembly.Assembly) (AssemblyRecord, error) {
	panels, err := panel.DeriveAll(a)
	if err != nil {
		return AssemblyRecord{}, err
	}

	panelRecs := make([]PanelRecord, 0, len(panels))
	for _, p := range panels {
		rec, err := buildPanel(a, p)
		if err != nil {
			return AssemblyRecord{}, err
		}
		panelRecs = append(panelRecs, rec)
	}

	reg := joint.Build(panels)
	joints := reg.Constraints()
	jointRecs := make([]JointRecord, len(joints))
	for i, c := range joints {
		jointRecs[i] = buildJointRecord(c)
	}
	errRecs := make([]JointErrorRecord, 0)
	for _, e := range reg.Validate() {
		errRecs = append(errRecs, JointErrorRecord{
			Joint:     buildJointRecord(e.Constraint),
			Deviation: vec3Record(e.Deviation),
			Magnitude: e.Magnitude,
		})
	}

	panelIDs := make([]assembly.PanelID, len(panels))
	for i, p := range panels {
		panelIDs[i] = assembly.PanelID(p.PanelID())
	}
	connected := reg.CheckConnectivity(panelIDs) == nil

	faces := make([]FaceRecord, len(a.Faces))
	for i, f := range a.Faces {
		faces[i] = FaceRecord{FaceID: f.FaceID.String(), Solid: f.Solid}
	}

	var feet *FeetRecord
	if a.Feet != nil {
		feet = &FeetRecord{Enabled: a.Feet.Enabled, Height: a.Feet.Height, Width: a.Feet.Width, Inset: a.Feet.Inset, Gap: a.Feet.Gap}
	}

	root, err := buildVoid(a, a.Root())
	if err != nil {
		return AssemblyRecord{}, err
	}

	return AssemblyRecord{
		ID:       string(a.ID()),
		Width:    a.Width,
		Height:   a.Height,
		Depth:    a.Depth,
		Material: MaterialRecord{Thickness: a.Material.Thickness, FingerWidth: a.Material.FingerWidth, FingerGap: a.Material.FingerGap},
		Config: AssemblyConfigRecord{
			AssemblyAxis: a.Config.AssemblyAxis.String(),
			PositiveLid:  LidRecord{TabDirection: a.Config.PositiveLid.TabDirection.String(), Inset: a.Config.PositiveLid.Inset},
			NegativeLid:  LidRecord{TabDirection: a.Config.NegativeLid.TabDirection.String(), Inset: a.Config.NegativeLid.Inset},
		},
		Faces:                faces,
		Feet:                 feet,
		Root:                 root,
		Panels:               panelRecs,
		Joints:               jointRecs,
		JointAlignmentErrors: errRecs,
		JointsConnected:      connected,
	}, nil
}

func buildPanel(a *assembly.Assembly, p panel.Panel) (PanelRecord, error) {
	id := assembly.PanelID(p.PanelID())
	opts := outline.Options{
		Extensions:   a.Extensions[id],
		EdgePaths:    a.EdgePaths[id],
		Fillets:      a.Fillets[id],
		Cutouts:      a.Cutouts[id],
		IsBottomWall: id == assembly.FacePanelID(geomkit.FaceBottom),
	}
	if opts.IsBottomWall {
		opts.Feet = a.Feet
	}

	out, corners, err := outline.Process(p, opts)
	if err != nil {
		return PanelRecord{}, err
	}

	width, height := p.Dimensions()
	xf := p.Transform()
	euler := xf.EulerXYZ()

	edgeCfgs := p.EdgeConfigs()
	edges := make([]EdgeRecord, len(edgeCfgs))
	for i, cfg := range edgeCfgs {
		var meetsFace *string
		if cfg.MeetsFaceID != nil {
			s := cfg.MeetsFaceID.String()
			meetsFace = &s
		}
		var meetsDivider *string
		if cfg.MeetsDividerID != nil {
			s := string(*cfg.MeetsDividerID)
			meetsDivider = &s
		}
		edges[i] = EdgeRecord{
			Position:       cfg.Position.String(),
			HasTabs:        cfg.HasTabs,
			MeetsFaceID:    meetsFace,
			MeetsDividerID: meetsDivider,
			Gender:         cfg.Gender.String(),
			Status:         p.EdgeStatuses()[i].String(),
		}
	}

	cornerRecs := make([]CornerRecord, len(corners))
	for i, c := range corners {
		cornerRecs[i] = CornerRecord{Corner: c.Corner.String(), Eligible: c.Eligible, MaxRadius: c.MaxRadius}
	}

	return PanelRecord{
		ID:        string(id),
		Width:     width,
		Height:    height,
		Transform: TransformRecord{Position: vec3Record(xf.Pos), Euler: Vec3Record{X: euler.X, Y: euler.Y, Z: euler.Z}},
		Outline:   buildOutlineRecord(out),
		Edges:     edges,
		Corners:   cornerRecs,
	}, nil
}

func buildOutlineRecord(out geomkit.Outline) OutlineRecord {
	holes := make([]PolygonRecord, len(out.Holes))
	for i, h := range out.Holes {
		holes[i] = buildPolygonRecord(h)
	}
	return OutlineRecord{Outer: buildPolygonRecord(out.Outer), Holes: holes}
}

func buildPolygonRecord(poly geomkit.Polygon) PolygonRecord {
	out := make(PolygonRecord, len(poly))
	for i, pt := range poly {
		out[i] = Point2Record{X: pt.X, Y: pt.Y}
	}
	return out
}

func buildJointRecord(c joint.JointConstraint) JointRecord {
	return JointRecord{
		PanelAID: string(c.A.PanelID),
		EdgeA:    c.A.Edge.String(),
		PanelBID: string(c.B.PanelID),
		EdgeB:    c.B.Edge.String(),
		Axis:     c.Axis.String(),
		Anchor:   vec3Record(c.Anchor),
	}
}

func vec3Record(v geomkit.Vec3) Vec3Record { return Vec3Record{X: v.X, Y: v.Y, Z: v.Z} }

func buildVoid(a *assembly.Assembly, v *void.Void) (VoidRecord, error) {
	b := v.Bounds()
	rec := VoidRecord{
		ID:     string(v.ID()),
		Bounds: BoundsRecord{X: b.X, Y: b.Y, Z: b.Z, W: b.W, H: b.H, D: b.D},
	}
	if split := v.Split(); split != nil {
		rec.Split = &SplitRecord{
			Axis:       split.Axis.String(),
			Position:   split.Position,
			Mode:       split.Mode.String(),
			Percentage: split.Percentage,
		}
	}
	if grid := v.Grid(); grid != nil {
		rec.Grid = make([]GridAxisRecord, len(grid.Axes))
		for i, ga := range grid.Axes {
			rec.Grid[i] = GridAxisRecord{Axis: ga.Axis.String(), Positions: ga.Positions, Percentages: ga.Percentages}
		}
	}
	for _, c := range v.ChildVoids() {
		childRec, err := buildVoid(a, c)
		if err != nil {
			return VoidRecord{}, err
		}
		rec.Children = append(rec.Children, childRec)
	}
	if hosted := v.HostedAssembly(); hosted != nil {
		sa, ok := hosted.(*assembly.SubAssembly)
		if !ok {
			return rec, nil
		}
		subRec, err := buildAssembly(sa.Assembly)
		if err != nil {
			return VoidRecord{}, err
		}
		rec.SubAssembly = &subRec
	}
	return rec, nil
}
