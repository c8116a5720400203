// File: persist.go — the share-link persisted format (spec §6): width/
// height/depth, material, face states, assembly config, the void tree
// with split info, and the per-panel edge-extension/fillet/edge-path/
// cutout stores keyed by the canonical assembly.PanelID. Encoded with
// gopkg.in/yaml.v3, the teacher pack's example of a plain-struct
// persistence format (dshills/dungo) with no logging dependency riding
// along.
package snapshot

import (
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/geomkit"
	"github.com/katalvlaran/fingerbox/void"
)

// ShareLink is the persisted configuration format: everything an
// assembly needs to be reconstructed, independent of any transient
// NodeID (spec §6: "stable across reclones because it derives from
// semantics, not transient node IDs").
type ShareLink struct {
	Width    float64              `yaml:"width"`
	Height   float64              `yaml:"height"`
	Depth    float64              `yaml:"depth"`
	Material MaterialRecord       `yaml:"material"`
	Config   AssemblyConfigRecord `yaml:"config"`
	Faces    []FaceRecord         `yaml:"faces"`
	Feet     *FeetRecord          `yaml:"feet,omitempty"`
	Void     ShareVoid            `yaml:"void"`

	Extensions map[string]ExtensionRecord       `yaml:"extensions,omitempty"`
	Fillets    map[string]map[string]float64    `yaml:"fillets,omitempty"`
	EdgePaths  map[string]map[string]EdgePathRecord `yaml:"edgePaths,omitempty"`
	Cutouts    map[string][]CutoutRecord        `yaml:"cutouts,omitempty"`
}

// ShareVoid is the void tree's persisted shape: bounds are omitted
// (rederived from parent span and split percentage on load) since only
// the split/grid structure, not the resolved geometry, needs to survive
// a round trip.
type ShareVoid struct {
	Split    *SplitRecord     `yaml:"split,omitempty"`
	Grid     []GridAxisRecord `yaml:"grid,omitempty"`
	Children []ShareVoid      `yaml:"children,omitempty"`
}

// ExtensionRecord mirrors assembly.EdgeExtensions.
type ExtensionRecord struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// EdgePathRecord mirrors geomkit.EdgePath.
type EdgePathRecord struct {
	Points   []geomkit.EdgePathPoint `yaml:"points"`
	Mirrored bool                    `yaml:"mirrored"`
}

// CutoutRecord mirrors geomkit.Cutout.
type CutoutRecord struct {
	Kind         string             `yaml:"kind"`
	Center       Point2Record       `yaml:"center"`
	Width        float64            `yaml:"width,omitempty"`
	Height       float64            `yaml:"height,omitempty"`
	CornerRadius float64            `yaml:"cornerRadius,omitempty"`
	Radius       float64            `yaml:"radius,omitempty"`
	Polygon      PolygonRecord      `yaml:"polygon,omitempty"`
}

// BuildShareLink extracts a's persisted configuration, independent of
// any derived geometry.
func BuildShareLink(a *assembly.Assembly) ShareLink {
	faces := make([]FaceRecord, len(a.Faces))
	for i, f := range a.Faces {
		faces[i] = FaceRecord{FaceID: f.FaceID.String(), Solid: f.Solid}
	}
	var feet *FeetRecord
	if a.Feet != nil {
		feet = &FeetRecord{Enabled: a.Feet.Enabled, Height: a.Feet.Height, Width: a.Feet.Width, Inset: a.Feet.Inset, Gap: a.Feet.Gap}
	}

	link := ShareLink{
		Width:  a.Width,
		Height: a.Height,
		Depth:  a.Depth,
		Material: MaterialRecord{
			Thickness:   a.Material.Thickness,
			FingerWidth: a.Material.FingerWidth,
			FingerGap:   a.Material.FingerGap,
		},
		Config: AssemblyConfigRecord{
			AssemblyAxis: a.Config.AssemblyAxis.String(),
			PositiveLid:  LidRecord{TabDirection: a.Config.PositiveLid.TabDirection.String(), Inset: a.Config.PositiveLid.Inset},
			NegativeLid:  LidRecord{TabDirection: a.Config.NegativeLid.TabDirection.String(), Inset: a.Config.NegativeLid.Inset},
		},
		Faces: faces,
		Feet:  feet,
		Void:  buildShareVoid(a.Root()),
	}

	if len(a.Extensions) > 0 {
		link.Extensions = make(map[string]ExtensionRecord, len(a.Extensions))
		for id, e := range a.Extensions {
			link.Extensions[string(id)] = ExtensionRecord{Top: e.Top, Bottom: e.Bottom, Left: e.Left, Right: e.Right}
		}
	}
	if len(a.Fillets) > 0 {
		link.Fillets = make(map[string]map[string]float64, len(a.Fillets))
		for id, m := range a.Fillets {
			fm := make(map[string]float64, len(m))
			for corner, r := range m {
				fm[corner.String()] = r
			}
			link.Fillets[string(id)] = fm
		}
	}
	if len(a.EdgePaths) > 0 {
		link.EdgePaths = make(map[string]map[string]EdgePathRecord, len(a.EdgePaths))
		for id, m := range a.EdgePaths {
			pm := make(map[string]EdgePathRecord, len(m))
			for pos, p := range m {
				pm[pos.String()] = EdgePathRecord{Points: p.Points, Mirrored: p.Mirrored}
			}
			link.EdgePaths[string(id)] = pm
		}
	}
	if len(a.Cutouts) > 0 {
		link.Cutouts = make(map[string][]CutoutRecord, len(a.Cutouts))
		for id, cuts := range a.Cutouts {
			crs := make([]CutoutRecord, len(cuts))
			for i, c := range cuts {
				crs[i] = CutoutRecord{
					Kind:         c.Kind.String(),
					Center:       Point2Record{X: c.Center.X, Y: c.Center.Y},
					Width:        c.Width,
					Height:       c.Height,
					CornerRadius: c.CornerRadius,
					Radius:       c.Radius,
					Polygon:      buildPolygonRecord(c.Polygon),
				}
			}
			link.Cutouts[string(id)] = crs
		}
	}
	return link
}

// buildShareVoid walks v's split/grid structure, dropping resolved
// bounds: on load, each void's extent is rederived from its parent span
// and stored split/grid percentage (void.Resize), the same path a live
// assembly dimension change already takes.
func buildShareVoid(v *void.Void) ShareVoid {
	rec := ShareVoid{}
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
		rec.Children = append(rec.Children, buildShareVoid(c))
	}
	return rec
}

// Marshal encodes link as YAML.
func Marshal(link ShareLink) ([]byte, error) {
	return yaml.Marshal(link)
}

// Unmarshal decodes a YAML-encoded ShareLink.
func Unmarshal(data []byte) (ShareLink, error) {
	var link ShareLink
	if err := yaml.Unmarshal(data, &link); err != nil {
		return ShareLink{}, err
	}
	return link, nil
}
