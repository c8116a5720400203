// File: records.go — the plain-record tree spec §6 mandates: "a tree of
// plain records mirroring the node tree. Each node records its ID,
// kind-tag, its input properties, and its derived values." Every record
// here is JSON/YAML-taggable by construction (exported fields, plain
// value types) so the snapshot can cross the API boundary as data, never
// as a live scene reference.
package snapshot

// Point2Record is an (x,y) point or vector in millimetres (spec §6).
type Point2Record struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Vec3Record is an (x,y,z) point or vector in millimetres (spec §6).
type Vec3Record struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// BoundsRecord is an axis-aligned extent: origin plus width/height/depth.
type BoundsRecord struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
	D float64 `json:"d" yaml:"d"`
}

// PolygonRecord is an ordered ring of points (spec §6: "Every polygon is
// an ordered list of (x,y) doubles").
type PolygonRecord []Point2Record

// OutlineRecord is a polygon with holes: the final, post-processed
// 2D shape spec §4.8 produces for one panel.
type OutlineRecord struct {
	Outer PolygonRecord   `json:"outer" yaml:"outer"`
	Holes []PolygonRecord `json:"holes" yaml:"holes"`
}

// TransformRecord is a panel or sub-assembly's world placement: position
// plus XYZ Euler angles in radians (spec §6).
type TransformRecord struct {
	Position Vec3Record `json:"position" yaml:"position"`
	Euler    Vec3Record `json:"euler" yaml:"euler"`
}

// MaterialRecord mirrors finger.MaterialConfig.
type MaterialRecord struct {
	Thickness   float64 `json:"thickness" yaml:"thickness"`
	FingerWidth float64 `json:"fingerWidth" yaml:"fingerWidth"`
	FingerGap   float64 `json:"fingerGap" yaml:"fingerGap"`
}

// LidRecord mirrors assembly.LidConfig.
type LidRecord struct {
	TabDirection string  `json:"tabDirection" yaml:"tabDirection"`
	Inset        float64 `json:"inset" yaml:"inset"`
}

// AssemblyConfigRecord mirrors assembly.AssemblyConfig.
type AssemblyConfigRecord struct {
	AssemblyAxis string    `json:"assemblyAxis" yaml:"assemblyAxis"`
	PositiveLid  LidRecord `json:"positiveLid" yaml:"positiveLid"`
	NegativeLid  LidRecord `json:"negativeLid" yaml:"negativeLid"`
}

// FaceRecord mirrors assembly.FaceConfig.
type FaceRecord struct {
	FaceID string `json:"faceId" yaml:"faceId"`
	Solid  bool   `json:"solid" yaml:"solid"`
}

// FeetRecord mirrors assembly.Feet.
type FeetRecord struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Height  float64 `json:"height" yaml:"height"`
	Width   float64 `json:"width" yaml:"width"`
	Inset   float64 `json:"inset" yaml:"inset"`
	Gap     float64 `json:"gap" yaml:"gap"`
}

// EdgeRecord mirrors one panel.EdgeConfig.
type EdgeRecord struct {
	Position       string  `json:"position" yaml:"position"`
	HasTabs        bool    `json:"hasTabs" yaml:"hasTabs"`
	MeetsFaceID    *string `json:"meetsFaceId,omitempty" yaml:"meetsFaceId,omitempty"`
	MeetsDividerID *string `json:"meetsDividerId,omitempty" yaml:"meetsDividerId,omitempty"`
	Gender         string  `json:"gender" yaml:"gender"`
	Status         string  `json:"status" yaml:"status"`
}

// CornerRecord mirrors one panel.CornerEligibility, refined by the
// outline post-processor.
type CornerRecord struct {
	Corner    string  `json:"corner" yaml:"corner"`
	Eligible  bool    `json:"eligible" yaml:"eligible"`
	MaxRadius float64 `json:"maxRadius" yaml:"maxRadius"`
}

// PanelRecord is one derived, fully post-processed panel (spec §6:
// "Panels appear in the assembly's derived block, not as children in
// the tree").
type PanelRecord struct {
	ID        string          `json:"id" yaml:"id"`
	Width     float64         `json:"width" yaml:"width"`
	Height    float64         `json:"height" yaml:"height"`
	Transform TransformRecord `json:"transform" yaml:"transform"`
	Outline   OutlineRecord   `json:"outline" yaml:"outline"`
	Edges     []EdgeRecord    `json:"edges" yaml:"edges"`
	Corners   []CornerRecord  `json:"corners" yaml:"corners"`
}

// JointRecord mirrors one joint.JointConstraint.
type JointRecord struct {
	PanelAID string     `json:"panelAId" yaml:"panelAId"`
	EdgeA    string     `json:"edgeA" yaml:"edgeA"`
	PanelBID string     `json:"panelBId" yaml:"panelBId"`
	EdgeB    string     `json:"edgeB" yaml:"edgeB"`
	Axis     string     `json:"axis" yaml:"axis"`
	Anchor   Vec3Record `json:"anchor" yaml:"anchor"`
}

// JointErrorRecord mirrors one joint.AlignmentError (spec §4.9/§7:
// "recorded in the assembly's error list, surface in the snapshot").
type JointErrorRecord struct {
	Joint     JointRecord `json:"joint" yaml:"joint"`
	Deviation Vec3Record  `json:"deviation" yaml:"deviation"`
	Magnitude float64     `json:"magnitude" yaml:"magnitude"`
}

// SplitRecord mirrors void.SplitInfo.
type SplitRecord struct {
	Axis       string  `json:"axis" yaml:"axis"`
	Position   float64 `json:"position" yaml:"position"`
	Mode       string  `json:"mode" yaml:"mode"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// GridAxisRecord mirrors one void.GridAxis.
type GridAxisRecord struct {
	Axis        string    `json:"axis" yaml:"axis"`
	Positions   []float64 `json:"positions" yaml:"positions"`
	Percentages []float64 `json:"percentages" yaml:"percentages"`
}

// VoidRecord mirrors one void.Void, recursively.
type VoidRecord struct {
	ID          string           `json:"id" yaml:"id"`
	Bounds      BoundsRecord     `json:"bounds" yaml:"bounds"`
	Split       *SplitRecord     `json:"split,omitempty" yaml:"split,omitempty"`
	Grid        []GridAxisRecord `json:"grid,omitempty" yaml:"grid,omitempty"`
	Children    []VoidRecord     `json:"children,omitempty" yaml:"children,omitempty"`
	SubAssembly *AssemblyRecord  `json:"subAssembly,omitempty" yaml:"subAssembly,omitempty"`
}

// AssemblyRecord mirrors one assembly.Assembly (or the Assembly embedded
// in a SubAssembly), with its full derived block.
type AssemblyRecord struct {
	ID       string               `json:"id" yaml:"id"`
	Width    float64              `json:"width" yaml:"width"`
	Height   float64              `json:"height" yaml:"height"`
	Depth    float64              `json:"depth" yaml:"depth"`
	Material MaterialRecord       `json:"material" yaml:"material"`
	Config   AssemblyConfigRecord `json:"config" yaml:"config"`
	Faces    []FaceRecord         `json:"faces" yaml:"faces"`
	Feet     *FeetRecord          `json:"feet,omitempty" yaml:"feet,omitempty"`
	Root     VoidRecord           `json:"root" yaml:"root"`

	Panels               []PanelRecord      `json:"panels" yaml:"panels"`
	Joints               []JointRecord      `json:"joints" yaml:"joints"`
	JointAlignmentErrors []JointErrorRecord `json:"jointAlignmentErrors" yaml:"jointAlignmentErrors"`

	// JointsConnected is false when the derived panels split into more
	// than one joint-reachable component (joint.CheckConnectivity) — a
	// derivation bug, since every panel of a rigid assembly must reach
	// every other one through some chain of joints.
	JointsConnected bool `json:"jointsConnected" yaml:"jointsConnected"`
}

// Scene is the top-level snapshot returned to external consumers (spec
// §6's "Snapshot (output)").
type Scene struct {
	Assembly AssemblyRecord `json:"assembly" yaml:"assembly"`
}
