// File: options.go — functional-options constructor, mirroring the
// teacher's BuilderOption/newBuilderConfig pattern: every option mutates
// a config struct by value, New resolves it once into an immutable
// Assembly.
package assembly

import (
	"github.com/katalvlaran/fingerbox/core"
	"github.com/katalvlaran/fingerbox/finger"
	"github.com/katalvlaran/fingerbox/geomkit"
	"github.com/katalvlaran/fingerbox/void"
)

type assemblyConfig struct {
	material finger.MaterialConfig
	config   AssemblyConfig
	faces    [6]FaceConfig
	feet     *Feet
}

// Option configures a New or NewSubAssembly call.
type Option func(*assemblyConfig)

// WithMaterial sets the material recipe.
func WithMaterial(m finger.MaterialConfig) Option {
	return func(c *assemblyConfig) { c.material = m }
}

// WithAssemblyConfig sets the assembly axis and lid configuration.
func WithAssemblyConfig(cfg AssemblyConfig) Option {
	return func(c *assemblyConfig) { c.config = cfg }
}

// WithFace overrides the solidity of a single face from its default
// (solid).
func WithFace(id geomkit.FaceID, solid bool) Option {
	return func(c *assemblyConfig) { c.faces[id].Solid = solid }
}

// WithFeet enables and configures the foot profile.
func WithFeet(f Feet) Option {
	return func(c *assemblyConfig) { f.Enabled = true; c.feet = &f }
}

func resolveConfig(width, height, depth float64, opts []Option) (assemblyConfig, error) {
	cfg := assemblyConfig{
		material: finger.MaterialConfig{Thickness: 3, FingerWidth: 10, FingerGap: 1.5},
		faces:    defaultFaceConfigs(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if width <= 0 || height <= 0 || depth <= 0 {
		return cfg, ErrInvalidDimensions
	}
	if err := cfg.material.Validate(); err != nil {
		return cfg, err
	}
	if err := validateAssemblyConfig(cfg.config, width, height, depth); err != nil {
		return cfg, err
	}
	if cfg.feet != nil {
		if err := cfg.feet.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func newWithIDs(id, rootID core.NodeID, width, height, depth float64, cfg assemblyConfig) *Assembly {
	rootBounds := geomkit.Bounds3D{W: width, H: height, D: depth}
	root := void.NewLeaf(rootID, rootBounds)

	return &Assembly{
		id:         id,
		Width:      width,
		Height:     height,
		Depth:      depth,
		Material:   cfg.material,
		Config:     cfg.config,
		Faces:      cfg.faces,
		Feet:       cfg.feet,
		root:       root,
		Extensions: make(map[PanelID]EdgeExtensions),
		Fillets:    make(map[PanelID]map[geomkit.Corner]float64),
		EdgePaths:  make(map[PanelID]map[geomkit.EdgePosition]geomkit.EdgePath),
		Cutouts:    make(map[PanelID][]geomkit.Cutout),
		cache:      derivedCache{fingerMemo: finger.NewMemo(), stale: true},
	}
}

// New constructs a top-level Assembly of the given outer dimensions and
// its root void. The returned Assembly has no Scene yet — callers
// typically wrap it with core.NewScene(a) immediately, since a Scene's
// root must already exist when the Scene is constructed (the teacher's
// graph likewise builds nodes before the registry that indexes them).
func New(width, height, depth float64, opts ...Option) (*Assembly, error) {
	cfg, err := resolveConfig(width, height, depth, opts)
	if err != nil {
		return nil, err
	}
	return newWithIDs("assembly-root", "void-root", width, height, depth, cfg), nil
}

func validateAssemblyConfig(cfg AssemblyConfig, width, height, depth float64) error {
	var dim float64
	switch cfg.AssemblyAxis {
	case geomkit.AxisX:
		dim = width
	case geomkit.AxisY:
		dim = height
	default:
		dim = depth
	}
	half := dim / 2
	if cfg.PositiveLid.Inset < 0 || cfg.PositiveLid.Inset >= half {
		return ErrInvalidInset
	}
	if cfg.NegativeLid.Inset < 0 || cfg.NegativeLid.Inset >= half {
		return ErrInvalidInset
	}
	return nil
}
