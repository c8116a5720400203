// File: dispatcher.go — Dispatcher: applies one Action at a time against
// either the primary scene or an open preview clone, and implements the
// preview/commit/discard workflow (spec §4.10).
package action

import (
	"github.com/katalvlaran/fingerbox/core"
	"github.com/katalvlaran/fingerbox/logx"
)

// Dispatcher is the sole mutator of its primary scene (spec §5: "The
// dispatcher is the sole mutator"). It is not safe for concurrent use
// from multiple goroutines, matching the engine's single-threaded
// contract.
type Dispatcher struct {
	primary *core.Scene
	preview *core.Scene
	log     *logx.Logger
}

// NewDispatcher wraps primary. A nil logger uses logx.Default.
func NewDispatcher(primary *core.Scene, logger *logx.Logger) *Dispatcher {
	if logger == nil {
		logger = logx.Default
	}
	return &Dispatcher{primary: primary, log: logger}
}

// MainScene returns the primary scene, regardless of whether a preview
// is open — spec §4.10's "explicit main scene accessor ... used by the
// joint-registry cache comparison and by UIs that want to show
// pre-operation state".
func (d *Dispatcher) MainScene() *core.Scene { return d.primary }

// ActiveScene returns the preview scene if one is open, else the primary
// scene. Reads (snapshot, derived panels) should go through this, not
// MainScene, so they reflect an in-progress preview.
func (d *Dispatcher) ActiveScene() *core.Scene {
	if d.preview != nil {
		return d.preview
	}
	return d.primary
}

// InPreview reports whether a preview scene is currently open.
func (d *Dispatcher) InPreview() bool { return d.preview != nil }

// StartPreview deep-clones the primary scene (core.Scene.Clone) and makes
// the clone the active target of subsequent Dispatch calls.
func (d *Dispatcher) StartPreview() (bool, string) {
	if d.preview != nil {
		return false, ErrPreviewAlreadyActive.Error()
	}
	d.preview = d.primary.Clone()
	d.log.Info("preview started")
	return true, ""
}

// CommitPreview atomically swaps the preview scene into the primary slot
// and discards the previous primary.
func (d *Dispatcher) CommitPreview() (bool, string) {
	if d.preview == nil {
		return false, ErrNoActivePreview.Error()
	}
	d.primary = d.preview
	d.preview = nil
	d.log.Info("preview committed")
	return true, ""
}

// DiscardPreview drops the preview scene unconditionally; per spec
// §4.10, discard is atomic and cannot itself fail, short of there being
// no preview to discard.
func (d *Dispatcher) DiscardPreview() (bool, string) {
	if d.preview == nil {
		return false, ErrNoActivePreview.Error()
	}
	d.preview = nil
	d.log.Info("preview discarded")
	return true, ""
}

// Dispatch applies a to the active scene (the open preview, if any, else
// the primary) and logs the outcome at the severity spec §7 assigns an
// invalid-action / invariant-violation rejection: a warning, since
// either case means the requested mutation did not happen.
func (d *Dispatcher) Dispatch(a Action) (ok bool, reason string) {
	ok, reason = a.Apply(d.ActiveScene())
	if !ok {
		d.log.Warn("action rejected", "reason", reason)
		return false, reason
	}
	d.log.Info("action applied")
	return true, ""
}
