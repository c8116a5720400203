// File: errors.go — sentinel errors for invalid-action conditions (spec
// §7): target not found or payload shape rejected before any mutation is
// attempted.
package action

import "errors"

var (
	// ErrTargetNotFound indicates the action's TargetID does not resolve
	// to a node of the expected kind in the active scene.
	ErrTargetNotFound = errors.New("action: target not found")

	// ErrWrongNodeKind indicates the target resolved but is not the kind
	// this action operates on (e.g. a divider-move targeting a leaf void).
	ErrWrongNodeKind = errors.New("action: target is the wrong kind of node")

	// ErrNoActivePreview indicates commit_preview or discard_preview was
	// called with no preview scene started.
	ErrNoActivePreview = errors.New("action: no active preview")

	// ErrPreviewAlreadyActive indicates start_preview was called while a
	// preview scene is already open.
	ErrPreviewAlreadyActive = errors.New("action: preview already active")
)
