// File: errors.go — sentinel errors for the outline package.
package outline

import "errors"

// ErrNoEdgeRuns indicates the panel passed to Process did not publish
// per-edge runs (a programming error: every concrete panel type embeds
// panelShape, which always populates them).
var ErrNoEdgeRuns = errors.New("outline: panel published no edge runs")
