// File: cache.go — per-assembly memoisation of Calculate results, keyed
// by the inputs that determine the output (spec §4.3: "computed once per
// assembly, memoised, and referenced by every panel with an edge on that
// axis"). Shared reference is the alignment guarantee.
package finger

import "github.com/katalvlaran/fingerbox/geomkit"

// Key identifies one memoised Calculate call.
type Key struct {
	Axis geomkit.Axis
	Dim  float64
	Mat  MaterialConfig
}

// Memo caches FingerData by Key so repeated calls for the same axis
// dimension and material return the identical slice (same backing array),
// guaranteeing pointer-shared Points across every panel that reads it.
type Memo struct {
	entries map[Key]FingerData
}

// NewMemo constructs an empty memo. The zero value is not usable; always
// go through NewMemo.
func NewMemo() *Memo {
	return &Memo{entries: make(map[Key]FingerData)}
}

// Get returns the memoised FingerData for (axis, dim, mat), computing and
// storing it on first request.
func (m *Memo) Get(axis geomkit.Axis, dim float64, mat MaterialConfig) (FingerData, error) {
	key := Key{Axis: axis, Dim: dim, Mat: mat}
	if fd, ok := m.entries[key]; ok {
		return fd, nil
	}
	fd, err := Calculate(dim, mat)
	if err != nil {
		return FingerData{}, err
	}
	m.entries[key] = fd
	return fd, nil
}

// Clear empties the memo, forcing every subsequent Get to recompute. Used
// when material configuration changes invalidate all cached entries.
func (m *Memo) Clear() {
	m.entries = make(map[Key]FingerData)
}

// Clone returns an independent copy of m, used by Assembly.Clone so a
// preview scene's memo never aliases the primary scene's.
func (m *Memo) Clone() *Memo {
	clone := NewMemo()
	for k, v := range m.entries {
		fd := FingerData{
			Points:         append([]float64(nil), v.Points...),
			InnerOffset:    v.InnerOffset,
			MaxJointLength: v.MaxJointLength,
		}
		clone.entries[k] = fd
	}
	return clone
}
