package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ProducesSnapshotWithSixPanels(t *testing.T) {
	var out bytes.Buffer
	err := run(100, 80, 60, "", strings.NewReader(""), &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), `"panels"`)
	require.Equal(t, 6, strings.Count(out.String(), `"id": "face:`))
}

func TestRun_AppliesActionStream(t *testing.T) {
	stream := `[
		{"kind": "setExtensions", "targetId": "assembly-root", "panelId": "face:front", "payload": {"Top": 5}}
	]`
	var out bytes.Buffer
	err := run(100, 80, 60, "", strings.NewReader(stream), &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), `"id": "face:front"`)
}

func TestRun_RejectsUnknownActionKind(t *testing.T) {
	stream := `[{"kind": "doesNotExist", "targetId": "face:front"}]`
	var out bytes.Buffer
	err := run(100, 80, 60, "", strings.NewReader(stream), &out)
	require.Error(t, err)
}
