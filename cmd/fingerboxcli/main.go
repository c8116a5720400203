// Command fingerboxcli builds an assembly and replays a JSON action
// stream against it (spec §4.10), printing the resulting snapshot (spec
// §6) as JSON.
//
// Usage:
//
//	fingerboxcli -width 180 -height 100 -depth 80 actions.json
//
// actions.json holds a JSON array of {kind, targetId, payload} envelopes,
// applied in order. Read from stdin when no file argument is given.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/fingerbox/action"
	"github.com/katalvlaran/fingerbox/assembly"
	"github.com/katalvlaran/fingerbox/core"
	"github.com/katalvlaran/fingerbox/logx"
	"github.com/katalvlaran/fingerbox/snapshot"
)

func main() {
	width := flag.Float64("width", 180, "outer width in mm")
	height := flag.Float64("height", 100, "outer height in mm")
	depth := flag.Float64("depth", 80, "outer depth in mm")
	flag.Parse()

	if err := run(*width, *height, *depth, flag.Arg(0), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "fingerboxcli:", err)
		os.Exit(1)
	}
}

func run(width, height, depth float64, path string, stdin io.Reader, stdout io.Writer) error {
	a, err := assembly.New(width, height, depth)
	if err != nil {
		return fmt.Errorf("build assembly: %w", err)
	}
	scene := core.NewScene(a)
	dispatcher := action.NewDispatcher(scene, logx.Default)

	raw, err := readActionStream(path, stdin)
	if err != nil {
		return fmt.Errorf("read action stream: %w", err)
	}

	var envelopes []actionEnvelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &envelopes); err != nil {
			return fmt.Errorf("decode action stream: %w", err)
		}
	}

	for i, env := range envelopes {
		act, err := env.decode()
		if err != nil {
			return fmt.Errorf("action %d (%s): %w", i, env.Kind, err)
		}
		if ok, reason := dispatcher.Dispatch(act); !ok {
			return fmt.Errorf("action %d (%s) rejected: %s", i, env.Kind, reason)
		}
	}

	root, ok := dispatcher.ActiveScene().Root().(*assembly.Assembly)
	if !ok {
		return fmt.Errorf("scene root is not an assembly")
	}
	result, err := snapshot.Build(root)
	if err != nil {
		return fmt.Errorf("build snapshot: %w", err)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func readActionStream(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
