//go:build js && wasm

// Command wasm exposes the trajectory generator to the browser via
// WebAssembly. After loading, it registers a global JavaScript function:
//
//	generateTrajectory(jsonString) -> jsonString
//
// The input and output are JSON-encoded config.Request and config.Response
// respectively, matching the same contract used by the CLI.
package main

import (
	"syscall/js"

	"github.com/cxd309/tms-trajectory/internal/config"
)

func main() {
	js.Global().Set("generateTrajectory", js.FuncOf(generateTrajectory))
	select {} // keep the WASM module alive until the page is closed
}

func generateTrajectory(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		return map[string]any{"error": "no input provided"}
	}

	result, err := config.RunJSON(args[0].String())
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	return result
}
