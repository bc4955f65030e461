// Command tms-trajectory reads a config.Request JSON from a file argument
// (or stdin), generates the trajectory, and writes the sampled
// config.Response JSON to stdout.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cxd309/tms-trajectory/internal/config"
)

func main() {
	var (
		data []byte
		err  error
	)

	if len(os.Args) > 1 {
		data, err = os.ReadFile(os.Args[1])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading input: %v\n", err)
		os.Exit(1)
	}

	result, err := config.RunJSON(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "trajectory generation error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(result)
}
