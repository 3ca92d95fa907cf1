// fuzzdex is a demo CLI for the fuzzdex library: fuzzy search over a
// line-based dataset file. It only calls the public engine operations.
package main

import (
	"os"

	"github.com/dmelton/fuzzdex/cmd/fuzzdex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
