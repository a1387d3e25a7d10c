// Command fsgraph models a directory subtree as a graph and queries it.
package main

import (
	"os"

	"github.com/katalvlaran/fsgraph/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
