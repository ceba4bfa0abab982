// Command sapling opens tree snapshots in the sapling editor.
//
//	sapling view tree.yaml --out tree.yaml   # ebiten window
//	sapling term tree.yaml                   # terminal UI
//	sapling layout tree.yaml                 # print slot positions as YAML
//
// Without a file argument a small demo tree is used.
package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/sapling/internal/logging"
)

// Version is set during build with -ldflags.
var version = "dev"

var log = logging.New("cli")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
