// Command chorddownctl is a small CLI wrapping the chorddown core:
// convert a source file between formats, build a catalog from a
// directory, or replay a command log against a JSON-encoded entry store.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "chorddownctl",
		Short: "Convert, catalog, and replay chorddown song sheets",
	}

	root.AddCommand(newConvertCommand())
	root.AddCommand(newBuildCatalogCommand())
	root.AddCommand(newReplayLogCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
