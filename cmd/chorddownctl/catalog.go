package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chordrgo/chordr/internal/catalog"
)

func newBuildCatalogCommand() *cobra.Command {
	var recursive bool
	var extension string

	cmd := &cobra.Command{
		Use:   "build-catalog <directory>",
		Short: "Parse every chorddown source under a directory into a catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, errs := catalog.Build(args[0], catalog.Options{Recursive: recursive, Extension: extension})
			for _, e := range errs {
				fmt.Printf("error: %s\n", e)
			}
			if cat == nil {
				return fmt.Errorf("catalog build failed")
			}

			for _, song := range cat.Songs.Items() {
				fmt.Printf("%s\t%s\n", song.ID, song.Meta.Title)
			}
			fmt.Printf("%d songs, %d errors\n", cat.Songs.Len(), len(errs))
			return nil
		},
	}

	cmd.Flags().BoolVar(&recursive, "recursive", false, "walk subdirectories")
	cmd.Flags().StringVar(&extension, "extension", "", "only parse files with this suffix")

	return cmd
}
