package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chordrgo/chordr/internal/chords"
	"github.com/chordrgo/chordr/internal/converter"
	"github.com/chordrgo/chordr/internal/parser"
	"github.com/chordrgo/chordr/internal/tokenizer"
)

func newConvertCommand() *cobra.Command {
	var format string
	var bNotation string
	var transpose int

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a chorddown source file to html, text, chorddown, or songbeamer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			src, err := tokenizer.DecodeSource(data)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", args[0], err)
			}

			lexemes := tokenizer.Scan(src)
			tokens, tokErrs := tokenizer.Tokenize(lexemes)
			for _, e := range tokErrs {
				fmt.Fprintf(os.Stderr, "warning: %s\n", e)
			}

			result, err := parser.Parse(tokens)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			formatting := converter.Formatting{BNotation: chords.BNotationB, SemitoneNotation: chords.Sharp}
			switch format {
			case "html":
				formatting.Format = converter.FormatHTML
			case "text":
				formatting.Format = converter.FormatText
			case "chorddown":
				formatting.Format = converter.FormatChorddown
			case "songbeamer":
				formatting.Format = converter.FormatSongBeamer
			default:
				return fmt.Errorf("unknown format %q", format)
			}
			if bNotation != "" {
				n, err := chords.ParseBNotation(bNotation)
				if err != nil {
					return err
				}
				formatting.BNotation = n
			}

			output, err := converter.Convert(result.Node, result.Metadata, formatting, transpose)
			if err != nil {
				return fmt.Errorf("converting %s: %w", args[0], err)
			}

			fmt.Println(output)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "html", "output format: html, text, chorddown, songbeamer")
	cmd.Flags().StringVar(&bNotation, "b-notation", "", "B notation override: B or H")
	cmd.Flags().IntVar(&transpose, "transpose", 0, "semitones to transpose before rendering")

	return cmd
}
