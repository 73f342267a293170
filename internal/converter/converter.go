// Package converter implements the chorddown tree-walking converters:
// stateless functions that render a parsed document.Node into a target
// output format given a Formatting configuration.
package converter

import (
	"fmt"

	"github.com/chordrgo/chordr/internal/chords"
	"github.com/chordrgo/chordr/internal/document"
	"github.com/chordrgo/chordr/internal/metadata"
)

// Format enumerates the supported output formats.
type Format int

const (
	FormatHTML Format = iota
	FormatText
	FormatChorddown
	FormatSongBeamer
)

// Formatting parameterises every converter: notation preferences plus
// the target format.
type Formatting struct {
	BNotation        chords.BNotation
	SemitoneNotation chords.SemitoneNotation
	Format           Format
}

func (f Formatting) noteOptions() chords.NoteFormatOptions {
	return chords.NoteFormatOptions{BNotation: f.BNotation, SemitoneNotation: f.SemitoneNotation}
}

// Error reports that the input tree's shape was unexpected for the
// chosen format — e.g. a Headline node wrapping a non-headline token.
// Well-formed input never triggers this.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return fmt.Sprintf("converter: %s", e.Msg) }

// Converter renders a document tree plus its metadata into a target
// format's string representation.
type Converter interface {
	Convert(node *document.Node, meta metadata.Metadata, formatting Formatting) (string, error)
}

// ConverterFor returns the Converter implementation for formatting.Format.
func ConverterFor(formatting Formatting) Converter {
	switch formatting.Format {
	case FormatText:
		return TextConverter{}
	case FormatChorddown:
		return ChorddownConverter{}
	case FormatSongBeamer:
		return SongBeamerConverter{}
	default:
		return HTMLConverter{}
	}
}

// Convert transposes node by semitones (when non-zero) and then renders
// it with the converter selected by formatting.Format.
func Convert(node *document.Node, meta metadata.Metadata, formatting Formatting, semitones int) (string, error) {
	if semitones != 0 {
		node = node.Transpose(semitones)
	}
	return ConverterFor(formatting).Convert(node, meta, formatting)
}
