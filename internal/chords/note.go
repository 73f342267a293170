// Package chords implements the pitch-class and chord model: parsing chord
// tokens, ordering them in pitch-class space, and transposing them modulo 12.
package chords

import "fmt"

// Note is a pitch class in the 12-tone chromatic scale. Ordinal positions are
// fixed and used directly for transposition arithmetic.
type Note int

const (
	C Note = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B // ordinal 11; display as "B" or "H" depending on BNotation
)

// noteNames holds the canonical (Sharp, Anglo-B) display name for each ordinal.
var noteNames = [12]string{
	C:      "C",
	CSharp: "C#",
	D:      "D",
	DSharp: "D#",
	E:      "E",
	F:      "F",
	FSharp: "F#",
	G:      "G",
	GSharp: "G#",
	A:      "A",
	ASharp: "A#",
	B:      "B",
}

// raised marks the five pitch classes that have both a sharp and a flat name.
var raised = [12]bool{1: true, 3: true, 6: true, 8: true, 10: true}

// BNotation selects the European (H) or Anglo-American (B) convention for
// naming pitch-class 11.
type BNotation int

const (
	// BNotationB is the Anglo convention: "B" names pitch-class 11, "Bb" names 10.
	BNotationB BNotation = iota
	// BNotationH is the European convention: "H" names pitch-class 11, "B" names 10.
	BNotationH
)

func (n BNotation) String() string {
	if n == BNotationH {
		return "H"
	}
	return "B"
}

// ParseBNotation parses the metadata value for the "BNotation" keyword.
func ParseBNotation(s string) (BNotation, error) {
	switch s {
	case "B", "b":
		return BNotationB, nil
	case "H", "h":
		return BNotationH, nil
	default:
		return 0, fmt.Errorf("chords: invalid b-notation %q", s)
	}
}

// SemitoneNotation selects whether raised pitch classes render as sharps or
// flats.
type SemitoneNotation int

const (
	Sharp SemitoneNotation = iota
	Flat
)

// NoteFormatOptions parameterises Note.Format.
type NoteFormatOptions struct {
	BNotation        BNotation
	SemitoneNotation SemitoneNotation
	// UseUnicodeSymbols renders accidentals as '♯'/'♭' instead of '#'/'b'.
	UseUnicodeSymbols bool
}

// Transpose returns the note n half-steps away from the receiver, wrapping
// modulo 12 in both directions.
func (n Note) Transpose(half int) Note {
	return Note((((int(n) + half) % 12) + 12) % 12)
}

// Format renders n as a letter name according to opts.
func (n Note) Format(opts NoteFormatOptions) string {
	if n == B {
		if opts.BNotation == BNotationH {
			return "H"
		}
		return "B"
	}
	if n == ASharp {
		// Pitch-class 10 is always spelled A#/Bb regardless of BNotation.
		if opts.SemitoneNotation == Flat {
			return accidental("B", "b", opts.UseUnicodeSymbols)
		}
		return accidental("A", "#", opts.UseUnicodeSymbols)
	}
	if !raised[n] {
		return noteNames[n]
	}
	if opts.SemitoneNotation == Flat {
		flatRoot := noteNames[(n+1)%12]
		return accidental(flatRoot, "b", opts.UseUnicodeSymbols)
	}
	sharpRoot := noteNames[(n+11)%12][:1]
	return accidental(sharpRoot, "#", opts.UseUnicodeSymbols)
}

func accidental(letter, ascii string, unicode bool) string {
	if !unicode {
		return letter + ascii
	}
	if ascii == "#" {
		return letter + "♯"
	}
	return letter + "♭"
}

// String renders n using the canonical Sharp/Anglo-B convention.
func (n Note) String() string {
	return n.Format(NoteFormatOptions{BNotation: BNotationB, SemitoneNotation: Sharp})
}
