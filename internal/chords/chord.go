package chords

import (
	"strings"
)

// Chord is a root pitch class plus an opaque variant suffix, e.g. Am7 is
// Chord{Root: A, Variant: "m7"}.
type Chord struct {
	Root    Note
	Variant string // "" means no variant
}

// HasVariant reports whether c carries a variant suffix.
func (c Chord) HasVariant() bool {
	return c.Variant != ""
}

// ParseChord parses a single chord token such as "C", "F#m7", "Bb", "H",
// or "madd2add4"-suffixed roots. b resolves the ambiguity of a bare "B".
func ParseChord(s string, b BNotation) (Chord, error) {
	if s == "" {
		return Chord{}, &ChordError{Kind: ChordErrorEmpty}
	}

	runes := []rune(s)
	letter := runes[0]
	upper := toUpperASCII(letter)
	if !isValidRootLetter(upper) {
		return Chord{}, &ChordError{Kind: ChordErrorInvalidRoot, Rune: letter, Input: s}
	}

	rest := runes[1:]
	accidental := 0
	consumed := 0
	if len(rest) > 0 {
		switch rest[0] {
		case '#', '♯':
			accidental = 1
			consumed = 1
		case 'b', '♭':
			accidental = -1
			consumed = 1
		}
	}

	root, err := rootPitch(byte(upper), accidental, b)
	if err != nil {
		return Chord{}, err
	}

	variant := strings.TrimSpace(string(rest[consumed:]))
	return Chord{Root: root, Variant: variant}, nil
}

func toUpperASCII(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func isValidRootLetter(upper rune) bool {
	switch upper {
	case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H':
		return true
	default:
		return false
	}
}

// rootPitch resolves a root letter plus accidental (-1 flat, 0 none, +1
// sharp) to a pitch class, honoring the B/H and Bb special cases from
// the chorddown grammar.
func rootPitch(upper byte, accidental int, b BNotation) (Note, error) {
	if upper == 'H' && accidental == 1 {
		return 0, &ChordError{Kind: ChordErrorUnexpectedAccidental, Input: "H#"}
	}
	if upper == 'F' && accidental == -1 {
		return 0, &ChordError{Kind: ChordErrorUnexpectedAccidental, Input: "Fb"}
	}

	var base int
	switch upper {
	case 'C':
		base = int(C)
	case 'D':
		base = int(D)
	case 'E':
		base = int(E)
	case 'F':
		base = int(F)
	case 'G':
		base = int(G)
	case 'A':
		base = int(A)
	case 'H':
		base = int(B)
	case 'B':
		if accidental == -1 {
			// Bb/B♭ always denotes pitch-class 10, regardless of notation.
			return ASharp, nil
		}
		if b == BNotationH {
			base = int(ASharp)
		} else {
			base = int(B)
		}
	}

	return Note(((base+accidental)%12 + 12) % 12), nil
}

// Transpose shifts the root by half half-steps, preserving the variant
// suffix verbatim.
func (c Chord) Transpose(half int) Chord {
	return Chord{Root: c.Root.Transpose(half), Variant: c.Variant}
}

// Format renders c using opts, followed by its (unescaped) variant suffix.
func (c Chord) Format(opts NoteFormatOptions) string {
	if c.Variant == "" {
		return c.Root.Format(opts)
	}
	return c.Root.Format(opts) + c.Variant
}

// String renders c using the canonical Sharp/Anglo-B convention.
func (c Chord) String() string {
	return c.Format(NoteFormatOptions{BNotation: BNotationB, SemitoneNotation: Sharp})
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (c Chord) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the canonical
// Anglo-B convention.
func (c *Chord) UnmarshalText(text []byte) error {
	parsed, err := ParseChord(string(text), BNotationB)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
