package chords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChordBasic(t *testing.T) {
	c, err := ParseChord("Am7", BNotationB)
	require.NoError(t, err)
	assert.Equal(t, A, c.Root)
	assert.Equal(t, "m7", c.Variant)
}

func TestParseChordSingleLetter(t *testing.T) {
	c, err := ParseChord("G", BNotationB)
	require.NoError(t, err)
	assert.Equal(t, G, c.Root)
	assert.Empty(t, c.Variant)
}

func TestParseChordEmpty(t *testing.T) {
	_, err := ParseChord("", BNotationB)
	require.ErrorIs(t, err, &ChordError{Kind: ChordErrorEmpty})
}

func TestParseChordInvalidRoot(t *testing.T) {
	_, err := ParseChord("X7", BNotationB)
	require.ErrorIs(t, err, &ChordError{Kind: ChordErrorInvalidRoot})
}

func TestParseChordBNotationAmbiguity(t *testing.T) {
	anglo, err := ParseChord("B", BNotationB)
	require.NoError(t, err)
	assert.Equal(t, B, anglo.Root)

	european, err := ParseChord("B", BNotationH)
	require.NoError(t, err)
	assert.Equal(t, ASharp, european.Root)

	h, err := ParseChord("H", BNotationH)
	require.NoError(t, err)
	assert.Equal(t, B, h.Root)
}

func TestParseChordBFlatAlwaysTen(t *testing.T) {
	for _, notation := range []BNotation{BNotationB, BNotationH} {
		c, err := ParseChord("Bb", notation)
		require.NoError(t, err)
		assert.Equal(t, ASharp, c.Root)
	}
}

func TestParseChordHSharpIsError(t *testing.T) {
	_, err := ParseChord("H#", BNotationH)
	require.Error(t, err)
}

func TestParseChordFFlatIsError(t *testing.T) {
	_, err := ParseChord("Fb", BNotationB)
	require.Error(t, err)
}

func TestParseChordUnicodeAccidentals(t *testing.T) {
	c, err := ParseChord("C♯madd2add4", BNotationB)
	require.NoError(t, err)
	assert.Equal(t, CSharp, c.Root)
	assert.Equal(t, "madd2add4", c.Variant)
}

// TestTransposePreservesVariant exercises scenario S2 from the specification.
func TestTransposePreservesVariant(t *testing.T) {
	c, err := ParseChord("C#madd2add4", BNotationB)
	require.NoError(t, err)

	transposed := c.Transpose(3)
	assert.Equal(t, E, transposed.Root)
	assert.Equal(t, "madd2add4", transposed.Variant)
}

func TestTransposeRoundTrip(t *testing.T) {
	for n := 0; n < 12; n++ {
		note := Note(n)
		for shift := -24; shift <= 24; shift++ {
			got := note.Transpose(shift).Transpose(-shift)
			assert.Equal(t, note, got)
		}
	}
}

func TestTransposeIdentityAndOctave(t *testing.T) {
	for n := 0; n < 12; n++ {
		note := Note(n)
		assert.Equal(t, note, note.Transpose(0))
		assert.Equal(t, note, note.Transpose(12))
		assert.Equal(t, note, note.Transpose(-12))
	}
}

func TestTransposeAdditive(t *testing.T) {
	for n := 0; n < 12; n++ {
		note := Note(n)
		for a := -5; a <= 5; a++ {
			for b := -5; b <= 5; b++ {
				assert.Equal(t, note.Transpose(a+b), note.Transpose(a).Transpose(b))
			}
		}
	}
}

func TestNoteFormatAccidentals(t *testing.T) {
	sharp := NoteFormatOptions{BNotation: BNotationB, SemitoneNotation: Sharp}
	flat := NoteFormatOptions{BNotation: BNotationB, SemitoneNotation: Flat}

	assert.Equal(t, "A#", ASharp.Format(sharp))
	assert.Equal(t, "Bb", ASharp.Format(flat))
	assert.Equal(t, "B", B.Format(NoteFormatOptions{BNotation: BNotationB}))
	assert.Equal(t, "H", B.Format(NoteFormatOptions{BNotation: BNotationH}))
}

// TestBNotationReinterpretation exercises scenario S3.
func TestBNotationReinterpretation(t *testing.T) {
	key, err := ParseChord("B", BNotationB)
	require.NoError(t, err)
	assert.Equal(t, B, key.Root)
	assert.Equal(t, "B", key.Format(NoteFormatOptions{BNotation: BNotationB, SemitoneNotation: Sharp}))

	reinterpreted, err := ParseChord("B", BNotationH)
	require.NoError(t, err)
	assert.Equal(t, ASharp, reinterpreted.Root)
	assert.Equal(t, "A#", reinterpreted.Format(NoteFormatOptions{BNotation: BNotationH, SemitoneNotation: Sharp}))
}

func TestParseChordsSlash(t *testing.T) {
	c, err := ParseChords("C/G", BNotationB)
	require.NoError(t, err)
	assert.Equal(t, C, c.Primary.Root)
	require.NotNil(t, c.Bass)
	assert.Equal(t, G, c.Bass.Root)
}

func TestParseChordsNoSlash(t *testing.T) {
	c, err := ParseChords("Dm", BNotationB)
	require.NoError(t, err)
	assert.Nil(t, c.Bass)
}

func TestChordsTransposeBoth(t *testing.T) {
	c, err := ParseChords("C/G", BNotationB)
	require.NoError(t, err)

	transposed := c.Transpose(2)
	assert.Equal(t, D, transposed.Primary.Root)
	assert.Equal(t, A, transposed.Bass.Root)
}

func TestChordMarshalRoundTrip(t *testing.T) {
	c, err := ParseChord("F#madd2add4", BNotationB)
	require.NoError(t, err)

	text, err := c.MarshalText()
	require.NoError(t, err)

	var roundTripped Chord
	require.NoError(t, roundTripped.UnmarshalText(text))
	assert.Equal(t, c, roundTripped)
}
