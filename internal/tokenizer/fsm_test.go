package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, input string) ([]Token, []*Error) {
	t.Helper()
	return Tokenize(Scan(input))
}

// TestTokenizeBasicLine exercises scenario S1: a headline followed by a
// chord/lyric line.
func TestTokenizeBasicLine(t *testing.T) {
	toks, errs := tokenize(t, "# Verse 1\n[D]Swing l[G]ow, sweet ch[D]ariot\n")
	require.Empty(t, errs)

	require.GreaterOrEqual(t, len(toks), 6)
	assert.Equal(t, TokHeadline, toks[0].Kind)
	assert.Equal(t, 1, toks[0].Level)
	assert.Equal(t, "Verse 1", toks[0].Text)
	assert.Equal(t, TokNewline, toks[1].Kind)

	assert.Equal(t, TokChord, toks[2].Kind)
	assert.Equal(t, "D", toks[2].Chord)
	assert.Equal(t, TokLiteral, toks[3].Kind)
	assert.Equal(t, "Swing l", toks[3].Literal)
	assert.Equal(t, TokChord, toks[4].Kind)
	assert.Equal(t, "G", toks[4].Chord)
}

func TestTokenizeChorusModifier(t *testing.T) {
	toks, errs := tokenize(t, "#! Chorus\ntext\n")
	require.Empty(t, errs)
	require.NotEmpty(t, toks)
	assert.Equal(t, TokHeadline, toks[0].Kind)
	assert.Equal(t, ModifierChorus, toks[0].Modifier)
	assert.Equal(t, "Chorus", toks[0].Text)
}

func TestTokenizeBridgeModifier(t *testing.T) {
	toks, _ := tokenize(t, "#- Bridge\n")
	assert.Equal(t, ModifierBridge, toks[0].Modifier)
	assert.Equal(t, "Bridge", toks[0].Text)
}

// TestTokenizeQuoteSingleLine exercises scenario S4: a standalone quote
// line must close at the newline, not swallow the rest of the document.
func TestTokenizeQuoteSingleLine(t *testing.T) {
	toks, errs := tokenize(t, "> 2x Chorus\n# Bridge\n")
	require.Empty(t, errs)
	require.GreaterOrEqual(t, len(toks), 3)
	assert.Equal(t, TokQuote, toks[0].Kind)
	assert.Equal(t, "2x Chorus", toks[0].Text)
	assert.Equal(t, TokNewline, toks[1].Kind)
	assert.Equal(t, TokHeadline, toks[2].Kind)
	assert.Equal(t, "Bridge", toks[2].Text)
}

func TestTokenizeMetadataLine(t *testing.T) {
	toks, errs := tokenize(t, "Key: Bb\n")
	require.Empty(t, errs)
	require.NotEmpty(t, toks)
	assert.Equal(t, TokMetadata, toks[0].Kind)
	assert.Equal(t, "Bb", toks[0].Metadata.Value)
}

// TestTokenizeUnclosedChord covers invariant 8: every ChordStart must be
// matched by exactly one ChordEnd, else a tokenizer error is recorded.
func TestTokenizeUnclosedChord(t *testing.T) {
	_, errs := tokenize(t, "[D unresolved\n")
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnclosedChord, errs[0].Kind)
}

func TestTokenizeNestedChordIsError(t *testing.T) {
	_, errs := tokenize(t, "[D[G]]\n")
	require.NotEmpty(t, errs)
	assert.Equal(t, ErrNestedChord, errs[0].Kind)
}

func TestTokenizeUnexpectedChordEnd(t *testing.T) {
	_, errs := tokenize(t, "text]more\n")
	require.NotEmpty(t, errs)
	assert.Equal(t, ErrUnexpectedChordEnd, errs[0].Kind)
}

func TestTokenizeHeaderStartMidLiteralIsError(t *testing.T) {
	_, errs := tokenize(t, "some text # oops\n")
	require.NotEmpty(t, errs)
	assert.Equal(t, ErrUnexpectedHeaderStartMidLiteral, errs[0].Kind)
}

func TestTokenizeEOFWithoutTrailingNewline(t *testing.T) {
	toks, errs := tokenize(t, "plain text")
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnexpectedEOF, errs[0].Kind)
	require.NotEmpty(t, toks)
	last := toks[len(toks)-1]
	assert.Equal(t, TokLiteral, last.Kind)
	assert.Equal(t, "plain text", last.Literal)
}

func TestTokenizeUnclosedChordAtEOF(t *testing.T) {
	_, errs := tokenize(t, "[D")
	require.NotEmpty(t, errs)
	assert.Equal(t, ErrUnexpectedEOF, errs[0].Kind)
}
