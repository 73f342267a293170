package tokenizer

import "github.com/chordrgo/chordr/internal/metadata"

// TokenKind discriminates the Token tagged union.
type TokenKind int

const (
	TokLiteral TokenKind = iota
	TokChord
	TokHeadline
	TokQuote
	TokNewline
	TokMetadata
)

// HeadlineModifier marks a headline as a chorus or bridge section.
type HeadlineModifier int

const (
	ModifierNone HeadlineModifier = iota
	ModifierChorus
	ModifierBridge
)

// Token is one lexical unit of a chorddown document, as emitted by the FSM.
type Token struct {
	Kind TokenKind

	// TokLiteral
	Literal string

	// TokChord: the raw bracketed chord text, e.g. "D" or "C/G".
	Chord string

	// TokHeadline and TokQuote
	Level    int // TokHeadline only
	Text     string
	Modifier HeadlineModifier // TokHeadline only

	// TokMetadata
	Metadata metadata.RawMetadata
}

func (t Token) String() string {
	switch t.Kind {
	case TokLiteral:
		return "Literal(" + t.Literal + ")"
	case TokChord:
		return "Chord(" + t.Chord + ")"
	case TokHeadline:
		return "Headline(" + t.Text + ")"
	case TokQuote:
		return "Quote(" + t.Text + ")"
	case TokNewline:
		return "Newline"
	case TokMetadata:
		return "Metadata(" + t.Metadata.Keyword.Label() + ")"
	default:
		return "?"
	}
}
