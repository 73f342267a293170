package tokenizer

import (
	"strings"

	"github.com/chordrgo/chordr/internal/metadata"
)

// mode is the FSM's current lexical context.
type mode int

const (
	modeBof mode = iota
	modeNewline
	modeHeader
	modeChord
	modeQuote
	modeLiteral
	modeEOF
)

// fsm groups the lexeme stream into tokens per the mode table in
// spec.md §4.2.
type fsm struct {
	mode mode
	buf  strings.Builder

	level       int
	modifier    HeadlineModifier
	modifierSet bool

	tokens []Token
	errors []*Error
}

// Tokenize runs the lexeme-to-token FSM over lexemes and returns the
// resulting token stream alongside any structural faults encountered.
// Faults never abort tokenization.
func Tokenize(lexemes []Lexeme) ([]Token, []*Error) {
	f := &fsm{mode: modeBof}
	for i, lex := range lexemes {
		f.step(i, lex)
		if f.mode == modeEOF {
			break
		}
	}
	return f.tokens, f.errors
}

func (f *fsm) step(pos int, lex Lexeme) {
	// Every mode treats a raw Newline the same way: finish whatever token
	// is being accumulated (flagging "unclosed chord" if still mid-Chord),
	// emit it, emit Token::Newline, and return to line-start context.
	if lex.Kind == LexNewline {
		f.finishLine(pos)
		return
	}

	switch f.mode {
	case modeBof, modeNewline:
		f.stepLineStart(pos, lex)
	case modeChord:
		f.stepChord(pos, lex)
	case modeHeader:
		f.stepHeader(pos, lex)
	case modeQuote:
		f.stepQuote(pos, lex)
	case modeLiteral:
		f.stepLiteral(pos, lex)
	}
}

func (f *fsm) emit(t Token) {
	f.tokens = append(f.tokens, t)
}

func (f *fsm) fail(pos int, kind ErrorKind) {
	f.errors = append(f.errors, &Error{Kind: kind, LexemePos: pos})
}

// finishLine closes whatever token the current mode was accumulating and
// emits a Token::Newline, then resets to line-start context.
func (f *fsm) finishLine(pos int) {
	switch f.mode {
	case modeChord:
		f.fail(pos, ErrUnclosedChord)
		if f.buf.Len() > 0 {
			f.emit(Token{Kind: TokLiteral, Literal: f.buf.String()})
		}
	case modeHeader:
		f.emit(Token{Kind: TokHeadline, Level: f.level, Text: trimStart(f.buf.String()), Modifier: f.modifier})
	case modeQuote:
		f.emit(Token{Kind: TokQuote, Text: trimStart(f.buf.String())})
	case modeLiteral:
		f.emitLiteralOrMetadata()
	}
	f.buf.Reset()
	f.emit(Token{Kind: TokNewline})
	f.mode = modeNewline
}

func (f *fsm) emitLiteralOrMetadata() {
	text := f.buf.String()
	if raw, ok := metadata.ParseRawMetadataLine(text); ok {
		f.emit(Token{Kind: TokMetadata, Metadata: raw})
		return
	}
	if text != "" {
		f.emit(Token{Kind: TokLiteral, Literal: text})
	}
}

func (f *fsm) stepLineStart(pos int, lex Lexeme) {
	switch lex.Kind {
	case LexHeaderStart:
		f.mode = modeHeader
		f.level = 1
		f.modifier = ModifierNone
		f.modifierSet = false
	case LexChordStart:
		f.mode = modeChord
	case LexChordEnd:
		f.fail(pos, ErrUnexpectedChordEnd)
		f.mode = modeLiteral
	case LexQuoteStart:
		f.mode = modeQuote
	case LexEOF:
		f.mode = modeEOF
	default:
		// Colon, ChorusMark, BridgeMark, Literal: append, → Literal.
		f.mode = modeLiteral
		f.buf.WriteString(lexemeText(lex))
	}
}

func (f *fsm) stepChord(pos int, lex Lexeme) {
	switch lex.Kind {
	case LexHeaderStart:
		f.buf.WriteByte('#') // sharp accidental
	case LexChordStart:
		f.fail(pos, ErrNestedChord)
	case LexChordEnd:
		f.emit(Token{Kind: TokChord, Chord: f.buf.String()})
		f.buf.Reset()
		f.mode = modeLiteral
	case LexQuoteStart, LexColon, LexChorusMark, LexBridgeMark:
		f.fail(pos, ErrInvalidCharInChord)
	case LexLiteral:
		f.buf.WriteString(lex.Text)
	case LexEOF:
		f.fail(pos, ErrUnexpectedEOF)
		if f.buf.Len() > 0 {
			f.emit(Token{Kind: TokLiteral, Literal: f.buf.String()})
		}
		f.buf.Reset()
		f.mode = modeEOF
	}
}

func (f *fsm) stepHeader(pos int, lex Lexeme) {
	switch lex.Kind {
	case LexHeaderStart:
		f.level++
	case LexChorusMark:
		if f.buf.Len() == 0 && !f.modifierSet {
			f.modifier = ModifierChorus
			f.modifierSet = true
		} else {
			f.buf.WriteString("!")
		}
	case LexBridgeMark:
		if f.buf.Len() == 0 && !f.modifierSet {
			f.modifier = ModifierBridge
			f.modifierSet = true
		} else {
			f.buf.WriteString("-")
		}
	case LexEOF:
		f.emit(Token{Kind: TokHeadline, Level: f.level, Text: trimStart(f.buf.String()), Modifier: f.modifier})
		f.buf.Reset()
		f.mode = modeEOF
	default:
		f.buf.WriteString(lexemeText(lex))
	}
}

func (f *fsm) stepQuote(pos int, lex Lexeme) {
	switch lex.Kind {
	case LexHeaderStart:
		f.emit(Token{Kind: TokQuote, Text: trimStart(f.buf.String())})
		f.buf.Reset()
		f.emit(Token{Kind: TokNewline})
		f.mode = modeNewline
	case LexEOF:
		f.emit(Token{Kind: TokQuote, Text: trimStart(f.buf.String())})
		f.buf.Reset()
		f.mode = modeEOF
	default:
		f.buf.WriteString(lexemeText(lex))
	}
}

func (f *fsm) stepLiteral(pos int, lex Lexeme) {
	switch lex.Kind {
	case LexHeaderStart:
		f.fail(pos, ErrUnexpectedHeaderStartMidLiteral)
		f.emitLiteralOrMetadata()
		f.buf.Reset()
		f.emit(Token{Kind: TokNewline})
		f.mode = modeNewline
	case LexChordStart:
		f.emitLiteralOrMetadata()
		f.buf.Reset()
		f.mode = modeChord
	case LexChordEnd:
		f.fail(pos, ErrUnexpectedChordEnd)
	case LexEOF:
		f.fail(pos, ErrUnexpectedEOF)
		f.emitLiteralOrMetadata()
		f.buf.Reset()
		f.mode = modeEOF
	default:
		f.buf.WriteString(lexemeText(lex))
	}
}

// lexemeText returns the literal text a lexeme contributes when a mode
// appends it verbatim (separators keep their single-character spelling;
// LexLiteral carries its own scanned text).
func lexemeText(lex Lexeme) string {
	if lex.Kind == LexLiteral {
		return lex.Text
	}
	return separatorText(lex.Kind)
}

func trimStart(s string) string {
	return strings.TrimLeft(s, " \t")
}
