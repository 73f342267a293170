// Package parser lifts a chorddown token stream into a document.Node tree
// and a metadata.Metadata record, in two passes over the same tokens.
package parser

import (
	"strings"

	"github.com/chordrgo/chordr/internal/chords"
	"github.com/chordrgo/chordr/internal/document"
	"github.com/chordrgo/chordr/internal/metadata"
	"github.com/chordrgo/chordr/internal/tokenizer"
)

// Result is the parser's output: the document tree plus the metadata
// record accumulated while walking it.
type Result struct {
	Node     *document.Node
	Metadata metadata.Metadata
}

// Parse runs both parser passes over tokens and returns the combined
// result. Parse sees only the token stream: tokenizer faults are
// returned separately by tokenizer.Tokenize and do not reach it.
func Parse(tokens []tokenizer.Token) (*Result, error) {
	m, err := extractMetadata(tokens)
	if err != nil {
		return nil, err
	}
	root, err := buildTree(tokens, m.EffectiveBNotation())
	if err != nil {
		return nil, err
	}
	return &Result{Node: root, Metadata: m}, nil
}

// extractMetadata is pass 1: it folds every Metadata token, and every
// chord token's root letter, into a metadata.Builder.
func extractMetadata(tokens []tokenizer.Token) (metadata.Metadata, error) {
	b := metadata.NewBuilder()
	for _, tok := range tokens {
		switch tok.Kind {
		case tokenizer.TokMetadata:
			if err := b.Apply(tok.Metadata); err != nil {
				return metadata.Metadata{}, err
			}
		case tokenizer.TokChord:
			b.NoteChordUsage(chordUsesH(tok.Chord))
		}
	}
	return b.Build()
}

// chordUsesH reports whether a raw bracketed chord token's root letter is
// "H" — the European-notation signal the builder uses to infer BNotation
// in the absence of an explicit declaration.
func chordUsesH(raw string) bool {
	primary := raw
	if idx := strings.IndexByte(raw, '/'); idx >= 0 {
		primary = raw[:idx]
	}
	primary = strings.TrimSpace(primary)
	if primary == "" {
		return false
	}
	return primary[0] == 'h' || primary[0] == 'H'
}

// builder is the streaming pass-2 tree constructor: a stack of open
// sections, each accumulating children until a headline at or below its
// level closes it.
type builder struct {
	// stack[0] is always the implicit document-level frame.
	stack []*frame
	bNotation chords.BNotation
}

type frame struct {
	level    int // 0 for the document root, which never closes
	head     *document.Node
	sectType document.SectionType
	children []*document.Node
}

func buildTree(tokens []tokenizer.Token, bNotation chords.BNotation) (*document.Node, error) {
	tokens = cleanupNewlines(tokens)

	b := &builder{stack: []*frame{{level: 0}}, bNotation: bNotation}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.Kind {
		case tokenizer.TokHeadline:
			if err := b.openSection(tok); err != nil {
				return nil, err
			}
		case tokenizer.TokQuote:
			if err := b.openOrAppendQuote(tok); err != nil {
				return nil, err
			}
		case tokenizer.TokChord:
			next, hasNext := peek(tokens, i+1)
			if hasNext && next.Kind == tokenizer.TokLiteral {
				i++
				lastInLine := isLastPairInLine(tokens, i+1)
				c, err := chords.ParseChords(tok.Chord, b.bNotation)
				if err != nil {
					return nil, err
				}
				b.append(document.NewChordTextPair(c, next, lastInLine))
			} else {
				c, err := chords.ParseChords(tok.Chord, b.bNotation)
				if err != nil {
					return nil, err
				}
				b.append(document.NewChordStandalone(c))
			}
		case tokenizer.TokLiteral:
			n, err := document.NewText(tok)
			if err != nil {
				return nil, err
			}
			b.append(n)
		case tokenizer.TokMetadata:
			b.append(document.NewMeta(tok.Metadata))
		case tokenizer.TokNewline:
			b.append(document.Newline())
		}
	}

	for len(b.stack) > 1 {
		if err := b.closeTop(); err != nil {
			return nil, err
		}
	}
	return document.NewDocument(b.stack[0].children), nil
}

func peek(tokens []tokenizer.Token, i int) (tokenizer.Token, bool) {
	if i < 0 || i >= len(tokens) {
		return tokenizer.Token{}, false
	}
	return tokens[i], true
}

// isLastPairInLine implements the chosen per-line-terminal-only reading
// of the last_in_line open question: true iff the next token (after the
// chord's paired text, at index `after`) is a newline, a headline
// (section boundary), a quote, or end-of-stream.
func isLastPairInLine(tokens []tokenizer.Token, after int) bool {
	next, ok := peek(tokens, after)
	if !ok {
		return true
	}
	switch next.Kind {
	case tokenizer.TokNewline, tokenizer.TokHeadline, tokenizer.TokQuote:
		return true
	default:
		return false
	}
}

func (b *builder) top() *frame { return b.stack[len(b.stack)-1] }

func (b *builder) append(n *document.Node) {
	top := b.top()
	top.children = append(top.children, n)
}

// openSection closes every open section whose level is >= the incoming
// headline's level, then pushes a new frame for it.
func (b *builder) openSection(tok tokenizer.Token) error {
	for len(b.stack) > 1 && b.top().level >= tok.Level {
		if err := b.closeTop(); err != nil {
			return err
		}
	}
	head, err := document.NewHeadline(tok)
	if err != nil {
		return err
	}
	sectType := sectionTypeFor(tok)
	b.stack = append(b.stack, &frame{level: tok.Level, head: head, sectType: sectType})
	return nil
}

func sectionTypeFor(tok tokenizer.Token) document.SectionType {
	switch tok.Modifier {
	case tokenizer.ModifierChorus:
		return document.SectionChorus
	case tokenizer.ModifierBridge:
		return document.SectionBridge
	}
	if tok.Level >= 2 {
		return document.SectionVerse
	}
	return document.SectionUnknown
}

// openOrAppendQuote handles a Quote token. Per §4.3 rule 3, a standalone
// quote becomes its own Reference section, a sibling of the section it
// interrupts: the currently open section (if any) is closed, and a new
// Reference section is opened at the same nesting level, headed by the
// quote. A quote at the document root (no section open yet) becomes a
// top-level Reference section.
func (b *builder) openOrAppendQuote(tok tokenizer.Token) error {
	top := b.top()
	level := top.level
	if level == 0 {
		level = 1
	} else if err := b.closeTop(); err != nil {
		return err
	}
	head, err := document.NewQuote(tok)
	if err != nil {
		return err
	}
	b.stack = append(b.stack, &frame{level: level, head: head, sectType: document.SectionReference})
	return nil
}

// closeTop pops the top frame, turning it into a Section node appended
// to its parent. The implicit document-root frame (level 0) never
// closes via this path.
func (b *builder) closeTop() error {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	sect, err := document.NewSection(top.head, top.sectType, cleanupNodeNewlines(top.children))
	if err != nil {
		return err
	}
	b.append(sect)
	return nil
}

// cleanupNewlines drops leading Newline tokens and collapses consecutive
// Newline tokens to one, per spec invariant 7.
func cleanupNewlines(tokens []tokenizer.Token) []tokenizer.Token {
	out := make([]tokenizer.Token, 0, len(tokens))
	prevWasNewline := true // treat document start as "just saw a newline"
	for _, tok := range tokens {
		if tok.Kind == tokenizer.TokNewline {
			if prevWasNewline {
				continue
			}
			prevWasNewline = true
			out = append(out, tok)
			continue
		}
		prevWasNewline = false
		out = append(out, tok)
	}
	return out
}

// cleanupNodeNewlines re-applies the same collapsing rule to a section's
// already-built children, since section boundaries can reintroduce a
// leading or doubled Newline node relative to the section's own start.
func cleanupNodeNewlines(nodes []*document.Node) []*document.Node {
	out := make([]*document.Node, 0, len(nodes))
	prevWasNewline := true
	for _, n := range nodes {
		if n.Kind == document.NodeNewline {
			if prevWasNewline {
				continue
			}
			prevWasNewline = true
			out = append(out, n)
			continue
		}
		prevWasNewline = false
		out = append(out, n)
	}
	for len(out) > 0 && out[len(out)-1].Kind == document.NodeNewline {
		out = out[:len(out)-1]
	}
	return out
}
