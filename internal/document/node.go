// Package document defines the parsed chorddown document tree: a strict
// tree of tagged-union Nodes produced by the parser and consumed by
// converters and the section/reference resolver.
package document

import (
	"fmt"

	"github.com/chordrgo/chordr/internal/chords"
	"github.com/chordrgo/chordr/internal/metadata"
	"github.com/chordrgo/chordr/internal/tokenizer"
)

// NodeKind discriminates the Node tagged union.
type NodeKind int

const (
	NodeDocument NodeKind = iota
	NodeSection
	NodeHeadline
	NodeQuote
	NodeChordTextPair
	NodeChordStandalone
	NodeText
	NodeMeta
	NodeNewline
)

func (k NodeKind) String() string {
	switch k {
	case NodeDocument:
		return "Document"
	case NodeSection:
		return "Section"
	case NodeHeadline:
		return "Headline"
	case NodeQuote:
		return "Quote"
	case NodeChordTextPair:
		return "ChordTextPair"
	case NodeChordStandalone:
		return "ChordStandalone"
	case NodeText:
		return "Text"
	case NodeMeta:
		return "Meta"
	case NodeNewline:
		return "Newline"
	default:
		return "?"
	}
}

// SectionType classifies a Section by its headline modifier or, for a
// quote-headed section, as a reference to another section.
type SectionType int

const (
	SectionUnknown SectionType = iota
	SectionVerse
	SectionChorus
	SectionBridge
	SectionReference
)

func (t SectionType) String() string {
	switch t {
	case SectionVerse:
		return "verse"
	case SectionChorus:
		return "chorus"
	case SectionBridge:
		return "bridge"
	case SectionReference:
		return "reference"
	default:
		return "unknown"
	}
}

// Node is the chorddown document tree's single recursive type. Which
// fields are meaningful is determined by Kind; see the per-kind
// constructors for the exhaustive mapping.
type Node struct {
	Kind NodeKind

	// NodeDocument, NodeSection
	Children []*Node

	// NodeSection
	Head        *Node
	SectionType SectionType

	// NodeHeadline, NodeQuote, NodeText: the wrapped token.
	Token tokenizer.Token

	// NodeChordTextPair, NodeChordStandalone
	Chords     chords.Chords
	Text       tokenizer.Token
	LastInLine bool

	// NodeMeta
	Meta metadata.RawMetadata
}

// Error reports a tree-shape invariant violation. Well-formed input never
// triggers this; it exists to surface parser bugs rather than user error.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return fmt.Sprintf("document: %s", e.Msg) }

func NewDocument(children []*Node) *Node {
	return &Node{Kind: NodeDocument, Children: children}
}

func NewSection(head *Node, sectionType SectionType, children []*Node) (*Node, error) {
	if head == nil {
		return nil, &Error{Msg: "section requires a non-nil head"}
	}
	if head.Kind != NodeHeadline && head.Kind != NodeQuote {
		return nil, &Error{Msg: "section head must be a Headline or Quote node"}
	}
	return &Node{Kind: NodeSection, Head: head, SectionType: sectionType, Children: children}, nil
}

func NewHeadline(tok tokenizer.Token) (*Node, error) {
	if tok.Kind != tokenizer.TokHeadline {
		return nil, &Error{Msg: "Headline node must wrap a TokHeadline token"}
	}
	return &Node{Kind: NodeHeadline, Token: tok}, nil
}

func NewQuote(tok tokenizer.Token) (*Node, error) {
	if tok.Kind != tokenizer.TokQuote {
		return nil, &Error{Msg: "Quote node must wrap a TokQuote token"}
	}
	return &Node{Kind: NodeQuote, Token: tok}, nil
}

func NewText(tok tokenizer.Token) (*Node, error) {
	if tok.Kind != tokenizer.TokLiteral {
		return nil, &Error{Msg: "Text node must wrap a TokLiteral token"}
	}
	return &Node{Kind: NodeText, Token: tok}, nil
}

func NewChordTextPair(c chords.Chords, text tokenizer.Token, lastInLine bool) *Node {
	return &Node{Kind: NodeChordTextPair, Chords: c, Text: text, LastInLine: lastInLine}
}

func NewChordStandalone(c chords.Chords) *Node {
	return &Node{Kind: NodeChordStandalone, Chords: c}
}

func NewMeta(raw metadata.RawMetadata) *Node {
	return &Node{Kind: NodeMeta, Meta: raw}
}

var newlineNode = &Node{Kind: NodeNewline}

// Newline returns the (immutable, shared) Newline node.
func Newline() *Node { return newlineNode }

// Transpose returns a deep copy of n with every Chords value transposed
// by semitones; variant suffixes are preserved verbatim.
func (n *Node) Transpose(semitones int) *Node {
	if n == nil {
		return nil
	}
	out := *n
	switch n.Kind {
	case NodeDocument, NodeSection:
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Transpose(semitones)
		}
		if n.Kind == NodeSection {
			out.Head = n.Head.Transpose(semitones)
		}
	case NodeChordTextPair, NodeChordStandalone:
		out.Chords = n.Chords.Transpose(semitones)
	}
	return &out
}

// Walk visits n and all descendants depth-first, pre-order.
func (n *Node) Walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	if n.Kind == NodeSection {
		n.Head.Walk(visit)
	}
	for _, c := range n.Children {
		c.Walk(visit)
	}
}
