package converter

import (
	"fmt"
	"strings"

	"github.com/chordrgo/chordr/internal/document"
	"github.com/chordrgo/chordr/internal/metadata"
	"github.com/chordrgo/chordr/internal/tokenizer"
)

// ChorddownConverter round-trips a document tree back into chorddown
// source: a reparse of its output yields an equal Node tree (modulo
// whitespace). A Title in the metadata is written as a level-1
// headline, which a reparse reads as a section rather than as Title
// metadata.
type ChorddownConverter struct{}

func (ChorddownConverter) Convert(node *document.Node, meta metadata.Metadata, formatting Formatting) (string, error) {
	var b strings.Builder

	if meta.Title != "" {
		fmt.Fprintf(&b, "# %s\n", meta.Title)
	}
	for _, e := range meta.Iterate() {
		if e.Keyword == metadata.Title { // already emitted as the level-1 headline
			continue
		}
		rendered, ok := renderMetadataValue(e.Value)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", e.Keyword.Label(), rendered)
	}
	b.WriteString("\n")

	if err := renderChorddown(&b, node, formatting); err != nil {
		return "", err
	}
	return collapseBlankLines(b.String()), nil
}

func renderChorddown(b *strings.Builder, n *document.Node, f Formatting) error {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case document.NodeDocument:
		for _, c := range n.Children {
			if err := renderChorddown(b, c, f); err != nil {
				return err
			}
		}
	case document.NodeSection:
		marker := strings.Repeat("#", headlineLevel(n))
		mod := ""
		switch n.Head.Token.Modifier {
		case tokenizer.ModifierChorus:
			mod = "!"
		case tokenizer.ModifierBridge:
			mod = "-"
		}
		if n.Head.Kind == document.NodeHeadline {
			fmt.Fprintf(b, "%s%s %s\n", marker, mod, n.Head.Token.Text)
		} else {
			fmt.Fprintf(b, "> %s\n", n.Head.Token.Text)
		}
		for _, c := range n.Children {
			if err := renderChorddown(b, c, f); err != nil {
				return err
			}
		}
		if !strings.HasSuffix(b.String(), "\n") {
			b.WriteString("\n")
		}
	case document.NodeQuote:
		fmt.Fprintf(b, "> %s\n", n.Token.Text)
	case document.NodeChordTextPair:
		fmt.Fprintf(b, "[%s]%s", n.Chords.Format(f.noteOptions()), n.Text.Literal)
	case document.NodeChordStandalone:
		fmt.Fprintf(b, "[%s]", n.Chords.Format(f.noteOptions()))
	case document.NodeText:
		b.WriteString(n.Token.Literal)
	case document.NodeNewline:
		b.WriteString("\n")
	}
	return nil
}

func headlineLevel(section *document.Node) int {
	if section.Head.Kind == document.NodeHeadline {
		return section.Head.Token.Level
	}
	return 1
}
