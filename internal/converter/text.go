package converter

import (
	"fmt"
	"strings"

	"github.com/chordrgo/chordr/internal/document"
	"github.com/chordrgo/chordr/internal/metadata"
)

// TextConverter emits lyrics only, chords dropped entirely — plain-text
// "karaoke" output. A leading metadata block ("Key: Value", one per
// line) precedes the lyrics.
type TextConverter struct{}

func (TextConverter) Convert(node *document.Node, meta metadata.Metadata, _ Formatting) (string, error) {
	var b strings.Builder
	for _, e := range meta.Iterate() {
		rendered, ok := renderMetadataValue(e.Value)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", e.Keyword.Label(), rendered)
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	var body strings.Builder
	renderText(&body, node)
	b.WriteString(collapseBlankLines(body.String()))
	return b.String(), nil
}

// renderMetadataValue formats a metadata.Value for Keyword: Value lines,
// shared by the Text and Chorddown converters.
func renderMetadataValue(v metadata.Value) (string, bool) {
	switch v.Kind {
	case metadata.ValueString:
		return v.String, true
	case metadata.ValueChord:
		return v.Chord.String(), true
	case metadata.ValueBNotation:
		return v.BNotation.String(), true
	default:
		return "", false
	}
}

func renderText(b *strings.Builder, n *document.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case document.NodeDocument, document.NodeSection:
		for _, c := range n.Children {
			renderText(b, c)
		}
	case document.NodeChordTextPair:
		b.WriteString(n.Text.Literal)
	case document.NodeText:
		b.WriteString(n.Token.Literal)
	case document.NodeNewline:
		b.WriteString("\n")
	}
}

// collapseBlankLines collapses runs of two or more blank lines to one.
func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
