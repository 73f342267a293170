package converter

import (
	"html"
	"strconv"
	"strings"

	"github.com/chordrgo/chordr/internal/document"
	"github.com/chordrgo/chordr/internal/metadata"
	"github.com/chordrgo/chordr/internal/tokenizer"
)

// HTMLConverter emits semantic HTML: sections become <section> elements
// classed by type, chord/text pairs become adjacent chord/text spans.
type HTMLConverter struct{}

func (HTMLConverter) Convert(node *document.Node, _ metadata.Metadata, formatting Formatting) (string, error) {
	var b strings.Builder
	if err := renderHTML(&b, node, formatting); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderHTML(b *strings.Builder, n *document.Node, f Formatting) error {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case document.NodeDocument:
		for _, c := range n.Children {
			if err := renderHTML(b, c, f); err != nil {
				return err
			}
		}
	case document.NodeSection:
		b.WriteString(`<section class="chordr-section -`)
		b.WriteString(n.SectionType.String())
		b.WriteString(`">`)
		if err := renderHTML(b, n.Head, f); err != nil {
			return err
		}
		for _, c := range n.Children {
			if err := renderHTML(b, c, f); err != nil {
				return err
			}
		}
		b.WriteString(`</section>`)
	case document.NodeHeadline:
		if n.Token.Level < 1 {
			return &Error{Msg: "Headline node has invalid level"}
		}
		level := strconv.Itoa(n.Token.Level)
		class := headlineClass(n.Token.Modifier)
		b.WriteString(`<h`)
		b.WriteString(level)
		if class != "" {
			b.WriteString(` class="`)
			b.WriteString(class)
			b.WriteString(`"`)
		}
		b.WriteString(`>`)
		b.WriteString(html.EscapeString(n.Token.Text))
		b.WriteString(`</h`)
		b.WriteString(level)
		b.WriteString(`>`)
	case document.NodeQuote:
		b.WriteString(`<blockquote>`)
		b.WriteString(html.EscapeString(n.Token.Text))
		b.WriteString(`</blockquote>`)
	case document.NodeChordTextPair:
		class := "chord-text-pair"
		if n.LastInLine {
			class += " -last-in-line"
		}
		b.WriteString(`<span class="`)
		b.WriteString(class)
		b.WriteString(`"><span class="chord">`)
		b.WriteString(html.EscapeString(n.Chords.Format(f.noteOptions())))
		b.WriteString(`</span><span class="text">`)
		b.WriteString(html.EscapeString(n.Text.Literal))
		b.WriteString(`</span></span>`)
	case document.NodeChordStandalone:
		b.WriteString(`<span class="chord-standalone">`)
		b.WriteString(html.EscapeString(n.Chords.Format(f.noteOptions())))
		b.WriteString(`</span>`)
	case document.NodeText:
		b.WriteString(html.EscapeString(n.Token.Literal))
	case document.NodeMeta:
		// Suppressed: metadata is rendered separately by the caller.
	case document.NodeNewline:
		b.WriteString("<br/>\n")
	}
	return nil
}

func headlineClass(mod tokenizer.HeadlineModifier) string {
	switch mod {
	case tokenizer.ModifierChorus:
		return "-chorus"
	case tokenizer.ModifierBridge:
		return "-bridge"
	default:
		return ""
	}
}
