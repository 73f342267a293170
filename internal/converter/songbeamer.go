package converter

import (
	"fmt"
	"strings"

	"github.com/chordrgo/chordr/internal/document"
	"github.com/chordrgo/chordr/internal/metadata"
)

// SongBeamerConverter emits a line-oriented presentation format: a fixed
// header, selected metadata fields, then "---"-separated slides (one per
// top-level node) containing lyric text only. Nested sections do not get
// slides of their own: their text is part of the enclosing top-level
// section's slide.
type SongBeamerConverter struct{}

// songBeamerHeader is compatibility-critical: SongBeamer import rejects
// files whose header deviates from this exact text.
const songBeamerHeader = "#LangCount=1\n#Editor=Chordr\n#Version=3"

func (SongBeamerConverter) Convert(node *document.Node, meta metadata.Metadata, _ Formatting) (string, error) {
	var b strings.Builder
	b.WriteString(songBeamerHeader)
	b.WriteString("\n")

	if meta.OriginalTitle != "" {
		fmt.Fprintf(&b, "#OTitle=%s\n", meta.OriginalTitle)
	}
	if meta.Title != "" {
		fmt.Fprintf(&b, "#Melody=%s\n", meta.Title)
	}
	if meta.Artist != "" {
		fmt.Fprintf(&b, "#Author=%s\n", meta.Artist)
	}
	if meta.Copyright != "" {
		fmt.Fprintf(&b, "#(c)=%s\n", meta.Copyright)
	}
	// Subtitle, Album, Year, Key and the remaining metadata fields are
	// intentionally not emitted: the format has no slot for them in the
	// fields currently implemented.

	var slides []string
	for _, section := range node.Children {
		slide := renderSlide(section)
		if strings.TrimSpace(slide) != "" {
			slides = append(slides, slide)
		}
	}

	b.WriteString("\n")
	b.WriteString(strings.Join(slides, "\n---\n"))
	return collapseBlankLines(b.String()), nil
}

// renderSlide walks one top-level node for lyric text only: chords are
// stripped, headlines and quotes dropped.
func renderSlide(n *document.Node) string {
	var b strings.Builder
	renderSlideInto(&b, n)
	return collapseBlankLines(strings.TrimSpace(b.String()))
}

func renderSlideInto(b *strings.Builder, n *document.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case document.NodeSection:
		for _, c := range n.Children {
			renderSlideInto(b, c)
		}
	case document.NodeChordTextPair:
		b.WriteString(n.Text.Literal)
	case document.NodeText:
		b.WriteString(n.Token.Literal)
	case document.NodeNewline:
		b.WriteString("\n")
	}
}
