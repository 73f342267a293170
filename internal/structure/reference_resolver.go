package structure

import "github.com/chordrgo/chordr/internal/document"

// identifierFor derives a SectionIdentifier from a section's head node
// (a Headline or Quote), the only two node kinds a section head may be.
func identifierFor(n *document.Node) (SectionIdentifier, error) {
	return NewSectionIdentifier(n.Token.Text)
}

// Sections returns every Section node in root, in document order,
// including nested sections.
func Sections(root *document.Node) []*document.Node {
	var out []*document.Node
	root.Walk(func(n *document.Node) {
		if n.Kind == document.NodeSection {
			out = append(out, n)
		}
	})
	return out
}

// ResolveReference locates the section that a Reference-type section
// (whose head is a quote) points to. It first looks for another section
// with the same SectionIdentifier as the reference's own head text; if
// none matches, it parses the quote text as a repeat reference (e.g.
// "2x Chorus") and looks up the identifier that yields.
func ResolveReference(reference *document.Node, sections []*document.Node) (*document.Node, bool) {
	if len(sections) == 0 {
		return nil, false
	}

	refID, err := identifierFor(reference.Head)
	if err != nil {
		return nil, false
	}
	for _, s := range sections {
		if s == reference {
			continue
		}
		id, err := identifierFor(s.Head)
		if err != nil {
			continue
		}
		if id == refID {
			return s, true
		}
	}

	info, err := DetectRepeat(reference.Head.Token.Text)
	if err != nil {
		return nil, false
	}
	for _, s := range sections {
		id, err := identifierFor(s.Head)
		if err != nil {
			continue
		}
		if id == info.Identifier {
			return s, true
		}
	}
	return nil, false
}

// ResolveReferenceWithCount behaves like ResolveReference but also
// reports the repeat count when the reference's quote text parsed as a
// repeat pattern (0 when it matched by direct identifier instead).
func ResolveReferenceWithCount(reference *document.Node, sections []*document.Node) (*document.Node, int, bool) {
	refID, err := identifierFor(reference.Head)
	if err == nil {
		for _, s := range sections {
			if s == reference {
				continue
			}
			id, err := identifierFor(s.Head)
			if err == nil && id == refID {
				return s, 0, true
			}
		}
	}

	info, err := DetectRepeat(reference.Head.Token.Text)
	if err != nil {
		return nil, 0, false
	}
	for _, s := range sections {
		id, err := identifierFor(s.Head)
		if err == nil && id == info.Identifier {
			return s, info.Count, true
		}
	}
	return nil, 0, false
}
