package metadata

import "strings"

// RawMetadata is a single recognised "Keyword: value" pair as found in the
// token stream, before typed interpretation (Chord/BNotation parsing).
type RawMetadata struct {
	Keyword Keyword
	Value   string
}

// ParseRawMetadataLine attempts to parse s (the trimmed contents of a
// literal buffer) as a metadata line. It returns ok=false if s contains no
// colon or the portion before the colon is not a recognised keyword.
func ParseRawMetadataLine(s string) (RawMetadata, bool) {
	idx := strings.Index(s, ":")
	if idx < 0 {
		return RawMetadata{}, false
	}
	keywordPart := s[:idx]
	valuePart := strings.TrimSpace(s[idx+1:])

	k, ok := ParseKeyword(keywordPart)
	if !ok {
		return RawMetadata{}, false
	}
	return RawMetadata{Keyword: k, Value: valuePart}, true
}
