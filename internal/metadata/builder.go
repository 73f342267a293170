package metadata

import "github.com/chordrgo/chordr/internal/chords"

// Builder accumulates RawMetadata entries into a Metadata record, handling
// BNotation reinterpretation of already-parsed keys as specified in
// spec.md §4.3.
type Builder struct {
	m                   Metadata
	rawKeyText          string
	rawOriginalKeyText  string
	sawExplicitNotation bool
	sawHUsage           bool
}

// NewBuilder returns an empty metadata Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Apply merges one raw keyword/value pair.
func (b *Builder) Apply(raw RawMetadata) error {
	if raw.Keyword == BNotationKeyword {
		b.sawExplicitNotation = true
	}
	return b.m.Apply(raw, &b.rawKeyText, &b.rawOriginalKeyText)
}

// NoteChordUsage records that a chord token in the source used root H (or
// a bare "H" variant start), feeding the BNotation inference rule used
// when no explicit BNotation metadata is present.
func (b *Builder) NoteChordUsage(usesH bool) {
	if usesH {
		b.sawHUsage = true
	}
}

// Build finalizes the record. If no explicit BNotation metadata was seen,
// it infers H when any chord token used root H, otherwise B, and
// reinterprets Key/OriginalKey accordingly.
func (b *Builder) Build() (Metadata, error) {
	if !b.sawExplicitNotation && b.sawHUsage {
		h := chords.BNotationH
		b.m.BNotation = &h
		if b.rawKeyText != "" {
			c, err := chords.ParseChord(b.rawKeyText, h)
			if err != nil {
				return Metadata{}, err
			}
			b.m.Key = &c
		}
		if b.rawOriginalKeyText != "" {
			c, err := chords.ParseChord(b.rawOriginalKeyText, h)
			if err != nil {
				return Metadata{}, err
			}
			b.m.OriginalKey = &c
		}
	}
	return b.m, nil
}
