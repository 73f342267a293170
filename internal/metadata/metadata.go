package metadata

import (
	"github.com/chordrgo/chordr/internal/chords"
)

// Metadata is the typed, 18-field song metadata record with a fixed
// iteration order (see Keyword's iota order).
type Metadata struct {
	Title            string
	Subtitle         string
	Artist           string
	Composer         string
	Lyricist         string
	Copyright        string
	Album            string
	Year             string
	Key              *chords.Chord
	OriginalKey      *chords.Chord
	Time             string
	Tempo            string
	Duration         string
	Capo             string
	OriginalTitle    string
	AlternativeTitle string
	CCLISongID       string
	BNotation        *chords.BNotation
}

// ValueKind classifies the payload of a Value.
type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueString
	ValueChord
	ValueBNotation
)

// Value is the tagged-union payload yielded by Metadata.Iterate.
type Value struct {
	Kind      ValueKind
	String    string
	Chord     chords.Chord
	BNotation chords.BNotation
}

// Entry is one (label, value) pair from Metadata.Iterate.
type Entry struct {
	Keyword Keyword
	Value   Value
}

// Iterate returns every field of m in fixed keyword order, including
// fields with no value set (Value.Kind == ValueNone).
func (m *Metadata) Iterate() []Entry {
	entries := make([]Entry, 0, keywordCount)
	add := func(k Keyword, s string) {
		if s == "" {
			entries = append(entries, Entry{Keyword: k, Value: Value{Kind: ValueNone}})
			return
		}
		entries = append(entries, Entry{Keyword: k, Value: Value{Kind: ValueString, String: s}})
	}
	addChord := func(k Keyword, c *chords.Chord) {
		if c == nil {
			entries = append(entries, Entry{Keyword: k, Value: Value{Kind: ValueNone}})
			return
		}
		entries = append(entries, Entry{Keyword: k, Value: Value{Kind: ValueChord, Chord: *c}})
	}

	add(Title, m.Title)
	add(Subtitle, m.Subtitle)
	add(Artist, m.Artist)
	add(Composer, m.Composer)
	add(Lyricist, m.Lyricist)
	add(Copyright, m.Copyright)
	add(Album, m.Album)
	add(Year, m.Year)
	addChord(Key, m.Key)
	addChord(OriginalKey, m.OriginalKey)
	add(Time, m.Time)
	add(Tempo, m.Tempo)
	add(Duration, m.Duration)
	add(Capo, m.Capo)
	add(OriginalTitle, m.OriginalTitle)
	add(AlternativeTitle, m.AlternativeTitle)
	add(CCLISongID, m.CCLISongID)
	if m.BNotation == nil {
		entries = append(entries, Entry{Keyword: BNotationKeyword, Value: Value{Kind: ValueNone}})
	} else {
		entries = append(entries, Entry{Keyword: BNotationKeyword, Value: Value{Kind: ValueBNotation, BNotation: *m.BNotation}})
	}

	return entries
}

// EffectiveBNotation returns the declared BNotation, or BNotationB if none
// was set.
func (m *Metadata) EffectiveBNotation() chords.BNotation {
	if m.BNotation == nil {
		return chords.BNotationB
	}
	return *m.BNotation
}

// Apply merges a single raw keyword/value pair into m. Key and
// OriginalKey are parsed as chords using notation; a BNotation field
// updates m.BNotation and, per the specification, re-parses any
// already-set Key/OriginalKey strings under the new notation.
// rawKeyText and rawOriginalKeyText receive the original string values
// so the reinterpretation has something to reparse.
func (m *Metadata) Apply(raw RawMetadata, rawKeyText, rawOriginalKeyText *string) error {
	switch raw.Keyword {
	case Title:
		m.Title = raw.Value
	case Subtitle:
		m.Subtitle = raw.Value
	case Artist:
		m.Artist = raw.Value
	case Composer:
		m.Composer = raw.Value
	case Lyricist:
		m.Lyricist = raw.Value
	case Copyright:
		m.Copyright = raw.Value
	case Album:
		m.Album = raw.Value
	case Year:
		m.Year = raw.Value
	case Key:
		*rawKeyText = raw.Value
		c, err := chords.ParseChord(raw.Value, m.EffectiveBNotation())
		if err != nil {
			return err
		}
		m.Key = &c
	case OriginalKey:
		*rawOriginalKeyText = raw.Value
		c, err := chords.ParseChord(raw.Value, m.EffectiveBNotation())
		if err != nil {
			return err
		}
		m.OriginalKey = &c
	case Time:
		m.Time = raw.Value
	case Tempo:
		m.Tempo = raw.Value
	case Duration:
		m.Duration = raw.Value
	case Capo:
		m.Capo = raw.Value
	case OriginalTitle:
		m.OriginalTitle = raw.Value
	case AlternativeTitle:
		m.AlternativeTitle = raw.Value
	case CCLISongID:
		m.CCLISongID = raw.Value
	case BNotationKeyword:
		b, err := chords.ParseBNotation(raw.Value)
		if err != nil {
			return err
		}
		m.BNotation = &b

		// Reinterpret keys already parsed under the old (inferred or
		// default) notation.
		if *rawKeyText != "" {
			c, err := chords.ParseChord(*rawKeyText, b)
			if err != nil {
				return err
			}
			m.Key = &c
		}
		if *rawOriginalKeyText != "" {
			c, err := chords.ParseChord(*rawOriginalKeyText, b)
			if err != nil {
				return err
			}
			m.OriginalKey = &c
		}
	}
	return nil
}
