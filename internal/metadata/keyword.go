// Package metadata implements the typed, keyword-indexed song metadata
// model: the fixed field set, its alias table, and the Metadata record
// built from raw keyword/value pairs found while tokenizing a chorddown
// source.
package metadata

import "strings"

// Keyword identifies one of the fixed metadata fields. The iota order is
// the fixed iteration order required by the specification.
type Keyword int

const (
	Title Keyword = iota
	Subtitle
	Artist
	Composer
	Lyricist
	Copyright
	Album
	Year
	Key
	OriginalKey
	Time
	Tempo
	Duration
	Capo
	OriginalTitle
	AlternativeTitle
	CCLISongID
	BNotationKeyword
	keywordCount
)

// Label returns the canonical display label for k.
func (k Keyword) Label() string {
	return keywordLabels[k]
}

var keywordLabels = [keywordCount]string{
	Title:            "Title",
	Subtitle:         "Subtitle",
	Artist:           "Artist",
	Composer:         "Composer",
	Lyricist:         "Lyricist",
	Copyright:        "Copyright",
	Album:            "Album",
	Year:             "Year",
	Key:              "Key",
	OriginalKey:      "Original Key",
	Time:             "Time",
	Tempo:            "Tempo",
	Duration:         "Duration",
	Capo:             "Capo",
	OriginalTitle:    "Original Title",
	AlternativeTitle: "Alternative Title",
	CCLISongID:       "CCLI Song #",
	BNotationKeyword: "B Notation",
}

// aliases maps every recognised spelling (already case/space/underscore/
// hyphen normalised) to its Keyword. Built once in init from the same
// alias lists the original chorddown tokenizer recognises.
var aliases = map[string]Keyword{}

func init() {
	register(Title, "title")
	register(Subtitle, "subtitle", "sub title", "sub-title")
	register(Artist, "artist")
	register(Composer, "composer", "music by")
	register(Lyricist, "lyricist", "text by", "words by")
	register(Copyright, "copyright", "c")
	register(Album, "album")
	register(Year, "year")
	register(Key, "key")
	register(OriginalKey, "original key", "originalkey", "key original")
	register(Time, "time", "time signature")
	register(Tempo, "tempo", "bpm")
	register(Duration, "duration", "length")
	register(Capo, "capo")
	register(OriginalTitle, "original title", "originaltitle")
	register(AlternativeTitle, "alternative title", "alternativetitle", "alt title")
	register(CCLISongID, "ccli song", "ccli song id", "ccli song #", "ccli")
	register(BNotationKeyword, "b notation", "bnotation")
}

// register records every normalised spelling variant (space, underscore,
// hyphen are interchangeable separators) for names under k.
func register(k Keyword, names ...string) {
	for _, name := range names {
		norm := normalizeKeyword(name)
		aliases[norm] = k
		aliases[strings.ReplaceAll(norm, " ", "_")] = k
		aliases[strings.ReplaceAll(norm, " ", "-")] = k
		aliases[strings.ReplaceAll(norm, " ", "")] = k
	}
}

// normalizeKeyword folds case and turns each underscore/hyphen separator
// into a space, so "B_Notation", "B-Notation" and "B Notation" all
// normalise identically; "BNotation" is matched through the
// separator-free spelling register adds for every alias.
func normalizeKeyword(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return s
}

// ParseKeyword resolves s (case-insensitive, space/underscore/hyphen
// tolerant) to a Keyword.
func ParseKeyword(s string) (Keyword, bool) {
	norm := normalizeKeyword(s)
	k, ok := aliases[norm]
	if ok {
		return k, true
	}
	k, ok = aliases[strings.ReplaceAll(norm, " ", "")]
	return k, ok
}
