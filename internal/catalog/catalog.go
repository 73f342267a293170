// Package catalog assembles a Song corpus from a directory of chorddown
// sources: parse each file, collect per-file errors without aborting the
// build, and return songs sorted by id.
package catalog

import (
	"fmt"

	"github.com/chordrgo/chordr/internal/list"
	"github.com/chordrgo/chordr/internal/metadata"
	"github.com/chordrgo/chordr/internal/parser"
	"github.com/chordrgo/chordr/internal/tokenizer"
)

// Song is one parsed catalog entry: its opaque id, the raw source text it
// was parsed from, and the metadata extracted during parsing.
type Song struct {
	ID   list.SongID
	Src  string
	Meta metadata.Metadata
}

// EntryID satisfies list.Entry[list.SongID].
func (s Song) EntryID() list.SongID { return s.ID }

// Catalog is a sorted-by-id, id-unique collection of songs.
type Catalog struct {
	Songs *list.List[list.SongID, Song]
}

// FileError names the source path a parse failure occurred at, alongside
// the underlying error.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// ParseSong runs the full Scan/Tokenize/Parse pipeline over src and wraps
// the result as a catalog Song under id.
func ParseSong(id list.SongID, src string) (Song, error) {
	lexemes := tokenizer.Scan(src)
	tokens, tokErrs := tokenizer.Tokenize(lexemes)
	if len(tokErrs) > 0 {
		return Song{}, tokErrs[0]
	}
	result, err := parser.Parse(tokens)
	if err != nil {
		return Song{}, err
	}
	return Song{ID: id, Src: src, Meta: result.Metadata}, nil
}
