package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/chordrgo/chordr/internal/list"
)

// defaultHTMLSelector names the element a saved song-sheet page stores its
// chorddown source under. Callers with a different page layout pass their
// own selector to BuildFromHTML.
const defaultHTMLSelector = "pre.chorddown-source"

// BuildFromHTML is the HTML-sourced counterpart to Build: it walks root
// for ".html" files, extracts the chorddown source from the first match
// of selector in each page (defaultHTMLSelector if selector is empty),
// and parses the extracted text exactly as Build parses a plain-text
// file. This lets a catalog ingest saved search-result or song-sheet
// pages without a separate text export step.
func BuildFromHTML(root string, opts Options, selector string) (*Catalog, []error) {
	if selector == "" {
		selector = defaultHTMLSelector
	}
	opts.Extension = ".html"

	info, err := os.Stat(root)
	if err != nil {
		return nil, []error{fmt.Errorf("catalog: stat %s: %w", root, err)}
	}
	if !info.IsDir() {
		return nil, []error{fmt.Errorf("catalog: %s is not a directory", root)}
	}

	paths, err := collectPaths(root, opts)
	if err != nil {
		return nil, []error{err}
	}

	songs := make([]Song, 0, len(paths))
	var errs []error

	for _, path := range paths {
		song, err := parseHTMLFile(root, path, selector)
		if err != nil {
			errs = append(errs, &FileError{Path: path, Err: err})
			continue
		}
		songs = append(songs, song)
	}

	cat, dupErrs := dedupe(songs)
	errs = append(errs, dupErrs...)
	return cat, errs
}

func parseHTMLFile(root, path, selector string) (Song, error) {
	f, err := os.Open(path)
	if err != nil {
		return Song{}, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return Song{}, fmt.Errorf("parsing HTML: %w", err)
	}

	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return Song{}, fmt.Errorf("no element matched selector %q", selector)
	}

	src := strings.TrimSpace(sel.Text())
	if src == "" {
		return Song{}, fmt.Errorf("element matched by %q was empty", selector)
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return ParseSong(list.SongID(rel), src)
}
