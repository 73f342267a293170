package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chordrgo/chordr/internal/list"
	"github.com/chordrgo/chordr/internal/tokenizer"
)

// Options configures a catalog build.
type Options struct {
	// Recursive walks subdirectories when true; otherwise only the
	// top-level directory entries are considered.
	Recursive bool
	// Extension filters files by suffix, e.g. ".chorddown". An empty
	// Extension matches every regular file.
	Extension string
}

// Build walks root (a directory) according to opts, parses every matching
// file into a Song keyed by its relative path, and returns the resulting
// Catalog together with any per-file errors. A parse failure for one file
// never aborts the build; only a non-directory root is fatal.
func Build(root string, opts Options) (*Catalog, []error) {
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
		song, err := parseFile(root, path)
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

// collectPaths lists candidate file paths under root, honoring
// Options.Recursive and Options.Extension, in deterministic sorted order.
func collectPaths(root string, opts Options) ([]string, error) {
	var paths []string

	if !opts.Recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("catalog: read %s: %w", root, err)
		}
		for _, e := range entries {
			if e.IsDir() || !matchesExtension(e.Name(), opts.Extension) {
				continue
			}
			paths = append(paths, filepath.Join(root, e.Name()))
		}
		sort.Strings(paths)
		return paths, nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !matchesExtension(d.Name(), opts.Extension) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: walk %s: %w", root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

func matchesExtension(name, ext string) bool {
	if ext == "" {
		return true
	}
	return strings.HasSuffix(name, ext)
}

// parseFile reads path and runs it through the parse pipeline, using its
// path relative to root as the song id.
func parseFile(root, path string) (Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Song{}, err
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	src, err := tokenizer.DecodeSource(data)
	if err != nil {
		return Song{}, err
	}
	return ParseSong(list.SongID(rel), src)
}

// dedupe adds songs one at a time so a duplicate id surfaces as a
// FileError rather than silently coexisting in the catalog.
func dedupe(songs []Song) (*Catalog, []error) {
	l := list.New[list.SongID, Song]()
	var errs []error
	for _, s := range songs {
		if err := l.Add(s); err != nil {
			errs = append(errs, &FileError{Path: string(s.ID), Err: err})
			continue
		}
	}
	items := l.Items()
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return &Catalog{Songs: list.FromSlice[list.SongID, Song](items)}, errs
}
