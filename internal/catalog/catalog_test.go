package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chordrgo/chordr/internal/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(dir, name)), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestBuildParsesAllMatchingFilesSortedByID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.chorddown", "Title: Song B\n# Verse\nLyrics\n")
	writeFile(t, dir, "a.chorddown", "Title: Song A\n# Verse\nLyrics\n")
	writeFile(t, dir, "ignored.txt", "not chorddown")

	cat, errs := Build(dir, Options{Extension: ".chorddown"})
	require.Empty(t, errs)
	require.NotNil(t, cat)

	items := cat.Songs.Items()
	require.Len(t, items, 2)
	assert.Equal(t, list.SongID("a.chorddown"), items[0].ID)
	assert.Equal(t, list.SongID("b.chorddown"), items[1].ID)
	assert.Equal(t, "Song A", items[0].Meta.Title)
}

func TestBuildRecursiveWalksSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.chorddown", "Title: Top\n")
	writeFile(t, dir, filepath.Join("sub", "nested.chorddown"), "Title: Nested\n")

	cat, errs := Build(dir, Options{Extension: ".chorddown", Recursive: true})
	require.Empty(t, errs)
	assert.Equal(t, 2, cat.Songs.Len())
}

func TestBuildNonRecursiveSkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.chorddown", "Title: Top\n")
	writeFile(t, dir, filepath.Join("sub", "nested.chorddown"), "Title: Nested\n")

	cat, errs := Build(dir, Options{Extension: ".chorddown"})
	require.Empty(t, errs)
	assert.Equal(t, 1, cat.Songs.Len())
}

func TestBuildNonDirectoryRootIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.chorddown", "Title: X\n")

	_, errs := Build(filepath.Join(dir, "file.chorddown"), Options{})
	require.Len(t, errs, 1)
}

func TestBuildCollectsPerFileErrorsWithoutAborting(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.chorddown", "Title: Good\n# Verse\nLyrics\n")
	writeFile(t, dir, "bad.chorddown", "[D unclosed chord\n")

	cat, errs := Build(dir, Options{Extension: ".chorddown"})
	require.Len(t, errs, 1)
	require.Equal(t, 1, cat.Songs.Len())

	got, ok := cat.Songs.Get("good.chorddown")
	require.True(t, ok)
	assert.Equal(t, "Good", got.Meta.Title)
}

func TestBuildParallelMatchesBuildResults(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 8; i++ {
		writeFile(t, dir, filepathName(i), "Title: Song\n# Verse\nLyrics\n")
	}

	serial, serialErrs := Build(dir, Options{Extension: ".chorddown"})
	parallel, parallelErrs := BuildParallel(dir, Options{Extension: ".chorddown"})

	require.Empty(t, serialErrs)
	require.Empty(t, parallelErrs)
	require.Equal(t, serial.Songs.Len(), parallel.Songs.Len())

	serialItems := serial.Songs.Items()
	parallelItems := parallel.Songs.Items()
	for i := range serialItems {
		assert.Equal(t, serialItems[i].ID, parallelItems[i].ID)
	}
}

func filepathName(i int) string {
	return string(rune('a'+i)) + ".chorddown"
}

func TestParseSongReturnsTokenizerError(t *testing.T) {
	_, err := ParseSong("x", "[D unclosed\n")
	require.Error(t, err)
}
