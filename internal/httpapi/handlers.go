// Package httpapi is the thin Fiber façade over the chorddown core: a
// convert endpoint, a catalog-build endpoint, and an RSM log-replay
// endpoint. It owns no domain logic of its own — every handler parses a
// request, calls a core package, and serializes the result.
package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/chordrgo/chordr/internal/catalog"
	"github.com/chordrgo/chordr/internal/chords"
	"github.com/chordrgo/chordr/internal/converter"
	"github.com/chordrgo/chordr/internal/list"
	"github.com/chordrgo/chordr/internal/parser"
	"github.com/chordrgo/chordr/internal/rsm"
	"github.com/chordrgo/chordr/internal/serverconfig"
	"github.com/chordrgo/chordr/internal/tokenizer"
)

var startTime = time.Now()

// Handlers bundles the service-wide dependencies every handler needs.
type Handlers struct {
	Config *serverconfig.Store
}

// New builds a Handlers bound to config.
func New(config *serverconfig.Store) *Handlers {
	return &Handlers{Config: config}
}

// Health reports service liveness and the active configuration.
func (h *Handlers) Health(c *fiber.Ctx) error {
	cfg := h.Config.Get()
	return c.JSON(fiber.Map{
		"status":      "healthy",
		"uptime":      time.Since(startTime).String(),
		"b_notation":  cfg.BNotation.String(),
		"catalog_dir": cfg.CatalogDir,
		"timestamp":   time.Now(),
	})
}

type convertRequest struct {
	Source             string `json:"source"`
	Format             string `json:"format"`
	BNotation          string `json:"b_notation"`
	SemitoneNotation   string `json:"semitone_notation"`
	TransposeSemitones int    `json:"transpose_semitones"`
}

type convertResponse struct {
	Output   string   `json:"output"`
	Title    string   `json:"title"`
	Artist   string   `json:"artist"`
	Warnings []string `json:"warnings,omitempty"`
}

// Convert runs the full Scan/Tokenize/Parse/Convert pipeline over a
// posted chorddown source and renders it in the requested format.
func (h *Handlers) Convert(c *fiber.Ctx) error {
	var req convertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if req.Source == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "source is required"})
	}

	formatting, err := parseFormatting(req.Format, req.BNotation, req.SemitoneNotation, h.Config.Get())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	lexemes := tokenizer.Scan(req.Source)
	tokens, tokErrs := tokenizer.Tokenize(lexemes)

	result, err := parser.Parse(tokens)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	output, err := converter.Convert(result.Node, result.Metadata, formatting, req.TransposeSemitones)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	resp := convertResponse{
		Output: output,
		Title:  result.Metadata.Title,
		Artist: result.Metadata.Artist,
	}
	for _, e := range tokErrs {
		resp.Warnings = append(resp.Warnings, e.Error())
	}
	return c.JSON(resp)
}

func parseFormatting(format, bNotation, semitoneNotation string, defaults serverconfig.Config) (converter.Formatting, error) {
	f := defaults.Formatting()

	switch format {
	case "", "html":
		f.Format = converter.FormatHTML
	case "text":
		f.Format = converter.FormatText
	case "chorddown":
		f.Format = converter.FormatChorddown
	case "songbeamer":
		f.Format = converter.FormatSongBeamer
	default:
		return converter.Formatting{}, &fiberError{msg: "unknown format: " + format}
	}

	if bNotation != "" {
		n, err := chords.ParseBNotation(bNotation)
		if err != nil {
			return converter.Formatting{}, err
		}
		f.BNotation = n
	}

	switch semitoneNotation {
	case "":
	case "sharp":
		f.SemitoneNotation = chords.Sharp
	case "flat":
		f.SemitoneNotation = chords.Flat
	default:
		return converter.Formatting{}, &fiberError{msg: "unknown semitone notation: " + semitoneNotation}
	}

	return f, nil
}

type fiberError struct{ msg string }

func (e *fiberError) Error() string { return e.msg }

type buildCatalogRequest struct {
	Directory string `json:"directory"`
	Recursive bool   `json:"recursive"`
	Extension string `json:"extension"`
}

type catalogSongResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// BuildCatalog walks a directory of chorddown sources and returns the
// resulting catalog, together with any per-file parse errors.
func (h *Handlers) BuildCatalog(c *fiber.Ctx) error {
	var req buildCatalogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if req.Directory == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "directory is required"})
	}

	cat, errs := catalog.Build(req.Directory, catalog.Options{Recursive: req.Recursive, Extension: req.Extension})
	if cat == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errStrings(errs)})
	}

	songs := make([]catalogSongResponse, 0, cat.Songs.Len())
	for _, s := range cat.Songs.Items() {
		songs = append(songs, catalogSongResponse{ID: string(s.ID), Title: s.Meta.Title})
	}

	return c.JSON(fiber.Map{
		"songs":  songs,
		"errors": errStrings(errs),
	})
}

func errStrings(errs []error) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}

type replayLogRequest struct {
	InitialEntries []list.SetlistEntry                              `json:"initial_entries"`
	Entries        []rsm.LogEntry[list.SongID, list.SetlistEntry, string] `json:"entries"`
}

type replayLogResponse struct {
	FinalEntries []list.SetlistEntry    `json:"final_entries"`
	Warnings     []rsm.Warning[list.SongID] `json:"warnings"`
}

// ReplayLog replays a posted command log against an in-memory store
// seeded with InitialEntries, returning the resulting entries and any
// recovered-conflict warnings. A fatal (unrecovered) conflict is
// reported as a 422.
func (h *Handlers) ReplayLog(c *fiber.Ctx) error {
	var req replayLogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	executor := newEntryExecutor(req.InitialEntries)
	warnings, err := rsm.ProcessLogEntries[list.SongID, list.SetlistEntry, string](c.Context(), req.Entries, executor)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(replayLogResponse{
		FinalEntries: executor.entries(),
		Warnings:     warnings,
	})
}
