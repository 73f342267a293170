package httpapi

import (
	"context"
	"fmt"

	"github.com/chordrgo/chordr/internal/list"
	"github.com/chordrgo/chordr/internal/rsm"
)

// recordExistsError and recordNotFoundError let entryExecutor self-report
// recoverable conflicts to the RSM's conflict resolver, per
// rsm.ConflictClassifier.
type recordExistsError struct{ id list.SongID }

func (e *recordExistsError) Error() string { return fmt.Sprintf("entry %q already exists", e.id) }
func (e *recordExistsError) CommandConflictType() (rsm.ConflictKind, bool) {
	return rsm.ConflictRecordExists, true
}

type recordNotFoundError struct{ id list.SongID }

func (e *recordNotFoundError) Error() string { return fmt.Sprintf("entry %q not found", e.id) }
func (e *recordNotFoundError) CommandConflictType() (rsm.ConflictKind, bool) {
	return rsm.ConflictRecordNotFound, true
}

// entryExecutor applies rsm Commands against an in-memory map of
// SetlistEntry, keyed by SongID. It is the concrete CommandExecutor the
// /api/rsm/replay endpoint drives — a minimal stand-in for a real
// setlist store.
type entryExecutor struct {
	store map[list.SongID]list.SetlistEntry
}

func newEntryExecutor(initial []list.SetlistEntry) *entryExecutor {
	store := make(map[list.SongID]list.SetlistEntry, len(initial))
	for _, e := range initial {
		store[e.SongID] = e
	}
	return &entryExecutor{store: store}
}

func (e *entryExecutor) Perform(_ context.Context, cmd rsm.Command[list.SongID, list.SetlistEntry, string]) error {
	id := cmd.Record.SongID
	switch cmd.Kind {
	case rsm.CommandAdd:
		if _, exists := e.store[id]; exists {
			return &recordExistsError{id: id}
		}
		e.store[id] = cmd.Record
	case rsm.CommandUpdate:
		if _, exists := e.store[id]; !exists {
			return &recordNotFoundError{id: id}
		}
		e.store[id] = cmd.Record
	case rsm.CommandDelete:
		if _, exists := e.store[id]; !exists {
			return &recordNotFoundError{id: id}
		}
		delete(e.store, id)
	case rsm.CommandUpsert:
		e.store[id] = cmd.Record
	default:
		return fmt.Errorf("entryExecutor: unknown command kind %v", cmd.Kind)
	}
	return nil
}

func (e *entryExecutor) entries() []list.SetlistEntry {
	out := make([]list.SetlistEntry, 0, len(e.store))
	for _, v := range e.store {
		out = append(out, v)
	}
	return out
}
