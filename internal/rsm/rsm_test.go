package rsm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecord struct {
	id    int
	value string
}

func (r fakeRecord) RecordID() int { return r.id }

type fakeConflictError struct {
	kind ConflictKind
}

func (e *fakeConflictError) Error() string { return e.kind.String() }

func (e *fakeConflictError) CommandConflictType() (ConflictKind, bool) {
	return e.kind, true
}

type fatalError struct{ msg string }

func (e *fatalError) Error() string { return e.msg }

// memoryExecutor is a minimal in-memory CommandExecutor used to exercise
// ProcessLogEntries without any real backing store.
type memoryExecutor struct {
	store map[int]fakeRecord
	// conflictOnAdd, when set, is returned the first time an Add is
	// performed for this record id; subsequent Adds for the same id
	// succeed normally.
	conflictOnAdd map[int]bool
	// conflictOnUpsert, when set, is always returned for an Upsert of
	// this record id, regardless of store state.
	conflictOnUpsert map[int]bool
}

func newMemoryExecutor(initial ...fakeRecord) *memoryExecutor {
	store := make(map[int]fakeRecord)
	for _, r := range initial {
		store[r.id] = r
	}
	return &memoryExecutor{store: store, conflictOnAdd: map[int]bool{}, conflictOnUpsert: map[int]bool{}}
}

func (e *memoryExecutor) Perform(ctx context.Context, cmd Command[int, fakeRecord, string]) error {
	id := cmd.Record.RecordID()
	switch cmd.Kind {
	case CommandAdd:
		if e.conflictOnAdd[id] {
			delete(e.conflictOnAdd, id)
			return &fakeConflictError{kind: ConflictRecordExists}
		}
		if _, exists := e.store[id]; exists {
			return &fakeConflictError{kind: ConflictRecordExists}
		}
		e.store[id] = cmd.Record
		return nil
	case CommandUpdate:
		if _, exists := e.store[id]; !exists {
			return &fakeConflictError{kind: ConflictRecordNotFound}
		}
		e.store[id] = cmd.Record
		return nil
	case CommandDelete:
		if _, exists := e.store[id]; !exists {
			return &fakeConflictError{kind: ConflictRecordNotFound}
		}
		delete(e.store, id)
		return nil
	case CommandUpsert:
		if e.conflictOnUpsert[id] {
			return &fakeConflictError{kind: ConflictRecordExists}
		}
		e.store[id] = cmd.Record
		return nil
	default:
		return &fatalError{msg: "unknown command kind"}
	}
}

func entry(seq int, kind CommandKind, rec fakeRecord) LogEntry[int, fakeRecord, string] {
	return LogEntry[int, fakeRecord, string]{
		SequenceNumber: seq,
		Command:        Command[int, fakeRecord, string]{Kind: kind, Record: rec},
	}
}

func TestProcessLogEntriesAddConflictIsRecovered(t *testing.T) {
	executor := newMemoryExecutor(fakeRecord{id: 1, value: "stale"})
	executor.conflictOnAdd[1] = true

	entries := []LogEntry[int, fakeRecord, string]{
		entry(0, CommandAdd, fakeRecord{id: 0, value: "a"}),
		entry(1, CommandAdd, fakeRecord{id: 1, value: "b"}),
		entry(2, CommandAdd, fakeRecord{id: 2, value: "c"}),
	}

	warnings, err := ProcessLogEntries[int, fakeRecord, string](context.Background(), entries, executor)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningReplaced, warnings[0].Kind)
	assert.Equal(t, 1, warnings[0].RecordID)

	assert.Len(t, executor.store, 3)
	assert.Equal(t, "b", executor.store[1].value)
}

func TestProcessLogEntriesUpdateOnMissingIsFatal(t *testing.T) {
	executor := newMemoryExecutor()

	entries := []LogEntry[int, fakeRecord, string]{
		entry(0, CommandUpdate, fakeRecord{id: 4, value: "x"}),
	}

	warnings, err := ProcessLogEntries[int, fakeRecord, string](context.Background(), entries, executor)
	require.Error(t, err)
	assert.Empty(t, warnings)

	var classifier ConflictClassifier
	require.ErrorAs(t, err, &classifier)
	kind, ok := classifier.CommandConflictType()
	require.True(t, ok)
	assert.Equal(t, ConflictRecordNotFound, kind)
}

func TestProcessLogEntriesDeleteOnMissingIsNoOpWarning(t *testing.T) {
	executor := newMemoryExecutor()

	entries := []LogEntry[int, fakeRecord, string]{
		entry(0, CommandDelete, fakeRecord{id: 7}),
	}

	warnings, err := ProcessLogEntries[int, fakeRecord, string](context.Background(), entries, executor)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningAlreadyAbsent, warnings[0].Kind)
	assert.Equal(t, 7, warnings[0].RecordID)
}

func TestProcessLogEntriesUpsertConflictIsFatal(t *testing.T) {
	executor := newMemoryExecutor(fakeRecord{id: 1, value: "stale"})
	executor.conflictOnUpsert[1] = true

	entries := []LogEntry[int, fakeRecord, string]{
		entry(0, CommandUpsert, fakeRecord{id: 1, value: "y"}),
	}

	_, err := ProcessLogEntries[int, fakeRecord, string](context.Background(), entries, executor)
	require.Error(t, err)

	classifier, ok := err.(ConflictClassifier)
	require.True(t, ok)
	kind, ok := classifier.CommandConflictType()
	require.True(t, ok)
	assert.Equal(t, ConflictRecordExists, kind)
}

func TestProcessLogEntriesUnclassifiedErrorAbortsImmediately(t *testing.T) {
	executor := newMemoryExecutor()
	entries := []LogEntry[int, fakeRecord, string]{
		{SequenceNumber: 0, Command: Command[int, fakeRecord, string]{Kind: CommandKind(99), Record: fakeRecord{id: 1}}},
	}

	_, err := ProcessLogEntries[int, fakeRecord, string](context.Background(), entries, executor)
	require.Error(t, err)
	_, ok := err.(ConflictClassifier)
	assert.False(t, ok)
}
