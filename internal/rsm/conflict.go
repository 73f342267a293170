package rsm

import (
	"context"
	"errors"
)

// ConflictKind classifies a recoverable executor failure.
type ConflictKind int

const (
	ConflictRecordExists ConflictKind = iota
	ConflictRecordNotFound
)

func (k ConflictKind) String() string {
	if k == ConflictRecordExists {
		return "record exists"
	}
	return "record not found"
}

// ConflictClassifier is implemented by executor errors that can
// self-report whether they represent a recoverable conflict. An error
// that does not implement this interface (or returns ok=false) is
// always fatal.
type ConflictClassifier interface {
	error
	CommandConflictType() (kind ConflictKind, ok bool)
}

// classify extracts a ConflictKind from err, if err (or something it
// wraps via the standard errors.As protocol) implements ConflictClassifier.
func classify(err error) (ConflictKind, bool) {
	var cc ConflictClassifier
	if !errors.As(err, &cc) {
		return 0, false
	}
	return cc.CommandConflictType()
}

// WarningKind classifies a non-fatal diagnostic the resolver emits for a
// successfully resolved conflict.
type WarningKind int

const (
	WarningReplaced WarningKind = iota
	WarningAlreadyAbsent
)

// Warning is an append-only diagnostic surfaced to the RSM caller for a
// conflict the resolver recovered from.
type Warning[ID comparable] struct {
	Kind     WarningKind
	RecordID ID
}

// resolveConflict applies the conflict-resolver policy table from
// §4.8: Add+RecordExists retries after deleting the existing record;
// Delete+RecordNotFound is a no-op success; Update+RecordNotFound and
// any Upsert conflict are fatal. Command/conflict combinations the
// policy table does not name (e.g. Add+RecordNotFound) are treated as
// fatal too, since no recovery rule is defined for them.
func resolveConflict[ID comparable, R Record[ID], C any](
	ctx context.Context,
	kind ConflictKind,
	executor CommandExecutor[ID, R, C],
	entry LogEntry[ID, R, C],
) (Warning[ID], bool, error) {
	cmd := entry.Command
	id := cmd.Record.RecordID()

	switch {
	case cmd.Kind == CommandAdd && kind == ConflictRecordExists:
		del := Command[ID, R, C]{Kind: CommandDelete, Record: cmd.Record, Context: cmd.Context}
		if err := executor.Perform(ctx, del); err != nil {
			return Warning[ID]{}, false, err
		}
		if err := executor.Perform(ctx, cmd); err != nil {
			return Warning[ID]{}, false, err
		}
		return Warning[ID]{Kind: WarningReplaced, RecordID: id}, true, nil

	case cmd.Kind == CommandDelete && kind == ConflictRecordNotFound:
		return Warning[ID]{Kind: WarningAlreadyAbsent, RecordID: id}, true, nil

	default:
		// Update+RecordNotFound, any Upsert conflict, and every other
		// unlisted combination abort with the original error.
		return Warning[ID]{}, false, nil
	}
}
