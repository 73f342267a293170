package rsm

import "context"

// CommandExecutor performs a single Command against the caller's record
// store. It owns all state; the RSM itself holds only a reference to it
// and keeps no persistent state of its own between calls.
type CommandExecutor[ID comparable, R Record[ID], C any] interface {
	Perform(ctx context.Context, cmd Command[ID, R, C]) error
}

// ProcessLogEntries applies entries to executor strictly in the order
// given, without re-sorting; callers supply them in SequenceNumber
// order (see LogEntry). A command that fails with an unclassified error
// aborts the run immediately. A command that fails with a classified
// conflict (RecordExists/RecordNotFound) is handed to the conflict
// resolver; a recovered conflict appends a Warning and processing
// continues, while an unrecoverable conflict aborts with the original
// error. Cancelling ctx abandons the remaining entries with no rollback
// of commands already applied.
func ProcessLogEntries[ID comparable, R Record[ID], C any](
	ctx context.Context,
	entries []LogEntry[ID, R, C],
	executor CommandExecutor[ID, R, C],
) ([]Warning[ID], error) {
	var warnings []Warning[ID]

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return warnings, err
		}

		err := executor.Perform(ctx, entry.Command)
		if err == nil {
			continue
		}

		kind, ok := classify(err)
		if !ok {
			return warnings, err
		}

		// Per §4.8 step 6: if the resolver itself fails, abort with the
		// original error, not the resolver's own failure.
		warning, recovered, resolveErr := resolveConflict(ctx, kind, executor, entry)
		if resolveErr != nil || !recovered {
			return warnings, err
		}
		warnings = append(warnings, warning)
	}

	return warnings, nil
}
