package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chordrgo/chordr/internal/list"
	"github.com/chordrgo/chordr/internal/rsm"
)

// replayLogFile is the on-disk shape a replay-log invocation reads: the
// seed store plus the command log to apply to it, in SequenceNumber
// order.
type replayLogFile struct {
	InitialEntries []list.SetlistEntry                                    `json:"initial_entries"`
	Entries        []rsm.LogEntry[list.SongID, list.SetlistEntry, string] `json:"entries"`
}

type memoryExecutor struct {
	store map[list.SongID]list.SetlistEntry
}

func (e *memoryExecutor) Perform(_ context.Context, cmd rsm.Command[list.SongID, list.SetlistEntry, string]) error {
	id := cmd.Record.SongID
	switch cmd.Kind {
	case rsm.CommandAdd:
		if _, exists := e.store[id]; exists {
			return &conflictError{kind: rsm.ConflictRecordExists, id: id}
		}
		e.store[id] = cmd.Record
	case rsm.CommandUpdate:
		if _, exists := e.store[id]; !exists {
			return &conflictError{kind: rsm.ConflictRecordNotFound, id: id}
		}
		e.store[id] = cmd.Record
	case rsm.CommandDelete:
		if _, exists := e.store[id]; !exists {
			return &conflictError{kind: rsm.ConflictRecordNotFound, id: id}
		}
		delete(e.store, id)
	case rsm.CommandUpsert:
		e.store[id] = cmd.Record
	default:
		return fmt.Errorf("replay: unknown command kind %v", cmd.Kind)
	}
	return nil
}

type conflictError struct {
	kind rsm.ConflictKind
	id   list.SongID
}

func (e *conflictError) Error() string { return fmt.Sprintf("%s: %s", e.id, e.kind) }
func (e *conflictError) CommandConflictType() (rsm.ConflictKind, bool) {
	return e.kind, true
}

func newReplayLogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay-log <file.json>",
		Short: "Replay a command log against a seed store and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			var file replayLogFile
			if err := json.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			store := make(map[list.SongID]list.SetlistEntry, len(file.InitialEntries))
			for _, e := range file.InitialEntries {
				store[e.SongID] = e
			}
			executor := &memoryExecutor{store: store}

			warnings, err := rsm.ProcessLogEntries[list.SongID, list.SetlistEntry, string](context.Background(), file.Entries, executor)
			if err != nil {
				return fmt.Errorf("replay aborted: %w", err)
			}

			for _, w := range warnings {
				fmt.Printf("warning: %s for %s\n", w.Kind, w.RecordID)
			}
			for _, entry := range executor.store {
				fmt.Printf("%s\t%s\n", entry.SongID, entry.Title)
			}
			return nil
		},
	}
	return cmd
}
