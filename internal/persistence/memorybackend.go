// Package persistence defines the narrow storage boundary the core
// borrows a Catalog and Setlists through. Real backends (browser local
// storage, a server REST API) are out of core scope per the
// specification; MemoryBackend is a minimal in-process reference
// implementation used by this package's tests.
package persistence

import (
	"context"
	"fmt"

	"github.com/chordrgo/chordr/internal/list"
	"github.com/chordrgo/chordr/internal/stupex"
)

// SetlistBackend is the storage boundary a setlist-owning caller depends
// on: load one setlist by id, or persist an updated one.
type SetlistBackend interface {
	LoadSetlist(ctx context.Context, id int32) (*list.Setlist, error)
	SaveSetlist(ctx context.Context, setlist *list.Setlist) error
}

// MemoryBackend is a SetlistBackend held in process memory, guarded by a
// Stupex rather than a sync.Mutex — the access pattern here (a handful of
// short-lived HTTP requests) fits the bounded-retry budget a Stupex
// offers.
type MemoryBackend struct {
	setlists *stupex.Stupex[map[int32]*list.Setlist]
}

// NewMemoryBackend builds an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{setlists: stupex.New(make(map[int32]*list.Setlist))}
}

func (b *MemoryBackend) LoadSetlist(ctx context.Context, id int32) (*list.Setlist, error) {
	guard, err := b.setlists.Lock(ctx)
	if err != nil {
		return nil, fmt.Errorf("persistence: %w", err)
	}
	defer guard.Close()

	setlist, ok := (*guard.Value())[id]
	if !ok {
		return nil, fmt.Errorf("persistence: no setlist with id %d", id)
	}
	return setlist, nil
}

func (b *MemoryBackend) SaveSetlist(ctx context.Context, setlist *list.Setlist) error {
	guard, err := b.setlists.Lock(ctx)
	if err != nil {
		return fmt.Errorf("persistence: %w", err)
	}
	defer guard.Close()

	(*guard.Value())[setlist.ID] = setlist
	return nil
}
