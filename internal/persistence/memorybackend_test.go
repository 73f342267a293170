package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/chordrgo/chordr/internal/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackendSaveThenLoad(t *testing.T) {
	backend := NewMemoryBackend()
	setlist := list.NewSetlist("Sunday set", 1, list.User{ID: "u1"}, nil, nil, time.Unix(0, 0))

	require.NoError(t, backend.SaveSetlist(context.Background(), setlist))

	got, err := backend.LoadSetlist(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Sunday set", got.Name)
}

func TestMemoryBackendLoadMissingIsError(t *testing.T) {
	backend := NewMemoryBackend()
	_, err := backend.LoadSetlist(context.Background(), 99)
	require.Error(t, err)
}
