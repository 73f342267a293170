package stupex

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryLockFailsWhileHeld(t *testing.T) {
	s := New(2)

	g1, err := s.TryLock()
	require.NoError(t, err)

	_, err = s.TryLock()
	require.Error(t, err)

	g1.Close()

	g2, err := s.TryLock()
	require.NoError(t, err)
	assert.Equal(t, 2, *g2.Value())
	g2.Close()
}

func TestLockRetriesUntilReleased(t *testing.T) {
	s := New("value")
	g1, err := s.TryLock()
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		g1.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	g2, err := s.Lock(ctx)
	require.NoError(t, err)
	assert.Equal(t, "value", *g2.Value())
	g2.Close()
}

func TestLockGivesUpAfterMaxTries(t *testing.T) {
	s := WithMaxTries(0, 2)
	s.retryDelay = time.Millisecond

	g1, err := s.TryLock()
	require.NoError(t, err)
	defer g1.Close()

	_, err = s.Lock(context.Background())
	require.Error(t, err)
}
