package rsm

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Transient is implemented by executor errors that represent a
// transport-level failure (a dropped connection, a timed-out request)
// rather than a command conflict or a permanent rejection. Only
// Transient errors are retried; conflicts and plain errors are not.
type Transient interface {
	error
	Temporary() bool
}

// RetryingExecutor wraps a CommandExecutor with exponential-backoff
// retry for Transient failures, mirroring the retry policy the
// webhook delivery client uses for flaky network calls. Conflict errors
// and non-Transient errors pass through on the first attempt; the RSM's
// own conflict resolution policy is unaffected.
type RetryingExecutor[ID comparable, R Record[ID], C any] struct {
	inner      CommandExecutor[ID, R, C]
	maxRetries uint64
}

// NewRetryingExecutor wraps inner, retrying transient failures up to
// maxRetries times with jittered exponential backoff.
func NewRetryingExecutor[ID comparable, R Record[ID], C any](inner CommandExecutor[ID, R, C], maxRetries uint64) *RetryingExecutor[ID, R, C] {
	return &RetryingExecutor[ID, R, C]{inner: inner, maxRetries: maxRetries}
}

func (e *RetryingExecutor[ID, R, C]) Perform(ctx context.Context, cmd Command[ID, R, C]) error {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 250 * time.Millisecond
	expBackoff.MaxInterval = 4 * time.Second
	expBackoff.MaxElapsedTime = 30 * time.Second
	expBackoff.RandomizationFactor = 0.5

	withCtx := backoff.WithContext(backoff.WithMaxRetries(expBackoff, e.maxRetries), ctx)

	return backoff.Retry(func() error {
		err := e.inner.Perform(ctx, cmd)
		if err == nil {
			return nil
		}
		var transient Transient
		if errors.As(err, &transient) && transient.Temporary() {
			return err
		}
		return backoff.Permanent(err)
	}, withCtx)
}
