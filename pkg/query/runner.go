package query

import (
	"context"
	"fmt"
	"time"

	"github.com/arthur-debert/residue/pkg/errors"
	"github.com/arthur-debert/residue/pkg/logging"
)

type outcome[T any] struct {
	items []T
	err   error
}

// Run executes fn once under deadline. The ctx handed to fn is cancelled once
// Run stops waiting for it. There is no retry; callers decide whether to
// re-run the whole pass.
func Run[T any](name string, deadline time.Duration, fn func(ctx context.Context) ([]T, error)) ([]T, error) {
	logger := logging.GetLogger("query").With().Str("query", name).Logger()

	if deadline <= 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "deadline for %s must be positive, got %s", name, deadline)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Buffered so an abandoned worker can always deliver and exit.
	done := make(chan outcome[T], 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome[T]{err: fmt.Errorf("panic: %v", r)}
			}
		}()
		items, err := fn(ctx)
		done <- outcome[T]{items: items, err: err}
	}()

	start := time.Now()
	timer := time.NewTimer(deadline)
	defer timer.Stop()

	select {
	case out := <-done:
		if out.err != nil {
			logger.Error().Err(out.err).Dur("elapsed", time.Since(start)).Msg("External query failed")
			return nil, errors.Wrapf(out.err, errors.ErrQueryFailed,
				"error while running %s, %s", name, errors.RemediationHint).
				WithDetail("query", name)
		}
		logger.Debug().Int("items", len(out.items)).Dur("elapsed", time.Since(start)).Msg("External query completed")
		return out.items, nil
	case <-timer.C:
		logger.Error().Dur("deadline", deadline).Msg("External query hung, abandoning worker")
		return nil, errors.Newf(errors.ErrQueryTimedOut,
			"%s has hung and was abandoned after %s, %s", name, deadline, errors.RemediationHint).
			WithDetail("query", name).
			WithDetail("deadline", deadline.String())
	}
}
