// Package fuzztesting contains helpers for fuzz tests and for the regression
// tests that replay inputs found by them.
package fuzztesting

import (
	"context"
	"testing"
	"time"

	"github.com/ecklang/eckfront/internal"
)

// Timeout is how long RunWithFuzzerTimeout allows for its iterations.
func Timeout() time.Duration {
	if internal.IsRace {
		// The race detector makes parsing several times slower.
		return 20 * time.Second
	}
	return 2 * time.Second
}

// RunWithFuzzerTimeout calls fn three times and fails t if that takes longer
// than Timeout. fn should stop early once ctx is done.
func RunWithFuzzerTimeout(t testing.TB, fn func(ctx context.Context)) {
	t.Helper()
	allowedDuration := Timeout()
	ctx, cancel := context.WithTimeout(context.Background(), allowedDuration)
	defer func() {
		if ctx.Err() != nil {
			t.Errorf("test took too long to execute (> %v)", allowedDuration)
		}
		cancel()
	}()
	for range 3 {
		if ctx.Err() != nil {
			break
		}
		fn(ctx)
	}
}
