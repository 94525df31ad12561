// Package clock provides context-aware waiting for polling loops.
package clock

import (
	"context"
	"time"
)

// Sleep blocks for d or until the context is done, whichever comes first.
// A non-positive duration returns immediately after a context check, so
// callers can pass a configured interval without special-casing zero.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
