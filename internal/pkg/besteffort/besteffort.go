// Package besteffort runs side effects that must never fail the caller.
package besteffort

import (
	"context"
	"log/slog"
)

// Run executes fn and converts any error or panic into a structured log event.
// Provisioning steps and notification dispatches all go through here, so
// failure isolation is one contract instead of scattered recover blocks.
func Run(ctx context.Context, log *slog.Logger, task string, fn func(context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("best-effort task panicked",
				"task", task,
				"panic", r,
			)
		}
	}()

	if err := fn(ctx); err != nil {
		log.Warn("best-effort task failed",
			"task", task,
			"error", err,
		)
	}
}
