package besteffort

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_SwallowsError(t *testing.T) {
	ran := false
	Run(context.Background(), discardLogger(), "failing", func(context.Context) error {
		ran = true
		return errors.New("boom")
	})
	if !ran {
		t.Fatal("task did not run")
	}
}

func TestRun_RecoversPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic escaped Run: %v", r)
		}
	}()
	Run(context.Background(), discardLogger(), "panicking", func(context.Context) error {
		panic("boom")
	})
}
