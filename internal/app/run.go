package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/shandysiswandi/gomailer/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailer/internal/pkg/stacktrace"
)

// ErrPanic marks a run that was aborted by a recovered panic.
var ErrPanic = errors.New("panic while running dispatches")

// Run sends the configured dispatches once.
func (a *App) Run() (err error) {
	defer func() {
		if rvr := recover(); rvr != nil {
			stack := debug.Stack()
			if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
				slog.ErrorContext(a.ctx, "panic occurred", "panic", rvr, "stack", paths)
			} else {
				slog.ErrorContext(a.ctx, "panic occurred", "panic", rvr, "stack", string(stack))
			}
			err = fmt.Errorf("%w: %v", ErrPanic, rvr)
		}
	}()

	slog.InfoContext(a.ctx, "running dispatches",
		"app", a.config.GetString("app.name"),
		"services", a.locator.Keys(),
	)

	return a.runner.Run(a.ctx)
}

// Stop releases resources in order, logging failures instead of returning them.
func (a *App) Stop(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}

	for _, closer := range a.closers {
		if err := closer.fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", closer.name, "error", err)
		}
	}
}

// ExitCode maps the result of Run to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var ge *goerror.Error
	if errors.As(err, &ge) {
		return ge.ExitCode()
	}

	return 1
}
