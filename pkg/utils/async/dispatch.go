package async

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/m-mizutani/ctxlog"
)

// Dispatch runs handler in its own goroutine on a background context that
// keeps the caller's logger. Errors and panics are logged, never returned.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)
	go run(newCtx, handler)
}

// Group tracks dispatched handlers so a caller can wait for them, for example
// before shutting down.
type Group struct {
	wg sync.WaitGroup
}

// Dispatch works like the package-level Dispatch and registers the handler
// with the group.
func (g *Group) Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		run(newCtx, handler)
	}()
}

// Wait blocks until every handler dispatched through the group has returned
// or ctx is done.
func (g *Group) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func run(ctx context.Context, handler func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			ctxlog.From(ctx).Error("Panic in async handler",
				"recover", r,
				"stack", string(debug.Stack()),
			)
		}
	}()

	if err := handler(ctx); err != nil {
		ctxlog.From(ctx).Error("Error in async handler",
			"error", err,
		)
	}
}

// newBackgroundContext detaches from the caller's cancellation but keeps its logger
func newBackgroundContext(ctx context.Context) context.Context {
	newCtx := context.Background()
	if logger := ctxlog.From(ctx); logger != nil {
		newCtx = ctxlog.With(newCtx, logger)
	}
	return newCtx
}
