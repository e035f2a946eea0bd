package usecase

import (
	"context"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/partner-agent/invitecheck/pkg/domain/interfaces"
	"github.com/partner-agent/invitecheck/pkg/domain/model"
	"github.com/partner-agent/invitecheck/pkg/utils/async"
)

// EventHandler reacts to an invitation event
type EventHandler func(ctx context.Context, event model.Event) error

// Dispatcher fans invitation events out to the handlers registered for their
// kind. Handlers run asynchronously and never affect the check that raised
// the event.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[model.EventKind][]EventHandler
	group    async.Group
}

// NewDispatcher creates a Dispatcher with no handlers
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[model.EventKind][]EventHandler),
	}
}

// On registers handler for events of kind
func (d *Dispatcher) On(kind model.EventKind, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[kind] = append(d.handlers[kind], handler)
}

// Subscribe registers the notifier for every event kind
func (d *Dispatcher) Subscribe(notifier interfaces.Notifier) {
	for _, kind := range []model.EventKind{model.EventInvitationChecked, model.EventInvitationRejected} {
		d.On(kind, notifier.Notify)
	}
}

// Publish hands event to each registered handler in its own goroutine
func (d *Dispatcher) Publish(ctx context.Context, event model.Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	handlers := append([]EventHandler(nil), d.handlers[event.Kind]...)
	d.mu.RUnlock()

	if len(handlers) == 0 {
		ctxlog.From(ctx).Debug("No handler for invitation event", "kind", event.Kind)
		return
	}

	for _, handler := range handlers {
		d.group.Dispatch(ctx, func(ctx context.Context) error {
			return handler(ctx, event)
		})
	}
}

// Wait blocks until published events have been handled or ctx is done
func (d *Dispatcher) Wait(ctx context.Context) error {
	if d == nil {
		return nil
	}
	return d.group.Wait(ctx)
}
