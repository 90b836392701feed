// Package notification delivers notifications to their sinks after a short delay.
package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/spendxp/backend/internal/application/adapter"
	"github.com/spendxp/backend/internal/domain/entity"
)

// DefaultDelay is the pause between a committed change and its notification.
const DefaultDelay = 500 * time.Millisecond

// Dispatcher implements adapter.Notifier. Each notification is delivered on
// its own goroutine, so two notifications may arrive in either order.
type Dispatcher struct {
	sinks []adapter.NotificationSink
	delay time.Duration

	mu     sync.Mutex
	base   context.Context
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a dispatcher that fans out to sinks.
func NewDispatcher(delay time.Duration, sinks ...adapter.NotificationSink) *Dispatcher {
	return &Dispatcher{
		sinks: sinks,
		delay: delay,
		base:  context.Background(),
	}
}

// Notify schedules delivery. It returns immediately. The caller's context is
// not used for delivery so that ending a request does not cancel it. After
// shutdown has begun new notifications are dropped.
func (d *Dispatcher) Notify(_ context.Context, n *entity.Notification) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		slog.Warn("Notification dropped on shutdown", "account", n.AccountKey, "kind", n.Kind)
		return
	}
	base := d.base
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()

		timer := time.NewTimer(d.delay)
		defer timer.Stop()

		select {
		case <-base.Done():
			slog.Warn("Notification dropped on shutdown", "account", n.AccountKey, "kind", n.Kind)
			return
		case <-timer.C:
		}

		for _, sink := range d.sinks {
			if err := sink.Deliver(base, n); err != nil {
				slog.Error("Failed to deliver notification",
					"sink", sink.Name(),
					"account", n.AccountKey,
					"kind", n.Kind,
					"error", err,
				)
			}
		}
	}()
}

// Run ties pending deliveries to ctx. It blocks until ctx is cancelled and
// every in-flight delivery has finished.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.mu.Lock()
	d.base = ctx
	d.mu.Unlock()

	slog.Info("Notification dispatcher started", "delay", d.delay, "sinks", len(d.sinks))
	<-ctx.Done()

	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	d.wg.Wait()
	slog.Info("Notification dispatcher stopped")
	return nil
}

// Wait blocks until every scheduled delivery has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

var _ adapter.Notifier = (*Dispatcher)(nil)
