// path: notify/notify.go
package notify

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"lostid/metrics"
)

// Notification is the payload sent to downstream agencies after a report is
// persisted. The selfie never leaves the store.
type Notification struct {
	ReportID string
	Name     string
	Surname  string
	IDNumber string
	Reason   string
}

// Notifier delivers one notice to one downstream agency.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, n Notification) error
}

// Dispatcher fans a notification out to every notifier. Dispatch is
// fire-and-forget: it returns immediately, each notifier runs concurrently
// under a shared deadline detached from the request, and a failure in one
// never affects the others or the persisted report.
type Dispatcher struct {
	notifiers []Notifier
	timeout   time.Duration
	log       *log.Logger
	metrics   *metrics.Metrics

	wg sync.WaitGroup
}

func NewDispatcher(logger *log.Logger, timeout time.Duration, m *metrics.Metrics, notifiers ...Notifier) *Dispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{
		notifiers: notifiers,
		timeout:   timeout,
		log:       logger,
		metrics:   m,
	}
}

func (d *Dispatcher) Dispatch(n Notification) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		var g errgroup.Group
		for _, nt := range d.notifiers {
			nt := nt
			g.Go(func() error {
				if err := nt.Notify(ctx, n); err != nil {
					// contained: observed, never propagated
					d.log.Printf("notify: %s failed for report %s: %v", nt.Name(), n.ReportID, err)
					if d.metrics != nil {
						d.metrics.NotificationsSent.WithLabelValues(nt.Name(), "error").Inc()
					}
					return nil
				}
				if d.metrics != nil {
					d.metrics.NotificationsSent.WithLabelValues(nt.Name(), "ok").Inc()
				}
				return nil
			})
		}
		_ = g.Wait()
	}()
}

// Wait blocks until every dispatched fan-out has finished. Tests and shutdown
// paths use it; request handling never does.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
