// path: notify/notify_test.go
package notify

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingNotifier struct {
	name string
	err  error

	mu    sync.Mutex
	calls int
}

func (c *countingNotifier) Name() string { return c.name }

func (c *countingNotifier) Notify(_ context.Context, _ Notification) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return c.err
}

func (c *countingNotifier) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestDispatch_ReachesAllNotifiers(t *testing.T) {
	a := &countingNotifier{name: "a"}
	b := &countingNotifier{name: "b"}
	d := NewDispatcher(log.New(io.Discard, "", 0), time.Second, nil, a, b)

	d.Dispatch(Notification{ReportID: "r1", IDNumber: "8001015009087"})
	d.Wait()

	assert.Equal(t, 1, a.count())
	assert.Equal(t, 1, b.count())
}

func TestDispatch_FailureIsContained(t *testing.T) {
	failing := &countingNotifier{name: "failing", err: errors.New("offline")}
	healthy := &countingNotifier{name: "healthy"}
	d := NewDispatcher(log.New(io.Discard, "", 0), time.Second, nil, failing, healthy)

	d.Dispatch(Notification{ReportID: "r1"})
	d.Dispatch(Notification{ReportID: "r2"})
	d.Wait()

	// both notifiers saw both dispatches; the failure never cancelled anything
	assert.Equal(t, 2, failing.count())
	assert.Equal(t, 2, healthy.count())
}

func TestMockNotifiersRespectContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	saps := &MockSAPS{Log: log.New(io.Discard, "", 0), Delay: time.Minute}
	err := saps.Notify(ctx, Notification{ReportID: "r1"})
	assert.ErrorIs(t, err, context.Canceled)
}
