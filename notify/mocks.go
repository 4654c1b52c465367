// path: notify/mocks.go
package notify

import (
	"context"
	"log"
	"time"
)

// MockSAPS simulates the police notification channel: it logs the notice and
// sleeps for a short delivery delay. Real integration is out of scope.
type MockSAPS struct {
	Log   *log.Logger
	Delay time.Duration
}

func (m *MockSAPS) Name() string { return "saps" }

func (m *MockSAPS) Notify(ctx context.Context, n Notification) error {
	m.Log.Printf("mock: notifying SAPS about lost ID %s (report %s, reason %q)", n.IDNumber, n.ReportID, n.Reason)
	return sleepCtx(ctx, m.Delay)
}

// MockCreditBureau simulates the credit-bureau alert channel.
type MockCreditBureau struct {
	Log   *log.Logger
	Delay time.Duration
}

func (m *MockCreditBureau) Name() string { return "credit_bureau" }

func (m *MockCreditBureau) Notify(ctx context.Context, n Notification) error {
	m.Log.Printf("mock: alerting credit bureaus about lost ID %s (report %s)", n.IDNumber, n.ReportID)
	return sleepCtx(ctx, m.Delay)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
