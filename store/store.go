// path: store/store.go
package store

import (
	"context"
	"errors"

	"lostid/models"
)

var (
	// ErrDuplicateIDNumber is returned by Insert when a report with the same
	// id number is already persisted.
	ErrDuplicateIDNumber = errors.New("id number already reported")
	// ErrDecode is returned when a persisted document cannot be decoded into
	// a valid LostIDReport.
	ErrDecode = errors.New("malformed report document")
	// ErrNotFound is returned by lookups that match nothing.
	ErrNotFound = errors.New("not found")
)

// ListQuery narrows List results. Zero value returns everything.
type ListQuery struct {
	// Search matches case-insensitive substrings of name, or substrings of
	// the id number.
	Search string
	// Limit caps the number of rows; <=0 means no cap.
	Limit int
}

// ReportStore is the document-store contract the submission pipeline and the
// reporting surface depend on. Implementations: Mongo for production, Memory
// for tests.
type ReportStore interface {
	// Insert persists the report, assigns CreatedAt-ordered storage identity
	// and returns the new id. Reports with an id number already present fail
	// with ErrDuplicateIDNumber.
	Insert(ctx context.Context, r *models.LostIDReport) (string, error)
	// HasReport reports whether any persisted report carries the id number.
	HasReport(ctx context.Context, idNumber string) (bool, error)
	// List returns reports newest-first, filtered by q.
	List(ctx context.Context, q ListQuery) ([]models.LostIDReport, error)
	// Count returns the number of persisted reports.
	Count(ctx context.Context) (int64, error)
}

// UserStore keeps identity-provider account mirrors.
type UserStore interface {
	// Upsert creates or refreshes the user keyed by its provider subject.
	Upsert(ctx context.Context, u *models.User) error
	Get(ctx context.Context, id string) (*models.User, error)
}
