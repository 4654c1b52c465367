// path: reports/submitter.go
package reports

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"lostid/metrics"
	"lostid/models"
	"lostid/notify"
	"lostid/store"
)

// Submission is the raw form data handed to Submit.
type Submission struct {
	Name        string
	Surname     string
	IDNumber    string
	Reason      string
	DateLost    string // YYYY-MM-DD
	SelfieImage string // encoded blob from the capture device, opaque here
}

// Submitter runs the submission pipeline:
//
//	FormatCheck -> ExistenceCheck -> DuplicateCheck -> Persist -> NotifyFanout
//
// Each stage is a precondition for the next and the first failure halts the
// run. Notification fan-out happens after the report is durably recorded and
// its outcome never changes the result.
type Submitter struct {
	store      store.ReportStore
	checker    ExistenceChecker
	dispatcher *notify.Dispatcher
	log        *log.Logger
	metrics    *metrics.Metrics
	now        func() time.Time
}

func NewSubmitter(st store.ReportStore, checker ExistenceChecker, d *notify.Dispatcher, logger *log.Logger, m *metrics.Metrics) *Submitter {
	return &Submitter{
		store:      st,
		checker:    checker,
		dispatcher: d,
		log:        logger,
		metrics:    m,
		now:        time.Now,
	}
}

// SetClock overrides the CreatedAt clock. Tests only.
func (s *Submitter) SetClock(now func() time.Time) { s.now = now }

// Submit runs the pipeline and returns the persisted report on success.
func (s *Submitter) Submit(ctx context.Context, sub Submission) (*models.LostIDReport, error) {
	r, err := s.submit(ctx, sub)
	if s.metrics != nil {
		s.metrics.ReportsSubmitted.WithLabelValues(outcomeLabel(err)).Inc()
	}
	return r, err
}

func (s *Submitter) submit(ctx context.Context, sub Submission) (*models.LostIDReport, error) {
	// FormatCheck: no network calls before this passes.
	if err := validateSubmission(sub); err != nil {
		return nil, err
	}

	// ExistenceCheck: unknown status is a failure, never a pass.
	exists, err := s.checker.CheckExists(ctx, sub.IDNumber)
	if err != nil {
		return nil, &VerificationError{Stage: "existence", Err: err}
	}
	if !exists {
		return nil, ErrIdentityNotRecognized
	}

	// DuplicateCheck: cheap early rejection; the store's unique index is the
	// authority when two submissions race.
	dup, err := s.store.HasReport(ctx, sub.IDNumber)
	if err != nil {
		return nil, &VerificationError{Stage: "duplicates", Err: err}
	}
	if dup {
		return nil, ErrAlreadyReported
	}

	// Persist.
	rec := models.LostIDReport{
		Name:        strings.TrimSpace(sub.Name),
		Surname:     strings.TrimSpace(sub.Surname),
		IDNumber:    sub.IDNumber,
		Reason:      strings.TrimSpace(sub.Reason),
		DateLost:    sub.DateLost,
		SelfieImage: sub.SelfieImage,
		CreatedAt:   s.now().UTC(),
	}
	id, err := s.store.Insert(ctx, &rec)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateIDNumber) {
			return nil, ErrAlreadyReported
		}
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}

	// NotifyFanout: fire-and-forget, the report already exists.
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(notify.Notification{
			ReportID: id,
			Name:     rec.Name,
			Surname:  rec.Surname,
			IDNumber: rec.IDNumber,
			Reason:   rec.Reason,
		})
	}

	s.log.Printf("report %s submitted for id number %s", id, rec.IDNumber)
	return &rec, nil
}

func validateSubmission(sub Submission) error {
	required := []struct{ field, value string }{
		{"name", sub.Name},
		{"surname", sub.Surname},
		{"idNumber", sub.IDNumber},
		{"reason", sub.Reason},
		{"dateLost", sub.DateLost},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.field, Msg: "is required"}
		}
	}
	if sub.SelfieImage == "" {
		return &ValidationError{Field: "selfieImage", Msg: "capture a selfie before submitting"}
	}
	if !ValidIDNumber(sub.IDNumber) {
		return &ValidationError{Field: "idNumber", Msg: "must be exactly 13 digits"}
	}
	if _, err := time.Parse(models.DateLostLayout, sub.DateLost); err != nil {
		return &ValidationError{Field: "dateLost", Msg: "must be a YYYY-MM-DD date"}
	}
	return nil
}

func outcomeLabel(err error) string {
	var ve *ValidationError
	var vfe *VerificationError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &ve):
		return "validation"
	case errors.Is(err, ErrIdentityNotRecognized):
		return "not_recognized"
	case errors.As(err, &vfe):
		return "verification_unavailable"
	case errors.Is(err, ErrAlreadyReported):
		return "already_reported"
	case errors.Is(err, ErrPersist):
		return "persist_error"
	default:
		return "error"
	}
}
