// path: reports/errors.go
package reports

import (
	"errors"
	"fmt"
)

var (
	// ErrIdentityNotRecognized means the registry lookup answered "unknown".
	ErrIdentityNotRecognized = errors.New("identity not recognized")
	// ErrAlreadyReported means a report for the id number already exists.
	ErrAlreadyReported = errors.New("this id number has already been reported")
	// ErrPersist tags store write failures; the caller may retry the whole
	// submission.
	ErrPersist = errors.New("submission failed")
)

// ValidationError rejects a submission before any network call is made.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// VerificationError means a verification stage could not complete. Unknown
// status is never treated as pass; the caller should retry later.
type VerificationError struct {
	Stage string // "existence" or "duplicates"
	Err   error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("%s check unavailable: %v", e.Stage, e.Err)
}

func (e *VerificationError) Unwrap() error { return e.Err }
