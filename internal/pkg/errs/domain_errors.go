package errs

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors shared by the usecase and handler layers
var (
	// Input errors
	ErrValidation          = errors.New("validation failed")
	ErrConfirmationMissing = errors.New("confirmation required")

	// Identity errors
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")

	// State errors
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrActionInProgress = errors.New("action already in progress")
	ErrStaleResponse    = errors.New("stale response discarded")

	// Remote API errors
	ErrRemoteUnavailable = errors.New("remote api unavailable")
	ErrRemoteRejected    = errors.New("remote api rejected the request")
)

// ValidationError carries per-field messages keyed by field name.
type ValidationError struct {
	Fields map[string]string
}

func NewValidation(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// Field is a shorthand for a single-field validation error.
func Field(name, message string) error {
	return &ValidationError{Fields: map[string]string{name: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ValidationFields extracts the field map from anywhere in err's chain.
func ValidationFields(err error) (map[string]string, bool) {
	var ve *ValidationError
	if As(err, &ve) {
		return ve.Fields, true
	}
	return nil, false
}
