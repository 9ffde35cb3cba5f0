package remote

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"venue-booking/internal/pkg/errs"

	"github.com/goccy/go-json"
)

type ErrorKind string

// Remote API failure kinds
const (
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
	KindForbidden    ErrorKind = "FORBIDDEN"
	KindBadRequest   ErrorKind = "BAD_REQUEST"
	KindConflict     ErrorKind = "CONFLICT"
	KindUnavailable  ErrorKind = "UNAVAILABLE"
	KindUnknown      ErrorKind = "UNKNOWN"
)

// APIError is a failed call to the remote API. Detail and Fields hold what
// the API said about the failure, when it said anything.
type APIError struct {
	Kind       ErrorKind
	Method     string
	Path       string
	StatusCode int
	Detail     string
	Fields     map[string][]string
	err        error // transport error, if any
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s %s", e.Kind, e.Method, e.Path)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " -> %d", e.StatusCode)
	}
	if msg := e.Message(); msg != "" {
		b.WriteString(": " + msg)
	}
	if e.err != nil {
		b.WriteString(": " + e.err.Error())
	}
	return b.String()
}

func (e *APIError) Unwrap() error {
	return e.err
}

// Is lets callers test remote failures against the shared sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case errs.ErrNotFound:
		return e.Kind == KindNotFound
	case errs.ErrUnauthenticated:
		return e.Kind == KindUnauthorized
	case errs.ErrForbidden:
		return e.Kind == KindForbidden
	case errs.ErrRemoteRejected:
		return e.Kind == KindBadRequest || e.Kind == KindConflict
	case errs.ErrRemoteUnavailable:
		return e.Kind == KindUnavailable || e.Kind == KindUnknown
	}
	return false
}

// Message is the most specific human readable text the API returned.
func (e *APIError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	for _, k := range e.fieldKeys() {
		if msgs := e.Fields[k]; len(msgs) > 0 {
			return msgs[0]
		}
	}
	if e.StatusCode != 0 {
		return http.StatusText(e.StatusCode)
	}
	return ""
}

// FieldMessages flattens Fields to one message per field.
func (e *APIError) FieldMessages() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for k, msgs := range e.Fields {
		if len(msgs) > 0 {
			out[k] = msgs[0]
		}
	}
	return out
}

func (e *APIError) fieldKeys() []string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func IsKind(err error, kind ErrorKind) bool {
	var e *APIError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// AsAPIError exposes the remote failure behind err, if there is one.
func AsAPIError(err error) (*APIError, bool) {
	var e *APIError
	if errs.As(err, &e) {
		return e, true
	}
	return nil, false
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusConflict:
		return KindConflict
	case status >= 400 && status < 500:
		return KindBadRequest
	case status >= 500:
		return KindUnavailable
	default:
		return KindUnknown
	}
}

// parseErrorBody understands the shapes a REST framework error takes:
// {"detail": "..."}, {"field": ["..."]}, and a bare ["..."] list.
func parseErrorBody(body []byte) (detail string, fields map[string][]string) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return strings.TrimSpace(string(body)), nil
	}

	switch v := raw.(type) {
	case string:
		return v, nil
	case []any:
		return strings.Join(toStrings(v), " "), nil
	case map[string]any:
		fields = map[string][]string{}
		for k, val := range v {
			switch x := val.(type) {
			case string:
				if k == "detail" || k == "error" || k == "message" {
					detail = x
					continue
				}
				fields[k] = []string{x}
			case []any:
				if k == "non_field_errors" {
					detail = strings.Join(toStrings(x), " ")
					continue
				}
				fields[k] = toStrings(x)
			}
		}
		if len(fields) == 0 {
			fields = nil
		}
	}
	return detail, fields
}

func toStrings(vs []any) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		if s, ok := v.(string); ok {
			out = append(out, s)
		} else {
			out = append(out, fmt.Sprint(v))
		}
	}
	return out
}
