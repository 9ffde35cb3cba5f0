package booking

import "errors"

var (
	ErrInvalidFilter     = errors.New("filter must be one of all, confirmed, pending")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

// Status is the single source of truth for a booking's state; the remote
// verified flag is derived from it.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func StatusFromVerified(verified bool) Status {
	if verified {
		return StatusConfirmed
	}
	return StatusPending
}

func (s Status) Verified() bool {
	return s == StatusConfirmed
}

type Filter string

const (
	FilterAll       Filter = "all"
	FilterConfirmed Filter = "confirmed"
	FilterPending   Filter = "pending"
)

func ParseFilter(s string) (Filter, error) {
	switch f := Filter(s); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterConfirmed, FilterPending:
		return f, nil
	default:
		return "", ErrInvalidFilter
	}
}

func (f Filter) Matches(s Status) bool {
	switch f {
	case FilterConfirmed:
		return s == StatusConfirmed
	case FilterPending:
		return s == StatusPending
	default:
		return true
	}
}
