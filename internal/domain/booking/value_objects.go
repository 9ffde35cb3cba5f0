package booking

import (
	"errors"
	"strings"
	"time"

	"venue-booking/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

var (
	ErrDateRequired     = errors.New("date is required")
	ErrInvalidDate      = errors.New("date must use the YYYY-MM-DD format")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrAlreadyBooked    = errors.New("This venue is already booked for the selected dates")
)

// DateRange is an inclusive span of calendar dates, normalised to UTC midnight.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start, end = truncate(start), truncate(end)
	if start.After(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{Start: start, End: end}, nil
}

// ParseDateRange reports problems as field errors keyed start_date/end_date.
func ParseDateRange(start, end string) (DateRange, error) {
	fields := map[string]string{}
	s, err := parseDate(start)
	if err != nil {
		fields["start_date"] = err.Error()
	}
	e, err := parseDate(end)
	if err != nil {
		fields["end_date"] = err.Error()
	}
	if len(fields) > 0 {
		return DateRange{}, errs.NewValidation(fields)
	}

	r, err := NewDateRange(s, e)
	if err != nil {
		return DateRange{}, errs.Mark(errs.Field("end_date", err.Error()), ErrInvalidDateRange)
	}
	return r, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrDateRequired
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights is the whole number of days between start and end.
func (r DateRange) Nights() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// Overlaps treats both ends as booked days.
func (r DateRange) Overlaps(o DateRange) bool {
	return !r.Start.After(o.End) && !o.Start.After(r.End)
}

func (r DateRange) StartDate() string {
	return r.Start.Format(DateLayout)
}

func (r DateRange) EndDate() string {
	return r.End.Format(DateLayout)
}

func (r DateRange) String() string {
	return r.StartDate() + " - " + r.EndDate()
}

// Contact is the guest as the venue owner sees them.
type Contact struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (c Contact) PhoneOrNA() string {
	if c.Phone == "" {
		return "N/A"
	}
	return c.Phone
}
