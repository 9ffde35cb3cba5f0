//go:build unit || e2e

package builder

import (
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/venue"
)

type BookingBuilder struct {
	ID      int64
	UserID  int64
	VenueID int64
	Start   string
	End     string
	Status  booking.Status
	Guest   booking.Contact
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:      10,
		UserID:  2,
		VenueID: 1,
		Start:   "2024-01-10",
		End:     "2024-01-12",
		Status:  booking.StatusPending,
		Guest:   booking.Contact{Username: "guest", Email: "guest@example.com"},
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() booking.Booking {
	return booking.Booking{
		ID:      b.ID,
		UserID:  b.UserID,
		VenueID: b.VenueID,
		Dates:   Dates(b.Start, b.End),
		Status:  b.Status,
		Guest:   b.Guest,
	}
}

func (b *BookingBuilder) BuildGuest(v venue.Venue) booking.GuestBooking {
	return booking.GuestBooking{Booking: b.BuildDomain(), Venue: v}
}

// Dates panics on bad input; test data is expected to be well formed.
func Dates(start, end string) booking.DateRange {
	s, err := time.Parse(booking.DateLayout, start)
	if err != nil {
		panic(err)
	}
	e, err := time.Parse(booking.DateLayout, end)
	if err != nil {
		panic(err)
	}
	r, err := booking.NewDateRange(s, e)
	if err != nil {
		panic(err)
	}
	return r
}
