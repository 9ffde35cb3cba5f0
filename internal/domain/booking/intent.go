package booking

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Intent is a booking waiting for its payment to complete. It is persisted
// before the payment redirect and consumed by the confirmation step.
type Intent struct {
	ID        uuid.UUID `json:"id"`
	UserID    int64     `json:"user_id"`
	VenueID   int64     `json:"venue_id"`
	VenueName string    `json:"venue_name"`
	Dates     DateRange `json:"dates"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// NewIntent prices the stay at nightlyRate per night, charging at least one.
func NewIntent(userID, venueID int64, venueName string, dates DateRange, nightlyRate float64, now time.Time) Intent {
	nights := max(dates.Nights(), 1)
	return Intent{
		ID:        uuid.New(),
		UserID:    userID,
		VenueID:   venueID,
		VenueName: venueName,
		Dates:     dates,
		Amount:    nightlyRate * float64(nights),
		CreatedAt: now,
	}
}

// AmountPaisa is the amount in the gateway's minor unit.
func (i Intent) AmountPaisa() int64 {
	return int64(math.Round(i.Amount * 100))
}

func (i Intent) Booking() New {
	return New{UserID: i.UserID, VenueID: i.VenueID, Dates: i.Dates}
}
