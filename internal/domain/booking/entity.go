package booking

import "venue-booking/internal/domain/venue"

type Booking struct {
	ID      int64     `json:"id"`
	UserID  int64     `json:"user_id"`
	VenueID int64     `json:"venue_id"`
	Dates   DateRange `json:"dates"`
	Status  Status    `json:"status"`
	Guest   Contact   `json:"guest"`
}

// Key identifies a booking inside view lists.
func (b Booking) Key() int64 {
	return b.ID
}

func (b Booking) Verified() bool {
	return b.Status.Verified()
}

// Accept moves a pending booking to confirmed. Accepting a confirmed booking
// is a no-op and reports changed=false.
func (b Booking) Accept() (next Booking, changed bool, err error) {
	switch b.Status {
	case StatusPending:
		b.Status = StatusConfirmed
		return b, true, nil
	case StatusConfirmed:
		return b, false, nil
	default:
		return b, false, ErrInvalidTransition
	}
}

// Revert moves a confirmed booking back to pending without deleting it.
func (b Booking) Revert() (next Booking, changed bool, err error) {
	switch b.Status {
	case StatusConfirmed:
		b.Status = StatusPending
		return b, true, nil
	case StatusPending:
		return b, false, nil
	default:
		return b, false, ErrInvalidTransition
	}
}

func (b Booking) Cancel() (Booking, error) {
	if b.Status == StatusCancelled {
		return b, ErrInvalidTransition
	}
	b.Status = StatusCancelled
	return b, nil
}

// New is a booking to be created upstream; the remote API assigns the id.
type New struct {
	UserID  int64
	VenueID int64
	Dates   DateRange
}

// GuestBooking is a guest's booking joined with the venue it is for.
type GuestBooking struct {
	Booking
	Venue venue.Venue `json:"venue"`
}

// VenueBookings is one owned venue with the bookings made against it.
type VenueBookings struct {
	Venue    venue.Venue `json:"venue"`
	Bookings []Booking   `json:"bookings"`
}

// Cancellation is the record kept after a guest cancels.
type Cancellation struct {
	VenueName    string    `json:"venue_name"`
	VenueAddress string    `json:"venue_address"`
	UserID       int64     `json:"user_id"`
	Username     string    `json:"user_name"`
	Dates        DateRange `json:"dates"`
	Reason       string    `json:"reason"`
}

// Notification is addressed to a venue owner.
type Notification struct {
	RecipientID int64
	BookingID   int64
	Message     string
}

// CancellationNotice tells the owner which range was freed.
func CancellationNotice(b GuestBooking) Notification {
	return Notification{
		RecipientID: b.Venue.OwnerID,
		BookingID:   b.ID,
		Message:     "Booking canceled for " + b.Venue.Name + " (" + b.Dates.String() + ")",
	}
}
