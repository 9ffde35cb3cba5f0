package shared

import (
	"context"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/session"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/identity"
)

// SessionStore persists sessions. Update runs fn on the latest copy and
// saves the result atomically; if fn fails nothing is saved.
type SessionStore interface {
	Create(ctx context.Context) (*session.Session, error)
	Get(ctx context.Context, id string) (*session.Session, error)
	Update(ctx context.Context, id string, fn func(*session.Session) error) (*session.Session, error)
	Delete(ctx context.Context, id string) error
}

// ActionGuard lets at most one holder run an action for a key at a time.
type ActionGuard interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

type TokenDecoder interface {
	Decode(token string) (identity.Claims, error)
}

type AccountGateway interface {
	ObtainToken(ctx context.Context, creds user.Credentials) (session.Tokens, error)
	GetProfile(ctx context.Context, token, username string) (user.Profile, error)
	CreateAccount(ctx context.Context, reg user.Registration) error
	CreateProfile(ctx context.Context, reg user.Registration) error
}

type VenueGateway interface {
	ListVenues(ctx context.Context) ([]venue.Venue, error)
	// GetVenue returns the venue with the bookings already held against it.
	GetVenue(ctx context.Context, id int64) (booking.VenueBookings, error)
	GetVenueByID(ctx context.Context, token string, id int64) (venue.Venue, error)
	ListOwnerVenues(ctx context.Context, token string, ownerID int64) ([]booking.VenueBookings, error)
	RegisterVenue(ctx context.Context, token string, reg venue.Registration) (venue.Venue, error)
}

// BookingMutation decides the next state of a freshly fetched booking.
// Returning changed=false skips the write.
type BookingMutation func(current booking.Booking) (next booking.Booking, changed bool, err error)

type BookingGateway interface {
	ListUserBookings(ctx context.Context, token string, userID int64) ([]booking.Booking, error)
	CreateBooking(ctx context.Context, token string, nb booking.New) (booking.Booking, error)
	// ModifyBooking reads the current record, applies mutate and writes the
	// merged record back, leaving fields it does not know about untouched.
	ModifyBooking(ctx context.Context, token string, id int64, mutate BookingMutation) (booking.Booking, error)
	DeleteBooking(ctx context.Context, token string, id int64) error
	ListCancellations(ctx context.Context, token string, userID int64) ([]booking.Cancellation, error)
	RecordCancellation(ctx context.Context, token string, c booking.Cancellation) error
}

type PaymentGateway interface {
	InitiatePayment(ctx context.Context, token string, req PaymentRequest) (PaymentRedirect, error)
}

type NotificationGateway interface {
	Notify(ctx context.Context, token string, n booking.Notification) error
}
