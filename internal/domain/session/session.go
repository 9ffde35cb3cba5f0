package session

import (
	"errors"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/domain/venue"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNoPendingIntent = errors.New("no pending booking intent")
	ErrIntentMismatch  = errors.New("payment does not match the pending booking")
)

type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Session is everything one browser keeps between requests: its tokens,
// the cached profile, a pending booking intent and the state of each view.
type Session struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Tokens    Tokens          `json:"tokens"`
	Profile   *user.Profile   `json:"profile,omitempty"`
	Intent    *booking.Intent `json:"intent,omitempty"`
	Catalog   CatalogView     `json:"catalog"`
	Wizard    venue.Wizard    `json:"wizard"`
	Guest     GuestView       `json:"guest"`
	Owner     OwnerView       `json:"owner"`
}

func New(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		Wizard:    venue.NewWizard(),
		Guest:     GuestView{Filter: booking.FilterAll},
	}
}

func (s *Session) SignIn(tokens Tokens, profile user.Profile) {
	s.Clear()
	s.Tokens = tokens
	s.Profile = &profile
}

// Clear forgets the signed-in user along with every view that belongs to
// them. Loads still in flight for the old user are discarded on arrival.
func (s *Session) Clear() {
	s.Tokens = Tokens{}
	s.Profile = nil
	s.Intent = nil
	s.Wizard = venue.NewWizard()
	s.Guest = GuestView{Loader: s.Guest.Loader, Filter: booking.FilterAll}
	s.Guest.Begin()
	s.Owner = OwnerView{Loader: s.Owner.Loader}
	s.Owner.Begin()
}

func (s *Session) HasToken() bool {
	return s.Tokens.Access != ""
}

// TakeIntent removes and returns the pending intent, so that only one
// caller can ever act on it.
func (s *Session) TakeIntent() (booking.Intent, error) {
	if s.Intent == nil {
		return booking.Intent{}, ErrNoPendingIntent
	}
	in := *s.Intent
	s.Intent = nil
	return in, nil
}

// Loader discards responses to superseded loads. Begin is called when a
// fetch starts; the result is applied only if Accepts still holds.
type Loader struct {
	Generation uint64 `json:"generation"`
}

func (l *Loader) Begin() uint64 {
	l.Generation++
	return l.Generation
}

func (l Loader) Accepts(gen uint64) bool {
	return l.Generation == gen
}

type CatalogView struct {
	Loader
	Catalog venue.Catalog `json:"catalog"`
	Error   string        `json:"error,omitempty"`
	Loaded  bool          `json:"loaded"`
}

type GuestView struct {
	Loader
	Bookings []booking.GuestBooking `json:"bookings"`
	Filter   booking.Filter         `json:"filter"`
	Loaded   bool                   `json:"loaded"`
}

func (g GuestView) Visible() []booking.GuestBooking {
	return booking.FilterBy(g.Bookings, g.Filter)
}

type OwnerView struct {
	Loader
	Venues []booking.VenueBookings `json:"venues"`
	Loaded bool                    `json:"loaded"`
}
