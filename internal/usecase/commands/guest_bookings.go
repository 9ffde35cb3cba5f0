package commands

import (
	"context"
	"log/slog"
	"sync"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/session"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

var ErrCancelNotConfirmed = errs.New("Cancellation must be confirmed")

type CancelInput struct {
	Confirm bool
	Reason  string
	// Notify tells the venue owner; nil means yes.
	Notify *bool
}

func (in CancelInput) notify() bool {
	return in.Notify == nil || *in.Notify
}

type GuestBookingsCommands interface {
	Load(ctx context.Context, sessionID string) (*queries.GuestBookingsView, error)
	Filter(ctx context.Context, sessionID string, f booking.Filter) (*queries.GuestBookingsView, error)
	Cancel(ctx context.Context, sessionID string, bookingID int64, in CancelInput) (*queries.GuestBookingsView, error)
}

type guestBookingsCommandsImpl struct {
	store         shared.SessionStore
	guard         shared.ActionGuard
	decoder       shared.TokenDecoder
	venues        shared.VenueGateway
	bookings      shared.BookingGateway
	notifications shared.NotificationGateway
	cfg           config.BookingConfig
}

func NewGuestBookingsCommands(
	store shared.SessionStore,
	guard shared.ActionGuard,
	decoder shared.TokenDecoder,
	venues shared.VenueGateway,
	bookings shared.BookingGateway,
	notifications shared.NotificationGateway,
	cfg config.BookingConfig,
) GuestBookingsCommands {
	return &guestBookingsCommandsImpl{
		store:         store,
		guard:         guard,
		decoder:       decoder,
		venues:        venues,
		bookings:      bookings,
		notifications: notifications,
		cfg:           cfg,
	}
}

func (g *guestBookingsCommandsImpl) Load(ctx context.Context, sessionID string) (*queries.GuestBookingsView, error) {
	caller, err := shared.Identify(ctx, g.store, g.decoder, sessionID)
	if err != nil {
		return nil, err
	}

	var gen uint64
	if _, err := g.store.Update(ctx, sessionID, func(s *session.Session) error {
		gen = s.Guest.Begin()
		return nil
	}); err != nil {
		return nil, err
	}

	all, err := g.bookings.ListUserBookings(ctx, caller.Token, caller.Identity.UserID)
	if err != nil {
		return nil, err
	}
	own := make([]booking.Booking, 0, len(all))
	for _, b := range all {
		if b.UserID == caller.Identity.UserID {
			own = append(own, b)
		}
	}

	resolved := g.resolveVenues(ctx, caller.Token, own)
	joined := make([]booking.GuestBooking, 0, len(own))
	for _, b := range own {
		joined = append(joined, booking.GuestBooking{Booking: b, Venue: resolved[b.VenueID]})
	}

	sess, err := g.store.Update(ctx, sessionID, func(s *session.Session) error {
		if !s.Guest.Accepts(gen) {
			return errs.Mark(errs.Newf("guest bookings load %d superseded", gen), errs.ErrStaleResponse)
		}
		s.Guest.Bookings = joined
		s.Guest.Loaded = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	view := queries.NewGuestBookingsView(sess.Guest)
	return &view, nil
}

// resolveVenues looks every distinct venue up concurrently. A failed lookup
// yields a placeholder for that venue and never stops the others.
func (g *guestBookingsCommandsImpl) resolveVenues(ctx context.Context, token string, bookings []booking.Booking) map[int64]venue.Venue {
	out := make(map[int64]venue.Venue, len(bookings))
	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		if _, seen := out[b.VenueID]; !seen {
			out[b.VenueID] = venue.Placeholder(b.VenueID)
			ids = append(ids, b.VenueID)
		}
	}

	var mu sync.Mutex
	var eg errgroup.Group
	eg.SetLimit(max(g.cfg.GuestFanoutLimit, 1))
	for _, id := range ids {
		eg.Go(func() error {
			v, err := g.venues.GetVenueByID(ctx, token, id)
			if err != nil {
				slog.WarnContext(ctx, "venue lookup failed, using placeholder", "venue_id", id, "error", err.Error())
				return nil
			}
			mu.Lock()
			out[id] = v
			mu.Unlock()
			return nil
		})
	}
	_ = eg.Wait()
	return out
}

func (g *guestBookingsCommandsImpl) Filter(ctx context.Context, sessionID string, f booking.Filter) (*queries.GuestBookingsView, error) {
	if _, err := shared.Identify(ctx, g.store, g.decoder, sessionID); err != nil {
		return nil, err
	}
	sess, err := g.store.Update(ctx, sessionID, func(s *session.Session) error {
		s.Guest.Filter = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	view := queries.NewGuestBookingsView(sess.Guest)
	return &view, nil
}

// Cancel deletes the booking once. The owner notification and the
// cancellation record follow on a best effort basis.
func (g *guestBookingsCommandsImpl) Cancel(ctx context.Context, sessionID string, bookingID int64, in CancelInput) (*queries.GuestBookingsView, error) {
	if !in.Confirm {
		return nil, errs.Mark(ErrCancelNotConfirmed, errs.ErrConfirmationMissing)
	}
	caller, err := shared.Identify(ctx, g.store, g.decoder, sessionID)
	if err != nil {
		return nil, err
	}
	target, ok := booking.Find(caller.Session.Guest.Bookings, bookingID)
	if !ok {
		return nil, errs.Mark(ErrBookingNotListed, errs.ErrNotFound)
	}
	if target.UserID != caller.Identity.UserID {
		return nil, errs.Mark(errs.Newf("booking %d belongs to another user", bookingID), errs.ErrForbidden)
	}
	cancelled, err := target.Booking.Cancel()
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "cancel booking %d", bookingID), errs.ErrConflict)
	}
	target.Booking = cancelled

	var view *queries.GuestBookingsView
	err = shared.Guarded(ctx, g.guard, shared.GuardKey(sessionID, "cancel", bookingID), func() error {
		if err := g.bookings.DeleteBooking(ctx, caller.Token, bookingID); err != nil {
			return err
		}
		sess, err := g.store.Update(ctx, sessionID, func(s *session.Session) error {
			s.Guest.Bookings, _ = booking.Remove(s.Guest.Bookings, bookingID)
			return nil
		})
		if err != nil {
			return err
		}
		v := queries.NewGuestBookingsView(sess.Guest)
		view = &v
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking cancelled", "booking_id", bookingID, "user_id", caller.Identity.UserID)
	g.afterCancel(ctx, caller, target, in)
	return view, nil
}

func (g *guestBookingsCommandsImpl) afterCancel(ctx context.Context, caller shared.Caller, gb booking.GuestBooking, in CancelInput) {
	ctx = context.WithoutCancel(ctx)

	if in.notify() && !gb.Venue.Placeholder && gb.Venue.OwnerID != 0 {
		if err := g.notifications.Notify(ctx, caller.Token, booking.CancellationNotice(gb)); err != nil {
			slog.WarnContext(ctx, "cancel notification failed", "booking_id", gb.ID, "error", err.Error())
		}
	}

	if !g.cfg.RecordCancellations {
		return
	}
	record := booking.Cancellation{
		VenueName:    gb.Venue.Name,
		VenueAddress: gb.Venue.Address,
		UserID:       caller.Identity.UserID,
		Dates:        gb.Dates,
		Reason:       in.Reason,
	}
	if p := caller.Session.Profile; p != nil {
		record.Username = p.Username
	}
	if err := g.bookings.RecordCancellation(ctx, caller.Token, record); err != nil {
		slog.WarnContext(ctx, "cancellation record failed", "booking_id", gb.ID, "error", err.Error())
	}
}
