package commands

import (
	"context"
	"log/slog"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/session"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/shared"
)

var (
	ErrRejectNotConfirmed = errs.New("Rejection must be confirmed")
	ErrBookingNotListed   = errs.New("Booking not found. Reload the list and try again.")
)

type OwnerBookingsCommands interface {
	Load(ctx context.Context, sessionID string) (*queries.OwnerBookingsView, error)
	Accept(ctx context.Context, sessionID string, bookingID int64) (*queries.OwnerBookingsView, error)
	// Reject deletes the booking; confirm must be true.
	Reject(ctx context.Context, sessionID string, bookingID int64, confirm bool) (*queries.OwnerBookingsView, error)
	// Revert puts a confirmed booking back to pending.
	Revert(ctx context.Context, sessionID string, bookingID int64) (*queries.OwnerBookingsView, error)
}

type ownerBookingsCommandsImpl struct {
	store    shared.SessionStore
	guard    shared.ActionGuard
	decoder  shared.TokenDecoder
	venues   shared.VenueGateway
	bookings shared.BookingGateway
}

func NewOwnerBookingsCommands(
	store shared.SessionStore,
	guard shared.ActionGuard,
	decoder shared.TokenDecoder,
	venues shared.VenueGateway,
	bookings shared.BookingGateway,
) OwnerBookingsCommands {
	return &ownerBookingsCommandsImpl{
		store:    store,
		guard:    guard,
		decoder:  decoder,
		venues:   venues,
		bookings: bookings,
	}
}

func (o *ownerBookingsCommandsImpl) Load(ctx context.Context, sessionID string) (*queries.OwnerBookingsView, error) {
	caller, err := shared.RequireOwner(ctx, o.store, o.decoder, sessionID)
	if err != nil {
		return nil, err
	}

	var gen uint64
	if _, err := o.store.Update(ctx, sessionID, func(s *session.Session) error {
		gen = s.Owner.Begin()
		return nil
	}); err != nil {
		return nil, err
	}

	venues, err := o.venues.ListOwnerVenues(ctx, caller.Token, caller.Identity.UserID)
	if err != nil {
		return nil, err
	}

	sess, err := o.store.Update(ctx, sessionID, func(s *session.Session) error {
		if !s.Owner.Accepts(gen) {
			return errs.Mark(errs.Newf("owner bookings load %d superseded", gen), errs.ErrStaleResponse)
		}
		s.Owner.Venues = venues
		s.Owner.Loaded = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	view := queries.NewOwnerBookingsView(sess.Owner)
	return &view, nil
}

func (o *ownerBookingsCommandsImpl) Accept(ctx context.Context, sessionID string, bookingID int64) (*queries.OwnerBookingsView, error) {
	return o.transition(ctx, sessionID, bookingID, "accept", booking.Booking.Accept)
}

func (o *ownerBookingsCommandsImpl) Revert(ctx context.Context, sessionID string, bookingID int64) (*queries.OwnerBookingsView, error) {
	return o.transition(ctx, sessionID, bookingID, "revert", booking.Booking.Revert)
}

// transition does one read-then-write against the remote record and
// reconciles the stored list only once the write went through.
func (o *ownerBookingsCommandsImpl) transition(
	ctx context.Context,
	sessionID string,
	bookingID int64,
	action string,
	move func(booking.Booking) (booking.Booking, bool, error),
) (*queries.OwnerBookingsView, error) {
	caller, err := shared.RequireOwner(ctx, o.store, o.decoder, sessionID)
	if err != nil {
		return nil, err
	}
	if _, _, ok := booking.FindInVenues(caller.Session.Owner.Venues, bookingID); !ok {
		return nil, errs.Mark(ErrBookingNotListed, errs.ErrNotFound)
	}

	var view *queries.OwnerBookingsView
	err = shared.Guarded(ctx, o.guard, shared.GuardKey(sessionID, "booking", bookingID), func() error {
		updated, err := o.bookings.ModifyBooking(ctx, caller.Token, bookingID, move)
		if err != nil {
			if errs.Is(err, booking.ErrInvalidTransition) {
				return errs.Mark(err, errs.ErrConflict)
			}
			return err
		}

		sess, err := o.store.Update(ctx, sessionID, func(s *session.Session) error {
			stored, _, ok := booking.FindInVenues(s.Owner.Venues, bookingID)
			if !ok {
				return nil
			}
			stored.Status = updated.Status
			s.Owner.Venues, _ = booking.ReplaceInVenues(s.Owner.Venues, stored)
			return nil
		})
		if err != nil {
			return err
		}
		v := queries.NewOwnerBookingsView(sess.Owner)
		view = &v
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking status changed", "action", action, "booking_id", bookingID, "owner_id", caller.Identity.UserID)
	return view, nil
}

func (o *ownerBookingsCommandsImpl) Reject(ctx context.Context, sessionID string, bookingID int64, confirm bool) (*queries.OwnerBookingsView, error) {
	if !confirm {
		return nil, errs.Mark(ErrRejectNotConfirmed, errs.ErrConfirmationMissing)
	}
	caller, err := shared.RequireOwner(ctx, o.store, o.decoder, sessionID)
	if err != nil {
		return nil, err
	}
	if _, _, ok := booking.FindInVenues(caller.Session.Owner.Venues, bookingID); !ok {
		return nil, errs.Mark(ErrBookingNotListed, errs.ErrNotFound)
	}

	var view *queries.OwnerBookingsView
	err = shared.Guarded(ctx, o.guard, shared.GuardKey(sessionID, "booking", bookingID), func() error {
		if err := o.bookings.DeleteBooking(ctx, caller.Token, bookingID); err != nil {
			return err
		}
		sess, err := o.store.Update(ctx, sessionID, func(s *session.Session) error {
			s.Owner.Venues, _ = booking.RemoveFromVenues(s.Owner.Venues, bookingID)
			return nil
		})
		if err != nil {
			return err
		}
		v := queries.NewOwnerBookingsView(sess.Owner)
		view = &v
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking rejected", "booking_id", bookingID, "owner_id", caller.Identity.UserID)
	return view, nil
}
