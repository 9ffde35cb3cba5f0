package commands

import (
	"context"
	"log/slog"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/session"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/shared"
)

// PaymentStatusCompleted is the gateway status of a successful payment.
const PaymentStatusCompleted = "Completed"

var ErrPaymentNotCompleted = errs.New("Payment was not completed")

type BookingRequestInput struct {
	VenueID   int64
	StartDate string
	EndDate   string
}

// PaymentCallback is what the gateway hands back on the return redirect.
type PaymentCallback struct {
	PurchaseOrderID string
	Pidx            string
	Status          string
}

// BookingRequestResult holds a payment redirect when payment is required,
// otherwise the created booking.
type BookingRequestResult struct {
	PaymentURL string
	Pidx       string
	Intent     *queries.IntentView
	Booking    *queries.BookingView
}

type BookingRequestCommands interface {
	Request(ctx context.Context, sessionID string, in BookingRequestInput) (*BookingRequestResult, error)
	Confirm(ctx context.Context, sessionID string, cb PaymentCallback) (*queries.BookingView, error)
}

type bookingRequestCommandsImpl struct {
	store    shared.SessionStore
	guard    shared.ActionGuard
	decoder  shared.TokenDecoder
	venues   shared.VenueGateway
	bookings shared.BookingGateway
	payments shared.PaymentGateway
	clock    clock.Clock
	booking  config.BookingConfig
	payment  config.PaymentConfig
}

func NewBookingRequestCommands(
	store shared.SessionStore,
	guard shared.ActionGuard,
	decoder shared.TokenDecoder,
	venues shared.VenueGateway,
	bookings shared.BookingGateway,
	payments shared.PaymentGateway,
	clk clock.Clock,
	cfg config.Config,
) BookingRequestCommands {
	return &bookingRequestCommandsImpl{
		store:    store,
		guard:    guard,
		decoder:  decoder,
		venues:   venues,
		bookings: bookings,
		payments: payments,
		clock:    clk,
		booking:  cfg.Booking,
		payment:  cfg.Payment,
	}
}

// Request checks the dates before anything else, then the token, and only
// then talks to the remote API. With payment required no booking is created
// here; the intent waits in the session for Confirm.
func (b *bookingRequestCommandsImpl) Request(ctx context.Context, sessionID string, in BookingRequestInput) (*BookingRequestResult, error) {
	dates, err := booking.ParseDateRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	caller, err := shared.Identify(ctx, b.store, b.decoder, sessionID)
	if err != nil {
		return nil, err
	}

	var result *BookingRequestResult
	err = shared.Guarded(ctx, b.guard, shared.GuardKey(sessionID, "book", in.VenueID), func() error {
		vb, err := b.venues.GetVenue(ctx, in.VenueID)
		if err != nil {
			return err
		}
		if b.booking.CheckAvailability {
			if err := booking.CheckAvailability(dates, vb.Bookings); err != nil {
				return errs.Mark(err, errs.ErrConflict)
			}
		}

		if !b.booking.RequirePayment {
			result, err = b.createDirect(ctx, caller, booking.New{UserID: caller.Identity.UserID, VenueID: in.VenueID, Dates: dates})
			return err
		}
		result, err = b.startPayment(ctx, caller, vb, dates)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (b *bookingRequestCommandsImpl) createDirect(ctx context.Context, caller shared.Caller, nb booking.New) (*BookingRequestResult, error) {
	created, err := b.bookings.CreateBooking(ctx, caller.Token, nb)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "booking created", "booking_id", created.ID, "venue_id", nb.VenueID, "user_id", nb.UserID)
	view := queries.NewBookingView(created)
	return &BookingRequestResult{Booking: &view}, nil
}

func (b *bookingRequestCommandsImpl) startPayment(ctx context.Context, caller shared.Caller, vb booking.VenueBookings, dates booking.DateRange) (*BookingRequestResult, error) {
	intent := booking.NewIntent(caller.Identity.UserID, vb.Venue.ID, vb.Venue.Name, dates, vb.Venue.NightlyRate(), b.clock.Now())

	if _, err := b.store.Update(ctx, caller.Session.ID, func(s *session.Session) error {
		s.Intent = &intent
		return nil
	}); err != nil {
		return nil, errs.Wrap(err, "persist booking intent")
	}

	redirect, err := b.payments.InitiatePayment(ctx, caller.Token, shared.PaymentRequest{
		Intent:     intent,
		ReturnURL:  b.payment.ReturnURL,
		WebsiteURL: b.payment.WebsiteURL,
	})
	if err != nil {
		_, clearErr := b.store.Update(context.WithoutCancel(ctx), caller.Session.ID, func(s *session.Session) error {
			if s.Intent != nil && s.Intent.ID == intent.ID {
				s.Intent = nil
			}
			return nil
		})
		if clearErr != nil {
			slog.WarnContext(ctx, "failed to clear booking intent", "intent_id", intent.ID, "error", clearErr.Error())
		}
		return nil, err
	}

	slog.InfoContext(ctx, "payment initiated",
		"intent_id", intent.ID,
		"venue_id", intent.VenueID,
		"amount", intent.Amount,
	)
	iv := queries.NewIntentView(intent)
	return &BookingRequestResult{PaymentURL: redirect.URL, Pidx: redirect.Pidx, Intent: &iv}, nil
}

// Confirm takes the intent out of the session before creating the booking,
// so a repeated confirmation finds nothing to act on. A failed create is
// reported and not retried.
func (b *bookingRequestCommandsImpl) Confirm(ctx context.Context, sessionID string, cb PaymentCallback) (*queries.BookingView, error) {
	caller, err := shared.Identify(ctx, b.store, b.decoder, sessionID)
	if err != nil {
		return nil, err
	}

	var created *queries.BookingView
	err = shared.Guarded(ctx, b.guard, shared.GuardKey(sessionID, "confirm", "payment"), func() error {
		var (
			intent    booking.Intent
			abandoned bool
		)
		if _, err := b.store.Update(ctx, sessionID, func(s *session.Session) error {
			if s.Intent == nil {
				return errs.Mark(session.ErrNoPendingIntent, errs.ErrNotFound)
			}
			if cb.PurchaseOrderID != "" && cb.PurchaseOrderID != s.Intent.ID.String() {
				return errs.Mark(session.ErrIntentMismatch, errs.ErrConflict)
			}
			if cb.Status != PaymentStatusCompleted {
				abandoned = true
				s.Intent = nil
				return nil
			}
			var takeErr error
			intent, takeErr = s.TakeIntent()
			return takeErr
		}); err != nil {
			return err
		}
		if abandoned {
			slog.InfoContext(ctx, "payment not completed", "session_id", sessionID, "status", cb.Status)
			return errs.Mark(errs.Newf("payment status %q", cb.Status), ErrPaymentNotCompleted)
		}

		nb, err := b.bookings.CreateBooking(ctx, caller.Token, intent.Booking())
		if err != nil {
			slog.ErrorContext(ctx, "booking create failed after payment",
				"intent_id", intent.ID,
				"pidx", cb.Pidx,
				"error", err.Error(),
			)
			return err
		}
		slog.InfoContext(ctx, "booking created", "booking_id", nb.ID, "intent_id", intent.ID)
		view := queries.NewBookingView(nb)
		created = &view
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
