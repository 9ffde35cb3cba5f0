package queries

import (
	"context"

	"venue-booking/internal/usecase/shared"
)

type GuestQueries interface {
	// Cancelled lists the caller's past cancellations.
	Cancelled(ctx context.Context, sessionID string) ([]CancellationView, error)
}

type guestQueriesImpl struct {
	store    shared.SessionStore
	decoder  shared.TokenDecoder
	bookings shared.BookingGateway
}

func NewGuestQueries(store shared.SessionStore, decoder shared.TokenDecoder, bookings shared.BookingGateway) GuestQueries {
	return &guestQueriesImpl{
		store:    store,
		decoder:  decoder,
		bookings: bookings,
	}
}

func (q *guestQueriesImpl) Cancelled(ctx context.Context, sessionID string) ([]CancellationView, error) {
	caller, err := shared.Identify(ctx, q.store, q.decoder, sessionID)
	if err != nil {
		return nil, err
	}

	records, err := q.bookings.ListCancellations(ctx, caller.Token, caller.Identity.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]CancellationView, 0, len(records))
	for _, c := range records {
		out = append(out, NewCancellationView(c))
	}
	return out, nil
}
