package queries

import (
	"context"

	"venue-booking/internal/usecase/shared"
)

type SessionQueries interface {
	Me(ctx context.Context, sessionID string) (*MeView, error)
}

type sessionQueriesImpl struct {
	store   shared.SessionStore
	decoder shared.TokenDecoder
}

func NewSessionQueries(store shared.SessionStore, decoder shared.TokenDecoder) SessionQueries {
	return &sessionQueriesImpl{
		store:   store,
		decoder: decoder,
	}
}

func (q *sessionQueriesImpl) Me(ctx context.Context, sessionID string) (*MeView, error) {
	caller, err := shared.Identify(ctx, q.store, q.decoder, sessionID)
	if err != nil {
		return nil, err
	}

	view := &MeView{
		UserID:  caller.Identity.UserID,
		Role:    caller.Identity.Role.String(),
		Landing: caller.Identity.Role.Landing(),
		Profile: caller.Session.Profile,
	}
	if in := caller.Session.Intent; in != nil {
		iv := NewIntentView(*in)
		view.Intent = &iv
	}
	return view, nil
}
