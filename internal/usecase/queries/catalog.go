package queries

import (
	"context"

	"venue-booking/internal/domain/session"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"
)

type CatalogQueries interface {
	// Current renders the catalog as last loaded, without fetching.
	Current(ctx context.Context, sessionID string) (*CatalogView, error)
	Venue(ctx context.Context, venueID int64) (*VenueDetailView, error)
}

type catalogQueriesImpl struct {
	store  shared.SessionStore
	venues shared.VenueGateway
}

func NewCatalogQueries(store shared.SessionStore, venues shared.VenueGateway) CatalogQueries {
	return &catalogQueriesImpl{
		store:  store,
		venues: venues,
	}
}

func (q *catalogQueriesImpl) Current(ctx context.Context, sessionID string) (*CatalogView, error) {
	s, err := q.store.Get(ctx, sessionID)
	if err != nil {
		if errs.Is(err, session.ErrSessionNotFound) {
			return &CatalogView{Venues: []VenueView{}}, nil
		}
		return nil, err
	}
	view := NewCatalogView(s.Catalog)
	return &view, nil
}

func (q *catalogQueriesImpl) Venue(ctx context.Context, venueID int64) (*VenueDetailView, error) {
	vb, err := q.venues.GetVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	view := NewVenueDetailView(vb)
	return &view, nil
}
