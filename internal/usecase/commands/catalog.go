package commands

import (
	"context"
	"log/slog"

	"venue-booking/internal/domain/session"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/shared"
)

var ErrCatalogUnavailable = errs.New("Failed to load venues. Please try again later.")

type CatalogCommands interface {
	Load(ctx context.Context, sessionID string) (*queries.CatalogView, error)
	Filter(ctx context.Context, sessionID, term string) (*queries.CatalogView, error)
	ShowMore(ctx context.Context, sessionID string) (*queries.CatalogView, error)
}

type catalogCommandsImpl struct {
	store    shared.SessionStore
	venues   shared.VenueGateway
	pageSize int
}

func NewCatalogCommands(store shared.SessionStore, venues shared.VenueGateway, cfg config.CatalogConfig) CatalogCommands {
	return &catalogCommandsImpl{
		store:    store,
		venues:   venues,
		pageSize: cfg.PageSize,
	}
}

// Load replaces the stored venue set. A failed fetch leaves the catalog in
// its error state until the next successful load.
func (c *catalogCommandsImpl) Load(ctx context.Context, sessionID string) (*queries.CatalogView, error) {
	var gen uint64
	if _, err := c.store.Update(ctx, sessionID, func(s *session.Session) error {
		gen = s.Catalog.Begin()
		return nil
	}); err != nil {
		return nil, err
	}

	venues, fetchErr := c.venues.ListVenues(ctx)

	sess, err := c.store.Update(ctx, sessionID, func(s *session.Session) error {
		if !s.Catalog.Accepts(gen) {
			return errs.Mark(errs.Newf("catalog load %d superseded", gen), errs.ErrStaleResponse)
		}
		if fetchErr != nil {
			s.Catalog.Error = ErrCatalogUnavailable.Error()
			return nil
		}
		s.Catalog.Error = ""
		s.Catalog.Loaded = true
		s.Catalog.Catalog.Load(venues, c.pageSize)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if fetchErr != nil {
		slog.WarnContext(ctx, "catalog load failed", "session_id", sessionID, "error", fetchErr.Error())
		return nil, errs.Mark(fetchErr, ErrCatalogUnavailable)
	}

	view := queries.NewCatalogView(sess.Catalog)
	return &view, nil
}

func (c *catalogCommandsImpl) Filter(ctx context.Context, sessionID, term string) (*queries.CatalogView, error) {
	return c.apply(ctx, sessionID, func(v *session.CatalogView) {
		v.Catalog.Filter(term)
	})
}

func (c *catalogCommandsImpl) ShowMore(ctx context.Context, sessionID string) (*queries.CatalogView, error) {
	return c.apply(ctx, sessionID, func(v *session.CatalogView) {
		v.Catalog.ShowMore()
	})
}

func (c *catalogCommandsImpl) apply(ctx context.Context, sessionID string, fn func(*session.CatalogView)) (*queries.CatalogView, error) {
	sess, err := c.store.Update(ctx, sessionID, func(s *session.Session) error {
		if s.Catalog.Catalog.PageSize == 0 {
			s.Catalog.Catalog.PageSize = max(c.pageSize, 1)
			s.Catalog.Catalog.Revealed = s.Catalog.Catalog.PageSize
		}
		fn(&s.Catalog)
		return nil
	})
	if err != nil {
		return nil, err
	}
	view := queries.NewCatalogView(sess.Catalog)
	return &view, nil
}
