package queries

import (
	"context"

	"venue-booking/internal/usecase/shared"
)

type WizardQueries interface {
	View(ctx context.Context, sessionID string) (*WizardView, error)
}

type wizardQueriesImpl struct {
	store   shared.SessionStore
	decoder shared.TokenDecoder
}

func NewWizardQueries(store shared.SessionStore, decoder shared.TokenDecoder) WizardQueries {
	return &wizardQueriesImpl{
		store:   store,
		decoder: decoder,
	}
}

func (q *wizardQueriesImpl) View(ctx context.Context, sessionID string) (*WizardView, error) {
	caller, err := shared.RequireOwner(ctx, q.store, q.decoder, sessionID)
	if err != nil {
		return nil, err
	}
	view := NewWizardView(caller.Session.Wizard)
	return &view, nil
}
