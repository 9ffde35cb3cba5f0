package commands

import (
	"context"
	"log/slog"

	"venue-booking/internal/domain/session"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/infra/remote"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/shared"
)

// submitErrorField holds a remote failure that names no form field.
const submitErrorField = "submit"

type WizardCommands interface {
	Edit(ctx context.Context, sessionID string, p venue.DraftPatch) (*queries.WizardView, error)
	Next(ctx context.Context, sessionID string) (*queries.WizardView, error)
	Back(ctx context.Context, sessionID string) (*queries.WizardView, error)
	Submit(ctx context.Context, sessionID string) (*queries.WizardView, error)
	Reset(ctx context.Context, sessionID string) (*queries.WizardView, error)
}

type wizardCommandsImpl struct {
	store   shared.SessionStore
	decoder shared.TokenDecoder
	venues  shared.VenueGateway
}

func NewWizardCommands(store shared.SessionStore, decoder shared.TokenDecoder, venues shared.VenueGateway) WizardCommands {
	return &wizardCommandsImpl{
		store:   store,
		decoder: decoder,
		venues:  venues,
	}
}

func (w *wizardCommandsImpl) Edit(ctx context.Context, sessionID string, p venue.DraftPatch) (*queries.WizardView, error) {
	return w.step(ctx, sessionID, func(wz *venue.Wizard) error {
		return wz.Edit(p)
	})
}

func (w *wizardCommandsImpl) Next(ctx context.Context, sessionID string) (*queries.WizardView, error) {
	return w.step(ctx, sessionID, func(wz *venue.Wizard) error {
		return wz.Next()
	})
}

func (w *wizardCommandsImpl) Back(ctx context.Context, sessionID string) (*queries.WizardView, error) {
	return w.step(ctx, sessionID, func(wz *venue.Wizard) error {
		return wz.Back()
	})
}

func (w *wizardCommandsImpl) Reset(ctx context.Context, sessionID string) (*queries.WizardView, error) {
	return w.step(ctx, sessionID, func(wz *venue.Wizard) error {
		*wz = venue.NewWizard()
		return nil
	})
}

// Submit registers the venue. The submitting flag is persisted before the
// remote call, so a second submit of the same session is refused until the
// first one settles.
func (w *wizardCommandsImpl) Submit(ctx context.Context, sessionID string) (*queries.WizardView, error) {
	caller, err := shared.RequireOwner(ctx, w.store, w.decoder, sessionID)
	if err != nil {
		return nil, err
	}

	var reg venue.Registration
	view, err := w.apply(ctx, sessionID, func(wz *venue.Wizard) error {
		var beginErr error
		reg, beginErr = wz.BeginSubmit(caller.Identity.UserID)
		return beginErr
	})
	if err != nil {
		return view, err
	}

	created, regErr := w.venues.RegisterVenue(ctx, caller.Token, reg)

	// settle even if the client went away
	settleCtx := context.WithoutCancel(ctx)
	sess, err := w.store.Update(settleCtx, sessionID, func(s *session.Session) error {
		if regErr != nil {
			s.Wizard.SubmitFailed(submitFieldErrors(regErr))
			return nil
		}
		s.Wizard.SubmitSucceeded(created.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	settled := queries.NewWizardView(sess.Wizard)
	if regErr != nil {
		slog.WarnContext(ctx, "venue registration failed", "owner_id", caller.Identity.UserID, "error", regErr.Error())
		return &settled, regErr
	}

	slog.InfoContext(ctx, "venue registered", "owner_id", caller.Identity.UserID, "venue_id", created.ID)
	return &settled, nil
}

// step checks the caller is an owner, then applies fn.
func (w *wizardCommandsImpl) step(ctx context.Context, sessionID string, fn func(*venue.Wizard) error) (*queries.WizardView, error) {
	if _, err := shared.RequireOwner(ctx, w.store, w.decoder, sessionID); err != nil {
		return nil, err
	}
	return w.apply(ctx, sessionID, fn)
}

// apply runs fn on the stored wizard of an already identified owner. Stage
// validation failures are saved along with the wizard so the form can show
// them.
func (w *wizardCommandsImpl) apply(ctx context.Context, sessionID string, fn func(*venue.Wizard) error) (*queries.WizardView, error) {
	var invalid bool
	sess, err := w.store.Update(ctx, sessionID, func(s *session.Session) error {
		err := fn(&s.Wizard)
		if errs.Is(err, venue.ErrStageInvalid) {
			invalid = true
			return nil
		}
		return err
	})
	if err != nil {
		return nil, wizardError(err)
	}

	view := queries.NewWizardView(sess.Wizard)
	if invalid {
		return &view, errs.Mark(errs.NewValidation(sess.Wizard.Errors), venue.ErrStageInvalid)
	}
	return &view, nil
}

func wizardError(err error) error {
	switch {
	case errs.Is(err, venue.ErrSubmitInProgress):
		return errs.Mark(err, errs.ErrActionInProgress)
	case errs.Is(err, venue.ErrAlreadySubmitted),
		errs.Is(err, venue.ErrNotReadyToSubmit),
		errs.Is(err, venue.ErrNoNextStage),
		errs.Is(err, venue.ErrNoPreviousStage):
		return errs.Mark(err, errs.ErrConflict)
	}
	return err
}

func submitFieldErrors(err error) map[string]string {
	apiErr, ok := remote.AsAPIError(err)
	if !ok {
		return map[string]string{submitErrorField: "Failed to register venue. Please try again."}
	}
	fields := apiErr.FieldMessages()
	if len(fields) == 0 {
		fields = map[string]string{submitErrorField: apiErr.Message()}
	}
	return fields
}
