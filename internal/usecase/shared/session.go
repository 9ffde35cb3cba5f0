package shared

import (
	"context"
	"fmt"

	"venue-booking/internal/domain/session"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/pkg/errs"
)

// Caller is the signed-in user behind a session.
type Caller struct {
	Session  *session.Session
	Identity user.Identity
	Token    string
}

// Identify loads the session and decodes its access token. A missing or
// undecodable token is ErrUnauthenticated.
func Identify(ctx context.Context, store SessionStore, dec TokenDecoder, sessionID string) (Caller, error) {
	s, err := store.Get(ctx, sessionID)
	if err != nil {
		if errs.Is(err, session.ErrSessionNotFound) {
			return Caller{}, errs.Mark(err, errs.ErrUnauthenticated)
		}
		return Caller{}, errs.Wrap(err, "load session")
	}
	claims, err := dec.Decode(s.Tokens.Access)
	if err != nil {
		return Caller{}, errs.Mark(err, errs.ErrUnauthenticated)
	}
	return Caller{
		Session:  s,
		Identity: claims.Identity(s.Profile),
		Token:    s.Tokens.Access,
	}, nil
}

// RequireOwner narrows Identify to venue owners.
func RequireOwner(ctx context.Context, store SessionStore, dec TokenDecoder, sessionID string) (Caller, error) {
	c, err := Identify(ctx, store, dec, sessionID)
	if err != nil {
		return Caller{}, err
	}
	if !c.Identity.IsOwner() {
		return Caller{}, errs.Mark(errs.New("venue owner role required"), errs.ErrForbidden)
	}
	return c, nil
}

func GuardKey(sessionID, action string, id any) string {
	return fmt.Sprintf("%s:%s:%v", sessionID, action, id)
}

// Guarded runs fn while holding key. A held key means the same action is
// already running and yields ErrActionInProgress.
func Guarded(ctx context.Context, guard ActionGuard, key string, fn func() error) error {
	ok, err := guard.Acquire(ctx, key)
	if err != nil {
		return errs.Wrap(err, "acquire action guard")
	}
	if !ok {
		return errs.Mark(errs.Newf("action %s already running", key), errs.ErrActionInProgress)
	}
	defer func() {
		// release with a fresh context so a cancelled request still frees the key
		_ = guard.Release(context.WithoutCancel(ctx), key)
	}()
	return fn()
}
