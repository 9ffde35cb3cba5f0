//go:build unit

// Package sessiontest wires the in-memory session store for use case and
// middleware tests.
package sessiontest

import (
	"context"
	"testing"
	"time"

	"venue-booking/internal/domain/session"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/infra/sessionstore"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/identity"
	"venue-booking/tests/common/builder"

	"github.com/stretchr/testify/require"
)

type Env struct {
	Config  config.Config
	Clock   *clock.FixedClock
	Store   *sessionstore.MemoryStore
	Guard   *sessionstore.MemoryGuard
	Decoder *identity.Decoder
}

func New() *Env {
	cfg := config.NewTestConfig()
	clk := clock.NewFixedClock(time.Now())
	return &Env{
		Config:  cfg,
		Clock:   clk,
		Store:   sessionstore.NewMemoryStore(cfg.Session, clk),
		Guard:   sessionstore.NewMemoryGuard(cfg.Session, clk),
		Decoder: identity.NewDecoder(clk),
	}
}

// Anonymous creates a session nobody is signed in to.
func (e *Env) Anonymous(t *testing.T) string {
	t.Helper()
	s, err := e.Store.Create(context.Background())
	require.NoError(t, err)
	return s.ID
}

// SignIn creates a session signed in as userID. The token carries no role,
// so the role comes from the cached profile as it does with the real API.
func (e *Env) SignIn(t *testing.T, userID int64, owner bool) string {
	t.Helper()
	id := e.Anonymous(t)
	token := builder.NewTokenBuilder().With(func(b *builder.TokenBuilder) {
		b.UserID = userID
		b.ExpiresAt = e.Clock.Now().Add(time.Hour)
	}).Build()

	username := "guest"
	if owner {
		username = "owner"
	}
	_, err := e.Store.Update(context.Background(), id, func(s *session.Session) error {
		s.SignIn(session.Tokens{Access: token}, user.Profile{ID: userID, Username: username, IsVenueOwner: owner})
		return nil
	})
	require.NoError(t, err)
	return id
}

// Token returns the access token stored for a session.
func (e *Env) Token(t *testing.T, sessionID string) string {
	t.Helper()
	return e.Session(t, sessionID).Tokens.Access
}

func (e *Env) Session(t *testing.T, sessionID string) *session.Session {
	t.Helper()
	s, err := e.Store.Get(context.Background(), sessionID)
	require.NoError(t, err)
	return s
}

// Mutate edits a stored session directly, standing in for a concurrent request.
func (e *Env) Mutate(t *testing.T, sessionID string, fn func(*session.Session)) {
	t.Helper()
	_, err := e.Store.Update(context.Background(), sessionID, func(s *session.Session) error {
		fn(s)
		return nil
	})
	require.NoError(t, err)
}
