//go:build e2e

package sessionstore_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"venue-booking/internal/domain/session"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/infra/sessionstore"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/errs"
	"venue-booking/tests/common/redistest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type RedisStoreTestSuite struct {
	suite.Suite
	cfg   config.SessionConfig
	store *sessionstore.RedisStore
	guard *sessionstore.RedisGuard
	ctx   context.Context
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}

func (s *RedisStoreTestSuite) SetupTest() {
	client := redistest.Client(s.T())
	s.cfg = config.NewTestConfig().Session
	s.cfg.KeyPrefix = "test-" + uuid.NewString()
	s.cfg.UpdateRetry = 100
	clk := clock.NewFixedClock(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.store = sessionstore.NewRedisStore(client, s.cfg, clk, logger)
	s.guard = sessionstore.NewRedisGuard(client, s.cfg)
	s.ctx = context.Background()
}

func (s *RedisStoreTestSuite) TestLifecycle() {
	created, err := s.store.Create(s.ctx)
	s.Require().NoError(err)

	updated, err := s.store.Update(s.ctx, created.ID, func(sess *session.Session) error {
		sess.SignIn(session.Tokens{Access: "a"}, user.Profile{ID: 3, Username: "owner", IsVenueOwner: true})
		return nil
	})
	s.Require().NoError(err)
	s.Equal("a", updated.Tokens.Access)

	got, err := s.store.Get(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got.Profile)
	s.True(got.Profile.IsVenueOwner)

	s.Require().NoError(s.store.Delete(s.ctx, created.ID))
	_, err = s.store.Get(s.ctx, created.ID)
	s.ErrorIs(err, session.ErrSessionNotFound)

	_, err = s.store.Update(s.ctx, created.ID, func(*session.Session) error { return nil })
	s.ErrorIs(err, session.ErrSessionNotFound)
}

func (s *RedisStoreTestSuite) TestConcurrentUpdatesAreNotLost() {
	created, err := s.store.Create(s.ctx)
	s.Require().NoError(err)

	const n = 20
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.store.Update(s.ctx, created.ID, func(sess *session.Session) error {
				sess.Owner.Begin()
				return nil
			})
			s.NoError(err)
		}()
	}
	wg.Wait()

	got, err := s.store.Get(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(uint64(n), got.Owner.Generation)
}

func (s *RedisStoreTestSuite) TestUpdateRetriesAreBounded() {
	created, err := s.store.Create(s.ctx)
	s.Require().NoError(err)

	s.cfg.UpdateRetry = 1
	client := redistest.Client(s.T())
	store := sessionstore.NewRedisStore(client, s.cfg, clock.NewRealClock(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err = store.Update(s.ctx, created.ID, func(sess *session.Session) error {
		// a competing write lands between the read and the commit
		_, innerErr := s.store.Update(s.ctx, created.ID, func(other *session.Session) error {
			other.Guest.Begin()
			return nil
		})
		s.Require().NoError(innerErr)
		sess.Owner.Begin()
		return nil
	})
	s.True(errs.Is(err, errs.ErrConflict))
}

func (s *RedisStoreTestSuite) TestGuard() {
	other := sessionstore.NewRedisGuard(redistest.Client(s.T()), s.cfg)

	ok, err := s.guard.Acquire(s.ctx, "pay:1")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = other.Acquire(s.ctx, "pay:1")
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(other.Release(s.ctx, "pay:1"), "releasing a lock held elsewhere is a no-op")
	ok, err = other.Acquire(s.ctx, "pay:1")
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.guard.Release(s.ctx, "pay:1"))
	ok, err = other.Acquire(s.ctx, "pay:1")
	s.Require().NoError(err)
	s.True(ok)
}
