package sessionstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"venue-booking/internal/domain/session"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/errs"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each session as one JSON value with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	cfg    config.SessionConfig
	clock  clock.Clock
	logger *slog.Logger
}

func NewRedisStore(client *redis.Client, cfg config.SessionConfig, clk clock.Clock, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, cfg: cfg, clock: clk, logger: logger}
}

func (s *RedisStore) key(id string) string {
	return s.cfg.KeyPrefix + ":session:" + id
}

func (s *RedisStore) Create(ctx context.Context) (*session.Session, error) {
	sess := session.New(uuid.NewString(), s.clock.Now())
	data, err := json.Marshal(sess)
	if err != nil {
		return nil, errs.Wrap(err, "encode session")
	}
	ok, err := s.client.SetNX(ctx, s.key(sess.ID), data, s.cfg.TTL).Result()
	if err != nil {
		return nil, errs.Wrap(err, "create session")
	}
	if !ok {
		return nil, errs.Newf("session id collision %s", sess.ID)
	}
	return sess, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*session.Session, error) {
	if id == "" {
		return nil, session.ErrSessionNotFound
	}
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, session.ErrSessionNotFound
	}
	if err != nil {
		return nil, errs.Wrap(err, "get session")
	}
	return decode(data)
}

// Update is optimistic: the key is watched while fn runs and the write is
// retried from a fresh read if another request changed it meanwhile.
func (s *RedisStore) Update(ctx context.Context, id string, fn func(*session.Session) error) (*session.Session, error) {
	if id == "" {
		return nil, session.ErrSessionNotFound
	}
	key := s.key(id)
	var updated *session.Session

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return session.ErrSessionNotFound
		}
		if err != nil {
			return err
		}
		sess, err := decode(data)
		if err != nil {
			return err
		}
		if err := fn(sess); err != nil {
			return err
		}
		out, err := json.Marshal(sess)
		if err != nil {
			return errs.Wrap(err, "encode session")
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, s.cfg.TTL)
			return nil
		})
		if err == nil {
			updated = sess
		}
		return err
	}

	attempts := max(s.cfg.UpdateRetry, 1)
	for i := 0; i < attempts; i++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return nil, err
		}
		s.logger.DebugContext(ctx, "session update conflict, retrying",
			"session_id", id,
			"attempt", i+1,
		)
	}
	return nil, errs.Mark(errs.Newf("session %s changed concurrently", id), errs.ErrConflict)
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return errs.Wrap(err, "delete session")
	}
	return nil
}

func decode(data []byte) (*session.Session, error) {
	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, errs.Wrap(err, "decode session")
	}
	return &sess, nil
}

// RedisGuard is a SETNX lock. Holders are told apart by a per-process
// owner token so a lock that expired and was retaken is not released.
type RedisGuard struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	owner  string
}

func NewRedisGuard(client *redis.Client, cfg config.SessionConfig) *RedisGuard {
	return &RedisGuard{
		client: client,
		prefix: cfg.KeyPrefix + ":guard:",
		ttl:    cfg.GuardTTL,
		owner:  uuid.NewString(),
	}
}

func (g *RedisGuard) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.prefix+key, g.owner, g.ttl).Result()
	if err != nil {
		return false, errs.Wrap(err, "acquire guard")
	}
	return ok, nil
}

func (g *RedisGuard) Release(ctx context.Context, key string) error {
	val, err := g.client.Get(ctx, g.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return errs.Wrap(err, "read guard")
	}
	if val != g.owner {
		return nil
	}
	return g.client.Del(ctx, g.prefix+key).Err()
}
