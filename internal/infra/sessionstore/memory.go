package sessionstore

import (
	"context"
	"sync"
	"time"

	"venue-booking/internal/domain/session"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/errs"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore keeps sessions in process. Entries are stored encoded so
// callers never share a *Session with the store.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	clock   clock.Clock
}

func NewMemoryStore(cfg config.SessionConfig, clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		entries: map[string]memoryEntry{},
		ttl:     cfg.TTL,
		clock:   clk,
	}
}

func (s *MemoryStore) Create(_ context.Context) (*session.Session, error) {
	sess := session.New(uuid.NewString(), s.clock.Now())
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.put(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(id)
}

// Update holds the store lock while fn runs, so updates never interleave.
func (s *MemoryStore) Update(_ context.Context, id string, fn func(*session.Session) error) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	if err := s.put(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

func (s *MemoryStore) load(id string) (*session.Session, error) {
	e, ok := s.entries[id]
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	if !s.clock.Now().Before(e.expiresAt) {
		delete(s.entries, id)
		return nil, session.ErrSessionNotFound
	}
	return decode(e.data)
}

func (s *MemoryStore) put(sess *session.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return errs.Wrap(err, "encode session")
	}
	s.entries[sess.ID] = memoryEntry{data: data, expiresAt: s.clock.Now().Add(s.ttl)}
	return nil
}

type MemoryGuard struct {
	mu    sync.Mutex
	held  map[string]time.Time
	ttl   time.Duration
	clock clock.Clock
}

func NewMemoryGuard(cfg config.SessionConfig, clk clock.Clock) *MemoryGuard {
	return &MemoryGuard{held: map[string]time.Time{}, ttl: cfg.GuardTTL, clock: clk}
}

func (g *MemoryGuard) Acquire(_ context.Context, key string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := g.clock.Now()
	if exp, ok := g.held[key]; ok && now.Before(exp) {
		return false, nil
	}
	g.held[key] = now.Add(g.ttl)
	return true, nil
}

func (g *MemoryGuard) Release(_ context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, key)
	return nil
}
