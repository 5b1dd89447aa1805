// Package session keeps track of who is logged in.  A session is one
// backend API token keyed by a random session ID; the ID travels in a
// signed cookie and the token stays server-side.  A session exists
// exactly between login and logout: it carries no TTL and is never
// expired proactively, matching the backend's own trust-until-rejected
// token handling.
package session

import (
    "context"
    "errors"
    "sync"

    "github.com/redis/go-redis/v9"
)

// ErrNoSession is returned when no token is stored for a session ID,
// either because it never existed or because logout deleted it.
var ErrNoSession = errors.New("no such session")

const keyPrefix = "session:"

// Store persists the API token behind a session ID.
type Store interface {
    // Save stores the token under the session ID, overwriting any
    // previous value.
    Save(ctx context.Context, sid, token string) error
    // Token returns the stored token, or ErrNoSession.
    Token(ctx context.Context, sid string) (string, error)
    // Delete removes the session.  Deleting an unknown session is not
    // an error.
    Delete(ctx context.Context, sid string) error
}

// NewStore returns a redis-backed store when a client is available and
// falls back to the in-memory store otherwise.  The fallback keeps the
// panel usable without redis at the cost of sessions not surviving a
// restart.
func NewStore(rdb *redis.Client) Store {
    if rdb == nil {
        return NewMemoryStore()
    }
    return &RedisStore{rdb: rdb}
}

// RedisStore persists sessions in redis under "session:<sid>" with no
// expiration, so a login survives process restarts until explicit
// logout.
type RedisStore struct {
    rdb *redis.Client
}

func (s *RedisStore) Save(ctx context.Context, sid, token string) error {
    return s.rdb.Set(ctx, keyPrefix+sid, token, 0).Err()
}

func (s *RedisStore) Token(ctx context.Context, sid string) (string, error) {
    v, err := s.rdb.Get(ctx, keyPrefix+sid).Result()
    if err == redis.Nil {
        return "", ErrNoSession
    }
    if err != nil {
        return "", err
    }
    return v, nil
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
    return s.rdb.Del(ctx, keyPrefix+sid).Err()
}

// MemoryStore is a process-local Store.  Used as the degraded mode when
// redis is unreachable and by tests.
type MemoryStore struct {
    mu     sync.RWMutex
    tokens map[string]string
}

func NewMemoryStore() *MemoryStore {
    return &MemoryStore{tokens: make(map[string]string)}
}

func (s *MemoryStore) Save(_ context.Context, sid, token string) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.tokens[sid] = token
    return nil
}

func (s *MemoryStore) Token(_ context.Context, sid string) (string, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    t, ok := s.tokens[sid]
    if !ok {
        return "", ErrNoSession
    }
    return t, nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    delete(s.tokens, sid)
    return nil
}
