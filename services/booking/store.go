package booking

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"medibook/models"
	"medibook/utils"
)

// SessionStore persists booking sessions between requests.
type SessionStore interface {
	Save(ctx context.Context, session *models.BookingSession, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore is the production store, backed by the session cache DB.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(sessionID string) string {
	return utils.SessionCachePrefix + sessionID
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.BookingSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(session.SessionID), data, ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, NewSessionNotFoundError(sessionID)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}

// MemorySessionStore keeps sessions in a map. Used by tests and as a
// single-instance fallback when Redis is not configured.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.BookingSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*models.BookingSession)}
}

func (s *MemorySessionStore) Save(_ context.Context, session *models.BookingSession, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *session
	s.sessions[session.SessionID] = &clone
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (*models.BookingSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, NewSessionNotFoundError(sessionID)
	}
	clone := *session
	return &clone, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
