package store

import (
	"fmt"
	"time"

	"github.com/fortniteiabot/fortnitecoach/types"
	"github.com/google/uuid"
)

// RedisSessionStore keeps the ephemeral per-user chat session. Sessions
// expire with the Redis TTL; losing one only resets the chat flow,
// never any ledger state.
type RedisSessionStore struct {
	client *RedisClient
	ttl    time.Duration
}

func NewRedisSessionStore(redisClient *RedisClient, ttlHours int) *RedisSessionStore {
	ttl := time.Duration(ttlHours) * time.Hour
	if ttlHours <= 0 {
		ttl = 24 * time.Hour
	}

	return &RedisSessionStore{
		client: redisClient,
		ttl:    ttl,
	}
}

func (s *RedisSessionStore) CreateSession(session *types.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}

	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now
	session.ExpiresAt = now.Add(s.ttl)

	sessionKey := s.client.generateKey("session", session.ID)
	if err := s.client.Set(sessionKey, session, s.ttl); err != nil {
		return err
	}

	userKey := s.client.generateKey("user_session", fmt.Sprintf("%d", session.UserID))
	if err := s.client.Set(userKey, session.ID, s.ttl); err != nil {
		s.client.Del(sessionKey)
		return err
	}

	return nil
}

func (s *RedisSessionStore) GetSession(sessionID string) (*types.Session, error) {
	sessionKey := s.client.generateKey("session", sessionID)

	var session types.Session
	if err := s.client.Get(sessionKey, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (s *RedisSessionStore) GetUserSession(userID int64) (*types.Session, error) {
	userKey := s.client.generateKey("user_session", fmt.Sprintf("%d", userID))

	var sessionID string
	if err := s.client.Get(userKey, &sessionID); err != nil {
		return nil, err
	}

	sessionKey := s.client.generateKey("session", sessionID)
	var session types.Session
	if err := s.client.Get(sessionKey, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (s *RedisSessionStore) UpdateSession(session *types.Session) error {
	session.UpdatedAt = time.Now()
	session.ExpiresAt = time.Now().Add(s.ttl)

	sessionKey := s.client.generateKey("session", session.ID)
	return s.client.Set(sessionKey, session, s.ttl)
}

func (s *RedisSessionStore) DeleteSession(sessionID string) error {
	sessionKey := s.client.generateKey("session", sessionID)
	return s.client.Del(sessionKey)
}
