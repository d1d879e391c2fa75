package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// TokenKind separates access and refresh tokens in the store
type TokenKind string

const (
	AccessTokenKind  TokenKind = "access"
	RefreshTokenKind TokenKind = "refresh"
)

// TokenStore tracks issued token ids. A token absent from the store is revoked.
type TokenStore interface {
	Store(ctx context.Context, kind TokenKind, subject, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, kind TokenKind, subject, tokenID string) (bool, error)
	Revoke(ctx context.Context, kind TokenKind, tokenID string) error
}

func tokenKey(kind TokenKind, subject, tokenID string) string {
	return fmt.Sprintf("%s_token:%s:%s", kind, subject, tokenID)
}

type redisTokenStore struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisTokenStore(client *redis.Client, log *logrus.Logger) TokenStore {
	return &redisTokenStore{client: client, log: log}
}

func (s *redisTokenStore) Store(ctx context.Context, kind TokenKind, subject, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKey(kind, subject, tokenID), "valid", ttl).Err()
}

func (s *redisTokenStore) Exists(ctx context.Context, kind TokenKind, subject, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, tokenKey(kind, subject, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, kind TokenKind, tokenID string) error {
	keys, err := s.client.Keys(ctx, tokenKey(kind, "*", tokenID)).Result()
	if err != nil {
		s.log.Warnf("Failed to get %s token keys: %+v", kind, err)
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		s.log.Warnf("Failed to delete %s token: %+v", kind, err)
		return err
	}
	return nil
}

// MemoryTokenStore keeps tokens in process memory. Expired entries are
// ignored on lookup and removed by Sweep.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	now    func() time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{
		tokens: make(map[string]time.Time),
		now:    time.Now,
	}
}

func (s *MemoryTokenStore) Store(_ context.Context, kind TokenKind, subject, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[tokenKey(kind, subject, tokenID)] = s.now().Add(ttl)
	return nil
}

func (s *MemoryTokenStore) Exists(_ context.Context, kind TokenKind, subject, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.tokens[tokenKey(kind, subject, tokenID)]
	return ok && s.now().Before(expiry), nil
}

func (s *MemoryTokenStore) Revoke(_ context.Context, kind TokenKind, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefix := string(kind) + "_token:"
	suffix := ":" + tokenID
	for key := range s.tokens {
		if strings.HasPrefix(key, prefix) && strings.HasSuffix(key, suffix) {
			delete(s.tokens, key)
		}
	}
	return nil
}

// Sweep drops expired tokens and returns how many were removed.
func (s *MemoryTokenStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for key, expiry := range s.tokens {
		if !now.Before(expiry) {
			delete(s.tokens, key)
			removed++
		}
	}
	return removed
}
