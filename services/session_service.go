package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Gothsec/centro-digital/config"
	"github.com/redis/go-redis/v9"
)

// SessionTTL matches the auth cookie lifetime.
const SessionTTL = 24 * time.Hour

const sessionKeyPrefix = "admin:session:"

// ErrSessionNotFound is returned when no active session exists for a token.
var ErrSessionNotFound = errors.New("session not found")

// AdminSession is the Redis payload stored per active dashboard login.
type AdminSession struct {
	AdminID   string    `json:"admin_id"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionService tracks active admin sessions in Redis, keyed by the SHA256
// of the JWT so logout can revoke a token before it expires.
type SessionService struct{}

func NewSessionService() *SessionService {
	return &SessionService{}
}

// CreateSession stores a new session with the configured TTL
func (s *SessionService) CreateSession(ctx context.Context, adminID, token, ip, userAgent string) error {
	session := AdminSession{
		AdminID:   adminID,
		IP:        ip,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	key := sessionKeyPrefix + HashAdminToken(token)
	if err := config.RedisClient.Set(ctx, key, payload, SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// ValidateSession looks up the session for a token. Returns
// ErrSessionNotFound when the token was never issued or has been revoked.
func (s *SessionService) ValidateSession(ctx context.Context, token string) (*AdminSession, error) {
	key := sessionKeyPrefix + HashAdminToken(token)
	payload, err := config.RedisClient.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session AdminSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("session payload is malformed: %w", err)
	}
	return &session, nil
}

// DeleteSession revokes the session for a token (logout)
func (s *SessionService) DeleteSession(ctx context.Context, token string) error {
	key := sessionKeyPrefix + HashAdminToken(token)
	if err := config.RedisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var sessionService *SessionService

// GetSessionService returns the global session service instance
func GetSessionService() *SessionService {
	if sessionService == nil {
		sessionService = NewSessionService()
	}
	return sessionService
}
