// internal/pkg/session/store.go
package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	xerrors "dealboard-gateway/internal/pkg/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Recorder persists session audit rows. Failures are logged and swallowed:
// Redis is the source of truth, Postgres is history.
type Recorder interface {
	CreateRecord(ctx context.Context, rec *Record) error
	TouchActivity(ctx context.Context, tokenDigest string) error
	RecordOrgSwitch(ctx context.Context, tokenDigest, orgID, role string) error
	CloseRecord(ctx context.Context, tokenDigest, reason string) error
}

// Store is the single source of truth for gateway-held identity state, one
// Redis hash per session keyed by the opaque token.
type Store struct {
	client     *redis.Client
	recorder   Recorder
	defaultTTL time.Duration
	logger     *zap.Logger
}

func NewStore(client *redis.Client, recorder Recorder, defaultTTL time.Duration, logger *zap.Logger) *Store {
	return &Store{
		client:     client,
		recorder:   recorder,
		defaultTTL: defaultTTL,
		logger:     logger,
	}
}

func (s *Store) key(token string) string {
	return "session:" + Digest(token)
}

// Digest returns the hex SHA-256 of a token. Raw bearer tokens never reach
// Redis keys or Postgres rows.
func Digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Save stores a fresh session. expiresAt bounds the Redis TTL when the token
// carried an expiry; the zero time falls back to the configured default.
func (s *Store) Save(ctx context.Context, sess *Session, expiresAt time.Time) error {
	if sess == nil || sess.Token == "" {
		return xerrors.ErrInvalidInput
	}

	ttl := s.defaultTTL
	if !expiresAt.IsZero() {
		if until := time.Until(expiresAt); until > 0 && until < ttl {
			ttl = until
		}
	}

	key := s.key(sess.Token)
	fields := map[string]interface{}{
		"token":   sess.Token,
		"user_id": sess.UserID,
		"name":    sess.Name,
		"role":    sess.Role,
		"org_id":  sess.OrgID,
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

// Get loads the session for a token. A token with no backing hash (expired,
// cleared, or never created) yields ErrSessionExpired.
func (s *Store) Get(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, xerrors.ErrSessionExpired
	}

	res, err := s.client.HGetAll(ctx, s.key(token)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if len(res) == 0 {
		return nil, xerrors.ErrSessionExpired
	}

	sess := &Session{
		Token:  token,
		UserID: res["user_id"],
		Name:   res["name"],
		Role:   res["role"],
		OrgID:  res["org_id"],
	}

	if s.recorder != nil {
		if err := s.recorder.TouchActivity(ctx, Digest(token)); err != nil {
			s.logger.Warn("failed to touch session activity", zap.Error(err))
		}
	}

	return sess, nil
}

// SetActiveOrganization writes the active org id and the membership role in a
// single HSET, so no reader ever observes one without the other.
func (s *Store) SetActiveOrganization(ctx context.Context, token, orgID, role string) error {
	if token == "" {
		return xerrors.ErrSessionExpired
	}

	key := s.key(token)
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}
	if n == 0 {
		return xerrors.ErrSessionExpired
	}

	if err := s.client.HSet(ctx, key, map[string]interface{}{
		"org_id": orgID,
		"role":   role,
	}).Err(); err != nil {
		return fmt.Errorf("failed to set active organization: %w", err)
	}

	if s.recorder != nil {
		if err := s.recorder.RecordOrgSwitch(ctx, Digest(token), orgID, role); err != nil {
			s.logger.Warn("failed to record org switch", zap.Error(err))
		}
	}

	return nil
}

// Clear removes every session field. Idempotent: clearing a missing session
// is a no-op. Called on logout and whenever upstream answers 401/403.
func (s *Store) Clear(ctx context.Context, token, reason string) error {
	if token == "" {
		return nil
	}

	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	if s.recorder != nil {
		if err := s.recorder.CloseRecord(ctx, Digest(token), reason); err != nil {
			s.logger.Warn("failed to close session record", zap.Error(err))
		}
	}

	return nil
}
