// internal/service/auth/auth.go
package auth

import (
	"context"
	"database/sql"
	"time"

	"dealboard-gateway/internal/domain/auth"
	"dealboard-gateway/internal/pkg/session"
	"dealboard-gateway/internal/pkg/token"
	"dealboard-gateway/internal/upstream"

	"go.uber.org/zap"
)

// ClientInfo is what the gateway knows about the browser behind a login.
type ClientInfo struct {
	IP        string
	UserAgent string
}

// AuthService exchanges credentials upstream and owns the session lifecycle
// around it. The upstream CRM is the only party that validates tokens; the
// gateway just holds them.
type AuthService struct {
	client   *upstream.Client
	store    *session.Store
	recorder session.Recorder
	logger   *zap.Logger
}

func NewAuthService(client *upstream.Client, store *session.Store, recorder session.Recorder, logger *zap.Logger) *AuthService {
	return &AuthService{
		client:   client,
		store:    store,
		recorder: recorder,
		logger:   logger,
	}
}

// Login authenticates upstream and creates the gateway session. The session
// is readable the moment this returns; the next outbound request already
// carries the new token.
func (s *AuthService) Login(ctx context.Context, req *auth.LoginRequest, info ClientInfo) (*session.Session, error) {
	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.createSession(ctx, resp, info)
}

// Register creates an account upstream and logs the new user straight in.
func (s *AuthService) Register(ctx context.Context, req *auth.RegisterRequest, info ClientInfo) (*session.Session, error) {
	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.createSession(ctx, resp, info)
}

// Logout destroys the session wholesale.
func (s *AuthService) Logout(ctx context.Context, sess *session.Session) error {
	if !sess.Authenticated() {
		return nil
	}
	return s.store.Clear(ctx, sess.Token, session.EndReasonLogout)
}

func (s *AuthService) createSession(ctx context.Context, resp *auth.AuthResponse, info ClientInfo) (*session.Session, error) {
	sess := &session.Session{
		Token:  resp.Token,
		UserID: resp.User.ID,
		Name:   resp.User.Name,
		Role:   resp.User.Role,
	}

	// Most tokens happen to be JWTs. When one is, the session TTL follows
	// the token expiry, and a missing user id falls back to the subject.
	var expiresAt time.Time
	if ti, ok := token.Inspect(resp.Token); ok {
		expiresAt = ti.ExpiresAt
		if sess.UserID == "" {
			sess.UserID = ti.Subject
		}
	}

	if err := s.store.Save(ctx, sess, expiresAt); err != nil {
		return nil, err
	}

	if s.recorder != nil {
		now := time.Now()
		rec := &session.Record{
			TokenDigest:    session.Digest(sess.Token),
			UserID:         sql.NullString{String: sess.UserID, Valid: sess.UserID != ""},
			Name:           sql.NullString{String: sess.Name, Valid: sess.Name != ""},
			Role:           sql.NullString{String: sess.Role, Valid: sess.Role != ""},
			IPAddress:      sql.NullString{String: info.IP, Valid: info.IP != ""},
			UserAgent:      sql.NullString{String: info.UserAgent, Valid: info.UserAgent != ""},
			LoginAt:        now,
			LastActivityAt: now,
		}
		if err := s.recorder.CreateRecord(ctx, rec); err != nil {
			s.logger.Warn("failed to create session record", zap.Error(err))
		}
	}

	s.logger.Info("session created",
		zap.String("user_id", sess.UserID),
		zap.String("role", sess.Role),
	)

	return sess, nil
}
