// internal/upstream/transport.go
package upstream

import (
	"net/http"
	"strings"

	"dealboard-gateway/internal/pkg/policy"
	"dealboard-gateway/internal/pkg/session"

	"go.uber.org/zap"
)

// Identity headers the upstream CRM expects on every scoped call.
const (
	HeaderRole   = "X-ROLE"
	HeaderUserID = "X-USER-ID"
	HeaderOrgID  = "X-ORG-ID"

	// Listing the caller's organizations must not be scoped to one org, or
	// the user could never discover the others to switch to.
	myOrgsPath = "/orgs/my"
)

// AuthTransport decorates every outbound CRM request with the identity
// context of the session on the request's context, and polices responses:
// a 401 or 403 clears the whole session, without distinguishing an expired
// token from a single denied resource.
type AuthTransport struct {
	base   http.RoundTripper
	store  *session.Store
	logger *zap.Logger
}

func NewAuthTransport(base http.RoundTripper, store *session.Store, logger *zap.Logger) *AuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &AuthTransport{base: base, store: store, logger: logger}
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	sess := session.FromContext(req.Context())

	if sess != nil {
		req = req.Clone(req.Context())
		if sess.Token != "" {
			req.Header.Set("Authorization", "Bearer "+sess.Token)
		}
		if sess.Role != "" {
			req.Header.Set(HeaderRole, policy.Normalize(sess.Role))
		}
		if sess.UserID != "" {
			req.Header.Set(HeaderUserID, sess.UserID)
		}
		if sess.OrgID != "" && !strings.Contains(req.URL.Path, myOrgsPath) {
			req.Header.Set(HeaderOrgID, sess.OrgID)
		}
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		if sess.Authenticated() {
			t.logger.Warn("upstream rejected session, clearing",
				zap.Int("status", resp.StatusCode),
				zap.String("path", req.URL.Path),
			)
			if err := t.store.Clear(req.Context(), sess.Token, session.EndReasonRejected); err != nil {
				t.logger.Error("failed to clear rejected session", zap.Error(err))
			}
		}
	}

	return resp, nil
}
