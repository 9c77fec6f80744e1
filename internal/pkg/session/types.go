// internal/pkg/session/types.go
package session

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// Session is the client-held identity bundle: the gateway-side copy of what
// the browser used to keep in local storage. The backend owns the
// authoritative user/organization/membership records; this is a cache.
type Session struct {
	Token  string `json:"-" redis:"token"`
	UserID string `json:"user_id" redis:"user_id"`
	Name   string `json:"name" redis:"name"`
	Role   string `json:"role" redis:"role"`
	OrgID  string `json:"org_id" redis:"org_id"`
}

// Authenticated reports whether a token is held. It says nothing about the
// token still being accepted upstream.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// HasOrganization reports whether an active organization has been selected.
func (s *Session) HasOrganization() bool {
	return s != nil && s.OrgID != ""
}

// Record is the Postgres audit row for a session. Redis is the source of
// truth; these rows exist for sign-in history and org-switch tracking and are
// written best-effort.
type Record struct {
	ID             int64          `json:"id" db:"id"`
	TokenDigest    string         `json:"-" db:"token_digest"`
	UserID         sql.NullString `json:"user_id,omitempty" db:"user_id"`
	Name           sql.NullString `json:"name,omitempty" db:"name"`
	Role           sql.NullString `json:"role,omitempty" db:"role"`
	CurrentOrgID   sql.NullString `json:"current_org_id,omitempty" db:"current_org_id"`
	SeenOrgIDs     pq.StringArray `json:"seen_org_ids,omitempty" db:"seen_org_ids"`
	IPAddress      sql.NullString `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent      sql.NullString `json:"user_agent,omitempty" db:"user_agent"`
	LoginAt        time.Time      `json:"login_at" db:"login_at"`
	LastActivityAt time.Time      `json:"last_activity_at" db:"last_activity_at"`
	EndedAt        sql.NullTime   `json:"ended_at,omitempty" db:"ended_at"`
	EndReason      sql.NullString `json:"end_reason,omitempty" db:"end_reason"`
}

// Reasons a session record gets closed.
const (
	EndReasonLogout   = "logout"
	EndReasonRejected = "rejected_upstream" // 401/403 from the CRM API
	EndReasonExpired  = "expired"
)
