// internal/repository/postgres/session_repo.go
package postgres

import (
	"context"
	"fmt"

	xerrors "dealboard-gateway/internal/pkg/errors"
	"dealboard-gateway/internal/pkg/session"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepository persists session audit rows. Redis holds the live
// session; these rows survive it for sign-in history and org-switch tracking.
type SessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// CreateRecord inserts the audit row for a fresh login. A repeated login with
// the same token reopens the existing row instead of duplicating it.
func (r *SessionRepository) CreateRecord(ctx context.Context, rec *session.Record) error {
	query := `
		INSERT INTO session_records (
			token_digest, user_id, name, role, current_org_id, seen_org_ids,
			ip_address, user_agent, login_at, last_activity_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (token_digest) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			name = EXCLUDED.name,
			role = EXCLUDED.role,
			last_activity_at = NOW(),
			ended_at = NULL,
			end_reason = NULL
		RETURNING id, login_at, last_activity_at
	`

	err := r.db.QueryRow(ctx, query,
		rec.TokenDigest, rec.UserID, rec.Name, rec.Role, rec.CurrentOrgID,
		rec.SeenOrgIDs, rec.IPAddress, rec.UserAgent,
	).Scan(&rec.ID, &rec.LoginAt, &rec.LastActivityAt)
	if err != nil {
		return fmt.Errorf("failed to create session record: %w", err)
	}

	return nil
}

// TouchActivity bumps last_activity_at on the open row for this token.
func (r *SessionRepository) TouchActivity(ctx context.Context, tokenDigest string) error {
	query := `
		UPDATE session_records
		SET last_activity_at = NOW()
		WHERE token_digest = $1 AND ended_at IS NULL
	`

	if _, err := r.db.Exec(ctx, query, tokenDigest); err != nil {
		return fmt.Errorf("failed to touch session activity: %w", err)
	}

	return nil
}

// RecordOrgSwitch sets the current organization and role on the open row,
// appending the organization to seen_org_ids the first time it shows up.
func (r *SessionRepository) RecordOrgSwitch(ctx context.Context, tokenDigest, orgID, role string) error {
	query := `
		UPDATE session_records
		SET current_org_id = $2,
		    role = $3,
		    seen_org_ids = CASE
		        WHEN $2 = ANY(seen_org_ids) THEN seen_org_ids
		        ELSE array_append(seen_org_ids, $2)
		    END,
		    last_activity_at = NOW()
		WHERE token_digest = $1 AND ended_at IS NULL
	`

	tag, err := r.db.Exec(ctx, query, tokenDigest, orgID, role)
	if err != nil {
		return fmt.Errorf("failed to record org switch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// CloseRecord marks the row ended with the given reason. Already-closed rows
// are left alone so the first reason wins.
func (r *SessionRepository) CloseRecord(ctx context.Context, tokenDigest, reason string) error {
	query := `
		UPDATE session_records
		SET ended_at = NOW(), end_reason = $2
		WHERE token_digest = $1 AND ended_at IS NULL
	`

	if _, err := r.db.Exec(ctx, query, tokenDigest, reason); err != nil {
		return fmt.Errorf("failed to close session record: %w", err)
	}

	return nil
}

// FindRecord retrieves the audit row for a token digest.
func (r *SessionRepository) FindRecord(ctx context.Context, tokenDigest string) (*session.Record, error) {
	query := `
		SELECT id, token_digest, user_id, name, role, current_org_id, seen_org_ids,
		       ip_address, user_agent, login_at, last_activity_at, ended_at, end_reason
		FROM session_records
		WHERE token_digest = $1
	`

	var rec session.Record
	err := r.db.QueryRow(ctx, query, tokenDigest).Scan(
		&rec.ID, &rec.TokenDigest, &rec.UserID, &rec.Name, &rec.Role,
		&rec.CurrentOrgID, &rec.SeenOrgIDs, &rec.IPAddress, &rec.UserAgent,
		&rec.LoginAt, &rec.LastActivityAt, &rec.EndedAt, &rec.EndReason,
	)
	if err == pgx.ErrNoRows {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find session record: %w", err)
	}

	return &rec, nil
}
