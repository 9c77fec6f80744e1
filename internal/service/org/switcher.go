// internal/service/org/switcher.go
package org

import (
	"context"
	"fmt"

	"dealboard-gateway/internal/domain/org"
	xerrors "dealboard-gateway/internal/pkg/errors"
	"dealboard-gateway/internal/pkg/session"
	"dealboard-gateway/internal/upstream"

	"go.uber.org/zap"
)

// OrgService lists the organizations the current user belongs to and handles
// switching the active one.
type OrgService struct {
	client *upstream.Client
	store  *session.Store
	logger *zap.Logger
}

func NewOrgService(client *upstream.Client, store *session.Store, logger *zap.Logger) *OrgService {
	return &OrgService{client: client, store: store, logger: logger}
}

// Memberships fetches and normalizes the caller's organizations. Upstream
// failure degrades to an empty list: the organizations page renders its "No
// organizations found" state instead of an error.
func (s *OrgService) Memberships(ctx context.Context, activeOrgID string) []org.Membership {
	raw, err := s.client.MyOrganizations(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch organizations", zap.Error(err))
		return []org.Membership{}
	}

	memberships := NormalizeMemberships(raw)
	for i := range memberships {
		memberships[i].Active = activeOrgID != "" && memberships[i].OrganizationID == activeOrgID
	}
	return memberships
}

// SelectActive makes orgID the active organization for the session: it
// resolves the caller's membership, then writes org id and membership role to
// the store in one step. The store write completes before this returns, so
// the caller can only trigger the client reload after a consistent pair is
// readable.
func (s *OrgService) SelectActive(ctx context.Context, sess *session.Session, orgID string) (*org.Membership, error) {
	if !sess.Authenticated() {
		return nil, xerrors.ErrSessionExpired
	}

	raw, err := s.client.MyOrganizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch organizations: %w", err)
	}

	var membership *org.Membership
	for _, m := range NormalizeMemberships(raw) {
		if m.OrganizationID == orgID {
			membership = &m
			break
		}
	}
	if membership == nil {
		return nil, xerrors.ErrMembershipNotFound
	}

	if err := s.store.SetActiveOrganization(ctx, sess.Token, membership.OrganizationID, membership.Role); err != nil {
		return nil, err
	}

	s.logger.Info("active organization switched",
		zap.String("user_id", sess.UserID),
		zap.String("org_id", membership.OrganizationID),
		zap.String("role", membership.Role),
	)

	membership.Active = true
	return membership, nil
}

// Create creates a new organization upstream.
func (s *OrgService) Create(ctx context.Context, req *org.CreateOrganizationRequest) (*org.Organization, error) {
	created, err := s.client.CreateOrganization(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	return created, nil
}

// AddMember adds a user to an organization.
func (s *OrgService) AddMember(ctx context.Context, orgID string, req *org.AddMemberRequest) error {
	if err := s.client.AddMember(ctx, orgID, req); err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}
