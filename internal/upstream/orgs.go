// internal/upstream/orgs.go
package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"dealboard-gateway/internal/domain/org"
)

// MyOrganizations fetches the raw "my organizations" payload. The shape has
// drifted across backend iterations, so decoding is left to the membership
// normalizer; this call is the one the AuthTransport exempts from org scoping.
func (c *Client) MyOrganizations(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/orgs/my", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// CreateOrganization creates a new organization owned by the current user.
func (c *Client) CreateOrganization(ctx context.Context, req *org.CreateOrganizationRequest) (*org.Organization, error) {
	var created org.Organization
	if err := c.do(ctx, http.MethodPost, "/orgs", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// AddMember adds a user to an organization with a role.
func (c *Client) AddMember(ctx context.Context, orgID string, req *org.AddMemberRequest) error {
	return c.do(ctx, http.MethodPost, "/orgs/"+orgID+"/members", req, nil)
}
