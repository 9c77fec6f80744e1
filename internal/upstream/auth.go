// internal/upstream/auth.go
package upstream

import (
	"context"
	"net/http"

	"dealboard-gateway/internal/domain/auth"
	"dealboard-gateway/internal/domain/user"
)

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, req *auth.LoginRequest) (*auth.AuthResponse, error) {
	var resp auth.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and logs it in.
func (c *Client) Register(ctx context.Context, req *auth.RegisterRequest) (*auth.AuthResponse, error) {
	var resp auth.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me fetches the current user's profile.
func (c *Client) Me(ctx context.Context) (*user.Profile, error) {
	var p user.Profile
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateMe updates the current user's profile.
func (c *Client) UpdateMe(ctx context.Context, p *user.Profile) (*user.Profile, error) {
	var updated user.Profile
	if err := c.do(ctx, http.MethodPut, "/users/me", p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
