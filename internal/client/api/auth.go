package api

import (
	"context"
	"net/http"

	"github.com/johntran041/jobly-client/internal/client/models"
)

// Login authenticates with email/password. The returned principal carries
// the bearer token; the caller decides when to install it via SetToken.
func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.Principal, error) {
	var out struct {
		User  models.Principal `json:"user"`
		Token string           `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &out); err != nil {
		return nil, err
	}
	p := out.User
	p.Token = out.Token
	return &p, nil
}

// Register creates an account and logs it in; response shape matches Login.
func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.Principal, error) {
	var out struct {
		User  models.Principal `json:"user"`
		Token string           `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &out); err != nil {
		return nil, err
	}
	p := out.User
	p.Token = out.Token
	return &p, nil
}

// UpdateProfile partially updates the authenticated user. The response user
// has no token; the caller keeps the one it holds.
func (c *HTTPClient) UpdateProfile(ctx context.Context, req models.ProfileUpdate) (*models.Principal, error) {
	var out struct {
		User models.Principal `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/users/me", nil, req, &out); err != nil {
		return nil, err
	}
	p := out.User
	return &p, nil
}
