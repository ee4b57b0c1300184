package backend

import (
	"context"

	"github.com/ASTRELLECT/SynVotra/pkg/logger"
)

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
}

// Authenticate exchanges credentials for a bearer token. The token
// endpoint is OAuth2 form-encoded. A 401 here is a credential error,
// not a session expiry, so the invalidation hook is deliberately not
// fired.
func (c *Client) Authenticate(ctx context.Context, email, password string) (*TokenResponse, error) {
	tr := new(TokenResponse)
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": email,
			"password": password,
		}).
		SetResult(tr).
		Post("/auth/token")
	if err != nil {
		logger.Log(ctx).Errorf("backend: failed sending login request, %v", err)
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return tr, nil
}

// ChangePassword updates the authenticated user's password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	resp, err := c.req(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"old_password": oldPassword,
			"new_password": newPassword,
		}).
		Post("/auth/change-password")
	return c.checked(ctx, resp, err)
}
