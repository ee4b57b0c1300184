package backend

import (
	"context"
)

type Policy struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	DocumentURL *string `json:"document_url,omitempty"`
	Version     *string `json:"version,omitempty"`
	IsActive    bool    `json:"is_active"`
}

type PolicyCreate struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	DocumentURL *string `json:"document_url,omitempty"`
	Version     *string `json:"version,omitempty"`
	IsActive    bool    `json:"is_active"`
}

func (c *Client) ListPolicies(ctx context.Context) ([]*Policy, error) {
	var policies []*Policy
	resp, err := c.req(ctx).
		SetResult(&policies).
		Get("/policy/getall")
	if err := c.checked(ctx, resp, err); err != nil {
		return nil, err
	}
	return policies, nil
}

func (c *Client) CreatePolicy(ctx context.Context, p *PolicyCreate) (*Policy, error) {
	created := new(Policy)
	resp, err := c.req(ctx).
		SetBody(p).
		SetResult(created).
		Post("/policy/create_new_policy")
	if err := c.checked(ctx, resp, err); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdatePolicy(ctx context.Context, policyID string, p *PolicyCreate) (*Policy, error) {
	updated := new(Policy)
	resp, err := c.req(ctx).
		SetBody(p).
		SetResult(updated).
		Put("/policy/edit_policy/" + policyID)
	if err := c.checked(ctx, resp, err); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeletePolicy(ctx context.Context, policyID string) error {
	resp, err := c.req(ctx).
		Delete("/policy/delete_policy/" + policyID)
	return c.checked(ctx, resp, err)
}
