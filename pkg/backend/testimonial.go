package backend

import (
	"context"
)

const (
	TestimonialPending  = "Pending"
	TestimonialApproved = "Approved"
	TestimonialRejected = "Rejected"
)

type Testimonial struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	Content       string  `json:"content"`
	Status        string  `json:"status"`
	AdminComments *string `json:"admin_comments,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

func (c *Client) ListTestimonials(ctx context.Context) ([]*Testimonial, error) {
	var testimonials []*Testimonial
	resp, err := c.req(ctx).
		SetResult(&testimonials).
		Get("/testimonials/getall")
	if err := c.checked(ctx, resp, err); err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (c *Client) CreateTestimonial(ctx context.Context, content string) (*Testimonial, error) {
	created := new(Testimonial)
	resp, err := c.req(ctx).
		SetBody(map[string]string{"content": content}).
		SetResult(created).
		Post("/testimonials")
	if err := c.checked(ctx, resp, err); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateTestimonial(ctx context.Context, testimonialID, content string) (*Testimonial, error) {
	updated := new(Testimonial)
	resp, err := c.req(ctx).
		SetBody(map[string]string{"content": content}).
		SetResult(updated).
		Put("/testimonials/" + testimonialID)
	if err := c.checked(ctx, resp, err); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteTestimonial(ctx context.Context, testimonialID string) error {
	resp, err := c.req(ctx).
		Delete("/testimonials/" + testimonialID)
	return c.checked(ctx, resp, err)
}
