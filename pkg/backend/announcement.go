package backend

import (
	"context"
)

// Timestamps stay as the backend's naive datetime strings; the client
// only displays them.
type Announcement struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Content   *string `json:"content,omitempty"`
	AuthorID  *string `json:"author_id,omitempty"`
	IsPinned  bool    `json:"is_pinned"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type AnnouncementCreate struct {
	Title     string  `json:"title"`
	Content   *string `json:"content,omitempty"`
	IsPinned  bool    `json:"is_pinned"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

func (c *Client) ListAnnouncements(ctx context.Context) ([]*Announcement, error) {
	var announcements []*Announcement
	resp, err := c.req(ctx).
		SetResult(&announcements).
		Get("/announcement/get-all")
	if err := c.checked(ctx, resp, err); err != nil {
		return nil, err
	}
	return announcements, nil
}

func (c *Client) CreateAnnouncement(ctx context.Context, a *AnnouncementCreate) (*Announcement, error) {
	created := new(Announcement)
	resp, err := c.req(ctx).
		SetBody(a).
		SetResult(created).
		Post("/announcement/create")
	if err := c.checked(ctx, resp, err); err != nil {
		return nil, err
	}
	return created, nil
}

// MarkAnnouncementRead flags the announcement as read for the
// authenticated user.
func (c *Client) MarkAnnouncementRead(ctx context.Context, announcementID string) error {
	resp, err := c.req(ctx).
		SetQueryParam("announcement_id", announcementID).
		Put("/announcement/mark-as-read")
	return c.checked(ctx, resp, err)
}

func (c *Client) DeleteAnnouncement(ctx context.Context, announcementID string) error {
	resp, err := c.req(ctx).
		Delete("/announcement/delete/" + announcementID)
	return c.checked(ctx, resp, err)
}
