package messaging

import (
	"context"
	"net/http"
	"strconv"
)

const (
	defaultMessagePage     = 1
	defaultMessagePageSize = 100
)

// SendMessage sends content from the given phone number to the contact with
// the given ID.
func (c *Client) SendMessage(ctx context.Context, fromPhone, toContactID, content string) (*Message, error) {
	var out Message
	body := Message{
		From:    fromPhone,
		To:      Recipient{ID: toContactID},
		Content: content,
	}
	if err := c.do(ctx, http.MethodPost, "/messages", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMessage retrieves a message by ID.
func (c *Client) GetMessage(ctx context.Context, id string) (*Message, error) {
	var out Message
	if err := c.do(ctx, http.MethodGet, "/messages/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMessages lists messages one page at a time. page below one falls back
// to 1 and limit below one falls back to 100, matching the API defaults.
func (c *Client) ListMessages(ctx context.Context, page, limit int) (*MessagePage, error) {
	if page <= 0 {
		page = defaultMessagePage
	}
	if limit <= 0 {
		limit = defaultMessagePageSize
	}

	query := map[string]string{
		"page":  strconv.Itoa(page),
		"limit": strconv.Itoa(limit),
	}

	var out MessagePage
	if err := c.do(ctx, http.MethodGet, "/messages", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
