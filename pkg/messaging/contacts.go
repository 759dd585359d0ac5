package messaging

import (
	"context"
	"net/http"
	"strconv"
)

const (
	defaultContactPageIndex = 0
	defaultContactPageSize  = 10
)

// CreateContact creates a contact with the given name and phone number.
func (c *Client) CreateContact(ctx context.Context, name, phone string) (*Contact, error) {
	var out Contact
	body := Contact{Name: name, Phone: phone}
	if err := c.do(ctx, http.MethodPost, "/contacts", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetContact retrieves a contact by ID.
func (c *Client) GetContact(ctx context.Context, id string) (*Contact, error) {
	var out Contact
	if err := c.do(ctx, http.MethodGet, "/contacts/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListContacts lists contacts one page at a time. pageIndex below zero falls
// back to 0 and max below one falls back to 10, matching the API defaults.
// The contacts resource paginates with pageIndex/max; the messages resource
// uses page/limit. The two shapes are dictated by the remote API.
func (c *Client) ListContacts(ctx context.Context, pageIndex, max int) (*ContactPage, error) {
	if pageIndex < 0 {
		pageIndex = defaultContactPageIndex
	}
	if max <= 0 {
		max = defaultContactPageSize
	}

	query := map[string]string{
		"pageIndex": strconv.Itoa(pageIndex),
		"max":       strconv.Itoa(max),
	}

	var out ContactPage
	if err := c.do(ctx, http.MethodGet, "/contacts", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateContact patches a contact. Params fields left nil are sent as JSON
// null and overwrite the server-side value; see UpdateContactParams.
func (c *Client) UpdateContact(ctx context.Context, id string, params UpdateContactParams) (*Contact, error) {
	var out Contact
	if err := c.do(ctx, http.MethodPatch, "/contacts/"+id, nil, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteContact deletes a contact by ID. The server's response body is
// discarded; on success a locally synthesized acknowledgment is returned.
func (c *Client) DeleteContact(ctx context.Context, id string) (*DeleteResponse, error) {
	if err := c.do(ctx, http.MethodDelete, "/contacts/"+id, nil, nil, nil); err != nil {
		return nil, err
	}
	return &DeleteResponse{Message: "Contact deleted successfully"}, nil
}
