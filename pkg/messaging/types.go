package messaging

// Contact is a messaging API contact. IDs are assigned by the API; the client
// never generates or validates them.
type Contact struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ContactPage is one page of a contact listing.
type ContactPage struct {
	Contacts []Contact `json:"contacts"`
}

// Recipient addresses a message to a contact by ID.
type Recipient struct {
	ID string `json:"id"`
}

// Message is a messaging API message. Status is owned by the server.
type Message struct {
	ID      string    `json:"id,omitempty"`
	From    string    `json:"from"`
	To      Recipient `json:"to"`
	Content string    `json:"content"`
	Status  string    `json:"status,omitempty"`
}

// MessagePage is one page of a message listing.
type MessagePage struct {
	Messages []Message `json:"messages"`
}

// UpdateContactParams carries the PATCH body for UpdateContact. Fields left
// nil are still sent, serialized as JSON null; the remote API treats that as
// an overwrite, so unset fields clear their server-side values.
type UpdateContactParams struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// DeleteResponse acknowledges a contact deletion. It is synthesized by the
// client; the server's own response body is discarded.
type DeleteResponse struct {
	Message string `json:"message"`
}

// String returns a pointer to s, for optional fields.
func String(s string) *string { return &s }
