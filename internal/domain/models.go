package domain

import (
	"encoding/json"
	"time"
)

// Domain contains core models and interfaces.

// WebhookEvent is a verified inbound webhook delivery. ID is derived from the
// raw request body (SHA-256 hex), so redeliveries of the same payload share
// the same ID.
type WebhookEvent struct {
	ID         string          `json:"id"`
	ReceivedAt time.Time       `json:"received_at"`
	Payload    json.RawMessage `json:"payload"`
}
