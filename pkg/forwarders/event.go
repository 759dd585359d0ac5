package forwarders

import (
	"time"

	"github.com/simplemsg-hq/simplemsg-go/internal/domain"
)

// Event represents the payload forwarded downstream.
type Event struct {
	ReceiverID  string              `json:"receiver_id"`
	Event       domain.WebhookEvent `json:"event"`
	ForwardedAt time.Time           `json:"forwarded_at"`
}

// NewEvent constructs an Event for the given receiver + webhook delivery.
func NewEvent(receiverID string, evt domain.WebhookEvent) Event {
	return Event{
		ReceiverID:  receiverID,
		Event:       evt,
		ForwardedAt: time.Now().UTC(),
	}
}
