package forwarders

import "context"

// Forwarder delivers verified webhook events to a downstream sink (SQS, SNS,
// HTTP, Pub/Sub, etc).
type Forwarder interface {
	ID() string
	Type() string
	Forward(ctx context.Context, evt Event) error
}
