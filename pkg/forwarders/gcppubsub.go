package forwarders

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

// gcpPubSubSender implements the Forwarder interface for Google Cloud Pub/Sub.
type gcpPubSubSender struct {
	id    string
	typ   string
	topic *pubsub.Topic
	log   Logger
}

// newGCPPubSubForwarder adapts the registry builder signature to the sender constructor.
func newGCPPubSubForwarder(ctx context.Context, cfg ForwarderConfig, log Logger) (Forwarder, error) {
	if cfg.GCP == nil {
		return nil, fmt.Errorf("forwarder %q missing gcppubsub configuration", cfg.ID)
	}
	sender, err := newGCPPubSubSender(ctx, cfg.GCP, log)
	if err != nil {
		return nil, err
	}
	sender.id = cfg.ID
	return sender, nil
}

// newGCPPubSubSender creates a Pub/Sub sender for the given project/topic.
func newGCPPubSubSender(ctx context.Context, cfg *GCPQueueConfig, log Logger) (*gcpPubSubSender, error) {
	if cfg == nil {
		return nil, fmt.Errorf("gcppubsub configuration is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := pubsub.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create pubsub client: %w", err)
	}

	return &gcpPubSubSender{
		typ:   TypeGCPPubSub,
		topic: client.Topic(cfg.Topic),
		log:   ensureLogger(log),
	}, nil
}

func (g *gcpPubSubSender) ID() string   { return g.id }
func (g *gcpPubSubSender) Type() string { return g.typ }

// Forward publishes the event to the configured Pub/Sub topic and waits for
// the server acknowledgment.
func (g *gcpPubSubSender) Forward(ctx context.Context, evt Event) error {
	return g.Send(ctx, evt)
}

// Send publishes one event and blocks until the publish result is known.
func (g *gcpPubSubSender) Send(ctx context.Context, evt Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	res := g.topic.Publish(ctx, &pubsub.Message{
		Data: payload,
		Attributes: map[string]string{
			"event_id": evt.Event.ID,
		},
	})

	if _, err := res.Get(ctx); err != nil {
		g.log.ErrorObj("pubsub forwarder publish failed", "forwarder_pubsub_error", map[string]any{
			"forwarder_id": g.id,
			"error":        err.Error(),
		})
		return fmt.Errorf("publish to pubsub: %w", err)
	}
	g.log.DebugObj("pubsub forwarder delivered event", "forwarder_pubsub_delivery", map[string]any{
		"forwarder_id": g.id,
	})
	return nil
}
