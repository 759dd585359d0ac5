package forwarders

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// snsClient defines the minimal subset of the SNS client used by snsForwarder.
type snsClient interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// snsForwarder implements the Forwarder interface for AWS SNS topics.
type snsForwarder struct {
	id       string
	topicARN string
	typ      string
	client   snsClient
	log      Logger
}

// newSNSForwarder creates a new SNS forwarder with the given configuration.
func newSNSForwarder(ctx context.Context, cfg ForwarderConfig, log Logger) (Forwarder, error) {
	if cfg.SNS == nil {
		return nil, fmt.Errorf("forwarder %q missing sns configuration", cfg.ID)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(cfg.SNS.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &snsForwarder{
		id:       cfg.ID,
		typ:      TypeSNS,
		topicARN: cfg.SNS.TopicARN,
		client:   sns.NewFromConfig(awsCfg),
		log:      ensureLogger(log),
	}, nil
}

func (s *snsForwarder) ID() string   { return s.id }
func (s *snsForwarder) Type() string { return s.typ }

// Forward publishes the event to the configured SNS topic.
func (s *snsForwarder) Forward(ctx context.Context, evt Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	input := &sns.PublishInput{
		TopicArn: aws.String(s.topicARN),
		Message:  aws.String(string(payload)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"event_id": {
				DataType:    aws.String("String"),
				StringValue: aws.String(evt.Event.ID),
			},
		},
	}

	if _, err := s.client.Publish(ctx, input); err != nil {
		s.log.ErrorObj("sns forwarder publish failed", "forwarder_sns_error", map[string]any{
			"forwarder_id": s.id,
			"error":        err.Error(),
		})
		return fmt.Errorf("publish to sns: %w", err)
	}
	s.log.DebugObj("sns forwarder delivered event", "forwarder_sns_delivery", map[string]any{
		"forwarder_id": s.id,
	})
	return nil
}
