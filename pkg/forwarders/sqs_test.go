package forwarders

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/simplemsg-hq/simplemsg-go/internal/domain"
)

type fakeSQSClient struct {
	input *sqs.SendMessageInput
	err   error
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-123")}, nil
}

func TestSQSForwarderForwardSuccess(t *testing.T) {
	client := &fakeSQSClient{}
	fwd := &sqsForwarder{
		id:       "queue",
		typ:      TypeSQS,
		queueURL: "https://sqs.example.com/q",
		client:   client,
		log:      noopLogger{},
	}

	err := fwd.Forward(context.Background(), NewEvent("receiver-1", domain.WebhookEvent{ID: "e1"}))
	if err != nil {
		t.Fatalf("Forward returned error: %v", err)
	}
	if client.input == nil {
		t.Fatalf("client was not called")
	}
	if got := aws.ToString(client.input.QueueUrl); got != "https://sqs.example.com/q" {
		t.Fatalf("QueueUrl = %s", got)
	}
	attr, ok := client.input.MessageAttributes["event_id"]
	if !ok || attr.StringValue == nil || aws.ToString(attr.StringValue) != "e1" {
		t.Fatalf("event_id attribute missing or wrong: %#v", attr)
	}
	if client.input.MessageBody == nil || !strings.Contains(aws.ToString(client.input.MessageBody), `"receiver_id":"receiver-1"`) {
		t.Fatalf("MessageBody missing receiver_id: %s", aws.ToString(client.input.MessageBody))
	}
}

func TestSQSForwarderForwardError(t *testing.T) {
	fwd := &sqsForwarder{
		id:       "queue",
		typ:      TypeSQS,
		queueURL: "https://sqs.example.com/q",
		client:   &fakeSQSClient{err: errors.New("throttled")},
		log:      noopLogger{},
	}

	if err := fwd.Forward(context.Background(), Event{}); err == nil {
		t.Fatalf("expected error from failed send")
	}
}
