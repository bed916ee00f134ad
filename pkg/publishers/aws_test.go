package publishers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/p2pvps/openbazaar-node/internal/domain"
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
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-1")}, nil
}

type fakeSNSClient struct {
	input *sns.PublishInput
	err   error
}

func (f *fakeSNSClient) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: aws.String("msg-123")}, nil
}

func orderEvent() Event {
	return NewEvent(domain.Notification{
		ID:      "n-42",
		Type:    domain.NotificationTypeOrder,
		OrderID: "QmOrder",
	}, &domain.OrderSummary{OrderID: "QmOrder", State: "AWAITING_PAYMENT"})
}

func TestSQSPublisherSendSuccess(t *testing.T) {
	client := &fakeSQSClient{}
	pub := &sqsPublisher{id: "q", typ: TypeSQS, queueURL: "https://sqs.local/q", client: client, log: noopLogger{}}

	evt := orderEvent()
	if err := pub.Publish(context.Background(), evt); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if client.input == nil {
		t.Fatalf("client was not called")
	}
	if got := aws.ToString(client.input.QueueUrl); got != "https://sqs.local/q" {
		t.Fatalf("QueueUrl = %s", got)
	}
	attr, ok := client.input.MessageAttributes["order_id"]
	if !ok || aws.ToString(attr.StringValue) != "QmOrder" || aws.ToString(attr.DataType) != "String" {
		t.Fatalf("order_id attribute missing or wrong: %#v", attr)
	}
	if !strings.Contains(aws.ToString(client.input.MessageBody), `"id":"`+evt.ID+`"`) {
		t.Fatalf("message body missing event id: %s", aws.ToString(client.input.MessageBody))
	}
}

func TestSQSPublisherSkipsEmptyAttributes(t *testing.T) {
	client := &fakeSQSClient{}
	pub := &sqsPublisher{id: "q", typ: TypeSQS, queueURL: "q", client: client, log: noopLogger{}}

	if err := pub.Publish(context.Background(), NewEvent(domain.Notification{ID: "n-1"}, nil)); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if _, ok := client.input.MessageAttributes["notification_type"]; ok {
		t.Fatalf("empty attribute should not be sent")
	}
}

func TestSQSPublisherSendError(t *testing.T) {
	client := &fakeSQSClient{err: errors.New("boom")}
	pub := &sqsPublisher{id: "q", typ: TypeSQS, queueURL: "q", client: client, log: noopLogger{}}

	if err := pub.Publish(context.Background(), orderEvent()); err == nil {
		t.Fatalf("expected error from Publish")
	}
}

func TestSNSPublisherSendSuccess(t *testing.T) {
	client := &fakeSNSClient{}
	pub := &snsPublisher{id: "t", typ: TypeSNS, topicARN: "arn:aws:sns:::topic", client: client, log: noopLogger{}}

	if err := pub.Publish(context.Background(), orderEvent()); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if got := aws.ToString(client.input.TopicArn); got != "arn:aws:sns:::topic" {
		t.Fatalf("TopicArn = %s", got)
	}
	attr, ok := client.input.MessageAttributes["notification_id"]
	if !ok || aws.ToString(attr.StringValue) != "n-42" {
		t.Fatalf("notification_id attribute missing or wrong: %#v", attr)
	}
	if !strings.Contains(aws.ToString(client.input.Message), `"state":"AWAITING_PAYMENT"`) {
		t.Fatalf("message missing order summary: %s", aws.ToString(client.input.Message))
	}
}

func TestSNSPublisherSendError(t *testing.T) {
	client := &fakeSNSClient{err: errors.New("boom")}
	pub := &snsPublisher{id: "t", typ: TypeSNS, topicARN: "arn", client: client, log: noopLogger{}}

	if err := pub.Publish(context.Background(), orderEvent()); err == nil {
		t.Fatalf("expected error from Publish")
	}
}

func TestLoadAWSConfigStaticCredentials(t *testing.T) {
	cfg, err := loadAWSConfig(context.Background(), AWSAuthConfig{
		Region:          "us-east-1",
		Endpoint:        "http://localhost:4566",
		AccessKeyID:     "AKID",
		SecretAccessKey: "SECRET",
	})
	if err != nil {
		t.Fatalf("loadAWSConfig: %v", err)
	}
	if cfg.Region != "us-east-1" {
		t.Fatalf("Region = %s", cfg.Region)
	}
	if aws.ToString(cfg.BaseEndpoint) != "http://localhost:4566" {
		t.Fatalf("BaseEndpoint = %s", aws.ToString(cfg.BaseEndpoint))
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if creds.AccessKeyID != "AKID" {
		t.Fatalf("AccessKeyID = %s", creds.AccessKeyID)
	}
}
