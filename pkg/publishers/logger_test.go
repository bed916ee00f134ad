package publishers

import (
	"context"
	"errors"
	"testing"
)

type captureLogger struct {
	noopLogger
	keys   []string
	fields []map[string]any
}

func (c *captureLogger) DebugObj(_ string, key string, obj any) { c.record(key, obj) }
func (c *captureLogger) ErrorObj(_ string, key string, obj any) { c.record(key, obj) }

func (c *captureLogger) record(key string, obj any) {
	c.keys = append(c.keys, key)
	m, _ := obj.(map[string]any)
	c.fields = append(c.fields, m)
}

func TestLogDeliveryKeys(t *testing.T) {
	log := &captureLogger{}
	client := &fakeSNSClient{}
	pub := &snsPublisher{id: "t", typ: TypeSNS, topicARN: "arn", client: client, log: log}

	if err := pub.Publish(context.Background(), orderEvent()); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	client.err = errors.New("throttled")
	_ = pub.Publish(context.Background(), orderEvent())

	if len(log.keys) != 2 || log.keys[0] != "publisher_sns_delivery" || log.keys[1] != "publisher_sns_error" {
		t.Fatalf("unexpected log keys %v", log.keys)
	}
	if log.fields[0]["message_id"] != "msg-123" || log.fields[0]["notification_id"] != "n-42" {
		t.Fatalf("unexpected delivery fields %#v", log.fields[0])
	}
	if log.fields[1]["error"] != "throttled" {
		t.Fatalf("unexpected error fields %#v", log.fields[1])
	}
}
