package publishers

import (
	"os"
	"path/filepath"
	"testing"
)

func writePublishersFile(t *testing.T, name, raw string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestLoadRegistryEnabledFilter(t *testing.T) {
	path := writePublishersFile(t, "publishers.yaml", `
publishers:
  - id: http1
    type: http
    enabled: false
    http:
      url: https://example.com
  - id: http2
    type: HTTP
    http:
      url: " https://example.com/2 "
      method: put
`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	enabled := reg.Enabled()
	if len(enabled) != 1 || enabled[0].ID != "http2" {
		t.Fatalf("expected only http2 enabled, got %#v", enabled)
	}
	cfg, ok := reg.ByID("http2")
	if !ok {
		t.Fatalf("expected http2 lookup to succeed")
	}
	if cfg.Type != TypeHTTP || cfg.HTTP.Method != "PUT" || cfg.HTTP.URL != "https://example.com/2" {
		t.Fatalf("config not sanitized: %#v", cfg.HTTP)
	}
	if cfg.HTTP.TimeoutSeconds != httpDefaultTimeoutSeconds {
		t.Fatalf("expected default timeout, got %d", cfg.HTTP.TimeoutSeconds)
	}
}

func TestLoadRegistryAWSAndPubSub(t *testing.T) {
	path := writePublishersFile(t, "publishers.yml", `
publishers:
  - id: queue
    type: sqs
    sqs:
      uri: https://sqs.us-east-1.amazonaws.com/123/orders
      region: us-east-1
      endpoint: http://localhost:4566
  - id: topic
    type: sns
    sns:
      topic_arn: arn:aws:sns:us-east-1:123:orders
      region: us-east-1
      access_key_id: AKID
      secret_access_key: SECRET
  - id: gcp
    type: pubsub
    pubsub:
      project_id: shop
      topic: ob-events
`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if len(reg.All()) != 3 {
		t.Fatalf("expected 3 publishers, got %d", len(reg.All()))
	}
	q, _ := reg.ByID("queue")
	if q.SQS.Region != "us-east-1" || q.SQS.Endpoint != "http://localhost:4566" {
		t.Fatalf("inline aws fields not decoded: %#v", q.SQS)
	}
	topic, _ := reg.ByID("topic")
	if topic.SNS.AccessKeyID != "AKID" {
		t.Fatalf("sns credentials not decoded: %#v", topic.SNS)
	}
	gcp, _ := reg.ByID("gcp")
	if gcp.PubSub.Topic != "ob-events" {
		t.Fatalf("pubsub topic not decoded: %#v", gcp.PubSub)
	}
}

func TestLoadRegistryJSON(t *testing.T) {
	path := writePublishersFile(t, "publishers.json", `{"publishers":[{"id":"h","type":"http","http":{"url":"https://example.com"}}]}`)
	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if _, ok := reg.ByID("h"); !ok {
		t.Fatalf("expected publisher h")
	}
}

func TestLoadRegistryRejectsDuplicates(t *testing.T) {
	path := writePublishersFile(t, "publishers.yaml", `
publishers:
  - id: dup
    type: http
    http:
      url: https://a
  - id: dup
    type: http
    http:
      url: https://b
`)
	if _, err := LoadRegistry(path); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestLoadRegistryEmptyPath(t *testing.T) {
	if _, err := LoadRegistry("  "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestValidatePublisherConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  PublisherConfig
	}{
		{"missing id", PublisherConfig{Type: TypeHTTP}},
		{"missing http", PublisherConfig{ID: "h1", Type: TypeHTTP}},
		{"sqs without region", PublisherConfig{ID: "q", Type: TypeSQS, SQS: &SQSPublisherConfig{QueueURL: "u"}}},
		{"sns without arn", PublisherConfig{ID: "s", Type: TypeSNS, SNS: &SNSPublisherConfig{AWSAuthConfig: AWSAuthConfig{Region: "r"}}}},
		{"pubsub without topic", PublisherConfig{ID: "p", Type: TypePubSub, PubSub: &PubSubPublisherConfig{ProjectID: "x"}}},
		{"unknown type", PublisherConfig{ID: "k", Type: "kafka"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := validatePublisherConfig(tc.cfg); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
