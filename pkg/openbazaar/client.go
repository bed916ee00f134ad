package openbazaar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/p2pvps/openbazaar-node/pkg/httpclient"
)

// Client issues requests against a single daemon. It holds no mutable state
// after New returns and is safe for concurrent use.
type Client struct {
	cfg  ClientConfig
	http httpclient.Client
	log  Logger
}

// New validates cfg and constructs a Client.
func New(cfg ClientConfig, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	c := &Client{
		cfg: cfg,
		log: noopLogger{},
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(c.cfg.Timeout)
	}
	return c, nil
}

// Config returns a copy of the client's configuration.
func (c *Client) Config() ClientConfig { return c.cfg }

// call sends one JSON request and decodes a 2xx body into out. A nil payload
// sends no body; an empty response body leaves out untouched.
func (c *Client) call(ctx context.Context, op, method, path string, payload, out any) error {
	req := httpclient.Request{
		Method: method,
		URL:    c.cfg.Endpoint(path),
		Headers: map[string]string{
			"Authorization": c.cfg.Credentials,
			"Accept":        "application/json",
		},
	}
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return &Error{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		req.Body = body
		req.Headers["Content-Type"] = "application/json"
	}

	start := time.Now()
	resp, err := c.http.Do(ctx, req)
	elapsed := time.Since(start)
	if err != nil {
		observeRequest(op, 0, err, elapsed)
		return &Error{Op: op, Err: err}
	}

	status := resp.StatusCode()
	body := resp.Body()
	observeRequest(op, status, nil, elapsed)
	c.log.DebugObj("openbazaar request", "ob_request", map[string]any{
		"operation":  op,
		"method":     method,
		"url":        req.URL,
		"status":     status,
		"elapsed_ms": elapsed.Milliseconds(),
	})

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return newStatusError(op, status, body)
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Op: op, StatusCode: status, Body: body, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
