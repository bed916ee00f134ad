package openbazaar

import (
	"errors"
	"time"

	"github.com/p2pvps/openbazaar-node/pkg/httpclient"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithHTTPClient replaces the default resty-backed request helper.
func WithHTTPClient(hc httpclient.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithTimeout overrides ClientConfig.Timeout. It has no effect together with
// WithHTTPClient since the injected client owns its own deadlines.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d < 0 {
			return errors.New("timeout must not be negative")
		}
		c.cfg.Timeout = d
		return nil
	}
}

// WithLogger enables debug request traces.
func WithLogger(log Logger) Option {
	return func(c *Client) error {
		c.log = ensureLogger(log)
		return nil
	}
}
