package openbazaar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultPort is the daemon's default REST API port.
const DefaultPort = 4002

// ClientConfig holds everything needed to reach the daemon.
type ClientConfig struct {
	// BaseURL is scheme and host without a port, e.g. "http://localhost".
	BaseURL string
	// Port is appended to BaseURL. Zero means BaseURL is used as-is.
	Port int
	// Credentials is the full Authorization value, see BuildAuthHeader.
	Credentials string
	// Timeout bounds a single request. Zero disables the client-side deadline.
	Timeout time.Duration
}

// Validate reports whether the config can be used to build a Client.
func (c ClientConfig) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return errors.New("base url is required")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if strings.TrimSpace(c.Credentials) == "" {
		return errors.New("credentials are required")
	}
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	return nil
}

// Endpoint joins the base URL, port and path.
func (c ClientConfig) Endpoint(path string) string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.Port > 0 {
		return fmt.Sprintf("%s:%d%s", base, c.Port, path)
	}
	return base + path
}
