// Package openbazaar is a thin client for the REST API exposed by a local
// OpenBazaar daemon (notifications, listings, profile, wallet and orders).
//
// Build the Basic credential once, keep it in a ClientConfig and construct a
// Client from it:
//
//	cfg := openbazaar.ClientConfig{
//		BaseURL:     "http://localhost",
//		Port:        4002,
//		Credentials: openbazaar.BuildAuthHeader("yourUsername", "yourPassword"),
//	}
//	c, err := openbazaar.New(cfg)
//	if err != nil {
//		return err
//	}
//	notes, err := c.GetNotifications(ctx)
//
// Each method performs exactly one HTTP request. Non-2xx responses are returned
// as *Error carrying the status code and the daemon's payload untouched, so
// callers can branch on conditions such as 409 Conflict.
package openbazaar
