package openbazaar

import "encoding/base64"

// BuildAuthHeader returns the Authorization header value for the daemon's
// Basic scheme: "Basic " + base64(id + ":" + secret).
func BuildAuthHeader(id, secret string) string {
	raw := id + ":" + secret
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(raw))
}
