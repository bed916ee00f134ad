package openbazaar

import (
	"context"
	"net/http"
)

// CreateProfile creates the store profile. The daemon answers 409 when a
// profile already exists for the node; see IsConflict.
func (c *Client) CreateProfile(ctx context.Context, profile any) (Object, error) {
	var out Object
	if err := c.call(ctx, "CreateProfile", http.MethodPost, "/ob/profile/", profile, &out); err != nil {
		return nil, err
	}
	return out, nil
}
