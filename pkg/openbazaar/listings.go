package openbazaar

import (
	"context"
	"net/http"
	"net/url"
)

// GetListings returns the store's listing summaries.
func (c *Client) GetListings(ctx context.Context) ([]Object, error) {
	var out []Object
	if err := c.call(ctx, "GetListings", http.MethodGet, "/ob/listings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateListing publishes a listing. The result carries the slug assigned by
// the daemon.
func (c *Client) CreateListing(ctx context.Context, listing any) (Object, error) {
	var out Object
	if err := c.call(ctx, "CreateListing", http.MethodPost, "/ob/listing/", listing, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveListing deletes the listing identified by slug.
func (c *Client) RemoveListing(ctx context.Context, slug string) (Object, error) {
	out := Object{}
	body := map[string]string{"slug": slug}
	if err := c.call(ctx, "RemoveListing", http.MethodDelete, "/ob/listing/"+url.PathEscape(slug), body, &out); err != nil {
		return nil, err
	}
	return out, nil
}
