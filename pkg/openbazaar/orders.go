package openbazaar

import (
	"context"
	"net/http"
	"net/url"
)

// GetOrder returns the full order record, including the signed contract.
func (c *Client) GetOrder(ctx context.Context, orderID string) (Object, error) {
	var out Object
	if err := c.call(ctx, "GetOrder", http.MethodGet, "/ob/order/"+url.PathEscape(orderID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FulfillOrder marks an order as fulfilled.
func (c *Client) FulfillOrder(ctx context.Context, fulfillment any) (Object, error) {
	var out Object
	if err := c.call(ctx, "FulfillOrder", http.MethodPost, "/ob/orderfulfillment", fulfillment, &out); err != nil {
		return nil, err
	}
	return out, nil
}
