package openbazaar

import (
	"context"
	"net/http"
	"net/url"
)

// GetNotifications lists the notifications received by the store.
func (c *Client) GetNotifications(ctx context.Context) (*Notifications, error) {
	var out Notifications
	if err := c.call(ctx, "GetNotifications", http.MethodGet, "/ob/notifications", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkNotificationAsRead flags a single notification as read.
func (c *Client) MarkNotificationAsRead(ctx context.Context, notificationID string) (Object, error) {
	var out Object
	path := "/ob/marknotificationasread/" + url.PathEscape(notificationID)
	if err := c.call(ctx, "MarkNotificationAsRead", http.MethodPost, path, struct{}{}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
