package domain

import "github.com/p2pvps/openbazaar-node/pkg/openbazaar"

// Notification types emitted by the daemon that the watcher reacts to.
const (
	NotificationTypeOrder       = "order"
	NotificationTypePayment     = "payment"
	NotificationTypeFulfillment = "fulfillment"
	NotificationTypeCompletion  = "completion"
)

// Notification is the normalized view of one entry of GET /ob/notifications.
type Notification struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	OrderID   string            `json:"order_id,omitempty"`
	Title     string            `json:"title,omitempty"`
	Read      bool              `json:"read"`
	Timestamp string            `json:"timestamp,omitempty"`
	Raw       openbazaar.Object `json:"raw"`
}

// OrderSummary carries the order fields worth forwarding downstream.
type OrderSummary struct {
	OrderID            string  `json:"order_id"`
	State              string  `json:"state"`
	Funded             bool    `json:"funded"`
	PaymentAddress     string  `json:"payment_address,omitempty"`
	RequestedAmount    float64 `json:"requested_amount,omitempty"`
	ListingSlug        string  `json:"listing_slug,omitempty"`
	ListingTitle       string  `json:"listing_title,omitempty"`
	ListingDescription string  `json:"listing_description,omitempty"`
}

// NotificationFromObject extracts the known fields of a notification. The
// daemon nests them under "notification" on newer versions and keeps them at
// the top level on older ones; both are accepted.
func NotificationFromObject(obj openbazaar.Object) Notification {
	inner := obj.Object("notification")
	if inner == nil {
		inner = obj
	}

	n := Notification{
		ID:        firstString(inner, "notificationId", "id"),
		Type:      inner.String("type"),
		OrderID:   firstString(inner, "orderId", "orderID"),
		Title:     inner.String("title"),
		Timestamp: firstString(obj, "timestamp"),
		Raw:       obj,
	}
	if n.Timestamp == "" {
		n.Timestamp = inner.String("timestamp")
	}
	if read, ok := obj["read"].(bool); ok {
		n.Read = read
	}
	return n
}

func firstString(obj openbazaar.Object, keys ...string) string {
	for _, k := range keys {
		if v := obj.String(k); v != "" {
			return v
		}
	}
	return ""
}
