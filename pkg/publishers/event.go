package publishers

import (
	"time"

	"github.com/google/uuid"

	"github.com/p2pvps/openbazaar-node/internal/domain"
)

// Event represents the payload published downstream for one daemon notification.
type Event struct {
	ID           string               `json:"id"`
	Notification domain.Notification  `json:"notification"`
	Order        *domain.OrderSummary `json:"order,omitempty"`
	ObservedAt   time.Time            `json:"observed_at"`
}

// NewEvent constructs an Event for the given notification and optional order summary.
func NewEvent(n domain.Notification, order *domain.OrderSummary) Event {
	return Event{
		ID:           uuid.NewString(),
		Notification: n,
		Order:        order,
		ObservedAt:   time.Now().UTC(),
	}
}

// attributes returns the routing metadata attached to queue/topic messages.
func (e Event) attributes() map[string]string {
	attrs := map[string]string{
		"event_id":          e.ID,
		"notification_id":   e.Notification.ID,
		"notification_type": e.Notification.Type,
	}
	if e.Notification.OrderID != "" {
		attrs["order_id"] = e.Notification.OrderID
	}
	return attrs
}
