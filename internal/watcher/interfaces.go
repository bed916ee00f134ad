package watcher

import (
	"context"

	"github.com/p2pvps/openbazaar-node/internal/domain"
	"github.com/p2pvps/openbazaar-node/pkg/openbazaar"
	"github.com/p2pvps/openbazaar-node/pkg/publishers"
)

// NodeClient is the subset of the daemon API the watcher relies on.
type NodeClient interface {
	GetNotifications(ctx context.Context) (*openbazaar.Notifications, error)
	GetOrder(ctx context.Context, orderID string) (openbazaar.Object, error)
	MarkNotificationAsRead(ctx context.Context, notificationID string) (openbazaar.Object, error)
}

// OrderEnricher resolves the order a notification refers to.
type OrderEnricher interface {
	Enrich(ctx context.Context, n domain.Notification) (*domain.OrderSummary, error)
}

// EventPublisher publishes notification events downstream.
type EventPublisher interface {
	Publish(ctx context.Context, evt publishers.Event) (int, error)
}

// Deduper tracks notifications that were already forwarded.
type Deduper interface {
	SeenNotification(id string) (bool, error)
	MarkNotification(id string) error
}
