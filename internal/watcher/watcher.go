package watcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/p2pvps/openbazaar-node/internal/domain"
	"github.com/p2pvps/openbazaar-node/internal/logger"
	"github.com/p2pvps/openbazaar-node/pkg/openbazaar"
	"github.com/p2pvps/openbazaar-node/pkg/publishers"
)

// Service polls the daemon for notifications and forwards the new ones.
type Service struct {
	client    NodeClient
	enricher  OrderEnricher
	publisher EventPublisher
	deduper   Deduper
	markRead  bool
}

// Result summarizes a single poll.
type Result struct {
	Fetched   int
	Fresh     int
	Published int
}

// NewService wires a watcher. enricher, publisher and deduper may be nil.
func NewService(client NodeClient, enricher OrderEnricher, publisher EventPublisher, deduper Deduper, markRead bool) *Service {
	return &Service{
		client:    client,
		enricher:  enricher,
		publisher: publisher,
		deduper:   deduper,
		markRead:  markRead,
	}
}

// Poll fetches the current notifications and handles every one not seen before.
// A notification whose event no publisher accepted stays unmarked and is retried
// on the next poll.
func (s *Service) Poll(ctx context.Context) (Result, error) {
	if s == nil || s.client == nil {
		return Result{}, fmt.Errorf("watcher service is not initialized")
	}

	list, err := s.client.GetNotifications(ctx)
	if err != nil {
		pollsTotal.WithLabelValues(resultFailed).Inc()
		return Result{}, fmt.Errorf("get notifications: %w", err)
	}

	res := Result{Fetched: len(list.Notifications)}
	fresh := s.filterNew(parseNotifications(list.Notifications))
	res.Fresh = len(fresh)

	var errs []error
	for _, n := range fresh {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		ok, err := s.handle(ctx, n)
		if ok {
			res.Published++
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("notification %s: %w", n.ID, err))
		}
	}

	if len(errs) > 0 {
		pollsTotal.WithLabelValues(resultFailed).Inc()
	} else {
		pollsTotal.WithLabelValues(resultOK).Inc()
	}
	logger.InfoObj("notification poll completed", "poll_result", map[string]any{
		"fetched":   res.Fetched,
		"fresh":     res.Fresh,
		"published": res.Published,
		"errors":    len(errs),
	})
	return res, errors.Join(errs...)
}

func parseNotifications(objs []openbazaar.Object) []domain.Notification {
	out := make([]domain.Notification, 0, len(objs))
	for _, obj := range objs {
		n := domain.NotificationFromObject(obj)
		if n.ID == "" {
			notificationsTotal.WithLabelValues(resultSkipped).Inc()
			logger.WarnObj("notification without id skipped", "notification_skipped", map[string]any{
				"type": n.Type,
			})
			continue
		}
		out = append(out, n)
	}
	return out
}

// filterNew drops notifications already recorded by the deduper. Lookup errors
// keep the notification so it is not lost.
func (s *Service) filterNew(items []domain.Notification) []domain.Notification {
	if s.deduper == nil {
		return items
	}

	out := make([]domain.Notification, 0, len(items))
	for _, n := range items {
		seen, err := s.deduper.SeenNotification(n.ID)
		if err != nil {
			logger.WarnObj("dedupe lookup failed", "dedupe_error", map[string]any{
				"notification_id": n.ID,
				"error":           err.Error(),
			})
			out = append(out, n)
			continue
		}
		if seen {
			notificationsTotal.WithLabelValues(resultSkipped).Inc()
			continue
		}
		out = append(out, n)
	}
	return out
}

// handle enriches, publishes and records one notification. It reports whether
// the event reached at least one publisher.
func (s *Service) handle(ctx context.Context, n domain.Notification) (bool, error) {
	var order *domain.OrderSummary
	if s.enricher != nil && n.OrderID != "" {
		summary, err := s.enricher.Enrich(ctx, n)
		if err != nil {
			logger.WarnObj("order enrichment failed", "enrich_error", map[string]any{
				"notification_id": n.ID,
				"order_id":        n.OrderID,
				"error":           err.Error(),
			})
		} else {
			order = summary
		}
	}

	evt := publishers.NewEvent(n, order)

	delivered := 0
	var pubErr error
	if s.publisher != nil {
		delivered, pubErr = s.publisher.Publish(ctx, evt)
		if pubErr != nil && delivered == 0 {
			notificationsTotal.WithLabelValues(resultFailed).Inc()
			return false, fmt.Errorf("publish: %w", pubErr)
		}
	}

	var errs []error
	if pubErr != nil {
		errs = append(errs, fmt.Errorf("publish: %w", pubErr))
	}

	if s.deduper != nil {
		if err := s.deduper.MarkNotification(n.ID); err != nil {
			errs = append(errs, fmt.Errorf("mark seen: %w", err))
		}
	}

	if s.markRead && !n.Read {
		if _, err := s.client.MarkNotificationAsRead(ctx, n.ID); err != nil {
			logger.WarnObj("mark notification as read failed", "mark_read_error", map[string]any{
				"notification_id": n.ID,
				"error":           err.Error(),
			})
			errs = append(errs, fmt.Errorf("mark read: %w", err))
		}
	}

	notificationsTotal.WithLabelValues(resultPublished).Inc()
	logger.InfoObj("notification forwarded", "notification_event", map[string]any{
		"event_id":        evt.ID,
		"notification_id": n.ID,
		"type":            n.Type,
		"order_id":        n.OrderID,
		"publishers":      delivered,
	})
	return true, errors.Join(errs...)
}
