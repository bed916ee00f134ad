package watcher

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/p2pvps/openbazaar-node/internal/domain"
	"github.com/p2pvps/openbazaar-node/pkg/openbazaar"
)

const (
	maxDescriptionBytes = 64 << 10 // 64 KiB
	maxDescriptionChars = 1024
)

// Enricher looks up the order behind a notification and condenses it into a summary.
type Enricher struct {
	client NodeClient
}

// NewEnricher constructs an enricher backed by the daemon client.
func NewEnricher(client NodeClient) *Enricher {
	return &Enricher{client: client}
}

// Enrich fetches the order referenced by n.
func (e *Enricher) Enrich(ctx context.Context, n domain.Notification) (*domain.OrderSummary, error) {
	if n.OrderID == "" {
		return nil, fmt.Errorf("notification %s has no order id", n.ID)
	}

	order, err := e.client.GetOrder(ctx, n.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", n.OrderID, err)
	}
	return summarizeOrder(order, n.OrderID)
}

// summarizeOrder extracts the forwarded fields from a GET /ob/order/{id} body.
func summarizeOrder(order openbazaar.Object, fallbackID string) (*domain.OrderSummary, error) {
	contract := order.Object("contract")
	confirmation := contract.Object("vendorOrderConfirmation")

	summary := &domain.OrderSummary{
		OrderID:         firstNonEmpty(confirmation.String("orderID"), fallbackID),
		State:           order.String("state"),
		PaymentAddress:  confirmation.String("paymentAddress"),
		RequestedAmount: number(confirmation["requestedAmount"]),
	}
	if funded, ok := order["funded"].(bool); ok {
		summary.Funded = funded
	}

	if listing := firstListing(contract); listing != nil {
		item := listing.Object("item")
		summary.ListingSlug = listing.String("slug")
		summary.ListingTitle = strings.TrimSpace(item.String("title"))

		text, err := descriptionText(item.String("description"))
		if err != nil {
			return summary, err
		}
		summary.ListingDescription = text
	}
	return summary, nil
}

func firstListing(contract openbazaar.Object) openbazaar.Object {
	listings, ok := contract["vendorListings"].([]any)
	if !ok || len(listings) == 0 {
		return nil
	}
	if m, ok := listings[0].(map[string]any); ok {
		return openbazaar.Object(m)
	}
	return nil
}

// descriptionText flattens the listing's HTML description into plain text.
func descriptionText(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	if len(html) > maxDescriptionBytes {
		html = html[:maxDescriptionBytes]
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse description: %w", err)
	}
	doc.Find("script, style").Remove()

	text := strings.Join(strings.Fields(doc.Text()), " ")
	if r := []rune(text); len(r) > maxDescriptionChars {
		text = string(r[:maxDescriptionChars])
	}
	return text, nil
}

func number(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
