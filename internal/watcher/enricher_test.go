package watcher

import (
	"context"
	"strings"
	"testing"

	"github.com/p2pvps/openbazaar-node/internal/domain"
	"github.com/p2pvps/openbazaar-node/pkg/openbazaar"
)

func sampleOrder() openbazaar.Object {
	return openbazaar.Object{
		"state":  "AWAITING_PAYMENT",
		"funded": false,
		"contract": map[string]any{
			"vendorListings": []any{
				map[string]any{
					"slug": "vps-small",
					"item": map[string]any{
						"title":       " Small VPS ",
						"description": `<p>1 vCPU, <b>512MB</b> RAM</p><script>alert(1)</script>`,
					},
				},
			},
			"vendorOrderConfirmation": map[string]any{
				"orderID":         "QmOrder",
				"paymentAddress":  "qz7t6yshmp3vhks3gfnnz0emv2g2nraaeskcag5ell",
				"requestedAmount": float64(1470),
			},
		},
	}
}

func TestSummarizeOrderExtractsFields(t *testing.T) {
	summary, err := summarizeOrder(sampleOrder(), "fallback")
	if err != nil {
		t.Fatalf("summarizeOrder: %v", err)
	}
	if summary.OrderID != "QmOrder" || summary.State != "AWAITING_PAYMENT" || summary.Funded {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if summary.RequestedAmount != 1470 || summary.PaymentAddress == "" {
		t.Fatalf("payment fields missing %+v", summary)
	}
	if summary.ListingSlug != "vps-small" || summary.ListingTitle != "Small VPS" {
		t.Fatalf("listing fields missing %+v", summary)
	}
	if summary.ListingDescription != "1 vCPU, 512MB RAM" {
		t.Fatalf("description = %q", summary.ListingDescription)
	}
}

func TestSummarizeOrderFallsBackToNotificationOrderID(t *testing.T) {
	summary, err := summarizeOrder(openbazaar.Object{"state": "PENDING", "funded": true}, "Qm1")
	if err != nil {
		t.Fatalf("summarizeOrder: %v", err)
	}
	if summary.OrderID != "Qm1" || !summary.Funded || summary.ListingSlug != "" {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestDescriptionTextTruncates(t *testing.T) {
	text, err := descriptionText("<div>" + strings.Repeat("word ", 1000) + "</div>")
	if err != nil {
		t.Fatalf("descriptionText: %v", err)
	}
	if len([]rune(text)) != maxDescriptionChars {
		t.Fatalf("expected %d chars, got %d", maxDescriptionChars, len([]rune(text)))
	}

	if text, _ := descriptionText("   "); text != "" {
		t.Fatalf("expected empty text, got %q", text)
	}
}

func TestEnricherRequiresOrderID(t *testing.T) {
	e := NewEnricher(&fakeNode{})
	if _, err := e.Enrich(context.Background(), domain.Notification{ID: "n1"}); err == nil {
		t.Fatalf("expected error without order id")
	}
}

func TestEnricherWrapsDaemonErrors(t *testing.T) {
	e := NewEnricher(&fakeNode{})
	_, err := e.Enrich(context.Background(), domain.Notification{ID: "n1", OrderID: "missing"})
	if !openbazaar.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", " ", "foo", "bar"); got != "foo" {
		t.Fatalf("firstNonEmpty got %q", got)
	}
}
