// Package events publishes storefront domain events for downstream
// consumers (analytics, cache invalidation). Publishing is best-effort:
// failures are logged by callers and never surfaced to clients.
package events

import (
	"context"

	"github.com/luxebeaute/storefront/internal/checkout"
	"github.com/luxebeaute/storefront/internal/domain"
)

// Subjects for published events.
const (
	SubjectProductCreated = "storefront.product.created"
	SubjectProductUpdated = "storefront.product.updated"
	SubjectProductDeleted = "storefront.product.deleted"
	SubjectOrderSubmitted = "storefront.order.submitted"
)

// ProductEvent is the payload for product lifecycle events.
type ProductEvent struct {
	ID      string          `json:"id"`
	Product *domain.Product `json:"product,omitempty"`
}

// OrderEvent is emitted when a checkout link is generated. No order record
// exists server-side; this event is the only trace of the order besides the
// outbound WhatsApp message.
type OrderEvent struct {
	Items     []domain.CartItem     `json:"items"`
	Total     float64               `json:"total"`
	ItemCount int                   `json:"itemCount"`
	Customer  checkout.CustomerInfo `json:"customer"`
}

// Publisher emits storefront events.
type Publisher interface {
	ProductCreated(ctx context.Context, p domain.Product) error
	ProductUpdated(ctx context.Context, p domain.Product) error
	ProductDeleted(ctx context.Context, id string) error
	OrderSubmitted(ctx context.Context, e OrderEvent) error
}

// NoopPublisher discards every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) ProductCreated(context.Context, domain.Product) error { return nil }
func (NoopPublisher) ProductUpdated(context.Context, domain.Product) error { return nil }
func (NoopPublisher) ProductDeleted(context.Context, string) error         { return nil }
func (NoopPublisher) OrderSubmitted(context.Context, OrderEvent) error     { return nil }
