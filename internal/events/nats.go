package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/luxebeaute/storefront/internal/domain"
)

// NATSPublisher publishes storefront events to a NATS server.
type NATSPublisher struct {
	conn *nats.Conn
}

// Compile-time check that NATSPublisher implements Publisher.
var _ Publisher = (*NATSPublisher)(nil)

// NewNATSPublisher connects to the given NATS URL.
func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("storefront"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSPublisher{conn: conn}, nil
}

// Close drains and closes the underlying connection.
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}

func (p *NATSPublisher) ProductCreated(ctx context.Context, product domain.Product) error {
	return p.publish(SubjectProductCreated, ProductEvent{ID: product.ID, Product: &product})
}

func (p *NATSPublisher) ProductUpdated(ctx context.Context, product domain.Product) error {
	return p.publish(SubjectProductUpdated, ProductEvent{ID: product.ID, Product: &product})
}

func (p *NATSPublisher) ProductDeleted(ctx context.Context, id string) error {
	return p.publish(SubjectProductDeleted, ProductEvent{ID: id})
}

func (p *NATSPublisher) OrderSubmitted(ctx context.Context, e OrderEvent) error {
	return p.publish(SubjectOrderSubmitted, e)
}

func (p *NATSPublisher) publish(subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}
	return nil
}
