// Package cart implements the session-scoped shopping cart: an ordered list
// of product snapshots with quantities, written through an injected
// persistence port on every mutation and restored from it on first use.
package cart

import (
	"github.com/luxebeaute/storefront/internal/domain"
)

// Store holds the items one client session intends to purchase.
// It is not safe for concurrent use; the Manager serializes access per
// session, matching the single-owner model of the cart.
type Store struct {
	items []domain.CartItem
	store Persistence
}

// NewStore creates a cart backed by the given persistence port and restores
// any previously saved items. Malformed or unreadable persisted data degrades
// silently to an empty cart.
func NewStore(p Persistence) *Store {
	s := &Store{store: p}

	items, err := p.Load()
	if err == nil {
		s.items = items
	}

	return s
}

// AddItem adds a snapshot of the product with the given quantity. If an item
// for the same product ID already exists, its quantity is incremented
// instead; the snapshot taken at first add is kept.
func (s *Store) AddItem(product domain.Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity += quantity
			return s.persist()
		}
	}

	s.items = append(s.items, domain.CartItem{Product: snapshot(product), Quantity: quantity})
	return s.persist()
}

// RemoveItem drops the item for the given product ID. Removing an absent
// item is a no-op.
func (s *Store) RemoveItem(productID string) error {
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// UpdateQuantity sets (not increments) the quantity for the given product ID.
// A quantity of zero or less behaves exactly like RemoveItem.
func (s *Store) UpdateQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(productID)
	}

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			return s.persist()
		}
	}
	return nil
}

// Clear empties the cart.
func (s *Store) Clear() error {
	s.items = nil
	return s.persist()
}

// Items returns a copy of the item list in insertion order.
func (s *Store) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total returns the sum of price * quantity over all items.
func (s *Store) Total() float64 {
	var total float64
	for _, item := range s.items {
		total += item.LineTotal()
	}
	return total
}

// ItemCount returns the sum of quantities over all items.
func (s *Store) ItemCount() int {
	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Summary returns the client view: items plus derived totals.
func (s *Store) Summary() domain.CartSummary {
	return domain.CartSummary{
		Items:     s.Items(),
		Total:     s.Total(),
		ItemCount: s.ItemCount(),
	}
}

func (s *Store) persist() error {
	return s.store.Save(s.items)
}

// snapshot detaches the product copy from the caller's slice backing array.
func snapshot(p domain.Product) domain.Product {
	if p.Images != nil {
		images := make([]string, len(p.Images))
		copy(images, p.Images)
		p.Images = images
	}
	return p
}
