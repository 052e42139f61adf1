// Package cart is the single source of truth for cart contents. All reads
// and writes of persisted cart state flow through the Store; every mutation
// swaps in a fresh collection and persists it whole.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/hemteknik/storefront-backend/internal/variant"
	pkgerrors "github.com/hemteknik/storefront-backend/pkg/errors"
	"github.com/hemteknik/storefront-backend/pkg/kv"
)

// Item is one cart line, uniquely identified by (ProductID, VariantKey).
// Name, brand and price are denormalized at add-time and never refreshed
// from the catalog.
type Item struct {
	ProductID       int               `json:"productId"`
	Name            string            `json:"name"`
	Brand           string            `json:"brand"`
	Price           string            `json:"price"`
	Quantity        int               `json:"quantity"`
	SelectedVariant variant.Selection `json:"selectedVariant"`
	VariantKey      string            `json:"variantKey"`
}

// ItemInput is an item without its quantity; AddItem supplies that.
type ItemInput struct {
	ProductID       int
	Name            string
	Brand           string
	Price           string
	SelectedVariant variant.Selection
	VariantKey      string
}

// Store keeps the ordered cart collection and mirrors every mutation to the
// persistence surface. It performs no stock validation; that is the
// caller's responsibility.
type Store struct {
	mu      sync.Mutex
	surface kv.Store
	items   []Item
}

// NewStore initializes the collection from the persisted record. An absent
// record is an empty cart; a record that is not valid JSON is a hard error,
// never a silent fallback to empty.
func NewStore(ctx context.Context, surface kv.Store) (*Store, error) {
	if surface == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "persistence surface required")
	}

	raw, err := surface.Get(ctx, kv.CartKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return &Store{surface: surface, items: []Item{}}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read cart record")
	}

	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "malformed cart record")
	}
	if items == nil {
		items = []Item{}
	}
	return &Store{surface: surface, items: items}, nil
}

// AddItem merges into an existing line with the same (productId, variantKey)
// by adding quantities, or appends a new line at the end. A quantity below 1
// defaults to 1.
func (s *Store) AddItem(ctx context.Context, input ItemInput, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Item, 0, len(s.items)+1)
	merged := false
	for _, item := range s.items {
		if item.ProductID == input.ProductID && item.VariantKey == input.VariantKey {
			item.Quantity += quantity
			merged = true
		}
		next = append(next, item)
	}
	if !merged {
		next = append(next, Item{
			ProductID:       input.ProductID,
			Name:            input.Name,
			Brand:           input.Brand,
			Price:           input.Price,
			Quantity:        quantity,
			SelectedVariant: input.SelectedVariant.Clone(),
			VariantKey:      input.VariantKey,
		})
	}

	return s.swap(ctx, next)
}

// RemoveItem filters out the line matching both fields exactly. Removing an
// absent line is a no-op that still persists.
func (s *Store) RemoveItem(ctx context.Context, productID int, variantKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		if item.ProductID == productID && item.VariantKey == variantKey {
			continue
		}
		next = append(next, item)
	}
	return s.swap(ctx, next)
}

// UpdateQuantity sets the matching line's quantity absolutely. Zero or
// negative deletes the line; zero-quantity lines are never stored.
func (s *Store) UpdateQuantity(ctx context.Context, productID int, variantKey string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID, variantKey)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		if item.ProductID == productID && item.VariantKey == variantKey {
			item.Quantity = quantity
		}
		next = append(next, item)
	}
	return s.swap(ctx, next)
}

// Clear replaces the collection with empty and persists.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.swap(ctx, []Item{})
}

// Items returns a copy of the collection in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems sums quantity across all lines. Recomputed on every call,
// never cached.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// swap persists the full collection and only then makes it current. Callers
// hold s.mu.
func (s *Store) swap(ctx context.Context, next []Item) error {
	data, err := json.Marshal(next)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "serialize cart")
	}
	if err := s.surface.Set(ctx, kv.CartKey, string(data)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart")
	}
	s.items = next
	return nil
}
