package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	pkgerrors "github.com/hemteknik/storefront-backend/pkg/errors"
)

//go:embed data/inventory.json
var embeddedInventory []byte

// Service exposes the read-only product catalog. There is no write path and
// no pagination; the catalog is loaded once per process.
type Service interface {
	List(ctx context.Context) []Product
	GetByID(ctx context.Context, id int) (*Product, error)
}

type service struct {
	products []Product
	byID     map[int]int
}

// NewService builds a catalog service over a loaded inventory.
func NewService(inv Inventory) (Service, error) {
	byID := make(map[int]int, len(inv.Items))
	for i, product := range inv.Items {
		if product.ID <= 0 {
			return nil, fmt.Errorf("product %q has non-positive id %d", product.Name, product.ID)
		}
		if _, exists := byID[product.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %d", product.ID)
		}
		byID[product.ID] = i
	}
	return &service{products: inv.Items, byID: byID}, nil
}

func (s *service) List(ctx context.Context) []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *service) GetByID(ctx context.Context, id int) (*Product, error) {
	idx, ok := s.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	product := s.products[idx]
	return &product, nil
}

// Load reads an inventory document from path, falling back to the embedded
// dataset when path is empty.
func Load(path string) (Inventory, error) {
	data := embeddedInventory
	if path != "" {
		read, err := os.ReadFile(path)
		if err != nil {
			return Inventory{}, fmt.Errorf("read catalog: %w", err)
		}
		data = read
	}

	var inv Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return Inventory{}, fmt.Errorf("parse catalog: %w", err)
	}
	return inv, nil
}
