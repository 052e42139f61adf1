package cart

import (
	cartsvc "github.com/hemteknik/storefront-backend/internal/cart"
	"github.com/hemteknik/storefront-backend/internal/variant"
	"github.com/hemteknik/storefront-backend/pkg/money"
)

type cartLine struct {
	ProductID       int               `json:"productId"`
	Name            string            `json:"name"`
	Brand           string            `json:"brand"`
	Price           string            `json:"price"`
	DisplayPrice    string            `json:"displayPrice"`
	Quantity        int               `json:"quantity"`
	SelectedVariant variant.Selection `json:"selectedVariant"`
	VariantKey      string            `json:"variantKey"`
}

type cartView struct {
	Items      []cartLine `json:"items"`
	TotalItems int        `json:"totalItems"`
}

func newCartView(store *cartsvc.Store) cartView {
	items := store.Items()
	view := cartView{Items: make([]cartLine, 0, len(items)), TotalItems: store.TotalItems()}
	for _, item := range items {
		display, err := money.FormatString(item.Price)
		if err != nil {
			display = item.Price
		}
		view.Items = append(view.Items, cartLine{
			ProductID:       item.ProductID,
			Name:            item.Name,
			Brand:           item.Brand,
			Price:           item.Price,
			DisplayPrice:    display,
			Quantity:        item.Quantity,
			SelectedVariant: item.SelectedVariant,
			VariantKey:      item.VariantKey,
		})
	}
	return view
}
