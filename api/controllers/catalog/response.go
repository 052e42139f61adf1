package catalog

import (
	catalogsvc "github.com/hemteknik/storefront-backend/internal/catalog"
	"github.com/hemteknik/storefront-backend/internal/variant"
	"github.com/hemteknik/storefront-backend/pkg/money"
)

type productSummary struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Brand        string `json:"brand"`
	Price        string `json:"price"`
	DisplayPrice string `json:"displayPrice"`
	Available    bool   `json:"available"`
	TotalStock   int    `json:"totalStock"`
	Purchasable  bool   `json:"purchasable"`
}

type productListView struct {
	Products []productSummary `json:"products"`
}

type productDetailView struct {
	productSummary
	Weight           float64                    `json:"weight"`
	Options          []catalogsvc.ProductOption `json:"options"`
	InitialSelection variant.Selection          `json:"initialSelection"`
	SelectedOption   *catalogsvc.ProductOption  `json:"selectedOption,omitempty"`
}

type resolveView struct {
	VariantKey     string                    `json:"variantKey"`
	Matched        bool                      `json:"matched"`
	InStock        bool                      `json:"inStock"`
	SelectedOption *catalogsvc.ProductOption `json:"selectedOption,omitempty"`
}

func newProductSummary(p *catalogsvc.Product) productSummary {
	display, err := money.FormatString(p.Price)
	if err != nil {
		display = p.Price
	}
	return productSummary{
		ID:           p.ID,
		Name:         p.Name,
		Brand:        p.Brand,
		Price:        p.Price,
		DisplayPrice: display,
		Available:    p.Available,
		TotalStock:   p.TotalStock(),
		Purchasable:  p.Purchasable(),
	}
}

func newProductListView(products []catalogsvc.Product) productListView {
	view := productListView{Products: make([]productSummary, 0, len(products))}
	for i := range products {
		view.Products = append(view.Products, newProductSummary(&products[i]))
	}
	return view
}

func newProductDetailView(p *catalogsvc.Product, initial variant.Selection, selected *catalogsvc.ProductOption) productDetailView {
	return productDetailView{
		productSummary:   newProductSummary(p),
		Weight:           p.Weight,
		Options:          p.Options,
		InitialSelection: initial,
		SelectedOption:   selected,
	}
}

func newResolveView(sel variant.Selection, selected *catalogsvc.ProductOption) resolveView {
	return resolveView{
		VariantKey:     variant.Key(sel),
		Matched:        selected != nil,
		InStock:        selected != nil && selected.Quantity > 0,
		SelectedOption: selected,
	}
}
