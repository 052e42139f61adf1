package cartdto

// AddItemRequest captures the add-to-cart intent. Quantity below one is
// treated as one; the selected variant may be empty for single-option
// products.
type AddItemRequest struct {
	ProductID       int               `json:"productId" validate:"required,gt=0"`
	SelectedVariant map[string]string `json:"selectedVariant"`
	Quantity        int               `json:"quantity" validate:"omitempty,gt=0"`
}

// UpdateQuantityRequest targets one cart line by its identity pair. A
// quantity of zero or less removes the line.
type UpdateQuantityRequest struct {
	ProductID  int    `json:"productId" validate:"required,gt=0"`
	VariantKey string `json:"variantKey" validate:"required"`
	Quantity   int    `json:"quantity"`
}

// RemoveItemRequest targets one cart line by its identity pair.
type RemoveItemRequest struct {
	ProductID  int    `json:"productId" validate:"required,gt=0"`
	VariantKey string `json:"variantKey" validate:"required"`
}
